// Package session implements the interactive project editor: a menu loop
// that edits a project in memory and prints its combinations on request.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/loadcomb/internal/codes"
	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/export"
	"github.com/alexiusacademia/loadcomb/internal/project"
)

// Menu entries, in display order
const (
	ActionAddLoad     = "Add primary load"
	ActionEditLoad    = "Edit primary load"
	ActionMoveLoad    = "Move primary load"
	ActionDeleteLoad  = "Delete primary load"
	ActionAddType     = "Add load type"
	ActionDeleteType  = "Delete load type"
	ActionSetStrategy = "Set load type strategy"
	ActionAddStrength = "Add strength case"
	ActionAddService  = "Add service case"
	ActionDeleteCase  = "Delete load case"
	ActionApplyPreset = "Apply code preset"
	ActionSetStarts   = "Set start numbers"
	ActionShowCombos  = "Show combinations"
	ActionQuit        = "Finish"
)

var menu = []string{
	ActionAddLoad, ActionEditLoad, ActionMoveLoad, ActionDeleteLoad,
	ActionAddType, ActionDeleteType, ActionSetStrategy,
	ActionAddStrength, ActionAddService, ActionDeleteCase, ActionApplyPreset,
	ActionSetStarts, ActionShowCombos, ActionQuit,
}

// Editor edits a project through prompts
type Editor struct {
	Project *project.Project
	Prompt  Prompter
	Out     io.Writer
	Options combo.RenderOptions
}

// Run shows the menu until the user finishes, then prints the final
// combinations. Rejected edits are reported and the menu shown again.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := e.Prompt.Select("What next?", menu, 0)
		if err != nil {
			return err
		}
		action := menu[choice]
		if action == ActionQuit {
			e.printCombinations()
			return nil
		}

		if err := e.do(action); err != nil {
			if errors.Is(err, ErrAborted) {
				return err
			}
			fmt.Fprintf(e.Out, "  ✗ %v\n", err)
		}
	}
}

func (e *Editor) do(action string) error {
	switch action {
	case ActionAddLoad:
		return e.addLoad()
	case ActionEditLoad:
		return e.editLoad()
	case ActionMoveLoad:
		return e.moveLoad()
	case ActionDeleteLoad:
		return e.deleteLoad()
	case ActionAddType:
		return e.addType()
	case ActionDeleteType:
		return e.deleteType()
	case ActionSetStrategy:
		return e.setStrategy()
	case ActionAddStrength:
		return e.addCase(project.Strength)
	case ActionAddService:
		return e.addCase(project.Service)
	case ActionDeleteCase:
		return e.deleteCase()
	case ActionApplyPreset:
		return e.applyPreset()
	case ActionSetStarts:
		return e.setStarts()
	case ActionShowCombos:
		e.printCombinations()
		return nil
	}
	return fmt.Errorf("unknown action %q", action)
}

// --- Primary loads ---

func (e *Editor) addLoad() error {
	name, err := e.Prompt.Input("Load name:", "", required)
	if err != nil {
		return err
	}
	types := e.Project.Types()
	t, err := e.Prompt.Select("Load type:", types, 0)
	if err != nil {
		return err
	}
	l, err := e.Project.AddLoad(name, types[t])
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Out, "  ✓ Added load %d: %s (%s)\n", len(e.Project.Loads()), l.Name, l.Type)
	return nil
}

func (e *Editor) editLoad() error {
	l, _, err := e.pickLoad("Edit which load?")
	if err != nil {
		return err
	}
	name, err := e.Prompt.Input("Load name:", l.Name, required)
	if err != nil {
		return err
	}
	types := e.Project.Types()
	t, err := e.Prompt.Select("Load type:", types, indexOf(types, l.Type))
	if err != nil {
		return err
	}
	if err := e.Project.RenameLoad(l.ID, strings.TrimSpace(name)); err != nil {
		return err
	}
	return e.Project.SetLoadType(l.ID, types[t])
}

func (e *Editor) moveLoad() error {
	_, from, err := e.pickLoad("Move which load?")
	if err != nil {
		return err
	}
	positions := make([]string, len(e.Project.Loads()))
	for i := range positions {
		positions[i] = fmt.Sprintf("Position %d", i+1)
	}
	to, err := e.Prompt.Select("Move to:", positions, from)
	if err != nil {
		return err
	}
	return e.Project.MoveLoad(from, to)
}

func (e *Editor) deleteLoad() error {
	l, _, err := e.pickLoad("Delete which load?")
	if err != nil {
		return err
	}
	return e.Project.RemoveLoad(l.ID)
}

func (e *Editor) pickLoad(message string) (combo.PrimaryLoad, int, error) {
	loads := e.Project.Loads()
	if len(loads) == 0 {
		return combo.PrimaryLoad{}, 0, errors.New("no primary loads yet")
	}
	options := make([]string, len(loads))
	for i, l := range loads {
		options[i] = fmt.Sprintf("%d. %s (%s)", i+1, l.Name, l.Type)
	}
	i, err := e.Prompt.Select(message, options, 0)
	if err != nil {
		return combo.PrimaryLoad{}, 0, err
	}
	return loads[i], i, nil
}

// --- Load types ---

func (e *Editor) addType() error {
	name, err := e.Prompt.Input("New load type name:", "", required)
	if err != nil {
		return err
	}
	return e.Project.AddType(name)
}

func (e *Editor) deleteType() error {
	var userTypes []string
	for _, t := range e.Project.Types() {
		if !project.IsBuiltin(t) {
			userTypes = append(userTypes, t)
		}
	}
	if len(userTypes) == 0 {
		return errors.New("no user-defined load types; built-in types cannot be deleted")
	}
	i, err := e.Prompt.Select("Delete which load type?", userTypes, 0)
	if err != nil {
		return err
	}
	ok, err := e.Prompt.Confirm(fmt.Sprintf("Delete %q and every primary load of that type?", userTypes[i]), false)
	if err != nil || !ok {
		return err
	}
	return e.Project.RemoveType(userTypes[i])
}

func (e *Editor) setStrategy() error {
	types := e.Project.Types()
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = fmt.Sprintf("%s (%s)", t, e.Project.Strategy(t))
	}
	t, err := e.Prompt.Select("Load type:", options, 0)
	if err != nil {
		return err
	}

	strategies := make([]string, len(combo.AllStrategies))
	current := 0
	for i, s := range combo.AllStrategies {
		strategies[i] = string(s)
		if s == e.Project.Strategy(types[t]) {
			current = i
		}
	}
	s, err := e.Prompt.Select("Strategy:", strategies, current)
	if err != nil {
		return err
	}
	return e.Project.SetStrategy(types[t], combo.AllStrategies[s])
}

// --- Load cases ---

// addCase asks for a factor per load type in use; blank answers leave the
// column empty.
func (e *Editor) addCase(seq project.Sequence) error {
	types := e.Project.UsedTypes()
	if len(types) == 0 {
		types = e.Project.Types()
	}

	c := e.Project.AddCase(seq)
	for _, t := range types {
		v, err := e.Prompt.Input(fmt.Sprintf("%s factor:", t), "", nil)
		if err != nil {
			return err
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		if err := e.Project.SetFactor(seq, c.ID, t, strings.TrimSpace(v)); err != nil {
			return err
		}
	}

	for _, lc := range e.Project.Cases(seq) {
		if lc.ID == c.ID && !lc.Valid() {
			fmt.Fprintln(e.Out, "  ! Case has no non-zero factor and produces no combinations")
		}
	}
	return nil
}

func (e *Editor) deleteCase() error {
	seqs := []project.Sequence{project.Strength, project.Service}
	s, err := e.Prompt.Select("Which sequence?", []string{"Strength", "Service"}, 0)
	if err != nil {
		return err
	}
	seq := seqs[s]

	cases := e.Project.Cases(seq)
	if len(cases) == 0 {
		return fmt.Errorf("no %s cases", seq)
	}
	options := make([]string, len(cases))
	for i, c := range cases {
		options[i] = fmt.Sprintf("%d. %s", i+1, describeCase(c))
	}
	i, err := e.Prompt.Select("Delete which case?", options, 0)
	if err != nil {
		return err
	}
	return e.Project.RemoveCase(seq, cases[i].ID)
}

func (e *Editor) applyPreset() error {
	options := make([]string, len(codes.Presets))
	for i, p := range codes.Presets {
		options[i] = fmt.Sprintf("%s - %s", p.ID, p.Description)
	}
	i, err := e.Prompt.Select("Preset:", options, 0)
	if err != nil {
		return err
	}
	preset := codes.Presets[i]

	seq, err := project.ParseSequence(preset.Sequence)
	if err != nil {
		return err
	}
	added, err := e.Project.ApplyPreset(seq, preset)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Out, "  ✓ Added %d %s cases\n", len(added), seq)
	return nil
}

func (e *Editor) setStarts() error {
	strength, err := e.Prompt.Input("Strength start number:", e.Project.Start(project.Strength), nil)
	if err != nil {
		return err
	}
	e.Project.SetStart(project.Strength, strength)

	snap := e.Project.Snapshot(e.Options)
	minStart := export.MinServiceStart(snap.Input, snap.Strength, snap.StrengthStart)
	service, err := e.Prompt.Input(fmt.Sprintf("Service start number (min %d):", minStart), e.Project.Start(project.Service), nil)
	if err != nil {
		return err
	}
	e.Project.SetStart(project.Service, service)
	if n := combo.ParseStart(service, minStart); n < minStart {
		fmt.Fprintf(e.Out, "  ! Service combinations will start at %d\n", minStart)
	}
	return nil
}

func (e *Editor) printCombinations() {
	res := e.Project.Export(e.Options)
	fmt.Fprintln(e.Out)
	fmt.Fprint(e.Out, res.Text)
	if res.Empty() {
		fmt.Fprintln(e.Out)
	}
}

func describeCase(c combo.LoadCase) string {
	var parts []string
	for _, f := range c.Factors {
		if v, ok := combo.ParseFactor(f.Value); ok {
			parts = append(parts, combo.FormatFactor(v)+" "+f.Type)
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " + ")
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}
