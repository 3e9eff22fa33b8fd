package project

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexiusacademia/loadcomb/internal/codes"
	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/export"
)

// BuiltinTypes are always present and cannot be deleted. The first one is
// the default type for new primary loads.
var BuiltinTypes = []string{
	"Dead Load",
	"Live Load",
	"Wind Load",
	"Snow Load",
	"Seismic Load",
}

// DefaultServiceStart is the service start a fresh project shows
const DefaultServiceStart = "501"

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("already exists")
	ErrEmptyName   = errors.New("name must not be empty")
	ErrBuiltinType = errors.New("built-in load type cannot be deleted")
	ErrUnknownType = errors.New("unknown load type")
)

// Sequence selects one of the two independently numbered case lists
type Sequence int

const (
	Strength Sequence = iota
	Service
)

func (s Sequence) String() string {
	if s == Service {
		return "service"
	}
	return "strength"
}

// ParseSequence parses "strength"/"uls" or "service"/"sls"
func ParseSequence(raw string) (Sequence, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strength", "uls":
		return Strength, nil
	case "service", "sls":
		return Service, nil
	}
	return 0, fmt.Errorf("unknown sequence %q", raw)
}

// Project is the editable, in-memory session state. All cascading effects
// of deletes happen inside its methods; the engine only ever sees Snapshots.
type Project struct {
	ids IDGenerator

	loads      []combo.PrimaryLoad
	userTypes  []string
	strategies combo.Strategies

	strength []combo.LoadCase
	service  []combo.LoadCase

	strengthStart string
	serviceStart  string
}

// New creates an empty project with every built-in type set to Separate.
// A nil generator means random UUIDs.
func New(ids IDGenerator) *Project {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	p := &Project{
		ids:           ids,
		strategies:    make(combo.Strategies),
		strengthStart: strconv.Itoa(export.DefaultStrengthStart),
		serviceStart:  DefaultServiceStart,
	}
	for _, t := range BuiltinTypes {
		p.strategies[t] = combo.Separate
	}
	return p
}

// --- Primary loads ---

// Loads returns a copy of the primary loads in their current order
func (p *Project) Loads() []combo.PrimaryLoad {
	return slices.Clone(p.loads)
}

// AddLoad appends a primary load. An empty type means the default type.
func (p *Project) AddLoad(name, loadType string) (combo.PrimaryLoad, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return combo.PrimaryLoad{}, ErrEmptyName
	}
	if loadType == "" {
		loadType = BuiltinTypes[0]
	}
	if !p.HasType(loadType) {
		return combo.PrimaryLoad{}, fmt.Errorf("%w: %q", ErrUnknownType, loadType)
	}
	l := combo.PrimaryLoad{ID: p.ids.NewID(), Name: name, Type: loadType}
	p.loads = append(p.loads, l)
	return l, nil
}

// RenameLoad changes a primary load's name
func (p *Project) RenameLoad(id, name string) error {
	i := p.loadIndex(id)
	if i < 0 {
		return fmt.Errorf("primary load %q: %w", id, ErrNotFound)
	}
	p.loads[i].Name = name
	return nil
}

// SetLoadType moves a primary load to another existing type
func (p *Project) SetLoadType(id, loadType string) error {
	i := p.loadIndex(id)
	if i < 0 {
		return fmt.Errorf("primary load %q: %w", id, ErrNotFound)
	}
	if !p.HasType(loadType) {
		return fmt.Errorf("%w: %q", ErrUnknownType, loadType)
	}
	p.loads[i].Type = loadType
	return nil
}

// RemoveLoad deletes a primary load. Case factors are keyed by type, so
// no case needs touching.
func (p *Project) RemoveLoad(id string) error {
	i := p.loadIndex(id)
	if i < 0 {
		return fmt.Errorf("primary load %q: %w", id, ErrNotFound)
	}
	p.loads = slices.Delete(p.loads, i, i+1)
	return nil
}

// MoveLoad moves the load at position from to position to, shifting the
// loads in between. Load indices in the output follow the new order.
func (p *Project) MoveLoad(from, to int) error {
	if from < 0 || from >= len(p.loads) || to < 0 || to >= len(p.loads) {
		return fmt.Errorf("move %d -> %d: position out of range [0, %d)", from, to, len(p.loads))
	}
	if from == to {
		return nil
	}
	l := p.loads[from]
	p.loads = slices.Delete(p.loads, from, from+1)
	p.loads = slices.Insert(p.loads, to, l)
	return nil
}

// UsedTypes returns the distinct types of the primary loads in first-use order
func (p *Project) UsedTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, l := range p.loads {
		if !seen[l.Type] {
			seen[l.Type] = true
			types = append(types, l.Type)
		}
	}
	return types
}

func (p *Project) loadIndex(id string) int {
	return slices.IndexFunc(p.loads, func(l combo.PrimaryLoad) bool { return l.ID == id })
}

// --- Load types ---

// Types returns every load type, built-ins first
func (p *Project) Types() []string {
	return append(slices.Clone(BuiltinTypes), p.userTypes...)
}

// HasType reports whether a load type exists
func (p *Project) HasType(name string) bool {
	return IsBuiltin(name) || slices.Contains(p.userTypes, name)
}

// IsBuiltin reports whether name is one of the built-in types
func IsBuiltin(name string) bool {
	return slices.Contains(BuiltinTypes, name)
}

// AddType registers a user-defined load type with the Separate strategy
func (p *Project) AddType(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if p.HasType(name) {
		return fmt.Errorf("load type %q: %w", name, ErrDuplicate)
	}
	p.userTypes = append(p.userTypes, name)
	p.strategies[name] = combo.Separate
	return nil
}

// RemoveType deletes a user-defined load type along with everything that
// depends on it: its strategy entry, its column in every strength and
// service case, and every primary load of that type.
func (p *Project) RemoveType(name string) error {
	if IsBuiltin(name) {
		return fmt.Errorf("load type %q: %w", name, ErrBuiltinType)
	}
	i := slices.Index(p.userTypes, name)
	if i < 0 {
		return fmt.Errorf("load type %q: %w", name, ErrNotFound)
	}

	p.userTypes = slices.Delete(p.userTypes, i, i+1)
	delete(p.strategies, name)
	for _, cases := range [][]combo.LoadCase{p.strength, p.service} {
		for j := range cases {
			cases[j].Factors.Delete(name)
		}
	}
	p.loads = slices.DeleteFunc(p.loads, func(l combo.PrimaryLoad) bool { return l.Type == name })
	return nil
}

// Strategy returns the strategy of a load type
func (p *Project) Strategy(loadType string) combo.Strategy {
	return p.strategies.Of(loadType)
}

// SetStrategy changes the strategy of an existing load type
func (p *Project) SetStrategy(loadType string, s combo.Strategy) error {
	if !p.HasType(loadType) {
		return fmt.Errorf("%w: %q", ErrUnknownType, loadType)
	}
	if !s.Valid() {
		return fmt.Errorf("load type %q: invalid strategy %q", loadType, s)
	}
	p.strategies[loadType] = s
	return nil
}

// --- Load cases ---

func (p *Project) cases(seq Sequence) *[]combo.LoadCase {
	if seq == Service {
		return &p.service
	}
	return &p.strength
}

// Cases returns a deep copy of one sequence's cases
func (p *Project) Cases(seq Sequence) []combo.LoadCase {
	return combo.CloneCases(*p.cases(seq))
}

// AddCase appends an empty case to a sequence
func (p *Project) AddCase(seq Sequence) combo.LoadCase {
	c := combo.LoadCase{ID: p.ids.NewID()}
	list := p.cases(seq)
	*list = append(*list, c)
	return c
}

// RemoveCase deletes a case from a sequence
func (p *Project) RemoveCase(seq Sequence, id string) error {
	list := p.cases(seq)
	i := slices.IndexFunc(*list, func(c combo.LoadCase) bool { return c.ID == id })
	if i < 0 {
		return fmt.Errorf("%s case %q: %w", seq, id, ErrNotFound)
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// SetFactor stores the raw factor text for one type of a case. The text is
// not validated; anything that does not parse simply contributes nothing.
func (p *Project) SetFactor(seq Sequence, caseID, loadType, value string) error {
	if !p.HasType(loadType) {
		return fmt.Errorf("%w: %q", ErrUnknownType, loadType)
	}
	list := *p.cases(seq)
	i := slices.IndexFunc(list, func(c combo.LoadCase) bool { return c.ID == caseID })
	if i < 0 {
		return fmt.Errorf("%s case %q: %w", seq, caseID, ErrNotFound)
	}
	list[i].Factors.Set(loadType, value)
	return nil
}

// ApplyPreset appends the preset's cases to a sequence, registering any
// load type the preset uses that does not exist yet.
func (p *Project) ApplyPreset(seq Sequence, preset codes.Preset) ([]combo.LoadCase, error) {
	for _, t := range preset.Types() {
		if p.HasType(t) {
			continue
		}
		if err := p.AddType(t); err != nil {
			return nil, fmt.Errorf("preset %s: %w", preset.ID, err)
		}
	}

	added := make([]combo.LoadCase, 0, len(preset.Cases))
	list := p.cases(seq)
	for _, tmpl := range preset.Cases {
		c := combo.LoadCase{ID: p.ids.NewID(), Factors: tmpl.Factors.Clone()}
		*list = append(*list, c)
		added = append(added, c.Clone())
	}
	return added, nil
}

// --- Start numbers ---

// Start returns the raw start number text of a sequence
func (p *Project) Start(seq Sequence) string {
	if seq == Service {
		return p.serviceStart
	}
	return p.strengthStart
}

// SetStart stores the raw start number text of a sequence; any text is
// accepted and resolved when combinations are generated.
func (p *Project) SetStart(seq Sequence, raw string) {
	if seq == Service {
		p.serviceStart = raw
		return
	}
	p.strengthStart = raw
}
