package project

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexiusacademia/loadcomb/internal/codes"
	"github.com/alexiusacademia/loadcomb/internal/combo"
)

func newTestProject() *Project {
	return New(NewSequence("id"))
}

func mustAddLoad(t *testing.T, p *Project, name, loadType string) combo.PrimaryLoad {
	t.Helper()
	l, err := p.AddLoad(name, loadType)
	if err != nil {
		t.Fatalf("AddLoad(%q, %q): %v", name, loadType, err)
	}
	return l
}

func TestNewProjectDefaults(t *testing.T) {
	p := newTestProject()

	if diff := cmp.Diff(BuiltinTypes, p.Types()); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
	for _, bt := range BuiltinTypes {
		if s := p.Strategy(bt); s != combo.Separate {
			t.Errorf("Strategy(%q) = %q; want Separate", bt, s)
		}
	}
	if p.Start(Strength) != "101" || p.Start(Service) != "501" {
		t.Errorf("starts = %q/%q; want 101/501", p.Start(Strength), p.Start(Service))
	}
	if got := p.Export(combo.RenderOptions{}).Text; got == "" {
		t.Error("empty project exported no placeholder")
	}
}

func TestAddLoad(t *testing.T) {
	p := newTestProject()

	l := mustAddLoad(t, p, "  Slab  ", "")
	if l.Name != "Slab" || l.Type != "Dead Load" || l.ID != "id-1" {
		t.Errorf("got %+v", l)
	}

	if _, err := p.AddLoad("   ", "Live Load"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: err = %v; want ErrEmptyName", err)
	}
	if _, err := p.AddLoad("Crane", "Crane Load"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type: err = %v; want ErrUnknownType", err)
	}
	if n := len(p.Loads()); n != 1 {
		t.Errorf("%d loads after rejected adds; want 1", n)
	}
}

func TestLoadsReturnsCopy(t *testing.T) {
	p := newTestProject()
	mustAddLoad(t, p, "Slab", "Dead Load")

	loads := p.Loads()
	loads[0].Name = "changed"

	if p.Loads()[0].Name != "Slab" {
		t.Error("mutating Loads() result changed the project")
	}
}

func TestEditLoad(t *testing.T) {
	p := newTestProject()
	l := mustAddLoad(t, p, "Slab", "Dead Load")

	if err := p.RenameLoad(l.ID, "Topping"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetLoadType(l.ID, "Live Load"); err != nil {
		t.Fatal(err)
	}
	if got := p.Loads()[0]; got.Name != "Topping" || got.Type != "Live Load" {
		t.Errorf("got %+v", got)
	}

	if err := p.SetLoadType(l.ID, "Nope"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("SetLoadType(unknown) err = %v", err)
	}
	if err := p.RenameLoad("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RenameLoad(missing) err = %v", err)
	}
	if err := p.RemoveLoad(l.ID); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveLoad(l.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second RemoveLoad err = %v", err)
	}
}

func TestMoveLoad(t *testing.T) {
	p := newTestProject()
	for _, name := range []string{"A", "B", "C", "D"} {
		mustAddLoad(t, p, name, "Dead Load")
	}

	if err := p.MoveLoad(0, 2); err != nil {
		t.Fatal(err)
	}
	names := func() []string {
		var out []string
		for _, l := range p.Loads() {
			out = append(out, l.Name)
		}
		return out
	}
	if diff := cmp.Diff([]string{"B", "C", "A", "D"}, names()); diff != "" {
		t.Errorf("after move 0->2 (-want +got):\n%s", diff)
	}

	if err := p.MoveLoad(3, 0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"D", "B", "C", "A"}, names()); diff != "" {
		t.Errorf("after move 3->0 (-want +got):\n%s", diff)
	}

	if err := p.MoveLoad(0, 4); err == nil {
		t.Error("MoveLoad out of range succeeded")
	}
}

func TestMoveLoadChangesIndices(t *testing.T) {
	p := newTestProject()
	mustAddLoad(t, p, "A", "Dead Load")
	mustAddLoad(t, p, "B", "Dead Load")
	c := p.AddCase(Strength)
	if err := p.SetFactor(Strength, c.ID, "Dead Load", "1.4"); err != nil {
		t.Fatal(err)
	}
	if err := p.MoveLoad(1, 0); err != nil {
		t.Fatal(err)
	}

	got := p.Export(combo.RenderOptions{Compact: true}).Strength.Text

	want := "LOAD COMB 101 1.40 B\n1 1.40\nLOAD COMB 102 1.40 A\n2 1.40\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTypes(t *testing.T) {
	p := newTestProject()

	if err := p.AddType(" Crane Load "); err != nil {
		t.Fatal(err)
	}
	if err := p.AddType("Crane Load"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate AddType err = %v", err)
	}
	if err := p.AddType("Dead Load"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("built-in AddType err = %v", err)
	}
	if err := p.AddType(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank AddType err = %v", err)
	}
	if got := p.Types(); got[len(got)-1] != "Crane Load" || len(got) != len(BuiltinTypes)+1 {
		t.Errorf("Types() = %v", got)
	}

	if err := p.RemoveType("Dead Load"); !errors.Is(err, ErrBuiltinType) {
		t.Errorf("RemoveType(built-in) err = %v", err)
	}
	if err := p.RemoveType("Hail Load"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveType(missing) err = %v", err)
	}
}

func TestRemoveTypeCascades(t *testing.T) {
	p := newTestProject()
	if err := p.AddType("Crane Load"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetStrategy("Crane Load", combo.Matrix); err != nil {
		t.Fatal(err)
	}
	mustAddLoad(t, p, "Slab", "Dead Load")
	mustAddLoad(t, p, "Crane 1", "Crane Load")
	mustAddLoad(t, p, "Crane 2", "Crane Load")

	for _, seq := range []Sequence{Strength, Service} {
		c := p.AddCase(seq)
		if err := p.SetFactor(seq, c.ID, "Crane Load", "1.6"); err != nil {
			t.Fatal(err)
		}
		if err := p.SetFactor(seq, c.ID, "Dead Load", "1.2"); err != nil {
			t.Fatal(err)
		}
	}

	if err := p.RemoveType("Crane Load"); err != nil {
		t.Fatal(err)
	}

	if p.HasType("Crane Load") {
		t.Error("type still present")
	}
	if s := p.Strategy("Crane Load"); s != combo.Separate {
		t.Errorf("strategy entry survived: %q", s)
	}
	if loads := p.Loads(); len(loads) != 1 || loads[0].Name != "Slab" {
		t.Errorf("loads = %+v; want only Slab", loads)
	}
	for _, seq := range []Sequence{Strength, Service} {
		want := combo.Factors{{Type: "Dead Load", Value: "1.2"}}
		if diff := cmp.Diff(want, p.Cases(seq)[0].Factors); diff != "" {
			t.Errorf("%s factors (-want +got):\n%s", seq, diff)
		}
	}
}

func TestSetStrategy(t *testing.T) {
	p := newTestProject()

	if err := p.SetStrategy("Live Load", combo.Aggregate); err != nil {
		t.Fatal(err)
	}
	if s := p.Strategy("Live Load"); s != combo.Aggregate {
		t.Errorf("Strategy = %q", s)
	}
	if err := p.SetStrategy("Nope", combo.Matrix); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type err = %v", err)
	}
	if err := p.SetStrategy("Live Load", combo.Strategy("Envelope")); err == nil {
		t.Error("invalid strategy accepted")
	}
}

func TestCases(t *testing.T) {
	p := newTestProject()
	a := p.AddCase(Strength)
	b := p.AddCase(Strength)
	s := p.AddCase(Service)

	if err := p.SetFactor(Strength, a.ID, "Live Load", "1.6"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetFactor(Strength, a.ID, "Dead Load", "1.2"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetFactor(Strength, a.ID, "Live Load", "1.0"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetFactor(Strength, s.ID, "Dead Load", "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetFactor on the wrong sequence err = %v", err)
	}
	if err := p.SetFactor(Strength, a.ID, "Hail Load", "1"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("SetFactor(unknown type) err = %v", err)
	}

	want := combo.Factors{{Type: "Live Load", Value: "1.0"}, {Type: "Dead Load", Value: "1.2"}}
	if diff := cmp.Diff(want, p.Cases(Strength)[0].Factors); diff != "" {
		t.Errorf("factors (-want +got):\n%s", diff)
	}

	if err := p.RemoveCase(Strength, b.ID); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveCase(Service, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveCase(missing) err = %v", err)
	}
	if len(p.Cases(Strength)) != 1 || len(p.Cases(Service)) != 1 {
		t.Errorf("cases = %d/%d; want 1/1", len(p.Cases(Strength)), len(p.Cases(Service)))
	}
}

func TestApplyPreset(t *testing.T) {
	p := newTestProject()
	preset, ok := codes.FindPreset("nscp-2015-strength")
	if !ok {
		t.Fatal("preset not found")
	}

	added, err := p.ApplyPreset(Strength, preset)
	if err != nil {
		t.Fatal(err)
	}

	if len(added) != len(preset.Cases) || len(p.Cases(Strength)) != len(preset.Cases) {
		t.Errorf("added %d cases; want %d", len(added), len(preset.Cases))
	}
	for _, typ := range []string{codes.Roof, codes.Rain} {
		if !p.HasType(typ) {
			t.Errorf("preset type %q was not registered", typ)
		}
	}

	// Editing the project must not reach back into the preset table
	if err := p.SetFactor(Strength, added[0].ID, "Dead Load", "9"); err != nil {
		t.Fatal(err)
	}
	if v, _ := preset.Cases[0].Factors.Get("Dead Load"); v != "1.4" {
		t.Errorf("preset template changed to %q", v)
	}

	// Applying twice neither fails nor duplicates the types
	if _, err := p.ApplyPreset(Strength, preset); err != nil {
		t.Fatal(err)
	}
	if n := len(p.Types()); n != len(BuiltinTypes)+2 {
		t.Errorf("%d types after second apply; want %d", n, len(BuiltinTypes)+2)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	p := newTestProject()
	mustAddLoad(t, p, "Slab", "Dead Load")
	c := p.AddCase(Strength)
	if err := p.SetFactor(Strength, c.ID, "Dead Load", "1.4"); err != nil {
		t.Fatal(err)
	}

	snap := p.Snapshot(combo.RenderOptions{})

	mustAddLoad(t, p, "Wall", "Dead Load")
	if err := p.SetFactor(Strength, c.ID, "Dead Load", "1.2"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetStrategy("Dead Load", combo.Aggregate); err != nil {
		t.Fatal(err)
	}
	p.SetStart(Strength, "1")

	if len(snap.Input.Loads) != 1 {
		t.Errorf("snapshot sees %d loads", len(snap.Input.Loads))
	}
	if v, _ := snap.Strength[0].Factors.Get("Dead Load"); v != "1.4" {
		t.Errorf("snapshot factor = %q", v)
	}
	if s := snap.Input.Strategies.Of("Dead Load"); s != combo.Separate {
		t.Errorf("snapshot strategy = %q", s)
	}
	if snap.StrengthStart != "101" {
		t.Errorf("snapshot start = %q", snap.StrengthStart)
	}
}

func TestExportEndToEnd(t *testing.T) {
	p := newTestProject()
	mustAddLoad(t, p, "A", "Dead Load")
	mustAddLoad(t, p, "B", "Dead Load")
	mustAddLoad(t, p, "C", "Live Load")
	if err := p.SetStrategy("Dead Load", combo.Matrix); err != nil {
		t.Fatal(err)
	}
	c := p.AddCase(Strength)
	for _, f := range (combo.Factors{{Type: "Dead Load", Value: "1.2"}, {Type: "Live Load", Value: "1.6"}}) {
		if err := p.SetFactor(Strength, c.ID, f.Type, f.Value); err != nil {
			t.Fatal(err)
		}
	}
	s := p.AddCase(Service)
	if err := p.SetFactor(Service, s.ID, "Dead Load", "1"); err != nil {
		t.Fatal(err)
	}
	p.SetStart(Service, "")

	res := p.Export(combo.RenderOptions{})

	if res.Strength.Count != 3 {
		t.Errorf("strength count = %d; want 3", res.Strength.Count)
	}
	if res.Service.Start != 104 || res.Service.Count != 3 {
		t.Errorf("service = start %d count %d; want 104, 3", res.Service.Start, res.Service.Count)
	}
}

func TestParseSequence(t *testing.T) {
	for raw, want := range map[string]Sequence{"strength": Strength, "ULS": Strength, " service ": Service, "sls": Service} {
		got, err := ParseSequence(raw)
		if err != nil || got != want {
			t.Errorf("ParseSequence(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseSequence("wind"); err == nil {
		t.Error("ParseSequence(wind) succeeded")
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequence("case")
	if a, b := g.NewID(), g.NewID(); a != "case-1" || b != "case-2" {
		t.Errorf("got %q, %q", a, b)
	}
	if a, b := (UUIDGenerator{}).NewID(), (UUIDGenerator{}).NewID(); a == b || len(a) != 36 {
		t.Errorf("uuids %q, %q", a, b)
	}
}
