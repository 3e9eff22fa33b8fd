package combo

import "testing"

func TestParseFactor(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"1.2", 1.2, true},
		{"  1.5", 1.5, true},
		{"1.5kN", 1.5, true},
		{"-1.4", -1.4, true},
		{"+2", 2, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e2", 100, true},
		{"1e", 1, true},
		{"2.5e-1x", 0.25, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"0", 0, false},
		{"0.000", 0, false},
		{"-0", 0, false},
		{"1e999", 0, false},
		{"Infinity", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFactor(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseFactor(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseStart(t *testing.T) {
	const fallback = 101
	tests := []struct {
		raw  string
		want int
	}{
		{"", fallback},
		{"abc", fallback},
		{"0", fallback},
		{"-0", fallback},
		{"99999999999999999999", fallback},
		{"1", 1},
		{"501", 501},
		{"  7", 7},
		{"12.9", 12},
		{"3abc", 3},
		{"-5", -5},
		{"+8", 8},
	}

	for _, tt := range tests {
		if got := ParseStart(tt.raw, fallback); got != tt.want {
			t.Errorf("ParseStart(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestLoadCaseValid(t *testing.T) {
	tests := []struct {
		name    string
		factors Factors
		want    bool
	}{
		{"empty", nil, false},
		{"blank values", Factors{{"Dead Load", ""}, {"Live Load", " "}}, false},
		{"zero and junk", Factors{{"Dead Load", "0"}, {"Live Load", "x"}}, false},
		{"one non-zero", Factors{{"Dead Load", "0"}, {"Live Load", "1.6"}}, true},
		{"negative", Factors{{"Wind Load", "-1"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (LoadCase{Factors: tt.factors}).Valid(); got != tt.want {
				t.Errorf("Valid() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for raw, want := range map[string]Strategy{
		"Separate":  Separate,
		"aggregate": Aggregate,
		" MATRIX ":  Matrix,
	} {
		got, err := ParseStrategy(raw)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}

	if _, err := ParseStrategy("Envelope"); err == nil {
		t.Error("ParseStrategy(Envelope) succeeded; want error")
	}
}

func TestStrategiesOf(t *testing.T) {
	s := Strategies{"Dead Load": Matrix, "Bogus": Strategy("Nope")}

	if got := s.Of("Dead Load"); got != Matrix {
		t.Errorf("Of(Dead Load) = %q; want Matrix", got)
	}
	if got := s.Of("Live Load"); got != Separate {
		t.Errorf("Of(missing) = %q; want Separate", got)
	}
	if got := s.Of("Bogus"); got != Separate {
		t.Errorf("Of(invalid) = %q; want Separate", got)
	}
	if got := Strategies(nil).Of("Dead Load"); got != Separate {
		t.Errorf("nil table Of = %q; want Separate", got)
	}
}

func TestFactorsKeepInsertionOrder(t *testing.T) {
	var f Factors
	f.Set("Live Load", "1.6")
	f.Set("Dead Load", "1.2")
	f.Set("Live Load", "1.0")

	if len(f) != 2 || f[0].Type != "Live Load" || f[0].Value != "1.0" || f[1].Type != "Dead Load" {
		t.Fatalf("factors = %v; want [Live Load 1.0, Dead Load 1.2]", f)
	}

	clone := f.Clone()
	if !f.Delete("Live Load") {
		t.Fatal("Delete(Live Load) = false")
	}
	if f.Delete("Live Load") {
		t.Error("second Delete(Live Load) = true")
	}
	if len(clone) != 2 || clone[0].Type != "Live Load" {
		t.Errorf("clone changed after delete: %v", clone)
	}
	if v, ok := f.Get("Dead Load"); !ok || v != "1.2" {
		t.Errorf("Get(Dead Load) = %q, %v", v, ok)
	}
}
