package combo

import (
	"fmt"
	"strings"
)

// Strategy controls how several primary loads sharing one load type
// co-occur inside a single expanded combination.
type Strategy string

const (
	// Separate: N loads -> N mutually exclusive sets
	Separate Strategy = "Separate"
	// Aggregate: N loads -> 1 set, all present together
	Aggregate Strategy = "Aggregate"
	// Matrix: N loads -> 2^N-1 sets, every non-empty subset
	Matrix Strategy = "Matrix"
)

// AllStrategies lists every strategy in display order
var AllStrategies = []Strategy{Separate, Aggregate, Matrix}

// Valid reports whether s is one of the known strategies
func (s Strategy) Valid() bool {
	switch s {
	case Separate, Aggregate, Matrix:
		return true
	}
	return false
}

// ParseStrategy parses a strategy name, ignoring case and surrounding space
func ParseStrategy(raw string) (Strategy, error) {
	name := strings.TrimSpace(raw)
	for _, s := range AllStrategies {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", &ValidationError{msg: fmt.Sprintf("unknown strategy %q (want Separate, Aggregate or Matrix)", raw)}
}

// PrimaryLoad is a single named, typed load contributor
type PrimaryLoad struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Strategies maps a load type name to its combination strategy.
// Types without an entry expand as Separate.
type Strategies map[string]Strategy

// Of returns the strategy for a load type, Separate when absent or unknown
func (s Strategies) Of(loadType string) Strategy {
	if v, ok := s[loadType]; ok && v.Valid() {
		return v
	}
	return Separate
}

// Clone returns an independent copy of the table
func (s Strategies) Clone() Strategies {
	out := make(Strategies, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Factor is one load type column of a load case, kept as the raw text the
// user typed.
type Factor struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Factors is an insertion-ordered map from load type to raw factor text.
// Expansion walks types in this order.
type Factors []Factor

// Get returns the raw value for a load type
func (f Factors) Get(loadType string) (string, bool) {
	for _, e := range f {
		if e.Type == loadType {
			return e.Value, true
		}
	}
	return "", false
}

// Set assigns a value, keeping the position of an existing key
func (f *Factors) Set(loadType, value string) {
	for i := range *f {
		if (*f)[i].Type == loadType {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Factor{Type: loadType, Value: value})
}

// Delete removes a load type key, reporting whether it was present
func (f *Factors) Delete(loadType string) bool {
	for i := range *f {
		if (*f)[i].Type == loadType {
			*f = append((*f)[:i:i], (*f)[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns an independent copy
func (f Factors) Clone() Factors {
	if f == nil {
		return nil
	}
	out := make(Factors, len(f))
	copy(out, f)
	return out
}

// LoadCase assigns a factor per load type, before expansion
type LoadCase struct {
	ID      string  `json:"id" yaml:"id"`
	Factors Factors `json:"factors" yaml:"factors"`
}

// Valid reports whether at least one factor parses to a non-zero number
func (c LoadCase) Valid() bool {
	for _, f := range c.Factors {
		if _, ok := ParseFactor(f.Value); ok {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the case
func (c LoadCase) Clone() LoadCase {
	return LoadCase{ID: c.ID, Factors: c.Factors.Clone()}
}

// CloneCases deep-copies a case list
func CloneCases(cases []LoadCase) []LoadCase {
	if cases == nil {
		return nil
	}
	out := make([]LoadCase, len(cases))
	for i, c := range cases {
		out[i] = c.Clone()
	}
	return out
}

// Combination maps a primary load id to its factor in one expanded record
type Combination map[string]float64

// Input is the load set every expansion of a batch works against
type Input struct {
	// Loads in their current order; position i renders as load index i+1
	Loads []PrimaryLoad
	// Strategies per load type
	Strategies Strategies
}

// Clone returns a deep copy so callers can hand out immutable snapshots
func (in Input) Clone() Input {
	loads := make([]PrimaryLoad, len(in.Loads))
	copy(loads, in.Loads)
	return Input{Loads: loads, Strategies: in.Strategies.Clone()}
}

// ValidationError represents invalid user input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
