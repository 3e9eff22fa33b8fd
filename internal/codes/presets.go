package codes

import "github.com/alexiusacademia/loadcomb/internal/combo"

// Load type names used by the presets. The first five match the built-in
// types; Roof Live Load and Rain Load are added as user types on demand.
const (
	Dead    = "Dead Load"
	Live    = "Live Load"
	Wind    = "Wind Load"
	Seismic = "Seismic Load"
	Roof    = "Roof Live Load"
	Rain    = "Rain Load"
)

// Sequence names a preset targets
const (
	SequenceStrength = "strength"
	SequenceService  = "service"
)

// CaseTemplate is one load case of a preset
type CaseTemplate struct {
	ID          string
	Description string
	Factors     combo.Factors
}

// Preset is a ready-made list of load cases from a design code.
// "(Lr or R)" style alternatives are spelled out as separate cases since a
// load case carries exactly one factor per type.
type Preset struct {
	ID          string
	Code        string
	Sequence    string
	Description string
	Cases       []CaseTemplate
}

// Types returns the load types referenced by the preset in first-use order
func (p Preset) Types() []string {
	seen := make(map[string]bool)
	var types []string
	for _, c := range p.Cases {
		for _, f := range c.Factors {
			if !seen[f.Type] {
				seen[f.Type] = true
				types = append(types, f.Type)
			}
		}
	}
	return types
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations (strength design),
// with f1 = 1.0
var nscpStrength = Preset{
	ID:          "nscp-2015-strength",
	Code:        "NSCP_2015",
	Sequence:    SequenceStrength,
	Description: "NSCP 2015 Section 203.3.1 basic load combinations (strength design)",
	Cases: []CaseTemplate{
		{ID: "1", Description: "1.4D", Factors: combo.Factors{
			{Type: Dead, Value: "1.4"},
		}},
		{ID: "2a", Description: "1.2D + 1.6L + 0.5Lr", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Live, Value: "1.6"}, {Type: Roof, Value: "0.5"},
		}},
		{ID: "2b", Description: "1.2D + 1.6L + 0.5R", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Live, Value: "1.6"}, {Type: Rain, Value: "0.5"},
		}},
		{ID: "3a", Description: "1.2D + 1.6Lr + 1.0L", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Roof, Value: "1.6"}, {Type: Live, Value: "1.0"},
		}},
		{ID: "3b", Description: "1.2D + 1.6Lr + 0.5W", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Roof, Value: "1.6"}, {Type: Wind, Value: "0.5"},
		}},
		{ID: "3c", Description: "1.2D + 1.6R + 1.0L", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Rain, Value: "1.6"}, {Type: Live, Value: "1.0"},
		}},
		{ID: "3d", Description: "1.2D + 1.6R + 0.5W", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Rain, Value: "1.6"}, {Type: Wind, Value: "0.5"},
		}},
		{ID: "4a", Description: "1.2D + 1.0W + 1.0L + 0.5Lr", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Wind, Value: "1.0"}, {Type: Live, Value: "1.0"}, {Type: Roof, Value: "0.5"},
		}},
		{ID: "4b", Description: "1.2D + 1.0W + 1.0L + 0.5R", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Wind, Value: "1.0"}, {Type: Live, Value: "1.0"}, {Type: Rain, Value: "0.5"},
		}},
		{ID: "5", Description: "1.2D + 1.0E + 1.0L", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Seismic, Value: "1.0"}, {Type: Live, Value: "1.0"},
		}},
		{ID: "6", Description: "0.9D + 1.0W", Factors: combo.Factors{
			{Type: Dead, Value: "0.9"}, {Type: Wind, Value: "1.0"},
		}},
		{ID: "7", Description: "0.9D + 1.0E", Factors: combo.Factors{
			{Type: Dead, Value: "0.9"}, {Type: Seismic, Value: "1.0"},
		}},
	},
}

// Simplified gravity-only strength combinations
var nscpGravity = Preset{
	ID:          "nscp-2015-gravity",
	Code:        "NSCP_2015",
	Sequence:    SequenceStrength,
	Description: "NSCP 2015 gravity-only combinations (1.4D and 1.2D + 1.6L)",
	Cases: []CaseTemplate{
		{ID: "1", Description: "1.4D", Factors: combo.Factors{
			{Type: Dead, Value: "1.4"},
		}},
		{ID: "2", Description: "1.2D + 1.6L", Factors: combo.Factors{
			{Type: Dead, Value: "1.2"}, {Type: Live, Value: "1.6"},
		}},
	},
}

// NSCP 2015 Section 203.4.1 - Basic Load Combinations (allowable stress),
// used for serviceability checks
var nscpService = Preset{
	ID:          "nscp-2015-service",
	Code:        "NSCP_2015",
	Sequence:    SequenceService,
	Description: "NSCP 2015 Section 203.4.1 basic load combinations (allowable stress)",
	Cases: []CaseTemplate{
		{ID: "1", Description: "D", Factors: combo.Factors{
			{Type: Dead, Value: "1"},
		}},
		{ID: "2", Description: "D + L", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Live, Value: "1"},
		}},
		{ID: "3a", Description: "D + Lr", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Roof, Value: "1"},
		}},
		{ID: "3b", Description: "D + R", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Rain, Value: "1"},
		}},
		{ID: "4a", Description: "D + 0.75L + 0.75Lr", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Live, Value: "0.75"}, {Type: Roof, Value: "0.75"},
		}},
		{ID: "4b", Description: "D + 0.75L + 0.75R", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Live, Value: "0.75"}, {Type: Rain, Value: "0.75"},
		}},
		{ID: "5a", Description: "D + 0.6W", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Wind, Value: "0.6"},
		}},
		{ID: "5b", Description: "D + 0.7E", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Seismic, Value: "0.7"},
		}},
		{ID: "6a", Description: "D + 0.75(0.6W) + 0.75L + 0.75Lr", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Wind, Value: "0.45"}, {Type: Live, Value: "0.75"}, {Type: Roof, Value: "0.75"},
		}},
		{ID: "6b", Description: "D + 0.75(0.6W) + 0.75L + 0.75R", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Wind, Value: "0.45"}, {Type: Live, Value: "0.75"}, {Type: Rain, Value: "0.75"},
		}},
		{ID: "7", Description: "D + 0.75(0.7E) + 0.75L", Factors: combo.Factors{
			{Type: Dead, Value: "1"}, {Type: Seismic, Value: "0.525"}, {Type: Live, Value: "0.75"},
		}},
		{ID: "8", Description: "0.6D + 0.6W", Factors: combo.Factors{
			{Type: Dead, Value: "0.6"}, {Type: Wind, Value: "0.6"},
		}},
		{ID: "9", Description: "0.6D + 0.7E", Factors: combo.Factors{
			{Type: Dead, Value: "0.6"}, {Type: Seismic, Value: "0.7"},
		}},
	},
}

// Presets lists every available preset
var Presets = []Preset{nscpStrength, nscpGravity, nscpService}

// FindPreset looks a preset up by id
func FindPreset(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
