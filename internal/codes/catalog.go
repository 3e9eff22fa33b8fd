package codes

import "strings"

// DesignCode is a structural design standard selectable per country
type DesignCode struct {
	ID          string
	Name        string
	Description string
	// Presets holds the ids of presets derived from this code, if any
	Presets []string
}

// Country groups the design codes in force in one country
type Country struct {
	Code  string // ISO 3166-1 alpha-2
	Name  string
	Codes []DesignCode
}

// Catalog lists the known countries and their design codes
var Catalog = []Country{
	{
		Code: "IN",
		Name: "India",
		Codes: []DesignCode{
			{
				ID:          "IS_456",
				Name:        "IS 456:2000",
				Description: "Indian Standard for Plain and Reinforced Concrete",
			},
			{
				ID:          "IS_875",
				Name:        "IS 3370:2021 (Part 2)",
				Description: "Indian Standard for Concrete Structures for Water Retaining Structures",
			},
		},
	},
	{
		Code: "PH",
		Name: "Philippines",
		Codes: []DesignCode{
			{
				ID:          "NSCP_2015",
				Name:        "NSCP 2015",
				Description: "National Structural Code of the Philippines, Volume 1",
				Presets:     []string{nscpStrength.ID, nscpGravity.ID, nscpService.ID},
			},
		},
	},
}

// FindCountry looks a country up by its code, ignoring case
func FindCountry(code string) (Country, bool) {
	for _, c := range Catalog {
		if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
			return c, true
		}
	}
	return Country{}, false
}

// FindCode looks a design code up within a country
func (c Country) FindCode(id string) (DesignCode, bool) {
	for _, dc := range c.Codes {
		if dc.ID == id {
			return dc, true
		}
	}
	return DesignCode{}, false
}
