package export

import (
	"strings"

	"github.com/alexiusacademia/loadcomb/internal/combo"
)

const (
	// DefaultStrengthStart is used when the strength start is blank or not a number
	DefaultStrengthStart = 101

	separator      = "********************************"
	strengthBanner = "************STRENGTH************"
	serviceBanner  = "************SERVICE*************"

	// Placeholder is returned when neither sequence produced a combination
	Placeholder = "Add a primary load factor (e.g., 1.2) to one of the load type columns in the ULS or SLS Table to generate combinations."
)

// Request is an immutable snapshot of everything one export depends on
type Request struct {
	Input    combo.Input
	Strength []combo.LoadCase
	Service  []combo.LoadCase

	// Free-form start numbers as typed; blank or non-numeric is allowed
	StrengthStart string
	ServiceStart  string

	Options combo.RenderOptions
}

// Result holds the composed export text and both batches behind it
type Result struct {
	Text     string
	Strength combo.Batch
	Service  combo.Batch

	// ServiceRequested is the service start asked for before clamping
	ServiceRequested int
}

// Empty reports whether neither sequence produced a combination
func (r Result) Empty() bool {
	return r.Strength.Count == 0 && r.Service.Count == 0
}

// Orchestrate generates the strength sequence, then the service sequence.
// The service sequence never starts before the number following the last
// strength combination; a lower requested start is raised to it.
func Orchestrate(req Request) Result {
	strengthStart := combo.ParseStart(req.StrengthStart, DefaultStrengthStart)
	strength := combo.GenerateCombinations(req.Input, req.Strength, strengthStart, req.Options)

	next := strength.Next()
	requested := combo.ParseStart(req.ServiceStart, next)
	service := combo.GenerateCombinations(req.Input, req.Service, max(requested, next), req.Options)

	return Result{
		Text:             compose(strength, service),
		Strength:         strength,
		Service:          service,
		ServiceRequested: requested,
	}
}

// MinServiceStart returns the lowest number the service sequence may start
// at for the given strength cases and start text.
func MinServiceStart(in combo.Input, strength []combo.LoadCase, strengthStart string) int {
	start := combo.ParseStart(strengthStart, DefaultStrengthStart)
	return combo.GenerateCombinations(in, strength, start, combo.RenderOptions{}).Next()
}

func compose(strength, service combo.Batch) string {
	if strength.Count == 0 && service.Count == 0 {
		return Placeholder
	}

	var sb strings.Builder
	if strength.Count > 0 {
		writeBanner(&sb, strengthBanner)
		sb.WriteString(strength.Text)
	}
	if service.Count > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		writeBanner(&sb, serviceBanner)
		sb.WriteString(service.Text)
	}
	return sb.String()
}

func writeBanner(sb *strings.Builder, banner string) {
	sb.WriteString(separator)
	sb.WriteString("\n")
	sb.WriteString(banner)
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")
}
