package project

import (
	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/export"
)

// Snapshot returns a deep copy of everything an export depends on. Later
// edits to the project do not show through it.
func (p *Project) Snapshot(opts combo.RenderOptions) export.Request {
	return export.Request{
		Input:         combo.Input{Loads: p.loads, Strategies: p.strategies}.Clone(),
		Strength:      p.Cases(Strength),
		Service:       p.Cases(Service),
		StrengthStart: p.strengthStart,
		ServiceStart:  p.serviceStart,
		Options:       opts,
	}
}

// Export runs the orchestrator on a fresh snapshot
func (p *Project) Export(opts combo.RenderOptions) export.Result {
	return export.Orchestrate(p.Snapshot(opts))
}
