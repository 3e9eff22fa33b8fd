package cmd

import (
	"log/slog"

	"github.com/alexiusacademia/loadcomb/internal/combo"
	"github.com/alexiusacademia/loadcomb/internal/diagram"
	"github.com/alexiusacademia/loadcomb/internal/export"
	"github.com/alexiusacademia/loadcomb/internal/project"
	"github.com/spf13/cobra"
)

// projectFlags are the inputs shared by every command reading a project file
type projectFlags struct {
	file          string
	strengthStart string
	serviceStart  string
	compact       bool
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to project YAML or JSON file [required]")
	cmd.Flags().StringVar(&f.strengthStart, "strength-start", "", "First strength combination number (overrides the file)")
	cmd.Flags().StringVar(&f.serviceStart, "service-start", "", "First service combination number (overrides the file)")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "Omit the blank line after each combination")
	cmd.MarkFlagRequired("file")
}

// load reads the project file and applies flag overrides
func (f *projectFlags) load(cmd *cobra.Command) (*project.Project, error) {
	p, err := project.LoadFile(f.file, nil)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("strength-start") {
		p.SetStart(project.Strength, f.strengthStart)
	}
	if cmd.Flags().Changed("service-start") {
		p.SetStart(project.Service, f.serviceStart)
	}
	slog.Debug("project loaded",
		"file", f.file,
		"loads", len(p.Loads()),
		"types", len(p.Types()),
		"strength_cases", len(p.Cases(project.Strength)),
		"service_cases", len(p.Cases(project.Service)),
	)
	return p, nil
}

func (f *projectFlags) renderOptions() combo.RenderOptions {
	return combo.RenderOptions{Compact: f.compact}
}

// exportProject runs the orchestrator and logs the numbering it settled on
func exportProject(p *project.Project, opts combo.RenderOptions) (export.Request, export.Result) {
	req := p.Snapshot(opts)
	res := export.Orchestrate(req)
	slog.Debug("combinations generated",
		"strength_start", res.Strength.Start,
		"strength_count", res.Strength.Count,
		"service_requested", res.ServiceRequested,
		"service_start", res.Service.Start,
		"service_count", res.Service.Count,
	)
	if res.Service.Start != res.ServiceRequested {
		slog.Debug("service start raised past strength sequence",
			"requested", res.ServiceRequested, "actual", res.Service.Start)
	}
	return req, res
}

func matrixOf(req export.Request, res export.Result) diagram.MatrixData {
	return diagram.BuildMatrix(req.Input.Loads,
		diagram.Section{Title: "STRENGTH", Batch: res.Strength},
		diagram.Section{Title: "SERVICE", Batch: res.Service},
	)
}
