// Package version holds build metadata. Version, GitCommit and BuildTime
// are overridden at link time:
//
//	go build -ldflags "-X github.com/alexiusacademia/loadcomb/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const (
	Name   = "loadcomb"
	Title  = "Load Combination Generator"
	Author = "Alexius Academia"
	Year   = "2025"
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}

// Build describes the commit and build time, "unknown" for local builds
func Build() string {
	return fmt.Sprintf("commit %s, built %s", GitCommit, BuildTime)
}
