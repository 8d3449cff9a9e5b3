// Package surface defines output rendering interfaces for Relicsmith
// results. Implementations handle different output targets: terminal,
// Markdown, JSON.
package surface

import (
	"io"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/optimize"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// Report is the renderable outcome of a grade, rank or optimize run.
// Only the sections a command produced are set.
type Report struct {
	Grades     []scoring.GradeResult                      `json:"grades,omitempty"`
	Rankings   map[artifact.Slot][]scoring.ScoredArtifact `json:"rankings,omitempty"`
	Assignment *optimize.Assignment                       `json:"assignment,omitempty"`
	// NoAssignment marks an optimize run that found no feasible loadout.
	NoAssignment bool `json:"no_assignment,omitempty"`
}

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *Report) error
}
