package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func gradeColor(grade string) string {
	if noColor() {
		return ""
	}
	switch grade {
	case scoring.GradeS, scoring.GradeA:
		return colorGreen
	case scoring.GradeB, scoring.GradeC:
		return colorYellow
	case scoring.GradeD:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, report *Report) error {
	if len(report.Grades) > 0 {
		r.renderGrades(w, report.Grades)
	}
	if len(report.Rankings) > 0 {
		r.renderRankings(w, report.Rankings)
	}
	if report.Assignment != nil {
		r.renderAssignment(w, report)
	} else if report.NoAssignment {
		fmt.Fprintln(w, "No recommendation available: not enough artifacts to fill a loadout.")
	}
	return nil
}

func (r *TerminalRenderer) renderGrades(w io.Writer, grades []scoring.GradeResult) {
	for _, g := range grades {
		gc := gradeColor(g.Grade)
		fmt.Fprintf(w, "%s\n",
			bold(fmt.Sprintf("%s %s — Grade %s, Score %.1f (%s)",
				titleCase(string(g.Artifact.Slot)), g.Artifact.SetID,
				colored(g.Grade, gc), g.Score, g.Tier)))
		fmt.Fprintf(w, "  crit value %.1f, level %d, %d★\n",
			g.CritValue, g.Artifact.Level, g.Artifact.Rarity)

		for _, sub := range g.SubStatBreakdown {
			fmt.Fprintf(w, "    %s\n",
				dim(fmt.Sprintf("%-20s %8.1f  -> %5.1f", sub.Stat, sub.Value, sub.Contribution)))
		}
		if g.Projection.RemainingSteps > 0 {
			fmt.Fprintf(w, "  at +20: best %.1f / avg %.1f / worst %.1f (%d rolls left)\n",
				g.Projection.Best, g.Projection.Average, g.Projection.Worst,
				g.Projection.RemainingSteps)
		}
		fmt.Fprintln(w)
	}
}

func (r *TerminalRenderer) renderRankings(w io.Writer, rankings map[artifact.Slot][]scoring.ScoredArtifact) {
	for _, slot := range artifact.Slots {
		candidates, ok := rankings[slot]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\n", bold(titleCase(string(slot))))
		for i, sa := range candidates {
			match := ""
			if !sa.MainStatMatch {
				match = dim(" (off main stat)")
			}
			fmt.Fprintf(w, "  %d. %-24s %6.1f%s\n", i+1, sa.Artifact.SetID, sa.Score, match)
		}
		fmt.Fprintln(w)
	}
}

func (r *TerminalRenderer) renderAssignment(w io.Writer, report *Report) {
	a := report.Assignment
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Optimal loadout — total score %.1f", a.TotalScore)))

	for _, slot := range artifact.Slots {
		sa, ok := a.Slots[slot]
		if !ok {
			fmt.Fprintf(w, "  %-8s %s\n", slot, dim("(empty)"))
			continue
		}
		fmt.Fprintf(w, "  %-8s %-24s %6.1f  %s +%d\n",
			slot, sa.Artifact.SetID, sa.Score, dim(string(sa.Artifact.MainStat)), sa.Artifact.Level)
	}

	if a.SetBonusDescription != "" {
		fmt.Fprintf(w, "\nSet bonus: %s\n", a.SetBonusDescription)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
