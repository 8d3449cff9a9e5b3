package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// MarkdownRenderer renders a Report as a Markdown document, suitable
// for pasting into issues or chat.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, buildMarkdown(report))
	return err
}

func buildMarkdown(report *Report) string {
	var sb strings.Builder

	if len(report.Grades) > 0 {
		sb.WriteString("## Artifact grades\n\n")
		sb.WriteString("| Slot | Set | Score | Grade | Tier | Crit value |\n")
		sb.WriteString("|------|-----|-------|-------|------|------------|\n")
		for _, g := range report.Grades {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %s | %s | %.1f |\n",
				g.Artifact.Slot, g.Artifact.SetID, g.Score, g.Grade, g.Tier, g.CritValue))
		}
		sb.WriteString("\n")
	}

	if len(report.Rankings) > 0 {
		sb.WriteString("## Recommendations per slot\n\n")
		for _, slot := range artifact.Slots {
			candidates, ok := report.Rankings[slot]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("### %s\n\n", titleCase(string(slot))))
			for i, sa := range candidates {
				sb.WriteString(fmt.Sprintf("%d. %s — %.1f\n", i+1, sa.Artifact.SetID, sa.Score))
			}
			sb.WriteString("\n")
		}
	}

	if report.Assignment != nil {
		a := report.Assignment
		sb.WriteString(fmt.Sprintf("## Optimal loadout — %.1f\n\n", a.TotalScore))
		sb.WriteString("| Slot | Set | Main stat | Level | Score |\n")
		sb.WriteString("|------|-----|-----------|-------|-------|\n")
		for _, slot := range artifact.Slots {
			sa, ok := a.Slots[slot]
			if !ok {
				sb.WriteString(fmt.Sprintf("| %s | — | — | — | — |\n", slot))
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | +%d | %.1f |\n",
				slot, sa.Artifact.SetID, sa.Artifact.MainStat, sa.Artifact.Level, sa.Score))
		}
		if a.SetBonusDescription != "" {
			sb.WriteString(fmt.Sprintf("\n**Set bonus:** %s\n", a.SetBonusDescription))
		}
	} else if report.NoAssignment {
		sb.WriteString("No recommendation available: not enough artifacts to fill a loadout.\n")
	}

	return sb.String()
}
