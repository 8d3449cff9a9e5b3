package optimize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// ResolveBonus describes the set bonuses active for the given per-set
// piece counts. A set with 4 or more pieces grants its four-piece bonus
// (falling back to the two-piece text for sets that have none); 2 or 3
// pieces grant the two-piece bonus. Simultaneous bonuses are joined
// with " + ".
//
// Sets are listed by descending piece count, then by id, so the
// description is deterministic. Sets missing from the catalog are named
// by their id.
func ResolveBonus(counts map[string]int, catalog artifact.Catalog) string {
	type activeBonus struct {
		setID string
		count int
	}

	var active []activeBonus
	for setID, count := range counts {
		if count >= 2 {
			active = append(active, activeBonus{setID: setID, count: count})
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].count != active[j].count {
			return active[i].count > active[j].count
		}
		return active[i].setID < active[j].setID
	})

	var parts []string
	for _, b := range active {
		name := b.setID
		twoPiece, fourPiece := "", ""
		if set, ok := catalog.Set(b.setID); ok {
			name = set.Name
			twoPiece = set.TwoPieceBonus
			fourPiece = set.FourPieceBonus
		}

		if b.count >= 4 {
			text := fourPiece
			if text == "" {
				text = twoPiece
			}
			parts = append(parts, bonusLine("4pc", name, text))
		} else {
			parts = append(parts, bonusLine("2pc", name, twoPiece))
		}
	}

	return strings.Join(parts, " + ")
}

func bonusLine(tier, name, text string) string {
	if text == "" {
		return fmt.Sprintf("%s %s", tier, name)
	}
	return fmt.Sprintf("%s %s: %s", tier, name, text)
}
