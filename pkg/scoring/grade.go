package scoring

import "github.com/relicsmith/relicsmith/pkg/artifact"

// GradeResult is the full diagnostic output of the standalone grading
// path: the score with its breakdown, the letter grade and tier bucket,
// the crit value, and the upgrade projection.
type GradeResult struct {
	ScoredArtifact
	Grade      string     `json:"grade"`
	Tier       string     `json:"tier"`
	CritValue  float64    `json:"crit_value"`
	Projection Projection `json:"projection"`
}

// Grade scores an artifact and derives its grade, tier, crit value and
// upgrade projection. It reuses Score, so a graded artifact and a ranked
// one can never disagree on the same item's score.
func (s *Scorer) Grade(a artifact.Artifact) GradeResult {
	scored := s.Score(a)
	return GradeResult{
		ScoredArtifact: scored,
		Grade:          GradeFromScore(scored.Score),
		Tier:           TierFromScore(scored.Score),
		CritValue:      CritValue(a.SubStats),
		Projection:     ProjectUpgrade(scored),
	}
}

// GradeAll grades a batch of artifacts, preserving input order.
func (s *Scorer) GradeAll(items []artifact.Artifact) []GradeResult {
	out := make([]GradeResult, 0, len(items))
	for _, a := range items {
		out = append(out, s.Grade(a))
	}
	return out
}
