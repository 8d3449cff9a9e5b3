package api

import (
	"encoding/json"
	"net/http"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

// scoringParams is the optional per-request scoring configuration shared
// by the grade, recommendation and build endpoints. Omitted fields fall
// back to the built-in defaults.
type scoringParams struct {
	Weights   map[string]float64 `json:"weights,omitempty"`
	MainStats map[string]string  `json:"main_stats,omitempty"`
}

// scorer builds a Scorer from the request parameters, validating them
// against the engine's configuration contract.
func (p scoringParams) scorer() (*scoring.Scorer, error) {
	cfg := scoring.DefaultConfig()
	if len(p.Weights) > 0 {
		weights := make(map[artifact.Stat]float64, len(p.Weights))
		for stat, w := range p.Weights {
			weights[artifact.Stat(stat)] = w
		}
		cfg.Weights = weights
	}
	if len(p.MainStats) > 0 {
		recommended := make(map[artifact.Slot]artifact.Stat, len(p.MainStats))
		for slot, stat := range p.MainStats {
			recommended[artifact.Slot(slot)] = artifact.Stat(stat)
		}
		cfg.RecommendedMainStats = recommended
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return scoring.NewScorer(cfg), nil
}

type gradeRequest struct {
	scoringParams
	Artifacts []artifact.Artifact `json:"artifacts"`
}

type gradeResponse struct {
	Results []scoring.GradeResult `json:"results"`
}

// handleGrade grades a batch of artifacts without touching storage.
// Clients use it to evaluate drops before deciding what to keep.
func (h *Handler) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Artifacts) == 0 {
		writeError(w, http.StatusBadRequest, "artifacts list is empty")
		return
	}
	for i := range req.Artifacts {
		if err := req.Artifacts[i].Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "artifact "+req.Artifacts[i].ID+": "+err.Error())
			return
		}
	}

	scorer, err := req.scorer()
	if err != nil {
		writeError(w, http.StatusBadRequest, "scoring config: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, gradeResponse{Results: scorer.GradeAll(req.Artifacts)})
}
