package api

import (
	"net/http"
	"strconv"

	"github.com/relicsmith/relicsmith/pkg/artifact"
	"github.com/relicsmith/relicsmith/pkg/optimize"
	"github.com/relicsmith/relicsmith/pkg/scoring"
)

type recommendationsResponse struct {
	CharacterID string                                     `json:"character_id,omitempty"`
	Limit       int                                        `json:"limit"`
	Rankings    map[artifact.Slot][]scoring.ScoredArtifact `json:"rankings"`
}

// handleRecommendations returns the top-N artifacts per slot for an
// account, optionally filtered to what a given character may equip.
// Query params: character (id), limit (default 5).
func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("account")
	characterID := r.URL.Query().Get("character")

	limit := optimize.DefaultRankLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit: "+v)
			return
		}
		limit = parsed
	}

	var (
		items []artifact.Artifact
		err   error
	)
	if characterID != "" {
		items, err = h.invSvc.ListEligibleArtifacts(r.Context(), accountID, characterID)
	} else {
		items, err = h.invSvc.ListArtifacts(r.Context(), accountID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load artifacts: "+err.Error())
		return
	}

	rankings, err := optimize.RankBySlot(items, scoring.NewScorer(nil), limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		CharacterID: characterID,
		Limit:       limit,
		Rankings:    rankings,
	})
}
