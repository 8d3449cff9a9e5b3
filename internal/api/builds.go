package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/relicsmith/relicsmith/internal/inventory"
	"github.com/relicsmith/relicsmith/pkg/optimize"
)

type optimalBuildRequest struct {
	scoringParams
	CharacterID    string               `json:"character_id"`
	Shape          optimize.TargetShape `json:"shape,omitempty"`
	PrimarySetID   string               `json:"primary_set_id,omitempty"`
	SecondarySetID string               `json:"secondary_set_id,omitempty"`
}

type optimalBuildResponse struct {
	BuildID    string               `json:"build_id,omitempty"`
	Assignment *optimize.Assignment `json:"assignment"`
}

// handleOptimalBuild runs the optimal-assignment search over an
// account's eligible artifacts and persists the result. An infeasible
// target returns a null assignment, not an error.
func (h *Handler) handleOptimalBuild(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("account")

	var req optimalBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.CharacterID == "" {
		writeError(w, http.StatusBadRequest, "character_id is required")
		return
	}

	scorer, err := req.scorer()
	if err != nil {
		writeError(w, http.StatusBadRequest, "scoring config: "+err.Error())
		return
	}

	ctx := r.Context()
	items, err := h.invSvc.ListEligibleArtifacts(ctx, accountID, req.CharacterID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load artifacts: "+err.Error())
		return
	}

	catalog, err := h.catalog.Catalog(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load set catalog: "+err.Error())
		return
	}

	searcher := optimize.NewSearcher(scorer, catalog)
	assignment, err := searcher.Optimize(items, optimize.Request{
		Shape:          req.Shape,
		PrimarySetID:   req.PrimarySetID,
		SecondarySetID: req.SecondarySetID,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if assignment == nil {
		writeJSON(w, http.StatusOK, optimalBuildResponse{Assignment: nil})
		return
	}

	assignmentJSON, err := json.Marshal(assignment)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "marshal assignment: "+err.Error())
		return
	}

	shape := req.Shape
	if shape == "" {
		shape = inferShape(req.PrimarySetID, req.SecondarySetID)
	}
	buildID, err := h.invSvc.SaveBuild(ctx, inventory.BuildRow{
		AccountID:           accountID,
		CharacterID:         nilIfEmpty(req.CharacterID),
		Shape:               string(shape),
		PrimarySetID:        nilIfEmpty(req.PrimarySetID),
		SecondarySetID:      nilIfEmpty(req.SecondarySetID),
		TotalScore:          assignment.TotalScore,
		SetBonusDescription: assignment.SetBonusDescription,
		Assignment:          assignmentJSON,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "save build: "+err.Error())
		return
	}

	// Archival to blob storage is best-effort; the build row is already
	// durable in Postgres.
	if err := h.exportSvc.ArchiveBuild(ctx, accountID, buildID, assignmentJSON); err != nil {
		log.Printf("archive build %s: %v", buildID, err)
	}

	writeJSON(w, http.StatusOK, optimalBuildResponse{BuildID: buildID, Assignment: assignment})
}

func inferShape(primary, secondary string) optimize.TargetShape {
	switch {
	case primary != "" && secondary != "":
		return optimize.TargetSplitSet
	case primary != "":
		return optimize.TargetFullSet
	default:
		return optimize.TargetRainbow
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type buildSummary struct {
	ID                  string          `json:"id"`
	CharacterID         string          `json:"character_id,omitempty"`
	Shape               string          `json:"shape"`
	PrimarySetID        string          `json:"primary_set_id,omitempty"`
	SecondarySetID      string          `json:"secondary_set_id,omitempty"`
	TotalScore          float64         `json:"total_score"`
	SetBonusDescription string          `json:"set_bonus_description"`
	Assignment          json.RawMessage `json:"assignment"`
	CreatedAt           string          `json:"created_at"`
}

func toBuildSummary(b inventory.BuildRow) buildSummary {
	s := buildSummary{
		ID:                  b.ID,
		Shape:               b.Shape,
		TotalScore:          b.TotalScore,
		SetBonusDescription: b.SetBonusDescription,
		Assignment:          b.Assignment,
		CreatedAt:           b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.CharacterID != nil {
		s.CharacterID = *b.CharacterID
	}
	if b.PrimarySetID != nil {
		s.PrimarySetID = *b.PrimarySetID
	}
	if b.SecondarySetID != nil {
		s.SecondarySetID = *b.SecondarySetID
	}
	return s
}

type listBuildsResponse struct {
	Builds []buildSummary `json:"builds"`
}

// handleListBuilds returns an account's saved builds, newest first.
func (h *Handler) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	builds, err := h.invSvc.ListBuildsByAccount(r.Context(), r.PathValue("account"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list builds: "+err.Error())
		return
	}

	resp := listBuildsResponse{Builds: make([]buildSummary, 0, len(builds))}
	for _, b := range builds {
		resp.Builds = append(resp.Builds, toBuildSummary(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetBuild returns a single saved build.
func (h *Handler) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	b, err := h.invSvc.GetBuildByID(r.Context(), r.PathValue("buildID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "build not found: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toBuildSummary(*b))
}

// handleGetBuildArchive serves the archived assignment blob for a
// build. The blob survives even if the build row's assignment column is
// later pruned.
func (h *Handler) handleGetBuildArchive(w http.ResponseWriter, r *http.Request) {
	buildID := r.PathValue("buildID")

	b, err := h.invSvc.GetBuildByID(r.Context(), buildID)
	if err != nil {
		writeError(w, http.StatusNotFound, "build not found: "+err.Error())
		return
	}

	data, err := h.exportSvc.Storage().GetBuild(r.Context(), b.AccountID, buildID)
	if err != nil {
		writeError(w, http.StatusNotFound, "build archive not found: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
