package api

import (
	"encoding/json"
	"net/http"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

type listSetsResponse struct {
	Sets []artifact.Set `json:"sets"`
}

// handleListSets returns the artifact set catalog.
func (h *Handler) handleListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.invSvc.ListSets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list sets: "+err.Error())
		return
	}
	if sets == nil {
		sets = []artifact.Set{}
	}
	writeJSON(w, http.StatusOK, listSetsResponse{Sets: sets})
}

// handleUpsertSet creates or updates a catalog set and drops the
// catalog cache so running searches see the new bonus text.
func (h *Handler) handleUpsertSet(w http.ResponseWriter, r *http.Request) {
	var set artifact.Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if set.ID == "" || set.Name == "" {
		writeError(w, http.StatusBadRequest, "set id and name are required")
		return
	}

	if err := h.invSvc.UpsertSet(r.Context(), set); err != nil {
		writeError(w, http.StatusInternalServerError, "upsert set: "+err.Error())
		return
	}
	h.catalog.Invalidate()
	writeJSON(w, http.StatusOK, set)
}

// handleGetSet returns a single set by id.
func (h *Handler) handleGetSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.invSvc.GetSet(r.Context(), r.PathValue("setID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "set not found: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, set)
}
