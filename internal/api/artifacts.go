package api

import (
	"encoding/json"
	"net/http"

	"github.com/relicsmith/relicsmith/pkg/artifact"
)

type createArtifactResponse struct {
	ID string `json:"id"`
}

// handleCreateArtifact stores a new artifact in an account's inventory.
func (h *Handler) handleCreateArtifact(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("account")

	var a artifact.Artifact
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.invSvc.CreateArtifact(r.Context(), accountID, a)
	if err != nil {
		writeError(w, http.StatusBadRequest, "create artifact: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, createArtifactResponse{ID: id})
}

type listArtifactsResponse struct {
	Artifacts []artifact.Artifact `json:"artifacts"`
}

// handleListArtifacts returns an account's full inventory.
func (h *Handler) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	items, err := h.invSvc.ListArtifacts(r.Context(), r.PathValue("account"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list artifacts: "+err.Error())
		return
	}
	if items == nil {
		items = []artifact.Artifact{}
	}
	writeJSON(w, http.StatusOK, listArtifactsResponse{Artifacts: items})
}

type updateArtifactRequest struct {
	Level      *int    `json:"level,omitempty"`
	EquippedBy *string `json:"equipped_by,omitempty"`
}

// handleUpdateArtifact applies an enhancement level change and/or an
// equip change to an artifact.
func (h *Handler) handleUpdateArtifact(w http.ResponseWriter, r *http.Request) {
	artifactID := r.PathValue("artifactID")

	var req updateArtifactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Level == nil && req.EquippedBy == nil {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	ctx := r.Context()
	if req.Level != nil {
		if err := h.invSvc.SetArtifactLevel(ctx, artifactID, *req.Level); err != nil {
			writeError(w, http.StatusBadRequest, "set level: "+err.Error())
			return
		}
	}
	if req.EquippedBy != nil {
		if err := h.invSvc.EquipArtifact(ctx, artifactID, *req.EquippedBy); err != nil {
			writeError(w, http.StatusBadRequest, "equip: "+err.Error())
			return
		}
	}

	updated, err := h.invSvc.GetArtifact(ctx, artifactID)
	if err != nil {
		writeError(w, http.StatusNotFound, "artifact not found: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteArtifact removes an artifact from its inventory.
func (h *Handler) handleDeleteArtifact(w http.ResponseWriter, r *http.Request) {
	if err := h.invSvc.DeleteArtifact(r.Context(), r.PathValue("artifactID")); err != nil {
		writeError(w, http.StatusInternalServerError, "delete artifact: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
