package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type createExportResponse struct {
	ExportID string `json:"export_id"`
}

// handleCreateExport snapshots an account's inventory to blob storage.
func (h *Handler) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	exportID, err := h.exportSvc.ExportInventory(r.Context(), r.PathValue("account"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export inventory: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, createExportResponse{ExportID: exportID})
}

type importRequest struct {
	SourceAccountID string `json:"source_account_id,omitempty"`
	ExportID        string `json:"export_id"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

// handleImport restores an exported inventory into an account. The
// source account defaults to the importing account, which covers the
// backup-and-restore case.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("account")

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ExportID == "" {
		writeError(w, http.StatusBadRequest, "export_id is required")
		return
	}
	source := req.SourceAccountID
	if source == "" {
		source = accountID
	}

	count, err := h.exportSvc.ImportInventory(r.Context(), accountID, source, req.ExportID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "import inventory: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: count})
}

type exportSummary struct {
	ID            string `json:"id"`
	ArtifactCount int    `json:"artifact_count"`
	StorageRef    string `json:"storage_ref"`
	CreatedAt     string `json:"created_at"`
}

type listExportsResponse struct {
	Exports []exportSummary `json:"exports"`
}

// handleListExports returns an account's export history.
func (h *Handler) handleListExports(w http.ResponseWriter, r *http.Request) {
	rows, err := h.exportSvc.ListExports(r.Context(), r.PathValue("account"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list exports: "+err.Error())
		return
	}

	resp := listExportsResponse{Exports: make([]exportSummary, 0, len(rows))}
	for _, row := range rows {
		resp.Exports = append(resp.Exports, exportSummary{
			ID:            row.ID,
			ArtifactCount: row.ArtifactCount,
			StorageRef:    row.StorageRef,
			CreatedAt:     row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
