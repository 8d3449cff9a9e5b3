package api

import (
	"encoding/json"
	"net/http"
)

type createAccountRequest struct {
	DisplayName string `json:"display_name"`
	GameUID     *int64 `json:"game_uid,omitempty"`
}

// handleCreateAccount registers a new account.
func (h *Handler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "display_name is required")
		return
	}

	acct, err := h.invSvc.CreateAccount(r.Context(), req.DisplayName, req.GameUID)
	if err != nil {
		writeError(w, http.StatusConflict, "create account: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, acct)
}

// handleGetAccount looks an account up by display name.
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.invSvc.GetAccountByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusNotFound, "account not found: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, acct)
}
