// Package api implements the hosted Relicsmith REST API.
// It provides grading, recommendation and inventory endpoints backed by
// Postgres and blob storage.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/relicsmith/relicsmith/internal/export"
	"github.com/relicsmith/relicsmith/internal/inventory"
)

// Handler is the top-level API handler for the hosted Relicsmith service.
type Handler struct {
	db        *sql.DB
	invSvc    *inventory.Service
	exportSvc *export.Service
	catalog   *CatalogCache
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, invSvc *inventory.Service, exportSvc *export.Service, catalog *CatalogCache) *Handler {
	if catalog == nil {
		catalog = NewCatalogCacheFromEnv(invSvc)
	}
	return &Handler{
		db:        db,
		invSvc:    invSvc,
		exportSvc: exportSvc,
		catalog:   catalog,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Stateless engine endpoints
	mux.HandleFunc("POST /api/v1/grade", h.handleGrade)

	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/accounts", h.handleCreateAccount)
	mux.HandleFunc("POST /api/v1/accounts/{account}/artifacts", h.handleCreateArtifact)
	mux.HandleFunc("PATCH /api/v1/artifacts/{artifactID}", h.handleUpdateArtifact)
	mux.HandleFunc("DELETE /api/v1/artifacts/{artifactID}", h.handleDeleteArtifact)
	mux.HandleFunc("POST /api/v1/accounts/{account}/builds", h.handleOptimalBuild)
	mux.HandleFunc("PUT /api/v1/sets", h.handleUpsertSet)
	mux.HandleFunc("POST /api/v1/accounts/{account}/exports", h.handleCreateExport)
	mux.HandleFunc("POST /api/v1/accounts/{account}/imports", h.handleImport)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/accounts/by-name/{name}", h.handleGetAccount)
	mux.HandleFunc("GET /api/v1/accounts/{account}/artifacts", h.handleListArtifacts)
	mux.HandleFunc("GET /api/v1/accounts/{account}/recommendations", h.handleRecommendations)
	mux.HandleFunc("GET /api/v1/accounts/{account}/builds", h.handleListBuilds)
	mux.HandleFunc("GET /api/v1/builds/{buildID}", h.handleGetBuild)
	mux.HandleFunc("GET /api/v1/builds/{buildID}/archive", h.handleGetBuildArchive)
	mux.HandleFunc("GET /api/v1/accounts/{account}/exports", h.handleListExports)
	mux.HandleFunc("GET /api/v1/sets", h.handleListSets)
	mux.HandleFunc("GET /api/v1/sets/{setID}", h.handleGetSet)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
