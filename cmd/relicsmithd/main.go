// Command relicsmithd is the hosted Relicsmith service.
// It serves the grading and optimization API over an account inventory
// stored in Postgres, with inventory exports in blob storage.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/relicsmith/relicsmith/internal/api"
	"github.com/relicsmith/relicsmith/internal/export"
	"github.com/relicsmith/relicsmith/internal/inventory"
	"github.com/relicsmith/relicsmith/internal/platform"
)

type config struct {
	Port        string
	DatabaseURL string
	APIKey      string

	// Blob storage backend selection. GCSBucket wins over S3Bucket;
	// with neither set, exports land on the local filesystem.
	GCSBucket   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	LocalPath   string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/relicsmith?sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		LocalPath:   envOrDefault("LOCAL_STORAGE_PATH", "/tmp/relicsmith-data"),
	}
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	invSvc := inventory.NewService(db)
	exportSvc := export.NewService(db, invSvc, storage)

	handler := api.NewHandler(db, invSvc, exportSvc, nil)

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	// Health stays outside the API key check so probes need no secret.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler(db))
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	go func() {
		log.Printf("starting relicsmithd on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildStorage(ctx context.Context, cfg config) (export.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		return export.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		return export.NewS3Storage(ctx, export.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return export.NewLocalStorage(cfg.LocalPath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
