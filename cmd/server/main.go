package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/voltworks/inventory-engine/internal/api"
	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/cache"
	"github.com/voltworks/inventory-engine/internal/config"
	"github.com/voltworks/inventory-engine/internal/dataset"
	"github.com/voltworks/inventory-engine/internal/dataset/postgres"
	"github.com/voltworks/inventory-engine/internal/service"
	"github.com/voltworks/inventory-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize snapshot source
	loader, cleanup, err := buildLoader(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize data source")
	}
	defer cleanup()

	store := dataset.NewStore(loader)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := store.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load initial snapshot")
	}
	cancel()

	boms, err := bom.LoadCSV(cfg.Data.BOMFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Data.BOMFile).Msg("Failed to load bill of materials")
	}

	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize report cache")
	}

	inventoryService := service.NewInventoryService(store, boms, reportCache)

	// API server
	router := api.NewRouter(inventoryService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Ops server for probes, kept off the public port
	opsSrv := &http.Server{
		Addr:    ":" + cfg.Server.OpsPort,
		Handler: opsRouter(store),
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	go func() {
		log.Info().Str("port", cfg.Server.OpsPort).Msg("Starting ops server")
		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start ops server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the servers
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ops server forced to shutdown")
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

func buildLoader(cfg *config.Config) (dataset.Loader, func(), error) {
	switch cfg.Data.Source {
	case "postgres":
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		return postgres.NewLoader(db), func() { db.Close() }, nil
	default:
		return dataset.NewCSVLoader(cfg.Data.DataDir), func() {}, nil
	}
}

func opsRouter(store *dataset.Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if store.Snapshot() == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"loading"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}).Methods(http.MethodGet)
	return r
}
