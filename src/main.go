package main

import (
	"context"
	"errors"
	"kakeibo-server/src/api"
	"kakeibo-server/src/config"
	"kakeibo-server/src/db"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Make sure the schema exists before serving
	provisioner := db.NewProvisioner(cfg.ConnectAttempts, cfg.ConnectDelay)
	if err := provisioner.Run(ctx, cfg.DatabaseURL); err != nil {
		switch {
		case errors.Is(err, db.ErrRetriesExhausted) && !cfg.FailFast:
			log.Printf("ERROR: %v; continuing without a guaranteed schema", err)
		default:
			log.Fatalf("Database provisioning failed: %v", err)
		}
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.MaxConns)
	if err != nil {
		log.Fatalf("DB pool setup failed: %v", err)
	}
	defer pool.Close()

	healthCache, err := db.NewHealthCache(cfg.HealthCacheTTL)
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
	defer healthCache.Close()

	// Router
	router := api.NewRouter(pool, healthCache, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("API server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Graceful shutdown failed: %v", err)
	}
}
