package main

import (
	"errors"
	"log"
	"net/http"

	adapthttp "weightlog/internal/adapter/http"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if !domain.IsValidUUID(cfg.UserID) {
		log.Fatalf("DEFAULT_USER_ID must be a UUID, got %q", cfg.UserID)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	weightSvc := app.NewWeightService(db)

	h := adapthttp.New(weightSvc, db, cfg.UserID).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
