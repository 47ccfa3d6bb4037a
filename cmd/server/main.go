package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"shipment-tracking-service/internal/adapters/cache"
	"shipment-tracking-service/internal/adapters/repositories"
	"shipment-tracking-service/internal/api"
	"shipment-tracking-service/internal/auth"
	"shipment-tracking-service/internal/config"
	"shipment-tracking-service/internal/domain"
	"shipment-tracking-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/shipments.json")
	port := config.Get("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if strings.TrimSpace(jwtSecret) == "" {
		log.Fatal("JWT_SECRET is required")
	}

	policy, err := domain.NewTrackingNumberPolicy(
		config.Get("TRACKING_NUMBER_PATTERN", domain.DefaultTrackingNumberPattern),
	)
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	tokens := auth.NewTokenService(jwtSecret, config.GetDuration("JWT_TTL", 24*time.Hour))

	router := api.NewRouter(api.RouterConfig{
		Shipments: repositories.NewSqliteShipmentRepository(db),
		Support:   repositories.NewSqliteSupportRepository(db),
		Cache:     documentCache(),
		CacheTTL:  config.GetDuration("DOCUMENT_CACHE_TTL", time.Hour),
		Tokens:    tokens,
		Policy:    policy,
	})

	// Timeouts allow for PDF rendering on the slowest shipments.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// documentCache returns the Redis-backed airway bill cache, or nil when
// REDIS_ADDR is unset (documents are rendered on every request).
func documentCache() ports.DocumentCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		log.Println("REDIS_ADDR not set, airway bill caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &cache.RedisDocumentCache{Client: client}
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
