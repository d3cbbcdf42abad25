package main

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/devmarta/railbook/internal/platform/database"
	"github.com/devmarta/railbook/internal/platform/seed"
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func main() {
	dbConfig := database.Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   getenv("DB_NAME", "railbook"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	defer db.Close()

	ctx := context.Background()

	if err := seed.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	opts := seed.DefaultOptions()
	if raw := os.Getenv("SEED_TRAINS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			log.Fatalf("Invalid SEED_TRAINS value: %q", raw)
		}

		opts.Trains = n
	}

	if err := seed.Generate(ctx, db, opts); err != nil {
		log.Fatalf("Failed to generate data: %v", err)
	}
}
