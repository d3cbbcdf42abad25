package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/devmarta/railbook/internal/adapter/handler"
	"github.com/devmarta/railbook/internal/adapter/repository/postgres"
	"github.com/devmarta/railbook/internal/core/services"
	"github.com/devmarta/railbook/internal/platform/database"
)

func loadEnv(filepath string) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Println("No .env file found, using OS environment variables.")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v\n", err)
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func main() {
	loadEnv(".env")

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

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	redisHost := getenv("REDIS_HOST", "localhost")
	redisPort := getenv("REDIS_PORT", "6379")

	log.Printf("Connecting to Redis at %s:%s...", redisHost, redisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	trainRepo := postgres.NewTrainRepository(db)
	seatRepo := postgres.NewSeatRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)

	catalogService := services.NewCatalogService(trainRepo, seatRepo, redisClient)
	reservationService := services.NewReservationService(clientRepo, reservationRepo, redisClient)
	authService := services.NewAuthService(clientRepo)

	router := handler.NewRouter(
		handler.NewCatalogHandler(catalogService),
		handler.NewReservationHandler(reservationService),
		handler.NewAuthHandler(authService),
	)

	port := getenv("PORT", "8080")

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
