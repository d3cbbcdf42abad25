package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

const (
	maxConnectAttempts = 10
	connectRetryDelay  = 2 * time.Second
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c Config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// NewPostgresDB opens the inventory database, retrying while the server
// comes up.
func NewPostgresDB(cfg Config) (*sql.DB, error) {
	var err error

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		log.Printf("Connecting to database (attempt %d/%d)...", attempt, maxConnectAttempts)

		var db *sql.DB
		db, err = sql.Open("postgres", cfg.dsn())
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("Database connected successfully!")
			return db, nil
		}

		log.Printf("Database not ready yet: %v. Retrying in %s...", err, connectRetryDelay)
		time.Sleep(connectRetryDelay)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectAttempts, err)
}
