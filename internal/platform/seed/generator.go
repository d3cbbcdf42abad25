// Package seed bootstraps the inventory with synthetic trains and
// seats. It is bulk generation only: nothing at runtime creates or
// mutates trains and seats outside the reserve/release status flip.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/devmarta/railbook/internal/core/domain"
)

var stations = []string{"StationA", "StationB", "StationC", "StationD", "StationE", "StationF"}

const schema = `
CREATE TABLE IF NOT EXISTS trains (
	train_id BIGSERIAL PRIMARY KEY,
	departure_station TEXT NOT NULL,
	arrival_station TEXT NOT NULL,
	departure_datetime TIMESTAMPTZ NOT NULL,
	arrival_datetime TIMESTAMPTZ NOT NULL,
	CHECK (departure_datetime < arrival_datetime)
);

CREATE TABLE IF NOT EXISTS seats (
	seat_id BIGSERIAL PRIMARY KEY,
	train_id BIGINT NOT NULL REFERENCES trains (train_id),
	seat_class TEXT NOT NULL,
	fare DOUBLE PRECISION NOT NULL CHECK (fare > 0),
	status TEXT NOT NULL DEFAULT 'Available'
);

CREATE TABLE IF NOT EXISTS clients (
	client_id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reservations (
	reservation_id BIGSERIAL PRIMARY KEY,
	client_id BIGINT NOT NULL REFERENCES clients (client_id),
	seat_id BIGINT NOT NULL REFERENCES seats (seat_id),
	ticket_type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Confirmed'
);

CREATE INDEX IF NOT EXISTS idx_seats_train_status ON seats (train_id, status);
CREATE INDEX IF NOT EXISTS idx_reservations_client ON reservations (client_id);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

type Options struct {
	Trains   int
	MinSeats int
	MaxSeats int
}

func DefaultOptions() Options {
	return Options{Trains: 100, MinSeats: 5, MaxSeats: 50}
}

// Generate inserts the requested number of random trains, each with a
// random number of Available seats. Fares are banded per class so First
// always prices above Business above Standard on any one train.
func Generate(ctx context.Context, db *sql.DB, opts Options) error {
	insertSeat, err := db.PrepareContext(ctx, `
	INSERT INTO seats (train_id, seat_class, fare, status)
	VALUES ($1, $2, $3, 'Available')
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare seat insert: %w", err)
	}

	defer insertSeat.Close()

	totalSeats := 0
	for i := 0; i < opts.Trains; i++ {
		departure, arrival := randomStationPair()

		departureTime := time.Now().
			Add(time.Duration(1+rand.IntN(30))*24*time.Hour + time.Duration(1+rand.IntN(12))*time.Hour).
			Truncate(time.Minute)
		arrivalTime := departureTime.Add(time.Duration(1+rand.IntN(5)) * time.Hour)

		var trainID int64
		err := db.QueryRowContext(ctx, `
		INSERT INTO trains (departure_station, arrival_station, departure_datetime, arrival_datetime)
		VALUES ($1, $2, $3, $4)
		RETURNING train_id
		`, departure, arrival, departureTime, arrivalTime).Scan(&trainID)

		if err != nil {
			return fmt.Errorf("failed to insert train: %w", err)
		}

		baseFares := map[domain.SeatClass]float64{
			domain.ClassFirst:    200 + rand.Float64()*100,
			domain.ClassBusiness: 100 + rand.Float64()*99,
			domain.ClassStandard: 50 + rand.Float64()*49,
		}

		numSeats := opts.MinSeats + rand.IntN(opts.MaxSeats-opts.MinSeats+1)
		totalSeats += numSeats

		for j := 0; j < numSeats; j++ {
			class := domain.SeatClasses[rand.IntN(len(domain.SeatClasses))]
			fare := math.Round(baseFares[class]*100) / 100

			if _, err := insertSeat.ExecContext(ctx, trainID, class, fare); err != nil {
				return fmt.Errorf("failed to insert seat for train %d: %w", trainID, err)
			}
		}
	}

	log.Printf("Generated %d trains with %d seats total.", opts.Trains, totalSeats)

	return nil
}

func randomStationPair() (string, string) {
	perm := rand.Perm(len(stations))
	return stations[perm[0]], stations[perm[1]]
}
