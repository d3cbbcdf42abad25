package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/devmarta/railbook/internal/core/domain"
)

type TrainRepository struct {
	db *sql.DB
}

func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

func (r *TrainRepository) GetByID(ctx context.Context, trainID int64) (*domain.Train, error) {
	query := `
	SELECT train_id, departure_station, arrival_station, departure_datetime, arrival_datetime
	FROM trains
	WHERE train_id = $1
	`

	var train domain.Train
	err := r.db.QueryRowContext(ctx, query, trainID).Scan(
		&train.ID,
		&train.DepartureStation,
		&train.ArrivalStation,
		&train.DepartureTime,
		&train.ArrivalTime,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTrainNotFound
		}

		return nil, err
	}

	return &train, nil
}

// Filter joins trains against their Available seats so the per-class
// counts are live at query time. The HAVING clause qualifies a train on
// its class-filtered availability when a class is given, on its total
// availability otherwise.
func (r *TrainRepository) Filter(ctx context.Context, filter domain.TrainFilter) ([]domain.TrainSummary, error) {
	var query strings.Builder
	query.WriteString(`
	SELECT t.train_id, t.departure_station, t.arrival_station, t.departure_datetime, t.arrival_datetime,
		COUNT(*) FILTER (WHERE s.seat_class = 'First')    AS first_seats,
		COUNT(*) FILTER (WHERE s.seat_class = 'Business') AS business_seats,
		COUNT(*) FILTER (WHERE s.seat_class = 'Standard') AS standard_seats
	FROM trains t
	JOIN seats s ON s.train_id = t.train_id AND s.status = 'Available'
	WHERE t.departure_station = $1 AND t.arrival_station = $2
	`)

	args := []any{filter.DepartureStation, filter.ArrivalStation}

	if filter.OutboundDate != nil {
		args = append(args, *filter.OutboundDate)
		fmt.Fprintf(&query, " AND t.departure_datetime >= $%d", len(args))
	}

	// return_date bounds the same departure column from above; there is
	// no return-leg modeling.
	if filter.ReturnDate != nil {
		args = append(args, *filter.ReturnDate)
		fmt.Fprintf(&query, " AND t.departure_datetime <= $%d", len(args))
	}

	query.WriteString(" GROUP BY t.train_id, t.departure_station, t.arrival_station, t.departure_datetime, t.arrival_datetime")

	minSeats := 1
	if filter.MinAvailableSeats != nil && *filter.MinAvailableSeats > minSeats {
		minSeats = *filter.MinAvailableSeats
	}

	if filter.SeatClass != nil {
		args = append(args, string(*filter.SeatClass))
		fmt.Fprintf(&query, " HAVING COUNT(*) FILTER (WHERE s.seat_class = $%d)", len(args))
	} else {
		query.WriteString(" HAVING COUNT(*)")
	}

	args = append(args, minSeats)
	fmt.Fprintf(&query, " >= $%d", len(args))

	query.WriteString(" ORDER BY t.departure_datetime, t.train_id")

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var trains []domain.TrainSummary
	for rows.Next() {
		var train domain.TrainSummary
		if err := rows.Scan(
			&train.ID,
			&train.DepartureStation,
			&train.ArrivalStation,
			&train.DepartureTime,
			&train.ArrivalTime,
			&train.AvailableSeatsFirst,
			&train.AvailableSeatsBusiness,
			&train.AvailableSeatsStandard,
		); err != nil {
			return nil, err
		}

		trains = append(trains, train)
	}

	return trains, rows.Err()
}
