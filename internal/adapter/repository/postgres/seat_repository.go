package postgres

import (
	"context"
	"database/sql"

	"github.com/devmarta/railbook/internal/core/domain"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

func (r *SeatRepository) GetByID(ctx context.Context, seatID int64) (*domain.Seat, error) {
	query := `
	SELECT seat_id, train_id, seat_class, fare, status
	FROM seats
	WHERE seat_id = $1
	`

	var seat domain.Seat
	err := r.db.QueryRowContext(ctx, query, seatID).Scan(
		&seat.ID,
		&seat.TrainID,
		&seat.Class,
		&seat.Fare,
		&seat.Status,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSeatNotFound
		}

		return nil, err
	}

	return &seat, nil
}

func (r *SeatRepository) GetAvailableByTrain(ctx context.Context, trainID int64) ([]domain.Seat, error) {
	query := `
	SELECT seat_id, train_id, seat_class, fare, status
	FROM seats
	WHERE train_id = $1 AND status = 'Available'
	ORDER BY fare DESC, seat_id
	`

	rows, err := r.db.QueryContext(ctx, query, trainID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(
			&seat.ID,
			&seat.TrainID,
			&seat.Class,
			&seat.Fare,
			&seat.Status,
		); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}
