package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devmarta/railbook/internal/core/domain"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Reserve flips the seat and inserts the reservation in one transaction.
// The seat UPDATE is a compare-and-swap on status: a seat that is
// unknown, already Reserved, or taken by a concurrent transaction all
// surface as zero rows and fail with ErrSeatNotFound.
func (r *ReservationRepository) Reserve(ctx context.Context, clientID, seatID int64, ticketType domain.TicketType) (*domain.ReservationDetail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	var trainID int64
	err = tx.QueryRowContext(ctx, `
	UPDATE seats
	SET status = 'Reserved'
	WHERE seat_id = $1 AND status = 'Available'
	RETURNING train_id
	`, seatID).Scan(&trainID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w or already reserved", domain.ErrSeatNotFound)
		}

		return nil, fmt.Errorf("failed to reserve seat %d: %w", seatID, err)
	}

	var reservationID int64
	err = tx.QueryRowContext(ctx, `
	INSERT INTO reservations (client_id, seat_id, ticket_type, status)
	VALUES ($1, $2, $3, $4)
	RETURNING reservation_id
	`, clientID, seatID, ticketType, domain.ReservationConfirmed).Scan(&reservationID)

	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation for seat %d: %w", seatID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return &domain.ReservationDetail{
		Reservation: domain.Reservation{
			ID:         reservationID,
			ClientID:   clientID,
			SeatID:     seatID,
			TicketType: ticketType,
			Status:     domain.ReservationConfirmed,
		},
		TrainID: trainID,
	}, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	query := `
	SELECT reservation_id, client_id, seat_id, ticket_type, status
	FROM reservations
	WHERE reservation_id = $1
	`

	var reservation domain.Reservation
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&reservation.ID,
		&reservation.ClientID,
		&reservation.SeatID,
		&reservation.TicketType,
		&reservation.Status,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReservationNotFound
		}

		return nil, err
	}

	return &reservation, nil
}

// Cancel is the mirror transaction: the reservation UPDATE is guarded so
// only a non-Cancelled row transitions, then the seat is released. A
// reservation whose seat row is missing is an internal-consistency
// fault, not a domain outcome.
func (r *ReservationRepository) Cancel(ctx context.Context, reservationID int64) (*domain.ReservationDetail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	var reservation domain.Reservation
	err = tx.QueryRowContext(ctx, `
	UPDATE reservations
	SET status = 'Cancelled'
	WHERE reservation_id = $1 AND status <> 'Cancelled'
	RETURNING reservation_id, client_id, seat_id, ticket_type, status
	`, reservationID).Scan(
		&reservation.ID,
		&reservation.ClientID,
		&reservation.SeatID,
		&reservation.TicketType,
		&reservation.Status,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM reservations WHERE reservation_id = $1)`,
				reservationID).Scan(&exists); err != nil {
				return nil, err
			}

			if !exists {
				return nil, domain.ErrReservationNotFound
			}

			return nil, domain.ErrAlreadyCancelled
		}

		return nil, fmt.Errorf("failed to cancel reservation %d: %w", reservationID, err)
	}

	var trainID int64
	err = tx.QueryRowContext(ctx, `
	UPDATE seats
	SET status = 'Available'
	WHERE seat_id = $1
	RETURNING train_id
	`, reservation.SeatID).Scan(&trainID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reservation %d references missing seat %d", reservationID, reservation.SeatID)
		}

		return nil, fmt.Errorf("failed to release seat %d: %w", reservation.SeatID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return &domain.ReservationDetail{Reservation: reservation, TrainID: trainID}, nil
}

func (r *ReservationRepository) ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]domain.ReservationDetail, error) {
	query := `
	SELECT r.reservation_id, r.client_id, r.seat_id, r.ticket_type, r.status, s.train_id
	FROM reservations r
	JOIN seats s ON s.seat_id = r.seat_id
	WHERE r.client_id = $1
	`

	args := []any{clientID}
	if status != nil {
		args = append(args, *status)
		query += " AND r.status = $2"
	}

	query += " ORDER BY r.reservation_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var reservations []domain.ReservationDetail
	for rows.Next() {
		var detail domain.ReservationDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.ClientID,
			&detail.SeatID,
			&detail.TicketType,
			&detail.Status,
			&detail.TrainID,
		); err != nil {
			return nil, err
		}

		reservations = append(reservations, detail)
	}

	return reservations, rows.Err()
}
