package ports

import (
	"context"

	"github.com/devmarta/railbook/internal/core/domain"
)

type TrainRepository interface {
	GetByID(ctx context.Context, trainID int64) (*domain.Train, error)
	// Filter returns every train matching the criteria together with its
	// live per-class availability. An empty result is returned as an empty
	// slice, not an error; the service decides what "empty" means.
	Filter(ctx context.Context, filter domain.TrainFilter) ([]domain.TrainSummary, error)
}

type SeatRepository interface {
	GetByID(ctx context.Context, seatID int64) (*domain.Seat, error)
	// GetAvailableByTrain returns the train's Available seats ordered by
	// fare descending, ties in stable id order.
	GetAvailableByTrain(ctx context.Context, trainID int64) ([]domain.Seat, error)
}

type ClientRepository interface {
	GetByID(ctx context.Context, clientID int64) (*domain.Client, error)
	GetByUsername(ctx context.Context, username string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) error
}

type ReservationRepository interface {
	// Reserve flips the seat to Reserved and creates a Confirmed
	// reservation as one atomic unit. For a given seat at most one
	// concurrent call may succeed; the rest get domain.ErrSeatNotFound,
	// whether the seat is unknown, already reserved, or lost the race.
	Reserve(ctx context.Context, clientID, seatID int64, ticketType domain.TicketType) (*domain.ReservationDetail, error)
	GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error)
	// Cancel sets the reservation Cancelled and its seat Available
	// atomically. A reservation that is already Cancelled yields
	// domain.ErrAlreadyCancelled.
	Cancel(ctx context.Context, reservationID int64) (*domain.ReservationDetail, error)
	// ListByClient returns the client's reservations in creation order,
	// optionally restricted to one status.
	ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]domain.ReservationDetail, error)
}
