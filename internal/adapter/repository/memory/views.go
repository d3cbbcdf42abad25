package memory

import (
	"context"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/ports"
)

// The port interfaces each declare a GetByID, so one Store cannot
// implement all four directly. These views adapt the store to the ports
// the services expect.

func (s *Store) Trains() ports.TrainRepository { return trainView{s} }

func (s *Store) Seats() ports.SeatRepository { return seatView{s} }

func (s *Store) Clients() ports.ClientRepository { return clientView{s} }

func (s *Store) Reservations() ports.ReservationRepository { return reservationView{s} }

type trainView struct{ s *Store }

func (v trainView) GetByID(ctx context.Context, trainID int64) (*domain.Train, error) {
	return v.s.GetTrainByID(ctx, trainID)
}

func (v trainView) Filter(ctx context.Context, filter domain.TrainFilter) ([]domain.TrainSummary, error) {
	return v.s.Filter(ctx, filter)
}

type seatView struct{ s *Store }

func (v seatView) GetByID(ctx context.Context, seatID int64) (*domain.Seat, error) {
	return v.s.GetSeatByID(ctx, seatID)
}

func (v seatView) GetAvailableByTrain(ctx context.Context, trainID int64) ([]domain.Seat, error) {
	return v.s.GetAvailableByTrain(ctx, trainID)
}

type clientView struct{ s *Store }

func (v clientView) GetByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return v.s.GetClientByID(ctx, clientID)
}

func (v clientView) GetByUsername(ctx context.Context, username string) (*domain.Client, error) {
	return v.s.GetByUsername(ctx, username)
}

func (v clientView) Create(ctx context.Context, client *domain.Client) error {
	return v.s.CreateClient(ctx, client)
}

type reservationView struct{ s *Store }

func (v reservationView) Reserve(ctx context.Context, clientID, seatID int64, ticketType domain.TicketType) (*domain.ReservationDetail, error) {
	return v.s.Reserve(ctx, clientID, seatID, ticketType)
}

func (v reservationView) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	return v.s.GetReservationByID(ctx, reservationID)
}

func (v reservationView) Cancel(ctx context.Context, reservationID int64) (*domain.ReservationDetail, error) {
	return v.s.Cancel(ctx, reservationID)
}

func (v reservationView) ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]domain.ReservationDetail, error) {
	return v.s.ListByClient(ctx, clientID, status)
}
