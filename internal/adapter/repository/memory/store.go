// Package memory implements the repository ports over in-process maps.
// It backs local runs and the concurrency tests, honoring the same
// contract as the Postgres adapter: the seat flip and the reservation
// write are applied as one atomic unit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/devmarta/railbook/internal/core/domain"
)

type Store struct {
	mu sync.RWMutex

	trains        map[int64]domain.Train
	seats         map[int64]domain.Seat
	clients       map[int64]domain.Client
	clientsByName map[string]int64

	reservations     map[int64]domain.Reservation
	reservationOrder []int64

	nextTrainID       int64
	nextSeatID        int64
	nextClientID      int64
	nextReservationID int64
}

func NewStore() *Store {
	return &Store{
		trains:        make(map[int64]domain.Train),
		seats:         make(map[int64]domain.Seat),
		clients:       make(map[int64]domain.Client),
		clientsByName: make(map[string]int64),
		reservations:  make(map[int64]domain.Reservation),
	}
}

// AddTrain assigns the train an id and stores it. Bootstrap only.
func (s *Store) AddTrain(train domain.Train) domain.Train {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTrainID++
	train.ID = s.nextTrainID
	s.trains[train.ID] = train

	return train
}

// AddSeat assigns the seat an id and stores it. Bootstrap only.
func (s *Store) AddSeat(seat domain.Seat) domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeatID++
	seat.ID = s.nextSeatID
	if seat.Status == "" {
		seat.Status = domain.SeatAvailable
	}
	s.seats[seat.ID] = seat

	return seat
}

func (s *Store) GetTrainByID(ctx context.Context, trainID int64) (*domain.Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	train, ok := s.trains[trainID]
	if !ok {
		return nil, domain.ErrTrainNotFound
	}

	return &train, nil
}

func (s *Store) Filter(ctx context.Context, filter domain.TrainFilter) ([]domain.TrainSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minSeats := 1
	if filter.MinAvailableSeats != nil && *filter.MinAvailableSeats > minSeats {
		minSeats = *filter.MinAvailableSeats
	}

	var matches []domain.TrainSummary
	for _, train := range s.trains {
		if train.DepartureStation != filter.DepartureStation || train.ArrivalStation != filter.ArrivalStation {
			continue
		}

		if filter.OutboundDate != nil && train.DepartureTime.Before(*filter.OutboundDate) {
			continue
		}

		if filter.ReturnDate != nil && train.DepartureTime.After(*filter.ReturnDate) {
			continue
		}

		summary := domain.TrainSummary{Train: train}
		for _, seat := range s.seats {
			if seat.TrainID != train.ID || seat.Status != domain.SeatAvailable {
				continue
			}

			switch seat.Class {
			case domain.ClassFirst:
				summary.AvailableSeatsFirst++
			case domain.ClassBusiness:
				summary.AvailableSeatsBusiness++
			case domain.ClassStandard:
				summary.AvailableSeatsStandard++
			}
		}

		qualifying := summary.AvailableSeatsFirst + summary.AvailableSeatsBusiness + summary.AvailableSeatsStandard
		if filter.SeatClass != nil {
			qualifying = summary.AvailableSeats(*filter.SeatClass)
		}

		if qualifying < minSeats {
			continue
		}

		matches = append(matches, summary)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DepartureTime.Equal(matches[j].DepartureTime) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].DepartureTime.Before(matches[j].DepartureTime)
	})

	return matches, nil
}

func (s *Store) GetSeatByID(ctx context.Context, seatID int64) (*domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seat, ok := s.seats[seatID]
	if !ok {
		return nil, domain.ErrSeatNotFound
	}

	return &seat, nil
}

func (s *Store) GetAvailableByTrain(ctx context.Context, trainID int64) ([]domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var seats []domain.Seat
	for _, seat := range s.seats {
		if seat.TrainID == trainID && seat.Status == domain.SeatAvailable {
			seats = append(seats, seat)
		}
	}

	// Id order first so the fare sort breaks ties deterministically.
	sort.Slice(seats, func(i, j int) bool { return seats[i].ID < seats[j].ID })
	sort.SliceStable(seats, func(i, j int) bool { return seats[i].Fare > seats[j].Fare })

	return seats, nil
}

func (s *Store) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	return &client, nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.clientsByName[username]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	client := s.clients[id]
	return &client, nil
}

func (s *Store) CreateClient(ctx context.Context, client *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.clientsByName[client.Username]; taken {
		return domain.ErrUsernameTaken
	}

	s.nextClientID++
	client.ID = s.nextClientID
	s.clients[client.ID] = *client
	s.clientsByName[client.Username] = client.ID

	return nil
}

func (s *Store) Reserve(ctx context.Context, clientID, seatID int64, ticketType domain.TicketType) (*domain.ReservationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := s.seats[seatID]
	if !ok || seat.Status != domain.SeatAvailable {
		return nil, fmt.Errorf("%w or already reserved", domain.ErrSeatNotFound)
	}

	seat.Status = domain.SeatReserved
	s.seats[seatID] = seat

	s.nextReservationID++
	reservation := domain.Reservation{
		ID:         s.nextReservationID,
		ClientID:   clientID,
		SeatID:     seatID,
		TicketType: ticketType,
		Status:     domain.ReservationConfirmed,
	}
	s.reservations[reservation.ID] = reservation
	s.reservationOrder = append(s.reservationOrder, reservation.ID)

	return &domain.ReservationDetail{Reservation: reservation, TrainID: seat.TrainID}, nil
}

func (s *Store) GetReservationByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation, ok := s.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	return &reservation, nil
}

func (s *Store) Cancel(ctx context.Context, reservationID int64) (*domain.ReservationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	if reservation.Status == domain.ReservationCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	seat, ok := s.seats[reservation.SeatID]
	if !ok {
		return nil, fmt.Errorf("reservation %d references missing seat %d", reservationID, reservation.SeatID)
	}

	reservation.Status = domain.ReservationCancelled
	s.reservations[reservationID] = reservation

	seat.Status = domain.SeatAvailable
	s.seats[seat.ID] = seat

	return &domain.ReservationDetail{Reservation: reservation, TrainID: seat.TrainID}, nil
}

func (s *Store) ListByClient(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]domain.ReservationDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var details []domain.ReservationDetail
	for _, id := range s.reservationOrder {
		reservation := s.reservations[id]
		if reservation.ClientID != clientID {
			continue
		}

		if status != nil && reservation.Status != *status {
			continue
		}

		details = append(details, domain.ReservationDetail{
			Reservation: reservation,
			TrainID:     s.seats[reservation.SeatID].TrainID,
		})
	}

	return details, nil
}
