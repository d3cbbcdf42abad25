package services

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/ports"
)

// ReservationService is the read-modify-write core: it creates and
// cancels reservations while keeping seat status and reservation status
// consistent. The atomic seat flip itself lives in the repository; this
// layer owns the precondition checks and cache invalidation.
type ReservationService struct {
	clientRepo      ports.ClientRepository
	reservationRepo ports.ReservationRepository
	cache           *redis.Client
}

func NewReservationService(clientRepo ports.ClientRepository, reservationRepo ports.ReservationRepository, cache *redis.Client) *ReservationService {
	return &ReservationService{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
	}
}

// CreateReservation books the seat for the client. Preconditions are
// checked in order: ticket type, client existence, then the seat itself
// inside the atomic reserve. A seat that is unknown, already reserved or
// lost to a concurrent caller fails identically with ErrSeatNotFound.
func (s *ReservationService) CreateReservation(ctx context.Context, clientID, seatID int64, ticketType domain.TicketType) (*domain.ReservationDetail, error) {
	if !ticketType.Valid() {
		return nil, domain.ErrInvalidTicketType
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.Reserve(ctx, clientID, seatID, ticketType)
	if err != nil {
		return nil, err
	}

	s.invalidateSeatCache(ctx, reservation.TrainID)

	return reservation, nil
}

// CancelReservation moves a Confirmed reservation to Cancelled and
// releases its seat. Cancellation is terminal: a second call on the same
// id fails with ErrAlreadyCancelled.
func (s *ReservationService) CancelReservation(ctx context.Context, reservationID int64) (*domain.ReservationDetail, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status == domain.ReservationCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	updated, err := s.reservationRepo.Cancel(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	s.invalidateSeatCache(ctx, updated.TrainID)

	return updated, nil
}

// GetClientReservations lists the client's reservations in creation
// order, optionally restricted to one status. An empty (filtered) result
// is a NotFound condition.
func (s *ReservationService) GetClientReservations(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]domain.ReservationDetail, error) {
	if status != nil && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListByClient(ctx, clientID, status)
	if err != nil {
		return nil, err
	}

	if len(reservations) == 0 {
		return nil, domain.ErrNoReservations
	}

	return reservations, nil
}

func (s *ReservationService) invalidateSeatCache(ctx context.Context, trainID int64) {
	cacheKey := fmt.Sprintf("seats:%d", trainID)
	if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("Cache invalidation failed for %s: %v", cacheKey, err)
	}
}
