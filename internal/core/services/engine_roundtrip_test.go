package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmarta/railbook/internal/adapter/repository/memory"
	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/services"
)

// Round trip across both engines against a real store: reserve a seat,
// see it in the client's reservations, cancel it, and watch the status
// filters flip.
func TestReservationRoundTrip(t *testing.T) {
	store := memory.NewStore()
	cache, _ := redismock.NewClientMock()

	reservationService := services.NewReservationService(store.Clients(), store.Reservations(), cache)
	catalogService := services.NewCatalogService(store.Trains(), store.Seats(), cache)

	ctx := context.Background()

	departure := time.Date(2026, time.March, 5, 8, 30, 0, 0, time.UTC)
	train := store.AddTrain(domain.Train{
		DepartureStation: "StationA",
		ArrivalStation:   "StationB",
		DepartureTime:    departure,
		ArrivalTime:      departure.Add(3 * time.Hour),
	})
	seat := store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassBusiness, Fare: 150})

	client := domain.Client{Username: "alice", PasswordHash: "x"}
	require.NoError(t, store.CreateClient(ctx, &client))

	created, err := reservationService.CreateReservation(ctx, client.ID, seat.ID, domain.TicketFlexible)
	require.NoError(t, err)
	assert.Equal(t, train.ID, created.TrainID)
	assert.Equal(t, domain.ReservationConfirmed, created.Status)

	// The seat is gone from the availability listing.
	_, err = catalogService.GetTrainSeats(ctx, train.ID, nil)
	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)

	// Reserving it again fails like a missing seat.
	_, err = reservationService.CreateReservation(ctx, client.ID, seat.ID, domain.TicketFlexible)
	assert.ErrorIs(t, err, domain.ErrSeatNotFound)

	listed, err := reservationService.GetClientReservations(ctx, client.ID, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, seat.ID, listed[0].SeatID)
	assert.Equal(t, domain.ReservationConfirmed, listed[0].Status)

	cancelled, err := reservationService.CancelReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, cancelled.Status)

	cancelledStatus := domain.ReservationCancelled
	listed, err = reservationService.GetClientReservations(ctx, client.ID, &cancelledStatus)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	confirmedStatus := domain.ReservationConfirmed
	_, err = reservationService.GetClientReservations(ctx, client.ID, &confirmedStatus)
	assert.ErrorIs(t, err, domain.ErrNoReservations)

	// The released seat shows up as Available again.
	grouped, err := catalogService.GetTrainSeats(ctx, train.ID, nil)
	require.NoError(t, err)
	require.Len(t, grouped[domain.ClassBusiness], 1)
	assert.Equal(t, seat.ID, grouped[domain.ClassBusiness][0].ID)
}
