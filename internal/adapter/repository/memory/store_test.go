package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmarta/railbook/internal/adapter/repository/memory"
	"github.com/devmarta/railbook/internal/core/domain"
)

func day(n int) time.Time {
	return time.Date(2026, time.January, n, 9, 0, 0, 0, time.UTC)
}

func newClient(t *testing.T, store *memory.Store, username string) domain.Client {
	t.Helper()

	client := domain.Client{Username: username, PasswordHash: "x"}
	require.NoError(t, store.CreateClient(context.Background(), &client))

	return client
}

func TestReserve_ExactlyOnceUnderContention(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	train := store.AddTrain(domain.Train{
		DepartureStation: "StationA",
		ArrivalStation:   "StationB",
		DepartureTime:    day(5),
		ArrivalTime:      day(5).Add(2 * time.Hour),
	})
	seat := store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassStandard, Fare: 80})
	client := newClient(t, store, "alice")

	const callers = 32

	var wg sync.WaitGroup
	results := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Reserve(ctx, client.ID, seat.ID, domain.TicketFlexible)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrSeatNotFound):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)

	updated, err := store.GetSeatByID(ctx, seat.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatReserved, updated.Status)

	reservations, err := store.ListByClient(ctx, client.ID, nil)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, domain.ReservationConfirmed, reservations[0].Status)
}

func TestCancel_IsTerminal(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	train := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(5), ArrivalTime: day(5).Add(time.Hour)})
	seat := store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassFirst, Fare: 240})
	client := newClient(t, store, "alice")

	reservation, err := store.Reserve(ctx, client.ID, seat.ID, domain.TicketNonFlexible)
	require.NoError(t, err)

	cancelled, err := store.Cancel(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, cancelled.Status)

	_, err = store.Cancel(ctx, reservation.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	updated, err := store.GetSeatByID(ctx, seat.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatAvailable, updated.Status)
}

// The core invariant: a seat is Reserved iff it carries a Confirmed
// reservation, checked after a mix of reserves and cancels.
func TestSeatReservationInvariant(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	train := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(5), ArrivalTime: day(5).Add(time.Hour)})
	client := newClient(t, store, "alice")

	var seats []domain.Seat
	for i := 0; i < 6; i++ {
		seats = append(seats, store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassStandard, Fare: 60}))
	}

	var reservations []*domain.ReservationDetail
	for _, seat := range seats[:4] {
		r, err := store.Reserve(ctx, client.ID, seat.ID, domain.TicketFlexible)
		require.NoError(t, err)
		reservations = append(reservations, r)
	}

	_, err := store.Cancel(ctx, reservations[1].ID)
	require.NoError(t, err)
	_, err = store.Cancel(ctx, reservations[3].ID)
	require.NoError(t, err)

	all, err := store.ListByClient(ctx, client.ID, nil)
	require.NoError(t, err)

	confirmedBySeat := make(map[int64]int)
	for _, r := range all {
		if r.Status == domain.ReservationConfirmed {
			confirmedBySeat[r.SeatID]++
		}
	}

	for _, seat := range seats {
		current, err := store.GetSeatByID(ctx, seat.ID)
		require.NoError(t, err)

		if current.Status == domain.SeatReserved {
			assert.Equal(t, 1, confirmedBySeat[seat.ID], "reserved seat %d must have exactly one confirmed reservation", seat.ID)
		} else {
			assert.Zero(t, confirmedBySeat[seat.ID], "available seat %d must have no confirmed reservation", seat.ID)
		}
	}
}

func TestFilter_MinSeatsAndClass(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	t1 := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(5), ArrivalTime: day(5).Add(time.Hour)})
	for i := 0; i < 3; i++ {
		store.AddSeat(domain.Seat{TrainID: t1.ID, Class: domain.ClassStandard, Fare: 60})
	}

	t2 := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(10), ArrivalTime: day(10).Add(time.Hour)})
	store.AddSeat(domain.Seat{TrainID: t2.ID, Class: domain.ClassStandard, Fare: 55})

	minSeats := 2
	class := domain.ClassStandard

	matches, err := store.Filter(ctx, domain.TrainFilter{
		DepartureStation:  "StationA",
		ArrivalStation:    "StationB",
		MinAvailableSeats: &minSeats,
		SeatClass:         &class,
	})

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, t1.ID, matches[0].ID)
	assert.Equal(t, 3, matches[0].AvailableSeatsStandard)
}

func TestFilter_DateBoundsAndAvailability(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	early := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(3), ArrivalTime: day(3).Add(time.Hour)})
	store.AddSeat(domain.Seat{TrainID: early.ID, Class: domain.ClassFirst, Fare: 220})

	late := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(20), ArrivalTime: day(20).Add(time.Hour)})
	store.AddSeat(domain.Seat{TrainID: late.ID, Class: domain.ClassFirst, Fare: 230})

	// Fully reserved trains never match.
	full := store.AddTrain(domain.Train{DepartureStation: "StationA", ArrivalStation: "StationB", DepartureTime: day(6), ArrivalTime: day(6).Add(time.Hour)})
	seat := store.AddSeat(domain.Seat{TrainID: full.ID, Class: domain.ClassFirst, Fare: 210})
	client := newClient(t, store, "bob")
	_, err := store.Reserve(ctx, client.ID, seat.ID, domain.TicketFlexible)
	require.NoError(t, err)

	outbound := day(4)
	ret := day(15)

	matches, err := store.Filter(ctx, domain.TrainFilter{
		DepartureStation: "StationA",
		ArrivalStation:   "StationB",
		OutboundDate:     &outbound,
		ReturnDate:       &ret,
	})

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGetAvailableByTrain_FareDescending(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	train := store.AddTrain(domain.Train{DepartureStation: "StationC", ArrivalStation: "StationD", DepartureTime: day(8), ArrivalTime: day(8).Add(time.Hour)})
	store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassStandard, Fare: 60})
	store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassFirst, Fare: 250})
	store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassBusiness, Fare: 140})
	store.AddSeat(domain.Seat{TrainID: train.ID, Class: domain.ClassStandard, Fare: 60})

	seats, err := store.GetAvailableByTrain(ctx, train.ID)
	require.NoError(t, err)
	require.Len(t, seats, 4)

	for i := 1; i < len(seats); i++ {
		assert.GreaterOrEqual(t, seats[i-1].Fare, seats[i].Fare)
	}

	// Equal fares keep id order.
	assert.Less(t, seats[2].ID, seats[3].ID)
}
