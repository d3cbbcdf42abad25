package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/ports/mocks"
	"github.com/devmarta/railbook/internal/core/services"
)

func TestFilterTrains_InvalidSeatClass(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, _ := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	class := domain.SeatClass("Economy")
	_, err := service.FilterTrains(context.Background(), domain.TrainFilter{
		DepartureStation: "StationA",
		ArrivalStation:   "StationB",
		SeatClass:        &class,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidSeatClass)
}

func TestFilterTrains_EmptyResultIsNotFound(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, _ := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	ctx := context.Background()
	filter := domain.TrainFilter{DepartureStation: "StationA", ArrivalStation: "StationB"}

	mockTrainRepo.On("Filter", ctx, filter).Return([]domain.TrainSummary{}, nil)

	_, err := service.FilterTrains(ctx, filter)

	assert.ErrorIs(t, err, domain.ErrNoTrainsFound)
}

func TestFilterTrains_ReturnsSummaries(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, _ := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	ctx := context.Background()
	filter := domain.TrainFilter{DepartureStation: "StationA", ArrivalStation: "StationB"}

	summaries := []domain.TrainSummary{
		{
			Train:                  domain.Train{ID: 1, DepartureStation: "StationA", ArrivalStation: "StationB"},
			AvailableSeatsFirst:    2,
			AvailableSeatsBusiness: 1,
			AvailableSeatsStandard: 3,
		},
	}

	mockTrainRepo.On("Filter", ctx, filter).Return(summaries, nil)

	trains, err := service.FilterTrains(ctx, filter)

	require.NoError(t, err)
	require.Len(t, trains, 1)
	assert.Equal(t, int64(1), trains[0].ID)
	assert.Equal(t, 3, trains[0].AvailableSeats(domain.ClassStandard))
}

func TestGetTrainSeats_GroupsByClass(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, mockCache := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	ctx := context.Background()
	seats := []domain.Seat{
		{ID: 1, TrainID: 9, Class: domain.ClassFirst, Fare: 250, Status: domain.SeatAvailable},
		{ID: 2, TrainID: 9, Class: domain.ClassStandard, Fare: 90, Status: domain.SeatAvailable},
		{ID: 3, TrainID: 9, Class: domain.ClassStandard, Fare: 70, Status: domain.SeatAvailable},
	}

	mockCache.ExpectGet("seats:9").RedisNil()
	mockSeatRepo.On("GetAvailableByTrain", ctx, int64(9)).Return(seats, nil)

	grouped, err := service.GetTrainSeats(ctx, 9, nil)

	require.NoError(t, err)
	require.Len(t, grouped, 3)
	assert.Len(t, grouped[domain.ClassFirst], 1)
	assert.Empty(t, grouped[domain.ClassBusiness])
	require.Len(t, grouped[domain.ClassStandard], 2)

	// Fare descending within the class, as delivered by the repository.
	assert.Equal(t, 90.0, grouped[domain.ClassStandard][0].Fare)
	assert.Equal(t, 70.0, grouped[domain.ClassStandard][1].Fare)
}

func TestGetTrainSeats_ClassFilterWithNoSeatsIsNotFound(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, mockCache := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	ctx := context.Background()
	seats := []domain.Seat{
		{ID: 2, TrainID: 9, Class: domain.ClassStandard, Fare: 90, Status: domain.SeatAvailable},
	}

	mockCache.ExpectGet("seats:9").RedisNil()
	mockSeatRepo.On("GetAvailableByTrain", ctx, int64(9)).Return(seats, nil)

	class := domain.ClassFirst
	_, err := service.GetTrainSeats(ctx, 9, &class)

	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestGetTrainSeats_ServedFromCache(t *testing.T) {
	mockTrainRepo := mocks.NewTrainRepository(t)
	mockSeatRepo := mocks.NewSeatRepository(t)
	cache, mockCache := redismock.NewClientMock()

	service := services.NewCatalogService(mockTrainRepo, mockSeatRepo, cache)

	seats := []domain.Seat{
		{ID: 4, TrainID: 9, Class: domain.ClassBusiness, Fare: 150, Status: domain.SeatAvailable},
	}
	payload, err := json.Marshal(seats)
	require.NoError(t, err)

	mockCache.ExpectGet("seats:9").SetVal(string(payload))

	grouped, err := service.GetTrainSeats(context.Background(), 9, nil)

	// The seat repository mock has no expectations: a store read here
	// would fail the test.
	require.NoError(t, err)
	assert.Len(t, grouped[domain.ClassBusiness], 1)

	assert.NoError(t, mockCache.ExpectationsWereMet())
}
