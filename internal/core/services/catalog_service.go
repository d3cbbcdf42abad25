package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/ports"
)

const seatCacheTTL = 30 * time.Second

// CatalogService answers availability queries against the inventory
// without mutating it.
type CatalogService struct {
	trainRepo ports.TrainRepository
	seatRepo  ports.SeatRepository
	cache     *redis.Client
}

func NewCatalogService(trainRepo ports.TrainRepository, seatRepo ports.SeatRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{
		trainRepo: trainRepo,
		seatRepo:  seatRepo,
		cache:     cache,
	}
}

// FilterTrains returns every train matching the station pair and the
// optional date, class and availability criteria, each with its live
// per-class count of Available seats. An empty match is a NotFound
// condition, not a fault.
func (s *CatalogService) FilterTrains(ctx context.Context, filter domain.TrainFilter) ([]domain.TrainSummary, error) {
	if filter.SeatClass != nil && !filter.SeatClass.Valid() {
		return nil, domain.ErrInvalidSeatClass
	}

	trains, err := s.trainRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(trains) == 0 {
		return nil, domain.ErrNoTrainsFound
	}

	return trains, nil
}

func (s *CatalogService) GetTrain(ctx context.Context, trainID int64) (*domain.Train, error) {
	return s.trainRepo.GetByID(ctx, trainID)
}

func (s *CatalogService) GetSeat(ctx context.Context, seatID int64) (*domain.Seat, error) {
	return s.seatRepo.GetByID(ctx, seatID)
}

// GetTrainSeats returns the train's Available seats grouped by class,
// each group ordered by fare descending. With a class filter the result
// holds only that class's bucket and an empty bucket is NotFound; without
// one, NotFound is raised only when the train has no Available seats at
// all.
func (s *CatalogService) GetTrainSeats(ctx context.Context, trainID int64, seatClass *domain.SeatClass) (map[domain.SeatClass][]domain.Seat, error) {
	if seatClass != nil && !seatClass.Valid() {
		return nil, domain.ErrInvalidSeatClass
	}

	seats, err := s.availableSeats(ctx, trainID)
	if err != nil {
		return nil, err
	}

	if seatClass != nil {
		bucket := make([]domain.Seat, 0)
		for _, seat := range seats {
			if seat.Class == *seatClass {
				bucket = append(bucket, seat)
			}
		}

		if len(bucket) == 0 {
			return nil, domain.ErrNoSeatsAvailable
		}

		return map[domain.SeatClass][]domain.Seat{*seatClass: bucket}, nil
	}

	if len(seats) == 0 {
		return nil, domain.ErrNoSeatsAvailable
	}

	grouped := make(map[domain.SeatClass][]domain.Seat, len(domain.SeatClasses))
	for _, class := range domain.SeatClasses {
		grouped[class] = []domain.Seat{}
	}

	for _, seat := range seats {
		grouped[seat.Class] = append(grouped[seat.Class], seat)
	}

	return grouped, nil
}

// availableSeats reads the train's Available seats through the cache.
// The cache is best effort: any Redis failure falls back to the store.
func (s *CatalogService) availableSeats(ctx context.Context, trainID int64) ([]domain.Seat, error) {
	cacheKey := fmt.Sprintf("seats:%d", trainID)

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var seats []domain.Seat
		if err := json.Unmarshal([]byte(cached), &seats); err == nil {
			return seats, nil
		}
	} else if err != redis.Nil {
		log.Printf("Cache read failed for %s: %v", cacheKey, err)
	}

	seats, err := s.seatRepo.GetAvailableByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(seats); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, seatCacheTTL).Err(); err != nil {
			log.Printf("Cache write failed for %s: %v", cacheKey, err)
		}
	}

	return seats, nil
}
