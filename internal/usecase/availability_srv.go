package usecase

import (
	"context"
	"fmt"

	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	// GetSeatMap returns capacity and the occupied-seat set for a
	// departure: confirmed assignments plus live holds. A seat another
	// customer is checking out shows occupied before payment completes.
	GetSeatMap(ctx context.Context, departureID string) (*response.SeatMapResponse, error)
}

type availabilityService struct {
	repo  *repository.Repository
	clock utils.Clock
	log   *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, clock utils.Clock, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetSeatMap(ctx context.Context, departureID string) (*response.SeatMapResponse, error) {
	id, err := utils.ParseUUID(departureID)
	if err != nil {
		return nil, fmt.Errorf("invalid departure ID format %s: %w", departureID, err)
	}

	departure, err := s.repo.Departure.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load departure: %w", err)
	}
	if departure == nil {
		return nil, fmt.Errorf("departure %s: %w", departureID, repository.ErrNotFound)
	}

	booked, err := s.repo.SeatAssignment.FindBookedSeats(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booked seats", zap.Error(err))
		return nil, fmt.Errorf("load booked seats: %w", err)
	}

	held, err := s.repo.SeatHold.FindLiveSeats(ctx, id, s.clock.Now())
	if err != nil {
		s.log.Error("Failed to load live holds", zap.Error(err))
		return nil, fmt.Errorf("load live holds: %w", err)
	}

	return &response.SeatMapResponse{
		Capacity:      departure.Capacity,
		OccupiedSeats: unionSeats(booked, held),
	}, nil
}

// unionSeats merges two seat lists without duplicates, sorted ascending.
func unionSeats(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	union := make([]int, 0, len(a)+len(b))
	for _, list := range [][]int{a, b} {
		for _, seat := range list {
			if _, ok := seen[seat]; ok {
				continue
			}
			seen[seat] = struct{}{}
			union = append(union, seat)
		}
	}
	sortSeats(union)
	return union
}
