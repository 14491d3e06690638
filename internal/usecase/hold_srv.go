package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HoldService interface {
	// PlaceHold claims the requested seats for one checkout window. All
	// seats are held with a single shared expiry or none are held at
	// all; conflicts report the offending seat numbers.
	PlaceHold(ctx context.Context, req *request.PlaceHoldRequest) (*response.HoldResponse, error)
}

type holdService struct {
	repo  *repository.Repository
	clock utils.Clock
	ttl   time.Duration
	log   *zap.Logger
}

func NewHoldService(repo *repository.Repository, config *utils.Config, clock utils.Clock, log *zap.Logger) HoldService {
	return &holdService{
		repo:  repo,
		clock: clock,
		ttl:   config.Booking.HoldTTL,
		log:   log.With(zap.String("service", "hold")),
	}
}

func (s *holdService) PlaceHold(ctx context.Context, req *request.PlaceHoldRequest) (*response.HoldResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place hold validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if hasDuplicateSeats(req.Seats) {
		return nil, fmt.Errorf("validation failed: Seats: duplicate seat numbers")
	}

	departureID, err := utils.ParseUUID(req.DepartureID)
	if err != nil {
		return nil, fmt.Errorf("invalid departure ID format %s: %w", req.DepartureID, err)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		departure, err := s.repo.Departure.FindByID(ctx, departureID)
		if err != nil {
			return fmt.Errorf("load departure: %w", err)
		}
		if departure == nil {
			return fmt.Errorf("departure %s: %w", req.DepartureID, repository.ErrNotFound)
		}

		for _, seat := range req.Seats {
			if seat > departure.Capacity {
				return fmt.Errorf("validation failed: Seats: seat %d exceeds capacity %d", seat, departure.Capacity)
			}
		}

		// Drop inert holds so freed seats can be claimed again without
		// tripping the unique constraint.
		if err := s.repo.SeatHold.PurgeExpired(ctx, departureID, now); err != nil {
			return err
		}

		booked, err := s.repo.SeatAssignment.FindBookedSeats(ctx, departureID)
		if err != nil {
			return fmt.Errorf("check booked seats: %w", err)
		}
		if conflicts := intersectSeats(req.Seats, booked); len(conflicts) > 0 {
			return &repository.SeatConflictError{Kind: repository.SeatConflictBooked, Seats: conflicts}
		}

		held, err := s.repo.SeatHold.FindLiveSeats(ctx, departureID, now)
		if err != nil {
			return fmt.Errorf("check live holds: %w", err)
		}
		if conflicts := intersectSeats(req.Seats, held); len(conflicts) > 0 {
			return &repository.SeatConflictError{Kind: repository.SeatConflictHeld, Seats: conflicts}
		}

		holds := make([]*entity.SeatHold, len(req.Seats))
		for i, seat := range req.Seats {
			holds[i] = &entity.SeatHold{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				DepartureID: departureID,
				SeatNumber:  seat,
				ExpiresAt:   expiresAt,
			}
		}

		if err := s.repo.SeatHold.CreateBatch(ctx, holds); err != nil {
			// A concurrent request won the unique constraint between
			// our check and the insert. The tx is aborted, so the live
			// holds cannot be re-read here; report the requested seats.
			if repository.IsDuplicateHold(err) {
				return &repository.SeatConflictError{
					Kind:  repository.SeatConflictHeld,
					Seats: req.Seats,
				}
			}
			return err
		}

		return nil
	})

	if err != nil {
		if _, ok := repository.AsSeatConflict(err); ok {
			return nil, err
		}
		s.log.Error("Failed to place hold",
			zap.Error(err),
			zap.String("departure_id", req.DepartureID),
			zap.Ints("seats", req.Seats),
		)
		return nil, err
	}

	s.log.Info("Seats held",
		zap.String("departure_id", req.DepartureID),
		zap.Ints("seats", req.Seats),
		zap.Time("expires_at", expiresAt),
	)

	return &response.HoldResponse{
		DepartureID: req.DepartureID,
		Seats:       req.Seats,
		ExpiresAt:   expiresAt,
	}, nil
}
