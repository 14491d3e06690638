package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/internal/payment"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReservationService interface {
	// CreateReservation re-validates seat availability, persists the
	// reservation with its seat assignments, opens the payment session
	// and commits, all as one atomic unit. A failure anywhere (payment
	// provider included) leaves nothing behind, not even the
	// auto-created customer.
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)

	// GetStatusBySession backs the post-checkout polling page.
	GetStatusBySession(ctx context.Context, sessionID string) (*response.ReservationStatusResponse, error)

	// GetTicketByCode resolves the public ticket view for a code.
	GetTicketByCode(ctx context.Context, code string) (*response.TicketResponse, error)
}

type reservationService struct {
	repo    *repository.Repository
	gateway payment.Gateway
	config  *utils.Config
	clock   utils.Clock
	log     *zap.Logger
}

func NewReservationService(repo *repository.Repository, gateway payment.Gateway, config *utils.Config, clock utils.Clock, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:    repo,
		gateway: gateway,
		config:  config,
		clock:   clock,
		log:     log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The first passenger's phone identifies the purchaser.
	purchaser := req.Passengers[0]
	if strings.TrimSpace(purchaser.Phone) == "" {
		return nil, fmt.Errorf("validation failed: Phone: first passenger phone is required")
	}

	seats := make([]int, len(req.Passengers))
	for i, p := range req.Passengers {
		seats[i] = p.Seat
	}
	if hasDuplicateSeats(seats) {
		return nil, fmt.Errorf("validation failed: Passengers: duplicate seat numbers")
	}

	departureID, err := utils.ParseUUID(req.DepartureID)
	if err != nil {
		return nil, fmt.Errorf("invalid departure ID format %s: %w", req.DepartureID, err)
	}

	now := s.clock.Now()
	var resp *response.ReservationResponse

	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		// Row lock serializes reservation creation per departure, so
		// the seat re-check below cannot race another booking.
		departure, err := s.repo.Departure.FindByIDForUpdate(ctx, departureID)
		if err != nil {
			return fmt.Errorf("load departure: %w", err)
		}
		if departure == nil {
			return fmt.Errorf("departure %s: %w", req.DepartureID, repository.ErrNotFound)
		}

		for _, seat := range seats {
			if seat > departure.Capacity {
				return fmt.Errorf("validation failed: Passengers: seat %d exceeds capacity %d", seat, departure.Capacity)
			}
		}

		// Mandatory re-check even when the client held the seats: the
		// hold and this call are separate transactions and time passed.
		booked, err := s.repo.SeatAssignment.FindBookedSeats(ctx, departureID)
		if err != nil {
			return fmt.Errorf("check booked seats: %w", err)
		}
		if conflicts := intersectSeats(seats, booked); len(conflicts) > 0 {
			return &repository.SeatConflictError{Kind: repository.SeatConflictUnavailable, Seats: conflicts}
		}

		customer, err := s.findOrCreateCustomer(ctx, purchaser, now)
		if err != nil {
			return err
		}

		totalAmount := departure.Price.Mul(decimal.NewFromInt(int64(len(req.Passengers))))
		code := utils.GenerateReservationCode(departure.ID, customer.ID, now)

		reservation := &entity.Reservation{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			Code:          code,
			DepartureID:   departure.ID,
			CustomerID:    customer.ID,
			PaymentStatus: entity.PaymentStatusPending,
			TotalAmount:   totalAmount,
		}

		if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
			return err
		}

		assignments := make([]*entity.SeatAssignment, len(req.Passengers))
		for i, p := range req.Passengers {
			var phone *string
			if trimmed := strings.TrimSpace(p.Phone); trimmed != "" {
				phone = &trimmed
			}
			assignments[i] = &entity.SeatAssignment{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				ReservationID:  reservation.ID,
				SeatNumber:     p.Seat,
				PassengerName:  p.Name,
				PassengerPhone: phone,
			}
		}
		if err := s.repo.SeatAssignment.CreateBatch(ctx, assignments); err != nil {
			return err
		}

		session, err := s.gateway.CreateSession(ctx, payment.SessionInput{
			Amount:      totalAmount,
			Currency:    s.config.Payment.Currency,
			Description: fmt.Sprintf("Bus ticket %s, %d seat(s)", code, len(seats)),
			Code:        code,
			SuccessURL:  s.config.Payment.SuccessURL,
			CancelURL:   s.config.Payment.CancelURL,
		})
		if err != nil {
			return fmt.Errorf("create payment session: %w", err)
		}

		if err := s.repo.Reservation.UpdatePaymentSession(ctx, reservation.ID, session.ID); err != nil {
			return err
		}

		resp = &response.ReservationResponse{
			ReservationID:    reservation.ID.String(),
			Code:             code,
			TotalAmount:      totalAmount,
			PaymentSessionID: session.ID,
			RedirectURL:      session.RedirectURL,
		}
		return nil
	})

	if err != nil {
		if _, ok := repository.AsSeatConflict(err); ok {
			return nil, err
		}
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("departure_id", req.DepartureID),
			zap.Ints("seats", seats),
		)
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("code", resp.Code),
		zap.String("departure_id", req.DepartureID),
		zap.Int("seat_count", len(seats)),
		zap.String("total_amount", resp.TotalAmount.StringFixed(2)),
	)

	return resp, nil
}

// findOrCreateCustomer resolves the purchaser by phone, creating the
// record inside the current transaction so a later failure removes it.
func (s *reservationService) findOrCreateCustomer(ctx context.Context, purchaser request.PassengerRequest, now time.Time) (*entity.Customer, error) {
	phone := strings.TrimSpace(purchaser.Phone)

	customer, err := s.repo.Customer.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer != nil {
		return customer, nil
	}

	// Empty email means no email, never an empty string.
	var email *string
	if trimmed := strings.TrimSpace(purchaser.Email); trimmed != "" {
		email = &trimmed
	}

	customer = &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName: purchaser.Name,
		Phone:    phone,
		Email:    email,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *reservationService) GetStatusBySession(ctx context.Context, sessionID string) (*response.ReservationStatusResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("validation failed: session_id is required")
	}

	reservation, err := s.repo.Reservation.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("find reservation by session: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation for session %s: %w", sessionID, repository.ErrNotFound)
	}

	return &response.ReservationStatusResponse{
		Code:          reservation.Code,
		PaymentStatus: reservation.PaymentStatus,
	}, nil
}

func (s *reservationService) GetTicketByCode(ctx context.Context, code string) (*response.TicketResponse, error) {
	reservation, err := s.repo.Reservation.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find reservation by code: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", code, repository.ErrNotFound)
	}

	departure, err := s.repo.Departure.FindByID(ctx, reservation.DepartureID)
	if err != nil {
		return nil, fmt.Errorf("load departure: %w", err)
	}

	ticket := &response.TicketResponse{
		Code:          reservation.Code,
		PaymentStatus: reservation.PaymentStatus,
		TotalAmount:   reservation.TotalAmount,
	}

	if departure != nil {
		ticket.DepartsAt = departure.DepartsAt
		route, err := s.repo.Route.FindByID(ctx, departure.RouteID)
		if err != nil {
			return nil, fmt.Errorf("load route: %w", err)
		}
		if route != nil {
			ticket.Origin = route.Origin
			ticket.Destination = route.Destination
		}
	}

	assignments, err := s.repo.SeatAssignment.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("load seat assignments: %w", err)
	}
	for _, assignment := range assignments {
		ticket.Passengers = append(ticket.Passengers, response.TicketPassenger{
			Seat: assignment.SeatNumber,
			Name: assignment.PassengerName,
		})
	}

	return ticket, nil
}
