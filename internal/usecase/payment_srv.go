package usecase

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentService interface {
	// ConfirmPayment settles a reservation from a verified provider
	// notification. Unknown codes and already-settled reservations are
	// acknowledged without effect so the provider stops redelivering.
	ConfirmPayment(ctx context.Context, code string, amountPaid decimal.Decimal) error
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ConfirmPayment(ctx context.Context, code string, amountPaid decimal.Decimal) error {
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		reservation, err := s.repo.Reservation.FindByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("find reservation: %w", err)
		}
		if reservation == nil {
			s.log.Info("Payment confirmation for unknown code ignored",
				zap.String("code", code),
			)
			return nil
		}
		if reservation.PaymentStatus != entity.PaymentStatusPending {
			s.log.Info("Payment confirmation for settled reservation ignored",
				zap.String("code", code),
				zap.String("payment_status", string(reservation.PaymentStatus)),
			)
			return nil
		}

		updated, err := s.repo.Reservation.MarkPaid(ctx, reservation.ID, amountPaid)
		if err != nil {
			return err
		}
		if !updated {
			// Lost the race to a concurrent delivery; same outcome.
			s.log.Info("Payment confirmation raced a concurrent delivery",
				zap.String("code", code),
			)
			return nil
		}

		s.log.Info("Payment confirmed",
			zap.String("code", code),
			zap.String("amount_paid", amountPaid.StringFixed(2)),
		)
		return nil
	})

	if err != nil {
		s.log.Error("Failed to confirm payment",
			zap.Error(err),
			zap.String("code", code),
		)
		return err
	}

	return nil
}
