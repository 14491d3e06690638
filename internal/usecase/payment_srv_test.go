package usecase

import (
	"context"
	"errors"
	"testing"

	"bus-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestConfirmPayment_MarksPendingPaid(t *testing.T) {
	reservationID := uuid.New()

	var paidAmount decimal.Decimal
	var paidID uuid.UUID

	repo := newTestRepository()
	repo.Reservation = &mockReservationRepo{
		findByCodeFunc: func(ctx context.Context, code string) (*entity.Reservation, error) {
			return &entity.Reservation{
				BaseSimple:    entity.BaseSimple{ID: reservationID},
				Code:          code,
				PaymentStatus: entity.PaymentStatusPending,
				TotalAmount:   decimal.RequireFromString("1000.00"),
			}, nil
		},
		markPaidFunc: func(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error) {
			paidID = id
			paidAmount = amountPaid
			return true, nil
		},
	}

	service := NewPaymentService(repo, zap.NewNop())

	// Provider reports a different amount than the stored total; the
	// reported amount wins.
	err := service.ConfirmPayment(context.Background(), "PT-abc-def-1770000000", decimal.RequireFromString("700.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paidID != reservationID {
		t.Errorf("expected reservation %s marked paid, got %s", reservationID, paidID)
	}
	if paidAmount.StringFixed(2) != "700.00" {
		t.Errorf("expected recorded amount 700.00, got %s", paidAmount.StringFixed(2))
	}
}

func TestConfirmPayment_SecondDeliveryIsNoOp(t *testing.T) {
	markPaidCalled := false

	repo := newTestRepository()
	repo.Reservation = &mockReservationRepo{
		findByCodeFunc: func(ctx context.Context, code string) (*entity.Reservation, error) {
			return &entity.Reservation{
				BaseSimple:    entity.BaseSimple{ID: uuid.New()},
				Code:          code,
				PaymentStatus: entity.PaymentStatusPaid,
				TotalAmount:   decimal.RequireFromString("700.00"),
			}, nil
		},
		markPaidFunc: func(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error) {
			markPaidCalled = true
			return false, nil
		},
	}

	service := NewPaymentService(repo, zap.NewNop())

	err := service.ConfirmPayment(context.Background(), "PT-abc-def-1770000000", decimal.RequireFromString("700.00"))
	if err != nil {
		t.Fatalf("redelivered confirmation must be acknowledged, got %v", err)
	}
	if markPaidCalled {
		t.Error("settled reservation must not be updated again")
	}
}

func TestConfirmPayment_UnknownCodeIgnored(t *testing.T) {
	repo := newTestRepository()
	repo.Reservation = &mockReservationRepo{
		findByCodeFunc: func(ctx context.Context, code string) (*entity.Reservation, error) {
			return nil, nil
		},
	}

	service := NewPaymentService(repo, zap.NewNop())

	err := service.ConfirmPayment(context.Background(), "PT-nope", decimal.RequireFromString("100.00"))
	if err != nil {
		t.Fatalf("unknown code must be acknowledged, got %v", err)
	}
}

func TestConfirmPayment_ConcurrentDeliveryRace(t *testing.T) {
	repo := newTestRepository()
	repo.Reservation = &mockReservationRepo{
		findByCodeFunc: func(ctx context.Context, code string) (*entity.Reservation, error) {
			return &entity.Reservation{
				BaseSimple:    entity.BaseSimple{ID: uuid.New()},
				Code:          code,
				PaymentStatus: entity.PaymentStatusPending,
			}, nil
		},
		// Another delivery settled the row between the read and the
		// update; the compare-and-set matches nothing.
		markPaidFunc: func(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error) {
			return false, nil
		},
	}

	service := NewPaymentService(repo, zap.NewNop())

	err := service.ConfirmPayment(context.Background(), "PT-abc-def-1770000000", decimal.RequireFromString("700.00"))
	if err != nil {
		t.Fatalf("raced confirmation must be acknowledged, got %v", err)
	}
}

func TestConfirmPayment_StorageErrorPropagates(t *testing.T) {
	repo := newTestRepository()
	repo.Reservation = &mockReservationRepo{
		findByCodeFunc: func(ctx context.Context, code string) (*entity.Reservation, error) {
			return nil, errors.New("connection reset")
		},
	}

	service := NewPaymentService(repo, zap.NewNop())

	err := service.ConfirmPayment(context.Background(), "PT-abc", decimal.RequireFromString("100.00"))
	if err == nil {
		t.Fatal("storage failure must propagate so the provider retries")
	}
}
