package usecase

import (
	"context"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/payment"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// stubDB satisfies database.PgxIface for service tests. Begin hands out
// a no-op transaction; every query goes through the mock repositories,
// so the embedded interface methods are never reached.
type stubDB struct {
	database.PgxIface
}

func (stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct {
	pgx.Tx
}

func (stubTx) Commit(ctx context.Context) error   { return nil }
func (stubTx) Rollback(ctx context.Context) error { return nil }

// newTestRepository builds a Repository whose WithTx works against the
// stub transaction; callers swap in mocks for the repos they exercise.
func newTestRepository() *repository.Repository {
	repo := repository.NewRepository(stubDB{}, zap.NewNop())
	repo.Route = &mockRouteRepo{}
	repo.Departure = &mockDepartureRepo{}
	repo.Customer = &mockCustomerRepo{}
	repo.Reservation = &mockReservationRepo{}
	repo.SeatAssignment = &mockSeatAssignmentRepo{}
	repo.SeatHold = &mockSeatHoldRepo{}
	return repo
}

// fixedClock pins time for expiry assertions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// ==================== REPOSITORY MOCKS ====================

type mockRouteRepo struct {
	findAllFunc  func(ctx context.Context) ([]*entity.Route, error)
	findByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Route, error)
}

func (m *mockRouteRepo) FindAll(ctx context.Context) ([]*entity.Route, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockDepartureRepo struct {
	findByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.Departure, error)
	findByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*entity.Departure, error)
	findByRouteFunc       func(ctx context.Context, routeID uuid.UUID, from, to time.Time) ([]*entity.Departure, error)
}

func (m *mockDepartureRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Departure, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartureRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Departure, error) {
	if m.findByIDForUpdateFunc != nil {
		return m.findByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartureRepo) FindByRouteAndWindow(ctx context.Context, routeID uuid.UUID, from, to time.Time) ([]*entity.Departure, error) {
	if m.findByRouteFunc != nil {
		return m.findByRouteFunc(ctx, routeID, from, to)
	}
	return nil, nil
}

type mockCustomerRepo struct {
	createFunc      func(ctx context.Context, customer *entity.Customer) error
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	findByPhoneFunc func(ctx context.Context, phone string) (*entity.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepo) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	if m.findByPhoneFunc != nil {
		return m.findByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

type mockReservationRepo struct {
	createFunc               func(ctx context.Context, reservation *entity.Reservation) error
	findByCodeFunc           func(ctx context.Context, code string) (*entity.Reservation, error)
	findBySessionIDFunc      func(ctx context.Context, sessionID string) (*entity.Reservation, error)
	updatePaymentSessionFunc func(ctx context.Context, id uuid.UUID, sessionID string) error
	markPaidFunc             func(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reservation)
	}
	return nil
}

func (m *mockReservationRepo) FindByCode(ctx context.Context, code string) (*entity.Reservation, error) {
	if m.findByCodeFunc != nil {
		return m.findByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockReservationRepo) FindBySessionID(ctx context.Context, sessionID string) (*entity.Reservation, error) {
	if m.findBySessionIDFunc != nil {
		return m.findBySessionIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockReservationRepo) UpdatePaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	if m.updatePaymentSessionFunc != nil {
		return m.updatePaymentSessionFunc(ctx, id, sessionID)
	}
	return nil
}

func (m *mockReservationRepo) MarkPaid(ctx context.Context, id uuid.UUID, amountPaid decimal.Decimal) (bool, error) {
	if m.markPaidFunc != nil {
		return m.markPaidFunc(ctx, id, amountPaid)
	}
	return true, nil
}

type mockSeatAssignmentRepo struct {
	createBatchFunc         func(ctx context.Context, assignments []*entity.SeatAssignment) error
	findByReservationIDFunc func(ctx context.Context, reservationID uuid.UUID) ([]*entity.SeatAssignment, error)
	findBookedSeatsFunc     func(ctx context.Context, departureID uuid.UUID) ([]int, error)
}

func (m *mockSeatAssignmentRepo) CreateBatch(ctx context.Context, assignments []*entity.SeatAssignment) error {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, assignments)
	}
	return nil
}

func (m *mockSeatAssignmentRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.SeatAssignment, error) {
	if m.findByReservationIDFunc != nil {
		return m.findByReservationIDFunc(ctx, reservationID)
	}
	return nil, nil
}

func (m *mockSeatAssignmentRepo) FindBookedSeats(ctx context.Context, departureID uuid.UUID) ([]int, error) {
	if m.findBookedSeatsFunc != nil {
		return m.findBookedSeatsFunc(ctx, departureID)
	}
	return nil, nil
}

type mockSeatHoldRepo struct {
	createBatchFunc   func(ctx context.Context, holds []*entity.SeatHold) error
	findLiveSeatsFunc func(ctx context.Context, departureID uuid.UUID, now time.Time) ([]int, error)
	purgeExpiredFunc  func(ctx context.Context, departureID uuid.UUID, now time.Time) error
}

func (m *mockSeatHoldRepo) CreateBatch(ctx context.Context, holds []*entity.SeatHold) error {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, holds)
	}
	return nil
}

func (m *mockSeatHoldRepo) FindLiveSeats(ctx context.Context, departureID uuid.UUID, now time.Time) ([]int, error) {
	if m.findLiveSeatsFunc != nil {
		return m.findLiveSeatsFunc(ctx, departureID, now)
	}
	return nil, nil
}

func (m *mockSeatHoldRepo) PurgeExpired(ctx context.Context, departureID uuid.UUID, now time.Time) error {
	if m.purgeExpiredFunc != nil {
		return m.purgeExpiredFunc(ctx, departureID, now)
	}
	return nil
}

// mockGateway records session requests for the reservation tests.
type mockGateway struct {
	createSessionFunc func(ctx context.Context, in payment.SessionInput) (*payment.Session, error)
	calls             []payment.SessionInput
}

func (m *mockGateway) CreateSession(ctx context.Context, in payment.SessionInput) (*payment.Session, error) {
	m.calls = append(m.calls, in)
	if m.createSessionFunc != nil {
		return m.createSessionFunc(ctx, in)
	}
	return &payment.Session{ID: "sess_test", RedirectURL: "https://pay.example/sess_test"}, nil
}
