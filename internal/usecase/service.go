package usecase

import (
	"bus-booking/internal/data/repository"
	"bus-booking/internal/payment"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog      CatalogService
	Availability AvailabilityService
	Hold         HoldService
	Reservation  ReservationService
	Payment      PaymentService
}

func NewService(repo *repository.Repository, gateway payment.Gateway, config *utils.Config, clock utils.Clock, log *zap.Logger) *Service {
	return &Service{
		Catalog:      NewCatalogService(repo, log),
		Availability: NewAvailabilityService(repo, clock, log),
		Hold:         NewHoldService(repo, config, clock, log),
		Reservation:  NewReservationService(repo, gateway, config, clock, log),
		Payment:      NewPaymentService(repo, log),
	}
}
