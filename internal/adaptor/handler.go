package adaptor

import (
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog     *CatalogHandler
	Seat        *SeatHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Seat:        NewSeatHandler(service.Availability, service.Hold, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Payment:     NewPaymentHandler(service.Payment, config, log),
	}
}
