package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeatHandler struct {
	availability usecase.AvailabilityService
	hold         usecase.HoldService
	log          *zap.Logger
}

func NewSeatHandler(availability usecase.AvailabilityService, hold usecase.HoldService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		availability: availability,
		hold:         hold,
		log:          log.With(zap.String("handler", "seat")),
	}
}

// GetSeatMap handles GET /api/seats?departure_id= (public)
func (h *SeatHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	departureID := r.URL.Query().Get("departure_id")
	if departureID == "" {
		utils.ResponseBadRequest(w, "departure_id query parameter is required", nil)
		return
	}

	seatMap, err := h.availability.GetSeatMap(r.Context(), departureID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// PlaceHold handles POST /api/holds (public)
func (h *SeatHandler) PlaceHold(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hold, err := h.hold.PlaceHold(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place hold")
		return
	}

	utils.ResponseCreated(w, "success", hold)
}
