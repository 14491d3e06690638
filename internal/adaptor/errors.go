package adaptor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bus-booking/internal/data/repository"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses; shared by
// all handlers.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	if conflict, ok := repository.AsSeatConflict(err); ok {
		log.Warn(operation+" failed - seat conflict",
			zap.String("kind", string(conflict.Kind)),
			zap.Ints("seats", conflict.Seats),
			zap.String("operation", operation))
		utils.ResponseConflict(w, conflict.Error(), map[string]any{
			"kind":  conflict.Kind,
			"seats": conflict.Seats,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, context.DeadlineExceeded):
		log.Error(operation+" timed out",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, "Request timed out, please retry")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
