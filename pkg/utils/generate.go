package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== RESERVATION CODE ====================

// GenerateReservationCode builds the public ticket code. Composed from the
// departure id, the purchaser id and the creation instant, so the same pair
// can book again later without colliding.
// Format: PT-<departure8>-<customer8>-<unix>
func GenerateReservationCode(departureID, customerID uuid.UUID, at time.Time) string {
	depPart := shortID(departureID)
	custPart := shortID(customerID)

	return fmt.Sprintf("PT-%s-%s-%d", depPart, custPart, at.UTC().Unix())
}

// shortID takes the first hex group of the UUID
func shortID(id uuid.UUID) string {
	s := id.String()
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
