package database

import (
	"context"
	"fmt"
)

// Schema statements, applied in order at startup. The unique index on
// seat_holds(departure_id, seat_number) is the mutual-exclusion primitive
// for the hold flow; application-level checks alone are racy.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS routes (
		id UUID PRIMARY KEY,
		origin VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		duration_min INT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS departures (
		id UUID PRIMARY KEY,
		route_id UUID NOT NULL REFERENCES routes(id),
		departs_at TIMESTAMPTZ NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		capacity INT NOT NULL CHECK (capacity > 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL UNIQUE,
		email VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		code VARCHAR(50) NOT NULL UNIQUE,
		departure_id UUID NOT NULL REFERENCES departures(id) ON DELETE RESTRICT,
		customer_id UUID NOT NULL REFERENCES customers(id),
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		total_amount NUMERIC(10,2) NOT NULL,
		payment_session_id VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seat_assignments (
		id UUID PRIMARY KEY,
		reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		seat_number INT NOT NULL CHECK (seat_number > 0),
		passenger_name VARCHAR(100) NOT NULL,
		passenger_phone VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seat_holds (
		id UUID PRIMARY KEY,
		departure_id UUID NOT NULL REFERENCES departures(id) ON DELETE CASCADE,
		seat_number INT NOT NULL CHECK (seat_number > 0),
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT seat_holds_departure_seat_key UNIQUE (departure_id, seat_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_session ON reservations(payment_session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_seat_assignments_reservation ON seat_assignments(reservation_id)`,
	`CREATE INDEX IF NOT EXISTS idx_departures_route ON departures(route_id, departs_at)`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func InitSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
