package entity

type Route struct {
	Base
	Origin      string `db:"origin"`
	Destination string `db:"destination"`
	DurationMin *int   `db:"duration_min"`
}
