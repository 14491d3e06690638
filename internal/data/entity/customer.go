package entity

// Customer is the purchasing party, keyed by phone number. Email is
// optional and never stored as an empty string.
type Customer struct {
	Base
	FullName string  `db:"full_name"`
	Phone    string  `db:"phone"`
	Email    *string `db:"email"`
}
