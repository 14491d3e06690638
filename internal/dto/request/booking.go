package request

type PlaceHoldRequest struct {
	DepartureID string `json:"departure_id" validate:"required,uuid4"`
	Seats       []int  `json:"seats" validate:"required,min=1,dive,min=1"`
}

type PassengerRequest struct {
	Seat  int    `json:"seat" validate:"required,min=1"`
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CreateReservationRequest struct {
	DepartureID string             `json:"departure_id" validate:"required,uuid4"`
	Passengers  []PassengerRequest `json:"passengers" validate:"required,min=1,dive"`
}
