package dto

import "time"

type PaymentIntentInput struct {
	NumberOfNights int `json:"numberOfNights" validate:"gte=1"`
}

type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	TotalCost       float64 `json:"totalCost"`
}

// BookingInput confirms a paid stay
type BookingInput struct {
	PaymentIntentID string    `json:"paymentIntentId" validate:"required"`
	FirstName       string    `json:"firstName" validate:"required"`
	LastName        string    `json:"lastName" validate:"required"`
	Email           string    `json:"email" validate:"required,email"`
	AdultCount      int       `json:"adultCount" validate:"gte=1"`
	ChildCount      int       `json:"childCount" validate:"gte=0"`
	CheckIn         time.Time `json:"checkIn" validate:"required"`
	CheckOut        time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
}
