package models

import "time"

type Transaction struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"bookingId"`
	HotelID          string    `json:"hotelId"`
	UserID           string    `json:"userId"`
	Amount           float64   `json:"amount"`
	CommissionAmount float64   `json:"commissionAmount"`
	HotelOwnerAmount float64   `json:"hotelOwnerAmount"`
	Type             string    `json:"type"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RevenueSummary aggregates transactions over a period
type RevenueSummary struct {
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	Count            int       `json:"count"`
	TotalAmount      float64   `json:"totalAmount"`
	TotalCommission  float64   `json:"totalCommission"`
	TotalOwnerAmount float64   `json:"totalOwnerAmount"`
}
