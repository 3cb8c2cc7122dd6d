package models

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	HotelID   string    `json:"hotelId"`
	AdminID   string    `json:"adminId"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
