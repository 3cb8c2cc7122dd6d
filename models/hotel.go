package models

import (
	"time"
)

type HotelStatus string

// Hotel status constants
const (
	HotelStatusPending  HotelStatus = "Pending"
	HotelStatusApproved HotelStatus = "Approved"
	HotelStatusRejected HotelStatus = "Rejected"
)

func (s HotelStatus) Valid() bool {
	switch s {
	case HotelStatusPending, HotelStatusApproved, HotelStatusRejected:
		return true
	}
	return false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

type Hotel struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Name          string      `json:"name"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	Description   string      `json:"description"`
	Type          string      `json:"type"`
	AdultCount    int         `json:"adultCount"`
	ChildCount    int         `json:"childCount"`
	Facilities    []string    `json:"facilities"`
	PricePerNight float64     `json:"pricePerNight"`
	StarRating    int         `json:"starRating"`
	ImageURLs     []string    `json:"imageUrls"`
	Location      Location    `json:"location"`
	Status        HotelStatus `json:"status"`
	Bookings      []Booking   `json:"bookings"`
	Reviews       []Review    `json:"reviews"`
	AverageRating float64     `json:"averageRating"`
	LastUpdated   time.Time   `json:"lastUpdated"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type Booking struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	AdultCount      int       `json:"adultCount"`
	ChildCount      int       `json:"childCount"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalCost       float64   `json:"totalCost"`
	PaymentIntentID string    `json:"paymentIntentId"`
	TicketNumber    string    `json:"ticketNumber"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Review struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	BookingID         string    `json:"bookingId"`
	StaffRating       int       `json:"staffRating"`
	FacilitiesRating  int       `json:"facilitiesRating"`
	CleanlinessRating int       `json:"cleanlinessRating"`
	ComfortRating     int       `json:"comfortRating"`
	ValueRating       int       `json:"valueForMoneyRating"`
	LocationRating    int       `json:"locationRating"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Score is the mean of the individual ratings of a review
func (r Review) Score() float64 {
	sum := r.StaffRating + r.FacilitiesRating + r.CleanlinessRating + r.ComfortRating + r.ValueRating + r.LocationRating
	return float64(sum) / 6
}

// RecomputeAverageRating refreshes AverageRating from the embedded reviews
func (h *Hotel) RecomputeAverageRating() {
	if len(h.Reviews) == 0 {
		h.AverageRating = 0
		return
	}
	var total float64
	for _, r := range h.Reviews {
		total += r.Score()
	}
	h.AverageRating = total / float64(len(h.Reviews))
}

// BookingsOf returns the bookings placed by userID
func (h *Hotel) BookingsOf(userID string) []Booking {
	var out []Booking
	for _, b := range h.Bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}
