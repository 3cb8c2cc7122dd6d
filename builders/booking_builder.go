package builders

import (
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"github.com/google/uuid"
)

// BookingBuilder assembles a confirmed stay step by step
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{ID: uuid.NewString()},
	}
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithGuestInfo stores the guest name and a lowercased email
func (b *BookingBuilder) WithGuestInfo(firstName, lastName, email string) *BookingBuilder {
	b.booking.FirstName = firstName
	b.booking.LastName = lastName
	b.booking.Email = strings.ToLower(strings.TrimSpace(email))
	return b
}

func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.booking.AdultCount = adults
	b.booking.ChildCount = children
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckIn = checkIn.UTC()
	b.booking.CheckOut = checkOut.UTC()
	return b
}

// WithPayment records the intent and converts its minor-unit amount
func (b *BookingBuilder) WithPayment(intentID string, amountMinor int64) *BookingBuilder {
	b.booking.PaymentIntentID = intentID
	b.booking.TotalCost = float64(amountMinor) / 100
	return b
}

func (b *BookingBuilder) CreatedAt(t time.Time) *BookingBuilder {
	b.booking.CreatedAt = t.UTC()
	return b
}

// Build issues the ticket number and returns the booking
func (b *BookingBuilder) Build() models.Booking {
	if b.booking.TicketNumber == "" {
		b.booking.TicketNumber = TicketNumber()
	}
	return *b.booking
}

// TicketNumber is ten uppercase hex characters
func TicketNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
