package builders

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilder(t *testing.T) {
	in := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("EAT", 3*3600))
	out := in.AddDate(0, 0, 3)

	b := NewBookingBuilder().
		WithUser("user-1").
		WithGuestInfo("Abebe", "Kebede", " Abebe@Example.COM ").
		WithGuests(2, 1).
		WithStay(in, out).
		WithPayment("pi_1", 30050).
		CreatedAt(in).
		Build()

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "abebe@example.com", b.Email)
	assert.Equal(t, 2, b.AdultCount)
	assert.Equal(t, 1, b.ChildCount)
	assert.Equal(t, time.UTC, b.CheckIn.Location())
	assert.True(t, b.CheckOut.Equal(out))
	assert.Equal(t, "pi_1", b.PaymentIntentID)
	assert.InDelta(t, 300.50, b.TotalCost, 1e-9)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{10}$`), b.TicketNumber)
}

func TestBookingBuilder_DistinctIDs(t *testing.T) {
	a := NewBookingBuilder().Build()
	b := NewBookingBuilder().Build()
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.TicketNumber, b.TicketNumber)
}
