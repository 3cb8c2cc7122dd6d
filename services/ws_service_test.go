package services

import (
	"context"
	"testing"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminReporter(t *testing.T) {
	store := newTestStore(t)
	push := &fakePush{}
	transactions := NewTransactionService(TransactionServiceOptions{Transactions: store.Transactions, CommissionRate: 0.1})
	reporter := NewAdminReporter(transactions, store.Hotels, push, nil)
	ctx := context.Background()

	n, err := reporter.RemindPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, push.sent)

	require.NoError(t, store.Hotels.Create(ctx, &models.Hotel{UserID: "o", Name: "Grand Inn", Facilities: []string{"Spa"}, PricePerNight: 10, StarRating: 3, Status: models.HotelStatusPending}))
	n, err = reporter.RemindPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, push.sent, 1)
	assert.True(t, push.sent[0].admins)
	assert.Equal(t, notification.EventPendingReminder, push.sent[0].event.Type)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	transactions.now = func() time.Time { return today.Add(-2 * time.Hour) }
	_, err = transactions.Record(ctx, models.Booking{ID: "b1", TotalCost: 100}, &models.Hotel{ID: "h1"}, constants.TransactionPayment)
	require.NoError(t, err)
	transactions.now = time.Now

	summary, err := reporter.ReportDailyRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 10.0, summary.TotalCommission)
	assert.Equal(t, notification.EventDailyRevenue, push.sent[len(push.sent)-1].event.Type)
}
