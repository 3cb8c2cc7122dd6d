package services

import (
	"context"
	"fmt"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"
)

// RevenueSource computes the platform revenue of the previous day
type RevenueSource interface {
	Yesterday(ctx context.Context) (*models.RevenueSummary, error)
}

// AdminReporter pushes periodic summaries to connected admin sockets
type AdminReporter struct {
	revenue RevenueSource
	hotels  repository.HotelRepository
	push    notification.Service
	logger  logger.Logger
}

func NewAdminReporter(revenue RevenueSource, hotels repository.HotelRepository, push notification.Service, log logger.Logger) *AdminReporter {
	if log == nil {
		log = logger.Nop{}
	}
	return &AdminReporter{revenue: revenue, hotels: hotels, push: push, logger: log}
}

// ReportDailyRevenue sends yesterday's totals to every admin
func (r *AdminReporter) ReportDailyRevenue(ctx context.Context) (*models.RevenueSummary, error) {
	summary, err := r.revenue.Yesterday(ctx)
	if err != nil {
		r.logger.Error("daily revenue: %v", err)
		return nil, err
	}
	r.logger.Info("revenue %s: %d transactions, %.2f total, %.2f commission",
		summary.From.Format("2006-01-02"), summary.Count, summary.TotalAmount, summary.TotalCommission)

	if err := r.push.SendToAdmins(notification.Event{Type: notification.EventDailyRevenue, Data: summary}); err != nil {
		r.logger.Error("push daily revenue: %v", err)
	}
	return summary, nil
}

// RemindPending tells the admins how many listings still wait for review.
// Nothing is sent when the queue is empty.
func (r *AdminReporter) RemindPending(ctx context.Context) (int, error) {
	pending, err := r.hotels.ListByStatus(ctx, models.HotelStatusPending)
	if err != nil {
		r.logger.Error("pending reminder: %v", err)
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	event := notification.Event{
		Type: notification.EventPendingReminder,
		Data: map[string]interface{}{
			"count":   len(pending),
			"message": fmt.Sprintf("%d hotel(s) are waiting for approval", len(pending)),
		},
	}
	if err := r.push.SendToAdmins(event); err != nil {
		r.logger.Error("push pending reminder: %v", err)
	}
	return len(pending), nil
}
