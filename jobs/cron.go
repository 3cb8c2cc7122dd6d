package jobs

import (
	"context"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"

	"github.com/robfig/cron/v3"
)

const (
	DailyRevenueSpec    = "0 0 * * *"
	PendingReminderSpec = "@hourly"
	jobTimeout          = time.Minute
)

// Reporter is what the scheduled jobs run
type Reporter interface {
	ReportDailyRevenue(ctx context.Context) (*models.RevenueSummary, error)
	RemindPending(ctx context.Context) (int, error)
}

// InitCronJobs registers the revenue report and the pending reminder on c
// and starts it
func InitCronJobs(c *cron.Cron, r Reporter, log logger.Logger) error {
	if _, err := c.AddFunc(DailyRevenueSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		log.Info("running daily revenue report at %v", time.Now())
		r.ReportDailyRevenue(ctx)
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc(PendingReminderSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if n, err := r.RemindPending(ctx); err == nil && n > 0 {
			log.Info("reminded admins of %d pending hotels", n)
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
