package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporter struct{}

func (fakeReporter) ReportDailyRevenue(context.Context) (*models.RevenueSummary, error) {
	return &models.RevenueSummary{}, nil
}

func (fakeReporter) RemindPending(context.Context) (int, error) { return 0, nil }

func TestInitCronJobs_Schedules(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, fakeReporter{}, logger.Nop{}))
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 2)

	afternoon := time.Date(2026, 3, 10, 13, 30, 0, 0, time.Local)
	next := []time.Time{entries[0].Schedule.Next(afternoon), entries[1].Schedule.Next(afternoon)}
	assert.Contains(t, next, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local))
	assert.Contains(t, next, time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local))
}
