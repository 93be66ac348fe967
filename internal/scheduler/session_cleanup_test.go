package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamaC336/bay2/internal/config"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpiredSessions() int {
	return int(p.calls.Add(1))
}

func newConfig(cron string, enabled bool) *config.Config {
	return &config.Config{SessionCleanup: config.SessionCleanup{CronSchedule: cron, Enabled: enabled}}
}

func TestSessionCleanupRunNow(t *testing.T) {
	purger := &countingPurger{}
	service := NewSessionCleanupService(purger, newConfig("*/15 * * * *", true))

	service.RunNow()
	service.RunNow()

	lastRun, removed := service.Status()
	assert.Equal(t, 2, removed)
	assert.False(t, lastRun.IsZero())
}

func TestSessionCleanupDisabled(t *testing.T) {
	service := NewSessionCleanupService(&countingPurger{}, newConfig("*/15 * * * *", false))

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.IsRunning())
}

func TestSessionCleanupInvalidCron(t *testing.T) {
	service := NewSessionCleanupService(&countingPurger{}, newConfig("isso não é cron", true))

	assert.Error(t, service.Start(context.Background()))
}

func TestSessionCleanupStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	service := NewSessionCleanupService(&countingPurger{}, newConfig("0 3 * * *", true))

	require.NoError(t, service.Start(ctx))
	assert.True(t, service.IsRunning())

	cancel()

	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}
