package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
)

// SessionJanitor periodically removes expired sessions from a store that
// cannot expire them by itself.
type SessionJanitor struct {
	purger   store.ExpiredSessionsPurger
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionJanitor(purger store.ExpiredSessionsPurger, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// sweep runs one purge. Failures are logged and retried on the next tick.
func (j *SessionJanitor) sweep(ctx context.Context) int {
	purged, err := j.purger.PurgeExpired(ctx, j.now())
	if err != nil {
		j.logger.Err(err).Msg("error purging expired sessions")
		return 0
	}

	if purged > 0 {
		j.logger.Debug().Int("purged", purged).Msg("expired sessions purged")
	}
	return purged
}
