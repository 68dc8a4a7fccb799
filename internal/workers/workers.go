package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers the configured storages need. A session
// janitor is added only when the session store has no native expiry.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if purger, ok := storages.SessionStore.(store.ExpiredSessionsPurger); ok && cfg.SessionCleanupInterval > 0 {
		w.workers = append(w.workers, NewSessionJanitor(purger, cfg.SessionCleanupInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
