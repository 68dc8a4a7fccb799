package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var janitorNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestJanitor(t *testing.T, interval time.Duration) (*SessionJanitor, *mock.MockExpiredSessionsPurger) {
	t.Helper()

	purger := mock.NewMockExpiredSessionsPurger(gomock.NewController(t))
	j := NewSessionJanitor(purger, interval, logger.Nop())
	j.now = func() time.Time { return janitorNow }
	return j, purger
}

func TestSessionJanitor_Sweep(t *testing.T) {
	tests := []struct {
		name   string
		purged int
		err    error
		want   int
	}{
		{name: "purges expired sessions", purged: 3, want: 3},
		{name: "nothing to purge", purged: 0, want: 0},
		{name: "store failure is swallowed", err: errors.New("boom"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, purger := newTestJanitor(t, time.Minute)
			purger.EXPECT().PurgeExpired(gomock.Any(), janitorNow).Return(tt.purged, tt.err)

			assert.Equal(t, tt.want, j.sweep(context.Background()))
		})
	}
}

func TestSessionJanitor_RunSweepsOnEveryTickUntilCancelled(t *testing.T) {
	j, purger := newTestJanitor(t, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 16)
	purger.EXPECT().PurgeExpired(gomock.Any(), janitorNow).
		DoAndReturn(func(context.Context, time.Time) (int, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 1, nil
		}).MinTimes(2)

	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("janitor did not sweep")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitor_RunReturnsWhenAlreadyCancelled(t *testing.T) {
	j, purger := newTestJanitor(t, time.Hour)
	purger.EXPECT().PurgeExpired(gomock.Any(), gomock.Any()).Return(0, nil).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	j.Run(ctx)
}
