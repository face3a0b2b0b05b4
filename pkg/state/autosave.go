// Package state persists dock layout state in the background. The
// autosaver listens for container changes on the UI goroutine, encodes
// the layout there, and hands the encoded snapshot to its own goroutine
// for throttled writes, so the store never reads live UI state.
package state

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/odvcencio/dockyard/pkg/logging"
	"github.com/odvcencio/dockyard/pkg/telemetry"
	"github.com/odvcencio/dockyard/pkg/ui/dock"
)

const defaultInterval = 2 * time.Second

// Config tunes an Autosaver.
type Config struct {
	// Interval is the minimum time between saves. Bursts of changes
	// (continuous drags, rapid toggles) collapse into one write per
	// interval. Defaults to 2s.
	Interval time.Duration

	Logger *logging.Logger
}

type snapshot struct {
	trigger string
	encoded string
}

// Autosaver persists a container's layout through a store whenever its
// state changes, rate-limited, with a final flush on shutdown.
type Autosaver struct {
	name    string
	store   dock.StateStore
	limiter *rate.Limiter
	logger  *logging.Logger

	// pending holds the latest unsaved snapshot; newer snapshots
	// replace older ones that were never written.
	pending chan snapshot
	unsub   func()
}

// New wires an autosaver to the container's state-changed events.
// Call Run to start saving; the subscription is released when Run
// returns.
func New(container *dock.Container, store dock.StateStore, cfg Config) *Autosaver {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	a := &Autosaver{
		name:    container.Name(),
		store:   store,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  cfg.Logger,
		pending: make(chan snapshot, 1),
	}
	a.unsub = container.OnStateChanged(func(trigger string) {
		encoded, err := container.StoreState().Encode()
		if err != nil {
			a.logger.Warn(logging.CategoryState, "autosave_encode_failed", "layout state not encodable", map[string]any{
				"error": err.Error(),
			})
			return
		}
		a.offer(snapshot{trigger: trigger, encoded: encoded})
	})
	return a
}

// offer replaces any unsaved snapshot with the newer one.
func (a *Autosaver) offer(snap snapshot) {
	for {
		select {
		case a.pending <- snap:
			return
		default:
		}
		select {
		case <-a.pending:
		default:
		}
	}
}

// Run saves pending snapshots until ctx is cancelled, then flushes the
// last unsaved snapshot. Always returns nil after a clean flush.
func (a *Autosaver) Run(ctx context.Context) error {
	defer a.unsub()
	for {
		select {
		case <-ctx.Done():
			a.flush()
			return nil
		case snap := <-a.pending:
			if err := a.limiter.Wait(ctx); err != nil {
				// Shutdown arrived mid-throttle; the snapshot still
				// gets written.
				a.save(snapshot{trigger: "shutdown", encoded: snap.encoded})
				a.flush()
				return nil
			}
			// Prefer anything that arrived while throttled.
			select {
			case newer := <-a.pending:
				snap = newer
			default:
			}
			a.save(snap)
		}
	}
}

func (a *Autosaver) flush() {
	select {
	case snap := <-a.pending:
		a.save(snapshot{trigger: "shutdown", encoded: snap.encoded})
	default:
	}
}

func (a *Autosaver) save(snap snapshot) {
	if err := a.store.SaveState(a.name, snap.encoded); err != nil {
		telemetry.StateSaveErrors.WithLabelValues(a.name).Inc()
		a.logger.Warn(logging.CategoryState, "autosave_failed", "layout state not persisted", map[string]any{
			"trigger": snap.trigger,
			"error":   err.Error(),
		})
		return
	}
	telemetry.StateSaves.WithLabelValues(a.name, snap.trigger).Inc()
	a.logger.Debug(logging.CategoryState, "autosaved", "layout state persisted", map[string]any{
		"trigger": snap.trigger,
	})
}
