package dock

import (
	"math"
	"time"
)

// animation is one in-flight collapse or expand transition. Flipping
// the same part again cancels the current animation and restarts from
// its current value, so frames from a stale animation never overwrite
// a newer one.
type animation struct {
	part       *Part
	collapsing bool
	from, to   int // content extents
	startedAt  time.Time
	duration   time.Duration

	// Expanding holds the final value for one extra frame before the
	// animated size is cleared and a last re-fit runs.
	pinned bool
}

// eased maps linear progress to a cosine ease-in-out curve.
func eased(t float64) float64 {
	return 0.5 * (1 - math.Cos(math.Pi*t))
}

// valueAt returns the interpolated content extent at now, and whether
// the transition has reached its target.
func (a *animation) valueAt(now time.Time) (int, bool) {
	if a.duration <= 0 {
		return a.to, true
	}
	t := float64(now.Sub(a.startedAt)) / float64(a.duration)
	if t >= 1 {
		return a.to, true
	}
	if t < 0 {
		t = 0
	}
	value := float64(a.from) + float64(a.to-a.from)*eased(t)
	return int(math.Round(value)), false
}
