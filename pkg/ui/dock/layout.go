package dock

import (
	"math"
	"time"

	"github.com/odvcencio/dockyard/pkg/logging"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

const (
	defaultHeaderHeight = 1
	defaultMinPartSize  = 3
)

// LayoutHooks let the container observe layout activity without the
// layout knowing about telemetry or metrics.
type LayoutHooks struct {
	OnLayoutPass       func()
	OnAnimationStarted func(p *Part, collapsing bool)
	OnAnimationFrame   func(p *Part, collapsing bool)
	OnAnimationEnded   func(p *Part, collapsing bool)
}

// Layout is the linear-layout strategy over the ordered part sequence.
// It computes proportional sizes from weights, pins collapsed and
// hidden parts, and drives time-based collapse/expand animations
// against the split primitive. It is the sole writer of each part's
// uncollapsedSize and animatedSize.
type Layout struct {
	split       *runtime.Split
	parts       []*Part
	orientation runtime.Orientation

	headerHeight int
	spacing      int
	minPartSize  int

	attached bool
	size     int // container extent on the main axis

	animDuration time.Duration
	animDisabled bool
	animations   map[*Part]*animation
	now          func() time.Time

	gate   *Gate
	hooks  LayoutHooks
	logger *logging.Logger
}

// LayoutConfig tunes a layout's geometry and animation.
type LayoutConfig struct {
	HeaderHeight      int
	Spacing           int
	MinPartSize       int
	AnimationDuration time.Duration
	AnimationDisabled bool
	Logger            *logging.Logger
}

// NewLayout creates a layout over the given split.
func NewLayout(split *runtime.Split, cfg LayoutConfig) *Layout {
	if cfg.HeaderHeight <= 0 {
		cfg.HeaderHeight = defaultHeaderHeight
	}
	if cfg.MinPartSize <= 0 {
		cfg.MinPartSize = defaultMinPartSize
	}
	if cfg.Spacing < 0 {
		cfg.Spacing = 0
	}
	split.SetSpacing(cfg.Spacing)
	return &Layout{
		split:        split,
		orientation:  split.Orientation(),
		headerHeight: cfg.HeaderHeight,
		spacing:      cfg.Spacing,
		minPartSize:  cfg.MinPartSize,
		animDuration: cfg.AnimationDuration,
		animDisabled: cfg.AnimationDisabled,
		animations:   make(map[*Part]*animation),
		now:          time.Now,
		gate:         NewGate(),
		logger:       cfg.Logger,
	}
}

// Orientation returns the layout's main axis.
func (l *Layout) Orientation() runtime.Orientation {
	return l.orientation
}

// Parts returns the ordered part sequence, hidden parts included.
func (l *Layout) Parts() []*Part {
	return l.parts
}

// Len returns the number of parts.
func (l *Layout) Len() int {
	return len(l.parts)
}

// IndexOf returns the position of the part with the given id, -1 when
// untracked.
func (l *Layout) IndexOf(id string) int {
	for i, p := range l.parts {
		if p.id == id {
			return i
		}
	}
	return -1
}

// Gate returns the one-shot attach gate.
func (l *Layout) Gate() *Gate {
	return l.gate
}

// insert places a part at index, mirroring it into the split.
func (l *Layout) insert(p *Part, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(l.parts) {
		index = len(l.parts)
	}
	p.layout = l
	l.parts = append(l.parts, nil)
	copy(l.parts[index+1:], l.parts[index:])
	l.parts[index] = p
	l.split.InsertAt(index, &runtime.SplitItem{Widget: p, Hidden: p.hidden})
	l.refit()
}

// remove drops a part, cancelling any animation it carries.
func (l *Layout) remove(p *Part) bool {
	idx := l.indexOf(p)
	if idx < 0 {
		return false
	}
	l.cancelAnimation(p)
	l.parts = append(l.parts[:idx], l.parts[idx+1:]...)
	l.split.Remove(idx)
	p.layout = nil
	l.refit()
	return true
}

// move relocates the part at from so it ends up at index to.
func (l *Layout) move(from, to int) bool {
	if from < 0 || from >= len(l.parts) || to < 0 || to >= len(l.parts) || from == to {
		return false
	}
	p := l.parts[from]
	l.parts = append(l.parts[:from], l.parts[from+1:]...)
	l.parts = append(l.parts, nil)
	copy(l.parts[to+1:], l.parts[to:])
	l.parts[to] = p
	l.split.Move(from, to)
	l.refit()
	return true
}

func (l *Layout) indexOf(p *Part) int {
	for i, q := range l.parts {
		if q == p {
			return i
		}
	}
	return -1
}

// attach marks the layout live with the given main-axis extent. On a
// horizontal mount every collapsed flag is forced off.
func (l *Layout) attach(size int) {
	l.attached = true
	l.size = size
	if l.orientation == runtime.Horizontal {
		for _, p := range l.parts {
			if p.collapsed {
				p.collapsed = false
				p.collapseChanged.Emit(false)
			}
		}
	}
	l.logger.Debug(logging.CategoryLayout, "attached", "layout attached", map[string]any{
		"size":        size,
		"orientation": l.orientation.String(),
		"parts":       len(l.parts),
	})
}

// setSize records a new container extent, idempotently.
func (l *Layout) setSize(size int) {
	if size < 0 {
		size = 0
	}
	l.size = size
}

func (l *Layout) headerExtent() int {
	if l.orientation == runtime.Vertical {
		return l.headerHeight
	}
	return 0
}

func (l *Layout) visibleCount() int {
	n := 0
	for _, p := range l.parts {
		if !p.hidden {
			n++
		}
	}
	return n
}

// availableSize returns the container extent minus one header per
// visible part (vertical only) and inter-part spacing, clamped to 0.
func (l *Layout) availableSize() int {
	if !l.attached {
		return 0
	}
	visible := l.visibleCount()
	if visible == 0 {
		return 0
	}
	avail := l.size - visible*l.headerExtent() - l.spacing*(visible-1)
	if avail < 0 {
		avail = 0
	}
	return avail
}

// soleExpandedVisible reports whether p is the only part that is both
// visible and expanded.
func (l *Layout) soleExpandedVisible(p *Part) bool {
	for _, q := range l.parts {
		if q == p || q.hidden || q.collapsed {
			continue
		}
		return false
	}
	return true
}

// partExtent returns the current laid-out extent of the part at index.
func (l *Layout) partExtent(index int) int {
	b := l.split.ItemBounds(index)
	if l.orientation == runtime.Vertical {
		return b.Height
	}
	return b.Width
}

// SetPartSizes distributes available space proportionally by weight.
// Visible expanded parts without a weight receive the average weight;
// with no weighted part or no space this is a silent no-op. Collapsed
// parts do not advance the accumulated position, but remember their
// weight-implied extent for later expansion.
func (l *Layout) SetPartSizes() {
	avail := l.availableSize()
	if avail <= 0 {
		return
	}

	total := 0.0
	counted := 0
	for _, p := range l.parts {
		if p.hidden || p.collapsed || !p.hasWeight {
			continue
		}
		total += p.weight
		counted++
	}
	if counted == 0 {
		return
	}
	avg := total / float64(counted)
	for _, p := range l.parts {
		if p.hidden || p.collapsed || p.hasWeight {
			continue
		}
		total += avg
	}
	if total <= 0 {
		return
	}

	// Constraints must be current before handle positions are applied,
	// or stale pins would clamp the new sizes.
	l.applyConstraints()

	he := l.headerExtent()
	visible := l.visibleCount()
	pos := 0
	vi := 0
	for i, p := range l.parts {
		if p.hidden {
			continue
		}
		pos += he
		w := avg
		if p.hasWeight {
			w = p.weight
		}
		size := int(math.Round(w / total * float64(avail)))
		if p.collapsed {
			p.uncollapsedSize = he + size
			l.split.SetHandlePosition(i, pos)
		} else {
			if m := p.minContentSize(); size < m {
				size = m
			}
			pos += size
			l.split.SetHandlePosition(i, pos)
		}
		vi++
		if vi < visible {
			pos += l.spacing
		}
	}

	l.logger.Debug(logging.CategoryLayout, "part_sizes_applied", "proportional sizes applied", map[string]any{
		"available": avail,
		"weight":    total,
	})
	l.refit()
}

// applyConstraints pins each split item per the part's state:
// mid-animation items are pinned to header+animatedSize, collapsed
// items to exactly the header, expanded items get a minimum only.
func (l *Layout) applyConstraints() {
	he := l.headerExtent()
	for i, p := range l.parts {
		if item := l.split.ItemAt(i); item != nil {
			item.Hidden = p.hidden
		}
		switch {
		case p.animatedSize >= 0:
			l.split.SetItemConstraints(i, he+p.animatedSize, he+p.animatedSize)
		case p.collapsed:
			l.split.SetItemConstraints(i, he, he)
		default:
			l.split.SetItemConstraints(i, he+p.minContentSize(), 0)
		}
	}
}

// refit reapplies constraints and, when attached, reruns the split
// layout in place.
func (l *Layout) refit() {
	l.applyConstraints()
	if !l.attached {
		return
	}
	if b := l.split.Bounds(); b.Width > 0 || b.Height > 0 {
		l.split.Layout(b)
	}
	if l.hooks.OnLayoutPass != nil {
		l.hooks.OnLayoutPass()
	}
}

func (l *Layout) animationsEnabled() bool {
	return l.attached && !l.animDisabled && l.animDuration > 0
}

// updateCollapsed reacts to a part's collapsed flip: snapshot the
// rendered extent when collapsing next to other expanded parts, then
// either re-fit directly or start a cancellable animation toward the
// target extent.
func (l *Layout) updateCollapsed(p *Part) {
	idx := l.indexOf(p)
	if idx < 0 {
		return
	}
	collapsing := p.collapsed
	current := l.partExtent(idx)
	he := l.headerExtent()

	if collapsing && !l.soleExpandedVisible(p) && current > 0 {
		p.uncollapsedSize = current
	}

	if !l.animationsEnabled() {
		p.animatedSize = -1
		delete(l.animations, p)
		l.refit()
		return
	}

	var target int
	if collapsing {
		target = max(0, current-he)
	} else if l.soleExpandedVisible(p) {
		// The only expanded part stretches to everything available,
		// not its stale remembered size.
		target = l.availableSize()
	} else {
		target = p.minContentSize()
		if p.uncollapsedSize >= 0 {
			if t := p.uncollapsedSize - he; t > target {
				target = t
			}
		}
	}

	from, to := target, 0
	if !collapsing {
		from, to = 0, target
	}
	if prev, ok := l.animations[p]; ok {
		// Cancel-and-restart: pick up from the in-flight value.
		from, _ = prev.valueAt(l.now())
	}

	l.animations[p] = &animation{
		part:       p,
		collapsing: collapsing,
		from:       from,
		to:         to,
		startedAt:  l.now(),
		duration:   l.animDuration,
	}
	p.animatedSize = from
	if l.hooks.OnAnimationStarted != nil {
		l.hooks.OnAnimationStarted(p, collapsing)
	}
	l.logger.Debug(logging.CategoryLayout, "animation_started", "collapse animation started", map[string]any{
		"part":       p.partID,
		"collapsing": collapsing,
		"from":       from,
		"to":         to,
	})
	l.refit()
}

// step advances all in-flight animations to now. Returns true when any
// animation produced a frame.
func (l *Layout) step(now time.Time) bool {
	if len(l.animations) == 0 {
		return false
	}
	stepped := false
	for _, p := range l.parts {
		anim, ok := l.animations[p]
		if !ok {
			continue
		}
		stepped = true
		value, done := anim.valueAt(now)
		switch {
		case !done:
			p.animatedSize = value
			if l.hooks.OnAnimationFrame != nil {
				l.hooks.OnAnimationFrame(p, anim.collapsing)
			}
		case anim.collapsing:
			p.animatedSize = -1
			delete(l.animations, p)
			l.finishAnimation(p, anim)
		case !anim.pinned:
			// Hold the final expanded value for one frame so the last
			// interpolated fit lands before constraints relax.
			anim.pinned = true
			p.animatedSize = anim.to
		default:
			p.animatedSize = -1
			delete(l.animations, p)
			l.finishAnimation(p, anim)
		}
	}
	if stepped {
		l.refit()
	}
	return stepped
}

func (l *Layout) finishAnimation(p *Part, anim *animation) {
	if l.hooks.OnAnimationEnded != nil {
		l.hooks.OnAnimationEnded(p, anim.collapsing)
	}
	l.logger.Debug(logging.CategoryLayout, "animation_ended", "collapse animation ended", map[string]any{
		"part":       p.partID,
		"collapsing": anim.collapsing,
	})
}

// snapshotExtent remembers the part's current laid-out extent so it can
// be restored after a hide/show or collapse/expand cycle.
func (l *Layout) snapshotExtent(p *Part) {
	idx := l.indexOf(p)
	if idx < 0 {
		return
	}
	if extent := l.partExtent(idx); extent > 0 {
		p.uncollapsedSize = extent
	}
}

// cancelAnimation drops any in-flight animation for p, clearing its
// animated size. Used on removal and disposal.
func (l *Layout) cancelAnimation(p *Part) {
	if _, ok := l.animations[p]; ok {
		delete(l.animations, p)
		p.animatedSize = -1
	}
}

// Animating reports whether any animation is in flight.
func (l *Layout) Animating() bool {
	return len(l.animations) > 0
}
