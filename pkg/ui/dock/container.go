package dock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/odvcencio/dockyard/pkg/logging"
	"github.com/odvcencio/dockyard/pkg/telemetry"
	"github.com/odvcencio/dockyard/pkg/ui/command"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// ContainerConfig wires a container to its collaborators. Commands and
// Menus are required for menu integration; everything else is optional.
type ContainerConfig struct {
	// Name is the stable persistence key. Defaults to "dockyard".
	Name        string
	Orientation runtime.Orientation

	Commands  *command.Registry
	Menus     *command.MenuRegistry
	Presenter MenuPresenter
	Telemetry *telemetry.Hub
	Logger    *logging.Logger

	HeaderHeight      int
	Spacing           int
	MinPartSize       int
	AnimationDuration time.Duration
	AnimationDisabled bool
}

// Container owns the ordered part sequence, its layout, per-part
// visibility commands and menu entries, and persisted state. It is a
// runtime.Widget: mount it (directly or inside a Flex) and it drives
// the split underneath.
type Container struct {
	id       string // unique per instance
	name     string // stable persistence key
	menuPath string

	split  *runtime.Split
	layout *Layout

	commands  *command.Registry
	menus     *command.MenuRegistry
	presenter MenuPresenter
	hub       *telemetry.Hub
	logger    *logging.Logger

	hitGrid *runtime.HitGrid
	bounds  runtime.Rect

	stateChanged *Emitter[string] // trigger name

	// Header drag-reorder state machine.
	pressPart  *Part
	pressX     int
	pressY     int
	dragActive bool
	dropPart   *Part
	gapDrag    bool
	lastX      int
	lastY      int

	partSubs map[*Part][]func()
	disposed bool
}

// NewContainer creates an empty container.
func NewContainer(cfg ContainerConfig) *Container {
	if cfg.Name == "" {
		cfg.Name = "dockyard"
	}
	if cfg.Commands == nil {
		cfg.Commands = command.NewRegistry()
	}
	if cfg.Menus == nil {
		cfg.Menus = command.NewMenuRegistry()
	}

	split := runtime.NewSplit(cfg.Orientation)
	c := &Container{
		id:        uuid.NewString(),
		name:      cfg.Name,
		split:     split,
		commands:  cfg.Commands,
		menus:     cfg.Menus,
		presenter: cfg.Presenter,
		hub:       cfg.Telemetry,
		logger:    cfg.Logger,
		hitGrid:   runtime.NewHitGrid(0, 0),
		partSubs:  make(map[*Part][]func()),

		stateChanged: NewEmitter[string](),
	}
	c.menuPath = "dock/" + c.id
	c.layout = NewLayout(split, LayoutConfig{
		HeaderHeight:      cfg.HeaderHeight,
		Spacing:           cfg.Spacing,
		MinPartSize:       cfg.MinPartSize,
		AnimationDuration: cfg.AnimationDuration,
		AnimationDisabled: cfg.AnimationDisabled,
		Logger:            cfg.Logger,
	})
	c.layout.hooks = LayoutHooks{
		OnLayoutPass: c.onLayoutPass,
		OnAnimationStarted: func(p *Part, collapsing bool) {
			c.publish(telemetry.EventAnimationStarted, p.partID, map[string]any{"collapsing": collapsing})
		},
		OnAnimationFrame: func(p *Part, collapsing bool) {
			telemetry.AnimationFrames.WithLabelValues(c.name, direction(collapsing)).Inc()
		},
		OnAnimationEnded: func(p *Part, collapsing bool) {
			c.publish(telemetry.EventAnimationEnded, p.partID, map[string]any{"collapsing": collapsing})
		},
	}

	// Container-wide toggle of the part under the most recent pointer
	// position. Without a resolved part the command does nothing; its
	// visibility predicate only reports whether any part is visible.
	c.commands.Register(command.Command{
		ID:      c.id + ":toggle-visibility",
		Execute: c.toggleVisibilityUnderCursor,
		IsVisible: func() bool {
			return c.anyVisible()
		},
	})

	return c
}

// ID returns the container's unique instance id.
func (c *Container) ID() string { return c.id }

// Name returns the stable persistence key.
func (c *Container) Name() string { return c.name }

// MenuPath returns the menu path the container registers entries under.
func (c *Container) MenuPath() string { return c.menuPath }

// SetPartSizes distributes available space proportionally by weight,
// deferred until the first layout pass when the container has not yet
// attached.
func (c *Container) SetPartSizes() {
	c.layout.gate.Then(c.layout.SetPartSizes)
}

// Parts returns the ordered part sequence, hidden parts included.
func (c *Container) Parts() []*Part {
	return c.layout.Parts()
}

// PartByWidgetID returns the part wrapping the widget id, or nil.
func (c *Container) PartByWidgetID(widgetID string) *Part {
	for _, p := range c.layout.parts {
		if p.widgetID == widgetID {
			return p
		}
	}
	return nil
}

// OnStateChanged subscribes to persisted-state-relevant changes. The
// argument names the trigger (collapse, visibility, reorder, resize,
// add, remove).
func (c *Container) OnStateChanged(fn func(trigger string)) func() {
	return c.stateChanged.Subscribe(fn)
}

// AddWidget wraps the widget in a new part and inserts it. A duplicate
// widget id is a no-op returning an inert disposable. The returned
// disposable unregisters the part's command and menu entry, unwires its
// events, and removes the part.
func (c *Container) AddWidget(widgetID string, widget runtime.Widget, opts Options) Disposable {
	if c.disposed || widgetID == "" || widget == nil {
		return inertDisposable
	}
	if c.PartByWidgetID(widgetID) != nil {
		c.logger.Debug(logging.CategoryDock, "duplicate_widget", "add ignored for duplicate widget id", map[string]any{"widget": widgetID})
		return inertDisposable
	}

	partID := widgetID
	if d, ok := widget.(Describable); ok {
		if desc := d.Descriptor(); desc != "" {
			partID = desc
		}
	}
	for _, p := range c.layout.parts {
		if p.partID == partID {
			c.logger.Warn(logging.CategoryDock, "duplicate_part_id", "add ignored for duplicate part id", map[string]any{"partId": partID})
			return inertDisposable
		}
	}

	part := newPart(c.id, widgetID, partID, widget, opts)
	idx := c.insertionIndex(opts.Order)
	c.layout.insert(part, idx)

	// Initial collapse applies once, before first attach; horizontal
	// containers never collapse.
	if opts.Collapsed && c.split.Orientation() == runtime.Vertical {
		part.collapsed = true
		c.layout.refit()
	}

	cmdID := c.partCommandID(part)
	c.commands.Register(command.Command{
		ID: cmdID,
		Execute: func() {
			part.SetHidden(!part.hidden)
		},
		IsToggled: func() bool { return !part.hidden },
		IsVisible: func() bool { return part.canHide },
	})
	c.menus.Register(command.MenuEntry{
		MenuPath:  c.menuPath,
		CommandID: cmdID,
		Label:     part.title,
		Order:     idx,
	})
	c.refreshMenuOrders(idx)

	subs := []func(){
		part.OnCollapseChanged(func(collapsed bool) {
			event := telemetry.EventPartExpanded
			if collapsed {
				event = telemetry.EventPartCollapsed
			}
			c.publish(event, part.partID, nil)
			c.stateChanged.Emit("collapse")
		}),
		part.OnVisibilityChanged(func(hidden bool) {
			event := telemetry.EventPartShown
			if hidden {
				event = telemetry.EventPartHidden
			}
			c.publish(event, part.partID, nil)
			telemetry.VisibleParts.WithLabelValues(c.name).Set(float64(c.layout.visibleCount()))
			c.stateChanged.Emit("visibility")
		}),
		part.OnMoveBefore(func(sourceID string) {
			c.moveBefore(sourceID, part)
		}),
		part.OnContextMenu(func(at Point) {
			c.presentMenu(at)
		}),
	}
	c.partSubs[part] = subs

	c.publish(telemetry.EventPartAdded, part.partID, map[string]any{"title": part.title})
	telemetry.PartsAdded.WithLabelValues(c.name).Inc()
	telemetry.VisibleParts.WithLabelValues(c.name).Set(float64(c.layout.visibleCount()))
	c.logger.Info(logging.CategoryDock, "part_added", "part added", map[string]any{
		"widget": widgetID,
		"partId": partID,
		"index":  idx,
	})
	c.stateChanged.Emit("add")

	return disposeFunc(func() {
		c.removePart(part)
	})
}

// RemoveWidget removes the part wrapping the widget id, reporting
// whether it was tracked.
func (c *Container) RemoveWidget(widgetID string) bool {
	part := c.PartByWidgetID(widgetID)
	if part == nil {
		return false
	}
	c.removePart(part)
	return true
}

func (c *Container) removePart(part *Part) {
	if part.disposed {
		return
	}
	c.commands.Unregister(c.partCommandID(part))
	c.menus.Unregister(c.partCommandID(part))
	for _, unsub := range c.partSubs[part] {
		unsub()
	}
	delete(c.partSubs, part)
	if c.layout.remove(part) {
		c.publish(telemetry.EventPartRemoved, part.partID, nil)
		telemetry.PartsRemoved.WithLabelValues(c.name).Inc()
		telemetry.VisibleParts.WithLabelValues(c.name).Set(float64(c.layout.visibleCount()))
		c.refreshMenuOrders(0)
		c.stateChanged.Emit("remove")
	}
	part.dispose()
}

// insertionIndex places a new part before the first existing part
// whose order is unset or greater; without an order it appends.
func (c *Container) insertionIndex(order *int) int {
	parts := c.layout.parts
	if order == nil {
		return len(parts)
	}
	for i, p := range parts {
		if p.order == nil || *p.order > *order {
			return i
		}
	}
	return len(parts)
}

func (c *Container) partCommandID(p *Part) string {
	return fmt.Sprintf("%s:toggle-visibility-%s", c.id, p.partID)
}

// refreshMenuOrders re-registers menu entries from index start so menu
// order tracks visual order. Re-registration is idempotent.
func (c *Container) refreshMenuOrders(start int) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(c.layout.parts); i++ {
		p := c.layout.parts[i]
		c.menus.Register(command.MenuEntry{
			MenuPath:  c.menuPath,
			CommandID: c.partCommandID(p),
			Label:     p.title,
			Order:     i,
		})
	}
}

// moveBefore moves the dragged source part immediately before target.
func (c *Container) moveBefore(sourceID string, target *Part) {
	src := c.layout.IndexOf(sourceID)
	dst := c.layout.indexOf(target)
	if src < 0 || dst < 0 || src == dst {
		return
	}
	to := dst
	if src < dst {
		to = dst - 1
	}
	if !c.layout.move(src, to) {
		return
	}
	c.refreshMenuOrders(min(src, to))
	c.publish(telemetry.EventPartsReordered, c.layout.parts[to].partID, map[string]any{
		"from": src,
		"to":   to,
	})
	c.logger.Info(logging.CategoryDock, "parts_reordered", "part moved", map[string]any{
		"from": src,
		"to":   to,
	})
	c.stateChanged.Emit("reorder")
}

func (c *Container) anyVisible() bool {
	return c.layout.visibleCount() > 0
}

// toggleVisibilityUnderCursor hides or shows the part under the last
// pointer position. With no resolved part it does nothing.
func (c *Container) toggleVisibilityUnderCursor() {
	p := c.partAt(c.lastX, c.lastY)
	if p == nil {
		return
	}
	p.SetHidden(!p.hidden)
}

func (c *Container) partAt(x, y int) *Part {
	if p, ok := c.hitGrid.WidgetAt(x, y).(*Part); ok {
		return p
	}
	return nil
}

func (c *Container) partHeaderAt(x, y int) *Part {
	p := c.partAt(x, y)
	if p != nil && p.HeaderBounds().Contains(x, y) {
		return p
	}
	return nil
}

// presentMenu shows the container's part menu at the given point.
func (c *Container) presentMenu(at Point) {
	if c.presenter == nil {
		c.logger.Debug(logging.CategoryDock, "menu_unpresented", "no menu presenter configured", nil)
		return
	}
	c.presenter.Present(MenuRequest{MenuPath: c.menuPath, X: at.X, Y: at.Y})
}

func (c *Container) publish(event telemetry.EventType, partID string, data map[string]any) {
	if c.hub == nil {
		return
	}
	c.hub.Publish(telemetry.Event{
		Type:        event,
		ContainerID: c.id,
		PartID:      partID,
		Data:        data,
	})
}

func direction(collapsing bool) string {
	if collapsing {
		return "collapse"
	}
	return "expand"
}

// onLayoutPass rebuilds the hit grid and counts the pass.
func (c *Container) onLayoutPass() {
	c.rebuildHitGrid()
	telemetry.LayoutPasses.WithLabelValues(c.name).Inc()
}

func (c *Container) rebuildHitGrid() {
	c.hitGrid.Resize(c.bounds.X+c.bounds.Width, c.bounds.Y+c.bounds.Height)
	c.hitGrid.Clear()
	for i, p := range c.layout.parts {
		if p.hidden {
			continue
		}
		c.hitGrid.Add(p, c.split.ItemBounds(i))
	}
}

// Measure delegates to the split.
func (c *Container) Measure(constraints runtime.Constraints) runtime.Size {
	return c.split.Measure(constraints)
}

// Layout attaches on first mount, then runs a split layout pass and
// rebuilds the hit grid.
func (c *Container) Layout(bounds runtime.Rect) {
	c.bounds = bounds
	extent := bounds.Height
	if c.split.Orientation() == runtime.Horizontal {
		extent = bounds.Width
	}

	first := !c.layout.attached
	if first {
		c.layout.attach(extent)
	} else {
		c.layout.setSize(extent)
	}

	c.layout.applyConstraints()
	c.split.Layout(bounds)
	c.onLayoutPass()

	if first {
		c.layout.gate.Resolve()
	}
}

// Render draws the split and its parts.
func (c *Container) Render(ctx runtime.RenderContext) {
	c.split.Render(ctx)
}

// HandleMessage runs the header interaction state machine, steps
// animations on ticks, and forwards everything else to the split.
func (c *Container) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.TickMsg:
		if c.layout.step(m.Time) {
			return runtime.Handled()
		}
		return runtime.Unhandled()
	case runtime.MouseMsg:
		c.lastX, c.lastY = m.X, m.Y
		if result, done := c.handleHeaderMouse(m); done {
			return result
		}
	}
	return c.split.HandleMessage(msg)
}

// handleHeaderMouse implements click-to-collapse, right-click menus,
// and drag-reorder across part headers. Gap handles stay with the
// split; their drags are tracked only to emit a resize state change.
func (c *Container) handleHeaderMouse(m runtime.MouseMsg) (runtime.HandleResult, bool) {
	switch m.Action {
	case runtime.MousePress:
		if m.Button == runtime.MouseRight {
			if p := c.partHeaderAt(m.X, m.Y); p != nil {
				p.contextMenu.Emit(Point{X: m.X, Y: m.Y})
				return runtime.Handled(), true
			}
			return runtime.Unhandled(), false
		}
		if m.Button != runtime.MouseLeft {
			return runtime.Unhandled(), false
		}
		if c.split.HandleAt(m.X, m.Y) >= 0 {
			c.gapDrag = true
			return runtime.Unhandled(), false // the split owns gap drags
		}
		if p := c.partHeaderAt(m.X, m.Y); p != nil {
			c.pressPart = p
			c.pressX, c.pressY = m.X, m.Y
			return runtime.Handled(), true
		}

	case runtime.MouseMove:
		if c.pressPart == nil {
			return runtime.Unhandled(), false
		}
		if !c.dragActive && (m.X != c.pressX || m.Y != c.pressY) {
			c.dragActive = true
			c.pressPart.setDragging(true)
		}
		if c.dragActive {
			target := c.partHeaderAt(m.X, m.Y)
			if target == c.pressPart {
				target = nil // self-drop prevention
			}
			c.setDropTarget(target)
			return runtime.Handled(), true
		}

	case runtime.MouseRelease:
		if c.gapDrag {
			c.gapDrag = false
			c.stateChanged.Emit("resize")
			return runtime.Unhandled(), false // let the split end its drag
		}
		if c.pressPart == nil {
			return runtime.Unhandled(), false
		}
		src := c.pressPart
		c.pressPart = nil
		if c.dragActive {
			c.dragActive = false
			src.setDragging(false)
			target := c.dropPart
			c.setDropTarget(nil)
			if target != nil && target != src {
				// The receiver reports intent; the container's
				// subscription performs the reorder.
				target.moveBefore.Emit(src.id)
			}
		} else {
			src.SetCollapsed(!src.collapsed)
		}
		return runtime.Handled(), true
	}
	return runtime.Unhandled(), false
}

func (c *Container) setDropTarget(target *Part) {
	if c.dropPart == target {
		return
	}
	if c.dropPart != nil {
		c.dropPart.setDropTarget(false)
	}
	c.dropPart = target
	if target != nil {
		target.setDropTarget(true)
	}
}

// Dispose tears the container down: every part is removed, animations
// cancelled, and the container command unregistered.
func (c *Container) Dispose() {
	if c.disposed {
		return
	}
	for len(c.layout.parts) > 0 {
		c.removePart(c.layout.parts[len(c.layout.parts)-1])
	}
	c.commands.Unregister(c.id + ":toggle-visibility")
	c.stateChanged.Dispose()
	c.disposed = true
}
