package dock

import (
	"github.com/mattn/go-runewidth"
	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// Point is a screen position carried by pointer-anchored events.
type Point struct {
	X, Y int
}

// Part wraps one content widget with a header and a body. It owns its
// collapsed/hidden/drag flags and emits typed events when collapse, a
// reorder request, or a context menu occur. A part knows nothing about
// its siblings; the container coordinates them.
type Part struct {
	id       string // container id + wrapped-widget id
	widgetID string
	partID   string // content-addressable persistence key
	title    string
	widget   runtime.Widget

	order     *int
	weight    float64
	hasWeight bool

	collapsed  bool
	hidden     bool
	canHide    bool
	dragging   bool
	dropTarget bool

	// Sizing state owned by the Layout; Part never writes these.
	uncollapsedSize int // last expanded extent, <0 unset
	animatedSize    int // content extent mid-animation, <0 unset

	layout *Layout // set on insertion

	collapseChanged   *Emitter[bool]
	visibilityChanged *Emitter[bool]
	moveBefore        *Emitter[string] // dragged part's id
	contextMenu       *Emitter[Point]

	bounds   runtime.Rect
	disposed bool
}

func newPart(containerID, widgetID, partID string, widget runtime.Widget, opts Options) *Part {
	title := opts.Title
	if title == "" {
		title = widgetID
	}
	p := &Part{
		id:              containerID + "/" + widgetID,
		widgetID:        widgetID,
		partID:          partID,
		title:           title,
		widget:          widget,
		order:           opts.Order,
		canHide:         !opts.NoHide,
		hidden:          opts.Hidden,
		uncollapsedSize: -1,
		animatedSize:    -1,

		collapseChanged:   NewEmitter[bool](),
		visibilityChanged: NewEmitter[bool](),
		moveBefore:        NewEmitter[string](),
		contextMenu:       NewEmitter[Point](),
	}
	if opts.Weight > 0 {
		p.weight = opts.Weight
		p.hasWeight = true
	}
	return p
}

// ID returns the part's instance identity.
func (p *Part) ID() string { return p.id }

// WidgetID returns the wrapped widget's id.
func (p *Part) WidgetID() string { return p.widgetID }

// PartID returns the content-addressable persistence key.
func (p *Part) PartID() string { return p.partID }

// Title returns the header title.
func (p *Part) Title() string { return p.title }

// Widget returns the wrapped content widget.
func (p *Part) Widget() runtime.Widget { return p.widget }

// Collapsed reports whether only the header is shown.
func (p *Part) Collapsed() bool { return p.collapsed }

// Hidden reports whether the part is excluded from visible geometry.
func (p *Part) Hidden() bool { return p.hidden }

// CanHide reports whether visibility toggles may hide the part.
func (p *Part) CanHide() bool { return p.canHide }

// OnCollapseChanged subscribes to collapse flips.
func (p *Part) OnCollapseChanged(fn func(collapsed bool)) func() {
	return p.collapseChanged.Subscribe(fn)
}

// OnMoveBefore subscribes to reorder intents: the argument is the id of
// the part that was dropped onto this one.
func (p *Part) OnMoveBefore(fn func(sourceID string)) func() {
	return p.moveBefore.Subscribe(fn)
}

// OnVisibilityChanged subscribes to hidden flips; the argument is the
// new hidden flag.
func (p *Part) OnVisibilityChanged(fn func(hidden bool)) func() {
	return p.visibilityChanged.Subscribe(fn)
}

// OnContextMenu subscribes to header context-menu requests.
func (p *Part) OnContextMenu(fn func(at Point)) func() {
	return p.contextMenu.Subscribe(fn)
}

// SetCollapsed collapses or expands the part. No-op in horizontal
// orientation, when the state already matches, or after disposal.
func (p *Part) SetCollapsed(collapsed bool) {
	if p.disposed || p.collapsed == collapsed {
		return
	}
	if p.layout != nil && p.layout.orientation == runtime.Horizontal {
		return
	}
	p.collapsed = collapsed
	p.collapseChanged.Emit(collapsed)
	if p.layout != nil {
		p.layout.updateCollapsed(p)
	}
}

// SetHidden hides or shows the part, refusing to hide when CanHide is
// false. Reports whether the requested state now holds.
func (p *Part) SetHidden(hidden bool) bool {
	if p.disposed {
		return false
	}
	if hidden && !p.canHide {
		return false
	}
	if p.hidden == hidden {
		return true
	}
	if hidden && p.layout != nil {
		p.layout.snapshotExtent(p)
	}
	p.hidden = hidden
	p.visibilityChanged.Emit(hidden)
	if p.layout != nil {
		p.layout.refit()
	}
	return true
}

func (p *Part) setDragging(dragging bool) {
	p.dragging = dragging
}

func (p *Part) setDropTarget(target bool) {
	// Self-drop prevention: a dragged part never marks itself.
	if target && p.dragging {
		return
	}
	p.dropTarget = target
}

// headerExtent returns the header height in cells.
func (p *Part) headerExtent() int {
	if p.layout != nil {
		return p.layout.headerHeight
	}
	return defaultHeaderHeight
}

// minContentSize returns the widget's minimum extent on the container's
// main axis.
func (p *Part) minContentSize() int {
	if ms, ok := p.widget.(MinSizer); ok {
		size := ms.MinContentSize()
		if p.layout != nil && p.layout.orientation == runtime.Horizontal {
			return size.Width
		}
		return size.Height
	}
	if p.layout != nil {
		return p.layout.minPartSize
	}
	return defaultMinPartSize
}

func (p *Part) dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.collapseChanged.Dispose()
	p.visibilityChanged.Dispose()
	p.moveBefore.Dispose()
	p.contextMenu.Dispose()
}

// HeaderBounds returns the header row's screen rectangle.
func (p *Part) HeaderBounds() runtime.Rect {
	h := p.headerExtent()
	if h > p.bounds.Height {
		h = p.bounds.Height
	}
	return runtime.Rect{X: p.bounds.X, Y: p.bounds.Y, Width: p.bounds.Width, Height: h}
}

// Bounds returns the part's full assigned rectangle.
func (p *Part) Bounds() runtime.Rect {
	return p.bounds
}

// Measure returns the header plus the body's measured size.
func (p *Part) Measure(constraints runtime.Constraints) runtime.Size {
	header := p.headerExtent()
	if p.collapsed || p.widget == nil {
		return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: header})
	}
	body := p.widget.Measure(runtime.Loose(constraints.MaxWidth, max(0, constraints.MaxHeight-header)))
	return constraints.Constrain(runtime.Size{
		Width:  constraints.MaxWidth,
		Height: header + body.Height,
	})
}

// Layout assigns bounds: header on top, body below.
func (p *Part) Layout(bounds runtime.Rect) {
	p.bounds = bounds
	if p.widget == nil {
		return
	}
	header := p.headerExtent()
	body := runtime.Rect{
		X:      bounds.X,
		Y:      bounds.Y + header,
		Width:  bounds.Width,
		Height: max(0, bounds.Height-header),
	}
	p.widget.Layout(body)
}

// Render draws the header and, when room remains, the body.
func (p *Part) Render(ctx runtime.RenderContext) {
	b := p.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	p.renderHeader(ctx)

	header := p.headerExtent()
	if p.widget != nil && b.Height > header {
		p.widget.Render(ctx.Sub(runtime.Rect{
			X: b.X, Y: b.Y + header, Width: b.Width, Height: b.Height - header,
		}))
	}
}

func (p *Part) renderHeader(ctx runtime.RenderContext) {
	b := p.HeaderBounds()
	if b.Height == 0 {
		return
	}

	style := p.headerStyle(ctx)
	ctx.Buffer.Fill(b, ' ', style)

	indicator := '▼'
	if p.collapsed {
		indicator = '▶'
	}
	ctx.Buffer.Set(b.X+1, b.Y, indicator, style)
	ctx.Buffer.SetString(b.X+3, b.Y, truncateTitle(p.title, b.Width-4), style)

	if tp, ok := p.widget.(ToolbarProvider); ok {
		if toolbar := tp.Toolbar(); toolbar != nil {
			w := toolbar.Measure(runtime.Loose(b.Width/2, 1)).Width
			if w > 0 {
				tb := runtime.Rect{X: b.X + b.Width - w - 1, Y: b.Y, Width: w, Height: 1}
				toolbar.Layout(tb)
				toolbar.Render(ctx.Sub(tb))
			}
		}
	}
}

func (p *Part) headerStyle(ctx runtime.RenderContext) backend.Style {
	switch {
	case p.dropTarget:
		return ctx.Theme.DropTarget
	case p.dragging:
		return ctx.Theme.DragSource
	case p.collapsed:
		return ctx.Theme.HeaderCollapsed
	default:
		return ctx.Theme.Header
	}
}

// HandleMessage forwards to the body widget when expanded. Header
// interactions are coordinated by the container, which sees messages
// first.
func (p *Part) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if p.widget == nil || p.collapsed || p.hidden {
		return runtime.Unhandled()
	}
	return p.widget.HandleMessage(msg)
}

func truncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(title) <= width {
		return title
	}
	return runewidth.Truncate(title, width, "…")
}
