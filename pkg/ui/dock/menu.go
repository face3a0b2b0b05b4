package dock

import (
	"github.com/odvcencio/dockyard/pkg/ui/command"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
	"github.com/odvcencio/dockyard/pkg/ui/widgets"
)

// MenuRequest asks a presenter to show the menu registered under a
// path, anchored at a screen point.
type MenuRequest struct {
	MenuPath string
	X, Y     int
}

// MenuPresenter renders a context menu. The container only reports the
// request; presentation is the host's concern.
type MenuPresenter interface {
	Present(req MenuRequest)
}

// OverlayPresenter builds a menu widget from registry entries and
// pushes it onto the screen as a positioned modal overlay.
type OverlayPresenter struct {
	screen   *runtime.Screen
	commands *command.Registry
	menus    *command.MenuRegistry
}

// NewOverlayPresenter creates a presenter over the screen's layer
// stack.
func NewOverlayPresenter(screen *runtime.Screen, commands *command.Registry, menus *command.MenuRegistry) *OverlayPresenter {
	return &OverlayPresenter{screen: screen, commands: commands, menus: menus}
}

// Present shows the menu for the request, skipping entries whose
// commands are currently invisible. An empty menu is not shown.
func (o *OverlayPresenter) Present(req MenuRequest) {
	entries := o.menus.EntriesFor(req.MenuPath)
	items := make([]widgets.MenuItem, 0, len(entries))
	for _, entry := range entries {
		cmd, ok := o.commands.Get(entry.CommandID)
		if !ok {
			continue
		}
		if cmd.IsVisible != nil && !cmd.IsVisible() {
			continue
		}
		item := widgets.MenuItem{Label: entry.Label, CommandID: entry.CommandID}
		if cmd.IsToggled != nil {
			item.Toggled = cmd.IsToggled()
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return
	}

	th := o.screen.Theme()
	panel := widgets.NewPanel(widgets.NewMenu(items)).
		WithBorder(th.Border).
		WithStyle(th.SurfaceRaised)
	o.screen.PushLayer(newAnchored(panel, req.X, req.Y), true)
}

// anchored positions a child widget at a screen point, nudging it back
// inside the layer bounds when it would overflow.
type anchored struct {
	child runtime.Widget
	x, y  int

	bounds runtime.Rect
}

func newAnchored(child runtime.Widget, x, y int) *anchored {
	return &anchored{child: child, x: x, y: y}
}

func (a *anchored) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

func (a *anchored) Layout(bounds runtime.Rect) {
	a.bounds = bounds

	size := a.child.Measure(runtime.Loose(bounds.Width, bounds.Height))
	x := a.x
	y := a.y
	if x+size.Width > bounds.X+bounds.Width {
		x = bounds.X + bounds.Width - size.Width
	}
	if y+size.Height > bounds.Y+bounds.Height {
		y = bounds.Y + bounds.Height - size.Height
	}
	if x < bounds.X {
		x = bounds.X
	}
	if y < bounds.Y {
		y = bounds.Y
	}
	a.child.Layout(runtime.Rect{X: x, Y: y, Width: size.Width, Height: size.Height})
}

func (a *anchored) Render(ctx runtime.RenderContext) {
	a.child.Render(ctx)
}

func (a *anchored) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return a.child.HandleMessage(msg)
}
