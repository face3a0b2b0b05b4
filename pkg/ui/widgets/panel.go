package widgets

import (
	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// Panel wraps a child widget with a filled background and, optionally,
// a rounded border with a title. Parts use panels for their body area.
type Panel struct {
	Base
	child       runtime.Widget
	style       backend.Style
	borderStyle backend.Style
	hasBorder   bool
	title       string
}

// NewPanel wraps child in a borderless panel. child may be nil.
func NewPanel(child runtime.Widget) *Panel {
	return &Panel{
		child:       child,
		style:       backend.DefaultStyle(),
		borderStyle: backend.DefaultStyle(),
	}
}

// SetStyle changes the background fill style.
func (p *Panel) SetStyle(style backend.Style) {
	p.style = style
}

// WithStyle sets the background style, chaining.
func (p *Panel) WithStyle(style backend.Style) *Panel {
	p.style = style
	return p
}

// WithBorder draws a rounded border in the given style, chaining.
func (p *Panel) WithBorder(style backend.Style) *Panel {
	p.hasBorder = true
	p.borderStyle = style
	return p
}

// WithTitle embeds a title in the top border, chaining. Titles only
// render when a border is enabled.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

func (p *Panel) borderExtent() int {
	if p.hasBorder {
		return 2
	}
	return 0
}

// Measure reports the child's preferred size plus border thickness.
func (p *Panel) Measure(constraints runtime.Constraints) runtime.Size {
	border := p.borderExtent()
	if p.child == nil {
		return constraints.Constrain(runtime.Size{Width: border, Height: border})
	}

	inner := p.child.Measure(runtime.Constraints{
		MinWidth:  max(0, constraints.MinWidth-border),
		MaxWidth:  max(0, constraints.MaxWidth-border),
		MinHeight: max(0, constraints.MinHeight-border),
		MaxHeight: max(0, constraints.MaxHeight-border),
	})
	return runtime.Size{Width: inner.Width + border, Height: inner.Height + border}
}

// Layout places the child inside the border, if any.
func (p *Panel) Layout(bounds runtime.Rect) {
	p.Base.Layout(bounds)
	if p.child == nil {
		return
	}
	inner := bounds
	if p.hasBorder {
		inner = bounds.Inset(1, 1, 1, 1)
	}
	p.child.Layout(inner)
}

// Render fills the background, draws the border and title, then
// renders the child on top.
func (p *Panel) Render(ctx runtime.RenderContext) {
	bounds := p.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	ctx.Buffer.Fill(bounds, ' ', p.style)

	if p.hasBorder {
		ctx.Buffer.DrawRoundedBox(bounds, p.borderStyle)
		if p.title != "" && bounds.Width > 4 {
			label := " " + truncate(p.title, bounds.Width-4) + " "
			ctx.Buffer.SetString(bounds.X+2, bounds.Y, label, p.borderStyle)
		}
	}

	if p.child != nil {
		p.child.Render(ctx)
	}
}

// HandleMessage forwards to the child.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if p.child == nil {
		return runtime.Unhandled()
	}
	return p.child.HandleMessage(msg)
}
