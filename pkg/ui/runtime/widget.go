// Package runtime provides dockyard's retained-mode widget runtime.
// It implements a constraint-based layout system with focus management,
// a modal layer stack for overlays, and a split primitive for linear
// arrangements with draggable handles.
package runtime

// Widget is the contract every dockyard component fulfills. Layout is a
// two-pass protocol: Measure proposes a size under constraints, Layout
// commits final bounds, and Render draws into the cell buffer. Input
// arrives through HandleMessage.
type Widget interface {
	// Measure reports the size the widget wants within the given
	// constraints. Called before Layout on every pass.
	Measure(constraints Constraints) Size

	// Layout commits the widget's final on-screen bounds. Widgets keep
	// the rect around for hit testing and rendering.
	Layout(bounds Rect)

	// Render paints the widget into the frame buffer.
	Render(ctx RenderContext)

	// HandleMessage consumes an input message, reporting whether it was
	// handled and which commands should bubble to the app.
	HandleMessage(msg Message) HandleResult
}

// Focusable marks widgets that participate in keyboard focus traversal.
type Focusable interface {
	Widget

	// CanFocus reports whether the widget currently accepts focus.
	CanFocus() bool

	// Focus notifies the widget it gained focus.
	Focus()

	// Blur notifies the widget it lost focus.
	Blur()

	// IsFocused reports whether the widget holds focus.
	IsFocused() bool
}

// HandleResult carries the outcome of HandleMessage back up the tree.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled() HandleResult { return HandleResult{Handled: true} }

// Unhandled lets the message continue to the next widget.
func Unhandled() HandleResult { return HandleResult{} }

// WithCommand consumes the message and bubbles one command.
func WithCommand(cmd Command) HandleResult {
	return HandleResult{Handled: true, Commands: []Command{cmd}}
}

// WithCommands consumes the message and bubbles several commands.
func WithCommands(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// Constraints bound a widget's size during the measure pass.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight forces an exact size in both dimensions.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// TightWidth fixes the width and leaves height unbounded.
func TightWidth(w int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MaxHeight: maxInt}
}

// TightHeight fixes the height and leaves width unbounded.
func TightHeight(h int) Constraints {
	return Constraints{MaxWidth: maxInt, MinHeight: h, MaxHeight: h}
}

// Loose bounds only the maximum; minimums stay zero.
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// Unbounded places no limit on either dimension.
func Unbounded() Constraints {
	return Constraints{MaxWidth: maxInt, MaxHeight: maxInt}
}

// Constrain clamps s into the constraint box.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// IsTight reports whether only one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// MaxSize returns the largest size the constraints allow.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// MinSize returns the smallest size the constraints require.
func (c Constraints) MinSize() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// Zero reports whether both dimensions are zero.
func (s Size) Zero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// ZeroRect is the empty rectangle at the origin.
var ZeroRect = Rect{}

// NewRect builds a rect from a position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromSize places a size at the origin.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether the rects share any cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersection returns the overlap of two rects, or ZeroRect when they
// are disjoint.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return ZeroRect
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset shrinks the rect by per-edge amounts, clamping at empty.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

const maxInt = int(^uint(0) >> 1)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
