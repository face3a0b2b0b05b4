package runtime

// FlexDirection selects the main axis of a Flex container.
type FlexDirection int

const (
	Column FlexDirection = iota
	Row
)

// FlexChild pairs a widget with its distribution parameters. A zero
// Grow keeps the child at its measured (or basis) size; positive Grow
// hands it a proportional share of the leftover main-axis space.
type FlexChild struct {
	Widget Widget
	Grow   float64
	Shrink float64
	Basis  int // main-axis base size, -1 to use the measured size
}

// Fixed keeps the child at its measured size.
func Fixed(w Widget) FlexChild {
	return FlexChild{Widget: w, Basis: -1}
}

// Flexible lets the child grow with the given factor.
func Flexible(w Widget, grow float64) FlexChild {
	return FlexChild{Widget: w, Grow: grow, Shrink: 1, Basis: -1}
}

// Expanded lets the child absorb leftover space with factor 1.
func Expanded(w Widget) FlexChild {
	return FlexChild{Widget: w, Grow: 1, Shrink: 1, Basis: -1}
}

// Sized fixes the child's main-axis extent to basis cells.
func Sized(w Widget, basis int) FlexChild {
	return FlexChild{Widget: w, Basis: basis}
}

// Flex lays out children in a row or column, distributing leftover
// main-axis space among the growing children.
type Flex struct {
	Direction FlexDirection
	Children  []FlexChild
	Gap       int

	bounds      Rect
	childBounds []Rect
	measured    Size
}

// VBox stacks children top to bottom.
func VBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Column, Children: children}
}

// HBox lines children up left to right.
func HBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Row, Children: children}
}

// WithGap sets the spacing between adjacent children.
func (f *Flex) WithGap(gap int) *Flex {
	f.Gap = gap
	return f
}

// Add appends a child.
func (f *Flex) Add(child FlexChild) {
	f.Children = append(f.Children, child)
}

// Measure sums child sizes along the main axis and takes the largest
// cross-axis size, constrained to the incoming box.
func (f *Flex) Measure(constraints Constraints) Size {
	if len(f.Children) == 0 {
		f.measured = constraints.MinSize()
		return f.measured
	}

	totalMain := 0
	maxCross := 0
	for _, child := range f.Children {
		size := f.measureChild(child, f.looseChildConstraints(constraints))
		totalMain += f.mainSize(size)
		maxCross = max(maxCross, f.crossSize(size))
	}
	totalMain += f.Gap * (len(f.Children) - 1)

	if f.Direction == Column {
		f.measured = constraints.Constrain(Size{Width: maxCross, Height: totalMain})
	} else {
		f.measured = constraints.Constrain(Size{Width: totalMain, Height: maxCross})
	}
	return f.measured
}

// Layout fixes every child's bounds. Fixed children keep their measured
// size; growing children split whatever space remains in proportion to
// their Grow factors.
func (f *Flex) Layout(bounds Rect) {
	f.bounds = bounds
	f.childBounds = make([]Rect, len(f.Children))
	if len(f.Children) == 0 {
		return
	}

	var loose Constraints
	if f.Direction == Column {
		loose = Loose(bounds.Width, maxInt)
	} else {
		loose = Loose(maxInt, bounds.Height)
	}

	childSizes := make([]Size, len(f.Children))
	totalFixed := f.Gap * (len(f.Children) - 1)
	totalGrow := 0.0
	for i, child := range f.Children {
		childSizes[i] = f.measureChild(child, loose)
		if child.Grow == 0 {
			totalFixed += f.mainSize(childSizes[i])
		}
		totalGrow += child.Grow
	}

	available := max(0, f.mainSize(bounds.Size())-totalFixed)

	offset := 0
	for i, child := range f.Children {
		extent := f.mainSize(childSizes[i])
		if child.Grow > 0 && totalGrow > 0 {
			extent = int(float64(available) * child.Grow / totalGrow)
		}

		var cb Rect
		if f.Direction == Column {
			cb = Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: extent}
		} else {
			cb = Rect{X: bounds.X + offset, Y: bounds.Y, Width: extent, Height: bounds.Height}
		}
		f.childBounds[i] = cb
		child.Widget.Layout(cb)
		offset += extent + f.Gap
	}
}

// Bounds returns the container's committed bounds.
func (f *Flex) Bounds() Rect {
	return f.bounds
}

// ChildWidgets returns the non-nil child widgets in order.
func (f *Flex) ChildWidgets() []Widget {
	if len(f.Children) == 0 {
		return nil
	}
	children := make([]Widget, 0, len(f.Children))
	for _, child := range f.Children {
		if child.Widget != nil {
			children = append(children, child.Widget)
		}
	}
	return children
}

// Render draws each child into its sub-region.
func (f *Flex) Render(ctx RenderContext) {
	for i, child := range f.Children {
		if i < len(f.childBounds) {
			child.Widget.Render(ctx.Sub(f.childBounds[i]))
		}
	}
}

// HandleMessage offers the message to each child in order; the first
// one to handle it wins.
func (f *Flex) HandleMessage(msg Message) HandleResult {
	for _, child := range f.Children {
		if result := child.Widget.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return Unhandled()
}

func (f *Flex) measureChild(child FlexChild, c Constraints) Size {
	if child.Basis >= 0 {
		if f.Direction == Column {
			return Size{Height: child.Basis}
		}
		return Size{Width: child.Basis}
	}
	return child.Widget.Measure(c)
}

func (f *Flex) looseChildConstraints(c Constraints) Constraints {
	if f.Direction == Column {
		return Constraints{MinWidth: c.MinWidth, MaxWidth: c.MaxWidth, MaxHeight: maxInt}
	}
	return Constraints{MinHeight: c.MinHeight, MaxHeight: c.MaxHeight, MaxWidth: maxInt}
}

func (f *Flex) mainSize(s Size) int {
	if f.Direction == Column {
		return s.Height
	}
	return s.Width
}

func (f *Flex) crossSize(s Size) int {
	if f.Direction == Column {
		return s.Width
	}
	return s.Height
}

// Spacer is an invisible widget used to push siblings apart.
type Spacer struct {
	bounds Rect
}

// NewSpacer returns an empty spacer.
func NewSpacer() *Spacer {
	return &Spacer{}
}

func (s *Spacer) Measure(constraints Constraints) Size {
	return constraints.MinSize()
}

func (s *Spacer) Layout(bounds Rect) {
	s.bounds = bounds
}

// Bounds returns the spacer's committed bounds.
func (s *Spacer) Bounds() Rect {
	return s.bounds
}

func (s *Spacer) Render(RenderContext) {}

func (s *Spacer) HandleMessage(Message) HandleResult {
	return Unhandled()
}

// Space expands to absorb leftover space.
func Space() FlexChild {
	return Expanded(NewSpacer())
}

// FixedSpace inserts a gap of exactly size cells.
func FixedSpace(size int) FlexChild {
	return Sized(NewSpacer(), size)
}
