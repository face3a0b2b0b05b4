package runtime

// Orientation specifies the main axis of a split container.
type Orientation int

const (
	Vertical   Orientation = iota // items stacked top to bottom
	Horizontal                    // items side by side
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// SplitItem is one entry in a split container.
type SplitItem struct {
	Widget Widget
	Hidden bool // excluded from geometry, keeps its slot

	// Size constraints on the main axis. MaxSize <= 0 means unconstrained.
	MinSize int
	MaxSize int

	size int // current main-axis extent, derived during layout
}

// Split arranges an ordered list of items along one axis, separated by
// a configurable gap. Boundaries between items ("handles") can be
// repositioned programmatically or, when the gap is at least one cell,
// dragged with the mouse.
type Split struct {
	orientation Orientation
	spacing     int
	items       []*SplitItem

	bounds     Rect
	itemBounds []Rect
	dragHandle int // boundary index being dragged, -1 if none
}

// NewSplit creates an empty split container.
func NewSplit(orientation Orientation) *Split {
	return &Split{
		orientation: orientation,
		dragHandle:  -1,
	}
}

// Orientation returns the split's main axis.
func (s *Split) Orientation() Orientation {
	return s.orientation
}

// SetOrientation changes the main axis. Sizes are recomputed on the
// next layout pass.
func (s *Split) SetOrientation(o Orientation) {
	s.orientation = o
}

// Spacing returns the gap between adjacent visible items.
func (s *Split) Spacing() int {
	return s.spacing
}

// SetSpacing sets the gap between adjacent visible items.
func (s *Split) SetSpacing(spacing int) {
	if spacing < 0 {
		spacing = 0
	}
	s.spacing = spacing
}

// Len returns the number of items, hidden included.
func (s *Split) Len() int {
	return len(s.items)
}

// ItemAt returns the item at index i, or nil when out of range.
func (s *Split) ItemAt(i int) *SplitItem {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return s.items[i]
}

// Each calls fn for every item in order.
func (s *Split) Each(fn func(i int, item *SplitItem)) {
	for i, item := range s.items {
		fn(i, item)
	}
}

// InsertAt inserts an item at index i, clamping i into range.
func (s *Split) InsertAt(i int, item *SplitItem) {
	if item == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.items) {
		i = len(s.items)
	}
	s.items = append(s.items, nil)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
}

// Append adds an item at the end.
func (s *Split) Append(item *SplitItem) {
	s.InsertAt(len(s.items), item)
}

// Remove deletes the item at index i. Returns false when out of range.
func (s *Split) Remove(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Move relocates the item at index from so it ends up at index to.
// Indices out of range make this a no-op.
func (s *Split) Move(from, to int) bool {
	if from < 0 || from >= len(s.items) || to < 0 || to >= len(s.items) || from == to {
		return false
	}
	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)
	s.items = append(s.items, nil)
	copy(s.items[to+1:], s.items[to:])
	s.items[to] = item
	return true
}

// SetItemConstraints pins the main-axis extent of item i into
// [min, max]. max <= 0 leaves the maximum unconstrained.
func (s *Split) SetItemConstraints(i, min, max int) {
	item := s.ItemAt(i)
	if item == nil {
		return
	}
	if min < 0 {
		min = 0
	}
	item.MinSize = min
	item.MaxSize = max
}

// SetHandlePosition places the boundary after item index at pos,
// measured in cells from the split origin on the main axis. The item's
// extent becomes pos minus the end of the previous visible item (plus
// spacing). Hidden items have no boundary.
func (s *Split) SetHandlePosition(index, pos int) {
	item := s.ItemAt(index)
	if item == nil || item.Hidden {
		return
	}
	start := 0
	for i := 0; i < index; i++ {
		if s.items[i].Hidden {
			continue
		}
		start += s.items[i].size + s.spacing
	}
	size := pos - start
	if size < 0 {
		size = 0
	}
	item.size = clampItemSize(item, size)
}

// HandleAt returns the boundary index under the given screen point, or
// -1. Boundaries are grabbable only when spacing is at least one cell:
// the gap band after item i is handle i.
func (s *Split) HandleAt(x, y int) int {
	if s.spacing < 1 || !s.bounds.Contains(x, y) {
		return -1
	}
	pos := s.mainPos(x, y) - s.mainPos(s.bounds.X, s.bounds.Y)
	offset := 0
	last := s.lastVisible()
	for i, item := range s.items {
		if item.Hidden {
			continue
		}
		offset += item.size
		if i == last {
			break
		}
		if pos >= offset && pos < offset+s.spacing {
			return i
		}
		offset += s.spacing
	}
	return -1
}

// Measure sums visible item minimums along the main axis.
func (s *Split) Measure(constraints Constraints) Size {
	totalMin := 0
	visible := 0
	for _, item := range s.items {
		if item.Hidden {
			continue
		}
		visible++
		totalMin += item.MinSize
	}
	if visible > 1 {
		totalMin += s.spacing * (visible - 1)
	}
	if s.orientation == Vertical {
		return constraints.Constrain(Size{Width: constraints.MaxWidth, Height: totalMin})
	}
	return constraints.Constrain(Size{Width: totalMin, Height: constraints.MaxHeight})
}

// Layout distributes the main axis across visible items, honoring
// per-item constraints, and positions child widgets.
func (s *Split) Layout(bounds Rect) {
	s.bounds = bounds
	s.itemBounds = make([]Rect, len(s.items))

	visible := s.visibleIndices()
	if len(visible) == 0 {
		return
	}

	avail := s.mainExtent(bounds) - s.spacing*(len(visible)-1)
	if avail < 0 {
		avail = 0
	}
	s.fitSizes(visible, avail)

	offset := 0
	for n, i := range visible {
		item := s.items[i]
		var b Rect
		if s.orientation == Vertical {
			b = Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: item.size}
		} else {
			b = Rect{X: bounds.X + offset, Y: bounds.Y, Width: item.size, Height: bounds.Height}
		}
		s.itemBounds[i] = b
		if item.Widget != nil {
			item.Widget.Layout(b)
		}
		offset += item.size
		if n < len(visible)-1 {
			offset += s.spacing
		}
	}
}

// fitSizes reconciles stored sizes with the available extent: clamp to
// per-item constraints, hand surplus to items that have no size yet,
// then spread any remainder across items whose constraints still allow
// adjustment.
func (s *Split) fitSizes(visible []int, avail int) {
	if len(visible) == 0 {
		return
	}

	total := 0
	var unsized []int
	for _, i := range visible {
		item := s.items[i]
		item.size = clampItemSize(item, item.size)
		if item.size == 0 && item.MinSize == 0 {
			unsized = append(unsized, i)
		}
		total += item.size
	}

	// Items without an assigned size split the leftover evenly.
	if len(unsized) > 0 && avail > total {
		share := (avail - total) / len(unsized)
		for _, i := range unsized {
			item := s.items[i]
			item.size = clampItemSize(item, share)
			total += item.size
		}
	}

	// Spread the remainder one cell at a time so rounding never
	// overflows the container.
	for total != avail {
		adjusted := false
		for _, i := range visible {
			if total == avail {
				break
			}
			item := s.items[i]
			if total < avail {
				if item.MaxSize > 0 && item.size >= item.MaxSize {
					continue
				}
				item.size++
				total++
				adjusted = true
			} else {
				if item.size <= item.MinSize || item.size == 0 {
					continue
				}
				item.size--
				total--
				adjusted = true
			}
		}
		if !adjusted {
			break
		}
	}
}

// Bounds returns the split's assigned bounds.
func (s *Split) Bounds() Rect {
	return s.bounds
}

// ItemBounds returns the laid-out bounds of item i.
func (s *Split) ItemBounds(i int) Rect {
	if i < 0 || i >= len(s.itemBounds) {
		return ZeroRect
	}
	return s.itemBounds[i]
}

// Render draws visible children and gap separators.
func (s *Split) Render(ctx RenderContext) {
	for i, item := range s.items {
		if item.Hidden || item.Widget == nil {
			continue
		}
		item.Widget.Render(ctx.Sub(s.itemBounds[i]))
	}
	if s.spacing > 0 {
		s.renderSeparators(ctx)
	}
}

func (s *Split) renderSeparators(ctx RenderContext) {
	style := ctx.Theme.Border
	visible := s.visibleIndices()
	for n, i := range visible {
		if n == len(visible)-1 {
			break
		}
		b := s.itemBounds[i]
		if s.orientation == Vertical {
			for gy := 0; gy < s.spacing; gy++ {
				y := b.Y + b.Height + gy
				for x := s.bounds.X; x < s.bounds.X+s.bounds.Width; x++ {
					ctx.Buffer.Set(x, y, '─', style)
				}
			}
		} else {
			for gx := 0; gx < s.spacing; gx++ {
				x := b.X + b.Width + gx
				for y := s.bounds.Y; y < s.bounds.Y+s.bounds.Height; y++ {
					ctx.Buffer.Set(x, y, '│', style)
				}
			}
		}
	}
}

// HandleMessage implements mouse handle dragging, then forwards other
// messages to visible children; first handler wins.
func (s *Split) HandleMessage(msg Message) HandleResult {
	if mouse, ok := msg.(MouseMsg); ok {
		if result := s.handleMouse(mouse); result.Handled {
			return result
		}
	}
	for _, item := range s.items {
		if item.Hidden || item.Widget == nil {
			continue
		}
		result := item.Widget.HandleMessage(msg)
		if result.Handled {
			return result
		}
	}
	return Unhandled()
}

func (s *Split) handleMouse(mouse MouseMsg) HandleResult {
	switch mouse.Action {
	case MousePress:
		if mouse.Button != MouseLeft {
			return Unhandled()
		}
		if h := s.HandleAt(mouse.X, mouse.Y); h >= 0 {
			s.dragHandle = h
			return Handled()
		}
	case MouseMove:
		if s.dragHandle >= 0 {
			pos := s.mainPos(mouse.X, mouse.Y) - s.mainPos(s.bounds.X, s.bounds.Y)
			s.dragBoundary(s.dragHandle, pos)
			s.Layout(s.bounds)
			return Handled()
		}
	case MouseRelease:
		if s.dragHandle >= 0 {
			s.dragHandle = -1
			return Handled()
		}
	}
	return Unhandled()
}

// dragBoundary moves handle h to pos, growing one neighbor at the
// expense of the other while both stay within their constraints.
func (s *Split) dragBoundary(h, pos int) {
	next := s.nextVisible(h + 1)
	if next < 0 {
		return
	}
	item := s.ItemAt(h)
	if item == nil || item.Hidden {
		return
	}
	start := 0
	for i := 0; i < h; i++ {
		if s.items[i].Hidden {
			continue
		}
		start += s.items[i].size + s.spacing
	}
	pair := item.size + s.items[next].size
	size := clampItemSize(item, pos-start)
	neighbor := clampItemSize(s.items[next], pair-size)
	item.size = pair - neighbor
	s.items[next].size = neighbor
}

func (s *Split) visibleIndices() []int {
	idx := make([]int, 0, len(s.items))
	for i, item := range s.items {
		if !item.Hidden {
			idx = append(idx, i)
		}
	}
	return idx
}

func (s *Split) lastVisible() int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if !s.items[i].Hidden {
			return i
		}
	}
	return -1
}

func (s *Split) nextVisible(from int) int {
	for i := from; i < len(s.items); i++ {
		if !s.items[i].Hidden {
			return i
		}
	}
	return -1
}

func (s *Split) mainExtent(r Rect) int {
	if s.orientation == Vertical {
		return r.Height
	}
	return r.Width
}

func (s *Split) mainPos(x, y int) int {
	if s.orientation == Vertical {
		return y
	}
	return x
}

func clampItemSize(item *SplitItem, size int) int {
	if size < item.MinSize {
		size = item.MinSize
	}
	if item.MaxSize > 0 && size > item.MaxSize {
		size = item.MaxSize
	}
	if size < 0 {
		size = 0
	}
	return size
}
