package runtime

// HitGrid resolves a screen cell to the widget drawn there. Widgets
// register their bounds during layout; later registrations win, which
// matches paint order.
type HitGrid struct {
	width   int
	height  int
	cells   []int // index into targets, -1 for empty
	targets []Widget
}

// NewHitGrid builds a grid covering width×height cells.
func NewHitGrid(width, height int) *HitGrid {
	g := &HitGrid{}
	g.Resize(width, height)
	return g
}

// Resize changes the grid dimensions and drops all registrations.
func (g *HitGrid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	if width*height <= 0 {
		g.cells = nil
		g.targets = nil
		return
	}
	g.cells = make([]int, width*height)
	g.Clear()
}

// Clear empties the grid for the next layout pass.
func (g *HitGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = -1
	}
	g.targets = g.targets[:0]
}

// Add registers widget over bounds, clipped to the grid.
func (g *HitGrid) Add(widget Widget, bounds Rect) {
	if widget == nil || g.width <= 0 || g.height <= 0 {
		return
	}
	bounds = bounds.Intersection(Rect{Width: g.width, Height: g.height})
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	id := len(g.targets)
	g.targets = append(g.targets, widget)
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		row := y * g.width
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			g.cells[row+x] = id
		}
	}
}

// WidgetAt returns the widget registered at (x, y), or nil.
func (g *HitGrid) WidgetAt(x, y int) Widget {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	id := g.cells[y*g.width+x]
	if id < 0 || id >= len(g.targets) {
		return nil
	}
	return g.targets[id]
}
