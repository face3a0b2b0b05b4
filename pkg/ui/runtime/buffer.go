package runtime

import "github.com/odvcencio/dockyard/pkg/ui/backend"

// Cell is one terminal cell: a rune plus its style.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is the off-screen cell grid widgets render into. The screen
// diffs it against the terminal on flush, so the buffer tracks which
// cells changed since the last ClearDirty along with their bounding
// box.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer allocates a w×h buffer with every cell clean.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize reallocates the grid, keeping the overlapping content. The
// whole buffer goes dirty since the terminal must be repainted anyway.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	cells := make([]Cell, w*h)
	for y := 0; y < min(h, b.height); y++ {
		for x := 0; x < min(w, b.width); x++ {
			cells[y*w+x] = b.cells[y*b.width+x]
		}
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear blanks the whole buffer.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// ClearRect blanks one region.
func (b *Buffer) ClearRect(r Rect) {
	b.Fill(r, ' ', backend.DefaultStyle())
}

// Get reads the cell at (x, y); out-of-bounds reads return a blank.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell. Out-of-bounds writes are dropped; writes that
// do not change the cell leave it clean.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.put(x, y, Cell{Rune: r, Style: s})
}

// SetString writes s left to right from (x, y), one cell per rune,
// clipped to the row.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) {
	if y < 0 || y >= b.height {
		return
	}
	col := x
	for _, r := range s {
		if col >= b.width {
			break
		}
		if col >= 0 {
			b.put(col, y, Cell{Rune: r, Style: style})
		}
		col++
	}
}

// Fill paints a clipped region with one rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)

	cell := Cell{Rune: ch, Style: s}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.put(x, y, cell)
		}
	}
}

// put writes a cell that is known in-bounds, dirtying it on change.
func (b *Buffer) put(x, y int, cell Cell) {
	idx := y*b.width + x
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++
	b.growDirtyRect(x, y)
}

// DrawBox outlines r with square box-drawing corners.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	b.drawBorder(r, s, [4]rune{'┌', '┐', '└', '┘'})
}

// DrawRoundedBox outlines r with rounded corners.
func (b *Buffer) DrawRoundedBox(r Rect, s backend.Style) {
	b.drawBorder(r, s, [4]rune{'╭', '╮', '╰', '╯'})
}

func (b *Buffer) drawBorder(r Rect, s backend.Style, corners [4]rune) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	b.Set(r.X, r.Y, corners[0], s)
	b.Set(right, r.Y, corners[1], s)
	b.Set(r.X, bottom, corners[2], s)
	b.Set(right, bottom, corners[3], s)

	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, bottom, '─', s)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(right, y, '│', s)
	}
}

// SubBuffer is a translated, clipped window onto a parent buffer.
// Widgets render through one so their coordinates stay local.
type SubBuffer struct {
	parent *Buffer
	bounds Rect
}

// Sub returns a view restricted to r.
func (b *Buffer) Sub(r Rect) *SubBuffer {
	return &SubBuffer{parent: b, bounds: r}
}

// Size returns the view dimensions.
func (s *SubBuffer) Size() (w, h int) {
	return s.bounds.Width, s.bounds.Height
}

// Set writes one cell in view coordinates.
func (s *SubBuffer) Set(x, y int, r rune, style backend.Style) {
	if x < 0 || x >= s.bounds.Width || y < 0 || y >= s.bounds.Height {
		return
	}
	s.parent.Set(s.bounds.X+x, s.bounds.Y+y, r, style)
}

// SetString writes a string in view coordinates, one cell per rune.
func (s *SubBuffer) SetString(x, y int, str string, style backend.Style) {
	if y < 0 || y >= s.bounds.Height {
		return
	}
	col := x
	for _, r := range str {
		if col >= s.bounds.Width {
			break
		}
		if col >= 0 {
			s.parent.Set(s.bounds.X+col, s.bounds.Y+y, r, style)
		}
		col++
	}
}

// Fill paints a region in view coordinates.
func (s *SubBuffer) Fill(r Rect, ch rune, style backend.Style) {
	clipped := r.Intersection(Rect{0, 0, s.bounds.Width, s.bounds.Height})
	if clipped.Width == 0 || clipped.Height == 0 {
		return
	}
	s.parent.Fill(Rect{
		X:      s.bounds.X + clipped.X,
		Y:      s.bounds.Y + clipped.Y,
		Width:  clipped.Width,
		Height: clipped.Height,
	}, ch, style)
}

// Clear blanks the view.
func (s *SubBuffer) Clear() {
	s.Fill(Rect{0, 0, s.bounds.Width, s.bounds.Height}, ' ', backend.DefaultStyle())
}

// growDirtyRect widens the dirty bounding box to include (x, y).
func (b *Buffer) growDirtyRect(x, y int) {
	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	if x < b.dirtyRect.X {
		b.dirtyRect.Width += b.dirtyRect.X - x
		b.dirtyRect.X = x
	} else if x >= b.dirtyRect.X+b.dirtyRect.Width {
		b.dirtyRect.Width = x - b.dirtyRect.X + 1
	}
	if y < b.dirtyRect.Y {
		b.dirtyRect.Height += b.dirtyRect.Y - y
		b.dirtyRect.Y = y
	} else if y >= b.dirtyRect.Y+b.dirtyRect.Height {
		b.dirtyRect.Height = y - b.dirtyRect.Y + 1
	}
}

// MarkAllDirty flags every cell for repaint.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = Rect{X: 0, Y: 0, Width: b.width, Height: b.height}
}

// ClearDirty marks every cell clean.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount reports how many cells changed.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of changed cells; empty when
// nothing is dirty.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// IsCellDirty reports whether the cell at (x, y) changed.
func (b *Buffer) IsCellDirty(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.dirty[y*b.width+x]
}

// ForEachDirtyCell visits every changed cell. Sparse changes walk only
// the dirty bounding box.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	scan := b.dirtyRect
	if b.dirtyCount > b.width*b.height/2 {
		scan = Rect{Width: b.width, Height: b.height}
	}
	for y := scan.Y; y < scan.Y+scan.Height && y < b.height; y++ {
		for x := scan.X; x < scan.X+scan.Width && x < b.width; x++ {
			idx := y*b.width + x
			if b.dirty[idx] {
				fn(x, y, b.cells[idx])
			}
		}
	}
}
