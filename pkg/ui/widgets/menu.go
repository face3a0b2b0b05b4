package widgets

import (
	"github.com/mattn/go-runewidth"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

// MenuItem is one selectable row in a menu.
type MenuItem struct {
	Label     string
	CommandID string
	Toggled   bool
	Disabled  bool
}

// Menu is a vertical list of commands, used as a context-menu overlay.
// Selecting an item emits ExecuteCommand for its command id and pops
// the overlay. Escape or a click outside the menu dismisses it.
type Menu struct {
	FocusableBase
	items    []MenuItem
	selected int
}

// NewMenu creates a menu from items.
func NewMenu(items []MenuItem) *Menu {
	m := &Menu{items: items, selected: -1}
	m.selectNext(0)
	return m
}

// Items returns the menu's items.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the selected index, -1 if none.
func (m *Menu) Selected() int {
	return m.selected
}

// selectNext moves selection to the first enabled item at or after idx,
// wrapping once.
func (m *Menu) selectNext(idx int) {
	n := len(m.items)
	for i := 0; i < n; i++ {
		j := (idx + i) % n
		if !m.items[j].Disabled {
			m.selected = j
			return
		}
	}
	m.selected = -1
}

// selectPrev moves selection to the first enabled item at or before idx,
// wrapping once.
func (m *Menu) selectPrev(idx int) {
	n := len(m.items)
	for i := 0; i < n; i++ {
		j := ((idx-i)%n + n) % n
		if !m.items[j].Disabled {
			m.selected = j
			return
		}
	}
	m.selected = -1
}

// Measure sizes the menu to its widest label plus toggle marker space.
func (m *Menu) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, item := range m.items {
		if w := runewidth.StringWidth(item.Label); w > width {
			width = w
		}
	}
	// Two cells of toggle marker, one cell padding each side.
	return constraints.Constrain(runtime.Size{
		Width:  width + 4,
		Height: len(m.items),
	})
}

// Render draws the menu rows.
func (m *Menu) Render(ctx runtime.RenderContext) {
	b := m.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	base := ctx.Theme.SurfaceRaised
	ctx.Buffer.Fill(b, ' ', base)

	for i, item := range m.items {
		if i >= b.Height {
			break
		}
		style := base
		switch {
		case item.Disabled:
			style = ctx.Theme.TextMuted
		case i == m.selected:
			style = ctx.Theme.Selection
		}

		marker := "  "
		if item.Toggled {
			marker = "✓ "
		}
		row := marker + truncate(item.Label, b.Width-3)
		ctx.Buffer.SetString(b.X+1, b.Y+i, padRight(row, b.Width-1), style)
	}
}

// HandleMessage processes keyboard navigation and mouse clicks.
func (m *Menu) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch msg := msg.(type) {
	case runtime.KeyMsg:
		return m.handleKey(msg)
	case runtime.MouseMsg:
		return m.handleMouse(msg)
	}
	return runtime.Unhandled()
}

func (m *Menu) handleKey(key runtime.KeyMsg) runtime.HandleResult {
	switch key.Key {
	case terminal.KeyUp:
		if m.selected >= 0 {
			m.selectPrev(m.selected - 1)
		}
		return runtime.Handled()
	case terminal.KeyDown:
		if m.selected >= 0 {
			m.selectNext(m.selected + 1)
		}
		return runtime.Handled()
	case terminal.KeyEnter:
		return m.activate(m.selected)
	case terminal.KeyEscape:
		return runtime.WithCommand(runtime.PopOverlay{})
	}
	return runtime.Unhandled()
}

func (m *Menu) handleMouse(mouse runtime.MouseMsg) runtime.HandleResult {
	if mouse.Action != runtime.MousePress || mouse.Button != runtime.MouseLeft {
		return runtime.Unhandled()
	}
	if !m.bounds.Contains(mouse.X, mouse.Y) {
		// Outside click dismisses the menu.
		return runtime.WithCommand(runtime.PopOverlay{})
	}
	return m.activate(mouse.Y - m.bounds.Y)
}

func (m *Menu) activate(idx int) runtime.HandleResult {
	if idx < 0 || idx >= len(m.items) || m.items[idx].Disabled {
		return runtime.Handled()
	}
	m.selected = idx
	return runtime.WithCommands(
		runtime.ExecuteCommand{ID: m.items[idx].CommandID},
		runtime.PopOverlay{},
	)
}
