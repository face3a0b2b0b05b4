package runtime

import (
	"testing"

	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

// paintWidget fills its bounds with one rune and records messages. It
// can be primed with commands to emit on any key press.
type paintWidget struct {
	char     rune
	bounds   Rect
	focused  bool
	handled  int
	commands []Command
}

func (m *paintWidget) Measure(Constraints) Size { return Size{Width: 10, Height: 5} }
func (m *paintWidget) Layout(bounds Rect)       { m.bounds = bounds }
func (m *paintWidget) Render(ctx RenderContext) {
	ch := m.char
	if ch == 0 {
		ch = 'X'
	}
	ctx.Buffer.Fill(m.bounds, ch, backend.DefaultStyle())
}
func (m *paintWidget) HandleMessage(msg Message) HandleResult {
	m.handled++
	if _, ok := msg.(KeyMsg); ok && len(m.commands) > 0 {
		return HandleResult{Handled: true, Commands: m.commands}
	}
	return Handled()
}
func (m *paintWidget) CanFocus() bool  { return true }
func (m *paintWidget) Focus()          { m.focused = true }
func (m *paintWidget) Blur()           { m.focused = false }
func (m *paintWidget) IsFocused() bool { return m.focused }

// passWidget counts messages but never handles them.
type passWidget struct {
	bounds  Rect
	handled int
}

func (m *passWidget) Measure(Constraints) Size { return Size{Width: 10, Height: 5} }
func (m *passWidget) Layout(bounds Rect)       { m.bounds = bounds }
func (m *passWidget) Render(RenderContext)     {}
func (m *passWidget) HandleMessage(Message) HandleResult {
	m.handled++
	return Unhandled()
}

func TestScreen_LayerStack(t *testing.T) {
	s := NewScreen(80, 24, nil)
	root := &paintWidget{}
	s.SetRoot(root)

	if s.LayerCount() != 1 {
		t.Fatalf("LayerCount = %d after SetRoot, want 1", s.LayerCount())
	}

	overlay := &paintWidget{}
	s.PushLayer(overlay, true)
	if s.LayerCount() != 2 {
		t.Fatalf("LayerCount = %d after push, want 2", s.LayerCount())
	}
	if top := s.TopLayer(); top == nil || top.Root != overlay {
		t.Error("top layer is not the pushed overlay")
	}

	if !s.PopLayer() {
		t.Error("PopLayer refused to remove the overlay")
	}
	if s.PopLayer() {
		t.Error("PopLayer removed the base layer")
	}
}

func TestScreen_ModalOverlayBlocksInput(t *testing.T) {
	s := NewScreen(80, 24, nil)
	root := &passWidget{}
	s.SetRoot(root)

	menu := &passWidget{}
	s.PushLayer(menu, true)

	s.HandleMessage(KeyMsg{Key: terminal.KeyEnter})

	if menu.handled != 1 {
		t.Errorf("overlay saw %d messages, want 1", menu.handled)
	}
	if root.handled != 0 {
		t.Errorf("message passed through a modal overlay (%d calls)", root.handled)
	}
}

func TestScreen_NonModalOverlayPassesInput(t *testing.T) {
	s := NewScreen(80, 24, nil)
	root := &passWidget{}
	s.SetRoot(root)

	toast := &passWidget{}
	s.PushLayer(toast, false)

	s.HandleMessage(KeyMsg{Key: terminal.KeyEnter})

	if toast.handled != 1 || root.handled != 1 {
		t.Errorf("overlay=%d root=%d messages, want 1 each", toast.handled, root.handled)
	}
}

func TestScreen_PopOverlayCommand(t *testing.T) {
	s := NewScreen(80, 24, nil)
	s.SetRoot(&paintWidget{})

	overlay := &paintWidget{commands: []Command{PopOverlay{}}}
	s.PushLayer(overlay, true)

	s.HandleMessage(KeyMsg{Key: terminal.KeyEscape})
	if s.LayerCount() != 1 {
		t.Errorf("LayerCount = %d after PopOverlay command, want 1", s.LayerCount())
	}
}

func TestScreen_PushOverlayCommand(t *testing.T) {
	s := NewScreen(80, 24, nil)
	menu := &paintWidget{}
	root := &paintWidget{commands: []Command{PushOverlay{Widget: menu, Modal: true}}}
	s.SetRoot(root)

	s.HandleMessage(KeyMsg{Key: terminal.KeyRune, Rune: '@'})
	if s.LayerCount() != 2 {
		t.Errorf("LayerCount = %d after PushOverlay command, want 2", s.LayerCount())
	}
}

func TestScreen_FocusCommands(t *testing.T) {
	s := NewScreen(80, 24, nil)
	root := &paintWidget{commands: []Command{FocusNext{}}}
	s.SetRoot(root)

	a := &paintWidget{}
	b := &paintWidget{}
	s.FocusScope().Register(a)
	s.FocusScope().Register(b)
	if !a.focused {
		t.Fatal("first registered widget not focused")
	}

	s.HandleMessage(KeyMsg{Key: terminal.KeyTab})
	if !b.focused {
		t.Error("FocusNext command did not advance focus")
	}

	root.commands = []Command{FocusPrev{}}
	s.HandleMessage(KeyMsg{Key: terminal.KeyTab, Shift: true})
	if !a.focused {
		t.Error("FocusPrev command did not move focus back")
	}
}

func TestScreen_RenderPaintsLayersBottomUp(t *testing.T) {
	s := NewScreen(20, 10, nil)
	root := &paintWidget{char: 'X'}
	s.SetRoot(root)

	s.Render()
	if got := s.Buffer().Get(0, 0).Rune; got != 'X' {
		t.Fatalf("base layer cell = %c, want X", got)
	}

	overlay := &paintWidget{char: 'O'}
	s.PushLayer(overlay, false)
	s.Render()
	if got := s.Buffer().Get(0, 0).Rune; got != 'O' {
		t.Errorf("overlay cell = %c, want O on top", got)
	}
}

func TestScreen_ResizeRelaysOutAllLayers(t *testing.T) {
	s := NewScreen(80, 24, nil)
	root := &paintWidget{}
	overlay := &paintWidget{}
	s.SetRoot(root)
	s.PushLayer(overlay, false)

	s.Resize(100, 30)

	if w, h := s.Size(); w != 100 || h != 30 {
		t.Fatalf("Size() = %d×%d, want 100×30", w, h)
	}
	for _, b := range []Rect{root.bounds, overlay.bounds} {
		if b.Width != 100 || b.Height != 30 {
			t.Errorf("layer bounds = %+v, want 100×30", b)
		}
	}
}

func TestScreen_NilRootLayerIsInert(t *testing.T) {
	s := NewScreen(80, 24, nil)
	s.layers = append(s.layers, &Layer{FocusScope: NewFocusScope()})

	s.Resize(100, 30)
	s.Render()
	if result := s.HandleMessage(KeyMsg{Key: terminal.KeyEnter}); result.Handled {
		t.Error("nil-root layer handled a message")
	}
}

func TestScreen_ThemeFallsBackToDefault(t *testing.T) {
	s := NewScreen(80, 24, nil)
	if s.Theme() == nil {
		t.Error("screen built without a theme has none")
	}
	s.SetTheme(nil)
	if s.Theme() != nil {
		t.Error("SetTheme(nil) did not clear the theme")
	}
}

func TestScreen_SetRoot(t *testing.T) {
	s := NewScreen(80, 24, nil)
	if s.Root() != nil || s.TopLayer() != nil || s.FocusScope() != nil {
		t.Fatal("fresh screen already has layers")
	}

	first := &paintWidget{}
	second := &paintWidget{}
	s.SetRoot(first)
	if s.FocusScope() == nil {
		t.Error("base layer has no focus scope")
	}
	s.SetRoot(second)
	if s.Root() != second {
		t.Error("SetRoot did not replace the root")
	}
	s.SetRoot(nil)
	if s.Root() != nil {
		t.Error("SetRoot(nil) left a root behind")
	}
}

func TestScreen_HandleMessageWithNoLayers(t *testing.T) {
	s := NewScreen(80, 24, nil)
	if result := s.HandleMessage(KeyMsg{Key: terminal.KeyEnter}); result.Handled {
		t.Error("empty screen handled a message")
	}
}

func TestRenderContext_Sub(t *testing.T) {
	buf := NewBuffer(100, 50)
	ctx := RenderContext{
		Buffer:  buf,
		Focused: true,
		Bounds:  Rect{0, 0, 100, 50},
	}

	sub := ctx.Sub(Rect{10, 10, 20, 20})
	if sub.Bounds != (Rect{10, 10, 20, 20}) {
		t.Errorf("sub bounds = %+v", sub.Bounds)
	}
	if sub.Buffer != buf || !sub.Focused {
		t.Error("sub context dropped buffer or focus flag")
	}
}

func TestRenderContext_SubBuffer(t *testing.T) {
	ctx := RenderContext{
		Buffer: NewBuffer(100, 50),
		Bounds: Rect{10, 10, 20, 20},
	}
	if w, h := ctx.SubBuffer().Size(); w != 20 || h != 20 {
		t.Errorf("SubBuffer size = %d×%d, want 20×20", w, h)
	}
}
