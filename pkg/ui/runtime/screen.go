package runtime

import "github.com/odvcencio/dockyard/pkg/ui/theme"

// Layer is one stratum of the modal stack: a widget tree plus the
// focus scope that traps Tab traversal inside it.
type Layer struct {
	Root       Widget
	FocusScope *FocusScope
	Modal      bool
}

// Screen owns the layer stack and the frame buffer. The base layer is
// the application root; overlays such as context menus push layers on
// top of it.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	theme         *theme.Theme
}

// NewScreen builds a screen of the given size.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize grows or shrinks the buffer and relays out every layer.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)

	bounds := Rect{0, 0, w, h}
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(bounds)
		}
	}
}

// Buffer exposes the frame buffer for flushing.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the active theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme swaps the active theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	s.theme = th
}

// SetRoot installs the base layer's widget tree, creating the base
// layer on first use, and lays it out at full screen size.
func (s *Screen) SetRoot(root Widget) {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{
			Root:       root,
			FocusScope: NewFocusScope(),
		})
	} else {
		s.layers[0].Root = root
	}
	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// Root returns the base layer's widget tree.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer stacks an overlay. Modal overlays swallow input instead of
// letting unhandled messages reach the layers beneath.
func (s *Screen) PushLayer(root Widget, modal bool) {
	s.layers = append(s.layers, &Layer{
		Root:       root,
		FocusScope: NewFocusScope(),
		Modal:      modal,
	})
	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
	}
}

// PopLayer removes the top overlay. The base layer never pops.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	top := s.layers[len(s.layers)-1]
	top.FocusScope.ClearFocus()
	s.layers = s.layers[:len(s.layers)-1]
	return true
}

// TopLayer returns the topmost layer, or nil before SetRoot.
func (s *Screen) TopLayer() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// LayerCount reports the stack depth.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// FocusScope returns the top layer's focus scope.
func (s *Screen) FocusScope() *FocusScope {
	if top := s.TopLayer(); top != nil {
		return top.FocusScope
	}
	return nil
}

// Render repaints every layer bottom-up into the buffer. Only the top
// layer renders as focused.
func (s *Screen) Render() {
	s.buffer.Clear()

	ctx := RenderContext{
		Buffer: s.buffer,
		Theme:  s.theme,
		Bounds: Rect{0, 0, s.width, s.height},
	}
	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx.Focused = i == len(s.layers)-1
		layer.Root.Render(ctx)
	}
}

// HandleMessage offers the message to layers top-down. A modal layer
// stops the descent whether or not it handled the message. Commands
// the layer emits are applied as they surface.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}

		result := layer.Root.HandleMessage(msg)
		for _, cmd := range result.Commands {
			s.applyCommand(cmd)
		}
		if result.Handled {
			return result
		}
		if layer.Modal {
			break
		}
	}
	return Unhandled()
}

// applyCommand services the commands the screen owns; the rest bubble
// to the app.
func (s *Screen) applyCommand(cmd Command) {
	switch c := cmd.(type) {
	case FocusNext:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusNext()
		}
	case FocusPrev:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusPrev()
		}
	case PopOverlay:
		s.PopLayer()
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
	}
}

// RenderContext carries everything a widget needs while painting.
type RenderContext struct {
	Buffer  *Buffer
	Theme   *theme.Theme
	Focused bool
	Bounds  Rect
}

// Sub narrows the context to a child's bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	ctx.Bounds = bounds
	return ctx
}

// SubBuffer returns a buffer view clipped to the context bounds.
func (ctx RenderContext) SubBuffer() *SubBuffer {
	return ctx.Buffer.Sub(ctx.Bounds)
}
