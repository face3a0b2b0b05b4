// Package widgets provides the reusable building blocks docks are
// assembled from: panels, labels, lists, text areas, and the embedding
// bases that give them default widget behavior.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// Base supplies default implementations of the Widget surface. Embed
// it and override what the widget actually needs.
type Base struct {
	bounds      runtime.Rect
	focused     bool
	needsRender bool
}

// Layout records the assigned bounds, invalidating on change.
func (b *Base) Layout(bounds runtime.Rect) {
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the bounds from the last Layout.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage ignores all messages.
func (b *Base) HandleMessage(runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus reports false; embed FocusableBase for focusable widgets.
func (b *Base) CanFocus() bool {
	return false
}

// Focus records focus gain.
func (b *Base) Focus() {
	b.focused = true
}

// Blur records focus loss.
func (b *Base) Blur() {
	b.focused = false
}

// IsFocused reports the recorded focus state.
func (b *Base) IsFocused() bool {
	return b.focused
}

// Invalidate requests a repaint on the next frame.
func (b *Base) Invalidate() {
	b.needsRender = true
}

// NeedsRender reports whether Invalidate was called since the last
// ClearInvalidation.
func (b *Base) NeedsRender() bool {
	return b.needsRender
}

// ClearInvalidation acknowledges a completed repaint.
func (b *Base) ClearInvalidation() {
	b.needsRender = false
}

// FocusableBase is Base with focus participation enabled.
type FocusableBase struct {
	Base
}

// CanFocus reports true.
func (f *FocusableBase) CanFocus() bool {
	return true
}

// truncate shortens s to at most maxWidth display cells, appending an
// ellipsis when it had to cut. Widths come from runewidth so CJK and
// other wide runes count as two cells.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// padRight extends s with spaces to the given display width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
