package dock

import "github.com/odvcencio/dockyard/pkg/ui/runtime"

// Optional capabilities a wrapped widget may implement. They are probed
// with type assertions only; widgets without them get defaults.

// ToolbarProvider supplies a widget rendered at the right edge of the
// part header.
type ToolbarProvider interface {
	Toolbar() runtime.Widget
}

// Describable supplies a serialized descriptor used as the part's
// content-addressable persistence key instead of the widget id.
type Describable interface {
	Descriptor() string
}

// MinSizer overrides the minimum content size used when fitting the
// part on the container's main axis.
type MinSizer interface {
	MinContentSize() runtime.Size
}
