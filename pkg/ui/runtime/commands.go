package runtime

// Command is an intent bubbled from a widget to the app: quit, focus
// movement, overlay management, or an app-defined action. Widgets
// return commands from HandleMessage rather than acting directly.
type Command interface {
	isCommand()
}

// Quit asks the app to stop its run loop.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh forces a full repaint of every cell.
type Refresh struct{}

func (Refresh) isCommand() {}

// Cancel aborts the interaction in progress, typically on Escape.
type Cancel struct{}

func (Cancel) isCommand() {}

// FocusNext advances focus through the active focus scope.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev moves focus backwards through the active focus scope.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}

// PushOverlay stacks a widget above the current layers. Modal overlays
// swallow input destined for layers beneath them.
type PushOverlay struct {
	Widget Widget
	Modal  bool
}

func (PushOverlay) isCommand() {}

// PopOverlay dismisses the topmost overlay.
type PopOverlay struct{}

func (PopOverlay) isCommand() {}

// ScrollUp scrolls the focused scrollable by Lines.
type ScrollUp struct {
	Lines int
}

func (ScrollUp) isCommand() {}

// ScrollDown scrolls the focused scrollable by Lines.
type ScrollDown struct {
	Lines int
}

func (ScrollDown) isCommand() {}

// UpdateStatus replaces the status bar text.
type UpdateStatus struct {
	Text string
}

func (UpdateStatus) isCommand() {}

// ShowContextMenu opens a context menu anchored at a screen cell.
type ShowContextMenu struct {
	X, Y int
}

func (ShowContextMenu) isCommand() {}

// ExecuteCommand invokes a command registered with the container by
// ID. X and Y carry the screen point the request came from, when the
// trigger was a mouse interaction.
type ExecuteCommand struct {
	ID   string
	X, Y int
}

func (ExecuteCommand) isCommand() {}
