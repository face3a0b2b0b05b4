package runtime

import (
	"testing"
)

// TestCommands_ImplementsInterface verifies all command types compile
// and implement the Command interface via isCommand().
func TestCommands_ImplementsInterface(t *testing.T) {
	commands := []Command{
		Quit{},
		Refresh{},
		Cancel{},
		FocusNext{},
		FocusPrev{},
		PushOverlay{Widget: nil, Modal: false},
		PopOverlay{},
		ScrollUp{Lines: 5},
		ScrollDown{Lines: 10},
		UpdateStatus{Text: "status"},
		ShowContextMenu{X: 4, Y: 8},
		ExecuteCommand{ID: "main:toggle-visibility", X: 1, Y: 2},
	}

	for i, cmd := range commands {
		if cmd == nil {
			t.Errorf("Command %d is nil", i)
		}
	}
}

func TestPushOverlay(t *testing.T) {
	w := &testSimpleWidget{}
	cmd := PushOverlay{Widget: w, Modal: true}
	cmd.isCommand()

	if cmd.Widget != w {
		t.Error("PushOverlay.Widget should be the widget")
	}
	if !cmd.Modal {
		t.Error("PushOverlay.Modal should be true")
	}
}

func TestScrollCommands(t *testing.T) {
	up := ScrollUp{Lines: 5}
	if up.Lines != 5 {
		t.Errorf("ScrollUp.Lines = %d, want 5", up.Lines)
	}
	down := ScrollDown{Lines: 10}
	if down.Lines != 10 {
		t.Errorf("ScrollDown.Lines = %d, want 10", down.Lines)
	}
}

func TestExecuteCommand(t *testing.T) {
	cmd := ExecuteCommand{ID: "main:toggle-visibility-outline", X: 3, Y: 7}
	cmd.isCommand()

	if cmd.ID != "main:toggle-visibility-outline" {
		t.Errorf("ExecuteCommand.ID = %q", cmd.ID)
	}
	if cmd.X != 3 || cmd.Y != 7 {
		t.Errorf("ExecuteCommand anchor = (%d,%d), want (3,7)", cmd.X, cmd.Y)
	}
}

type testSimpleWidget struct{}

func (t *testSimpleWidget) Measure(c Constraints) Size { return Size{} }
func (t *testSimpleWidget) Layout(bounds Rect)         {}
func (t *testSimpleWidget) Render(ctx RenderContext)   {}
func (t *testSimpleWidget) HandleMessage(msg Message) HandleResult {
	return Unhandled()
}
