package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/backend/sim"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

type pingCommand struct{}

func (pingCommand) isCommand() {}

// keymapWidget maps key runes to commands and reports layout passes on
// a channel so tests can synchronize with the event loop.
type keymapWidget struct {
	keys    map[rune]Command
	layouts chan Rect
	mark    rune
}

func (w *keymapWidget) Measure(c Constraints) Size { return c.MaxSize() }

func (w *keymapWidget) Layout(bounds Rect) {
	if w.layouts == nil {
		return
	}
	select {
	case w.layouts <- bounds:
	default:
	}
}

func (w *keymapWidget) Render(ctx RenderContext) {
	if w.mark != 0 && ctx.Buffer != nil {
		ctx.Buffer.Set(ctx.Bounds.X, ctx.Bounds.Y, w.mark, backend.DefaultStyle())
	}
}

func (w *keymapWidget) HandleMessage(msg Message) HandleResult {
	key, ok := msg.(KeyMsg)
	if !ok {
		return Unhandled()
	}
	if cmd, ok := w.keys[key.Rune]; ok {
		return WithCommand(cmd)
	}
	return Unhandled()
}

func startApp(t *testing.T, app *App) chan error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	deadline := time.After(500 * time.Millisecond)
	for app.Screen() == nil {
		select {
		case <-deadline:
			t.Fatal("screen did not initialize in time")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	return done
}

func TestApp_QuitCommandStopsRun(t *testing.T) {
	app := NewApp(AppConfig{
		Backend: sim.New(5, 3),
		Root:    &keymapWidget{keys: map[rune]Command{'q': Quit{}}, mark: 'X'},
	})
	done := startApp(t, app)

	app.Post(KeyMsg{Key: terminal.KeyRune, Rune: 'q'})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after Quit", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Run kept going after Quit")
	}
}

func TestApp_UnknownCommandsReachHandler(t *testing.T) {
	w := &keymapWidget{keys: map[rune]Command{'c': pingCommand{}, 'q': Quit{}}, mark: 'X'}
	got := make(chan struct{}, 1)
	app := NewApp(AppConfig{
		Backend: sim.New(5, 3),
		Root:    w,
		CommandHandler: func(cmd Command) bool {
			if _, ok := cmd.(pingCommand); ok {
				got <- struct{}{}
				return true
			}
			return false
		},
	})
	done := startApp(t, app)

	app.Post(KeyMsg{Key: terminal.KeyRune, Rune: 'c'})
	select {
	case <-got:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("command never reached the handler")
	}

	app.Post(KeyMsg{Key: terminal.KeyRune, Rune: 'q'})
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestApp_ResizeRelaysOutRoot(t *testing.T) {
	layouts := make(chan Rect, 4)
	w := &keymapWidget{
		keys:    map[rune]Command{'q': Quit{}},
		layouts: layouts,
		mark:    'X',
	}
	app := NewApp(AppConfig{Backend: sim.New(5, 3), Root: w})
	done := startApp(t, app)

	// Drop the initial layout passes, then resize.
	for {
		select {
		case <-layouts:
			continue
		default:
		}
		break
	}
	app.Post(ResizeMsg{Width: 12, Height: 7})

	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case bounds := <-layouts:
			if bounds.Width == 12 && bounds.Height == 7 {
				app.Post(KeyMsg{Key: terminal.KeyRune, Rune: 'q'})
				if err := <-done; err != nil {
					t.Fatalf("Run returned %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("resized layout never observed")
		}
	}
}
