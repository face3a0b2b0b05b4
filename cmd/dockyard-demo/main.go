// Command dockyard-demo runs a three-part dock container in the
// terminal: a file outline, a preview pane, and a live activity log
// fed by the telemetry hub. Layout state persists across runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/dockyard/pkg/config"
	"github.com/odvcencio/dockyard/pkg/logging"
	"github.com/odvcencio/dockyard/pkg/state"
	"github.com/odvcencio/dockyard/pkg/storage"
	"github.com/odvcencio/dockyard/pkg/telemetry"
	"github.com/odvcencio/dockyard/pkg/terminal"
	"github.com/odvcencio/dockyard/pkg/ui/command"
	"github.com/odvcencio/dockyard/pkg/ui/dock"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
	"github.com/odvcencio/dockyard/pkg/ui/theme"
	"github.com/odvcencio/dockyard/pkg/ui/widgets"

	tcellbackend "github.com/odvcencio/dockyard/pkg/ui/backend/tcell"
	uiterminal "github.com/odvcencio/dockyard/pkg/ui/terminal"
)

const helpText = `# dockyard-demo

A composable panel layout demo. Three parts live in a vertical dock:
drag headers to reorder, click headers to collapse, drag the gaps to
resize, right-click a header for the visibility menu.

## Key bindings

| Key | Action |
| --- | ------ |
| q   | quit |
| s   | save the current layout as the "default" snapshot |
| r   | restore the "default" snapshot |
| Tab | focus next part |

Layout state is saved automatically and restored on the next run.
`

const outlineText = `▸ cmd/
▾ pkg/
  ▾ ui/
    ▸ backend/
    ▸ command/
    ▾ dock/
      container.go
      layout.go
      part.go
      state.go
    ▸ runtime/
    ▸ widgets/
  ▸ storage/
  ▸ telemetry/`

const previewText = `Drag a part header onto another header to reorder.
Click a header to collapse the part to its title row.
Drag the gap between two parts to resize them.

The activity pane on the bottom tails the telemetry hub,
so every collapse, reorder, and save shows up live.`

func main() {
	configPath := flag.String("config", "", "path to a dockyard config file")
	showHelp := flag.Bool("help", false, "show help")
	out := terminal.New()
	flag.Usage = func() {
		_ = out.Markdown(helpText)
		out.Dim("flags:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showHelp {
		flag.Usage()
		return
	}

	if err := run(*configPath, out); err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
}

func run(configPath string, out *terminal.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sessionID := ulid.Make().String()
	logger, err := logging.NewLogger(cfg.Logging.Dir, sessionID)
	if err != nil {
		out.Warn("session log unavailable: %v", err)
	} else {
		logger.SetMinLevel(logging.Level(cfg.Logging.Level))
		defer logger.Close()
	}

	var store *storage.Store
	if !cfg.Persistence.Disabled {
		spin := terminal.NewSpinner(os.Stdout, "opening layout store")
		spin.Start()
		store, err = storage.New(cfg.Persistence.DatabasePath)
		if err != nil {
			spin.StopWithError(fmt.Sprintf("layout store unavailable: %v", err))
			logger.Warn(logging.CategoryApp, "store_unavailable", "running without persistence", map[string]any{
				"error": err.Error(),
			})
		} else {
			spin.Stop()
			defer store.Close()
		}
	}

	hub := telemetry.NewHub()
	defer hub.Close()
	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	commands := command.NewRegistry()
	menus := command.NewMenuRegistry()
	th := theme.ByName(cfg.Theme.Name)

	backend, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	status := widgets.NewStatusBar().WithStyle(th.StatusBar)
	status.SetLeft("dockyard-demo")
	status.SetRight("q quit · s/r snapshot")

	activity := widgets.NewLogView().WithStyle(th.Surface)

	var app *runtime.App
	presenter := &lazyPresenter{commands: commands, menus: menus}

	container := dock.NewContainer(dock.ContainerConfig{
		Name:              "dockyard-demo",
		Orientation:       runtime.Vertical,
		Commands:          commands,
		Menus:             menus,
		Presenter:         presenter,
		Telemetry:         hub,
		Logger:            logger,
		HeaderHeight:      cfg.Layout.HeaderHeight,
		Spacing:           cfg.Layout.Spacing,
		MinPartSize:       cfg.Layout.MinPartSize,
		AnimationDuration: cfg.Animation.Duration,
		AnimationDisabled: cfg.Animation.Disabled,
	})
	defer container.Dispose()

	container.AddWidget("outline", widgets.NewText(outlineText), dock.Options{
		Title:  "Outline",
		Weight: 0.25,
	})
	container.AddWidget("preview", widgets.NewText(previewText), dock.Options{
		Title:  "Preview",
		Weight: 0.5,
	})
	container.AddWidget("activity", activity, dock.Options{
		Title:  "Activity",
		Weight: 0.25,
	})

	restored := false
	if store != nil {
		restored, err = container.LoadFrom(store)
		if err != nil {
			logger.Warn(logging.CategoryState, "restore_failed", "stored layout unreadable", map[string]any{
				"error": err.Error(),
			})
		}
	}

	container.OnStateChanged(func(trigger string) {
		visible := 0
		for _, p := range container.Parts() {
			if !p.Hidden() {
				visible++
			}
		}
		status.SetLeft(fmt.Sprintf("dockyard-demo · %d/%d parts", visible, len(container.Parts())))
	})

	root := runtime.VBox(
		runtime.Expanded(container),
		runtime.Fixed(status),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	update := func(app *runtime.App, msg runtime.Message) bool {
		dirty := false
		switch m := msg.(type) {
		case runtime.TickMsg:
			if drainEvents(events, activity) {
				dirty = true
			}
		case runtime.KeyMsg:
			switch {
			case m.Rune == 'q' || m.Key == uiterminal.KeyCtrlC:
				cancel()
				return false
			case m.Rune == 's' && store != nil:
				if err := container.SaveSnapshot(store, "default"); err != nil {
					status.SetLeft("snapshot save failed")
				} else {
					status.SetLeft("snapshot saved")
				}
				return true
			case m.Rune == 'r' && store != nil:
				if err := container.RestoreSnapshot(store, "default"); err != nil {
					status.SetLeft("no saved snapshot")
				} else {
					status.SetLeft("snapshot restored")
				}
				return true
			}
		}
		if runtime.DefaultUpdate(app, msg) {
			dirty = true
		}
		return dirty
	}

	app = runtime.NewApp(runtime.AppConfig{
		Backend:  backend,
		Root:     root,
		Theme:    th,
		Update:   update,
		TickRate: 33 * time.Millisecond,
		CommandHandler: func(cmd runtime.Command) bool {
			switch c := cmd.(type) {
			case runtime.ExecuteCommand:
				return commands.Execute(c.ID)
			case runtime.UpdateStatus:
				status.SetLeft(c.Text)
				return true
			}
			return false
		},
	})
	presenter.app = app

	// Proportional sizes apply on the first layout pass; a restored
	// layout already queued its own sizing through the gate.
	if !restored {
		container.SetPartSizes()
	}

	logger.Info(logging.CategoryApp, "started", "demo started", map[string]any{
		"session":  sessionID,
		"restored": restored,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		err := app.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if store != nil && !cfg.Persistence.Disabled {
		saver := state.New(container, store, state.Config{
			Interval: cfg.Persistence.AutosaveInterval,
			Logger:   logger,
		})
		g.Go(func() error {
			return saver.Run(gctx)
		})
	}

	if configPath != "" {
		watcher, err := config.Watch(configPath)
		if err != nil {
			logger.Warn(logging.CategoryConfig, "watch_failed", "config reloads disabled", map[string]any{
				"error": err.Error(),
			})
		} else {
			g.Go(func() error {
				defer watcher.Close()
				for {
					select {
					case <-gctx.Done():
						return nil
					case next, ok := <-watcher.Reloads():
						if !ok {
							return nil
						}
						app.SetTheme(theme.ByName(next.Theme.Name))
						app.Post(runtime.TickMsg{Time: time.Now()})
						logger.Info(logging.CategoryConfig, "reloaded", "config reloaded", nil)
					}
				}
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if store != nil {
		out.Success("layout saved")
	}
	return nil
}

// drainEvents moves pending telemetry events into the activity pane.
func drainEvents(events <-chan telemetry.Event, activity *widgets.LogView) bool {
	drained := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return drained
			}
			activity.Append(formatEvent(ev))
			drained = true
		default:
			return drained
		}
	}
}

func formatEvent(ev telemetry.Event) string {
	line := fmt.Sprintf("%s %s", ev.Timestamp.Format("15:04:05"), ev.Type)
	if ev.PartID != "" {
		line += " " + ev.PartID
	}
	return line
}

// lazyPresenter defers to the screen that only exists once the app
// loop is running.
type lazyPresenter struct {
	app      *runtime.App
	commands *command.Registry
	menus    *command.MenuRegistry
}

func (p *lazyPresenter) Present(req dock.MenuRequest) {
	if p.app == nil {
		return
	}
	screen := p.app.Screen()
	if screen == nil {
		return
	}
	dock.NewOverlayPresenter(screen, p.commands, p.menus).Present(req)
}
