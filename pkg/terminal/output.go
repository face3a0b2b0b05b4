// Package terminal provides styled plain-terminal output for the parts
// of dockyard that run outside the TUI: startup banners, help text,
// errors, and key binding listings. No alternate screen, no event loop,
// just print.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Writer provides styled terminal output with markdown rendering.
type Writer struct {
	out      io.Writer
	renderer *glamour.TermRenderer
	mu       sync.Mutex

	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	keyStyle     lipgloss.Style
}

// New creates a Writer on stdout.
func New() *Writer {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates a Writer on a custom destination.
func NewWithOutput(out io.Writer) *Writer {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)

	// Detect the color profile once so lipgloss adaptive colors resolve
	// against the real terminal.
	_ = termenv.ColorProfile()

	return &Writer{
		out:      out,
		renderer: renderer,

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
			Bold(true),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"}),
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"}),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
		boldStyle: lipgloss.NewStyle().Bold(true),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),
		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).
			Bold(true),
	}
}

// Print writes formatted text.
func (w *Writer) Print(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, args...)
}

// Println writes formatted text with a newline.
func (w *Writer) Println(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Markdown renders markdown with syntax highlighting, falling back to
// plain text when no renderer is available.
func (w *Writer) Markdown(md string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.renderer == nil {
		fmt.Fprintln(w.out, md)
		return nil
	}
	rendered, err := w.renderer.Render(md)
	if err != nil {
		fmt.Fprintln(w.out, md)
		return err
	}
	fmt.Fprint(w.out, rendered)
	return nil
}

// Error prints an error message in red.
func (w *Writer) Error(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.errorStyle.Render("error: "+msg))
}

// Warn prints a warning message in yellow.
func (w *Writer) Warn(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.warnStyle.Render("warning: "+msg))
}

// Success prints a success message in green.
func (w *Writer) Success(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.successStyle.Render("✓ "+msg))
}

// Info prints an info message in blue.
func (w *Writer) Info(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.infoStyle.Render(msg))
}

// Dim prints secondary text.
func (w *Writer) Dim(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.out, w.dimStyle.Render(msg))
}

// Header prints a section header with an underline border.
func (w *Writer) Header(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, w.headerStyle.Render(title))
}

// Newline prints a blank line.
func (w *Writer) Newline() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out)
}

// Divider prints a horizontal rule.
func (w *Writer) Divider() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, w.dimStyle.Render(strings.Repeat("─", 60)))
}

// Box renders content inside a rounded border, sized to the terminal.
func (w *Writer) Box(title, content string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	width := terminalWidth()
	boxWidth := width - 4
	if boxWidth > 80 {
		boxWidth = 80
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}).
		Padding(1, 2).
		Width(boxWidth)

	output := content
	if title != "" {
		output = w.boldStyle.Render(title) + "\n\n" + content
	}
	fmt.Fprintln(w.out, boxStyle.Render(output))
}

// List prints a bulleted list.
func (w *Writer) List(items []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, item := range items {
		fmt.Fprintln(w.out, "  • "+item)
	}
}

// KeyBinding is one row in a key binding listing.
type KeyBinding struct {
	Key    string
	Action string
}

// KeyBindings prints an aligned key/action table, the shape used by the
// demo's startup help.
func (w *Writer) KeyBindings(bindings []KeyBinding) {
	w.mu.Lock()
	defer w.mu.Unlock()

	widest := 0
	for _, b := range bindings {
		if len(b.Key) > widest {
			widest = len(b.Key)
		}
	}
	for _, b := range bindings {
		key := w.keyStyle.Render(b.Key)
		pad := strings.Repeat(" ", widest-len(b.Key))
		fmt.Fprintf(w.out, "  %s%s  %s\n", key, pad, b.Action)
	}
}

// terminalWidth returns the terminal width, defaulting to 80.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return 80
	}
	return width
}
