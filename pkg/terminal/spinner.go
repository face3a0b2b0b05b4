package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows progress for short blocking startup work, like opening
// the layout store or restoring persisted state. It overwrites its own
// line, so stop it before writing any other output.
type Spinner struct {
	out io.Writer

	mu      sync.Mutex
	message string
	running bool
	stop    chan struct{}
	stopped chan struct{}

	style   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewSpinner creates a spinner writing to out.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		message: message,
		style: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"}),
		failure: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
			Bold(true),
	}
}

// Start begins animating. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.run(s.stop, s.stopped)
}

func (s *Spinner) run(stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	frame := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r%s %s", s.style.Render(spinnerFrames[frame]), s.message)
			s.mu.Unlock()
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}

// Update replaces the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.halt("")
}

// StopWithSuccess halts the animation and prints a checked message.
func (s *Spinner) StopWithSuccess(message string) {
	s.halt(s.success.Render("✓") + " " + message + "\n")
}

// StopWithError halts the animation and prints a crossed message.
func (s *Spinner) StopWithError(message string) {
	s.halt(s.failure.Render("✗") + " " + message + "\n")
}

func (s *Spinner) halt(final string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	stopped := s.stopped
	s.mu.Unlock()

	<-stopped
	s.mu.Lock()
	fmt.Fprintf(s.out, "\r\033[K%s", final)
	s.mu.Unlock()
}
