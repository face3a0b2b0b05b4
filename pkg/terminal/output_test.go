package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterPrint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Print("attached %d parts", 3)
	if got := buf.String(); got != "attached 3 parts" {
		t.Errorf("Print = %q, want 'attached 3 parts'", got)
	}
}

func TestWriterPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Println("layout %s", "restored")
	if got := buf.String(); got != "layout restored\n" {
		t.Errorf("Println = %q, want 'layout restored\\n'", got)
	}
}

func TestWriterError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Error("state store unavailable")
	got := buf.String()
	if !strings.Contains(got, "error:") {
		t.Errorf("Error output missing 'error:' prefix, got %q", got)
	}
	if !strings.Contains(got, "state store unavailable") {
		t.Errorf("Error output missing message, got %q", got)
	}
}

func TestWriterWarn(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Warn("stored layout references unknown parts")
	got := buf.String()
	if !strings.Contains(got, "warning:") {
		t.Errorf("Warn output missing 'warning:' prefix, got %q", got)
	}
}

func TestWriterSuccess(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Success("layout saved")
	got := buf.String()
	if !strings.Contains(got, "✓") {
		t.Errorf("Success output missing checkmark, got %q", got)
	}
	if !strings.Contains(got, "layout saved") {
		t.Errorf("Success output missing message, got %q", got)
	}
}

func TestWriterList(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.List([]string{"outline", "preview"})
	got := buf.String()
	if !strings.Contains(got, "• outline") || !strings.Contains(got, "• preview") {
		t.Errorf("List output = %q", got)
	}
}

func TestWriterKeyBindings(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.KeyBindings([]KeyBinding{
		{Key: "q", Action: "quit"},
		{Key: "ctrl+s", Action: "save snapshot"},
	})
	got := buf.String()
	if !strings.Contains(got, "quit") || !strings.Contains(got, "save snapshot") {
		t.Errorf("KeyBindings output = %q", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("KeyBindings printed %d lines, want 2", len(lines))
	}
}

func TestWriterMarkdown(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	if err := w.Markdown("# dockyard\n\nsome *styled* text"); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(buf.String(), "dockyard") {
		t.Errorf("Markdown output missing heading text, got %q", buf.String())
	}
}

func TestWriterMarkdownNilRendererFallsBack(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)
	w.renderer = nil

	if err := w.Markdown("plain"); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if got := buf.String(); got != "plain\n" {
		t.Errorf("fallback = %q, want 'plain\\n'", got)
	}
}

func TestWriterDivider(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Divider()
	if !strings.Contains(buf.String(), "─") {
		t.Errorf("Divider output = %q", buf.String())
	}
}
