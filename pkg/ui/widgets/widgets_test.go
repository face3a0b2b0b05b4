package widgets

import (
	"strings"
	"testing"

	"github.com/odvcencio/dockyard/pkg/ui/runtime"
	"github.com/odvcencio/dockyard/pkg/ui/theme"
)

// render lays out and renders a widget into a fresh buffer.
func render(w runtime.Widget, width, height int) *runtime.Buffer {
	buf := runtime.NewBuffer(width, height)
	bounds := runtime.Rect{X: 0, Y: 0, Width: width, Height: height}
	w.Layout(bounds)
	w.Render(runtime.RenderContext{
		Buffer: buf,
		Theme:  theme.DefaultTheme(),
		Bounds: bounds,
	})
	return buf
}

// bufferLine reads one row of a buffer as a string.
func bufferLine(buf *runtime.Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"héllo", 5, "héllo"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestLabel_Render(t *testing.T) {
	l := NewLabel("status")
	buf := render(l, 10, 1)

	if line := bufferLine(buf, 0); !strings.HasPrefix(line, "status") {
		t.Errorf("line = %q, want prefix 'status'", line)
	}
}

func TestLabel_AlignRight(t *testing.T) {
	l := NewLabel("end").WithAlignment(AlignRight)
	buf := render(l, 10, 1)

	if line := bufferLine(buf, 0); !strings.HasSuffix(line, "end") {
		t.Errorf("line = %q, want suffix 'end'", line)
	}
}

func TestText_MultiLine(t *testing.T) {
	w := NewText("first\nsecond")
	buf := render(w, 10, 3)

	if line := bufferLine(buf, 0); !strings.HasPrefix(line, "first") {
		t.Errorf("line 0 = %q, want prefix 'first'", line)
	}
	if line := bufferLine(buf, 1); !strings.HasPrefix(line, "second") {
		t.Errorf("line 1 = %q, want prefix 'second'", line)
	}
}

func TestPanel_BorderAndTitle(t *testing.T) {
	p := NewPanel(NewText("body")).
		WithBorder(theme.DefaultTheme().Border).
		WithTitle("Files")
	// Child must be laid out inside the border.
	buf := render(p, 20, 5)

	top := bufferLine(buf, 0)
	if !strings.Contains(top, "Files") {
		t.Errorf("top border = %q, want title 'Files'", top)
	}
	if !strings.Contains(bufferLine(buf, 1), "body") {
		t.Errorf("row 1 = %q, want child text", bufferLine(buf, 1))
	}
}

func TestPanel_MeasureAddsBorder(t *testing.T) {
	p := NewPanel(NewText("ab")).WithBorder(theme.DefaultTheme().Border)
	size := p.Measure(runtime.Loose(40, 10))

	if size.Width != 4 || size.Height != 3 {
		t.Errorf("size = %+v, want 4x3 (content plus border)", size)
	}
}

func TestStatusBar_Segments(t *testing.T) {
	s := NewStatusBar()
	s.SetLeft("3 parts")
	s.SetRight("q quit")
	buf := render(s, 30, 1)

	line := bufferLine(buf, 0)
	if !strings.Contains(line, "3 parts") {
		t.Errorf("line = %q, want left segment", line)
	}
	if !strings.Contains(line, "q quit") {
		t.Errorf("line = %q, want right segment", line)
	}
	if strings.Index(line, "3 parts") > strings.Index(line, "q quit") {
		t.Errorf("line = %q, left segment should precede right", line)
	}
}
