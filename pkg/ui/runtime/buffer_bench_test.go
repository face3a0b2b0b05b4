package runtime

import (
	"testing"

	"github.com/odvcencio/dockyard/pkg/ui/backend"
)

func BenchmarkBuffer_Set(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Set(i%120, (i/120)%40, 'A', style)
	}
}

func BenchmarkBuffer_SetString(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.SetString(0, i%40, "▼ Outline", style)
	}
}

func BenchmarkBuffer_Fill(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()
	rect := Rect{X: 10, Y: 5, Width: 50, Height: 20}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Fill(rect, ' ', style)
	}
}

func BenchmarkBuffer_Clear(b *testing.B) {
	buf := NewBuffer(120, 40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
	}
}

func BenchmarkBuffer_ForEachDirtyCell_Sparse(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()
	for i := 0; i < 50; i++ {
		buf.Set(i, 0, 'X', style)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		buf.ForEachDirtyCell(func(int, int, Cell) { n++ })
	}
}

func BenchmarkBuffer_ForEachDirtyCell_Full(b *testing.B) {
	buf := NewBuffer(120, 40)
	buf.MarkAllDirty()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		buf.ForEachDirtyCell(func(int, int, Cell) { n++ })
	}
}

func BenchmarkBuffer_ClearDirty(b *testing.B) {
	buf := NewBuffer(120, 40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.MarkAllDirty()
		buf.ClearDirty()
	}
}

func BenchmarkBuffer_Resize(b *testing.B) {
	buf := NewBuffer(120, 40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			buf.Resize(130, 45)
		} else {
			buf.Resize(120, 40)
		}
	}
}

func BenchmarkBuffer_DrawBox(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()
	rect := Rect{X: 5, Y: 5, Width: 60, Height: 20}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.DrawBox(rect, style)
	}
}

func BenchmarkSubBuffer_SetString(b *testing.B) {
	buf := NewBuffer(120, 40)
	sub := buf.Sub(Rect{X: 10, Y: 10, Width: 80, Height: 20})
	style := backend.DefaultStyle()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sub.SetString(0, i%20, "pkg/ui/dock/container.go", style)
	}
}

// BenchmarkBuffer_FrameCycle approximates one dock frame: headers,
// part bodies, status row, then the dirty reset before the next frame.
func BenchmarkBuffer_FrameCycle(b *testing.B) {
	buf := NewBuffer(120, 40)
	style := backend.DefaultStyle()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Fill(Rect{0, 0, 120, 1}, ' ', style)
		buf.SetString(2, 0, "▼ Outline", style)

		buf.Fill(Rect{0, 1, 120, 38}, ' ', style)
		for line := 0; line < 10; line++ {
			buf.SetString(2, 2+line, "pkg/ui/dock/layout.go", style)
		}

		buf.Fill(Rect{0, 39, 120, 1}, ' ', style)
		buf.SetString(2, 39, "3/3 parts", style)

		buf.ClearDirty()
	}
}
