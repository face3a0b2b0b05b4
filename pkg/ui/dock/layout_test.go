package dock

import (
	"testing"
	"time"

	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// stubWidget is a minimal content widget for layout tests.
type stubWidget struct {
	handled int
}

func (w *stubWidget) Measure(c runtime.Constraints) runtime.Size { return c.MaxSize() }
func (w *stubWidget) Layout(runtime.Rect)                        {}
func (w *stubWidget) Render(runtime.RenderContext)               {}
func (w *stubWidget) HandleMessage(runtime.Message) runtime.HandleResult {
	w.handled++
	return runtime.Handled()
}

// describedWidget carries a stable persistence descriptor.
type describedWidget struct {
	stubWidget
	desc string
}

func (w *describedWidget) Descriptor() string { return w.desc }

// minSizedWidget declares its own minimum content size.
type minSizedWidget struct {
	stubWidget
	min runtime.Size
}

func (w *minSizedWidget) MinContentSize() runtime.Size { return w.min }

// fakeClock drives layout animations deterministically.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// scenarioContainer builds the reference layout: three parts weighted
// 0.5/0.3/0.2 in a vertical container with 22-cell headers and 2-cell
// spacing, attached at extent 1070 so 1000 cells of content space
// remain. Expected extents: 522, 322, 222.
func scenarioContainer(t *testing.T) *Container {
	t.Helper()
	c := NewContainer(ContainerConfig{
		Name:              "test",
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDisabled: true,
	})
	c.AddWidget("one", &stubWidget{}, Options{Weight: 0.5})
	c.AddWidget("two", &stubWidget{}, Options{Weight: 0.3})
	c.AddWidget("three", &stubWidget{}, Options{Weight: 0.2})
	c.Layout(runtime.Rect{X: 0, Y: 0, Width: 100, Height: 1070})
	c.SetPartSizes()
	return c
}

// animatedScenario is scenarioContainer with a 200ms animation driven
// by an injected clock.
func animatedScenario(t *testing.T) (*Container, *fakeClock) {
	t.Helper()
	c := NewContainer(ContainerConfig{
		Name:              "test",
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDuration: 200 * time.Millisecond,
	})
	clock := newFakeClock()
	c.layout.now = clock.now
	c.AddWidget("one", &stubWidget{}, Options{Weight: 0.5})
	c.AddWidget("two", &stubWidget{}, Options{Weight: 0.3})
	c.AddWidget("three", &stubWidget{}, Options{Weight: 0.2})
	c.Layout(runtime.Rect{X: 0, Y: 0, Width: 100, Height: 1070})
	c.SetPartSizes()
	return c, clock
}

func extents(c *Container) []int {
	out := make([]int, len(c.layout.parts))
	for i := range c.layout.parts {
		out[i] = c.layout.partExtent(i)
	}
	return out
}

func TestSetPartSizes_ProportionalDistribution(t *testing.T) {
	c := scenarioContainer(t)

	got := extents(c)
	want := []int{522, 322, 222}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extent[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Handle positions land at the cumulative boundaries.
	b0 := c.split.ItemBounds(0)
	b1 := c.split.ItemBounds(1)
	b2 := c.split.ItemBounds(2)
	if h := b0.Y + b0.Height; h != 522 {
		t.Errorf("first handle at %d, want 522", h)
	}
	if h := b1.Y + b1.Height; h != 846 {
		t.Errorf("second handle at %d, want 846", h)
	}
	if b1.Y != 524 {
		t.Errorf("second part starts at %d, want 524", b1.Y)
	}
	if b2.Y != 848 {
		t.Errorf("third part starts at %d, want 848", b2.Y)
	}
}

func TestAvailableSize(t *testing.T) {
	c := NewContainer(ContainerConfig{
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDisabled: true,
	})
	c.AddWidget("one", &stubWidget{}, Options{Weight: 0.5})
	c.AddWidget("two", &stubWidget{}, Options{Weight: 0.3})
	c.AddWidget("three", &stubWidget{}, Options{Weight: 0.2})

	if got := c.layout.availableSize(); got != 0 {
		t.Errorf("availableSize before attach = %d, want 0", got)
	}

	c.Layout(runtime.Rect{Width: 100, Height: 1070})
	if got := c.layout.availableSize(); got != 1000 {
		t.Errorf("availableSize = %d, want 1000", got)
	}

	c.Parts()[2].SetHidden(true)
	if got := c.layout.availableSize(); got != 1024 {
		t.Errorf("availableSize with one hidden = %d, want 1024", got)
	}
}

func TestSetPartSizes_NoWeightedPartsIsNoOp(t *testing.T) {
	c := NewContainer(ContainerConfig{
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDisabled: true,
	})
	c.AddWidget("one", &stubWidget{}, Options{})
	c.AddWidget("two", &stubWidget{}, Options{})
	c.Layout(runtime.Rect{Width: 100, Height: 1070})

	before := extents(c)
	c.SetPartSizes()
	after := extents(c)

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("extent[%d] changed %d -> %d without any weights", i, before[i], after[i])
		}
	}
}

func TestSetPartSizes_BeforeAttachIsNoOp(t *testing.T) {
	c := NewContainer(ContainerConfig{
		Orientation:       runtime.Vertical,
		AnimationDisabled: true,
	})
	c.AddWidget("one", &stubWidget{}, Options{Weight: 1})
	c.layout.SetPartSizes() // must not panic or resize anything
	if got := c.layout.partExtent(0); got != 0 {
		t.Errorf("extent = %d before attach, want 0", got)
	}

	// The container-level call defers through the gate instead.
	c.SetPartSizes()
	c.Layout(runtime.Rect{Width: 100, Height: 54})
	if got := c.layout.partExtent(0); got != 54 {
		t.Errorf("extent = %d after attach, want 54", got)
	}
}

func TestSetPartSizes_UnweightedPartsGetAverageWeight(t *testing.T) {
	c := NewContainer(ContainerConfig{
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDisabled: true,
	})
	c.AddWidget("one", &stubWidget{}, Options{Weight: 1.0})
	c.AddWidget("two", &stubWidget{}, Options{})
	c.AddWidget("three", &stubWidget{}, Options{})
	c.Layout(runtime.Rect{Width: 100, Height: 1070})
	c.SetPartSizes()

	got := extents(c)
	sum := 0
	for i, e := range got {
		if e < 355 || e > 356 {
			t.Errorf("extent[%d] = %d, want an even third (355..356)", i, e)
		}
		sum += e
	}
	if sum != 1066 {
		t.Errorf("extents sum = %d, want 1066", sum)
	}
}

func TestSetPartSizes_CollapsedPartPinnedToHeader(t *testing.T) {
	c := scenarioContainer(t)
	p := c.Parts()[0]

	p.SetCollapsed(true)
	c.SetPartSizes()

	got := extents(c)
	want := []int{22, 622, 422}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extent[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	// The weight-implied extent is remembered for later expansion.
	if p.uncollapsedSize != 1022 {
		t.Errorf("uncollapsedSize = %d, want 1022", p.uncollapsedSize)
	}
}

func TestSetPartSizes_HiddenPartExcluded(t *testing.T) {
	c := scenarioContainer(t)

	c.Parts()[2].SetHidden(true)
	c.SetPartSizes()

	got := extents(c)
	want := []int{662, 406, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extent[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestHide_SnapshotsExtentForRestore(t *testing.T) {
	c := scenarioContainer(t)
	p := c.Parts()[2]

	p.SetHidden(true)

	if p.uncollapsedSize != 222 {
		t.Errorf("uncollapsedSize = %d, want the pre-hide extent 222", p.uncollapsedSize)
	}
}

func TestMove_ReordersPartsAndSplit(t *testing.T) {
	c := scenarioContainer(t)

	if !c.layout.move(0, 2) {
		t.Fatal("move refused")
	}

	order := make([]string, 0, 3)
	for _, p := range c.Parts() {
		order = append(order, p.WidgetID())
	}
	want := []string{"two", "three", "one"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	// Split items track the reorder.
	if item := c.split.ItemAt(2); item == nil || item.Widget != c.Parts()[2] {
		t.Error("split item 2 does not track the moved part")
	}
}

func TestMove_RejectsOutOfRange(t *testing.T) {
	c := scenarioContainer(t)
	if c.layout.move(-1, 1) || c.layout.move(0, 3) || c.layout.move(1, 1) {
		t.Error("out-of-range or identity move accepted")
	}
}

func TestSoleExpandedVisible(t *testing.T) {
	c := scenarioContainer(t)
	parts := c.Parts()

	if c.layout.soleExpandedVisible(parts[0]) {
		t.Error("sole reported with three expanded parts")
	}

	parts[1].SetCollapsed(true)
	parts[2].SetHidden(true)

	if !c.layout.soleExpandedVisible(parts[0]) {
		t.Error("not sole with siblings collapsed and hidden")
	}
}

func TestLayout_MinimumContentSizeRespected(t *testing.T) {
	c := NewContainer(ContainerConfig{
		Orientation:       runtime.Vertical,
		HeaderHeight:      22,
		Spacing:           2,
		AnimationDisabled: true,
	})
	c.AddWidget("big", &stubWidget{}, Options{Weight: 0.99})
	c.AddWidget("small", &minSizedWidget{min: runtime.Size{Width: 10, Height: 80}}, Options{Weight: 0.01})
	c.Layout(runtime.Rect{Width: 100, Height: 1070})
	c.SetPartSizes()

	// 0.01 of the space would be far below the declared minimum.
	if got := c.layout.partExtent(1); got != 22+80 {
		t.Errorf("extent = %d, want clamped to header+min (102)", got)
	}
}
