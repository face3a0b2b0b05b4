package command

import "testing"

func TestRegistry_RegisterExecute(t *testing.T) {
	r := NewRegistry()

	ran := 0
	r.Register(Command{ID: "dock1:toggle-visibility", Execute: func() { ran++ }})

	if !r.Execute("dock1:toggle-visibility") {
		t.Fatal("Execute should find the registered command")
	}
	if ran != 1 {
		t.Errorf("command ran %d times, want 1", ran)
	}
	if r.Execute("missing") {
		t.Error("Execute on unknown id should return false")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()

	first, second := 0, 0
	r.Register(Command{ID: "cmd", Execute: func() { first++ }})
	r.Register(Command{ID: "cmd", Execute: func() { second++ }})

	r.Execute("cmd")
	if first != 0 || second != 1 {
		t.Errorf("replacement not effective: first=%d second=%d", first, second)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistry_IgnoresInvalid(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{ID: "", Execute: func() {}})
	r.Register(Command{ID: "no-exec"})
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRegistry_UnregisterUnknown(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{ID: "a", Execute: func() {}})
	r.Unregister("b")
	r.Unregister("a")
	r.Unregister("a")
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRegistry_Predicates(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{
		ID:        "toggle",
		Execute:   func() {},
		IsVisible: func() bool { return false },
		IsToggled: func() bool { return true },
	})

	cmd, ok := r.Get("toggle")
	if !ok {
		t.Fatal("Get should find the command")
	}
	if cmd.IsVisible() {
		t.Error("IsVisible should report false")
	}
	if !cmd.IsToggled() {
		t.Error("IsToggled should report true")
	}
}

func TestMenuRegistry_OrderAndPath(t *testing.T) {
	m := NewMenuRegistry()
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "c", Label: "Gamma", Order: 2})
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "a", Label: "Alpha", Order: 0})
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "b", Label: "Beta", Order: 1})
	m.Register(MenuEntry{MenuPath: "other", CommandID: "x", Label: "Elsewhere", Order: 0})

	entries := m.EntriesFor("dock1")
	if len(entries) != 3 {
		t.Fatalf("EntriesFor returned %d entries, want 3", len(entries))
	}
	want := []string{"Alpha", "Beta", "Gamma"}
	for i, label := range want {
		if entries[i].Label != label {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Label, label)
		}
	}
}

func TestMenuRegistry_ReregisterIdempotent(t *testing.T) {
	m := NewMenuRegistry()
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "a", Label: "Alpha", Order: 3})
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "a", Label: "Alpha", Order: 0})

	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	entries := m.EntriesFor("dock1")
	if entries[0].Order != 0 {
		t.Errorf("Order = %d, want 0 after re-registration", entries[0].Order)
	}
}

func TestMenuRegistry_UnregisterUnknown(t *testing.T) {
	m := NewMenuRegistry()
	m.Register(MenuEntry{MenuPath: "dock1", CommandID: "a", Label: "Alpha"})
	m.Unregister("missing")
	m.Unregister("a")
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}
