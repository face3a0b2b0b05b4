package command

import (
	"sort"
	"sync"
)

// MenuEntry binds a registered command to a position in a menu.
// Entries sharing a MenuPath form one menu; Order decides placement
// within it.
type MenuEntry struct {
	MenuPath  string
	CommandID string
	Label     string
	Order     int
}

// MenuRegistry holds menu entries keyed by command id. Re-registering
// the same command id replaces its entry, so refreshing an entry's
// Order after a reorder is idempotent.
type MenuRegistry struct {
	mu      sync.RWMutex
	entries map[string]MenuEntry
}

// NewMenuRegistry creates an empty menu registry.
func NewMenuRegistry() *MenuRegistry {
	return &MenuRegistry{entries: make(map[string]MenuEntry)}
}

// Register adds or replaces the entry for its command id. Entries with
// an empty command id are ignored.
func (m *MenuRegistry) Register(entry MenuEntry) {
	if entry.CommandID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.CommandID] = entry
}

// Unregister removes the entry for a command id. Unknown ids are a
// no-op.
func (m *MenuRegistry) Unregister(commandID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, commandID)
}

// EntriesFor returns the entries under a menu path, sorted by Order
// then label.
func (m *MenuRegistry) EntriesFor(menuPath string) []MenuEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []MenuEntry
	for _, e := range m.entries {
		if e.MenuPath == menuPath {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Order != entries[j].Order {
			return entries[i].Order < entries[j].Order
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// Len returns the number of registered entries.
func (m *MenuRegistry) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
