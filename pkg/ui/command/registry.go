// Package command provides registries for named commands and their menu
// entries. Containers register per-part visibility commands here; the
// context-menu presenter reads the menu registry back to build menus.
package command

import (
	"sort"
	"sync"
)

// Command is an executable action registered under a unique id.
// IsVisible and IsToggled are optional predicates consulted when the
// command is surfaced in a menu; nil means always visible / not a toggle.
type Command struct {
	ID        string
	Execute   func()
	IsVisible func() bool
	IsToggled func() bool
}

// Registry holds commands keyed by id. Registering an id that already
// exists replaces the previous command.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds or replaces a command. Commands with an empty id or nil
// Execute are ignored.
func (r *Registry) Register(cmd Command) {
	if cmd.ID == "" || cmd.Execute == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.ID] = cmd
}

// Unregister removes a command. Unknown ids are a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, id)
}

// Get returns the command registered under id.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Execute runs the command registered under id, reporting whether it
// was found.
func (r *Registry) Execute(id string) bool {
	cmd, ok := r.Get(id)
	if !ok {
		return false
	}
	cmd.Execute()
	return true
}

// IDs returns all registered command ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
