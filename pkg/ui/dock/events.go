// Package dock implements a composable panel layout manager: an
// ordered, resizable, collapsible, reorderable stack of parts inside a
// single split container. Part wraps one content widget under a
// draggable header, Layout turns weights and collapse state into split
// handle positions, and Container owns the sequence, its commands and
// menus, and persisted state.
package dock

// Emitter delivers typed events to subscribers in subscription order.
// It is confined to the UI event loop and is not safe for concurrent
// use; background producers must post into the loop instead.
type Emitter[T any] struct {
	subs     []subscription[T]
	nextID   int
	disposed bool
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// NewEmitter creates an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Unsubscribing twice is safe.
func (e *Emitter[T]) Subscribe(fn func(T)) func() {
	if e.disposed || fn == nil {
		return func() {}
	}
	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, sub := range e.subs {
			if sub.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every subscriber with the event. Handlers added or removed
// during emission take effect for the next event.
func (e *Emitter[T]) Emit(event T) {
	if e.disposed {
		return
	}
	subs := make([]subscription[T], len(e.subs))
	copy(subs, e.subs)
	for _, sub := range subs {
		sub.fn(event)
	}
}

// Len returns the current subscriber count.
func (e *Emitter[T]) Len() int {
	return len(e.subs)
}

// Dispose drops all subscribers; further Emit and Subscribe calls are
// no-ops.
func (e *Emitter[T]) Dispose() {
	e.disposed = true
	e.subs = nil
}
