package dock

// Gate is a one-shot barrier resolved on the first post-attach layout
// pass. Work queued before resolution runs in submission order when the
// gate opens; work queued after runs immediately.
type Gate struct {
	resolved bool
	queue    []func()
}

// NewGate creates an unresolved gate.
func NewGate() *Gate {
	return &Gate{}
}

// Resolved reports whether the gate has opened.
func (g *Gate) Resolved() bool {
	return g.resolved
}

// Then runs fn once the gate is resolved, immediately if it already is.
func (g *Gate) Then(fn func()) {
	if fn == nil {
		return
	}
	if g.resolved {
		fn()
		return
	}
	g.queue = append(g.queue, fn)
}

// Resolve opens the gate and drains the queue in submission order.
// Only the first call has any effect.
func (g *Gate) Resolve() {
	if g.resolved {
		return
	}
	g.resolved = true
	queue := g.queue
	g.queue = nil
	for _, fn := range queue {
		fn()
	}
}
