package dock

// Options configure a part at AddWidget time. Initial collapse and
// visibility are applied once, before the container first attaches.
type Options struct {
	// Title shown in the part header; defaults to the widget id.
	Title string

	// Order places the part before the first existing part whose order
	// is unset or greater. Nil appends.
	Order *int

	// Weight is the part's share of available space relative to its
	// siblings. Zero or negative means unset; unset parts receive the
	// average weight during proportional sizing.
	Weight float64

	// Collapsed starts the part collapsed (vertical orientation only).
	Collapsed bool

	// Hidden starts the part excluded from the visible layout.
	Hidden bool

	// NoHide pins the part: visibility toggles refuse to hide it.
	NoHide bool
}

// Disposable undoes a registration.
type Disposable interface {
	Dispose()
}

type disposeFunc func()

func (f disposeFunc) Dispose() { f() }

// inertDisposable is returned from no-op registrations.
var inertDisposable Disposable = disposeFunc(func() {})
