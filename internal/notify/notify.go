// Package notify delivers a desktop notification through the first working
// backend in a fixed priority chain, ending with a console writer that
// cannot fail.
package notify

import (
	"io"

	"tidyext/internal/logging"
)

type Notification struct {
	Title string
	Body  string
	Icon  string
}

// Backend is one delivery mechanism in the priority chain. Attempt reports
// whether the notification was delivered; false means the next backend
// should be tried. Backends never surface errors.
type Backend interface {
	Name() string
	Attempt(n Notification) bool
}

// Dispatcher tries its backends in order and stops at the first success.
// Dispatch is fire-and-forget: the chain ends with a backend that always
// succeeds, so there is no error to return.
type Dispatcher struct {
	Backends []Backend
	Logger   logging.Logger
}

// NewDispatcher builds a dispatcher with the default backend chain. The
// console writer is the terminal fallback.
func NewDispatcher(console io.Writer) Dispatcher {
	return Dispatcher{Backends: DefaultBackends(console)}
}

func (d Dispatcher) Dispatch(n Notification) {
	for _, backend := range d.Backends {
		if backend.Attempt(n) {
			d.Logger.Verbosef("Notification delivered via %s", backend.Name())
			return
		}
		d.Logger.Verbosef("Notification backend %s unavailable", backend.Name())
	}
}
