package application

import (
	"sync"

	"github.com/codevet/codevet/internal/domain"
)

// FlightGuard allows at most one validation in flight per instance. It
// replaces an ambient process-global busy flag with an injected object;
// the service guarantees release on every exit path, panics included.
type FlightGuard struct {
	mu   sync.Mutex
	busy bool
}

func NewFlightGuard() *FlightGuard {
	return &FlightGuard{}
}

// Begin marks a validation as in flight. When one already is, it fails
// immediately with ErrValidationInProgress; there is no queueing.
func (g *FlightGuard) Begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return domain.ErrValidationInProgress
	}
	g.busy = true
	return nil
}

// End clears the in-flight flag. Safe to call when nothing is in flight.
func (g *FlightGuard) End() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// InFlight reports whether a validation is currently running.
func (g *FlightGuard) InFlight() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
