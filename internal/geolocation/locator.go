// Package geolocation resolves the customer's current position during
// checkout. The production interface is "request position, get coordinates
// or a failure"; this system ships a simulated provider, so checkout never
// depends on a real positioning backend.
package geolocation

import (
	"context"
	"errors"
	"time"

	"localconnect/models"
)

// ErrUnavailable is returned when no position can be determined.
var ErrUnavailable = errors.New("location unavailable")

// Locator resolves the current position. At most one request is in flight
// per checkout; a cancelled context abandons the request.
type Locator interface {
	Locate(ctx context.Context) (*models.Location, error)
}

// SimulatedLocator answers with a fixed position after a configurable
// latency, honoring context cancellation like a real callback-based
// provider would.
type SimulatedLocator struct {
	Position models.Location
	Latency  time.Duration
}

// NewSimulatedLocator returns a locator answering with a Chennai-area
// position after the given latency.
func NewSimulatedLocator(latency time.Duration) *SimulatedLocator {
	return &SimulatedLocator{
		Position: models.Location{Lat: 13.0827, Lng: 80.2707},
		Latency:  latency,
	}
}

func (s *SimulatedLocator) Locate(ctx context.Context) (*models.Location, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ErrUnavailable
		case <-timer.C:
		}
	}
	pos := s.Position
	return &pos, nil
}

// FailingLocator always reports failure. Used to exercise the
// denied-permission path.
type FailingLocator struct{}

func (FailingLocator) Locate(context.Context) (*models.Location, error) {
	return nil, ErrUnavailable
}
