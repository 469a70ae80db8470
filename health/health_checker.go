// Package health derives the service health status from the loaded
// read models and the reload schedule.
package health

import (
	"time"

	"github.com/medivoice/medivoice-api/interfaces"
)

// Checker evaluates health from the data store state.
type Checker struct {
	store interfaces.DataStore
}

// NewChecker creates a health checker over the given store.
func NewChecker(store interfaces.DataStore) *Checker {
	return &Checker{store: store}
}

// Statuses reported by Evaluate.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Evaluate returns the health status and the HTTP status code to
// report it with. An empty catalog is unhealthy; stale data (older
// than a missed reload cycle) is degraded but still serving.
func (c *Checker) Evaluate() (string, int) {
	if c.store.GetCatalog().Len() == 0 {
		return StatusUnhealthy, 503
	}

	if time.Since(c.store.GetLastUpdated()) > 24*time.Hour {
		return StatusDegraded, 200
	}

	return StatusHealthy, 200
}

// NextUpdate returns the next scheduled reload time (06:00 or 18:00
// local time).
func (c *Checker) NextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	sixPM := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())

	if now.Before(sixAM) {
		return sixAM
	}

	if now.Before(sixPM) {
		return sixPM
	}

	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 6, 0, 0, 0, tomorrow.Location())
}
