// Package scheduler coordinates the one-time startup load and the
// periodic CSV reloads of the medicine read models, plus a watchdog
// that warns when the data goes stale.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
)

// Compile-time check to ensure Scheduler implements the contract
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler reloads the data tables on a fixed schedule.
type Scheduler struct {
	dataStore interfaces.DataStore
	loader    interfaces.Loader
	scheduler *gocron.Scheduler
	stopWatch chan struct{}
}

// NewScheduler creates a scheduler with injected dependencies.
func NewScheduler(dataStore interfaces.DataStore, loader interfaces.Loader) *Scheduler {
	return &Scheduler{
		dataStore: dataStore,
		loader:    loader,
		scheduler: gocron.NewScheduler(time.Local),
		stopWatch: make(chan struct{}),
	}
}

// Start performs the initial load synchronously, then schedules the
// twice-daily reloads and the staleness watchdog. The first query is
// only served after Start returns, which gates readiness behind the
// initial load.
func (s *Scheduler) Start() error {
	if err := s.reload(); err != nil {
		return fmt.Errorf("initial data load failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At("06:00;18:00").Do(func() {
		if err := s.reload(); err != nil {
			logging.Error("Failed to reload data", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reloads: %w", err)
	}

	s.scheduler.StartAsync()
	s.startWatchdog()

	return nil
}

// Stop stops the scheduler and the watchdog.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	close(s.stopWatch)
}

// reload rebuilds all tables and swaps them in atomically. Readers
// keep serving the old tables until the swap.
func (s *Scheduler) reload() error {
	if !s.dataStore.BeginUpdate() {
		logging.Info("Reload already in progress, skipping")
		return nil
	}
	defer s.dataStore.EndUpdate()

	start := time.Now()

	catalog, interactions, brands := s.loader.LoadAll()
	s.dataStore.UpdateData(catalog, interactions, brands)

	logging.Info("Data reload completed",
		"duration", time.Since(start).String(),
		"medicines", catalog.Len(),
		"interactions", interactions.Rows(),
		"brands", brands.Rows())

	return nil
}

// startWatchdog warns hourly when the data is older than a missed
// reload cycle.
func (s *Scheduler) startWatchdog() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopWatch:
				return
			case <-ticker.C:
				if time.Since(s.dataStore.GetLastUpdated()) > 25*time.Hour {
					logging.Warn("Data hasn't been reloaded in over 25 hours")
				}
			}
		}
	}()
}
