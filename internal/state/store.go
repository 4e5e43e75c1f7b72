package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Owners      []fleet.Owner
	Vehicles    []fleet.Vehicle
	Maintenance []fleet.MaintenanceRecord
	Stats       fleet.Stats
	HasStats    bool
	LastUpdated time.Time
	LastError   error
}

// Store coordinates concurrent updates to the snapshot. Each collection
// is replaced wholesale by its Replace method; a failed reload never
// calls Replace, so the previous data survives untouched.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// ReplaceOwners swaps in a freshly fetched owners collection.
func (s *Store) ReplaceOwners(owners []fleet.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Owners = cloneSlice(owners)
	s.snapshot.LastUpdated = time.Now()
}

// ReplaceVehicles swaps in a freshly fetched vehicles collection.
func (s *Store) ReplaceVehicles(vehicles []fleet.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Vehicles = cloneSlice(vehicles)
	s.snapshot.LastUpdated = time.Now()
}

// ReplaceMaintenance swaps in a freshly fetched maintenance collection.
func (s *Store) ReplaceMaintenance(records []fleet.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Maintenance = cloneSlice(records)
	s.snapshot.LastUpdated = time.Now()
}

// ReplaceStats swaps in a freshly fetched aggregate snapshot.
func (s *Store) ReplaceStats(stats fleet.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Stats = stats
	s.snapshot.HasStats = true
	s.snapshot.LastUpdated = time.Now()
}

// RecordResult finishes a reload cycle. A non-nil err is recorded for
// visibility while all previously stored data is kept; nil clears any
// earlier failure.
func (s *Store) RecordResult(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Owners = cloneSlice(s.snapshot.Owners)
	snap.Vehicles = cloneSlice(s.snapshot.Vehicles)
	snap.Maintenance = cloneSlice(s.snapshot.Maintenance)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
