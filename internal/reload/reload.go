package reload

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
	"github.com/fleetdeck/fleetdeck/internal/state"
)

// Mutation identifies which entity kind a successful mutation touched.
type Mutation int

const (
	MutationOwner Mutation = iota
	MutationVehicle
	MutationMaintenance
)

// String returns the entity name for log output.
func (m Mutation) String() string {
	switch m {
	case MutationOwner:
		return "owner"
	case MutationVehicle:
		return "vehicle"
	case MutationMaintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// Refresher re-fetches the collections a mutation may have changed and
// swaps them into the store. It never rolls anything back: each list that
// succeeds is applied even when a sibling list fails.
type Refresher struct {
	store *state.Store
	api   fleet.API
}

// NewRefresher builds a Refresher over the given store and gateway.
func NewRefresher(store *state.Store, api fleet.API) *Refresher {
	return &Refresher{store: store, api: api}
}

// After reloads the collections affected by a successful mutation on the
// given entity kind:
//
//	owner       -> owners, vehicles, maintenance, stats
//	vehicle     -> vehicles, maintenance, stats
//	maintenance -> maintenance, vehicles, stats
//
// Owners reload first because vehicle rows join against owner data;
// vehicles and maintenance have no read-side ordering dependency and are
// fetched concurrently. Stats always comes from the aggregate endpoint in
// the same pass; the backend offers no cross-resource transaction, so the
// four snapshots are eventually consistent with each other, not atomic.
//
// The returned error is the join of the individual reload failures, also
// recorded on the store. Collections whose reload failed keep their
// previous snapshot.
func (r *Refresher) After(ctx context.Context, mut Mutation) error {
	var errs []error
	if mut == MutationOwner {
		errs = append(errs, r.reloadOwners(ctx))
	}
	errs = append(errs, r.reloadVehiclesAndMaintenance(ctx))
	errs = append(errs, r.reloadStats(ctx))

	joined := errors.Join(errs...)
	if joined != nil {
		log.Printf("reload after %s mutation: %v", mut, joined)
	}
	r.store.RecordResult(joined)
	return joined
}

// All reloads every collection. Used for the initial load, the manual
// refresh key, and panel navigation.
func (r *Refresher) All(ctx context.Context) error {
	joined := errors.Join(
		r.reloadOwners(ctx),
		r.reloadVehiclesAndMaintenance(ctx),
		r.reloadStats(ctx),
	)
	if joined != nil {
		log.Printf("full reload: %v", joined)
	}
	r.store.RecordResult(joined)
	return joined
}

// Owners reloads only the owners collection. Panel navigation uses the
// single-collection reloads to freshen what is about to be shown.
func (r *Refresher) Owners(ctx context.Context) error {
	err := r.reloadOwners(ctx)
	r.store.RecordResult(err)
	return err
}

// Vehicles reloads only the vehicles collection.
func (r *Refresher) Vehicles(ctx context.Context) error {
	err := r.reloadVehicles(ctx)
	r.store.RecordResult(err)
	return err
}

// Maintenance reloads only the maintenance collection.
func (r *Refresher) Maintenance(ctx context.Context) error {
	err := r.reloadMaintenance(ctx)
	r.store.RecordResult(err)
	return err
}

// Stats reloads only the aggregate snapshot.
func (r *Refresher) Stats(ctx context.Context) error {
	err := r.reloadStats(ctx)
	r.store.RecordResult(err)
	return err
}

func (r *Refresher) reloadOwners(ctx context.Context) error {
	owners, err := r.api.ListOwners(ctx)
	if err != nil {
		return fmt.Errorf("reload owners: %w", err)
	}
	r.store.ReplaceOwners(owners)
	return nil
}

// reloadVehiclesAndMaintenance fetches both lists concurrently and waits
// for both before returning, so dependent views re-render from a pair of
// fresh snapshots.
func (r *Refresher) reloadVehiclesAndMaintenance(ctx context.Context) error {
	var wg sync.WaitGroup
	var vehiclesErr, maintenanceErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		vehiclesErr = r.reloadVehicles(ctx)
	}()
	go func() {
		defer wg.Done()
		maintenanceErr = r.reloadMaintenance(ctx)
	}()
	wg.Wait()

	return errors.Join(vehiclesErr, maintenanceErr)
}

func (r *Refresher) reloadVehicles(ctx context.Context) error {
	vehicles, err := r.api.ListVehicles(ctx)
	if err != nil {
		return fmt.Errorf("reload vehicles: %w", err)
	}
	r.store.ReplaceVehicles(vehicles)
	return nil
}

func (r *Refresher) reloadMaintenance(ctx context.Context) error {
	records, err := r.api.ListMaintenance(ctx)
	if err != nil {
		return fmt.Errorf("reload maintenance: %w", err)
	}
	r.store.ReplaceMaintenance(records)
	return nil
}

func (r *Refresher) reloadStats(ctx context.Context) error {
	stats, err := r.api.FetchStats(ctx)
	if err != nil {
		return fmt.Errorf("reload stats: %w", err)
	}
	r.store.ReplaceStats(stats)
	return nil
}
