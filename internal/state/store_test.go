package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
)

func TestStore_ReplaceAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.ReplaceOwners([]fleet.Owner{{ID: 1, RUT: "1-9"}, {ID: 2, RUT: "2-7"}})
	s.ReplaceStats(fleet.Stats{TotalOwners: 2})

	snap := s.Snapshot()
	if len(snap.Owners) != 2 || snap.Owners[0].ID != 1 {
		t.Fatalf("snapshot owners = %#v, want 2 owners", snap.Owners)
	}
	if !snap.HasStats || snap.Stats.TotalOwners != 2 {
		t.Fatalf("snapshot stats = %#v, want total_owners=2 HasStats=true", snap.Stats)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Owners[0].ID = 999
	snap2 := s.Snapshot()
	if snap2.Owners[0].ID != 1 {
		t.Fatalf("Snapshot should clone owners; got id %d want 1", snap2.Owners[0].ID)
	}
}

func TestStore_CollectionsSwapIndependently(t *testing.T) {
	var s Store

	s.ReplaceOwners([]fleet.Owner{{ID: 1}})
	s.ReplaceVehicles([]fleet.Vehicle{{ID: 7, OwnerID: 1}})
	s.ReplaceMaintenance([]fleet.MaintenanceRecord{{ID: 3, VehicleID: 7}})

	s.ReplaceVehicles(nil)

	snap := s.Snapshot()
	if len(snap.Vehicles) != 0 {
		t.Fatalf("vehicles = %#v, want empty after swap", snap.Vehicles)
	}
	if len(snap.Owners) != 1 || len(snap.Maintenance) != 1 {
		t.Fatalf("other collections changed: owners=%d maintenance=%d, want 1 and 1",
			len(snap.Owners), len(snap.Maintenance))
	}
}

func TestStore_RecordResultKeepsPreviousData(t *testing.T) {
	var s Store

	s.ReplaceOwners([]fleet.Owner{{ID: 1, RUT: "1-9"}})
	s.ReplaceStats(fleet.Stats{TotalOwners: 1})
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.RecordResult(origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Owners, prev.Owners) {
		t.Fatalf("owners changed on error: got %#v want %#v", snap.Owners, prev.Owners)
	}
	if snap.Stats != prev.Stats || snap.HasStats != prev.HasStats {
		t.Fatalf("stats changed on error: got %#v want %#v", snap.Stats, prev.Stats)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	s.RecordResult(nil)
	if snap := s.Snapshot(); snap.LastError != nil {
		t.Fatalf("LastError = %v, want cleared", snap.LastError)
	}
}
