// Package state provides thread-safe snapshot storage for fleetdeck.
//
// The Store holds the last successfully fetched copy of each backend
// collection: owners, vehicles, maintenance records, and the aggregate
// stats. Collections are read-only projections of the backend; they are
// only ever replaced wholesale by a fresh fetch, never patched in place.
//
// Each Replace method swaps exactly one collection under the write lock,
// so a reload cycle that fails halfway leaves every untouched collection
// at its previous value. RecordResult closes a cycle by recording (or
// clearing) the aggregate error without disturbing stored data.
//
// Snapshot returns defensive copies; callers may mutate what they get
// back freely. The zero value Store is ready to use.
package state
