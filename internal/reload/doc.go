// Package reload keeps the local snapshots consistent with the backend
// after mutations.
//
// # Why reload sets
//
// The backend enforces the entity graph: deleting an owner cascades
// through that owner's vehicles to their maintenance records, and
// maintenance mutations move vehicle mileage. The client never walks
// that graph locally; it re-fetches every collection a mutation could
// have changed and swaps each one in wholesale. Simpler than local
// invalidation, and the backend stays the single source of truth.
//
// # Reload sets
//
//	mutation on   reloads
//	owner         owners, vehicles, maintenance, stats
//	vehicle       vehicles, maintenance, stats
//	maintenance   maintenance, vehicles, stats
//
// Stats is always re-fetched from the aggregate endpoint rather than
// recomputed from the maintenance list; the backend may count records
// the client cannot see.
//
// # Failure semantics
//
// Reloads in a set are independent. One failed list leaves that one
// collection at its previous snapshot while the others still swap; the
// joined error is recorded on the store and returned so the UI can show
// a single diagnostic. There is no retry and no rollback.
package reload
