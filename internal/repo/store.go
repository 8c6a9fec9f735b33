// Package repo contains the record stores for the equipment ledger.
// RecordStore is the narrow contract the service layer depends on; memory.go
// and postgres.go are its two implementations. No business logic lives here.
package repo

import (
	"context"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// RecordStore defines the persistence operations for equipment records.
// The service layer depends on this interface, not a concrete store, so the
// in-memory store can be swapped for Postgres without touching the service.
type RecordStore interface {
	// Save persists e. A zero ID appends the record and assigns the next
	// sequential identifier; a non-zero ID overwrites the existing record.
	// Returns domain.ErrNotFound when overwriting an identifier that is not live.
	Save(ctx context.Context, e domain.Equipment) (domain.Equipment, error)

	// Get returns the live record with the given identifier.
	// Returns domain.ErrNotFound if there is none.
	Get(ctx context.Context, id int) (domain.Equipment, error)

	// Delete removes the record with the given identifier and reports whether
	// a record was removed. An absent identifier is not an error.
	Delete(ctx context.Context, id int) (bool, error)

	// List returns every live record in no particular order.
	List(ctx context.Context) ([]domain.Equipment, error)
}
