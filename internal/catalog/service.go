// Package catalog implements the lifecycle rules for the estate catalog:
// hierarchical ownership (working area -> property -> unit), name uniqueness
// scoped to live rows, and the rename-before-soft-delete protocol.
package catalog

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/beesaferoot/estate-catalog/internal/store"
)

// Service orchestrates the entity stores into the catalog's business
// operations. All storage access goes through the injected stores, so tests
// can run the full service against an in-memory database.
type Service struct {
	workingAreas *store.WorkingAreaStore
	properties   *store.PropertyStore
	units        *store.UnitStore
	supports     *store.SupportStore
}

func NewService(
	workingAreas *store.WorkingAreaStore,
	properties *store.PropertyStore,
	units *store.UnitStore,
	supports *store.SupportStore,
) *Service {
	return &Service{
		workingAreas: workingAreas,
		properties:   properties,
		units:        units,
		supports:     supports,
	}
}

var lastDeleteStamp atomic.Int64

// deleteStamp returns epoch milliseconds, bumped past the previous stamp when
// two deletes land in the same millisecond. Strict monotonicity keeps repeated
// delete/recreate cycles of the same name from ever colliding on the unique
// index.
func deleteStamp() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastDeleteStamp.Load()
		if now <= last {
			now = last + 1
		}
		if lastDeleteStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

// deletedName derives the permanently mutated name a row carries once it is
// soft-deleted.
func deletedName(name string) string {
	return fmt.Sprintf("%s_d%d", name, deleteStamp())
}
