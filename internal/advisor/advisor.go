// Package advisor is the scoring engine: a set of stateless heuristics that
// read a run state against the catalog and produce scores with human-readable
// reasons. Nothing here mutates the run; every function is deterministic for
// a given state.
package advisor

import (
	"sync"

	"hadeshelper/internal/catalog"
)

// Advisor bundles the catalog with the DPS memo cache.
type Advisor struct {
	cat *catalog.Catalog

	mu  sync.Mutex
	dps map[uint64]DPSEstimate
}

// New builds an advisor over a loaded catalog.
func New(cat *catalog.Catalog) *Advisor {
	return &Advisor{cat: cat, dps: map[uint64]DPSEstimate{}}
}

// Catalog exposes the catalog the advisor scores against.
func (a *Advisor) Catalog() *catalog.Catalog { return a.cat }
