package lambda

import (
	"fmt"
	"sync/atomic"
)

// NameSupply issues identifiers that are unique for the lifetime of
// the supply. It is the only mutable state shared between reduction
// calls: issuance is a single atomic increment, so a supply is safe to
// share across concurrent reductions without further locking.
//
// Capture avoidance depends on no two calls ever returning the same
// identifier, which is why renaming during substitution always draws
// from the supply instead of deriving names from the term.
type NameSupply struct {
	counter int64
}

// NewNameSupply creates an independent supply. Tests typically give
// each reducer its own supply so fresh names are reproducible in
// isolation.
func NewNameSupply() *NameSupply {
	return &NameSupply{}
}

// Fresh returns the next unique identifier, formatted as "v1", "v2",
// and so on.
func (s *NameSupply) Fresh() string {
	id := atomic.AddInt64(&s.counter, 1)
	return fmt.Sprintf("v%d", id)
}
