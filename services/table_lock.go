package services

import "sync"

// tableLockRegistry hands out one mutex per table ID so the
// check-overlap-then-write sequence in CreateBooking runs as a critical
// section per table. Locks are never removed; the table inventory of a
// venue is small and bounded.
type tableLockRegistry struct {
	locks sync.Map
}

// acquire locks the mutex for tableID and returns the matching unlock.
func (r *tableLockRegistry) acquire(tableID uint) func() {
	v, _ := r.locks.LoadOrStore(tableID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
