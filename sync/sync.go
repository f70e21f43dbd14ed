/*
Package sync implements a thread-safe wrapper for a dicecore.Roller.
*/
package sync

import (
	"context"
	"sync"

	"github.com/travis-g/dicecore"
)

// LockRLockRoller is implemented by any value that implements
// dicecore.Roller, sync.Locker, and has an RLock/RUnlock method.
type LockRLockRoller interface {
	dicecore.Roller
	sync.Locker
	RLock()
	RUnlock()
}

// RWMutexRoller is a dicecore.Roller wrapped with a sync.RWMutex, for
// sharing one Roller (e.g. a seeded RNGRoller, or a CallbackRoller backed
// by a single external source) across concurrent Evaluators.
type RWMutexRoller struct {
	l      sync.RWMutex
	roller dicecore.Roller
}

// Wrap creates an RWMutexRoller around roller.
func Wrap(roller dicecore.Roller) *RWMutexRoller {
	return &RWMutexRoller{roller: roller}
}

// Roll write-locks the embedded Roller and delegates to it.
func (r *RWMutexRoller) Roll(ctx context.Context, ndice, nsides, min int, dieType dicecore.DieType) ([]int, error) {
	r.l.Lock()
	defer r.l.Unlock()
	return r.roller.Roll(ctx, ndice, nsides, min, dieType)
}

// RollVals write-locks the embedded Roller and delegates to it.
func (r *RWMutexRoller) RollVals(ctx context.Context, ndice int, vals []int, dieType dicecore.DieType) ([]int, error) {
	r.l.Lock()
	defer r.l.Unlock()
	return r.roller.RollVals(ctx, ndice, vals, dieType)
}

// Lock locks the mutex of RWMutexRoller.
func (r *RWMutexRoller) Lock() { r.l.Lock() }

// Unlock unlocks the mutex of RWMutexRoller.
func (r *RWMutexRoller) Unlock() { r.l.Unlock() }

// RLock read-locks the mutex of RWMutexRoller.
func (r *RWMutexRoller) RLock() { r.l.RLock() }

// RUnlock read-unlocks the mutex of RWMutexRoller.
func (r *RWMutexRoller) RUnlock() { r.l.RUnlock() }
