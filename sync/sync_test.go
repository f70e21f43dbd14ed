package sync

import (
	"sync"

	"github.com/travis-g/dicecore"
)

type rwMutexer interface {
	sync.Locker
	RLock()
	RUnlock()
}

// ensure RWMutexRoller can be used like an RWMutex for thread safety
var _ = rwMutexer(&RWMutexRoller{})

// ensure RWMutexRoller implements Roller
var _ dicecore.Roller = (*RWMutexRoller)(nil)
