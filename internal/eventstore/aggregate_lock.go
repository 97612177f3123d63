package eventstore

import "sync"

// aggregateLocks hands out one mutex per aggregate. Entries are
// reference counted and dropped once nobody holds or waits on them.
type aggregateLocks struct {
	mu    sync.Mutex
	locks map[string]*aggregateLock
}

type aggregateLock struct {
	mu   sync.Mutex
	refs int
}

func newAggregateLocks() *aggregateLocks {
	return &aggregateLocks{locks: make(map[string]*aggregateLock)}
}

// Lock blocks until the caller owns aggregateID and returns the release func.
func (l *aggregateLocks) Lock(aggregateID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[aggregateID]
	if !ok {
		entry = &aggregateLock{}
		l.locks[aggregateID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, aggregateID)
		}
		l.mu.Unlock()
	}
}

func (l *aggregateLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
