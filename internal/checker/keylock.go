package checker

import "sync"

// keyLocker hands out one mutex per key and forgets it once nobody holds or
// waits for it.
type keyLocker[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyLocker[K comparable]() *keyLocker[K] {
	return &keyLocker[K]{locks: make(map[K]*refMutex)}
}

// Lock blocks until key is free and returns the matching unlock function.
func (l *keyLocker[K]) Lock(key K) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &refMutex{}
		l.locks[key] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// size returns the number of keys currently tracked.
func (l *keyLocker[K]) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
