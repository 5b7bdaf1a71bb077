// Package stores provides the subscription plumbing shared by the build
// and preference state containers
package stores

import (
	"sort"
	"sync"
)

// Listener receives a state snapshot after each mutation
type Listener[S any] func(S)

// Notifier fans state snapshots out to subscribers. Stores embed one and
// call Notify after every mutation, outside their own state lock.
type Notifier[S any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener[S]
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (n *Notifier[S]) Subscribe(l Listener[S]) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[int]Listener[S])
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = l

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Notify delivers the snapshot to every current subscriber in registration
// order. Listener ids are assigned monotonically, so sorting them recovers
// that order from the map.
func (n *Notifier[S]) Notify(s S) {
	n.mu.Lock()
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener[S], 0, len(ids))
	for _, id := range ids {
		ls = append(ls, n.listeners[id])
	}
	n.mu.Unlock()

	for _, l := range ls {
		l(s)
	}
}
