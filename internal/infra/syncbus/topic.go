// Package syncbus implements the in-process cart event bus.
package syncbus

import (
	"sync"
)

type subscription[T any] struct {
	id      uint64
	handler func(T)
}

// Topic is a typed synchronous publish/subscribe channel.
// Publish calls every handler registered at the time of the call, in registration order, on the caller's goroutine.
type Topic[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription[T]
}

// Subscribe registers handler and returns the capability to deregister it. Calling the returned func more than once is harmless.
func (t *Topic[T]) Subscribe(handler func(T)) (unsubscribe func()) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, handler: handler})
	t.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { t.remove(id) })
	}
}

func (t *Topic[T]) remove(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, sub := range t.subs {
		if sub.id == id {
			// copy so an in-flight Publish keeps iterating its own snapshot
			next := make([]subscription[T], 0, len(t.subs)-1)
			next = append(next, t.subs[:i]...)
			t.subs = append(next, t.subs[i+1:]...)

			return
		}
	}
}

// Publish delivers payload to the current subscribers.
func (t *Topic[T]) Publish(payload T) {
	t.mu.Lock()
	subs := t.subs
	t.mu.Unlock()

	for _, sub := range subs {
		sub.handler(payload)
	}
}

// Len returns the number of registered subscribers.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.subs)
}
