package client

import "sync"

// Event names a refresh broadcast between screens.
type Event string

const (
	RefreshDevices Event = "refreshDevices"
	RefreshMembers Event = "refreshMembers"
)

// Events is an in-process publish/subscribe bus.
type Events struct {
	mu   sync.RWMutex
	next int
	subs map[Event]map[int]func()
}

// NewEvents creates an empty bus.
func NewEvents() *Events {
	return &Events{subs: make(map[Event]map[int]func())}
}

// Subscribe registers fn for ev and returns a func that removes it.
func (e *Events) Subscribe(ev Event, fn func()) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.next
	e.next++
	if e.subs[ev] == nil {
		e.subs[ev] = make(map[int]func())
	}
	e.subs[ev][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs[ev], id)
			e.mu.Unlock()
		})
	}
}

// Publish calls every subscriber of ev synchronously. Handlers run outside the lock.
func (e *Events) Publish(ev Event) {
	e.mu.RLock()
	handlers := make([]func(), 0, len(e.subs[ev]))
	for _, fn := range e.subs[ev] {
		handlers = append(handlers, fn)
	}
	e.mu.RUnlock()

	for _, fn := range handlers {
		fn()
	}
}
