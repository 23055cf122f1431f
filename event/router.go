package event

import "sync"

// Handler processes specific event types
// Implementations must not block: they run on the goroutine that published the event
type Handler interface {
	// HandleEvent processes a single event
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function subscribed to an explicit set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch on the publisher's goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Publish never holds the registration lock while a handler runs
type Router struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Subscribe registers fn for the given types, or for every type when none are given
func (r *Router) Subscribe(fn func(GameEvent), types ...EventType) {
	if len(types) == 0 {
		types = AllTypes()
	}
	r.Register(HandlerFunc{Types: types, Fn: fn})
}

// Publish routes ev to every handler registered for its type
func (r *Router) Publish(ev GameEvent) {
	r.mu.RLock()
	handlers := r.handlers[ev.Type]
	snapshot := make([]Handler, len(handlers))
	copy(snapshot, handlers)
	r.mu.RUnlock()

	for _, h := range snapshot {
		h.HandleEvent(ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}
