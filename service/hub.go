package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Sentinel errors, wrapped with the offending service names
var (
	ErrDuplicate         = errors.New("service already registered")
	ErrUnknownDependency = errors.New("unregistered dependency")
	ErrCycle             = errors.New("circular dependency")
	ErrNotInitialized    = errors.New("services not initialized")
)

// State is the lifecycle position of a registered service
type State uint8

const (
	StateRegistered State = iota
	StateInitialized
	StateRunning
	StateStopped
)

var stateNames = map[State]string{
	StateRegistered:  "registered",
	StateInitialized: "initialized",
	StateRunning:     "running",
	StateStopped:     "stopped",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// holdsResources reports whether Stop must still be called
func (s State) holdsResources() bool {
	return s == StateInitialized || s == StateRunning
}

// Hub owns the infrastructure services of one game process
// It orders them by dependency and tracks where each one is in its lifecycle
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	states   map[string]State
	sorted   []string // Dependency order, computed on InitAll
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		states:   make(map[string]State),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}

	h.services[name] = svc
	h.states[name] = StateRegistered
	h.sorted = nil // Invalidate cached order
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts to type T
// Panics if service not found or type mismatch
func MustGet[T any](h *Hub, name string) T {
	h.mu.RLock()
	svc, ok := h.services[name]
	h.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}

	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// State returns the lifecycle state of name
func (h *Hub) State(name string) (State, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	st, ok := h.states[name]
	return st, ok
}

// Order returns the dependency order used by the last InitAll, nil before it
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.sorted == nil {
		return nil
	}
	out := make([]string, len(h.sorted))
	copy(out, h.sorted)
	return out
}

// InitAll resolves dependencies and calls Init on every service
// args maps a service name to the arguments passed to its Init
// On failure, already-initialized services are stopped in reverse order
func (h *Hub) InitAll(args map[string][]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Compute dependency order if not cached
	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	for _, name := range h.sorted {
		if err := h.services[name].Init(args[name]...); err != nil {
			// Rollback: the failed service acquired nothing, stop the rest
			h.stopAllLocked()
			return fmt.Errorf("init %s: %w", name, err)
		}
		h.states[name] = StateInitialized
	}

	return nil
}

// StartAll calls Start on every initialized service in dependency order
// On failure, every service still holding resources is stopped in reverse order,
// including the one that failed since its Init already ran
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		return ErrNotInitialized
	}

	for _, name := range h.sorted {
		if h.states[name] != StateInitialized {
			continue
		}
		if err := h.services[name].Start(); err != nil {
			h.stopAllLocked()
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.states[name] = StateRunning
	}

	return nil
}

// StopAll stops every initialized or running service in reverse dependency order
// Errors are logged, never returned, so every service gets its Stop call
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopAllLocked()
}

func (h *Hub) stopAllLocked() {
	for i := len(h.sorted) - 1; i >= 0; i-- {
		name := h.sorted[i]
		if !h.states[name].holdsResources() {
			continue
		}
		if err := h.services[name].Stop(); err != nil {
			log.Printf("service %s stop failed: %v", name, err)
		}
		h.states[name] = StateStopped
	}
}

// topologicalSort computes initialization order using Kahn's algorithm
// Services without mutual dependencies are ordered by name so startup is reproducible
func (h *Hub) topologicalSort() ([]string, error) {
	// Build dependents list and in-degree map
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string) // dep -> services that depend on it

	for name := range h.services {
		inDegree[name] = 0
	}

	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("%w: %s needs %s", ErrUnknownDependency, name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	// Seed with services that depend on nothing
	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		// Release dependents whose last dependency just resolved
		next := dependents[name]
		sort.Strings(next)
		for _, dependent := range next {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		var stuck []string
		for name, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("%w among %s", ErrCycle, strings.Join(stuck, ", "))
	}

	return result, nil
}

// Names returns all registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
