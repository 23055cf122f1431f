package accessibility

import "sync"

// Listener receives the new settings and the previous ones after an update
type Listener func(current, previous Settings)

// Store is the live accessibility profile
// Readers take a copy through Settings; writers replace the whole profile through Update
type Store struct {
	mu        sync.RWMutex
	settings  Settings
	listeners []Listener
}

// NewStore creates a store holding the normalized initial settings
func NewStore(initial Settings) *Store {
	return &Store{settings: initial.Normalize()}
}

// Settings returns the current profile
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update normalizes and stores next, then notifies listeners outside the lock
func (s *Store) Update(next Settings) Settings {
	next = next.Normalize()

	s.mu.Lock()
	previous := s.settings
	s.settings = next
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if previous != next {
		for _, l := range listeners {
			l(next, previous)
		}
	}
	return next
}

// Modify applies fn to a copy of the current profile and stores the result
func (s *Store) Modify(fn func(*Settings)) Settings {
	next := s.Settings()
	fn(&next)
	return s.Update(next)
}

// Subscribe registers a listener for subsequent updates
func (s *Store) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Cycle returns the value following current in options, wrapping around
// A current value absent from options yields the first option
func Cycle(current int, options []int) int {
	if len(options) == 0 {
		return current
	}
	for i, v := range options {
		if v == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
