package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Service manages the tcell screen lifecycle and input polling
type Service struct {
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	colorMode ColorMode

	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	running     bool
	stopped     bool
}

// NewService creates a terminal service that opens the controlling terminal on Init
func NewService() *Service {
	return newService(nil, tcell.NewScreen)
}

// NewServiceWithScreen creates a service driving an existing screen, e.g. a simulation screen
func NewServiceWithScreen(screen tcell.Screen) *Service {
	return newService(screen, nil)
}

func newService(screen tcell.Screen, factory func() (tcell.Screen, error)) *Service {
	return &Service{
		screen:    screen,
		newScreen: factory,
		eventCh:   make(chan tcell.Event, 256),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: ColorMode (optional, defaults to DetectColorMode())
func (s *Service) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	s.colorMode = DetectColorMode()
	if len(args) > 0 {
		if cm, ok := args[0].(ColorMode); ok {
			s.colorMode = cm
		}
	}

	if s.screen == nil {
		screen, err := s.newScreen()
		if err != nil {
			return fmt.Errorf("terminal create: %w", err)
		}
		s.screen = screen
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()

	s.initialized = true
	return nil
}

// Start implements service.Service - launches input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("terminal start: not initialized")
	}
	if s.running || s.stopped {
		return nil
	}
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop reads input events until the screen is finalized
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.screen.Fini()
			HandleCrash(r)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements service.Service - stops polling and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || !s.initialized {
		return nil
	}
	s.stopped = true

	close(s.stopCh)
	// Fini unblocks PollEvent
	s.screen.Fini()

	if s.running {
		<-s.doneCh
		s.running = false
	}
	return nil
}

// Screen returns the wrapped screen, nil before Init
func (s *Service) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// ColorMode returns the resolved color mode
func (s *Service) ColorMode() ColorMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorMode
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
