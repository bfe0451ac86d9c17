package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dice-roller/core"
)

// ScreenFactory creates the tcell screen; tests substitute a simulation screen
type ScreenFactory func() (tcell.Screen, error)

// Service manages screen lifecycle and input polling
type Service struct {
	newScreen ScreenFactory
	resetOut  io.Writer // Receives EmergencyReset when screen setup fails halfway
	screen    tcell.Screen
	colorMode ColorMode
	eventCh   chan tcell.Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	mu        sync.Mutex
	running   bool
	finiOnce  sync.Once
}

// NewService creates a terminal service; a nil factory uses tcell.NewScreen
func NewService(factory ScreenFactory) *Service {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &Service{
		newScreen: factory,
		resetOut:  os.Stdout,
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
// The first ColorMode in args selects the palette, otherwise DetectColorMode()
func (s *Service) Init(args ...any) error {
	s.colorMode = DetectColorMode()
	for _, arg := range args {
		if cm, ok := arg.(ColorMode); ok {
			s.colorMode = cm
			break
		}
	}

	// tcell reads this before Init
	if s.colorMode == ColorMode256 {
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		EmergencyReset(s.resetOut)
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s.screen = screen
	core.SetCrashTerminal(s)
	return nil
}

// Start implements service.Service - launches input polling goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.running || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop forwards screen events until the screen is finalized or stop is signalled
func (s *Service) pollLoop() {
	defer close(s.doneCh)

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

// Stop implements service.Service - signals stop and restores the terminal
func (s *Service) Stop() error {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if wasRunning {
		close(s.stopCh)
	}

	// Fini makes PollEvent return nil, unblocking the poller
	core.SetCrashTerminal(nil)
	s.Fini()

	if wasRunning {
		<-s.doneCh
	}
	return nil
}

// Fini restores the terminal exactly once; implements core.Finalizer
// Called from the crash handler, so it must not touch crash handler state
func (s *Service) Fini() {
	s.finiOnce.Do(func() {
		if s.screen != nil {
			s.screen.Fini()
		}
	})
}

// Screen returns the wrapped screen, nil before Init
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// ColorMode returns the resolved colour mode
func (s *Service) ColorMode() ColorMode {
	return s.colorMode
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
