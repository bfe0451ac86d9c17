package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/physics"
	"github.com/lixenwraith/dice-roller/service"
)

// Service plays roll, bounce and settle sounds for simulation events
// Handles graceful degradation when no audio backend is available: the service stays
// registered but disabled, and handlers become no-ops
type Service struct {
	cfg      Config
	open     func(Config) (Player, error)
	player   Player
	disabled atomic.Bool
	muted    atomic.Bool
	stopOnce sync.Once
}

// NewService creates an audio service using the system speaker
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg, open: openSpeaker}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// The first bool in args is a mute override (true = muted) applied on top of Config.Enabled
// Opens the speaker when enabled; sets disabled on failure (no error returned)
func (s *Service) Init(args ...any) error {
	for _, arg := range args {
		if muted, ok := arg.(bool); ok {
			s.cfg.Enabled = !muted
			break
		}
	}
	if !s.cfg.Enabled {
		s.disabled.Store(true)
		return nil
	}
	if err := s.cfg.Validate(); err != nil {
		log.Printf("audio: %v, continuing without sound", err)
		s.disabled.Store(true)
		return nil
	}

	player, err := s.open(s.cfg)
	if err != nil {
		log.Printf("audio: speaker init: %v, continuing without sound", err)
		s.disabled.Store(true)
		return nil
	}
	s.player = player
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service, releases the speaker once
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.disabled.Store(true)
		if s.player != nil {
			s.player.Close()
		}
	})
	return nil
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// ToggleMute flips the runtime mute and returns the new state
func (s *Service) ToggleMute() bool {
	for {
		cur := s.muted.Load()
		if s.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// IsMuted reports the runtime mute
func (s *Service) IsMuted() bool {
	return s.muted.Load()
}

// Subscribe implements service.Subscriber
func (s *Service) Subscribe(register func(service.Handler)) {
	register(s)
}

// HandleEvent implements events.Handler
func (s *Service) HandleEvent(_ *physics.DieState, ev events.GameEvent) {
	if s.disabled.Load() || s.muted.Load() || s.player == nil {
		return
	}

	var stream beep.Streamer
	switch ev.Type {
	case events.EventRollStarted:
		stream = RollSound(s.cfg)
	case events.EventDieBounced:
		if p, ok := ev.Payload.(*events.DieBouncedPayload); ok {
			stream = BounceSound(s.cfg, p.ImpactSpeed)
		}
	case events.EventRollSettled:
		if p, ok := ev.Payload.(*events.RollSettledPayload); ok {
			stream = SettleSound(s.cfg, p.Value)
		}
	}
	if stream != nil {
		s.player.Play(stream)
	}
}

// EventTypes implements events.Handler
func (s *Service) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRollStarted,
		events.EventDieBounced,
		events.EventRollSettled,
	}
}
