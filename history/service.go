package history

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/dice-roller/core"
	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/history/sqlite"
	"github.com/lixenwraith/dice-roller/physics"
	"github.com/lixenwraith/dice-roller/service"
)

// writeQueueSize bounds settled rolls waiting for the database writer
const writeQueueSize = 32

// writeTimeout bounds one database append
const writeTimeout = 2 * time.Second

// Service owns the in-memory log and, when a database path is set, the persistent store
// Settled rolls are written by a background goroutine so the simulation step never blocks on disk
type Service struct {
	log    *Log
	dbPath string

	store  *sqlite.Store
	writes chan sqlite.Record

	mu       sync.Mutex // Guards closed and sends on writes
	closed   bool
	started  bool
	blocking bool
	wg       sync.WaitGroup
}

// NewService wraps log; an empty dbPath keeps history in memory only
func NewService(l *Log, dbPath string) *Service {
	return &Service{
		log:    l,
		dbPath: dbPath,
		writes: make(chan sqlite.Record, writeQueueSize),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "history"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init opens the store and seeds the log with the most recent stored rolls
func (s *Service) Init(args ...any) error {
	if s.dbPath == "" {
		return nil
	}
	store, err := sqlite.Open(s.dbPath)
	if err != nil {
		return err
	}
	s.store = store

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	recent, err := store.Recent(ctx, s.log.Capacity())
	if err != nil {
		return err
	}
	values := make([]int, len(recent))
	for i, rec := range recent {
		values[i] = rec.Value
	}
	s.log.Seed(values)
	return nil
}

// Start launches the database writer when a store is open
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil || s.closed || s.started {
		return nil
	}
	s.started = true
	s.wg.Add(1)
	core.Go(s.writerLoop)
	return nil
}

// Stop drains pending writes and closes the store, idempotent
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.writes)
	started := s.started
	s.mu.Unlock()

	if started {
		s.wg.Wait()
	} else if s.store != nil {
		// Never started: flush anything queued between Subscribe and Stop
		s.wg.Add(1)
		s.writerLoop()
	}
	return s.store.Close()
}

// SetBlockingWrites makes a started service wait for queue space instead of dropping
// rolls; batch runs use it so every result reaches the database
func (s *Service) SetBlockingWrites(block bool) {
	s.mu.Lock()
	s.blocking = block
	s.mu.Unlock()
}

// Log returns the in-memory log
func (s *Service) Log() *Log {
	return s.log
}

// Store returns the persistent store, nil when running in memory
func (s *Service) Store() *sqlite.Store {
	return s.store
}

// Subscribe implements service.Subscriber
func (s *Service) Subscribe(register func(service.Handler)) {
	register(s.log)
	if s.store != nil {
		register(events.HandlerFunc[*physics.DieState]{
			Types: []events.EventType{events.EventRollSettled},
			Fn:    s.enqueue,
		})
	}
}

// enqueue hands a settled roll to the writer without blocking the simulation
func (s *Service) enqueue(_ *physics.DieState, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.RollSettledPayload)
	if !ok {
		return
	}
	rec := sqlite.Record{Value: p.Value, Bounces: p.Bounces, Steps: p.Steps, RolledAt: ev.Timestamp}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.blocking && s.started {
		s.writes <- rec
		return
	}
	select {
	case s.writes <- rec:
	default:
		log.Printf("history: write queue full, dropping roll %d", p.Value)
	}
}

func (s *Service) writerLoop() {
	defer s.wg.Done()
	for rec := range s.writes {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := s.store.Append(ctx, rec); err != nil {
			log.Printf("history: append roll: %v", err)
		}
		cancel()
	}
}
