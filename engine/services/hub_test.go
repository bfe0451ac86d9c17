package services

import (
	"errors"
	"testing"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/physics"
	"github.com/lixenwraith/dice-roller/service"
)

// fakeService records lifecycle calls into a shared journal
type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	journal  *[]string
	stops    int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	*f.journal = append(*f.journal, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.journal = append(*f.journal, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	f.stops++
	*f.journal = append(*f.journal, "stop:"+f.name)
	return nil
}

type subscribingService struct {
	fakeService
}

func (s *subscribingService) Subscribe(register func(service.Handler)) {
	register(events.HandlerFunc[*physics.DieState]{
		Types: []events.EventType{events.EventRollSettled},
		Fn:    func(*physics.DieState, events.GameEvent) {},
	})
}

func equalJournal(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("journal = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("journal = %v, want %v", got, want)
		}
	}
}

func TestHubLifecycleOrder(t *testing.T) {
	var journal []string
	h := NewHub()
	must(t, h.Register(&fakeService{name: "terminal", journal: &journal}))
	must(t, h.Register(&fakeService{name: "audio", deps: []string{"status"}, journal: &journal}))
	must(t, h.Register(&fakeService{name: "status", journal: &journal}))

	must(t, h.InitAll())
	must(t, h.StartAll())
	h.StopAll()

	equalJournal(t, journal, []string{
		"init:status", "init:terminal", "init:audio",
		"start:status", "start:terminal", "start:audio",
		"stop:audio", "stop:terminal", "stop:status",
	})
}

func TestHubInitFailureReleasesAttempted(t *testing.T) {
	var journal []string
	h := NewHub()
	failing := &fakeService{name: "history", deps: []string{"status"}, initErr: errors.New("disk full"), journal: &journal}
	must(t, h.Register(&fakeService{name: "status", journal: &journal}))
	must(t, h.Register(failing))

	if err := h.InitAll(); err == nil {
		t.Fatal("expected init error")
	}

	equalJournal(t, journal, []string{
		"init:status", "init:history",
		"stop:history", "stop:status",
	})

	// Rolled back hub has nothing left to stop
	h.StopAll()
	if failing.stops != 1 {
		t.Errorf("failing service stopped %d times", failing.stops)
	}
}

func TestHubStartFailureStopsAll(t *testing.T) {
	var journal []string
	h := NewHub()
	must(t, h.Register(&fakeService{name: "a", journal: &journal}))
	must(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: errors.New("no device"), journal: &journal}))
	must(t, h.Register(&fakeService{name: "c", deps: []string{"b"}, journal: &journal}))

	must(t, h.InitAll())
	if err := h.StartAll(); err == nil {
		t.Fatal("expected start error")
	}

	equalJournal(t, journal, []string{
		"init:a", "init:b", "init:c",
		"start:a", "start:b",
		"stop:c", "stop:b", "stop:a",
	})
}

func TestHubStopAllIdempotent(t *testing.T) {
	var journal []string
	svc := &fakeService{name: "only", journal: &journal}
	h := NewHub()
	must(t, h.Register(svc))
	must(t, h.InitAll())
	must(t, h.StartAll())

	h.StopAll()
	h.StopAll()
	if svc.stops != 1 {
		t.Errorf("stopped %d times, want 1", svc.stops)
	}
}

func TestHubRegistrationErrors(t *testing.T) {
	var journal []string
	h := NewHub()
	must(t, h.Register(&fakeService{name: "x", journal: &journal}))
	if err := h.Register(&fakeService{name: "x", journal: &journal}); !errors.Is(err, ErrDuplicateService) {
		t.Errorf("duplicate: %v", err)
	}

	h2 := NewHub()
	must(t, h2.Register(&fakeService{name: "x", deps: []string{"missing"}, journal: &journal}))
	if err := h2.InitAll(); !errors.Is(err, ErrUnknownDependency) {
		t.Errorf("missing dep: %v", err)
	}

	h3 := NewHub()
	must(t, h3.Register(&fakeService{name: "a", deps: []string{"b"}, journal: &journal}))
	must(t, h3.Register(&fakeService{name: "b", deps: []string{"a"}, journal: &journal}))
	if err := h3.InitAll(); !errors.Is(err, ErrCircularDependency) {
		t.Errorf("cycle: %v", err)
	}
}

func TestHubSubscribeAllAndNames(t *testing.T) {
	var journal []string
	h := NewHub()
	sub := &subscribingService{fakeService{name: "history", journal: &journal}}
	must(t, h.Register(sub))
	must(t, h.Register(&fakeService{name: "plain", journal: &journal}))
	must(t, h.InitAll())

	var registered int
	h.SubscribeAll(func(service.Handler) { registered++ })
	if registered != 1 {
		t.Errorf("registered %d handlers, want 1", registered)
	}

	if got := h.Names(); len(got) != 2 || got[0] != "history" || got[1] != "plain" {
		t.Errorf("names = %v", got)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
