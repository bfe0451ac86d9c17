package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/parameter"
)

// recordingPlayer counts played streamers and drains them
type recordingPlayer struct {
	played []int // sample count per streamer
	closes int
}

func (p *recordingPlayer) Play(s beep.Streamer) {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	p.played = append(p.played, total)
}

func (p *recordingPlayer) Close() { p.closes++ }

func newTestService(enabled bool, openErr error) (*Service, *recordingPlayer) {
	cfg := DefaultConfig()
	cfg.Enabled = enabled
	rec := &recordingPlayer{}
	svc := NewService(cfg)
	svc.open = func(Config) (Player, error) {
		if openErr != nil {
			return nil, openErr
		}
		return rec, nil
	}
	return svc, rec
}

func TestServiceDisabledByDefault(t *testing.T) {
	svc, rec := newTestService(false, nil)
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	if !svc.IsDisabled() {
		t.Fatal("muted config should disable audio")
	}
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventRollStarted})
	if len(rec.played) != 0 {
		t.Error("disabled service played sound")
	}
}

func TestServiceBackendFailureDegrades(t *testing.T) {
	svc, _ := newTestService(true, errors.New("no audio device"))
	if err := svc.Init(); err != nil {
		t.Fatalf("Init returned %v, want graceful disable", err)
	}
	if !svc.IsDisabled() {
		t.Error("failed backend should disable audio")
	}
	if err := svc.Stop(); err != nil {
		t.Error(err)
	}
}

func TestServicePlaysEvents(t *testing.T) {
	svc, rec := newTestService(true, nil)
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}

	svc.HandleEvent(nil, events.GameEvent{Type: events.EventRollStarted})
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventDieBounced, Payload: &events.DieBouncedPayload{Bounce: 1, ImpactSpeed: 0.2}})
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventDieBounced, Payload: &events.DieBouncedPayload{Bounce: 9, ImpactSpeed: 0.001}})
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventRollSettled, Payload: &events.RollSettledPayload{Value: 6}})

	if len(rec.played) != 3 {
		t.Fatalf("played %d sounds, want 3 (soft bounce is silent)", len(rec.played))
	}
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if rec.played[0] != rate.N(parameter.RollSoundDuration) {
		t.Errorf("roll sound %d samples, want %d", rec.played[0], rate.N(parameter.RollSoundDuration))
	}
	if rec.played[1] != rate.N(parameter.BounceSoundDuration) {
		t.Errorf("bounce sound %d samples", rec.played[1])
	}

	if !svc.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventRollStarted})
	if len(rec.played) != 3 {
		t.Error("muted service played sound")
	}
}

func TestServiceInitMuteArg(t *testing.T) {
	svc, _ := newTestService(true, nil)
	if err := svc.Init(true); err != nil {
		t.Fatal(err)
	}
	if !svc.IsDisabled() {
		t.Error("mute arg should disable audio")
	}
}

func TestServiceStopIdempotent(t *testing.T) {
	svc, rec := newTestService(true, nil)
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	svc.Stop()
	svc.Stop()
	if rec.closes != 1 {
		t.Errorf("player closed %d times", rec.closes)
	}
	svc.HandleEvent(nil, events.GameEvent{Type: events.EventRollStarted})
	if len(rec.played) != 0 {
		t.Error("stopped service played sound")
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)

	// Constant input exposes the envelope gain directly
	env := NewEnvelope(constant{}, 100e6, 10e6, 20e6, rate) // 100 samples, 10 attack, 20 release
	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("envelope produced %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample %v, want 0", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample %v, want 1", buf[50][0])
	}
	if buf[99][0] >= 0.1 {
		t.Errorf("last sample %v not released", buf[99][0])
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("drained envelope returned %d,%v", n, ok)
	}
}

func TestSettleSoundLength(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	rec := &recordingPlayer{}
	rec.Play(SettleSound(cfg, 3))
	d := parameter.SettleSoundDuration
	want := rate.N(d/3) + rate.N(d*2/3)
	if rec.played[0] != want {
		t.Errorf("settle sound %d samples, want %d", rec.played[0], want)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	bad := DefaultConfig()
	bad.Volume = 1.5
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("volume 1.5: %v", err)
	}
}

// constant streams 1.0 forever
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constant) Err() error { return nil }
