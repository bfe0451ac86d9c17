package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/history/sqlite"
	"github.com/lixenwraith/dice-roller/service"
)

func settled(value int) events.GameEvent {
	return events.GameEvent{
		Type:      events.EventRollSettled,
		Payload:   &events.RollSettledPayload{Value: value, Bounces: 7, Steps: 55},
		Timestamp: time.Now(),
	}
}

func subscribeAll(svc *Service) []service.Handler {
	var handlers []service.Handler
	svc.Subscribe(func(h service.Handler) { handlers = append(handlers, h) })
	return handlers
}

func TestServiceMemoryOnly(t *testing.T) {
	l, err := New(5)
	require.NoError(t, err)
	svc := NewService(l, "")

	require.NoError(t, svc.Init())
	require.NoError(t, svc.Start())
	handlers := subscribeAll(svc)
	require.Len(t, handlers, 1)

	handlers[0].HandleEvent(nil, settled(2))
	assert.Equal(t, []int{2}, l.Values())
	assert.Nil(t, svc.Store())

	require.NoError(t, svc.Stop())
	require.NoError(t, svc.Stop())
}

func TestServicePersistsAndSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	l, _ := New(10)
	svc := NewService(l, path)
	require.NoError(t, svc.Init())
	require.NoError(t, svc.Start())

	handlers := subscribeAll(svc)
	require.Len(t, handlers, 2)
	for _, v := range []int{1, 6, 3} {
		for _, h := range handlers {
			h.HandleEvent(nil, settled(v))
		}
	}
	require.NoError(t, svc.Stop())

	// Late events after Stop are dropped, not panicking on a closed channel
	handlers[1].HandleEvent(nil, settled(4))

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	require.NoError(t, store.Close())

	seeded, _ := New(2)
	again := NewService(seeded, path)
	require.NoError(t, again.Init())
	defer again.Stop()
	assert.Equal(t, []int{3, 6}, seeded.Values())
}

func TestServiceStopWithoutStartFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	l, _ := New(10)
	svc := NewService(l, path)
	require.NoError(t, svc.Init())

	handlers := subscribeAll(svc)
	handlers[1].HandleEvent(nil, settled(5))
	require.NoError(t, svc.Stop())

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()
	recent, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 5, recent[0].Value)
}

func TestServiceBlockingWritesKeepEveryRoll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	l, _ := New(10)
	svc := NewService(l, path)
	svc.SetBlockingWrites(true)
	require.NoError(t, svc.Init())
	require.NoError(t, svc.Start())

	handlers := subscribeAll(svc)
	const n = writeQueueSize * 4
	for i := 0; i < n; i++ {
		handlers[1].HandleEvent(nil, settled(i%6+1))
	}
	require.NoError(t, svc.Stop())

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()
	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, stats.Total)
}
