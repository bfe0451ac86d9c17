package main

import (
	"math/rand"
	"os"
	"testing"

	"github.com/lixenwraith/dice-roller/audio"
	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/history"
	"github.com/lixenwraith/dice-roller/physics"
)

func TestGameReleaseFreesImages(t *testing.T) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("ebiten images need a display")
	}

	cfg := physics.DefaultConfig()
	sim := engine.NewSimulator(cfg, rand.New(rand.NewSource(1)), nil, nil)
	hist, err := history.New(10)
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(sim, hist, audio.NewService(audio.DefaultConfig()), cfg.HalfExtent)
	if g.whiteImage == nil {
		t.Fatal("white image not created")
	}

	g.release()
	if g.whiteImage != nil {
		t.Error("white image kept after release")
	}
	g.release()
}
