package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/dice-roller/audio"
	"github.com/lixenwraith/dice-roller/config"
	"github.com/lixenwraith/dice-roller/core"
	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/engine/services"
	"github.com/lixenwraith/dice-roller/history"
	"github.com/lixenwraith/dice-roller/render"
	"github.com/lixenwraith/dice-roller/render/renderers"
	"github.com/lixenwraith/dice-roller/service"
	"github.com/lixenwraith/dice-roller/status"
	"github.com/lixenwraith/dice-roller/terminal"
)

var (
	tuningFlag  = flag.String("tuning", "", "TOML tuning file applied over defaults, before DICE_ env vars")
	debugFlag   = flag.Bool("debug", false, "Log to logs/dice-roller.log and show the status overlay")
	soundFlag   = flag.Bool("sound", false, "Enable sound effects")
	historyFlag = flag.String("history-db", "", "SQLite file for persistent roll history")
	colorFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256")
	seedFlag    = flag.Int64("seed", 0, "Random seed for throws, 0 picks one")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Terminal restore on a crash in the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*tuningFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
		return 1
	}

	// Explicit flags win over file and env
	var soundSet bool
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			soundSet = true
		case "history-db":
			cfg.History.DB = *historyFlag
		case "color":
			cfg.Display.ColorMode = *colorFlag
		case "debug":
			cfg.Display.Debug = *debugFlag
		}
	})

	colorMode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
		return 1
	}

	seed := *seedFlag
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
			return 1
		}
	}
	log.Printf("config loaded, seed %d, color %v", seed, colorMode)

	histLog, err := history.New(cfg.History.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
		return 1
	}

	statusSvc := status.NewService()
	termSvc := terminal.NewService(nil)
	audioSvc := audio.NewService(cfg.Audio)
	histSvc := history.NewService(histLog, cfg.History.DB)

	hub := services.NewHub()
	for _, svc := range []service.Service{statusSvc, termSvc, audioSvc, histSvc} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
			return 1
		}
	}

	initArgs := []any{colorMode}
	if soundSet {
		initArgs = append(initArgs, !*soundFlag)
	}
	if err := hub.InitAll(initArgs...); err != nil {
		fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "dice-roller: %v\n", err)
		return 1
	}
	log.Printf("services started: %v", hub.Names())

	sim := engine.NewSimulator(cfg.Physics, rand.New(rand.NewSource(seed)), nil, statusSvc.Registry())
	hub.SubscribeAll(sim.Register)

	clock := engine.NewPausableClock(nil)
	scheduler := engine.NewClockScheduler(sim, clock, cfg.TickInterval())

	// One frame per scheduler tick; a frame still pending absorbs the next signal
	redraw := make(chan struct{}, 1)
	scheduler.SetTickHook(func(int) {
		select {
		case redraw <- struct{}{}:
		default:
		}
	})
	scheduler.Start()
	defer scheduler.Stop()

	screen := termSvc.Screen()
	width, height := screen.Size()

	palette := render.DefaultPalette()
	orchestrator := render.NewRenderOrchestrator(screen, width, height,
		render.Cell{Rune: ' ', Style: render.Style(palette.Text, palette.Background)})

	debugOverlay := renderers.NewDebugRenderer(palette)
	debugOverlay.SetVisible(cfg.Display.Debug)

	orchestrator.Register(renderers.NewSceneRenderer(cfg.Physics.HalfExtent, palette), render.PriorityScene)
	orchestrator.Register(renderers.NewTitleRenderer(palette), render.PriorityUI)
	orchestrator.Register(renderers.NewHistoryRenderer(palette), render.PriorityUI)
	orchestrator.Register(renderers.NewTipRenderer(palette), render.PriorityUI)
	orchestrator.Register(renderers.NewSpinnerRenderer(palette), render.PriorityOverlay)
	orchestrator.Register(renderers.NewResultRenderer(palette), render.PriorityOverlay)
	orchestrator.Register(renderers.NewPausedRenderer(palette), render.PriorityOverlay)
	orchestrator.Register(debugOverlay, render.PriorityDebug)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var input inputMapper
	for {
		select {
		case ev := <-termSvc.Events():
			switch input.translate(ev) {
			case actionRoll:
				sim.RequestRoll()
			case actionPause:
				paused := clock.Toggle()
				log.Printf("paused=%v", paused)
			case actionClear:
				sim.ClearHistory()
			case actionDebug:
				debugOverlay.SetVisible(!debugOverlay.IsVisible())
			case actionMute:
				audioSvc.ToggleMute()
			case actionQuit:
				log.Printf("quit requested")
				return 0
			case actionResize:
				width, height = screen.Size()
				orchestrator.Resize(width, height)
			}

		case sig := <-sigCh:
			log.Printf("signal %v, shutting down", sig)
			return 0

		case <-redraw:
			orchestrator.RenderFrame(render.RenderContext{
				Width:         width,
				Height:        height,
				Snapshot:      sim.Snapshot(),
				HistoryValues: histLog.Values(),
				Average:       histLog.AverageText(),
				Counts:        histLog.Counts(),
				Paused:        clock.IsPaused(),
				Debug:         debugOverlay.IsVisible(),
				Muted:         audioSvc.IsMuted() || audioSvc.IsDisabled(),
				Now:           time.Now(),
				Status:        statusSvc.Registry().Dump(),
			})
		}
	}
}
