// Command dice-gui runs the dice simulation in a desktop window.
// Ebiten drives Update at the physics step rate, so each Update advances one step.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/dice-roller/audio"
	"github.com/lixenwraith/dice-roller/config"
	"github.com/lixenwraith/dice-roller/core"
	"github.com/lixenwraith/dice-roller/engine"
	"github.com/lixenwraith/dice-roller/engine/services"
	"github.com/lixenwraith/dice-roller/history"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/render"
	"github.com/lixenwraith/dice-roller/service"
	"github.com/lixenwraith/dice-roller/status"
	"github.com/lixenwraith/dice-roller/vmath"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

var (
	tuningFlag  = flag.String("tuning", "", "TOML tuning file applied over defaults, before DICE_ env vars")
	soundFlag   = flag.Bool("sound", false, "Enable sound effects")
	historyFlag = flag.String("history-db", "", "SQLite file for persistent roll history")
	seedFlag    = flag.Int64("seed", 0, "Random seed for throws, 0 picks one")
)

// Game adapts the simulator to ebiten's Update/Draw/Layout loop
type Game struct {
	sim     *engine.Simulator
	history *history.Log
	audio   *audio.Service
	builder *render.SceneBuilder
	camera  vmath.Camera
	palette render.Palette

	paused bool
	quit   bool

	// 1x1 white source for flat-shaded triangles
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

func newGame(sim *engine.Simulator, hist *history.Log, audioSvc *audio.Service, halfExtent float64) *Game {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	palette := render.DefaultPalette()
	return &Game{
		sim:        sim,
		history:    hist,
		audio:      audioSvc,
		builder:    render.NewSceneBuilder(halfExtent, palette),
		camera:     render.DefaultCamera(),
		palette:    palette,
		whiteImage: white,
	}
}

// release frees the GPU images owned by the game, safe to call more than once
func (g *Game) release() {
	if g.whiteImage != nil {
		g.whiteImage.Deallocate()
		g.whiteImage = nil
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.RequestRoll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.ClearHistory()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}

	if !g.paused {
		g.sim.Step()
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	proj := vmath.NewProjector(g.camera, w, h, 1)
	snap := g.sim.Snapshot()
	scene := g.builder.Build(snap, proj)

	for _, p := range scene.Polygons {
		g.fillPolygon(screen, p)
	}

	g.drawHUD(screen, snap)
}

// fillPolygon triangulates a convex polygon as a fan
func (g *Game) fillPolygon(dst *ebiten.Image, p render.Polygon) {
	if len(p.Points) < 3 {
		return
	}
	c := p.Color.Clamped()
	r, gr, b := float32(c.R), float32(c.G), float32(c.B)

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, pt := range p.Points {
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 0, SrcY: 0,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
		})
	}
	for i := 1; i+1 < len(p.Points); i++ {
		g.indices = append(g.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(g.vertices, g.indices, g.whiteImage, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap engine.Snapshot) {
	ebitenutil.DebugPrintAt(screen, parameter.TitleText, 16, 12)
	ebitenutil.DebugPrintAt(screen, parameter.SubtitleText, 16, 28)

	switch {
	case g.paused:
		ebitenutil.DebugPrintAt(screen, strings.TrimSpace(parameter.PausedText), screenWidth/2-18, screenHeight/2)
	case snap.Rolling:
		ebitenutil.DebugPrintAt(screen, "Rolling...", screenWidth/2-30, screenHeight/2)
	case snap.HasResult:
		ebitenutil.DebugPrintAt(screen, "You rolled "+strconv.Itoa(snap.Result), screenWidth/2-36, screenHeight/2)
	}

	values := g.history.Values()
	if len(values) > 0 {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		ebitenutil.DebugPrintAt(screen, parameter.HistoryTitle+": "+strings.Join(parts, " "), 16, screenHeight-48)
		ebitenutil.DebugPrintAt(screen, "Average: "+g.history.AverageText(), 16, screenHeight-32)
	}

	mute := "m mute"
	if g.audio.IsMuted() || g.audio.IsDisabled() {
		mute = "m unmute"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f TPS  click/space roll  p pause  c clear  %s  q quit", ebiten.ActualTPS(), mute), 16, screenHeight-16)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := config.Load(*tuningFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
		return 1
	}

	var initArgs []any
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			initArgs = append(initArgs, !*soundFlag)
		case "history-db":
			cfg.History.DB = *historyFlag
		}
	})

	seed := *seedFlag
	if seed == 0 {
		if seed, err = core.NewSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
			return 1
		}
	}

	histLog, err := history.New(cfg.History.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
		return 1
	}

	statusSvc := status.NewService()
	audioSvc := audio.NewService(cfg.Audio)
	histSvc := history.NewService(histLog, cfg.History.DB)

	hub := services.NewHub()
	for _, svc := range []service.Service{statusSvc, audioSvc, histSvc} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
			return 1
		}
	}
	if err := hub.InitAll(initArgs...); err != nil {
		fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
		return 1
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
		return 1
	}

	sim := engine.NewSimulator(cfg.Physics, rand.New(rand.NewSource(seed)), nil, statusSvc.Registry())
	hub.SubscribeAll(sim.Register)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Dice Roller")
	ebiten.SetTPS(parameter.StepRate)

	game := newGame(sim, histLog, audioSvc, cfg.Physics.HalfExtent)
	defer game.release()

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("game: %v", err)
		fmt.Fprintf(os.Stderr, "dice-gui: %v\n", err)
		return 1
	}
	return 0
}
