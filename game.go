package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gymroom/assets"
	"github.com/milk9111/gymroom/ecs"
	"github.com/milk9111/gymroom/ecs/component"
	"github.com/milk9111/gymroom/ecs/entity"
	"github.com/milk9111/gymroom/ecs/system"
	"github.com/milk9111/gymroom/prefabs"
)

// maxFixedSteps bounds how many fixed steps one frame may run after a stall.
const maxFixedSteps = 5

var backgroundColor = color.NRGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff}

type Game struct {
	spec      *prefabs.GameSpec
	levelFile string
	debug     bool

	world   *ecs.World
	level   *entity.Level
	frame   *ecs.Scheduler
	fixed   *ecs.Scheduler
	input   *ebitenInput
	watcher *prefabs.Watcher

	delta       float64
	fixedStep   float64
	accumulator float64

	hud     *HUD
	pauseUI *ebitenui.UI
	paused  bool
	reset   bool
	quit    bool
}

func NewGame(spec *prefabs.GameSpec, levelFile string, debug, watch bool) (*Game, error) {
	keys, err := parseKeyBindings(spec.Keys)
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:      spec,
		levelFile: levelFile,
		debug:     debug,
		input:     newEbitenInput(keys),
		delta:     1.0 / float64(spec.TPS),
		fixedStep: spec.FixedStep,
		hud:       NewHUD(),
	}
	if g.fixedStep <= 0 {
		g.fixedStep = 1.0 / 50.0
	}

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g, spec.Width, spec.Height)
	g.input.Capture(true)
	return g, nil
}

// load builds a fresh world from the level file.
func (g *Game) load() error {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	if _, err := entity.NewClock(w, g.delta, g.fixedStep); err != nil {
		return err
	}

	builder := entity.NewBuilder(g.spec.TPS, assets.LoadAudioPlayer)
	level, err := builder.LoadLevel(w, g.levelFile)
	if err != nil {
		return fmt.Errorf("game: load level %s: %w", g.levelFile, err)
	}

	interaction := system.NewInteractionSystem()
	var reload *system.TuningReloadSystem
	if g.watcher != nil {
		reload = system.NewTuningReloadSystem(builder, interaction)
	}

	g.world = w
	g.level = level
	g.frame = system.NewFrameScheduler(g.input, interaction, reload, g.debug)
	g.fixed = system.NewFixedScheduler()
	g.accumulator = 0
	log.Printf("game: loaded level %s (%d platforms, %d props)", level.Name, len(level.Platforms), len(level.Props))
	return nil
}

func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	g.input.Capture(!paused)
}

func (g *Game) requestReset() {
	g.reset = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.input.PausePressed() {
		g.SetPaused(!g.paused)
	}
	if g.reset {
		g.reset = false
		if err := g.load(); err != nil {
			log.Printf("game: reset: %v", err)
		}
		g.SetPaused(false)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	for _, file := range g.watcher.Drain() {
		if _, err := entity.NewReloadRequest(g.world, file); err != nil {
			log.Printf("prefabs: queue reload %s: %v", file, err)
		}
	}

	g.frame.Update(g.world)

	g.accumulator += g.delta
	steps := 0
	for g.accumulator >= g.fixedStep && steps < maxFixedSteps {
		g.fixed.Update(g.world)
		g.accumulator -= g.fixedStep
		steps++
	}
	if steps == maxFixedSteps {
		g.accumulator = 0
	}

	if player, ok := ecs.First(g.world, component.PromptComponent.Kind()); ok {
		prompt, _ := ecs.Get(g.world, player, component.PromptComponent.Kind())
		g.hud.Sync(prompt)
	}
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	DrawWorld(g.world, screen, g.debug)
	g.hud.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Width, g.spec.Height
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) keyHints() []string {
	k := g.input.keys
	return []string{
		fmt.Sprintf("Move: %s %s %s %s", k.forward, k.left, k.back, k.right),
		fmt.Sprintf("Run: %s  Jump: %s", k.run, k.jump),
		fmt.Sprintf("Use: %s  Let go: %s", k.engage, k.release),
		fmt.Sprintf("Lift / climb: %s", k.lift),
	}
}
