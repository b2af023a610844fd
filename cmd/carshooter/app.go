package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/ecs/debugui"
	debugui_ebiten "github.com/plus3/carshooter/ecs/debugui/ebiten"
	"github.com/plus3/carshooter/world"
)

// app adapts a world.Game to ebiten.Game.
type app struct {
	cfg           config.Config
	game          *world.Game
	view          viewport
	showColliders bool

	imgui      *debugui_ebiten.ImguiBackend
	imguiInput *ecs.Singleton[debugui.ImguiInputState]
}

func newApp(cfg config.Config, game *world.Game) *app {
	a := &app{
		cfg:           cfg,
		game:          game,
		view:          viewport{width: float64(cfg.Width), height: float64(cfg.Height)},
		showColliders: cfg.ShowColliders,
	}

	if cfg.Debug {
		a.imgui = debugui_ebiten.NewImguiBackend(cfg.Title, cfg.Width, cfg.Height)
		debugui.Install(game.Storage, game.Scheduler, game.Engine.LabelOf)
		a.imguiInput = ecs.NewSingleton[debugui.ImguiInputState](game.Storage)
		spawnGameWindow(game)
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(cfg.Title)
	}
	return a
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.showColliders = !a.showColliders
	}

	if a.imgui != nil {
		a.imgui.BeginFrame()
		defer a.imgui.EndFrame()
	}

	a.pollInput()
	a.game.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// pollInput hands the mouse to the engine unless the debug overlay is using it.
func (a *app) pollInput() {
	captured := false
	if a.imguiInput != nil {
		captured = a.imguiInput.Get().WantCaptureMouse
	}

	mx, my := ebiten.CursorPosition()
	pos, inside := a.view.toWorld(mx, my)
	a.game.Engine.SetMouse(pos, inside && !captured)

	fire := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		(!captured && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	a.game.Engine.SetFireButton(fire)
}

func (a *app) Draw(screen *ebiten.Image) {
	drawWorld(screen, a.view, a.game.Engine, a.showColliders)
	if a.imgui != nil {
		a.imgui.Overlay(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	return a.cfg.Width, a.cfg.Height
}
