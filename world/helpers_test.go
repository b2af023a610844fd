package world_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
	"github.com/plus3/carshooter/world"
)

type played struct {
	sfx    shooter.SoundEffect
	volume float64
}

type soundRecorder struct {
	played []played
}

func (r *soundRecorder) Play(sfx shooter.SoundEffect, volume float64) {
	r.played = append(r.played, played{sfx, volume})
}

// newEngine returns an engine whose scheduler only runs collision detection.
func newEngine(t *testing.T) (*world.Engine, *ecs.Scheduler, *soundRecorder) {
	t.Helper()
	storage := newStorage()
	sounds := &soundRecorder{}
	engine := world.NewEngine(storage, sounds, world.NewEventLog(false))

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&world.CollisionSystem{Engine: engine})
	return engine, scheduler, sounds
}

func place(e *world.Engine, label string, c shooter.Category, p shooter.Preset, x, y float64) shooter.Entity {
	ent := e.CreateEntity(label, c, p)
	ent.Transform.Translation = shooter.Vec2{X: x, Y: y}
	ent.Collider.Enabled = true
	return ent
}

func newTestGame(t *testing.T, tune func(*config.Config)) (*world.Game, *soundRecorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	if tune != nil {
		tune(&cfg)
	}
	sounds := &soundRecorder{}
	g, err := world.NewGame(cfg, sounds)
	require.NoError(t, err)
	return g, sounds
}

const dt = 1.0 / 60.0

// press runs one frame with the fire button pressed, then one with it released.
func press(g *world.Game) {
	g.Engine.SetFireButton(true)
	g.Step(dt)
	g.Engine.SetFireButton(false)
}

func labels(e *world.Engine) []string {
	var out []string
	for label := range e.Entities() {
		out = append(out, label)
	}
	return out
}

func newStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	world.RegisterComponents(registry)
	return ecs.NewStorage(registry)
}

type systemFunc func()

func (f systemFunc) Execute(*ecs.UpdateFrame) { f() }
