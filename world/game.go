package world

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/plus3/carshooter/config"
	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
)

var (
	CarsLeftPosition = shooter.Vec2{X: 540, Y: -320}
	PointsPosition   = shooter.Vec2{X: 525, Y: -345}
)

// Game bundles one ready-to-run world.
type Game struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Engine    *Engine
	State     *ecs.Singleton[shooter.State]
	Seed      uint64
}

// NewGame builds the storage, places the player and the display texts and
// registers the simulation and collision systems. Front ends may register
// further systems on the returned scheduler; they run after collision
// detection.
func NewGame(cfg config.Config, sounds SoundPlayer) (*Game, error) {
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	state := ecs.NewSingleton(storage, *shooter.NewState(cfg.Tuning, rng))
	engine := NewEngine(storage, sounds, NewEventLog(cfg.Verbose))

	player := engine.CreateEntity(shooter.PlayerLabel, shooter.CategoryPlayer, shooter.PresetRacingBarrierRed)
	player.Transform.Rotation = math.Pi / 2
	player.Transform.Scale = 0.5
	player.Transform.Translation.Y = shooter.PlayerY
	player.Transform.Layer = shooter.PlayerLayer

	engine.AddText(shooter.TextCarsLeft, shooter.CarsLeftText(cfg.Tuning.InitialCars), CarsLeftPosition)
	engine.AddText(shooter.TextPoints, shooter.PointsText(0), PointsPosition)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&SimulationSystem{Engine: engine})
	scheduler.Register(&CollisionSystem{Engine: engine})

	return &Game{
		Storage:   storage,
		Scheduler: scheduler,
		Engine:    engine,
		State:     state,
		Seed:      seed,
	}, nil
}

// Step runs one frame.
func (g *Game) Step(dt float64) {
	g.Scheduler.Once(dt)
}

// Finished reports whether every car has been spawned and left the field.
func (g *Game) Finished() bool {
	s := g.State.Get()
	if s.Score.CarsRemaining > 0 {
		return false
	}
	for _, ent := range g.Engine.Entities() {
		if ent.Is(shooter.CategoryCar) {
			return false
		}
	}
	return true
}
