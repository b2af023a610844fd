package world

import (
	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
)

// SimulationSystem advances the game by one tick.
type SimulationSystem struct {
	Engine *Engine
	State  ecs.Singleton[shooter.State]
}

func (s *SimulationSystem) Execute(frame *ecs.UpdateFrame) {
	s.Engine.beginFrame(frame)
	defer s.Engine.endFrame()
	shooter.Update(s.State.Get(), s.Engine, frame.DeltaTime)
}

// CollisionSystem runs after the simulation has moved everything and queues
// the resulting events for the next tick.
type CollisionSystem struct {
	Engine *Engine
	Bodies ecs.Query[body]
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	s.Engine.tick = frame.Tick
	s.Engine.detectCollisions(s.Bodies.Values())
}
