package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/carshooter/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for _, item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type spawnerSystem struct{}

func (s *spawnerSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Storage.Spawn(Position{}, Velocity{DX: 1})
}

type counterSystem struct {
	Entities ecs.Query[struct{ *Position }]
	Total    ecs.Singleton[Score]
	Seen     int
	Ticks    []int
}

func (s *counterSystem) Execute(frame *ecs.UpdateFrame) {
	s.Seen = s.Entities.Len()
	*s.Total.Get() += Score(s.Seen)
	s.Ticks = append(s.Ticks, frame.Tick)
}

func TestScheduler(t *testing.T) {
	t.Run("moves entities by delta time", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})

		scheduler := ecs.NewScheduler(storage)
		movement := &MovementSystem{}
		scheduler.Register(movement)

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		pos := ecs.ReadComponent[Position](storage, id)
		assert.Equal(t, float32(1), pos.X)
		assert.Equal(t, float32(2), pos.Y)
		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, scheduler.Frames())
	})

	t.Run("queries refresh between systems", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		ecs.NewSingleton[Score](storage)

		scheduler := ecs.NewScheduler(storage)
		counter := &counterSystem{}
		scheduler.Register(&spawnerSystem{})
		scheduler.Register(counter)

		scheduler.Once(0.016)
		assert.Equal(t, 1, counter.Seen)
		scheduler.Once(0.016)
		assert.Equal(t, 2, counter.Seen)

		var total *Score
		require.True(t, storage.ReadSingleton(&total))
		assert.Equal(t, Score(3), *total)
		assert.Equal(t, []int{0, 1}, counter.Ticks)
	})

	t.Run("stats", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&MovementSystem{})
		scheduler.Register(&spawnerSystem{})

		for i := 0; i < 3; i++ {
			scheduler.Once(0.016)
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		assert.Equal(t, 3, stats.Frames)
		assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
		assert.Equal(t, "spawnerSystem", stats.Systems[1].Name)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(3), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
		}
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)
		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()
		scheduler.Run(ctx, 5*time.Millisecond)

		assert.Positive(t, movement.ExecuteCount)
	})
}
