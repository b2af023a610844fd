package ecs_test

import (
	"testing"

	"github.com/plus3/carshooter/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 3, query.Len())
	})

	t.Run("panics without execute", func(t *testing.T) {
		fresh := ecs.NewQuery[struct{ *Position }](storage)
		assert.Panics(t, func() {
			for range fresh.Iter() {
			}
		})
		assert.Panics(t, func() {
			for range fresh.Values() {
			}
		})
	})

	t.Run("snapshot is stable until next execute", func(t *testing.T) {
		query.Execute()
		storage.Spawn(Position{X: 9}, Velocity{})
		assert.Equal(t, 3, query.Len())

		query.Execute()
		assert.Equal(t, 4, query.Len())
	})

	t.Run("picks up new archetypes", func(t *testing.T) {
		storage.Spawn(Position{}, Velocity{}, Name{Value: "late"})
		query.Execute()

		found := false
		for id := range query.Iter() {
			if name := ecs.ReadComponent[Name](storage, id); name != nil && name.Value == "late" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
