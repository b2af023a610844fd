package shooter

import (
	"errors"
	"fmt"
)

// ErrPlayerMissing is the panic value raised when the host has no player entity.
var ErrPlayerMissing = errors.New("shooter: player entity missing")

// Update advances the simulation by dt seconds. It runs motion, bounds
// cleanup, fire control, the car spawner and collision resolution, in that
// order, and never blocks.
//
// Update panics with ErrPlayerMissing if the host has lost the player.
func Update(s *State, host Host, dt float64) {
	player, ok := host.Entity(PlayerLabel)
	if !ok {
		panic(ErrPlayerMissing)
	}
	playerX := player.Transform.Translation.X

	s.Stats.Ticks++
	moveEntities(host, dt)
	cullOffscreen(s, host)
	fireMarble(s, host, playerX)
	spawnCars(s, host, dt)
	resolveCollisions(s, host)
}

// CarsLeftText formats the remaining-cars display text.
func CarsLeftText(n int) string {
	return fmt.Sprintf("Cars left: %d", n)
}

// PointsText formats the score display text.
func PointsText(n int) string {
	return fmt.Sprintf("Points: %d", n)
}
