package shooter

// fireMarble launches the top marble of the pool from just above the player.
// Firing with an empty pool does nothing.
func fireMarble(s *State, host Host, playerX float64) {
	if !host.FireInputEdge() {
		return
	}

	id, ok := s.Ammo.Pop()
	if !ok {
		return
	}

	marble := host.CreateEntity(id, CategoryProjectile, PresetRollingBallBlue)
	marble.Transform.Translation = Vec2{X: playerX, Y: s.Tuning.MarbleSpawnY}
	marble.Transform.Layer = s.Tuning.MarbleLayer
	marble.Motion.Speed = s.Tuning.MarbleSpeed
	marble.Collider.Enabled = true

	s.Stats.Shots++
	host.PlaySoundEffect(SfxImpact2, s.Tuning.FireVolume)
}
