package shooter

// spawnCars runs the spawn timer. Each time it fires a new interval is drawn,
// and while the countdown lasts a random car enters on the left edge.
func spawnCars(s *State, host Host, dt float64) {
	if !s.Spawner.Tick(dt) {
		return
	}
	s.Spawner.Reset(uniform(s.Rand, s.Tuning.SpawnMin, s.Tuning.SpawnMax))

	if !s.Score.TakeCar() {
		return
	}
	remaining := s.Score.CarsRemaining
	host.UpdateDisplayText(TextCarsLeft, CarsLeftText(remaining))

	preset := CarPresets[s.Rand.IntN(len(CarPresets))]
	car := host.CreateEntity(CarLabel(remaining), CategoryCar, preset)
	car.Transform.Translation = Vec2{
		X: s.Tuning.CarSpawnX,
		Y: uniform(s.Rand, s.Tuning.CarMinY, s.Tuning.CarMaxY),
	}
	car.Motion.Speed = s.Tuning.CarSpeed
	car.Collider.Enabled = true

	s.Stats.CarsSpawned++
}
