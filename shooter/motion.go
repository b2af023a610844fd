package shooter

// moveEntities drives cars to the right and marbles upwards.
func moveEntities(host Host, dt float64) {
	for _, e := range host.Entities() {
		switch *e.Category {
		case CategoryCar:
			e.Transform.Translation.X += e.Motion.Speed * dt
		case CategoryProjectile:
			e.Transform.Translation.Y += e.Motion.Speed * dt
		}
	}
}

// cullOffscreen removes everything that has left the top or the right edge.
// A culled marble's identity is not returned to the pool.
func cullOffscreen(s *State, host Host) {
	var culled []string
	for label, e := range host.Entities() {
		if e.Is(CategoryPlayer) {
			continue
		}
		pos := e.Transform.Translation
		if pos.Y <= s.Tuning.TopBound && pos.X <= s.Tuning.RightBound {
			continue
		}

		switch *e.Category {
		case CategoryProjectile:
			s.Stats.Lost++
		case CategoryCar:
			s.Stats.CarsEscaped++
		}
		culled = append(culled, label)
	}

	for _, label := range culled {
		host.RemoveEntity(label)
	}
}
