package shooter

// resolveCollisions drains the frame's collision events. A Begin event that
// involves a live marble scores a point, removes both entities and returns the
// marble to the pool. When both sides are marbles only the first is recycled.
func resolveCollisions(s *State, host Host) {
	for _, ev := range host.DrainCollisionEvents() {
		if ev.State != CollisionBegin {
			continue
		}

		marble, ok := firstProjectile(host, ev.Pair)
		if !ok {
			continue
		}

		host.UpdateDisplayText(TextPoints, PointsText(s.Score.AddPoint()))
		host.RemoveEntity(ev.Pair[0])
		host.RemoveEntity(ev.Pair[1])
		host.PlaySoundEffect(SfxConfirmation1, s.Tuning.HitVolume)
		s.Ammo.Push(marble)
		s.Stats.Hits++
	}
}

// firstProjectile returns the first label of the pair that names a live marble.
// A marble already removed earlier in the frame no longer counts, so one
// marble can never score or be recycled twice.
func firstProjectile(host Host, pair [2]string) (string, bool) {
	for _, label := range pair {
		if e, ok := host.Entity(label); ok && e.Is(CategoryProjectile) {
			return label, true
		}
	}
	return "", false
}
