package shooter

import "slices"

// RandSource is the randomness the simulation draws from. *rand.Rand from
// math/rand/v2 satisfies it; tests substitute seeded or scripted sources.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// uniform draws from [lo, hi).
func uniform(r RandSource, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// AmmoPool is the stack of marble identities that are not in flight.
// Pop returns the most recently pushed identity first.
type AmmoPool struct {
	ids []string
}

func NewAmmoPool(ids ...string) AmmoPool {
	return AmmoPool{ids: slices.Clone(ids)}
}

func (p *AmmoPool) Len() int {
	return len(p.ids)
}

// Pop removes and returns the top identity.
func (p *AmmoPool) Pop() (string, bool) {
	n := len(p.ids)
	if n == 0 {
		return "", false
	}
	id := p.ids[n-1]
	p.ids = p.ids[:n-1]
	return id, true
}

// Push returns id to the pool. An identity already in the pool is rejected.
func (p *AmmoPool) Push(id string) bool {
	if p.Contains(id) {
		return false
	}
	p.ids = append(p.ids, id)
	return true
}

func (p *AmmoPool) Contains(id string) bool {
	return slices.Contains(p.ids, id)
}

// Identities returns a copy of the pool, bottom first.
func (p *AmmoPool) Identities() []string {
	return slices.Clone(p.ids)
}

// ScoreBoard tracks points earned and cars still to be spawned.
type ScoreBoard struct {
	Points        int
	CarsRemaining int
}

// AddPoint increments the score and returns the new total.
func (b *ScoreBoard) AddPoint() int {
	b.Points++
	return b.Points
}

// TakeCar consumes one car from the countdown. It reports false, and leaves
// the counter at zero, once no cars remain.
func (b *ScoreBoard) TakeCar() bool {
	if b.CarsRemaining <= 0 {
		return false
	}
	b.CarsRemaining--
	return true
}

// SpawnScheduler is a one-shot countdown that is re-armed with a new duration
// every time it fires.
type SpawnScheduler struct {
	duration float64
	elapsed  float64
}

// Tick advances the timer by dt and reports whether it has elapsed.
// The timer keeps reporting true until it is Reset.
func (s *SpawnScheduler) Tick(dt float64) bool {
	s.elapsed += dt
	return s.elapsed >= s.duration
}

// Reset re-arms the timer with a fresh duration.
func (s *SpawnScheduler) Reset(duration float64) {
	s.duration = duration
	s.elapsed = 0
}

func (s *SpawnScheduler) Duration() float64 {
	return s.duration
}

// Remaining returns the time until the timer fires, never negative.
func (s *SpawnScheduler) Remaining() float64 {
	return max(s.duration-s.elapsed, 0)
}

// Stats counts what happened over a run. It is bookkeeping only and never
// feeds back into the simulation.
type Stats struct {
	Ticks       int
	Shots       int
	Hits        int
	Lost        int // marbles culled off screen, their identity gone for good
	CarsSpawned int
	CarsEscaped int
}

// State is everything the simulation owns. Update is its only writer.
type State struct {
	Tuning  Tuning
	Ammo    AmmoPool
	Score   ScoreBoard
	Spawner SpawnScheduler
	Stats   Stats
	Rand    RandSource
}

// NewState returns the starting state: a full ammo pool, the full car
// countdown and a spawn timer of zero length, so the first car appears on the
// first tick.
func NewState(tuning Tuning, rng RandSource) *State {
	return &State{
		Tuning: tuning,
		Ammo:   NewAmmoPool(tuning.Marbles...),
		Score:  ScoreBoard{CarsRemaining: tuning.InitialCars},
		Rand:   rng,
	}
}
