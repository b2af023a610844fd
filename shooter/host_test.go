package shooter_test

import (
	"iter"
	"slices"

	"github.com/plus3/carshooter/shooter"
)

type fakeEntity struct {
	label      shooter.Label
	category   shooter.Category
	transform  shooter.Transform
	motion     shooter.Motion
	collider   shooter.Collider
	appearance shooter.Appearance
}

func (f *fakeEntity) view() shooter.Entity {
	return shooter.Entity{
		Label:      &f.label,
		Category:   &f.category,
		Transform:  &f.transform,
		Motion:     &f.motion,
		Collider:   &f.collider,
		Appearance: &f.appearance,
	}
}

type playedSound struct {
	sfx    shooter.SoundEffect
	volume float64
}

// fakeHost is an in-memory Host with insertion-ordered entities.
type fakeHost struct {
	order    []string
	entities map[string]*fakeEntity
	events   []shooter.CollisionEvent
	fire     bool
	sounds   []playedSound
	texts    map[shooter.TextID]string
	removed  []string
}

func newFakeHost() *fakeHost {
	h := &fakeHost{
		entities: make(map[string]*fakeEntity),
		texts:    make(map[shooter.TextID]string),
	}
	player := h.CreateEntity(shooter.PlayerLabel, shooter.CategoryPlayer, shooter.PresetRacingBarrierRed)
	player.Transform.Translation = shooter.Vec2{X: 0, Y: shooter.PlayerY}
	player.Transform.Layer = shooter.PlayerLayer
	return h
}

func (h *fakeHost) Entity(label string) (shooter.Entity, bool) {
	e, ok := h.entities[label]
	if !ok {
		return shooter.Entity{}, false
	}
	return e.view(), true
}

func (h *fakeHost) CreateEntity(label string, category shooter.Category, preset shooter.Preset) shooter.Entity {
	if _, exists := h.entities[label]; exists {
		panic("duplicate label " + label)
	}
	e := &fakeEntity{
		label:      shooter.Label(label),
		category:   category,
		transform:  shooter.Transform{Scale: 1},
		appearance: shooter.Appearance{Preset: preset},
	}
	h.entities[label] = e
	h.order = append(h.order, label)
	return e.view()
}

func (h *fakeHost) RemoveEntity(label string) {
	if _, ok := h.entities[label]; !ok {
		return
	}
	delete(h.entities, label)
	h.order = slices.DeleteFunc(h.order, func(l string) bool { return l == label })
	h.removed = append(h.removed, label)
}

func (h *fakeHost) Entities() iter.Seq2[string, shooter.Entity] {
	return func(yield func(string, shooter.Entity) bool) {
		for _, label := range slices.Clone(h.order) {
			e, ok := h.entities[label]
			if !ok {
				continue
			}
			if !yield(label, e.view()) {
				return
			}
		}
	}
}

func (h *fakeHost) DrainCollisionEvents() []shooter.CollisionEvent {
	events := h.events
	h.events = nil
	return events
}

func (h *fakeHost) FireInputEdge() bool {
	fire := h.fire
	h.fire = false
	return fire
}

func (h *fakeHost) MouseLocation() (shooter.Vec2, bool) {
	return shooter.Vec2{}, false
}

func (h *fakeHost) PlaySoundEffect(sfx shooter.SoundEffect, volume float64) {
	h.sounds = append(h.sounds, playedSound{sfx: sfx, volume: volume})
}

func (h *fakeHost) UpdateDisplayText(id shooter.TextID, value string) {
	h.texts[id] = value
}

// add places an entity directly, bypassing the simulation.
func (h *fakeHost) add(label string, category shooter.Category, x, y float64) shooter.Entity {
	e := h.CreateEntity(label, category, shooter.PresetRacingCarRed)
	e.Transform.Translation = shooter.Vec2{X: x, Y: y}
	e.Collider.Enabled = true
	switch category {
	case shooter.CategoryCar:
		e.Motion.Speed = shooter.CarSpeed
	case shooter.CategoryProjectile:
		e.Motion.Speed = shooter.MarbleSpeed
	}
	return e
}

func (h *fakeHost) has(label string) bool {
	_, ok := h.entities[label]
	return ok
}

func (h *fakeHost) count(category shooter.Category) int {
	n := 0
	for _, e := range h.entities {
		if e.category == category {
			n++
		}
	}
	return n
}

func (h *fakeHost) begin(a, b string) {
	h.events = append(h.events, shooter.CollisionEvent{Pair: [2]string{a, b}, State: shooter.CollisionBegin})
}

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

// quietState returns a state whose spawn timer will not fire during a test.
func quietState() *shooter.State {
	s := shooter.NewState(shooter.DefaultTuning(), fixedRand{f: 0.5})
	s.Spawner.Reset(1e9)
	return s
}
