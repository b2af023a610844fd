package shooter

import "iter"

// CollisionState is the transition reported by a collision event.
type CollisionState uint8

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

func (s CollisionState) String() string {
	if s == CollisionBegin {
		return "Begin"
	}
	return "End"
}

// CollisionEvent reports that the two labelled entities started or stopped overlapping.
type CollisionEvent struct {
	Pair  [2]string
	State CollisionState
}

// Host is everything the simulation needs from the engine that runs it.
type Host interface {
	// Entity returns the live entity with the given label.
	Entity(label string) (Entity, bool)
	// CreateEntity adds an entity and assigns its initial appearance. The
	// caller sets position, layer, speed and collidability afterwards.
	CreateEntity(label string, category Category, preset Preset) Entity
	// RemoveEntity removes the entity. Unknown labels are ignored.
	RemoveEntity(label string)
	// Entities iterates over all live entities.
	Entities() iter.Seq2[string, Entity]
	// DrainCollisionEvents returns and forgets the events buffered since the last call.
	DrainCollisionEvents() []CollisionEvent
	// FireInputEdge is true only on the frame the fire input became active.
	FireInputEdge() bool
	// MouseLocation returns the pointer position if it is over the play area.
	MouseLocation() (Vec2, bool)
	PlaySoundEffect(sfx SoundEffect, volume float64)
	UpdateDisplayText(id TextID, value string)
}
