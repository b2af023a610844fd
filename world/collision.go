package world

import (
	"iter"

	"github.com/plus3/carshooter/shooter"
)

type collidable struct {
	label  string
	serial Serial
	box    Box
}

func pairKey(a, b Serial) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

func orderedPair(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// detectCollisions compares every pair of collidable bodies and buffers a
// Begin event for each pair that started overlapping and an End event for each
// pair that stopped. Pairs whose entity was removed are dropped silently.
func (e *Engine) detectCollisions(bodies iter.Seq[body]) {
	var active []collidable
	for b := range bodies {
		if !b.Collider.Enabled {
			continue
		}
		active = append(active, collidable{
			label:  string(*b.Label),
			serial: *b.Serial,
			box:    BoundingBox(*b.Transform, b.Appearance.Preset),
		})
	}

	e.touching.Clear()
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			if !a.box.Overlaps(b.box) {
				continue
			}
			key := pairKey(a.serial, b.serial)
			e.touching.Put(key, struct{}{})
			if e.contacts.Has(key) {
				continue
			}
			pair := orderedPair(a.label, b.label)
			e.contacts.Put(key, pair)
			e.events = append(e.events, shooter.CollisionEvent{Pair: pair, State: shooter.CollisionBegin})
			e.log.Add(e.tick, EventCollision, pair[0], pair[1])
		}
	}

	var ended []uint64
	for key, pair := range e.contacts.All() {
		if e.touching.Has(key) {
			continue
		}
		ended = append(ended, key)
		if e.bySerial.Has(Serial(key>>32)) && e.bySerial.Has(Serial(key&0xffffffff)) {
			e.events = append(e.events, shooter.CollisionEvent{Pair: pair, State: shooter.CollisionEnd})
		}
	}
	for _, key := range ended {
		e.contacts.Del(key)
	}
}

// Contacts returns the number of pairs currently overlapping.
func (e *Engine) Contacts() int {
	return e.contacts.Len()
}
