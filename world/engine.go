package world

import (
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"

	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
)

// SoundPlayer plays one-shot sound effects.
type SoundPlayer interface {
	Play(sfx shooter.SoundEffect, volume float64)
}

type nopSounds struct{}

func (nopSounds) Play(shooter.SoundEffect, float64) {}

type textView struct {
	Text *Text
}

// Engine implements shooter.Host on top of an ecs.Storage. Entities are looked
// up by label through an index kept next to the storage.
type Engine struct {
	storage  *ecs.Storage
	entities *ecs.View[shooter.Entity]
	texts    *ecs.View[textView]

	byLabel    map[string]ecs.EntityId
	bySerial   *intmap.Map[Serial, ecs.EntityId]
	textIds    map[shooter.TextID]ecs.EntityId
	nextSerial Serial

	contacts *intmap.Map[uint64, [2]string]
	touching *intmap.Map[uint64, struct{}]
	events   []shooter.CollisionEvent

	fireDown bool
	fireEdge bool
	mouse    shooter.Vec2
	mouseOK  bool

	sounds SoundPlayer
	frame  *ecs.UpdateFrame
	tick   int
	log    *EventLog
}

// NewEngine creates a host over storage, whose registry must contain the
// world's components (see RegisterComponents). sounds and log may be nil.
func NewEngine(storage *ecs.Storage, sounds SoundPlayer, log *EventLog) *Engine {
	if sounds == nil {
		sounds = nopSounds{}
	}
	return &Engine{
		storage:  storage,
		entities: ecs.NewView[shooter.Entity](storage),
		texts:    ecs.NewView[textView](storage),
		byLabel:  make(map[string]ecs.EntityId),
		bySerial: intmap.New[Serial, ecs.EntityId](64),
		textIds:  make(map[shooter.TextID]ecs.EntityId),
		contacts: intmap.New[uint64, [2]string](32),
		touching: intmap.New[uint64, struct{}](32),
		sounds:   sounds,
		log:      log,
	}
}

func (e *Engine) Storage() *ecs.Storage {
	return e.storage
}

func (e *Engine) Log() *EventLog {
	return e.log
}

// Entity returns the live entity with the given label.
func (e *Engine) Entity(label string) (shooter.Entity, bool) {
	id, ok := e.byLabel[label]
	if !ok {
		return shooter.Entity{}, false
	}
	ent := e.entities.Get(id)
	if ent == nil {
		return shooter.Entity{}, false
	}
	return *ent, true
}

// CreateEntity spawns an entity with the preset's defaults: at the origin,
// unscaled, not moving and not collidable. An existing entity with the same
// label is replaced.
func (e *Engine) CreateEntity(label string, category shooter.Category, preset shooter.Preset) shooter.Entity {
	if _, exists := e.byLabel[label]; exists {
		e.RemoveEntity(label)
	}

	e.nextSerial++
	serial := e.nextSerial
	id := e.storage.Spawn(
		shooter.Label(label),
		category,
		shooter.Transform{Scale: 1},
		shooter.Motion{},
		shooter.Collider{},
		shooter.Appearance{Preset: preset},
		serial,
	)
	e.byLabel[label] = id
	e.bySerial.Put(serial, id)
	e.log.Add(e.tick, EventCreate, label, preset.String())

	return *e.entities.Get(id)
}

// RemoveEntity deletes the entity right away. Unknown labels are ignored.
func (e *Engine) RemoveEntity(label string) {
	id, ok := e.byLabel[label]
	if !ok {
		return
	}
	if serial := ecs.ReadComponent[Serial](e.storage, id); serial != nil {
		e.bySerial.Del(*serial)
	}
	delete(e.byLabel, label)
	e.storage.Delete(id)
	e.log.Add(e.tick, EventRemove, label, "")
}

// Entities yields the live entities in creation order of their archetype and
// slot order within it.
func (e *Engine) Entities() iter.Seq2[string, shooter.Entity] {
	return func(yield func(string, shooter.Entity) bool) {
		for _, ent := range e.entities.Iter() {
			if !yield(string(*ent.Label), ent) {
				return
			}
		}
	}
}

// LabelOf names an entity for display: its label, or the id of a text.
func (e *Engine) LabelOf(id ecs.EntityId) string {
	if l := ecs.ReadComponent[shooter.Label](e.storage, id); l != nil {
		return string(*l)
	}
	if t := ecs.ReadComponent[Text](e.storage, id); t != nil {
		return "text:" + string(t.ID)
	}
	return ""
}

// Len returns the number of live labelled entities.
func (e *Engine) Len() int {
	return len(e.byLabel)
}

func (e *Engine) DrainCollisionEvents() []shooter.CollisionEvent {
	events := e.events
	e.events = nil
	return events
}

// SetFireButton records the fire button state for the coming frame. The fire
// edge is set only when the button goes from released to pressed and is
// cleared once a simulation frame has seen it.
func (e *Engine) SetFireButton(down bool) {
	e.fireEdge = down && !e.fireDown
	e.fireDown = down
}

func (e *Engine) FireInputEdge() bool {
	return e.fireEdge
}

// SetMouse records the pointer position in world coordinates. ok is false when
// the pointer is outside the window.
func (e *Engine) SetMouse(pos shooter.Vec2, ok bool) {
	e.mouse, e.mouseOK = pos, ok
}

func (e *Engine) MouseLocation() (shooter.Vec2, bool) {
	return e.mouse, e.mouseOK
}

// PlaySoundEffect plays the sound once the current frame flushes, or right
// away outside a frame.
func (e *Engine) PlaySoundEffect(sfx shooter.SoundEffect, volume float64) {
	e.log.Add(e.tick, EventSound, sfx.String(), fmt.Sprintf("%.2f", volume))
	if e.frame == nil {
		e.sounds.Play(sfx, volume)
		return
	}
	sounds := e.sounds
	e.frame.Commands.Defer(func() { sounds.Play(sfx, volume) })
}

// AddText creates a display text. Texts live in the storage like entities but
// have no label and are never returned by Entities.
func (e *Engine) AddText(id shooter.TextID, value string, pos shooter.Vec2) {
	if old, ok := e.textIds[id]; ok {
		e.storage.Delete(old)
	}
	e.textIds[id] = e.storage.Spawn(Text{ID: id, Value: value, Position: pos})
}

// UpdateDisplayText replaces the value of a text. Unknown ids create a text at
// the origin.
func (e *Engine) UpdateDisplayText(id shooter.TextID, value string) {
	e.log.Add(e.tick, EventText, string(id), value)
	if eid, ok := e.textIds[id]; ok {
		if t := ecs.ReadComponent[Text](e.storage, eid); t != nil {
			t.Value = value
			return
		}
	}
	e.AddText(id, value, shooter.Vec2{})
}

// Text returns the current value of a display text.
func (e *Engine) Text(id shooter.TextID) string {
	eid, ok := e.textIds[id]
	if !ok {
		return ""
	}
	if t := ecs.ReadComponent[Text](e.storage, eid); t != nil {
		return t.Value
	}
	return ""
}

// Texts yields every display text.
func (e *Engine) Texts() iter.Seq[Text] {
	return func(yield func(Text) bool) {
		for v := range e.texts.Values() {
			if !yield(*v.Text) {
				return
			}
		}
	}
}

func (e *Engine) beginFrame(frame *ecs.UpdateFrame) {
	e.frame = frame
	e.tick = frame.Tick
}

func (e *Engine) endFrame() {
	e.frame = nil
	e.fireEdge = false
}

var _ shooter.Host = (*Engine)(nil)
