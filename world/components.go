package world

import (
	"math"

	"github.com/plus3/carshooter/ecs"
	"github.com/plus3/carshooter/shooter"
)

// Serial is a per-entity number that is never reused, unlike entity ids whose
// slots are recycled. Collision contacts are keyed by it.
type Serial uint32

// Text is a display text drawn by the front end.
type Text struct {
	ID       shooter.TextID
	Value    string
	Position shooter.Vec2
}

// body is what collision detection needs to know about an entity.
type body struct {
	Label      *shooter.Label
	Serial     *Serial
	Transform  *shooter.Transform
	Collider   *shooter.Collider
	Appearance *shooter.Appearance
}

// RegisterComponents adds every component type the world spawns to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[shooter.Label](registry)
	ecs.RegisterComponent[shooter.Category](registry)
	ecs.RegisterComponent[shooter.Transform](registry)
	ecs.RegisterComponent[shooter.Motion](registry)
	ecs.RegisterComponent[shooter.Collider](registry)
	ecs.RegisterComponent[shooter.Appearance](registry)
	ecs.RegisterComponent[Serial](registry)
	ecs.RegisterComponent[Text](registry)
}

// PresetSize is the unscaled footprint of each visual preset in world units.
var PresetSize = map[shooter.Preset]shooter.Vec2{
	shooter.PresetRacingBarrierRed: {X: 210, Y: 60},
	shooter.PresetRollingBallBlue:  {X: 32, Y: 32},
	shooter.PresetRacingCarBlack:   {X: 110, Y: 56},
	shooter.PresetRacingCarBlue:    {X: 110, Y: 56},
	shooter.PresetRacingCarGreen:   {X: 110, Y: 56},
	shooter.PresetRacingCarRed:     {X: 110, Y: 56},
	shooter.PresetRacingCarYellow:  {X: 110, Y: 56},
}

// Box is an axis-aligned rectangle in world coordinates.
type Box struct {
	Min, Max shooter.Vec2
}

// Overlaps reports whether the boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y
}

// BoundingBox returns the box an entity occupies. A rotation near a quarter
// turn swaps width and height.
func BoundingBox(t shooter.Transform, preset shooter.Preset) Box {
	size := PresetSize[preset]
	w, h := size.X*t.Scale, size.Y*t.Scale
	if math.Abs(math.Sin(t.Rotation)) > math.Sqrt2/2 {
		w, h = h, w
	}
	c := t.Translation
	return Box{
		Min: shooter.Vec2{X: c.X - w/2, Y: c.Y - h/2},
		Max: shooter.Vec2{X: c.X + w/2, Y: c.Y + h/2},
	}
}
