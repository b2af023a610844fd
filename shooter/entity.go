package shooter

// Label is the unique name of an entity.
type Label string

// Transform places an entity in the world.
type Transform struct {
	Translation Vec2
	Rotation    float64 // radians, 0 faces right
	Scale       float64
	Layer       float64 // higher layers draw on top
}

// Motion is the fixed scalar speed of an entity, in world units per second.
// The direction follows from the entity's category.
type Motion struct {
	Speed float64
}

// Collider marks an entity as taking part in collision detection.
type Collider struct {
	Enabled bool
}

// Appearance is the visual preset assigned by the host at creation.
type Appearance struct {
	Preset Preset
}

// Entity is a live view onto one entity's components. The pointers refer to
// host-owned storage, so writing through them mutates the entity in place.
// A view is only valid until the entity is removed.
type Entity struct {
	Label      *Label
	Category   *Category
	Transform  *Transform
	Motion     *Motion
	Collider   *Collider
	Appearance *Appearance
}

// Is reports whether the entity carries category c.
func (e Entity) Is(c Category) bool {
	return e.Category != nil && *e.Category == c
}
