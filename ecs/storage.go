package ecs

import (
	"reflect"
	"sort"
	"unsafe"
	"weak"
)

// Storage owns every archetype and singleton of one ECS world.
type Storage struct {
	archetypes map[uint32]*Archetype
	// ordered lists archetypes in creation order so iteration is deterministic
	ordered    []*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value   reflect.Value // *T, keeps the allocation alive
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity with the provided components. Components may be
// passed by value or by pointer; the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.Spawn(components))
}

// Delete removes all data related to the entity ID. Deleting an unknown or
// already deleted entity is a no-op.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// Alive reports whether the entity ID refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.Alive(id.Index())
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

// ArchetypeByID returns the archetype with the given id, or nil.
func (s *Storage) ArchetypeByID(id uint32) *Archetype {
	return s.archetypes[id]
}

// GetArchetype returns the archetype for the given component values, if one exists
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetypes[hashTypesToUint32(extractComponentTypes(components))]
}

// CreateEntityRef returns the shared reference for id, creating it on first use.
// Returns nil if the entity is not alive.
func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	archetype := s.archetypes[id.ArchetypeId()]
	if archetype == nil || !archetype.Alive(id.Index()) {
		return nil
	}

	if weakPtr, ok := archetype.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the current id of the referenced entity.
func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if !ref.Valid() {
		return 0, false
	}
	return ref.Id, true
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous one. Singletons do not need to be registered.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))

	if entry, ok := s.singletons[t]; ok {
		// keep outstanding Singleton accessors pointing at live data
		reflect.NewAt(t, entry.dataPtr).Elem().Set(ptr.Elem())
		return
	}
	s.singletons[t] = &singletonEntry{value: ptr, dataPtr: ptr.UnsafePointer()}
}

// ReadSingleton fills target, which must be a **T, with the singleton of type T.
// Returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	archetype, exists := s.archetypes[id]
	if !exists {
		archetype = NewArchetype(id, types, s.registry)
		s.archetypes[id] = archetype
		s.ordered = append(s.ordered, archetype)
	}
	return archetype
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		// Components are value types: structs or named primitives.
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}
		for _, seen := range types {
			if seen == compType {
				panic("duplicate component type " + compType.String())
			}
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates an FNV-1a hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		// the type descriptor address is unique per type
		ptr := uintptr(dataPointer(t))
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

// ComponentReader is implemented by Storage.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the T component of the entity, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
