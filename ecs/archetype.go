package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly one particular set of component types.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentStorage
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given sorted component types.
// It panics if one of the types was never registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentStorage, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](16),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}

	return a
}

// Spawn appends one component per column and returns the shared slot index.
// All columns recycle slots in the same order, so the indices always agree.
func (a *Archetype) Spawn(components []any) uint32 {
	index := -1
	for _, comp := range components {
		col := a.columnOf(componentType(comp))
		if col == -1 {
			panic("component " + componentType(comp).String() + " does not belong to archetype")
		}
		index = a.columns[col].Append(comp)
	}
	return uint32(index)
}

// GetComponent returns a pointer to the component of the given type at index,
// or nil if the archetype has no such column or the slot is empty.
func (a *Archetype) GetComponent(index uint32, compType reflect.Type) any {
	col := a.columnOf(compType)
	if col == -1 {
		return nil
	}
	return a.columns[col].Get(int(index))
}

// Alive reports whether the slot currently holds an entity.
func (a *Archetype) Alive(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// Delete frees the slot and invalidates any EntityRef pointing at it.
func (a *Archetype) Delete(index uint32) {
	id := NewEntityId(a.id, index)
	if weakPtr, ok := a.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(id)
	}

	for _, col := range a.columns {
		col.Delete(int(index))
	}
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields the ids of all live entities in slot order.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) columnOf(t reflect.Type) int {
	for i, typ := range a.types {
		if typ == t {
			return i
		}
	}
	return -1
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
