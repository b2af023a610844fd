package ecs

import (
	"iter"
	"reflect"
)

// componentStorage is a type-erased column of components.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage has its own registry so independent worlds can coexist.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers a component type with the registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether the component type T is known to the registry.
func Registered[T any](r *ComponentRegistry) bool {
	_, ok := r.factories[reflect.TypeFor[T]()]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks. Blocks are
// allocated individually, so a pointer returned by Get stays valid until the
// slot is deleted, no matter how many components are appended afterwards.
type blockStorage[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

func (bs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(bs.freeSlots); n > 0 {
		index = bs.freeSlots[n-1]
		bs.freeSlots = bs.freeSlots[:n-1]
	} else {
		index = bs.nextIndex
		bs.nextIndex++
		if index/blockSize >= len(bs.blocks) {
			bs.blocks = append(bs.blocks, new([blockSize]T))
			bs.filled = append(bs.filled, new([blockSize]bool))
		}
	}

	block, slot := index/blockSize, index%blockSize
	bs.blocks[block][slot] = value
	bs.filled[block][slot] = true
	bs.live++
	return index
}

func (bs *blockStorage[T]) Get(index int) any {
	if !bs.Has(index) {
		return nil
	}
	return &bs.blocks[index/blockSize][index%blockSize]
}

func (bs *blockStorage[T]) Delete(index int) {
	if !bs.Has(index) {
		return
	}
	block, slot := index/blockSize, index%blockSize
	var zero T
	bs.blocks[block][slot] = zero
	bs.filled[block][slot] = false
	bs.freeSlots = append(bs.freeSlots, index)
	bs.live--
}

func (bs *blockStorage[T]) Has(index int) bool {
	if index < 0 || index >= bs.nextIndex {
		return false
	}
	return bs.filled[index/blockSize][index%blockSize]
}

func (bs *blockStorage[T]) Len() int {
	return bs.live
}

func (bs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < bs.nextIndex; i++ {
			if !bs.filled[i/blockSize][i%blockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
