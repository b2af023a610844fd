package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field.
type FieldInfo struct {
	Name      string
	Index     int
	Type      reflect.Type // element type for pointers
	IsPointer bool
}

// Kind returns the kind of the field, looking through pointers.
func (f FieldInfo) Kind() reflect.Kind {
	return f.Type.Kind()
}

type reflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

var fieldCache = &reflectionCache{fields: make(map[reflect.Type][]FieldInfo)}

// Fields returns the exported fields of struct type t. Other kinds have none.
func Fields(t reflect.Type) []FieldInfo {
	return fieldCache.get(t)
}

func (c *reflectionCache) get(t reflect.Type) []FieldInfo {
	c.mu.RLock()
	fields, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return fields
	}

	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			ft, isPtr := sf.Type, sf.Type.Kind() == reflect.Ptr
			if isPtr {
				ft = ft.Elem()
			}
			fields = append(fields, FieldInfo{Name: sf.Name, Index: i, Type: ft, IsPointer: isPtr})
		}
	}

	c.mu.Lock()
	c.fields[t] = fields
	c.mu.Unlock()
	return fields
}
