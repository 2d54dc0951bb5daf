package granary

import (
	"iter"
	"reflect"
)

var _ Storage = &ComponentStorage[struct{}]{}

// ComponentStorage is the dense packed storage for one component type. The
// first count cells of dense, and only those, hold live data; removal keeps
// them packed by swapping the last live cell into the vacated position, so
// packed iteration order is not stable across removals.
type ComponentStorage[T any] struct {
	typ      reflect.Type
	dense    []T
	entityAt []EntityID // slot -> entity, valid for slots below count
	slotOf   []int32    // entity -> slot, -1 when absent
	count    int
}

func newComponentStorage[T any](capacity int) *ComponentStorage[T] {
	s := &ComponentStorage[T]{
		typ:      reflect.TypeFor[T](),
		dense:    make([]T, capacity),
		entityAt: make([]EntityID, capacity),
		slotOf:   make([]int32, capacity),
	}
	for i := range s.slotOf {
		s.slotOf[i] = -1
	}
	return s
}

func (s *ComponentStorage[T]) checkRange(id EntityID) {
	if int(id) >= len(s.slotOf) {
		panic(RangeError{ID: id, Limit: len(s.slotOf)})
	}
}

// Insert appends value at the next free dense slot and records both index-map
// entries. Panics with ComponentExistsError if id already holds this type.
func (s *ComponentStorage[T]) Insert(id EntityID, value T) {
	s.checkRange(id)
	if s.slotOf[id] >= 0 {
		panic(ComponentExistsError{Type: s.typ, ID: id})
	}
	slot := s.count
	s.dense[slot] = value
	s.entityAt[slot] = id
	s.slotOf[id] = int32(slot)
	s.count++
}

// Remove swap-removes id's value: the last live slot moves into the vacated
// position and both index maps are fixed up for the moved entity. Panics with
// ComponentNotFoundError if id holds no value of this type.
func (s *ComponentStorage[T]) Remove(id EntityID) {
	s.checkRange(id)
	slot := s.slotOf[id]
	if slot < 0 {
		panic(ComponentNotFoundError{Type: s.typ, ID: id})
	}
	last := s.count - 1
	moved := s.entityAt[last]
	s.dense[slot] = s.dense[last]
	s.entityAt[slot] = moved
	s.slotOf[moved] = slot
	s.slotOf[id] = -1

	var zero T
	s.dense[last] = zero
	s.count--
}

// Get returns a mutable handle to id's value so callers update fields in
// place. Panics with ComponentNotFoundError if absent.
func (s *ComponentStorage[T]) Get(id EntityID) *T {
	s.checkRange(id)
	slot := s.slotOf[id]
	if slot < 0 {
		panic(ComponentNotFoundError{Type: s.typ, ID: id})
	}
	return &s.dense[slot]
}

// Has reports whether id currently holds a value of this type.
func (s *ComponentStorage[T]) Has(id EntityID) bool {
	s.checkRange(id)
	return s.slotOf[id] >= 0
}

// Count returns the number of live values.
func (s *ComponentStorage[T]) Count() int {
	return s.count
}

// Clear resets every slot to the zero value and empties both index maps.
func (s *ComponentStorage[T]) Clear() {
	clear(s.dense[:s.count])
	for i := range s.slotOf {
		s.slotOf[i] = -1
	}
	s.count = 0
}

// EntityDestroyed removes id's value if present and is a no-op otherwise.
// This is the idempotent hook the Directory fans destruction out through.
func (s *ComponentStorage[T]) EntityDestroyed(id EntityID) {
	if int(id) < len(s.slotOf) && s.slotOf[id] >= 0 {
		s.Remove(id)
	}
}

// All yields every live (entity, value) pair in packed order. The storage
// must not be mutated during iteration; destroy through a registry snapshot
// instead.
func (s *ComponentStorage[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.entityAt[i], &s.dense[i]) {
				return
			}
		}
	}
}
