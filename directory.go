package granary

import (
	"reflect"
)

// Directory is the central registry of component types. Each distinct type
// registered gets the next sequential slot (stable for the Directory's
// lifetime) and a fresh ComponentStorage sized to the entity capacity. Typed
// access goes through the package-level generic functions since Go methods
// cannot carry type parameters.
//
// Add and Remove deliberately do not touch entity signatures; the Registry
// owns those. Attach and Detach on a Context keep both in step.
type Directory struct {
	capacity int
	slots    map[reflect.Type]uint32
	storages []Storage
}

func newDirectory(capacity int) *Directory {
	return &Directory{
		capacity: capacity,
		slots:    make(map[reflect.Type]uint32),
	}
}

// Registered returns the number of component types registered so far.
func (d *Directory) Registered() int {
	return len(d.storages)
}

// NotifyEntityDestroyed tells every registered storage to drop id's data.
// The fan-out is unconditional, so cost is linear in the number of registered
// types, not in the components id actually had.
func (d *Directory) NotifyEntityDestroyed(id EntityID) {
	for _, s := range d.storages {
		s.EntityDestroyed(id)
	}
}

// ClearAll clears every registered storage. Full-scene teardown; pairs with
// Registry.DestroyAll.
func (d *Directory) ClearAll() {
	for _, s := range d.storages {
		s.Clear()
	}
}

// RegisterComponent assigns the next free slot to component type T and
// constructs its storage. Panics with DoubleRegistrationError if T was
// already registered, and with CapacityError once MaxComponentTypes distinct
// types exist.
func RegisterComponent[T any](d *Directory) uint32 {
	t := reflect.TypeFor[T]()
	if _, exists := d.slots[t]; exists {
		panic(DoubleRegistrationError{Type: t})
	}
	if len(d.storages) == MaxComponentTypes {
		panic(CapacityError{Limit: MaxComponentTypes})
	}
	slot := uint32(len(d.storages))
	d.slots[t] = slot
	d.storages = append(d.storages, newComponentStorage[T](d.capacity))
	return slot
}

// TypeSlot returns the slot assigned to T. Panics with UnregisteredTypeError
// if T was never registered.
func TypeSlot[T any](d *Directory) uint32 {
	t := reflect.TypeFor[T]()
	slot, exists := d.slots[t]
	if !exists {
		panic(UnregisteredTypeError{Type: t})
	}
	return slot
}

// StorageFor returns T's dense storage.
func StorageFor[T any](d *Directory) *ComponentStorage[T] {
	return d.storages[TypeSlot[T](d)].(*ComponentStorage[T])
}

// Add inserts value for id in T's storage. The entity's signature bit is the
// caller's responsibility (see Attach).
func Add[T any](d *Directory, id EntityID, value T) {
	StorageFor[T](d).Insert(id, value)
}

// Remove drops id's value from T's storage. The entity's signature bit is the
// caller's responsibility (see Detach).
func Remove[T any](d *Directory, id EntityID) {
	StorageFor[T](d).Remove(id)
}

// Get returns a mutable handle to id's T value.
func Get[T any](d *Directory, id EntityID) *T {
	return StorageFor[T](d).Get(id)
}

// Has reports whether T's storage holds a value for id.
func Has[T any](d *Directory, id EntityID) bool {
	return StorageFor[T](d).Has(id)
}

// SlotSignature builds the single-bit signature for a type slot.
func SlotSignature(slot uint32) Signature {
	var sig Signature
	sig.Mark(slot)
	return sig
}
