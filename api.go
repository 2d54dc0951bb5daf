package granary

import (
	"github.com/TheBitDrifter/mask"
)

// EntityID identifies a live entity. IDs are recycled after destruction, so
// they are unique among currently-active entities only, never across the
// process lifetime.
type EntityID uint32

// Signature records which component types an entity currently owns, one bit
// per registered type, indexed by the type's slot.
type Signature = mask.Mask

// Storage is the capability every dense component storage exposes to the
// Directory regardless of its element type. The Directory fans entity
// destruction and scene teardown out over this interface.
type Storage interface {
	Clear()
	EntityDestroyed(EntityID)
	Count() int
}
