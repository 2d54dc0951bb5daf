package components

import (
	"github.com/TheBitDrifter/granary"
)

// DestroyUIScreen tears down one named UI screen without disturbing gameplay
// entities: every active entity on LayerUI whose Name equals screen is
// destroyed, per entity, across all storages. Entities sharing the layer but
// not the name, and all render-layer data of unrelated entities, survive.
// Returns the number of entities destroyed.
func DestroyUIScreen(ctx *granary.Context, screen string) int {
	d := ctx.Directory()
	return ctx.DestroyWhere(func(id granary.EntityID) bool {
		if !granary.HasComponent[RenderLayer](ctx, id) || !granary.HasComponent[Name](ctx, id) {
			return false
		}
		return granary.Get[RenderLayer](d, id).Value == LayerUI &&
			granary.Get[Name](d, id).Value == screen
	})
}
