// Package camera provides the 2D viewport transform and mouse picking built
// on top of the granary core. Both are read-only consumers of the Transform
// and RenderLayer components.
package camera

import (
	"github.com/TheBitDrifter/granary"
	"github.com/TheBitDrifter/granary/components"
	"github.com/TheBitDrifter/granary/gmath"
)

// Camera maps between world space and screen space. Position is the world
// point at the center of the viewport.
type Camera struct {
	Position gmath.Vec2
	Zoom     float64
	Viewport gmath.Vec2
}

func New(viewportW, viewportH float64) *Camera {
	return &Camera{
		Zoom:     1,
		Viewport: gmath.Vec2{X: viewportW, Y: viewportH},
	}
}

// Follow centers the camera on target.
func (c *Camera) Follow(target gmath.Vec2) {
	c.Position = target
}

// WorldToScreen projects a world point into screen coordinates.
func (c *Camera) WorldToScreen(w gmath.Vec2) gmath.Vec2 {
	return w.Sub(c.Position).Scale(c.Zoom).Add(c.Viewport.Scale(0.5))
}

// ScreenToWorld is the inverse projection, used for mouse picking.
func (c *Camera) ScreenToWorld(s gmath.Vec2) gmath.Vec2 {
	return s.Sub(c.Viewport.Scale(0.5)).Scale(1 / c.Zoom).Add(c.Position)
}

// Pick returns the entity under the given screen point, preferring higher
// render layers and, within a layer, the most recently created entity. Only
// entities carrying a Transform participate; entities without a RenderLayer
// count as LayerBackground. The walk iterates a registry snapshot, so callers
// may destroy the picked entity immediately.
func Pick(ctx *granary.Context, cam *Camera, screen gmath.Vec2) (granary.EntityID, bool) {
	world := cam.ScreenToWorld(screen)
	d := ctx.Directory()

	var picked granary.EntityID
	pickedLayer := components.Layer(-1)
	found := false

	for _, id := range ctx.Registry().ActiveEntities() {
		if !granary.HasComponent[components.Transform](ctx, id) {
			continue
		}
		tr := granary.Get[components.Transform](d, id)
		if !tr.Bounds().Contains(world) {
			continue
		}
		layer := components.LayerBackground
		if granary.HasComponent[components.RenderLayer](ctx, id) {
			layer = granary.Get[components.RenderLayer](d, id).Value
		}
		if !found || layer >= pickedLayer {
			picked = id
			pickedLayer = layer
			found = true
		}
	}
	return picked, found
}
