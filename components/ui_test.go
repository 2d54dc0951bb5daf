package components_test

import (
	"testing"

	"github.com/TheBitDrifter/granary"
	"github.com/TheBitDrifter/granary/components"
	"github.com/TheBitDrifter/granary/gmath"
)

func newScene(t *testing.T) *granary.Context {
	t.Helper()
	ctx := granary.Factory.NewContext(granary.Config{MaxEntities: 64})
	components.RegisterDefaults(ctx.Directory())
	return ctx
}

func spawn(ctx *granary.Context, name string, layer components.Layer) granary.EntityID {
	id := ctx.CreateEntity()
	granary.Attach(ctx, id, components.Transform{Scale: gmath.Vec2{X: 1, Y: 1}})
	granary.Attach(ctx, id, components.RenderLayer{Value: layer})
	granary.Attach(ctx, id, components.Name{Value: name})
	return id
}

func TestDestroyUIScreen(t *testing.T) {
	ctx := newScene(t)
	d := ctx.Directory()

	// Two widgets on the pause screen, one on another screen, one gameplay
	// entity that shares the screen's name but not the UI layer.
	w1 := spawn(ctx, "pause", components.LayerUI)
	w2 := spawn(ctx, "pause", components.LayerUI)
	other := spawn(ctx, "inventory", components.LayerUI)
	world := spawn(ctx, "pause", components.LayerWorld)
	bare := ctx.CreateEntity() // no components at all

	destroyed := components.DestroyUIScreen(ctx, "pause")

	if destroyed != 2 {
		t.Fatalf("DestroyUIScreen destroyed %d, want 2", destroyed)
	}
	for _, id := range []granary.EntityID{w1, w2} {
		if granary.StorageFor[components.RenderLayer](d).Has(id) {
			t.Errorf("widget %d still has RenderLayer data", id)
		}
	}

	// Per-entity removal: unrelated entities keep their render-layer data.
	if !granary.Has[components.RenderLayer](d, other) {
		t.Error("other screen's widget lost its RenderLayer")
	}
	if got := granary.Get[components.RenderLayer](d, world).Value; got != components.LayerWorld {
		t.Errorf("gameplay entity layer = %v, want LayerWorld", got)
	}
	if ctx.Registry().Live() != 3 {
		t.Errorf("Live() = %d, want 3", ctx.Registry().Live())
	}
	_ = bare
}

func TestDestroyUIScreenNoMatches(t *testing.T) {
	ctx := newScene(t)
	spawn(ctx, "hud", components.LayerUI)

	if destroyed := components.DestroyUIScreen(ctx, "pause"); destroyed != 0 {
		t.Errorf("DestroyUIScreen destroyed %d, want 0", destroyed)
	}
	if ctx.Registry().Live() != 1 {
		t.Errorf("Live() = %d, want 1", ctx.Registry().Live())
	}
}

func TestTransformBounds(t *testing.T) {
	tr := components.Transform{
		Position: gmath.Vec2{X: 10, Y: 20},
		Scale:    gmath.Vec2{X: 4, Y: 2},
	}

	b := tr.Bounds()
	if !b.Contains(gmath.Vec2{X: 10, Y: 20}) {
		t.Error("Bounds() does not contain the transform's own position")
	}
	if b.Contains(gmath.Vec2{X: 12.1, Y: 20}) {
		t.Error("Bounds() wider than Scale.X")
	}
	if b.Width() != 4 || b.Height() != 2 {
		t.Errorf("Bounds() size = %v x %v, want 4 x 2", b.Width(), b.Height())
	}
}
