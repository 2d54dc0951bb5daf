// Package components defines the stock component types the engine's utility
// layers (rendering, camera, mouse picking, audio glue) read through the ECS
// core. Components are plain data; all behavior lives in systems.
package components

import (
	"github.com/TheBitDrifter/granary"
	"github.com/TheBitDrifter/granary/gmath"
)

// Layer orders rendering back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerWorld
	LayerForeground
	LayerUI
)

// Transform places an entity in world space. Scale doubles as the entity's
// size for picking (see camera.Pick).
type Transform struct {
	Position gmath.Vec2
	Rotation float64
	Scale    gmath.Vec2
}

// Bounds returns the axis-aligned rect covered by the transform.
func (t Transform) Bounds() gmath.Rect {
	return gmath.RectAround(t.Position, t.Scale)
}

// Velocity moves a Transform each frame.
type Velocity struct {
	Linear  gmath.Vec2
	Angular float64
}

// RenderLayer assigns an entity to a draw layer.
type RenderLayer struct {
	Value Layer
}

// Name tags an entity for lookup and debugging.
type Name struct {
	Value string
}

// SoundEmitter references a loaded sound by name and the audio channel it
// plays on. The core never touches the audio subsystem; systems read this
// component and drive an audio.Manager themselves.
type SoundEmitter struct {
	Sound   string
	Channel int
}

// RegisterDefaults registers the stock component set on a directory.
func RegisterDefaults(d *granary.Directory) {
	granary.RegisterComponent[Transform](d)
	granary.RegisterComponent[Velocity](d)
	granary.RegisterComponent[RenderLayer](d)
	granary.RegisterComponent[Name](d)
	granary.RegisterComponent[SoundEmitter](d)
}
