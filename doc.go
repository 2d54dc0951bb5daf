/*
Package granary provides the fixed-capacity Entity-Component-System (ECS) core
for 2D games and simulations.

Granary keeps component data in dense per-type arrays so that per-frame logic
iterates packed memory. Entity identifiers are drawn from a bounded pool and
recycled in FIFO order, and each entity carries a signature bitmask recording
which component types it currently owns.

Core Concepts:

  - Entity: A recycled identifier in [0, MaxEntities) that represents a game object.
  - Component: A plain data value attached to an entity.
  - Signature: A bitmask with one bit per registered component type.
  - Registry: Issues and reclaims entity identifiers and owns signatures.
  - Directory: Routes typed component operations to the matching dense storage.
  - Context: Owns one Registry and one Directory with an explicit lifecycle.

Basic Usage:

	// Create a context
	ctx := granary.Factory.NewContext(granary.Config{})

	// Register components
	granary.RegisterComponent[Position](ctx.Directory())
	granary.RegisterComponent[Velocity](ctx.Directory())

	// Create an entity and attach data
	player := ctx.CreateEntity()
	granary.Attach(ctx, player, Position{X: 10, Y: 20})
	granary.Attach(ctx, player, Velocity{X: 1, Y: 0})

	// Query and mutate in place
	pos := granary.Get[Position](ctx.Directory(), player)
	vel := granary.Get[Velocity](ctx.Directory(), player)
	pos.X += vel.X
	pos.Y += vel.Y

	// Tear down
	ctx.DestroyEntity(player)

All operations are single-threaded and synchronous; misuse of the API contract
(capacity exhaustion, double registration, missing components, out-of-range
identifiers) is a programming error and panics with a typed error value.

Granary works as a standalone library; the audio, camera, components, and
gmath subpackages hold the utility layers the engine builds on top of it.
*/
package granary
