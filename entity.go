package vroom

import "github.com/hajimehoshi/ebiten/v2"

// Entity is a registered game object. A single flat struct is used for every
// kind of object; client-specific data lives in Payload. All callbacks are
// optional and nil by default.
type Entity struct {
	// ID is assigned by Register. Any value set beforehand is overwritten.
	ID ID
	// Layer is the draw layer in [1, MaxLayers]. Out-of-range values
	// (including the zero value) are replaced with 1 at registration.
	// A layer changed later moves the entity at the next index rebuild,
	// with the same fallback to 1.
	// Updates run from the highest layer down, renders from layer 1 up.
	Layer int

	// Payload is owned entirely by client code. The engine only inspects it
	// for the optional Positioned and Bounded capabilities.
	Payload any

	// OnInit runs exactly once during Register, after the id is assigned but
	// before the entity is inserted. The entity cannot be looked up by id
	// from inside OnInit; use the argument instead.
	OnInit func(e *Entity)
	// OnUpdate runs once per simulation tick with the fixed step in seconds.
	OnUpdate func(step float64)
	// OnRender runs once per frame. The camera view is informational: the
	// engine does not transform draw calls, so entities that want to pan or
	// zoom must apply cam themselves.
	OnRender func(dst *ebiten.Image, cam CameraView)

	// Collidable opts the entity into the collision pass.
	Collidable bool
	// Colliding and CollidingWith are reset at the start of every tick and
	// filled by the configured CollisionTest.
	Colliding     bool
	CollidingWith []ID
}

// Positioned is implemented by payloads that have a logical position.
// A camera can only follow entities whose payload is Positioned.
type Positioned interface {
	Position() Vec2
}

// Bounded is implemented by payloads with a hit-testable rectangle.
// IsEntityClicked requires it.
type Bounded interface {
	Bounds() (pos Vec2, dim Size)
}

// entityPosition returns the position of e's payload, if it has one.
func entityPosition(e *Entity) (Vec2, bool) {
	if e == nil {
		return Vec2{}, false
	}
	p, ok := e.Payload.(Positioned)
	if !ok {
		return Vec2{}, false
	}
	return p.Position(), true
}
