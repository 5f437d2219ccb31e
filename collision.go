package vroom

// CollisionTest reports whether two collidable entities overlap. The engine
// only provides the reset and pairing passes; geometry is up to the client.
type CollisionTest func(a, b *Entity) bool

// resetCollisions clears transient collision state on every collidable entity.
func resetCollisions(r *Registry) {
	r.Each(func(e *Entity) {
		if !e.Collidable {
			return
		}
		e.Colliding = false
		e.CollidingWith = e.CollidingWith[:0]
	})
}

// checkCollisions tests every unordered pair of collidable entities once and
// records hits on both sides. A nil test leaves the pass inert.
func checkCollisions(r *Registry, test CollisionTest, scratch []*Entity) []*Entity {
	if test == nil {
		return scratch
	}
	scratch = scratch[:0]
	r.Each(func(e *Entity) {
		if e.Collidable {
			scratch = append(scratch, e)
		}
	})
	for i := 0; i < len(scratch); i++ {
		a := scratch[i]
		for j := i + 1; j < len(scratch); j++ {
			b := scratch[j]
			if !test(a, b) {
				continue
			}
			a.Colliding = true
			b.Colliding = true
			a.CollidingWith = append(a.CollidingWith, b.ID)
			b.CollidingWith = append(b.CollidingWith, a.ID)
		}
	}
	return scratch
}

// OverlapTest returns a CollisionTest that treats Bounded payloads as
// axis-aligned rectangles. Entities without bounds never collide.
func OverlapTest() CollisionTest {
	return func(a, b *Entity) bool {
		ab, ok := a.Payload.(Bounded)
		if !ok {
			return false
		}
		bb, ok := b.Payload.(Bounded)
		if !ok {
			return false
		}
		ap, ad := ab.Bounds()
		bp, bd := bb.Bounds()
		return ap.X < bp.X+bd.Width && bp.X < ap.X+ad.Width &&
			ap.Y < bp.Y+bd.Height && bp.Y < ap.Y+ad.Height
	}
}
