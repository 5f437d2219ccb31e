package vroom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields simultaneously. Create one via
// TweenVec or TweenFloat and call Update(step) from an entity's OnUpdate.
// If the owning entity is deleted, the group stops immediately.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64

	reg   *Registry
	owner ID

	Done bool
}

// Update advances all tweens by step seconds and writes values to the target
// fields. If the owner entity is gone, Done is set and no writes occur.
func (g *TweenGroup) Update(step float64) {
	if g.Done {
		return
	}
	if g.reg != nil {
		if _, ok := g.reg.Entity(g.owner); !ok {
			g.Done = true
			return
		}
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(step))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// BindTo stops the group as soon as the entity id is no longer registered.
func (g *TweenGroup) BindTo(reg *Registry, id ID) *TweenGroup {
	g.reg = reg
	g.owner = id
	return g
}

// TweenVec creates a TweenGroup that animates v.X and v.Y to the target over
// duration seconds using the easing function.
func TweenVec(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	return g
}

// TweenFloat creates a TweenGroup that animates a single field.
func TweenFloat(f *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*f), float32(to), duration, fn)
	g.fields[0] = f
	return g
}
