package vroom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CameraView is the read-only camera snapshot handed to render callbacks.
// With no active camera it is the identity view: zero position, zoom 1.
type CameraView struct {
	Pos      Vec2
	Zoom     float64
	FollowID ID // empty when not following
}

// Project maps a logical position into camera space: p*zoom - pos. This is
// the same transform the hit-tests use for camera-relative areas.
func (v CameraView) Project(p Vec2) Vec2 {
	return p.Scale(v.Zoom).Add(v.Pos.Scale(-1))
}

var identityView = CameraView{Zoom: 1}

// Camera is a 2D view position with optional dead-zone follow and zoom.
//
// Position only moves while following an entity (or while a ScrollTo is
// active); the zoom interpolates toward TargetZoom every tick regardless.
// Changing the zoom does not re-center the view.
type Camera struct {
	// Pos is the current camera offset in zoomed logical units.
	Pos Vec2
	// Target is where Pos is interpolating toward.
	Target Vec2
	// Zoom is the current zoom and TargetZoom the level it moves toward.
	Zoom, TargetZoom float64

	// Axis limits which directions a follow tracks.
	Axis Axis
	// Factor is the positional interpolation factor; Instant snaps.
	Factor Factor
	// ZoomFactor is the zoom interpolation factor; Instant snaps.
	ZoomFactor Factor

	following ID
	deadZone  Vec2
	viewport  Size
	reg       *Registry

	scrollTween *scrollAnim
}

// newCamera creates a camera bound to a registry (for follow lookups) and a
// logical viewport (for dead-zone defaults and the push test).
func newCamera(reg *Registry, viewport Size, pos Vec2, zoom float64, axis Axis, factor Factor) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		Pos:        pos,
		Target:     pos,
		Zoom:       zoom,
		TargetZoom: zoom,
		Axis:       axis,
		Factor:     factor,
		ZoomFactor: Instant,
		viewport:   viewport,
		reg:        reg,
	}
}

// Follow starts tracking the entity with the given id. A zero dead-zone
// extent defaults to half the viewport on that axis. The entity's payload
// must be Positioned; otherwise the camera holds its target.
func (c *Camera) Follow(id ID, deadZoneX, deadZoneY float64) {
	if deadZoneX == 0 {
		deadZoneX = c.viewport.Width / 2
	}
	if deadZoneY == 0 {
		deadZoneY = c.viewport.Height / 2
	}
	c.following = id
	c.deadZone = Vec2{deadZoneX, deadZoneY}
}

// Stationary stops following. The camera position then stays where it is.
func (c *Camera) Stationary() {
	c.following = ""
}

// Following returns the followed entity id, or "" when stationary.
func (c *Camera) Following() ID {
	return c.following
}

// DeadZone returns the current dead-zone extents.
func (c *Camera) DeadZone() Vec2 {
	return c.deadZone
}

// SetZoom sets the zoom target. Instant applies it on the next tick.
func (c *Camera) SetZoom(level float64, f Factor) {
	c.TargetZoom = level
	c.ZoomFactor = f
}

// AdjustZoom moves the zoom target by delta.
func (c *Camera) AdjustZoom(delta float64, f Factor) {
	c.TargetZoom += delta
	c.ZoomFactor = f
}

// ScrollTo animates the camera position to (x, y) over duration seconds.
// While the scroll runs it overrides follow interpolation; afterwards Target
// rests at the destination.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Pos.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Pos.Y), float32(y), duration, easeFn),
	}
	c.Target = Vec2{x, y}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// View returns the snapshot passed to render callbacks.
func (c *Camera) View() CameraView {
	if c == nil {
		return identityView
	}
	return CameraView{Pos: c.Pos, Zoom: c.Zoom, FollowID: c.following}
}

// update advances zoom, scroll and follow. Called once per tick from the loop.
func (c *Camera) update(step float64) {
	c.Zoom += Lerp(step, c.Zoom, c.TargetZoom, c.ZoomFactor)

	if c.scrollTween != nil {
		dt := float32(step)
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.Pos.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Pos.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		return
	}

	if c.following == "" {
		return
	}
	if e, ok := c.reg.Entity(c.following); ok {
		if p, ok := entityPosition(e); ok {
			c.push(p)
		}
	}
	c.Pos = c.Pos.Add(LerpVec(step, c.Pos, c.Target, c.Factor))
}

// push moves Target just enough to keep the followed position p inside the
// dead zone on each enabled axis.
func (c *Camera) push(p Vec2) {
	if c.Axis.horizontal() {
		fx := p.X * c.Zoom
		switch {
		case fx-c.Pos.X+c.deadZone.X > c.viewport.Width:
			c.Target.X = fx - (c.viewport.Width - c.deadZone.X)
		case fx-c.deadZone.X < c.Pos.X:
			c.Target.X = fx - c.deadZone.X
		}
	}
	if c.Axis.vertical() {
		fy := p.Y * c.Zoom
		switch {
		case fy-c.Pos.Y+c.deadZone.Y > c.viewport.Height:
			c.Target.Y = fy - (c.viewport.Height - c.deadZone.Y)
		case fy-c.deadZone.Y < c.Pos.Y:
			c.Target.Y = fy - c.deadZone.Y
		}
	}
}
