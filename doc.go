// Package vroom is a small fixed-timestep 2D entity engine for [Ebitengine].
//
// Vroom keeps a registry of game objects organised into draw layers, steps
// them on a fixed timestep, renders them in layer order, and provides a
// dead-zone follow camera, frame-strip sprites, sound clips and a per-tick
// keyboard/mouse snapshot with hit-testing.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	e := vroom.New(vroom.DefaultConfig())
//	e.Register(&vroom.Entity{
//		Layer:    2,
//		OnUpdate: func(step float64) { /* ... */ },
//		OnRender: func(dst *ebiten.Image, cam vroom.CameraView) { /* ... */ },
//	})
//	vroom.Run(e)
//
// [Engine] implements [ebiten.Game], so it can also be run with
// ebiten.RunGame directly or wrapped by another game.
//
// # Entities and layers
//
// An [Entity] is a flat record of optional callbacks plus a client-owned
// Payload. Updates visit layers from the highest down to 1 so foreground
// objects (dialogs, buttons) see input first and can call
// [Engine.ResetClick]; renders visit layers from 1 up so foreground objects
// draw on top. Within a layer, registration order is preserved.
//
// Entities registered or deleted during a tick show up in the layer index
// at the end of that tick.
//
// # Loop
//
// Each frame measures wall-clock time, clamps it to one second and drains
// whole fixed steps from an accumulator. Each tick runs, in order: the
// collision pass, entity updates, the camera, the post-update hook, the
// click reset and the layer index rebuild. Exactly one render pass follows.
//
// # Camera
//
// The camera never transforms drawing. Render callbacks receive a
// [CameraView] and apply [CameraView.Project] themselves; camera-relative
// hit-tests apply the same transform automatically.
//
// [Ebitengine]: https://ebitengine.org
package vroom
