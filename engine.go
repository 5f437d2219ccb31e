package vroom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// maxElapsed caps the wall-clock time fed into one Advance call, so a long
// stall (debugger, background tab, slow asset) cannot trigger a tick storm.
const maxElapsed = 1.0

// stepEpsilon absorbs float rounding so that elapsed == n*step drains exactly
// n ticks.
const stepEpsilon = 1e-9

// Engine is the fixed-timestep loop that owns the entity registry, layer
// index, camera and input state. It implements ebiten.Game.
//
// All methods must be called from the loop goroutine (Ebitengine's game
// goroutine) or before the game starts running.
type Engine struct {
	cfg Config

	reg    *Registry
	index  layerIndex
	primed bool

	input  *Input
	camera *Camera

	collide     CollisionTest
	collScratch []*Entity
	postUpdate  func(step float64)
	sink        EventSink

	step        float64
	accumulator float64
	ticks       uint64
	halted      bool

	now  func() time.Time
	last time.Time

	surface surface

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is the directory for Screenshot output.
	ScreenshotDir string

	audioCtx *audio.Context

	debug bool
	stats debugStats
}

// New creates an engine for cfg. Zero fields in cfg use DefaultConfig values.
func New(cfg Config) *Engine {
	cfg = cfg.normalize()
	e := &Engine{
		cfg:           cfg,
		reg:           NewRegistry(cfg.MaxLayers),
		input:         newInput(),
		step:          1 / float64(cfg.TPS),
		now:           time.Now,
		surface:       newSurface(cfg.Width, cfg.Height),
		ScreenshotDir: cfg.ScreenshotDir,
	}
	e.reg.onChange = func(t EventType, id ID) {
		e.emit(Event{Type: t, ID: id})
	}
	e.input.onClick = func(p Vec2) {
		e.emit(Event{Type: EventClick, Pos: p})
	}
	if cfg.ShowFPS {
		e.Register(NewFPSEntity(cfg.MaxLayers))
	}
	return e
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Step returns the fixed simulation step in seconds.
func (e *Engine) Step() float64 {
	return e.step
}

// Ticks returns the number of simulation ticks run so far.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// --- Registry passthrough ---

// Registry returns the entity registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// Register adds an entity and returns its new id. See Registry.Register.
func (e *Engine) Register(ent *Entity) ID {
	return e.reg.Register(ent)
}

// Entity looks up a live entity.
func (e *Engine) Entity(id ID) (*Entity, bool) {
	return e.reg.Entity(id)
}

// Delete removes an entity. Missing ids are ignored.
func (e *Engine) Delete(id ID) {
	e.reg.Delete(id)
}

// Replace overwrites a live entity's record in place.
func (e *Engine) Replace(id ID, ent *Entity) bool {
	return e.reg.Replace(id, ent)
}

// Len returns the number of live entities.
func (e *Engine) Len() int {
	return e.reg.Len()
}

// --- Hooks ---

// SetCollisionTest installs the pairwise collision predicate. Nil disables
// the collision pass.
func (e *Engine) SetCollisionTest(test CollisionTest) {
	e.collide = test
}

// SetPostUpdate installs a hook that runs every tick after entities and the
// camera have updated and before the click flag is cleared.
func (e *Engine) SetPostUpdate(fn func(step float64)) {
	e.postUpdate = fn
}

// SetEventSink forwards registration, deletion and click events to sink.
// Nil disables forwarding.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *Engine) emit(ev Event) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}

// --- Camera ---

// NewCamera creates a camera at (x, y) bound to this engine's registry and
// logical viewport. It is not active until passed to ActivateCamera.
func (e *Engine) NewCamera(x, y, zoom float64, axis Axis, f Factor) *Camera {
	return newCamera(e.reg, e.surface.logical, Vec2{x, y}, zoom, axis, f)
}

// ActivateCamera makes c the camera used for ticks, renders and
// camera-relative hit-tests. Nil deactivates.
func (e *Engine) ActivateCamera(c *Camera) {
	e.camera = c
}

// Camera returns the active camera, or nil.
func (e *Engine) Camera() *Camera {
	return e.camera
}

// --- Loop ---

// SetHalted pauses or resumes the loop. While halted no ticks or render
// passes run; the wall-clock reference keeps moving, so resuming does not
// produce a catch-up burst.
func (e *Engine) SetHalted(halted bool) {
	e.halted = halted
}

// Halted reports whether the loop is paused.
func (e *Engine) Halted() bool {
	return e.halted
}

// Advance feeds elapsed wall-clock seconds into the accumulator and runs as
// many whole fixed steps as it holds. Elapsed is clamped to one second.
// Leftover time carries over to the next call. It returns the number of
// ticks that ran.
func (e *Engine) Advance(elapsed float64) int {
	if e.halted {
		return 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}
	if elapsed < 0 {
		elapsed = 0
	}
	e.accumulator += elapsed

	n := 0
	for e.accumulator+stepEpsilon >= e.step {
		e.accumulator -= e.step
		e.tick()
		n++
	}
	if e.accumulator < 0 {
		e.accumulator = 0
	}
	return n
}

// prime builds the layer index once so entities registered during setup
// take part in the first tick and the first render.
func (e *Engine) prime() {
	if e.primed {
		return
	}
	e.index.rebuild(e.reg)
	e.primed = true
}

// tick runs one fixed simulation step.
func (e *Engine) tick() {
	e.prime()
	step := e.step

	resetCollisions(e.reg)
	e.collScratch = checkCollisions(e.reg, e.collide, e.collScratch)

	e.index.runUpdate(e.reg, step)
	if e.camera != nil {
		e.camera.update(step)
	}
	if e.postUpdate != nil {
		e.postUpdate(step)
	}

	e.input.resetClick()
	e.index.rebuild(e.reg)
	e.ticks++
}

// render runs one render pass into dst with the current camera snapshot.
func (e *Engine) render(dst *ebiten.Image) int {
	e.prime()
	return e.index.runRender(e.reg, dst, e.camera.View())
}

// --- ebiten.Game ---

// Update implements ebiten.Game. It polls input, drives any attached test
// runner, and advances the simulation by the wall-clock time since the
// previous frame.
func (e *Engine) Update() error {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}

	e.input.pollKeys()
	if !e.processInjectedInput() {
		e.input.pollMouse(&e.surface)
	}

	now := e.now()
	var elapsed float64
	if !e.last.IsZero() {
		elapsed = now.Sub(e.last).Seconds()
	}
	e.last = now

	start := time.Now()
	ticks := e.Advance(elapsed)
	if e.debug {
		e.stats.ticks = ticks
		e.stats.updateTime = time.Since(start)
	}
	return nil
}

// Draw implements ebiten.Game. The entities render into the logical canvas,
// which is then scaled onto screen. While halted the previous canvas is
// shown unchanged.
func (e *Engine) Draw(screen *ebiten.Image) {
	canvas := e.surface.target()
	start := time.Now()
	if !e.halted {
		canvas.Fill(e.cfg.Background)
		drawn := e.render(canvas)
		if e.debug {
			e.stats.drawn = drawn
		}
	}
	e.surface.present(screen)

	if e.debug {
		e.stats.renderTime = time.Since(start)
		e.stats.entities = e.reg.Len()
		e.debugLog(e.stats)
	}
	e.flushScreenshots(canvas)
}

// Layout implements ebiten.Game. The screen matches the window so the
// canvas can be scaled smoothly; the scale is recomputed whenever the
// window size changes.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.surface.resize(outsideWidth, outsideHeight) && e.debug {
		logDebug("resize %dx%d, scale %.3f", outsideWidth, outsideHeight, e.surface.scale)
	}
	return outsideWidth, outsideHeight
}

// Scale returns the current canvas-to-window scale factor.
func (e *Engine) Scale() float64 {
	return e.surface.scale
}
