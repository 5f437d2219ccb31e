package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/vroom"
)

var (
	unmetColor    = color.RGBA{0xfc, 0x45, 0x2d, 0xff}
	metColor      = color.RGBA{0x1b, 0xdd, 0x37, 0xff}
	dialogColor   = color.RGBA{0x98, 0xb9, 0xff, 0xff}
	unrestBarClr  = color.RGBA{0xfc, 0x45, 0x2d, 0xff}
	dialogTextClr = color.White
)

// largePixelScale blows the 240 pixel wide backdrop up to the logical width.
func (g *game) largePixelScale() float64 {
	return float64(g.engine.Config().Width) / 240
}

func (g *game) addBackground() {
	s := g.sprite("sprites/design/background.jpg", vroom.SpriteOptions{}, placeholder(240, 135, color.RGBA{0xd8, 0xc8, 0xa8, 0xff}))
	scale := g.largePixelScale()
	g.engine.Register(&vroom.Entity{
		OnRender: func(dst *ebiten.Image, _ vroom.CameraView) {
			if !s.Loaded() {
				return
			}
			size := s.Size()
			s.Render(dst, 0, 0, size.Width*scale, size.Height*scale)
		},
	})
}

func (g *game) addDictator() {
	opts := vroom.SpriteOptions{
		Animated:    true,
		Duration:    20,
		FrameWidth:  42,
		FrameHeight: 70,
		Frames:      8,
	}
	s := g.sprite("sprites/design/dictator_thinking.png", opts, dictatorStrip(opts))
	scale := g.largePixelScale()
	pos := vroom.Vec2{X: float64(g.engine.Config().Width) / 4, Y: 13 * scale}
	g.engine.Register(&vroom.Entity{
		OnUpdate: s.Update,
		OnRender: func(dst *ebiten.Image, _ vroom.CameraView) {
			s.Render(dst, pos.X, pos.Y, 42*scale, 70*scale)
		},
	})
}

const screenScale = 0.7

// developmentSlots places each field's counter on the rocket screen.
var developmentSlots = [numFields]vroom.Vec2{
	Guidance:   {X: 240, Y: 22},
	Computer:   {X: 40, Y: 70},
	Sensors:    {X: 240, Y: 120},
	RocketFuel: {X: 40, Y: 185},
	Control:    {X: 240, Y: 280},
	Propulsion: {X: 40, Y: 335},
}

func (g *game) addDevelopmentScreen() {
	s := g.sprite("sprites/ui/rocket_screen.png", vroom.SpriteOptions{}, placeholder(300, 360, color.RGBA{0x2a, 0x2a, 0x3a, 0xff}))
	pos := vroom.Vec2{X: 50, Y: 100}
	g.engine.Register(&vroom.Entity{
		OnRender: func(dst *ebiten.Image, _ vroom.CameraView) {
			if s.Loaded() {
				size := s.Size()
				s.Render(dst, pos.X, pos.Y, size.Width*screenScale, size.Height*screenScale)
			}
			f := g.font(30 * screenScale)
			for i, slot := range developmentSlots {
				field := Field(i)
				clr := unmetColor
				if g.state.Met(field) {
					clr = metColor
				}
				label := fmt.Sprintf("%d/%d", g.state.Development[field], g.state.Requirements[field])
				vroom.MultilineText(dst, label, pos.X+slot.X*screenScale, pos.Y+slot.Y*screenScale, 0, f, clr, vroom.TextAlignCenter)
			}
		},
	})
}

func (g *game) addUnrestMeter() {
	width := float64(g.engine.Config().Width)
	g.engine.Register(&vroom.Entity{
		OnRender: func(dst *ebiten.Image, _ vroom.CameraView) {
			w := width * g.state.UnrestRatio()
			vector.DrawFilledRect(dst, 0, 0, float32(w), 50, unrestBarClr, false)
			vroom.MultilineText(dst, "PUBLIC UNREST", 10, 32, 0, g.font(20), dialogTextClr, vroom.TextAlignLeft)
		},
	})
}

const dialogLayer = 6

// gameOverDialog is shown once unrest peaks. Its button restarts the game.
type gameOverDialog struct {
	g         *game
	pos       vroom.Vec2
	dim       vroom.Size
	buttonPos vroom.Vec2
	buttonDim vroom.Size
}

func (g *game) addGameOverDialog() {
	cfg := g.engine.Config()
	d := &gameOverDialog{
		g:         g,
		pos:       vroom.Vec2{X: float64(cfg.Width)/2 - 200, Y: float64(cfg.Height)/2 - 100},
		dim:       vroom.Size{Width: 400, Height: 200},
		buttonDim: vroom.Size{Width: 160, Height: 50},
	}
	g.engine.Register(&vroom.Entity{
		Layer:    dialogLayer,
		Payload:  d,
		OnInit:   func(*vroom.Entity) { d.layoutButton() },
		OnUpdate: d.update,
		OnRender: d.render,
	})
}

func (d *gameOverDialog) layoutButton() {
	d.buttonPos = vroom.Vec2{
		X: d.pos.X + d.dim.Width/2 - d.buttonDim.Width/2,
		Y: d.pos.Y + 130,
	}
}

func (d *gameOverDialog) update(step float64) {
	if !d.g.state.Over {
		return
	}
	if d.g.engine.IsAreaClicked(d.buttonPos, d.buttonDim, false) {
		// Layers below must not see this click.
		d.g.engine.ResetClick()
		d.g.restart()
	}
}

func (d *gameOverDialog) render(dst *ebiten.Image, _ vroom.CameraView) {
	if !d.g.state.Over {
		return
	}
	vector.DrawFilledRect(dst, float32(d.pos.X), float32(d.pos.Y), float32(d.dim.Width), float32(d.dim.Height), dialogColor, false)

	f := d.g.font(14.7)
	cx := d.pos.X + d.dim.Width/2
	vroom.MultilineText(dst, "Oh no!\nThe people want to govern themselves!", cx, d.pos.Y+50, 20, f, dialogTextClr, vroom.TextAlignCenter)

	vector.DrawFilledRect(dst, float32(d.buttonPos.X), float32(d.buttonPos.Y), float32(d.buttonDim.Width), float32(d.buttonDim.Height), unmetColor, false)
	vroom.MultilineText(dst, "TRY AGAIN", d.buttonPos.X+d.buttonDim.Width/2, d.buttonPos.Y+33, 0, f, dialogTextClr, vroom.TextAlignCenter)
}
