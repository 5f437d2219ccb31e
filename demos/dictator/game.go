package main

import (
	"io/fs"
	"log"
	"math/rand/v2"

	"github.com/phanxgames/vroom"

	"github.com/hajimehoshi/ebiten/v2"
)

// game wires the card rules onto a vroom engine.
type game struct {
	engine *vroom.Engine
	state  *GameState
	dealer dealer
	table  *table
	assets fs.FS // nil uses placeholder art
	fonts  map[float64]*vroom.Font
	played *vroom.Sound
}

func newGame(engine *vroom.Engine, assets fs.FS, seed uint64) *game {
	g := &game{
		engine: engine,
		state:  NewGameState(),
		dealer: dealer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))},
		assets: assets,
		fonts:  make(map[float64]*vroom.Font),
	}
	g.table = newTable(g)

	g.addBackground()
	g.addDictator()
	g.addDevelopmentScreen()
	g.addUnrestMeter()
	g.addGameOverDialog()
	engine.Register(&vroom.Entity{OnUpdate: g.table.update})

	engine.SetPostUpdate(func(float64) { g.state.Check() })
	engine.ActivateCamera(engine.NewCamera(0, 0, 1, vroom.AxisBoth, 0.5))

	if assets != nil {
		g.played = engine.NewSound(assets, "sounds/card.wav")
		g.played.Load()
	}

	g.table.deal()
	return g
}

// play applies a clicked card and takes it off the table.
func (g *game) play(c *card) {
	g.state.Apply(c.CardInfo)
	g.table.remove(c)
	if g.played != nil {
		g.played.Play()
	}
}

func (g *game) restart() {
	g.state.Reset()
	g.table.clear()
	g.table.deal()
	log.Println("dictator: restarted")
}

func (g *game) font(size float64) *vroom.Font {
	f, ok := g.fonts[size]
	if !ok {
		f = vroom.DefaultFont(size)
		g.fonts[size] = f
	}
	return f
}

// sprite loads name from the asset directory, or wraps fallback when there
// is none.
func (g *game) sprite(name string, opts vroom.SpriteOptions, fallback *ebiten.Image) *vroom.Sprite {
	if g.assets != nil {
		return vroom.LoadSprite(g.assets, name, opts)
	}
	return vroom.NewSpriteFromImage(fallback, opts)
}

func (g *game) cardSprite(kind string) *vroom.Sprite {
	return g.sprite("sprites/cards/"+kind+".png", vroom.SpriteOptions{}, cardPlaceholder(kind))
}
