package main

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vroom"
)

var developmentTexts = [numFields][]string{
	Guidance:   {"Paper map"},
	Computer:   {"Calculator parts"},
	Sensors:    {"Sensor research", "Smoke detector", "Canary birds", "Compass and tape"},
	RocketFuel: {"Unstable explosives"},
	Control:    {"Random sheet metal"},
	Propulsion: {"Old Bucket"},
}

var publicWorkTexts = []string{
	"National park",
	"Hospital or whatever",
	"Water slides\nfor the elderly",
}

// dealer draws random cards. One draw in ten is a public work.
type dealer struct {
	rng *rand.Rand
}

func (d dealer) draw() CardInfo {
	if d.rng.IntN(10)+1 == 10 {
		return d.publicWork()
	}
	return d.development()
}

func (d dealer) development() CardInfo {
	f := Field(d.rng.IntN(int(numFields)))
	texts := developmentTexts[f]
	return CardInfo{
		Text:   texts[d.rng.IntN(len(texts))],
		Kind:   Development,
		Field:  f,
		Effect: d.rng.IntN(4) + 1,
		Unrest: d.rng.IntN(4) + 1,
	}
}

func (d dealer) publicWork() CardInfo {
	return CardInfo{
		Text:   publicWorkTexts[d.rng.IntN(len(publicWorkTexts))],
		Kind:   PublicWork,
		Effect: d.rng.IntN(4) + 1,
	}
}

const (
	cardLayer = 2
	cardScale = 0.7
	cardW     = 280
	cardH     = 400
)

var (
	cardTextColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	cardFieldColor  = color.RGBA{0x24, 0xd7, 0xdd, 0xff}
	cardHappyColor  = color.RGBA{0x1d, 0xc9, 0x36, 0xff}
	cardUnrestColor = color.White
)

// card is the payload of a card entity. It implements vroom.Bounded so the
// engine can hit-test it.
type card struct {
	CardInfo
	g      *game
	id     vroom.ID
	pos    vroom.Vec2
	order  int
	sprite *vroom.Sprite
}

func (c *card) Bounds() (vroom.Vec2, vroom.Size) {
	return c.pos, c.sprite.Size().Scale(cardScale)
}

func (g *game) newCard(info CardInfo) *card {
	c := &card{CardInfo: info, g: g}
	name := "development"
	if info.Kind == PublicWork {
		name = "public_work"
	}
	c.sprite = g.cardSprite(name)
	c.id = g.engine.Register(&vroom.Entity{
		Layer:    cardLayer,
		Payload:  c,
		OnUpdate: c.update,
		OnRender: c.render,
	})
	return c
}

func (c *card) update(step float64) {
	t := c.g.table
	w := c.sprite.Size().Width * cardScale
	c.pos = vroom.Vec2{
		X: t.pos.X + t.margin*float64(c.order) + w*float64(c.order),
		Y: t.pos.Y,
	}
	if c.g.state.Over {
		return
	}
	if c.g.engine.IsEntityClicked(c.id, false) {
		c.g.play(c)
	}
}

func (c *card) render(dst *ebiten.Image, _ vroom.CameraView) {
	if !c.sprite.Loaded() {
		return
	}
	size := c.sprite.Size()
	c.sprite.Render(dst, c.pos.X, c.pos.Y, size.Width*cardScale, size.Height*cardScale)

	cx := c.pos.X + size.Width/2*cardScale
	small := c.g.font(21 * cardScale)
	big := c.g.font(60 * cardScale)
	vroom.MultilineText(dst, c.Text, c.pos.X+140*cardScale, c.pos.Y+60*cardScale, 15, small, cardTextColor, vroom.TextAlignCenter)

	switch c.Kind {
	case Development:
		vroom.MultilineText(dst, strings.ToUpper(c.Field.String()), cx, c.pos.Y+200*cardScale, 0, small, cardFieldColor, vroom.TextAlignCenter)
		vroom.MultilineText(dst, strconv.Itoa(c.Effect), cx, c.pos.Y+346*cardScale, 0, big, cardFieldColor, vroom.TextAlignCenter)
	case PublicWork:
		vroom.MultilineText(dst, strconv.Itoa(c.Effect), cx, c.pos.Y+346*cardScale, 0, big, cardHappyColor, vroom.TextAlignCenter)
	}

	vroom.MultilineText(dst, strconv.Itoa(c.Unrest),
		c.pos.X+(size.Width-30)*cardScale, c.pos.Y+(size.Height-16)*cardScale,
		0, c.g.font(40*cardScale), cardUnrestColor, vroom.TextAlignCenter)
}

// table holds the cards currently on offer. Once the number of cards falls
// to limit-drawLimit the whole table is cleared and dealt again.
type table struct {
	g         *game
	cards     []*card
	limit     int
	drawLimit int
	margin    float64
	pos       vroom.Vec2
}

func newTable(g *game) *table {
	return &table{
		g:         g,
		limit:     3,
		drawLimit: 1,
		margin:    10,
		pos:       vroom.Vec2{X: 600, Y: 100},
	}
}

func (t *table) update(step float64) {
	if len(t.cards) <= t.limit-t.drawLimit {
		t.clear()
		t.deal()
	}
}

// deal tops the table up to its limit.
func (t *table) deal() {
	for len(t.cards) < t.limit {
		t.add(t.g.newCard(t.g.dealer.draw()))
	}
}

func (t *table) add(c *card) {
	c.order = len(t.cards)
	t.cards = append(t.cards, c)
}

// remove takes c off the table and deletes its entity.
func (t *table) remove(c *card) {
	i := slices.Index(t.cards, c)
	if i < 0 {
		return
	}
	t.cards = slices.Delete(t.cards, i, i+1)
	t.g.engine.Delete(c.id)
}

func (t *table) clear() {
	for _, c := range t.cards {
		t.g.engine.Delete(c.id)
	}
	t.cards = t.cards[:0]
}
