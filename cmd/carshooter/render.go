package main

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/carshooter/shooter"
	"github.com/plus3/carshooter/world"
)

var (
	background    = color.RGBA{40, 44, 52, 255}
	colliderColor = color.RGBA{255, 255, 255, 160}
	cursorColor   = color.RGBA{255, 255, 255, 90}
)

var presetColors = map[shooter.Preset]color.RGBA{
	shooter.PresetRacingBarrierRed: {220, 50, 47, 255},
	shooter.PresetRollingBallBlue:  {38, 139, 210, 255},
	shooter.PresetRacingCarBlack:   {30, 30, 30, 255},
	shooter.PresetRacingCarBlue:    {42, 100, 220, 255},
	shooter.PresetRacingCarGreen:   {60, 170, 80, 255},
	shooter.PresetRacingCarRed:     {200, 40, 40, 255},
	shooter.PresetRacingCarYellow:  {230, 200, 40, 255},
}

// viewport maps world coordinates, origin at the centre and y up, to screen
// pixels, origin top left and y down.
type viewport struct {
	width, height float64
}

func (v viewport) toScreen(p shooter.Vec2) (float32, float32) {
	return float32(p.X + v.width/2), float32(v.height/2 - p.Y)
}

// toWorld converts a cursor position. ok is false outside the window.
func (v viewport) toWorld(x, y int) (shooter.Vec2, bool) {
	p := shooter.Vec2{X: float64(x) - v.width/2, Y: v.height/2 - float64(y)}
	ok := x >= 0 && y >= 0 && float64(x) < v.width && float64(y) < v.height
	return p, ok
}

// drawOrder returns the entities sorted by layer, lowest first.
func drawOrder(engine *world.Engine) []shooter.Entity {
	var ents []shooter.Entity
	for _, e := range engine.Entities() {
		ents = append(ents, e)
	}
	slices.SortStableFunc(ents, func(a, b shooter.Entity) int {
		return cmp.Compare(a.Transform.Layer, b.Transform.Layer)
	})
	return ents
}

func drawWorld(screen *ebiten.Image, v viewport, engine *world.Engine, showColliders bool) {
	screen.Fill(background)

	for _, e := range drawOrder(engine) {
		box := world.BoundingBox(*e.Transform, e.Appearance.Preset)
		clr := presetColors[e.Appearance.Preset]

		if e.Appearance.Preset == shooter.PresetRollingBallBlue {
			cx, cy := v.toScreen(e.Transform.Translation)
			r := float32(box.Max.X-box.Min.X) / 2
			vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
		} else {
			x, y := v.toScreen(shooter.Vec2{X: box.Min.X, Y: box.Max.Y})
			w, h := float32(box.Max.X-box.Min.X), float32(box.Max.Y-box.Min.Y)
			vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		}

		if showColliders && e.Collider.Enabled {
			x, y := v.toScreen(shooter.Vec2{X: box.Min.X, Y: box.Max.Y})
			w, h := float32(box.Max.X-box.Min.X), float32(box.Max.Y-box.Min.Y)
			vector.StrokeRect(screen, x, y, w, h, 1, colliderColor, false)
		}
	}

	for text := range engine.Texts() {
		x, y := v.toScreen(text.Position)
		// the debug font is 6x16 pixels per glyph
		ebitenutil.DebugPrintAt(screen, text.Value, int(x)-3*len(text.Value), int(y)-8)
	}

	if pos, ok := engine.MouseLocation(); ok {
		cx, cy := v.toScreen(pos)
		vector.StrokeCircle(screen, cx, cy, 6, 1, cursorColor, true)
	}
}
