package main

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/ecs/system"
	"github.com/milk9111/agilearcher/tilemap"
)

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x1e, B: 0x26, A: 0xff}
	wallColor       = color.RGBA{R: 0x5d, G: 0x4e, B: 0x3c, A: 0xff}
	groundColor     = color.RGBA{R: 0x2e, G: 0x3b, B: 0x2e, A: 0xff}
	activeColor     = color.RGBA{R: 0x3f, G: 0x5e, B: 0x3f, A: 0xff}
	gridColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10}
	hudTextColor    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type renderer struct {
	tiles *tilemap.TileData
	debug bool
	face  *text.GoTextFace
}

func newRenderer(tiles *tilemap.TileData, debug bool) (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &renderer{tiles: tiles, debug: debug, face: &text.GoTextFace{Source: src, Size: 12}}, nil
}

func (r *renderer) Draw(screen *ebiten.Image, w *ecs.World, ctx *system.Context) {
	screen.Fill(backgroundColor)
	r.drawTiles(screen)
	r.drawSprites(screen, w)
	r.drawHUD(screen, w, ctx)
}

func (r *renderer) drawTiles(screen *ebiten.Image) {
	tw, th := float32(r.tiles.TileWidth), float32(r.tiles.TileHeight)
	grid := r.tiles.Grid()
	active := r.tiles.Layout.Region(r.tiles.ActiveRegion())

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := tilemap.Cell{X: x, Y: y}
			px, py := r.tiles.ScreenPosition(c)
			sx, sy := float32(px), float32(py)
			switch {
			case grid.IsUnpassable(c):
				vector.DrawFilledRect(screen, sx, sy, tw, th, wallColor, false)
			case active != nil && active.Contains(c):
				vector.DrawFilledRect(screen, sx, sy, tw, th, activeColor, false)
			case r.tiles.Layout.Ground.Has(c):
				vector.DrawFilledRect(screen, sx, sy, tw, th, groundColor, false)
			}
			if r.debug {
				vector.StrokeRect(screen, sx, sy, tw, th, 1, gridColor, false)
			}
		}
	}

	if !r.debug {
		return
	}
	for _, region := range r.tiles.Layout.Regions {
		for _, c := range region.Cells() {
			op := &text.DrawOptions{}
			px, py := r.tiles.ScreenPosition(c)
			op.GeoM.Translate(px+2, py+2)
			op.ColorScale.ScaleWithColor(gridColor)
			text.Draw(screen, fmt.Sprint(region.Index), r.face, op)
		}
	}
}

// drawSprites draws flat-colour sprites in render-layer order. World
// transforms are y up and anchor the sprite's bottom centre to the tile.
func (r *renderer) drawSprites(screen *ebiten.Image, w *ecs.World) {
	type drawItem struct {
		e      ecs.Entity
		layer  int
		t      *component.Transform
		s      *component.Sprite
		screen bool
	}
	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if !s.Visible {
			return
		}
		item := drawItem{e: e, t: t, s: s, screen: ecs.Has(w, e, component.ScreenSpaceComponent.Kind())}
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			item.layer = layer.Index
		}
		items = append(items, item)
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		if it.screen {
			if bar, ok := ecs.Get(w, it.e, component.EnergyBarComponent.Kind()); ok {
				vector.DrawFilledRect(screen, float32(it.t.X), float32(it.t.Y), float32(bar.MaxWidth), float32(bar.Height), bar.Background, false)
			}
			vector.DrawFilledRect(screen, float32(it.t.X), float32(it.t.Y), float32(it.s.Width), float32(it.s.Height), it.s.Color, false)
			continue
		}
		x := it.t.X + (float64(r.tiles.TileWidth)-it.s.Width)/2
		y := float64(r.tiles.PixelHeight()) - it.t.Y - it.s.Height
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(it.s.Width), float32(it.s.Height), it.s.Color, true)
	}
}

func (r *renderer) drawHUD(screen *ebiten.Image, w *ecs.World, ctx *system.Context) {
	if ctx == nil || ctx.Turn == nil {
		return
	}
	line := fmt.Sprintf("turn %d  %s", ctx.Turn.Number, ctx.Turn.Turn)
	if pe, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if energy, ok := ecs.Get(w, pe, component.EnergyComponent.Kind()); ok {
			line += fmt.Sprintf("  energy %d/%d", energy.Current, energy.Base)
		}
		if actor, ok := ecs.Get(w, pe, component.MoverComponent.Kind()); ok && r.debug {
			line += fmt.Sprintf("  %s %s region %d", actor.State, actor.Cell, actor.Region)
		}
	}
	line += "  [E] end turn"

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 30)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, line, r.face, op)
}
