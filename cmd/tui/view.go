package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/agilearcher/ecs"
	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/ecs/system"
	"github.com/milk9111/agilearcher/tilemap"
)

// Terminal cells are about twice as tall as wide, so a tile spans two columns.
const colsPerTile = 2

const barCells = 20

var (
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleGround    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleActive    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAir       = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	styleJump      = tcell.StyleDefault.Background(tcell.ColorSkyblue).Foreground(tcell.ColorBlack)
	styleBar       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHUD       = tcell.StyleDefault
)

type termView struct {
	tiles   *tilemap.TileData
	originX int
	originY int
}

func newTermView(tiles *tilemap.TileData) termView {
	return termView{tiles: tiles, originX: 1, originY: 2}
}

// cellAt maps a terminal position to the tile drawn there.
func (v termView) cellAt(x, y int) (tilemap.Cell, bool) {
	if x < v.originX || y < v.originY {
		return tilemap.Cell{}, false
	}
	c := tilemap.Cell{X: (x - v.originX) / colsPerTile, Y: y - v.originY}
	return c, v.tiles.Grid().InBounds(c)
}

// cursorPixels turns a terminal position into the map pixel coordinates the
// input component carries, at the centre of the tile.
func (v termView) cursorPixels(x, y int) (int, int, bool) {
	c, ok := v.cellAt(x, y)
	if !ok {
		return 0, 0, false
	}
	return c.X*v.tiles.TileWidth + v.tiles.TileWidth/2, c.Y*v.tiles.TileHeight + v.tiles.TileHeight/2, true
}

func (v termView) draw(screen tcell.Screen, w *ecs.World, ctx *system.Context) {
	screen.Clear()

	grid := v.tiles.Grid()
	active := v.tiles.Layout.Region(v.tiles.ActiveRegion())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := tilemap.Cell{X: x, Y: y}
			r, style := '·', styleAir
			switch {
			case grid.IsUnpassable(c):
				r, style = '█', styleWall
			case active != nil && active.Contains(c):
				r, style = '▁', styleActive
			case v.tiles.Layout.Ground.Has(c):
				r, style = '▁', styleGround
			}
			v.put(screen, c, r, style)
		}
	}

	if he, ok := ecs.First(w, component.HighlightComponent.Kind()); ok {
		if hl, ok := ecs.Get(w, he, component.HighlightComponent.Kind()); ok && hl.Visible {
			style := styleHighlight
			if hl.Jump {
				style = styleJump
			}
			v.put(screen, hl.Cell, ' ', style)
		}
	}

	hud := ""
	if pe, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if actor, ok := ecs.Get(w, pe, component.MoverComponent.Kind()); ok {
			v.put(screen, actor.Cell, '@', stylePlayer)
			hud = actor.State.String()
		}
		if energy, ok := ecs.Get(w, pe, component.EnergyComponent.Kind()); ok {
			hud = fmt.Sprintf("energy %d/%d  %s", energy.Current, energy.Base, hud)
		}
	}
	if ctx != nil && ctx.Turn != nil {
		hud = fmt.Sprintf("turn %d %s  %s", ctx.Turn.Number, ctx.Turn.Turn, hud)
	}
	drawText(screen, v.originX, 0, hud+"  [e] end turn  [esc] quit", styleHUD)

	if be, ok := ecs.First(w, component.EnergyBarComponent.Kind()); ok {
		if bar, ok := ecs.Get(w, be, component.EnergyBarComponent.Kind()); ok {
			n := 0
			if bar.MaxWidth > 0 {
				n = int(bar.Width / bar.MaxWidth * barCells)
			}
			for i := 0; i < barCells; i++ {
				r := '░'
				if i < n {
					r = '█'
				}
				screen.SetContent(v.originX+i, 1, r, nil, styleBar)
			}
		}
	}

	screen.Show()
}

func (v termView) put(screen tcell.Screen, c tilemap.Cell, r rune, style tcell.Style) {
	x := v.originX + c.X*colsPerTile
	y := v.originY + c.Y
	for i := 0; i < colsPerTile; i++ {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
