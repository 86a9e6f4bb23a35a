package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/agilearcher/ecs/component"
	"github.com/milk9111/agilearcher/tilemap"
)

// ebitenInput samples the mouse and keyboard once per tick.
type ebitenInput struct {
	tiles *tilemap.TileData
}

func newEbitenInput(tiles *tilemap.TileData) *ebitenInput {
	return &ebitenInput{tiles: tiles}
}

func (i *ebitenInput) Poll() component.Input {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < i.tiles.PixelWidth() && y < i.tiles.PixelHeight()
	return component.Input{
		CursorX:      x,
		CursorY:      y,
		CursorInside: inside,
		Confirm:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		EndTurn:      inpututil.IsKeyJustPressed(ebiten.KeyE),
	}
}
