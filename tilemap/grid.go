// Package tilemap derives the walkable structure of a level: the passability
// grid, the greedy ground regions and the jump-target set.
package tilemap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("tilemap: invalid grid dimensions")
	ErrOutOfBounds       = errors.New("tilemap: cell out of bounds")
)

// Cell is a grid coordinate. X is the column, Y the row counted from the top
// of the map.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// TileType is the passability of one grid cell.
type TileType uint8

const (
	Open TileType = iota
	Unpassable
)

func (t TileType) String() string {
	if t == Unpassable {
		return "unpassable"
	}
	return "open"
}

// Grid is a width x height passability mask stored row-major.
type Grid struct {
	width  int
	height int
	cells  []TileType
}

// NewGrid builds a grid where every cell in blocked is Unpassable. A blocked
// cell outside the dimensions means the layer does not fit the map.
func NewGrid(width, height int, blocked []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]TileType, width*height),
	}
	for _, c := range blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, width, height)
		}
		g.cells[g.index(c)] = Unpassable
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return g != nil && c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

// At returns the tile type of c. Callers must pass in-bounds cells.
func (g *Grid) At(c Cell) TileType {
	return g.cells[g.index(c)]
}

// IsOpen reports whether c is inside the grid and passable.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Open
}

// IsUnpassable reports whether c is inside the grid and blocked.
func (g *Grid) IsUnpassable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Unpassable
}

// Blocked returns every unpassable cell in row-major order.
func (g *Grid) Blocked() []Cell {
	var out []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Unpassable {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}
