package tilemap

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// NoRegion marks a cell or actor that belongs to no walkable region.
const NoRegion = -1

// Region is a cluster of ground tiles keyed by row. Columns inside a row keep
// the order they were inserted in, which is ascending for built layouts.
type Region struct {
	Index int

	rows map[int][]int
	last Cell
	size int
}

func newRegion(index int, first Cell) *Region {
	r := &Region{Index: index, rows: make(map[int][]int)}
	r.add(first)
	return r
}

func (r *Region) add(c Cell) {
	r.rows[c.Y] = append(r.rows[c.Y], c.X)
	r.last = c
	r.size++
}

// accepts is the clustering rule: the candidate sits in the same column as the
// last member or one to its right, at most one row above or below.
func (r *Region) accepts(c Cell) bool {
	dx := c.X - r.last.X
	dy := c.Y - r.last.Y
	return (dx == 0 || dx == 1) && dy > -2 && dy < 2
}

// Contains reports whether c is a member of the region.
func (r *Region) Contains(c Cell) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.rows[c.Y], c.X)
}

// Row returns the member columns of row y.
func (r *Region) Row(y int) []int {
	if r == nil {
		return nil
	}
	return r.rows[y]
}

// Rows returns the occupied rows in ascending order.
func (r *Region) Rows() []int {
	if r == nil {
		return nil
	}
	out := make([]int, 0, len(r.rows))
	for y := range r.rows {
		out = append(out, y)
	}
	slices.Sort(out)
	return out
}

// Cells returns every member, rows ascending.
func (r *Region) Cells() []Cell {
	if r == nil {
		return nil
	}
	out := make([]Cell, 0, r.size)
	for _, y := range r.Rows() {
		for _, x := range r.rows[y] {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

// Len returns the number of member tiles.
func (r *Region) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Layout is everything derived from a level's collision layer once at load.
type Layout struct {
	Grid        *Grid
	Regions     []*Region
	Ground      mapset.Set[Cell]
	JumpTargets mapset.Set[Cell]

	regionAt []int
}

// BuildLayout derives the grid, ground regions and jump targets from the raw
// unpassable cells of a width x height level.
func BuildLayout(width, height int, blocked []Cell) (*Layout, error) {
	g, err := NewGrid(width, height, blocked)
	if err != nil {
		return nil, err
	}
	return NewLayout(g), nil
}

// NewLayout derives regions and jump targets from an existing grid.
func NewLayout(g *Grid) *Layout {
	l := &Layout{
		Grid:        g,
		Ground:      mapset.New[Cell](),
		JumpTargets: mapset.New[Cell](),
		regionAt:    make([]int, g.width*g.height),
	}
	for i := range l.regionAt {
		l.regionAt[i] = NoRegion
	}

	for _, c := range groundCandidates(g) {
		l.Ground.Put(c)
		l.place(c)
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.At(c) == Unpassable || l.Ground.Has(c) {
				continue
			}
			l.JumpTargets.Put(c)
		}
	}
	return l
}

// groundCandidates projects every unpassable tile one row up. The result is
// column-major (column ascending, then row ascending), the order the
// clustering pass depends on.
func groundCandidates(g *Grid) []Cell {
	var out []Cell
	for x := 0; x < g.width; x++ {
		for y := 1; y < g.height; y++ {
			above := Cell{X: x, Y: y - 1}
			if g.At(Cell{X: x, Y: y}) == Unpassable && g.At(above) == Open {
				out = append(out, above)
			}
		}
	}
	return out
}

// place joins c to the first region that accepts it, or starts a new one.
// This is a greedy pass, not a connected-components search: ambiguous
// platforms are grouped by visiting order.
func (l *Layout) place(c Cell) {
	target := -1
	for i, r := range l.Regions {
		if r.accepts(c) {
			target = i
			break
		}
	}
	if target < 0 {
		target = len(l.Regions)
		l.Regions = append(l.Regions, newRegion(target, c))
	} else {
		l.Regions[target].add(c)
	}
	l.regionAt[l.Grid.index(c)] = target
}

// RegionOf returns the index of the region containing c, or NoRegion.
func (l *Layout) RegionOf(c Cell) int {
	if l == nil || !l.Grid.InBounds(c) {
		return NoRegion
	}
	return l.regionAt[l.Grid.index(c)]
}

// Region returns the region at index i, or nil when i is not a valid index.
func (l *Layout) Region(i int) *Region {
	if l == nil || i < 0 || i >= len(l.Regions) {
		return nil
	}
	return l.Regions[i]
}

// IsJumpTarget reports whether c is reachable only by jumping.
func (l *Layout) IsJumpTarget(c Cell) bool {
	return l != nil && l.JumpTargets.Has(c)
}

// JumpTargetCells returns the jump targets in row-major order.
func (l *Layout) JumpTargetCells() []Cell {
	if l == nil {
		return nil
	}
	out := make([]Cell, 0, l.JumpTargets.Size())
	l.JumpTargets.Each(func(c Cell) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
