// Package pathfind searches four-directional routes over a tile grid.
package pathfind

import (
	"container/heap"

	"github.com/milk9111/agilearcher/tilemap"
)

// FindPath returns the cells from start to target, excluding start and
// including target. The route is empty when start == target or when no path
// through open cells exists.
func FindPath(g *tilemap.Grid, start, target tilemap.Cell) []tilemap.Cell {
	if g == nil {
		return nil
	}
	return FindPathFunc(g.Width(), g.Height(), g.IsOpen, start, target)
}

// FindPathFunc runs A* on a width x height grid where passable decides which
// in-bounds cells may be entered. Steps cost 1 and the heuristic is the
// Manhattan distance, so the first time the target is popped its route is
// shortest. Equal priorities pop in push order.
func FindPathFunc(width, height int, passable func(tilemap.Cell) bool, start, target tilemap.Cell) []tilemap.Cell {
	if width <= 0 || height <= 0 || passable == nil {
		return nil
	}
	inBounds := func(c tilemap.Cell) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
	}
	if !inBounds(start) || !inBounds(target) || start == target {
		return nil
	}
	if !passable(start) || !passable(target) {
		return nil
	}

	startIdx := start.Y*width + start.X
	targetIdx := target.Y*width + target.X

	cameFrom := make([]int, width*height)
	gScore := make([]int, width*height)
	for i := range gScore {
		cameFrom[i] = -1
		gScore[i] = -1
	}
	gScore[startIdx] = 0

	open := &openSet{}
	seq := 0
	heap.Push(open, &openItem{cell: start, g: 0, f: manhattan(start, target), seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		curIdx := current.cell.Y*width + current.cell.X
		if current.g != gScore[curIdx] {
			// a cheaper entry for this cell was pushed after this one
			continue
		}
		if curIdx == targetIdx {
			return reconstructPath(cameFrom, width, startIdx, targetIdx)
		}

		for _, n := range neighbors(current.cell) {
			if !inBounds(n) || !passable(n) {
				continue
			}
			idx := n.Y*width + n.X
			tentative := current.g + 1
			if gScore[idx] >= 0 && tentative >= gScore[idx] {
				continue
			}
			cameFrom[idx] = curIdx
			gScore[idx] = tentative
			seq++
			heap.Push(open, &openItem{cell: n, g: tentative, f: tentative + manhattan(n, target), seq: seq})
		}
	}

	return nil
}

// reconstructPath walks predecessor links back from the target and reverses
// them. The start cell itself is not part of the route.
func reconstructPath(cameFrom []int, width, startIdx, targetIdx int) []tilemap.Cell {
	path := make([]tilemap.Cell, 0, 16)
	for cur := targetIdx; cur != startIdx; cur = cameFrom[cur] {
		if cur < 0 {
			return nil
		}
		path = append(path, tilemap.Cell{X: cur % width, Y: cur / width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func neighbors(c tilemap.Cell) [4]tilemap.Cell {
	return [4]tilemap.Cell{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	}
}

func manhattan(a, b tilemap.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type openItem struct {
	cell tilemap.Cell
	g    int
	f    int
	seq  int
}

type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(*openItem)) }
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
