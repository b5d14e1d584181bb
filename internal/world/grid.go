package world

import "github.com/gravitas-games/pipeworks/pkg/grid3"

// Grid tracks which cells of a bounded lattice hold a segment. It is the
// collision authority for growth: a cell can take a segment only while it
// is inside the bounds and still free.
type Grid struct {
	bounds   grid3.Bounds
	occupied map[grid3.Pos]struct{}
	inside   int // occupied cells that lie inside the bounds
}

// NewGrid creates an empty grid with the given bounds
func NewGrid(bounds grid3.Bounds) *Grid {
	return &Grid{
		bounds:   bounds,
		occupied: make(map[grid3.Pos]struct{}),
	}
}

// Bounds returns the grid extents
func (g *Grid) Bounds() grid3.Bounds { return g.bounds }

// InBounds reports whether p lies inside the grid
func (g *Grid) InBounds(p grid3.Pos) bool { return g.bounds.Contains(p) }

// Occupied reports whether p already holds a segment
func (g *Grid) Occupied(p grid3.Pos) bool {
	_, ok := g.occupied[p]
	return ok
}

// Valid reports whether p is inside the bounds and unoccupied
func (g *Grid) Valid(p grid3.Pos) bool { return g.InBounds(p) && !g.Occupied(p) }

// Mark records p as occupied. Marking the same cell twice is a no-op.
// Debug placements may mark cells outside the bounds; those never count
// toward saturation.
func (g *Grid) Mark(p grid3.Pos) {
	if _, ok := g.occupied[p]; ok {
		return
	}
	g.occupied[p] = struct{}{}
	if g.InBounds(p) {
		g.inside++
	}
}

// Count returns the number of occupied cells
func (g *Grid) Count() int { return len(g.occupied) }

// Full reports whether every cell inside the bounds is occupied
func (g *Grid) Full() bool { return uint64(g.inside) >= g.bounds.Volume() }
