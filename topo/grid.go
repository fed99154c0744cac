package topo

// cell is an integer position on the placement plane.
type cell struct {
	x, y int
}

// OccupancyGrid records which integer cells already hold a node.
// It lives for one placement run.
type OccupancyGrid struct {
	claimed map[cell]struct{}
}

// NewOccupancyGrid returns an empty grid.
func NewOccupancyGrid() *OccupancyGrid {
	return &OccupancyGrid{claimed: make(map[cell]struct{})}
}

// TryClaim truncates (x, y) to a cell and claims it if free.
// It reports false, without side effects, when the cell is taken.
func (g *OccupancyGrid) TryClaim(x, y float64) bool {
	c := cell{x: int(x), y: int(y)}
	if _, taken := g.claimed[c]; taken {
		return false
	}
	g.claimed[c] = struct{}{}
	return true
}

// Occupied reports whether the cell containing (x, y) is claimed.
func (g *OccupancyGrid) Occupied(x, y float64) bool {
	_, taken := g.claimed[cell{x: int(x), y: int(y)}]
	return taken
}

// Len returns the number of claimed cells.
func (g *OccupancyGrid) Len() int { return len(g.claimed) }
