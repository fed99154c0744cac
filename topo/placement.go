package topo

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/netsim-lab/brite-as/topo/random"
)

// Placement selects a node placement strategy.
type Placement int

const (
	// PlaceRandom spreads nodes uniformly over the whole plane.
	PlaceRandom Placement = iota + 1
	// PlaceHeavyTailed fills each sub-square with a Pareto-sized cluster.
	PlaceHeavyTailed
)

func (p Placement) String() string {
	switch p {
	case PlaceRandom:
		return "random"
	case PlaceHeavyTailed:
		return "heavy-tailed"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}

// ParsePlacement maps "random" or "heavy-tailed" to its Placement.
func ParsePlacement(name string) (Placement, error) {
	switch name {
	case "random":
		return PlaceRandom, nil
	case "heavy-tailed":
		return PlaceHeavyTailed, nil
	default:
		return 0, &SelectorError{Selector: "placement", Value: name}
	}
}

// Cluster sizes are floor(Pareto(10e9, 1.2)) before clipping.
const (
	clusterParetoScale = 10e9
	clusterParetoShape = 1.2
)

// Default collision budget per node: attemptsPerCell times the cells in the
// sampling region, never below minAttempts.
const (
	attemptsPerCell = 16
	minAttempts     = 1024
)

// PlacementParams configures one placement run.
type PlacementParams struct {
	Strategy Placement
	N        int // requested node count
	Scale1   int // side of the whole plane
	Scale2   int // side of a sub-square, heavy-tailed only
	// MaxAttempts caps candidate draws per node. 0 selects the default budget.
	MaxAttempts int
}

// PlaceNodes populates g with nodes according to p and returns the number
// placed. PlaceRandom places exactly p.N nodes. PlaceHeavyTailed places at
// least p.N, since the last cluster is never trimmed, and records the actual
// count with g.SetNumNodes.
//
// Coordinates are drawn from s; every node occupies its own integer cell.
// On error the nodes placed so far stay in g and g.NumNodes counts them.
func PlaceNodes(g *Graph, p PlacementParams, s *random.Sampler, m *Metrics) (int, error) {
	if p.N < 0 {
		return 0, fmt.Errorf("placing nodes (%s): node count must not be negative, got %d", p.Strategy, p.N)
	}
	pl := &placer{
		graph:   g,
		sampler: s,
		grid:    NewOccupancyGrid(),
		metrics: m,
		params:  p,
	}

	var (
		placed int
		err    error
	)
	switch p.Strategy {
	case PlaceRandom:
		placed, err = pl.placeRandom()
	case PlaceHeavyTailed:
		placed, err = pl.placeHeavyTailed()
	default:
		return 0, &SelectorError{Selector: "placement", Value: p.Strategy.String()}
	}
	if err != nil {
		m.placementFailed(p.Strategy.String())
		return placed, fmt.Errorf("placing nodes (%s): %w", p.Strategy, err)
	}
	logrus.Debugf("placement %s: %d collisions over %d nodes", p.Strategy, pl.collisions, placed)
	return placed, nil
}

// placer holds the state of one placement run.
type placer struct {
	graph      *Graph
	sampler    *random.Sampler
	grid       *OccupancyGrid
	metrics    *Metrics
	params     PlacementParams
	collisions int
}

func (pl *placer) placeRandom() (int, error) {
	n, side := pl.params.N, pl.params.Scale1
	if side <= 0 {
		return 0, fmt.Errorf("scale1 must be positive, got %d", side)
	}
	capacity := pl.params.Capacity()
	if n > capacity {
		return 0, &RegionTooSmallError{Requested: n, Capacity: capacity}
	}
	logrus.Infof("random node placement: %d nodes on a %dx%d plane", n, side, side)

	for i := 0; i < n; i++ {
		x, y, err := pl.claim(0, 0, side, capacity, i)
		if err != nil {
			return i, err
		}
		conf := NewASNodeConf(x, y, 0)
		conf.SetASID(i)
		if err := pl.addNode(i, conf); err != nil {
			return i, err
		}
	}
	pl.graph.SetNumNodes(n)
	return n, nil
}

func (pl *placer) placeHeavyTailed() (int, error) {
	n, side, sub := pl.params.N, pl.params.Scale1, pl.params.Scale2
	if side <= 0 {
		return 0, fmt.Errorf("scale1 must be positive, got %d", side)
	}
	if sub <= 0 || sub > side {
		return 0, fmt.Errorf("scale2 must be in [1, %d], got %d", side, sub)
	}
	numSquares := side / sub
	squareCells := satMul(sub, sub)
	capacity := pl.params.Capacity()
	if n > capacity {
		return 0, &RegionTooSmallError{Requested: n, Capacity: capacity}
	}
	threshold, clip := clusterBounds(squareCells)

	logrus.Infof("heavy-tailed node placement: %d sub-squares of side %d", numSquares*numSquares, sub)

	placed := 0
	for placed < n {
		before := placed
	squares:
		for i := 0; i < numSquares; i++ {
			for j := 0; j < numSquares; j++ {
				num := pl.clusterSize(threshold, clip)
				x0, y0 := j*sub, i*sub
				for k := 0; k < num; k++ {
					x, y, err := pl.claim(x0, y0, sub, squareCells, placed)
					if err != nil {
						return placed, err
					}
					if err := pl.addNode(placed, NewASNodeConf(x, y, 0)); err != nil {
						return placed, err
					}
					placed++
				}
				if placed >= n {
					break squares
				}
			}
		}
		if placed == before {
			// Every cluster clipped to zero: another pass cannot make progress.
			return placed, &RegionTooSmallError{Requested: n, Placed: placed, Capacity: capacity}
		}
	}

	pl.graph.SetNumNodes(placed)
	logrus.Infof("number of nodes placed: %d (requested %d)", placed, n)
	return placed, nil
}

// Capacity returns the largest node count p can place. PlaceRandom holds one
// node per cell of the plane. PlaceHeavyTailed holds as many whole clusters per
// sub-square as fit, since a cluster is never trimmed and its claims stay inside
// its sub-square. Products saturate at math.MaxInt. Invalid scales give 0.
func (p PlacementParams) Capacity() int {
	if p.Scale1 <= 0 {
		return 0
	}
	switch p.Strategy {
	case PlaceRandom:
		return satMul(p.Scale1, p.Scale1)
	case PlaceHeavyTailed:
		if p.Scale2 <= 0 || p.Scale2 > p.Scale1 {
			return 0
		}
		squares := p.Scale1 / p.Scale2
		cells := satMul(p.Scale2, p.Scale2)
		perSquare := cells
		if threshold, clip := clusterBounds(cells); float64(threshold) < clusterParetoScale {
			// Every Pareto draw is at least the scale, so every cluster is clipped.
			perSquare = 0
			if clip > 0 {
				perSquare = clip * (cells / clip)
			}
		}
		return satMul(satMul(squares, squares), perSquare)
	default:
		return 0
	}
}

// clusterBounds returns the clip threshold 2*cells/4 and the clipped size
// 3*cells/4 for a sub-square of cells cells. The two multipliers differ.
func clusterBounds(cells int) (threshold, clip int) {
	return cells / 2, cells/4*3 + cells%4*3/4
}

// satMul multiplies two non-negative ints, saturating at math.MaxInt.
func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// clusterSize draws a heavy-tailed cluster size and clips it.
func (pl *placer) clusterSize(threshold, clip int) int {
	v := math.Floor(pl.sampler.Pareto(clusterParetoScale, clusterParetoShape))
	num := clip
	if v <= float64(threshold) {
		num = int(v)
	}
	pl.metrics.clusterDrawn(num)
	logrus.Tracef("cluster size %d (drawn %.0f)", num, v)
	return num
}

// claim draws candidates in [x0, x0+extent) x [y0, y0+extent) until one lands
// on a free cell. Candidates are floored before the claim. It gives up after
// the attempt budget for a region of cells cells.
func (pl *placer) claim(x0, y0, extent, cells, placed int) (float64, float64, error) {
	limit := pl.maxAttempts(cells)
	ext := float64(extent)
	for attempt := 0; attempt < limit; attempt++ {
		x := math.Floor(pl.sampler.UniformMax(ext) + float64(x0))
		y := math.Floor(pl.sampler.UniformMax(ext) + float64(y0))
		if pl.grid.TryClaim(x, y) {
			return x, y, nil
		}
		pl.collisions++
		pl.metrics.collision(pl.params.Strategy.String())
	}
	return 0, 0, &RegionTooSmallError{
		Requested: pl.params.N,
		Placed:    placed,
		Capacity:  cells,
		Attempts:  limit,
	}
}

func (pl *placer) maxAttempts(cells int) int {
	if pl.params.MaxAttempts > 0 {
		return pl.params.MaxAttempts
	}
	return max(minAttempts, satMul(attemptsPerCell, cells))
}

func (pl *placer) addNode(id int, conf *ASNodeConf) error {
	node := NewNode(id)
	node.SetNodeInfo(conf)
	if err := pl.graph.AddNode(node, id); err != nil {
		return err
	}
	pl.metrics.nodePlaced(pl.params.Strategy.String())
	return nil
}
