package topo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Connector adds edges between placed nodes. Connectivity models live outside
// this package; the AS model only fixes node positions and edge bandwidths.
type Connector interface {
	Connect(g *Graph) error
}

// EdgeList is a Connector that adds a fixed list of AS edges.
type EdgeList []EdgeSpec

// Connect adds every listed edge as an AS-level edge, in list order.
func (l EdgeList) Connect(g *Graph) error {
	for i, e := range l {
		if _, err := g.AddEdge(e.From, e.To, EdgeAS); err != nil {
			return fmt.Errorf("edge[%d] %d-%d: %w", i, e.From, e.To, err)
		}
	}
	return nil
}

// ASModel is the AS-level topology model: it places nodes and assigns
// bandwidths. Placement and bandwidth draw from separate seeded streams.
//
// Thread-safety: NOT thread-safe. Use one ASModel per concurrent run.
type ASModel struct {
	RunID     uuid.UUID
	Placement PlacementParams
	Bandwidth BandwidthParams

	rng     *PartitionedRNG
	metrics *Metrics
}

// NewASModel validates cfg and builds a model seeded from cfg.Seed.
// m may be nil.
func NewASModel(cfg *ModelConfig, m *Metrics) (*ASModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model config: %w", err)
	}
	place, bw, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return &ASModel{
		RunID:     uuid.New(),
		Placement: place,
		Bandwidth: bw,
		rng:       NewPartitionedRNG(NewGenerationKey(cfg.Seed)),
		metrics:   m,
	}, nil
}

// Key returns the generation key the model was seeded with.
func (a *ASModel) Key() GenerationKey { return a.rng.Key() }

// PlaceNodes runs the configured placement strategy on g.
func (a *ASModel) PlaceNodes(g *Graph) (int, error) {
	return PlaceNodes(g, a.Placement, a.rng.ForSubsystem(SubsystemPlacement), a.metrics)
}

// AssignBandwidth assigns a bandwidth to every AS edge of g.
func (a *ASModel) AssignBandwidth(g *Graph) error {
	return AssignBandwidth(g, a.Bandwidth, a.rng.ForSubsystem(SubsystemBandwidth), a.metrics)
}

// Generate runs one generation: place nodes on a fresh graph, let c add edges
// (c may be nil), then assign bandwidths.
func (a *ASModel) Generate(c Connector) (*Graph, error) {
	logrus.Infof("generation run %s: seed=%d placement=%s n=%d bandwidth=%s",
		a.RunID, a.Key(), a.Placement.Strategy, a.Placement.N, a.Bandwidth.Dist)

	g := NewGraph(a.Placement.N)
	if _, err := a.PlaceNodes(g); err != nil {
		return nil, err
	}
	if c != nil {
		if err := c.Connect(g); err != nil {
			return nil, fmt.Errorf("connecting nodes: %w", err)
		}
	}
	if err := a.AssignBandwidth(g); err != nil {
		return nil, fmt.Errorf("assigning bandwidth: %w", err)
	}
	return g, nil
}
