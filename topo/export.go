package topo

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TopologyDoc is the YAML form of a generated AS graph.
type TopologyDoc struct {
	RunID     string    `yaml:"run_id"`
	Seed      int64     `yaml:"seed"`
	Placement string    `yaml:"placement"`
	Bandwidth string    `yaml:"bandwidth"`
	NumNodes  int       `yaml:"num_nodes"`
	NumEdges  int       `yaml:"num_edges"`
	Nodes     []NodeDoc `yaml:"nodes"`
	Edges     []EdgeDoc `yaml:"edges,omitempty"`
}

// NodeDoc is one node of a TopologyDoc.
type NodeDoc struct {
	ID     int     `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Type   string  `yaml:"type"`
	ASID   int     `yaml:"as_id"`
	ASType string  `yaml:"as_type"`
}

// EdgeDoc is one edge of a TopologyDoc.
type EdgeDoc struct {
	ID        int     `yaml:"id"`
	From      int     `yaml:"from"`
	To        int     `yaml:"to"`
	Type      string  `yaml:"type"`
	Bandwidth float64 `yaml:"bandwidth"`
}

// NewTopologyDoc snapshots g, tagged with a's run identity.
func NewTopologyDoc(a *ASModel, g *Graph) TopologyDoc {
	doc := TopologyDoc{
		RunID:     a.RunID.String(),
		Seed:      int64(a.Key()),
		Placement: a.Placement.Strategy.String(),
		Bandwidth: a.Bandwidth.Dist.String(),
		NumNodes:  g.NumNodes(),
		NumEdges:  g.NumEdges(),
	}
	for _, n := range g.Nodes() {
		nd := NodeDoc{ID: n.ID, ASID: NoASID}
		if c := n.Conf; c != nil {
			nd.X, nd.Y, nd.Z = c.Coord.X, c.Coord.Y, c.Coord.Z
			nd.Type = c.NodeType.String()
			nd.ASID = c.ASID
			nd.ASType = c.ASType.String()
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{ID: e.ID, From: e.From, To: e.To}
		if e.Conf != nil {
			ed.Type = e.Conf.Type.String()
			ed.Bandwidth = e.Conf.Bandwidth
		}
		doc.Edges = append(doc.Edges, ed)
	}
	return doc
}

// WriteYAML encodes doc to w.
func WriteYAML(w io.Writer, doc TopologyDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding topology: %w", err)
	}
	return enc.Close()
}
