package topo

import "fmt"

// NodeType tags the topology level a node belongs to.
type NodeType int

const (
	NodeAS NodeType = iota + 1
	NodeRouter
)

func (t NodeType) String() string {
	switch t {
	case NodeAS:
		return "as"
	case NodeRouter:
		return "router"
	default:
		return fmt.Sprintf("node-type(%d)", int(t))
	}
}

// ASType classifies an AS node. Placement leaves every node ASNone; later
// stages of multi-level composition assign the rest.
type ASType int

const (
	ASNone ASType = iota
	ASLeaf
	ASStub
	ASBorder
	ASTransit
)

func (t ASType) String() string {
	switch t {
	case ASNone:
		return "none"
	case ASLeaf:
		return "leaf"
	case ASStub:
		return "stub"
	case ASBorder:
		return "border"
	case ASTransit:
		return "transit"
	default:
		return fmt.Sprintf("as-type(%d)", int(t))
	}
}

// EdgeType tags the topology level an edge belongs to. The zero value is
// not a valid level.
type EdgeType int

const (
	EdgeAS EdgeType = iota + 1
	EdgeRouter
)

func (t EdgeType) String() string {
	switch t {
	case EdgeAS:
		return "as"
	case EdgeRouter:
		return "router"
	default:
		return fmt.Sprintf("edge-type(%d)", int(t))
	}
}

// NoASID marks a node whose AS id was never assigned.
const NoASID = -1

// Coord is a point on the placement plane. Z is reserved and always 0.
type Coord struct {
	X, Y, Z float64
}

// ASNodeConf is the configuration record attached to an AS-level node.
type ASNodeConf struct {
	Coord    Coord
	NodeType NodeType
	ASID     int
	ASType   ASType
	Topology *Graph // router-level topology inside this AS; nil until composed
}

// NewASNodeConf returns an AS node record at the given position with no AS id,
// no AS type and no topology.
func NewASNodeConf(x, y, z float64) *ASNodeConf {
	return &ASNodeConf{
		Coord:    Coord{X: x, Y: y, Z: z},
		NodeType: NodeAS,
		ASID:     NoASID,
		ASType:   ASNone,
	}
}

func (c *ASNodeConf) SetCoord(x, y, z float64) { c.Coord = Coord{X: x, Y: y, Z: z} }
func (c *ASNodeConf) SetNodeType(t NodeType)   { c.NodeType = t }
func (c *ASNodeConf) SetASID(id int)           { c.ASID = id }
func (c *ASNodeConf) SetASType(t ASType)       { c.ASType = t }
func (c *ASNodeConf) SetTopology(g *Graph)     { c.Topology = g }

// Node is a graph vertex.
type Node struct {
	ID   int
	Conf *ASNodeConf
}

// NewNode returns a node with no configuration attached.
func NewNode(id int) *Node {
	return &Node{ID: id}
}

// SetNodeInfo attaches the configuration record.
func (n *Node) SetNodeInfo(c *ASNodeConf) { n.Conf = c }

// EdgeConf is the configuration record attached to an edge.
type EdgeConf struct {
	Type      EdgeType
	Bandwidth float64
}

// SetBW stores a bandwidth value as-is.
func (c *EdgeConf) SetBW(bw float64) { c.Bandwidth = bw }

// Edge connects two nodes. Endpoints are node ids owned by the Graph.
type Edge struct {
	ID   int
	From int
	To   int
	Conf *EdgeConf
}

// Graph holds nodes indexed by id and edges in insertion order.
//
// Thread-safety: NOT thread-safe. One generation run owns one Graph.
type Graph struct {
	nodes    []*Node
	edges    []*Edge
	numNodes int
}

// NewGraph creates an empty graph with room for capacity nodes.
func NewGraph(capacity int) *Graph {
	if capacity < 0 {
		capacity = 0
	}
	return &Graph{nodes: make([]*Node, 0, capacity)}
}

// AddNode stores n under index idx and bumps the node count.
// An index may be used only once.
func (g *Graph) AddNode(n *Node, idx int) error {
	if idx < 0 {
		return fmt.Errorf("topo: negative node index %d", idx)
	}
	if idx < len(g.nodes) && g.nodes[idx] != nil {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, idx)
	}
	for len(g.nodes) <= idx {
		g.nodes = append(g.nodes, nil)
	}
	n.ID = idx
	g.nodes[idx] = n
	g.numNodes++
	return nil
}

// Node returns the node stored under id.
func (g *Graph) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(g.nodes) || g.nodes[id] == nil {
		return nil, false
	}
	return g.nodes[id], true
}

// Nodes returns the stored nodes in ascending id order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// NumNodes returns the recorded node count.
func (g *Graph) NumNodes() int { return g.numNodes }

// SetNumNodes overwrites the recorded node count.
func (g *Graph) SetNumNodes(n int) { g.numNodes = n }

// AddEdge connects two existing nodes with an edge of the given level.
// Edge ids are assigned sequentially.
func (g *Graph) AddEdge(from, to int, t EdgeType) (*Edge, error) {
	if _, ok := g.Node(from); !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.Node(to); !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	e := &Edge{
		ID:   len(g.edges),
		From: from,
		To:   to,
		Conf: &EdgeConf{Type: t},
	}
	g.edges = append(g.edges, e)
	return e, nil
}

// Edges returns the edges in insertion order. The slice is shared.
func (g *Graph) Edges() []*Edge { return g.edges }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }
