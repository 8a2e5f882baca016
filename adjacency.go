package mcg

import (
	"math"
)

type adjacencyNode struct {
	pt        Vector
	neighbors []*adjacencyNode // outgoing edges in insertion order
	predcount int              // incoming edges
}

func (n *adjacencyNode) addNode(other *adjacencyNode) {
	n.neighbors = append(n.neighbors, other)
	other.predcount++
}

func (n *adjacencyNode) removeNode(other *adjacencyNode) *adjacencyNode {
	for i, m := range n.neighbors {
		if m == other {
			n.neighbors = append(n.neighbors[:i], n.neighbors[i+1:]...)
			other.predcount--
			return other
		}
	}
	return nil
}

// nextNode consumes and returns the edge to follow when arriving from prev, or nil at the end of
// a chain.
func (n *adjacencyNode) nextNode(prev *adjacencyNode) *adjacencyNode {
	if len(n.neighbors) == 0 {
		return nil
	}
	next := n.neighbors[0]
	if 1 < len(n.neighbors) {
		next = n.rightmostNode(prev)
	}
	return n.removeNode(next)
}

// rightmostNode returns the neighbor making the sharpest clockwise turn relative to the incoming
// direction prev->n. Ties go to the later neighbor. Without an incoming edge the first inserted
// neighbor is returned.
func (n *adjacencyNode) rightmostNode(prev *adjacencyNode) *adjacencyNode {
	if prev == nil {
		return n.neighbors[0]
	}

	inDir := n.pt.Sub(prev.pt)
	var rightmost *adjacencyNode
	angleMax := -math.Pi
	for _, m := range n.neighbors {
		angle := inDir.AngleTo(m.pt.Sub(n.pt))
		if Left(prev.pt, n.pt, m.pt) {
			angle = -angle
		}
		if angleMax <= angle {
			angleMax = angle
			rightmost = m
		}
	}
	return rightmost
}

// AdjacencyMap is a directed graph over points, used to reassemble loops from unordered segments.
// Reading loops consumes the edges.
type AdjacencyMap struct {
	ctx   *Context
	nodes map[Vector]*adjacencyNode
	order []*adjacencyNode // nodes in insertion order
}

// NewAdjacencyMap returns an empty map.
func NewAdjacencyMap(ctx *Context) *AdjacencyMap {
	return &AdjacencyMap{
		ctx:   ctx,
		nodes: map[Vector]*adjacencyNode{},
	}
}

func (m *AdjacencyMap) node(pt Vector) *adjacencyNode {
	n, ok := m.nodes[pt]
	if !ok {
		n = &adjacencyNode{pt: pt}
		m.nodes[pt] = n
		m.order = append(m.order, n)
	}
	return n
}

// AddSegment adds the directed edge s.P1->s.P2.
func (m *AdjacencyMap) AddSegment(s Segment) {
	m.AddPointPair(s.P1, s.P2)
}

// AddPointPair adds the directed edge p1->p2.
func (m *AdjacencyMap) AddPointPair(p1, p2 Vector) {
	n1 := m.node(p1)
	n2 := m.node(p2)
	n1.addNode(n2)
}

// Len returns the number of points.
func (m *AdjacencyMap) Len() int {
	return len(m.order)
}

// Edges returns the number of edges not yet consumed.
func (m *AdjacencyMap) Edges() int {
	n := 0
	for _, node := range m.order {
		n += len(node.neighbors)
	}
	return n
}

// find returns the first node in insertion order satisfying sel.
func (m *AdjacencyMap) find(sel func(*adjacencyNode) bool) *adjacencyNode {
	for _, n := range m.order {
		if sel(n) {
			return n
		}
	}
	return nil
}

func noPredecessors(n *adjacencyNode) bool { return n.predcount == 0 && 0 < len(n.neighbors) }
func oneNeighbor(n *adjacencyNode) bool    { return len(n.neighbors) == 1 }
func hasNeighbors(n *adjacencyNode) bool   { return 0 < len(n.neighbors) }

// Loop consumes and returns one loop of points. If allowOpen is set, open chains are taken first
// (starting at a point without incoming edges) and returned as well; otherwise, or once no open
// chain start remains, only closed loops are returned. It returns false when no loop remains.
func (m *AdjacencyMap) Loop(allowOpen bool) ([]Vector, bool) {
	for {
		var start *adjacencyNode
		if allowOpen {
			start = m.find(noPredecessors)
		}
		if start == nil {
			if start = m.find(oneNeighbor); start == nil {
				start = m.find(hasNeighbors)
			}
			allowOpen = false
		}
		if start == nil {
			return nil, false
		}

		var loop []Vector
		var prev *adjacencyNode
		cur := start
		for {
			loop = append(loop, cur.pt)
			next := cur.nextNode(prev)
			if next == nil {
				break
			}
			prev, cur = cur, next
			if cur == start {
				break
			}
		}
		if cur == start || allowOpen {
			return loop, true
		}
	}
}

// Loops consumes the map and returns all loops, see Loop.
func (m *AdjacencyMap) Loops(allowOpen bool) [][]Vector {
	var loops [][]Vector
	for {
		loop, ok := m.Loop(allowOpen)
		if !ok {
			return loops
		}
		loops = append(loops, loop)
	}
}
