// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import (
	"github.com/legato-audio/legato/internal/slotarena"
	"github.com/legato-audio/legato/legatolog"
)

// NodeKey is an opaque, generational handle into a Graph. Handles are
// never reused after removal: once a node is removed, its key can never
// address whatever node later takes its slot.
type NodeKey slotarena.Key

// Endpoint identifies one side of a Connection: a node, a port index
// within that node's relevant port list, and the rate that port operates
// at.
type Endpoint struct {
	Node NodeKey
	Port int
	Rate Rate
}

// Connection is a directed wire from a source endpoint to a sink
// endpoint. Both endpoints must share the same Rate; the graph rejects
// connections that disagree.
type Connection struct {
	Source Endpoint
	Sink   Endpoint
}

// Graph owns a set of nodes keyed by NodeKey, the incoming/outgoing
// Connection sets for each, and a topological order cached across
// mutations. Construct one with NewGraph: the zero Graph has nil
// connection maps, and AddNode panics on it.
type Graph struct {
	nodes slotarena.Arena[Node]
	order []NodeKey // insertion order; append-only, used for deterministic Kahn tie-breaking

	in  map[NodeKey][]Connection
	out map[NodeKey][]Connection

	topo      []NodeKey
	topoValid bool
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		in:  make(map[NodeKey][]Connection),
		out: make(map[NodeKey][]Connection),
	}
}

// AddNode inserts node, allocates its (empty) incoming and outgoing
// connection sets, and invalidates the cached topological order.
func (g *Graph) AddNode(node Node) NodeKey {
	k := NodeKey(g.nodes.Insert(node))
	g.order = append(g.order, k)
	g.in[k] = nil
	g.out[k] = nil
	g.topoValid = false
	legatolog.Debug("graph: node added", "key", k)
	return k
}

// Exists reports whether key addresses a node currently in the graph.
func (g *Graph) Exists(key NodeKey) bool {
	return g.nodes.Contains(slotarena.Key(key))
}

// Node returns the node addressed by key, if any.
func (g *Graph) Node(key NodeKey) (Node, bool) {
	v, ok := g.nodes.Get(slotarena.Key(key))
	if !ok {
		return nil, false
	}
	return *v, true
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// RemoveNode erases the node addressed by key and every connection
// touching it on either side, then invalidates the cached topological
// order. Removing an unknown key is a no-op.
func (g *Graph) RemoveNode(key NodeKey) {
	if !g.Exists(key) {
		return
	}
	for _, c := range g.out[key] {
		g.in[c.Sink.Node] = removeConnection(g.in[c.Sink.Node], c)
	}
	for _, c := range g.in[key] {
		g.out[c.Source.Node] = removeConnection(g.out[c.Source.Node], c)
	}
	delete(g.in, key)
	delete(g.out, key)
	g.nodes.Remove(slotarena.Key(key))
	g.topoValid = false
	legatolog.Debug("graph: node removed", "key", key)
}

// IncomingConnections returns the ordered incoming connection set for
// key.
func (g *Graph) IncomingConnections(key NodeKey) []Connection {
	return g.in[key]
}

// OutgoingConnections returns the ordered outgoing connection set for
// key.
func (g *Graph) OutgoingConnections(key NodeKey) []Connection {
	return g.out[key]
}

// AddEdge inserts conn into both endpoints' connection sets and
// recomputes the topological order.
//
// It fails with *BadConnectionError if either endpoint's node is
// missing, the endpoints' rates disagree, or the sink port already has a
// connection. It fails with *CycleDetectedError if the edge would create
// a directed cycle — including a self-loop — in which case the edge is
// not retained and the graph is left exactly as it was before the call.
func (g *Graph) AddEdge(conn Connection) (Connection, error) {
	if !g.Exists(conn.Source.Node) {
		return Connection{}, &BadConnectionError{Reason: "source node does not exist"}
	}
	if !g.Exists(conn.Sink.Node) {
		return Connection{}, &BadConnectionError{Reason: "sink node does not exist"}
	}
	if conn.Source.Rate != conn.Sink.Rate {
		return Connection{}, &BadConnectionError{Reason: "source and sink rate tags disagree"}
	}
	for _, c := range g.in[conn.Sink.Node] {
		if c.Sink.Port == conn.Sink.Port && c.Sink.Rate == conn.Sink.Rate {
			return Connection{}, &BadConnectionError{Reason: "sink port already has an incoming connection"}
		}
	}

	g.in[conn.Sink.Node] = appendUniqueConnection(g.in[conn.Sink.Node], conn)
	g.out[conn.Source.Node] = appendUniqueConnection(g.out[conn.Source.Node], conn)

	if err := g.resort(); err != nil {
		g.in[conn.Sink.Node] = removeConnection(g.in[conn.Sink.Node], conn)
		g.out[conn.Source.Node] = removeConnection(g.out[conn.Source.Node], conn)
		// The graph minus this edge was acyclic before the call, so this
		// resort cannot itself fail; it only restores g.topo.
		_ = g.resort()
		legatolog.Debug("graph: edge rejected, cycle", "conn", conn)
		return Connection{}, &CycleDetectedError{}
	}
	legatolog.Debug("graph: edge added", "conn", conn)
	return conn, nil
}

// RemoveEdge erases the exact connection conn from both endpoints' sets
// and invalidates the cached topological order. It fails with
// *BadConnectionError if conn is not present.
func (g *Graph) RemoveEdge(conn Connection) error {
	outSet := g.out[conn.Source.Node]
	inSet := g.in[conn.Sink.Node]
	if !containsConnection(outSet, conn) || !containsConnection(inSet, conn) {
		return &BadConnectionError{Reason: "connection not present"}
	}
	g.out[conn.Source.Node] = removeConnection(outSet, conn)
	g.in[conn.Sink.Node] = removeConnection(inSet, conn)
	g.topoValid = false
	legatolog.Debug("graph: edge removed", "conn", conn)
	return nil
}

// Order returns the cached topological order, recomputing it first if a
// mutation invalidated it. It fails with *CycleDetectedError if the
// graph (which should never happen via AddEdge alone, but may be
// observed defensively) is not acyclic.
func (g *Graph) Order() ([]NodeKey, error) {
	if !g.topoValid {
		if err := g.resort(); err != nil {
			return nil, err
		}
	}
	return g.topo, nil
}

// Invalidate forces the next Order call to recompute the topological
// order, even if no mutation has happened since.
func (g *Graph) Invalidate() {
	g.topoValid = false
}

// resort runs Kahn's algorithm with deterministic FIFO tie-breaking by
// node insertion order.
func (g *Graph) resort() error {
	n := g.nodes.Len()
	indeg := make(map[NodeKey]int, n)
	for _, k := range g.order {
		if !g.Exists(k) {
			continue
		}
		indeg[k] = len(g.in[k])
	}

	queue := make([]NodeKey, 0, n)
	for _, k := range g.order {
		if !g.Exists(k) {
			continue
		}
		if indeg[k] == 0 {
			queue = append(queue, k)
		}
	}

	sorted := make([]NodeKey, 0, n)
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		sorted = append(sorted, k)
		for _, c := range g.out[k] {
			s := c.Sink.Node
			indeg[s]--
			if indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}

	if len(sorted) != n {
		return &CycleDetectedError{}
	}
	g.topo = sorted
	g.topoValid = true
	return nil
}

func appendUniqueConnection(cs []Connection, c Connection) []Connection {
	if containsConnection(cs, c) {
		return cs
	}
	return append(cs, c)
}

func containsConnection(cs []Connection, c Connection) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func removeConnection(cs []Connection, c Connection) []Connection {
	for i, x := range cs {
		if x == c {
			return append(cs[:i], cs[i+1:]...)
		}
	}
	return cs
}
