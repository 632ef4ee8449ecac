// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import (
	"github.com/legato-audio/legato/legatolog"
)

// MaxPorts bounds the per-node port count on any single side. Scratch
// input pools are sized to this constant so Runtime.Step never allocates.
const MaxPorts = 32

type nodeOutputs struct {
	audio   Frame
	control Frame
}

// Runtime drives one block of processing at a time: for each node in
// topological order it gathers inputs from producer output buffers,
// invokes the node, stores the node's outputs, and returns the sink's
// audio output. A Runtime is built once, wired to its Graph and Context
// during construction, and then driven repeatedly from the audio thread
// or a render loop; after construction it never allocates.
type Runtime struct {
	graph *Graph
	ctx   *Context

	blockSize int

	sink    NodeKey
	hasSink bool

	outputs map[NodeKey]*nodeOutputs

	scratchAudio   Frame
	scratchControl Frame
}

// NewRuntime returns a Runtime of the given block size wired to graph and
// ctx. Nodes already present in graph have their output storage allocated
// immediately; nodes added afterward via Runtime.AddNode get theirs
// allocated at that time.
func NewRuntime(graph *Graph, ctx *Context, blockSize int) *Runtime {
	rt := &Runtime{
		graph:          graph,
		ctx:            ctx,
		blockSize:      blockSize,
		outputs:        make(map[NodeKey]*nodeOutputs),
		scratchAudio:   NewFrame(MaxPorts, blockSize),
		scratchControl: NewFrame(MaxPorts, blockSize),
	}
	for _, k := range graph.order {
		if graph.Exists(k) {
			rt.allocOutputs(k)
		}
	}
	return rt
}

func (rt *Runtime) allocOutputs(key NodeKey) {
	node, ok := rt.graph.Node(key)
	if !ok {
		return
	}
	rt.outputs[key] = &nodeOutputs{
		audio:   NewFrame(len(node.AudioOut()), rt.blockSize),
		control: NewFrame(len(node.ControlOut()), rt.blockSize),
	}
}

// AddNode adds node to the underlying graph and allocates its output
// storage.
func (rt *Runtime) AddNode(node Node) NodeKey {
	k := rt.graph.AddNode(node)
	rt.allocOutputs(k)
	return k
}

// RemoveNode removes the node addressed by key from the underlying graph
// and frees its output storage. If key is the current sink, the sink is
// cleared.
func (rt *Runtime) RemoveNode(key NodeKey) {
	rt.graph.RemoveNode(key)
	delete(rt.outputs, key)
	if rt.hasSink && rt.sink == key {
		rt.hasSink = false
	}
}

// AddEdge wires conn into the underlying graph.
func (rt *Runtime) AddEdge(conn Connection) (Connection, error) {
	return rt.graph.AddEdge(conn)
}

// RemoveEdge unwires conn from the underlying graph.
func (rt *Runtime) RemoveEdge(conn Connection) error {
	return rt.graph.RemoveEdge(conn)
}

// SetSink designates key as the node whose audio output Step returns. It
// fails with *NodeDoesNotExistError if key does not address a live node.
func (rt *Runtime) SetSink(key NodeKey) error {
	if !rt.graph.Exists(key) {
		return &NodeDoesNotExistError{Key: key}
	}
	rt.sink = key
	rt.hasSink = true
	legatolog.Debug("runtime: sink set", "key", key)
	return nil
}

// Context returns the runtime's audio context.
func (rt *Runtime) Context() *Context {
	return rt.ctx
}

// BlockSize returns the fixed block size every Frame this runtime touches
// is sized to.
func (rt *Runtime) BlockSize() int {
	return rt.blockSize
}

// Step advances the graph by one block and returns the sink's audio
// output frame. The returned Frame is owned by the runtime and is
// overwritten by the next call to Step; callers that need to retain a
// block must copy it.
//
// Step fails with *CycleDetectedError if the cached topological order is
// invalid and recomputation finds a cycle. A missing sink is a programmer
// error: Step returns nil in that case rather than producing a block.
func (rt *Runtime) Step() (Frame, error) {
	order, err := rt.graph.Order()
	if err != nil {
		return nil, err
	}
	if !rt.hasSink {
		return nil, nil
	}

	for _, key := range order {
		node, ok := rt.graph.Node(key)
		if !ok {
			continue
		}

		audioInCount := len(node.AudioIn())
		ctrlInCount := len(node.ControlIn())

		for i := 0; i < audioInCount; i++ {
			rt.scratchAudio[i].Zero()
		}
		for i := 0; i < ctrlInCount; i++ {
			rt.scratchControl[i].Zero()
		}

		for _, conn := range rt.graph.IncomingConnections(key) {
			src := rt.outputs[conn.Source.Node]
			if src == nil {
				continue
			}
			switch conn.Sink.Rate {
			case Audio:
				copy(rt.scratchAudio[conn.Sink.Port], src.audio[conn.Source.Port])
			case Control:
				copy(rt.scratchControl[conn.Sink.Port], src.control[conn.Source.Port])
			}
		}

		if tn, ok := node.(TickNode); ok {
			tn.TickCtrl()
		}

		out := rt.outputs[key]
		node.Process(rt.ctx,
			rt.scratchAudio[:audioInCount], out.audio,
			rt.scratchControl[:ctrlInCount], out.control,
		)
	}

	return rt.outputs[rt.sink].audio, nil
}
