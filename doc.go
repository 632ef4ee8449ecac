// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package legato implements a block-rate, DAG-based audio processing
// engine.
//
// A user assembles a directed acyclic graph of processing nodes
// (oscillators, filters, samplers, delay writers/readers, mixers,
// sub-graphs) connected by typed ports; a Runtime evaluates the graph in
// topological order once per audio block and returns a multi-channel
// output block suitable for a real-time sound device or file render.
//
// Graph Tier
//
// The graph tier (Graph, NodeKey, Connection) maintains nodes and the
// edges between them, keeps a cached topological order, and rejects
// connections that would introduce a cycle or mix audio- and
// control-rate ports.
//
// Runtime Tier
//
// The runtime tier (Runtime, Context, Resources) drives one block of
// processing: for each node in topological order it gathers inputs from
// producer output buffers, invokes the node, stores its outputs, and
// returns the designated sink's output block. Resources holds the state
// shared across nodes within one Context: delay lines and hot-swappable
// sample assets.
//
// Node Tier
//
// The node tier (Node, Port) is a uniform contract: a node declares its
// audio and control port lists on each of four sides, and processes
// exactly one block per call without allocating. Package
// github.com/legato-audio/legato/nodes implements the illustrative
// built-in inventory (oscillators, filters, samplers, delay, mixer) atop
// this contract.
package legato /* import "github.com/legato-audio/legato" */
