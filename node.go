// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

// Node is the uniform processing contract every graph participant
// implements: a port list on each of four sides (any side may be empty),
// and a Process method that advances internal state by exactly one
// block.
//
// Implementations must never allocate, lock, or perform blocking I/O
// inside Process, and must not retain references to ai or ci beyond the
// call. Process must write every sample of every output buffer it owns;
// Runtime does not pre-zero a node's own output storage.
type Node interface {
	// AudioIn, AudioOut, ControlIn, and ControlOut return this node's
	// port descriptors on that side, in dense zero-based index order.
	// Any of the four may return an empty (or nil) slice.
	AudioIn() []Port
	AudioOut() []Port
	ControlIn() []Port
	ControlOut() []Port

	// Process advances the node by one block. ai and ci have lengths
	// equal to len(AudioIn()) and len(ControlIn()); ao and co have
	// lengths equal to len(AudioOut()) and len(ControlOut()).
	Process(ctx *Context, ai, ao, ci, co Frame)
}

// TickNode is implemented by nodes that need to advance slow
// control-rate state once per block, before Process runs.
type TickNode interface {
	TickCtrl()
}
