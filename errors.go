// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import "fmt"

// BadConnectionError is returned by Graph.AddEdge and Graph.RemoveEdge
// when an endpoint's node is missing, the endpoints' rate tags disagree,
// the sink port already has a wire, or (for RemoveEdge) the exact
// connection is not present.
type BadConnectionError struct {
	Reason string
}

func (e *BadConnectionError) Error() string {
	return fmt.Sprintf("legato: bad connection: %s", e.Reason)
}

// CycleDetectedError is returned by Graph.AddEdge when adding the edge
// would introduce a directed cycle. The edge is not retained: the graph
// is left exactly as it was before the call.
type CycleDetectedError struct{}

func (e *CycleDetectedError) Error() string {
	return "legato: cycle detected"
}

// NodeDoesNotExistError is returned by Runtime.SetSink when given a
// NodeKey the graph does not contain.
type NodeDoesNotExistError struct {
	Key NodeKey
}

func (e *NodeDoesNotExistError) Error() string {
	return fmt.Sprintf("legato: node %v does not exist", e.Key)
}
