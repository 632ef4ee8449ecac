// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import "zikichombo.org/sound/freq"

// Context is the per-runtime shared state every node's Process call
// receives: the sample and control rates, and the Resources store backing
// delay lines and sample assets. A Context is constructed once, alongside
// its Runtime, and never mutated on the hot path.
type Context struct {
	SampleRate  freq.T
	ControlRate freq.T

	Resources *Resources
}

// NewContext returns a Context at sampleRate with a control rate of
// sampleRate / decimation, backed by a fresh, empty Resources store.
// decimation must be at least 1.
func NewContext(sampleRate freq.T, decimation int) *Context {
	if decimation < 1 {
		decimation = 1
	}
	return &Context{
		SampleRate:  sampleRate,
		ControlRate: freq.T(float64(sampleRate) / float64(decimation)),
		Resources:   NewResources(),
	}
}
