// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

// RingBuffer is a fixed-length mono ring with a write cursor. It is the
// single-channel state used by per-filter internals (FIR taps, resampler
// history) and is distinct from the multi-channel delayLine: a RingBuffer
// never addresses a fractional offset and never interpolates.
type RingBuffer struct {
	data []float32
	pos  int
}

// NewRingBuffer returns a RingBuffer of the given capacity, zero-filled.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float32, capacity)}
}

// Push writes sample at the cursor and advances it, wrapping at capacity.
func (r *RingBuffer) Push(sample float32) {
	r.data[r.pos] = sample
	r.pos++
	if r.pos == len(r.data) {
		r.pos = 0
	}
}

// Get returns the kth most-recent sample; k=0 is the value of the last Push.
func (r *RingBuffer) Get(k int) float32 {
	n := len(r.data)
	idx := r.pos - 1 - k
	idx %= n
	if idx < 0 {
		idx += n
	}
	return r.data[idx]
}

// Len returns the ring's fixed capacity.
func (r *RingBuffer) Len() int {
	return len(r.data)
}

// Clear overwrites the ring with silence without moving the cursor.
func (r *RingBuffer) Clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}
