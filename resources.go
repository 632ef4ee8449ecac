// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import (
	"sync/atomic"

	"github.com/legato-audio/legato/internal/slotarena"
)

// DelayLineKey is an opaque, generational handle into a Resources store's
// delay-line arena.
type DelayLineKey slotarena.Key

// SampleKey is an opaque, generational handle into a Resources store's
// sample-asset arena.
type SampleKey slotarena.Key

// delayLine is a per-channel ring buffer of fixed capacity. Each channel
// has an independent write cursor; reads at any fractional offset in
// [0, capacity-1] are linearly interpolated. Offset 0 returns the most
// recently written sample.
type delayLine struct {
	channels []Buffer
	capacity int
	writePos []int
}

func newDelayLine(channels, capacity int) *delayLine {
	d := &delayLine{
		channels: make([]Buffer, channels),
		capacity: capacity,
		writePos: make([]int, channels),
	}
	for c := range d.channels {
		d.channels[c] = NewBuffer(capacity)
	}
	return d
}

// writeBlock writes frame into the line, one channel at a time, wrapping
// at capacity. frame's channel count must equal the line's.
func (d *delayLine) writeBlock(frame Frame) {
	for c, buf := range frame {
		n := len(buf)
		line := d.channels[c]
		pos := d.writePos[c]

		firstLen := d.capacity - pos
		if firstLen > n {
			firstLen = n
		}
		copy(line[pos:pos+firstLen], buf[:firstLen])

		secondLen := n - firstLen
		if secondLen > 0 {
			copy(line[:secondLen], buf[firstLen:firstLen+secondLen])
		}
		d.writePos[c] = (pos + n) % d.capacity
	}
}

// readLinearInterp returns the sample on channel c at offset samples
// backward from the current write cursor, linearly interpolating between
// adjacent stored samples for fractional offsets. Offsets beyond capacity
// wrap.
func (d *delayLine) readLinearInterp(c int, offset float64) float32 {
	cap64 := float64(d.capacity)
	readPos := euclidMod(float64(d.writePos[c]-1)-offset, cap64)

	floor := int(readPos)
	if floor >= d.capacity {
		floor = d.capacity - 1
	}
	next := (floor + 1) % d.capacity

	buf := d.channels[c]
	return lerp(buf[floor], buf[next], float32(readPos-float64(floor)))
}

func (d *delayLine) Capacity() int {
	return d.capacity
}

func lerp(v0, v1, t float32) float32 {
	return (1-t)*v0 + t*v1
}

func euclidMod(x, m float64) float64 {
	r := x
	for r < 0 {
		r += m
	}
	for r >= m {
		r -= m
	}
	return r
}

// SampleTable is an immutable per-channel PCM table: one slice of samples
// per channel. It is installed atomically via a sampleSlot so readers
// never observe a torn update.
type SampleTable [][]float32

// Channels returns the table's channel count.
func (t SampleTable) Channels() int {
	return len(t)
}

// sampleSlot holds a hot-swappable, possibly-absent SampleTable. A nil
// loaded value means "not yet loaded" and yields silence.
type sampleSlot struct {
	table atomic.Pointer[SampleTable]
}

// Resources is the per-context store of shared objects addressable by
// stable keys: delay lines (mutable, shared between a writer and its
// readers) and sample assets (immutable, hot-swapped from outside the
// audio thread).
type Resources struct {
	delayLines slotarena.Arena[*delayLine]
	samples    slotarena.Arena[*sampleSlot]
}

// NewResources returns an empty Resources store.
func NewResources() *Resources {
	return &Resources{}
}

// NewDelayLine allocates a delay line with the given channel count and
// sample capacity and returns its key. Capacity should be at least one
// block size larger than the longest offset that will ever be read from
// it.
func (r *Resources) NewDelayLine(channels, capacity int) DelayLineKey {
	k := r.delayLines.Insert(newDelayLine(channels, capacity))
	return DelayLineKey(k)
}

// WriteDelayBlock writes frame into the delay line addressed by key. It
// is a no-op if key does not address a live delay line.
func (r *Resources) WriteDelayBlock(key DelayLineKey, frame Frame) {
	line, ok := r.delayLines.Get(slotarena.Key(key))
	if !ok {
		return
	}
	(*line).writeBlock(frame)
}

// ReadDelayLinearInterp reads channel c of the delay line addressed by
// key at the given fractional sample offset backward from its write
// cursor. It returns 0 if key does not address a live delay line.
func (r *Resources) ReadDelayLinearInterp(key DelayLineKey, c int, offset float64) float32 {
	line, ok := r.delayLines.Get(slotarena.Key(key))
	if !ok {
		return 0
	}
	return (*line).readLinearInterp(c, offset)
}

// DelayLineCapacity returns the capacity in samples of the delay line
// addressed by key, and whether key addresses a live delay line.
func (r *Resources) DelayLineCapacity(key DelayLineKey) (int, bool) {
	line, ok := r.delayLines.Get(slotarena.Key(key))
	if !ok {
		return 0, false
	}
	return (*line).Capacity(), true
}

// NewSampleSlot allocates an empty (not-yet-loaded) sample slot and
// returns its key.
func (r *Resources) NewSampleSlot() SampleKey {
	k := r.samples.Insert(&sampleSlot{})
	return SampleKey(k)
}

// StoreSample atomically installs table into the slot addressed by key,
// replacing whatever was there. It is the sample-loading backend's only
// write path into the core; it never blocks a concurrent reader.
func (r *Resources) StoreSample(key SampleKey, table *SampleTable) {
	slot, ok := r.samples.Get(slotarena.Key(key))
	if !ok {
		return
	}
	(*slot).table.Store(table)
}

// LoadSample returns a stable snapshot of the sample table addressed by
// key, or nil if the slot is empty or key does not address a live slot.
func (r *Resources) LoadSample(key SampleKey) *SampleTable {
	slot, ok := r.samples.Get(slotarena.Key(key))
	if !ok {
		return nil
	}
	return (*slot).table.Load()
}
