// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import "math"

// lowpassKernel returns a windowed-sinc FIR lowpass kernel with the given
// odd tap count and normalized cutoff (fraction of the Nyquist rate the
// kernel operates at, in (0, 1)).
func lowpassKernel(taps int, cutoff float64) []float32 {
	if taps%2 == 0 {
		taps++
	}
	k := make([]float32, taps)
	mid := taps / 2
	sum := 0.0
	for i := 0; i < taps; i++ {
		n := i - mid
		var h float64
		if n == 0 {
			h = cutoff
		} else {
			h = math.Sin(math.Pi*cutoff*float64(n)) / (math.Pi * float64(n))
		}
		// Hamming window.
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(taps-1))
		h *= w
		k[i] = float32(h)
		sum += h
	}
	for i := range k {
		k[i] = float32(float64(k[i]) / sum)
	}
	return k
}

const oversampleFIRTaps = 31

// inletNode is an internal passthrough source: it holds a frame set by
// its owner before the inner runtime steps, and emits it verbatim. It
// carries no ports of its own beyond the audio-out side.
type inletNode struct {
	out  []Port
	hold Frame
}

func newInletNode(channels int) *inletNode {
	n := &inletNode{out: make([]Port, channels)}
	for c := range n.out {
		n.out[c] = Port{Name: "in", Index: c, Rate: Audio}
	}
	return n
}

func (n *inletNode) AudioIn() []Port      { return nil }
func (n *inletNode) AudioOut() []Port     { return n.out }
func (n *inletNode) ControlIn() []Port    { return nil }
func (n *inletNode) ControlOut() []Port   { return nil }
func (n *inletNode) Process(_ *Context, _, ao, _, _ Frame) {
	for c, buf := range n.hold {
		copy(ao[c], buf)
	}
}

// Oversample wraps an inner Runtime operating at twice the outer block
// size and sample rate. It upsamples its audio input by zero-stuffing and
// low-pass filtering, steps the inner runtime, then low-pass filters and
// decimates the inner runtime's sink output back down to the outer rate.
// The same kernel is used on both paths; each channel and each direction
// keeps its own ring-buffer state across blocks.
type Oversample struct {
	inner     *Runtime
	inletKey  NodeKey
	channels  int
	blockSize int // outer N

	kernel    []float32
	upState   []*RingBuffer
	downState []*RingBuffer

	ports []Port
	upBuf Frame // length 2N, scratch
}

// NewOversample builds a 2x oversample adapter around an inner graph. It
// wraps innerGraph in a new inner Runtime of twice outerBlockSize, adds an
// inlet node with channels audio outputs to it, and returns that inlet's
// key. Callers connect the inlet key as the source of whatever processing
// the inner graph performs and set the inner runtime's sink, both through
// InnerRuntime, before the first Process call.
func NewOversample(innerGraph *Graph, innerCtx *Context, channels, outerBlockSize int) (*Oversample, NodeKey) {
	o := &Oversample{
		channels:  channels,
		blockSize: outerBlockSize,
		kernel:    lowpassKernel(oversampleFIRTaps, 0.5),
	}
	o.inner = NewRuntime(innerGraph, innerCtx, outerBlockSize*2)
	inlet := newInletNode(channels)
	o.inletKey = o.inner.AddNode(inlet)

	o.upState = make([]*RingBuffer, channels)
	o.downState = make([]*RingBuffer, channels)
	for c := 0; c < channels; c++ {
		o.upState[c] = NewRingBuffer(oversampleFIRTaps)
		o.downState[c] = NewRingBuffer(oversampleFIRTaps)
	}

	o.ports = make([]Port, channels)
	for c := range o.ports {
		o.ports[c] = Port{Name: "audio", Index: c, Rate: Audio}
	}
	o.upBuf = NewFrame(channels, outerBlockSize*2)

	return o, o.inletKey
}

// InnerRuntime exposes the wrapped runtime so a caller can add the nodes
// and connections that process the inlet before sinking them.
func (o *Oversample) InnerRuntime() *Runtime {
	return o.inner
}

func (o *Oversample) AudioIn() []Port    { return o.ports }
func (o *Oversample) AudioOut() []Port   { return o.ports }
func (o *Oversample) ControlIn() []Port  { return nil }
func (o *Oversample) ControlOut() []Port { return nil }

// Process implements the adapter algorithm: upsample, step the inner
// runtime, downsample.
func (o *Oversample) Process(_ *Context, ai, ao, _, _ Frame) {
	inlet, _ := o.inner.graph.Node(o.inletKey)
	in := inlet.(*inletNode)
	in.hold = o.upBuf

	for c := 0; c < o.channels; c++ {
		ring := o.upState[c]
		src := ai[c]
		dst := o.upBuf[c]
		for n := 0; n < o.blockSize; n++ {
			// zero-stuff: even samples carry the input, odd samples are zero
			ring.Push(src[n])
			dst[2*n] = firApply(o.kernel, ring) * 2
			ring.Push(0)
			dst[2*n+1] = firApply(o.kernel, ring) * 2
		}
	}

	innerOut, err := o.inner.Step()
	if err != nil || innerOut == nil {
		ao.Zero()
		return
	}

	for c := 0; c < o.channels; c++ {
		ring := o.downState[c]
		src := innerOut[c]
		dst := ao[c]
		for n := 0; n < o.blockSize; n++ {
			ring.Push(src[2*n])
			_ = firApply(o.kernel, ring)
			ring.Push(src[2*n+1])
			dst[n] = firApply(o.kernel, ring)
		}
	}
}

func firApply(kernel []float32, ring *RingBuffer) float32 {
	var y float32
	for k, h := range kernel {
		y += h * ring.Get(k)
	}
	return y
}
