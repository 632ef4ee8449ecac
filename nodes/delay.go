package nodes

import (
	"time"

	"github.com/legato-audio/legato"
)

// DelayWrite writes its audio input into a shared delay line once per
// block. It has no audio outputs; DelayRead nodes elsewhere in the graph
// consume what it writes.
type DelayWrite struct {
	key legato.DelayLineKey
	ai  []legato.Port
}

// NewDelayWrite returns a DelayWrite into the delay line addressed by
// key, accepting channels audio input channels.
func NewDelayWrite(key legato.DelayLineKey, channels int) *DelayWrite {
	return &DelayWrite{key: key, ai: audioInputs(channels)}
}

func (w *DelayWrite) AudioIn() []legato.Port    { return w.ai }
func (w *DelayWrite) AudioOut() []legato.Port   { return nil }
func (w *DelayWrite) ControlIn() []legato.Port  { return nil }
func (w *DelayWrite) ControlOut() []legato.Port { return nil }

func (w *DelayWrite) Process(ctx *legato.Context, ai, _, _, _ legato.Frame) {
	ctx.Resources.WriteDelayBlock(w.key, ai)
}

// DelayRead reads a shared delay line at a per-channel fixed duration
// offset, with the intra-block `+(N-n-1)` compensation that aligns each
// sample's read with the logical write position it would have had if the
// writer committed sample-by-sample instead of as a whole block.
type DelayRead struct {
	key       legato.DelayLineKey
	offsets   []time.Duration
	blockSize int

	ao []legato.Port
}

// NewDelayRead returns a DelayRead from the delay line addressed by key,
// one output channel per entry in offsets.
func NewDelayRead(key legato.DelayLineKey, offsets []time.Duration, blockSize int) *DelayRead {
	return &DelayRead{
		key:       key,
		offsets:   offsets,
		blockSize: blockSize,
		ao:        audioOutputs(len(offsets)),
	}
}

func (r *DelayRead) AudioIn() []legato.Port    { return nil }
func (r *DelayRead) AudioOut() []legato.Port   { return r.ao }
func (r *DelayRead) ControlIn() []legato.Port  { return nil }
func (r *DelayRead) ControlOut() []legato.Port { return nil }

func (r *DelayRead) Process(ctx *legato.Context, _, ao, _, _ legato.Frame) {
	fs := float64(ctx.SampleRate)
	n := r.blockSize

	for c, out := range ao {
		offsetSamples := r.offsets[c].Seconds() * fs
		for i := 0; i < n; i++ {
			offset := offsetSamples + float64(n-i-1)
			out[i] = ctx.Resources.ReadDelayLinearInterp(r.key, c, offset)
		}
	}
}
