package nodes

import "github.com/legato-audio/legato"

// FIR is a per-channel time-domain convolution filter: each channel holds
// its own ring buffer of length len(kernel). This is an O(N*K) operation
// suitable for short kernels only; large kernels belong in a
// frequency-domain implementation, not attempted here.
type FIR struct {
	kernel []float32
	rings  []*legato.RingBuffer

	ai []legato.Port
	ao []legato.Port
}

// NewFIR returns an FIR filter with the given kernel taps, applied
// identically to each of channels audio channels.
func NewFIR(kernel []float32, channels int) *FIR {
	rings := make([]*legato.RingBuffer, channels)
	for c := range rings {
		rings[c] = legato.NewRingBuffer(len(kernel))
	}
	return &FIR{
		kernel: kernel,
		rings:  rings,
		ai:     audioInputs(channels),
		ao:     audioOutputs(channels),
	}
}

func (f *FIR) AudioIn() []legato.Port    { return f.ai }
func (f *FIR) AudioOut() []legato.Port   { return f.ao }
func (f *FIR) ControlIn() []legato.Port  { return nil }
func (f *FIR) ControlOut() []legato.Port { return nil }

func (f *FIR) Process(_ *legato.Context, ai, ao, _, _ legato.Frame) {
	for c := range ai {
		ring := f.rings[c]
		in := ai[c]
		out := ao[c]

		for n, x := range in {
			ring.Push(x)
			var y float32
			for k, h := range f.kernel {
				y += h * ring.Get(k)
			}
			out[n] = y
		}
	}
}
