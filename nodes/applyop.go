package nodes

import "github.com/legato-audio/legato"

// BinaryOp is a fixed binary operation an ApplyOp node applies per
// sample.
type BinaryOp func(a, b float32) float32

// Add adds the fixed operand to every sample.
func Add(a, b float32) float32 { return a + b }

// Mul multiplies every sample by the fixed operand.
func Mul(a, b float32) float32 { return a * b }

// ApplyOp applies a fixed binary operation against a constant operand to
// every sample on every channel: out[c][n] = op(in[c][n], b).
type ApplyOp struct {
	op BinaryOp
	b  float32

	ai []legato.Port
	ao []legato.Port
}

// NewApplyOp returns an ApplyOp running op with fixed operand b across
// channels audio channels.
func NewApplyOp(op BinaryOp, b float32, channels int) *ApplyOp {
	return &ApplyOp{
		op: op,
		b:  b,
		ai: audioInputs(channels),
		ao: audioOutputs(channels),
	}
}

func (a *ApplyOp) AudioIn() []legato.Port    { return a.ai }
func (a *ApplyOp) AudioOut() []legato.Port   { return a.ao }
func (a *ApplyOp) ControlIn() []legato.Port  { return nil }
func (a *ApplyOp) ControlOut() []legato.Port { return nil }

func (a *ApplyOp) Process(_ *legato.Context, ai, ao, _, _ legato.Frame) {
	for c, in := range ai {
		out := ao[c]
		for n, x := range in {
			out[n] = a.op(x, a.b)
		}
	}
}
