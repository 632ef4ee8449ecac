package nodes

import (
	"math"

	"github.com/legato-audio/legato"
)

// Mixer sums Ai audio inputs down to Ao audio outputs, equal-power scaled:
// output channel o accumulates every input i where i mod Ao == o, each
// scaled by 1/sqrt(Ai/Ao). With Ai == 2*Ao this mixes stereo tracks down
// to a stereo bus; with Ao == 1 it is a mono sum.
type Mixer struct {
	divisor float32

	ai []legato.Port
	ao []legato.Port
}

// NewMixer returns a Mixer from inputs audio-in channels down to outputs
// audio-out channels. inputs must be a positive multiple of outputs.
func NewMixer(inputs, outputs int) *Mixer {
	tracks := inputs / outputs
	return &Mixer{
		divisor: float32(math.Sqrt(float64(tracks))),
		ai:      audioInputs(inputs),
		ao:      audioOutputs(outputs),
	}
}

func (m *Mixer) AudioIn() []legato.Port    { return m.ai }
func (m *Mixer) AudioOut() []legato.Port   { return m.ao }
func (m *Mixer) ControlIn() []legato.Port  { return nil }
func (m *Mixer) ControlOut() []legato.Port { return nil }

func (m *Mixer) Process(_ *legato.Context, ai, ao, _, _ legato.Frame) {
	for _, out := range ao {
		out.Zero()
	}

	numOut := len(ao)
	for n := range ao[0] {
		for c, in := range ai {
			ao[c%numOut][n] += in[n] / m.divisor
		}
	}
}
