package nodes

import (
	"math/bits"
	"testing"

	"github.com/legato-audio/legato"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type constSource struct {
	value float32
	ao    []legato.Port
}

func (c *constSource) AudioIn() []legato.Port    { return nil }
func (c *constSource) AudioOut() []legato.Port   { return c.ao }
func (c *constSource) ControlIn() []legato.Port  { return nil }
func (c *constSource) ControlOut() []legato.Port { return nil }
func (c *constSource) Process(_ *legato.Context, _, ao, _, _ legato.Frame) {
	for _, buf := range ao {
		for i := range buf {
			buf[i] = c.value
		}
	}
}

func newConstSource(value float32) *constSource {
	return &constSource{value: value, ao: audioOutputs(1)}
}

func TestMixerStereoSum(t *testing.T) {
	g := legato.NewGraph()
	rt := legato.NewRuntime(g, testContext(48000), 32)

	a := rt.AddNode(newConstSource(0.5))
	b := rt.AddNode(newConstSource(-0.5))
	mixer := rt.AddNode(NewMixer(2, 1))

	_, err := rt.AddEdge(legato.Connection{
		Source: legato.Endpoint{Node: a, Port: 0, Rate: legato.Audio},
		Sink:   legato.Endpoint{Node: mixer, Port: 0, Rate: legato.Audio},
	})
	require.NoError(t, err)
	_, err = rt.AddEdge(legato.Connection{
		Source: legato.Endpoint{Node: b, Port: 0, Rate: legato.Audio},
		Sink:   legato.Endpoint{Node: mixer, Port: 1, Rate: legato.Audio},
	})
	require.NoError(t, err)
	require.NoError(t, rt.SetSink(mixer))

	out, err := rt.Step()
	require.NoError(t, err)
	for _, v := range out[0] {
		require.InDelta(t, 0.0, v, 1e-6)
	}
}

// TestMixerEqualPowerLaw checks the equal-power mixer law: feeding Ai
// mutually uncorrelated unit-energy signals (distinct ±1 Walsh sequences)
// into an Ai->Ao mixer produces per-output energy (mean square over the
// block) equal to 1.
func TestMixerEqualPowerLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outputs := rapid.IntRange(1, 4).Draw(t, "outputs")
		tracks := rapid.IntRange(1, 4).Draw(t, "tracks")
		inputs := outputs * tracks

		const blockLen = 16 // a power of two >= the largest input count
		m := NewMixer(inputs, outputs)
		ai := legato.NewFrame(inputs, blockLen)
		for c := 0; c < inputs; c++ {
			for n := 0; n < blockLen; n++ {
				ai[c][n] = 1.0
				if bits.OnesCount(uint(c&n))%2 == 1 {
					ai[c][n] = -1.0
				}
			}
		}
		ao := legato.NewFrame(outputs, blockLen)

		m.Process(nil, ai, ao, nil, nil)

		for o := 0; o < outputs; o++ {
			var energy float32
			for _, v := range ao[o] {
				energy += v * v
			}
			energy /= blockLen
			if diff := energy - 1.0; diff > 1e-4 || diff < -1e-4 {
				t.Fatalf("output %d energy = %f, want ~1.0", o, energy)
			}
		}
	})
}
