package nodes

import (
	"math"

	"github.com/legato-audio/legato"
)

// Sine is a phase-accumulator oscillator with one FM audio input and one
// or more identical audio outputs. Frequency is modulated sample-by-sample
// by the fm input, which is added directly to the base frequency in Hz.
type Sine struct {
	freq  float32
	phase float32

	ai []legato.Port
	ao []legato.Port
}

// NewSine returns a Sine at the given base frequency (Hz) and initial
// phase in [0,1), emitting to channels audio outputs.
func NewSine(freqHz, phase float32, channels int) *Sine {
	return &Sine{
		freq:  freqHz,
		phase: phase,
		ai:    []legato.Port{{Name: "fm", Index: 0, Rate: legato.Audio}},
		ao:    audioOutputs(channels),
	}
}

func (s *Sine) AudioIn() []legato.Port    { return s.ai }
func (s *Sine) AudioOut() []legato.Port   { return s.ao }
func (s *Sine) ControlIn() []legato.Port  { return nil }
func (s *Sine) ControlOut() []legato.Port { return nil }

func (s *Sine) Process(ctx *legato.Context, ai, ao, _, _ legato.Frame) {
	fs := float32(ctx.SampleRate)
	fm := ai[0]

	for n := range fm {
		freq := s.freq + fm[n]

		sample := float32(math.Sin(float64(s.phase) * 2 * math.Pi))
		for _, out := range ao {
			out[n] = sample
		}

		s.phase += freq / fs
		_, frac := math.Modf(float64(s.phase))
		s.phase = float32(frac)
		if s.phase < 0 {
			s.phase += 1
		}
	}
}
