package nodes

import (
	"math"
	"time"

	"github.com/legato-audio/legato"
)

// Sweep emits an exponential frequency sweep from minFreq to maxFreq over
// duration, holding at maxFreq once duration has elapsed. It has no audio
// inputs and one audio output.
type Sweep struct {
	phase    float32
	minFreq  float32
	maxFreq  float32
	duration float32 // seconds
	elapsed  int

	ao []legato.Port
}

// NewSweep returns a Sweep over [minFreq, maxFreq] across duration.
func NewSweep(minFreq, maxFreq float32, duration time.Duration) *Sweep {
	return &Sweep{
		minFreq:  minFreq,
		maxFreq:  maxFreq,
		duration: float32(duration.Seconds()),
		ao:       audioOutputs(1),
	}
}

func (s *Sweep) AudioIn() []legato.Port    { return nil }
func (s *Sweep) AudioOut() []legato.Port   { return s.ao }
func (s *Sweep) ControlIn() []legato.Port  { return nil }
func (s *Sweep) ControlOut() []legato.Port { return nil }

func (s *Sweep) Process(ctx *legato.Context, _, ao, _, _ legato.Frame) {
	fs := float32(ctx.SampleRate)
	out := ao[0]

	for n := range out {
		t := float32(s.elapsed) / fs
		if t > s.duration {
			t = s.duration
		}
		ratio := s.maxFreq / s.minFreq
		freq := s.minFreq * float32(math.Pow(float64(ratio), float64(t/s.duration)))
		s.elapsed++

		out[n] = float32(math.Sin(float64(s.phase) * 2 * math.Pi))

		s.phase += freq / fs
		_, frac := math.Modf(float64(s.phase))
		s.phase = float32(frac)
	}
}
