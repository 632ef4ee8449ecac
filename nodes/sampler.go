package nodes

import "github.com/legato-audio/legato"

// Sampler plays back a sample asset it does not own: a SampleKey
// addressing a Resources store's sample slot. It has no audio inputs and
// one audio output per channel. With no table loaded it emits silence.
type Sampler struct {
	key     legato.SampleKey
	readPos int
	looping bool

	ao []legato.Port
}

// NewSampler returns a Sampler reading from key across channels audio
// output channels, looping if looping is true and clamping to silence
// past the end of the sample otherwise.
func NewSampler(key legato.SampleKey, channels int, looping bool) *Sampler {
	return &Sampler{
		key:     key,
		looping: looping,
		ao:      audioOutputs(channels),
	}
}

func (s *Sampler) AudioIn() []legato.Port    { return nil }
func (s *Sampler) AudioOut() []legato.Port   { return s.ao }
func (s *Sampler) ControlIn() []legato.Port  { return nil }
func (s *Sampler) ControlOut() []legato.Port { return nil }

func (s *Sampler) Process(ctx *legato.Context, _, ao, _, _ legato.Frame) {
	table := ctx.Resources.LoadSample(s.key)
	if table == nil {
		for _, out := range ao {
			out.Zero()
		}
		return
	}

	t := *table
	length := len(t[0])
	n := len(ao[0])

	for i := 0; i < n; i++ {
		idx := s.readPos + i
		for c, out := range ao {
			switch {
			case idx < length:
				out[i] = t[c][idx]
			case s.looping:
				out[i] = t[c][idx%length]
			default:
				out[i] = 0
			}
		}
	}

	if s.looping {
		s.readPos = (s.readPos + n) % length
	} else {
		s.readPos += n
		if s.readPos > length {
			s.readPos = length
		}
	}
}
