package nodes

import "github.com/legato-audio/legato"

// StereoFanout duplicates a single audio input channel across two audio
// output channels.
type StereoFanout struct {
	ai []legato.Port
	ao []legato.Port
}

// NewStereoFanout returns a StereoFanout.
func NewStereoFanout() *StereoFanout {
	return &StereoFanout{
		ai: audioInputs(1),
		ao: audioOutputs(2),
	}
}

func (s *StereoFanout) AudioIn() []legato.Port    { return s.ai }
func (s *StereoFanout) AudioOut() []legato.Port   { return s.ao }
func (s *StereoFanout) ControlIn() []legato.Port  { return nil }
func (s *StereoFanout) ControlOut() []legato.Port { return nil }

func (s *StereoFanout) Process(_ *legato.Context, ai, ao, _, _ legato.Frame) {
	in := ai[0]
	copy(ao[0], in)
	copy(ao[1], in)
}
