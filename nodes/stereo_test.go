package nodes

import (
	"testing"

	"github.com/legato-audio/legato"
	"github.com/stretchr/testify/require"
)

func TestStereoFanoutDuplicatesChannel(t *testing.T) {
	s := NewStereoFanout()
	ai := legato.NewFrame(1, 4)
	ai[0][0], ai[0][1], ai[0][2], ai[0][3] = 0.1, 0.2, 0.3, 0.4
	ao := legato.NewFrame(2, 4)

	s.Process(nil, ai, ao, nil, nil)
	require.Equal(t, []float32(ai[0]), []float32(ao[0]))
	require.Equal(t, []float32(ai[0]), []float32(ao[1]))
}
