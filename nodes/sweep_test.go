package nodes

import (
	"testing"
	"time"

	"github.com/legato-audio/legato"
	"github.com/stretchr/testify/require"
)

func TestSweepStaysInUnitRange(t *testing.T) {
	const sampleRate = 48000
	sweep := NewSweep(100, 200, 10*time.Millisecond)
	ctx := testContext(sampleRate)

	for block := 0; block < 100; block++ {
		ao := legato.NewFrame(1, 256)
		sweep.Process(ctx, nil, ao, nil, nil)
		for _, v := range ao[0] {
			require.GreaterOrEqual(t, v, float32(-1.0))
			require.LessOrEqual(t, v, float32(1.0))
		}
	}
}
