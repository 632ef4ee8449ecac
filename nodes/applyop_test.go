package nodes

import (
	"testing"

	"github.com/legato-audio/legato"
	"github.com/stretchr/testify/require"
)

func TestApplyOpMul(t *testing.T) {
	op := NewApplyOp(Mul, 0.8, 1)
	ai := legato.NewFrame(1, 2)
	ai[0][0], ai[0][1] = 1.0, -1.0
	ao := legato.NewFrame(1, 2)

	op.Process(nil, ai, ao, nil, nil)
	require.InDelta(t, 0.8, ao[0][0], 1e-6)
	require.InDelta(t, -0.8, ao[0][1], 1e-6)
}

func TestApplyOpAdd(t *testing.T) {
	op := NewApplyOp(Add, 0.1, 1)
	ai := legato.NewFrame(1, 1)
	ai[0][0] = 0.2
	ao := legato.NewFrame(1, 1)

	op.Process(nil, ai, ao, nil, nil)
	require.InDelta(t, 0.3, ao[0][0], 1e-6)
}
