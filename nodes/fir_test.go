package nodes

import (
	"testing"

	"github.com/legato-audio/legato"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFIRIdentityKernel(t *testing.T) {
	f := NewFIR([]float32{1.0}, 1)

	ai := legato.NewFrame(1, 4)
	ai[0][0], ai[0][1], ai[0][2], ai[0][3] = 0.1, 0.2, -0.3, 0.4
	ao := legato.NewFrame(1, 4)

	f.Process(nil, ai, ao, nil, nil)
	require.Equal(t, []float32(ai[0]), []float32(ao[0]))
}

func TestFIRTwoTapImpulse(t *testing.T) {
	f := NewFIR([]float32{0.5, 0.5}, 1)

	ai := legato.NewFrame(1, 4)
	ai[0][0] = 1.0
	ao := legato.NewFrame(1, 4)

	f.Process(nil, ai, ao, nil, nil)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0, 0}, toFloat64(ao[0]), 1e-6)
}

func toFloat64(b legato.Buffer) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = float64(v)
	}
	return out
}

// TestFIRLinearityProperty checks FIR(a*x + b*y) == a*FIR(x) + b*FIR(y)
// for random kernels, inputs, and scalars.
func TestFIRLinearityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tapCount := rapid.IntRange(1, 8).Draw(t, "taps")
		n := rapid.IntRange(1, 16).Draw(t, "n")

		kernel := make([]float32, tapCount)
		for i := range kernel {
			kernel[i] = rapid.Float32Range(-1, 1).Draw(t, "tap")
		}
		a := rapid.Float32Range(-2, 2).Draw(t, "a")
		b := rapid.Float32Range(-2, 2).Draw(t, "b")

		x := randomBuffer(t, n)
		y := randomBuffer(t, n)
		combined := make(legato.Buffer, n)
		for i := range combined {
			combined[i] = a*x[i] + b*y[i]
		}

		outX := runFIR(kernel, x)
		outY := runFIR(kernel, y)
		outCombined := runFIR(kernel, combined)

		for i := 0; i < n; i++ {
			want := a*outX[i] + b*outY[i]
			if diff := want - outCombined[i]; diff > 1e-3 || diff < -1e-3 {
				t.Fatalf("linearity violated at sample %d: want %f got %f", i, want, outCombined[i])
			}
		}
	})
}

func randomBuffer(t *rapid.T, n int) legato.Buffer {
	b := make(legato.Buffer, n)
	for i := range b {
		b[i] = rapid.Float32Range(-1, 1).Draw(t, "sample")
	}
	return b
}

func runFIR(kernel []float32, in legato.Buffer) legato.Buffer {
	f := NewFIR(kernel, 1)
	ai := legato.Frame{in}
	ao := legato.NewFrame(1, len(in))
	f.Process(nil, ai, ao, nil, nil)
	return ao[0]
}
