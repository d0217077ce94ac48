package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"
)

// Reference values produced by std::mt19937(42) feeding
// std::uniform_real_distribution<double>(-1.0, 1.0) (libstdc++).
var signedSeed42 = []uint64{
	0x3fe2fa8f6cd7f878, // 0.59308596857569196
	0xbfe4429abc43277f, // -0.63313042421326304
	0x3fe1e67511eed8fe, // 0.5593819952253225
	0x3fc8cb2c149941b0, // 0.1937003231601131
	0xbfbbbbcf0db01e50, // -0.10833448490313313
	0xbfe99a02ca760430, // -0.80005015891231857
	0xbfb4dd546be242e0, // -0.081502224291635894
	0xbfd5490945912124, // -0.33258277696269745
}

// TestMT19937Seed42 pins the raw generator output for seed 42.
func TestMT19937Seed42(t *testing.T) {
	src := prng.NewMT19937()
	src.Seed(42)

	want := []uint32{1608637542, 3421126067, 4083286876, 787846414}
	for i, w := range want {
		assert.Equal(t, w, src.Uint32(), "draw %d", i)
	}
}

func TestUniformMatchesReference(t *testing.T) {
	u := NewUniform(42, -1.0, 1.0)
	for i, bits := range signedSeed42 {
		got := u.Float64()
		assert.Equal(t, bits, math.Float64bits(got),
			"draw %d: got %v, want %v", i, got, math.Float64frombits(bits))
	}
}

func TestUniformScaledRange(t *testing.T) {
	// std::uniform_real_distribution<double>(-b, b), b = sqrt(6/5).
	want := []float64{
		0.64969312705741311,
		-0.69355963036883828,
		0.61277227409431245,
		0.21218807278166851,
	}
	b := math.Sqrt(6.0 / 5.0)
	u := NewUniform(42, -b, b)
	for i, w := range want {
		assert.Equal(t, w, u.Float64(), "draw %d", i)
	}
}

func TestUniformDeterministic(t *testing.T) {
	a := make([]float64, 64)
	b := make([]float64, 64)
	NewUniform(7, -1, 1).Fill(a)
	NewUniform(7, -1, 1).Fill(b)
	require.Equal(t, a, b)

	c := make([]float64, 64)
	NewUniform(8, -1, 1).Fill(c)
	assert.NotEqual(t, a, c)
}

func TestCanonicalRange(t *testing.T) {
	u := NewUniform(42, 0, 1)
	for i := 0; i < 10000; i++ {
		r := u.Canonical()
		if r < 0 || r >= 1 {
			t.Fatalf("Canonical() = %v, want [0, 1)", r)
		}
	}
}
