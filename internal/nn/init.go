package nn

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/arcml/arcml/internal/nnerr"
	"github.com/arcml/arcml/internal/random"
)

// Seed is the fixed seed of every random initialization strategy.
const Seed = 42

// Initialization selects the strategy that fills a layer's weights and biases.
type Initialization int

// Supported initialization strategies.
const (
	// UniformSigned draws every weight and bias from U[-1, 1).
	UniformSigned Initialization = iota

	// XavierUniform draws from U[-b, b) with b = sqrt(6/(fan_in + fan_out)).
	XavierUniform

	// Zeros sets every weight and bias to zero.
	Zeros
)

var initNames = map[Initialization]string{
	UniformSigned: "uniform_signed",
	XavierUniform: "xavier_uniform",
	Zeros:         "zeros",
}

// String returns the lower-case name of the strategy.
func (i Initialization) String() string {
	if name, ok := initNames[i]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether i has an implementation.
func (i Initialization) Valid() bool {
	_, ok := initNames[i]
	return ok
}

// ParseInitialization returns the strategy with the given name.
func ParseInitialization(name string) (Initialization, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range initNames {
		if n == name {
			return i, nil
		}
	}
	return 0, &nnerr.UnsupportedError{What: "initialization", Name: name}
}

// initialize fills weights and biases according to kind.
//
// Random strategies draw, for each neuron in order, its row of weights and
// then its bias from a single generator seeded with Seed.
func initialize(kind Initialization, weights *mat.Dense, biases *mat.VecDense) error {
	rows, cols := weights.Dims()

	switch kind {
	case UniformSigned:
		fillInterleaved(random.NewUniform(Seed, -1.0, 1.0), weights, biases)
	case XavierUniform:
		// Xavier/Glorot bound: sqrt(6 / (fan_in + fan_out))
		bound := math.Sqrt(6.0 / float64(cols+rows))
		fillInterleaved(random.NewUniform(Seed, -bound, bound), weights, biases)
	case Zeros:
		weights.Zero()
		biases.Zero()
	default:
		return nnerr.Unsupported("initialization", int(kind))
	}
	return nil
}

func fillInterleaved(u *random.Uniform, weights *mat.Dense, biases *mat.VecDense) {
	rows, _ := weights.Dims()
	for i := 0; i < rows; i++ {
		u.Fill(weights.RawRowView(i))
		biases.SetVec(i, u.Float64())
	}
}
