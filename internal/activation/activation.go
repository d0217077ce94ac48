// Package activation implements the elementwise activation functions applied
// to a layer's pre-activation output.
package activation

import (
	"math"
	"strings"

	"github.com/arcml/arcml/internal/nnerr"
)

// Kind selects an elementwise activation function.
type Kind int

// Supported activation kinds.
const (
	Identity Kind = iota
	ReLU
	Sigmoid
	Tanh
	LeakyReLU
)

// LeakySlope is the slope LeakyReLU applies to negative inputs.
const LeakySlope = 0.01

var kindNames = map[Kind]string{
	Identity:  "identity",
	ReLU:      "relu",
	Sigmoid:   "sigmoid",
	Tanh:      "tanh",
	LeakyReLU: "leaky_relu",
}

// String returns the lower-case name of the activation kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k has an implementation.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the Kind with the given name. Matching ignores case;
// "none" is accepted as an alias of Identity.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return Identity, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, &nnerr.UnsupportedError{What: "activation", Name: name}
}

// Apply returns the activation of x under k.
//
// Returns an error wrapping nnerr.ErrUnsupportedOperation if k has no
// implementation.
func Apply(x float64, k Kind) (float64, error) {
	switch k {
	case Identity:
		return x, nil
	case ReLU:
		return math.Max(0, x), nil
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-x)), nil
	case Tanh:
		return math.Tanh(x), nil
	case LeakyReLU:
		if x < 0 {
			return LeakySlope * x, nil
		}
		return x, nil
	default:
		return 0, nnerr.Unsupported("activation", int(k))
	}
}

// ApplyInPlace replaces every element of v with its activation under k.
//
// The kind is checked before v is touched, so on error v is unchanged.
func ApplyInPlace(v []float64, k Kind) error {
	if !k.Valid() {
		return nnerr.Unsupported("activation", int(k))
	}
	if k == Identity {
		return nil
	}
	for i, x := range v {
		// k is valid, Apply cannot fail.
		v[i], _ = Apply(x, k)
	}
	return nil
}

// ApplyCopy returns a new slice holding the activation of v under k.
// v is not modified.
func ApplyCopy(v []float64, k Kind) ([]float64, error) {
	if !k.Valid() {
		return nil, nnerr.Unsupported("activation", int(k))
	}
	out := make([]float64, len(v))
	copy(out, v)
	if err := ApplyInPlace(out, k); err != nil {
		return nil, err
	}
	return out, nil
}
