// Package nn implements the ArcML dense layer.
//
// This package provides:
//   - Dense: fully connected layer over a single float64 vector
//   - Initialization: seeded, reproducible parameter initialization
//   - Module: interface implemented by forward-only layers
//
// Gradients, optimizers and multi-layer containers are out of scope.
package nn

import (
	"github.com/arcml/arcml/internal/activation"
)

// Module is the interface for layers that map one input vector to one
// output vector.
type Module interface {
	// Forward computes the output of the module for input, applying kind
	// elementwise to the pre-activation values.
	//
	// Returns an error if input does not have InputSize elements or kind
	// is unsupported.
	Forward(input []float64, kind activation.Kind) ([]float64, error)

	// InputSize returns the expected input length.
	InputSize() int

	// NeuronCount returns the output length.
	NeuronCount() int
}

var _ Module = (*Dense)(nil)
