package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arcml/arcml/internal/activation"
	"github.com/arcml/arcml/internal/nnerr"
)

// Dense implements a fully connected layer over a single input vector.
//
// Performs the transformation: y = f(W @ x + b)
// where:
//   - x is the input vector with length input_size
//   - W is the weight matrix with shape [neuron_count, input_size]
//   - b is the bias vector with length neuron_count
//   - f is an elementwise activation
//
// The most recent W @ x + b is retained as the pre-activation buffer.
// A Dense must not be used from multiple goroutines without external
// synchronization, since Forward overwrites that buffer.
//
// Example:
//
//	layer, err := nn.NewDense(3, 40)
//	if err != nil {
//	    return err
//	}
//	out, err := layer.Forward([]float64{0.5, -0.2, 0.1}, activation.ReLU)
type Dense struct {
	inputSize   int
	neuronCount int
	weights     *mat.Dense    // [neuron_count, input_size]
	biases      *mat.VecDense // [neuron_count]
	pre         *mat.VecDense // [neuron_count], last W @ x + b
	forwarded   bool          // pre is valid

	initKind   Initialization
	activation activation.Kind
}

// DenseOption configures a Dense layer.
type DenseOption func(*denseOptions)

type denseOptions struct {
	initKind   Initialization
	activation activation.Kind
}

// WithInitialization sets the strategy used to fill weights and biases.
// Defaults to UniformSigned.
func WithInitialization(kind Initialization) DenseOption {
	return func(o *denseOptions) {
		o.initKind = kind
	}
}

// WithActivation sets the default activation used by ForwardDefault.
// Defaults to activation.ReLU.
func WithActivation(kind activation.Kind) DenseOption {
	return func(o *denseOptions) {
		o.activation = kind
	}
}

// NewDense creates a Dense layer with inputSize inputs and neuronCount
// neurons, initialized once by the selected strategy.
//
// Returns an error wrapping nnerr.ErrInvalidArgument for non-positive
// dimensions, or nnerr.ErrUnsupportedOperation for an unknown
// initialization or activation kind.
func NewDense(inputSize, neuronCount int, opts ...DenseOption) (*Dense, error) {
	if inputSize <= 0 || neuronCount <= 0 {
		return nil, fmt.Errorf("NewDense: %w: dimensions must be positive, got input_size=%d neuron_count=%d",
			nnerr.ErrInvalidArgument, inputSize, neuronCount)
	}

	options := &denseOptions{
		initKind:   UniformSigned,
		activation: activation.ReLU,
	}
	for _, opt := range opts {
		opt(options)
	}

	if !options.activation.Valid() {
		return nil, fmt.Errorf("NewDense: %w", nnerr.Unsupported("activation", int(options.activation)))
	}

	weights := mat.NewDense(neuronCount, inputSize, nil)
	biases := mat.NewVecDense(neuronCount, nil)
	if err := initialize(options.initKind, weights, biases); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	return &Dense{
		inputSize:   inputSize,
		neuronCount: neuronCount,
		weights:     weights,
		biases:      biases,
		pre:         mat.NewVecDense(neuronCount, nil),
		initKind:    options.initKind,
		activation:  options.activation,
	}, nil
}

// Forward computes the layer output for input using the given activation.
//
// The activation argument always takes precedence over the layer's default
// activation. On success the pre-activation buffer is overwritten with
// W @ input + b; on error the layer is left unchanged.
func (d *Dense) Forward(input []float64, kind activation.Kind) ([]float64, error) {
	if len(input) != d.inputSize {
		return nil, &nnerr.SizeMismatchError{Op: "Dense.Forward", Expected: d.inputSize, Actual: len(input)}
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("Dense.Forward: %w", nnerr.Unsupported("activation", int(kind)))
	}

	x := mat.NewVecDense(d.inputSize, input)
	d.pre.MulVec(d.weights, x)
	d.pre.AddVec(d.pre, d.biases)
	d.forwarded = true

	return activation.ApplyCopy(d.pre.RawVector().Data, kind)
}

// ForwardDefault computes the layer output using the default activation.
func (d *Dense) ForwardDefault(input []float64) ([]float64, error) {
	return d.Forward(input, d.activation)
}

// PreActivation returns a copy of the pre-activation output of the most
// recent successful Forward call.
//
// Returns nil if Forward has not succeeded yet.
func (d *Dense) PreActivation() []float64 {
	if !d.forwarded {
		return nil
	}
	out := make([]float64, d.neuronCount)
	copy(out, d.pre.RawVector().Data)
	return out
}

// Weights returns a copy of the weight matrix, shape [neuron_count, input_size].
func (d *Dense) Weights() *mat.Dense {
	return mat.DenseCopyOf(d.weights)
}

// Biases returns a copy of the bias vector.
func (d *Dense) Biases() []float64 {
	out := make([]float64, d.neuronCount)
	copy(out, d.biases.RawVector().Data)
	return out
}

// InputSize returns the number of input features.
func (d *Dense) InputSize() int {
	return d.inputSize
}

// NeuronCount returns the number of output neurons.
func (d *Dense) NeuronCount() int {
	return d.neuronCount
}

// Initialization returns the strategy that produced the weights and biases.
func (d *Dense) Initialization() Initialization {
	return d.initKind
}

// DefaultActivation returns the activation used by ForwardDefault.
func (d *Dense) DefaultActivation() activation.Kind {
	return d.activation
}
