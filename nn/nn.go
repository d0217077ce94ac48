// Copyright 2025 ArcML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/arcml/arcml/internal/nn"
	"github.com/arcml/arcml/internal/nnerr"
)

// Module is the interface for layers that map one input vector to one
// output vector.
type Module = nn.Module

// Layers

// Dense represents a fully connected (dense) layer.
type Dense = nn.Dense

// DenseOption configures a Dense layer.
type DenseOption = nn.DenseOption

// NewDense creates a new dense layer.
//
// Example:
//
//	layer, err := nn.NewDense(20, 40, nn.WithInitialization(nn.UniformSigned))
func NewDense(inputSize, neuronCount int, opts ...DenseOption) (*Dense, error) {
	return nn.NewDense(inputSize, neuronCount, opts...)
}

// WithInitialization sets the strategy used to fill weights and biases.
var WithInitialization = nn.WithInitialization

// WithActivation sets the default activation used by Dense.ForwardDefault.
var WithActivation = nn.WithActivation

// Initialization

// Initialization selects a parameter initialization strategy.
type Initialization = nn.Initialization

// Supported initialization strategies.
const (
	UniformSigned = nn.UniformSigned
	XavierUniform = nn.XavierUniform
	Zeros         = nn.Zeros
)

// Seed is the fixed seed of every random initialization strategy.
const Seed = nn.Seed

// ParseInitialization returns the strategy with the given name
// ("uniform_signed", "xavier_uniform", "zeros").
func ParseInitialization(name string) (Initialization, error) {
	return nn.ParseInitialization(name)
}

// Errors

// ErrUnsupportedOperation is wrapped by errors for unknown activation or
// initialization kinds.
var ErrUnsupportedOperation = nnerr.ErrUnsupportedOperation

// ErrInvalidArgument is wrapped by errors for bad dimensions or input sizes.
var ErrInvalidArgument = nnerr.ErrInvalidArgument

// UnsupportedError carries the selector that has no implementation.
type UnsupportedError = nnerr.UnsupportedError

// SizeMismatchError carries the expected and actual input lengths.
type SizeMismatchError = nnerr.SizeMismatchError
