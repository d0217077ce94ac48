// Copyright 2025 ArcML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the elementwise activation functions used by
// ArcML layers.
//
// Every function validates the Kind first and fails with an error wrapping
// nn.ErrUnsupportedOperation instead of falling back to Identity.
package activation

import (
	"github.com/arcml/arcml/internal/activation"
)

// Kind selects an elementwise activation function.
type Kind = activation.Kind

// Supported activation kinds.
const (
	Identity  = activation.Identity
	ReLU      = activation.ReLU
	Sigmoid   = activation.Sigmoid
	Tanh      = activation.Tanh
	LeakyReLU = activation.LeakyReLU
)

// LeakySlope is the slope LeakyReLU applies to negative inputs.
const LeakySlope = activation.LeakySlope

// Apply returns the activation of x under k.
func Apply(x float64, k Kind) (float64, error) {
	return activation.Apply(x, k)
}

// ApplyInPlace replaces every element of v with its activation under k.
// On error v is unchanged.
func ApplyInPlace(v []float64, k Kind) error {
	return activation.ApplyInPlace(v, k)
}

// ApplyCopy returns a new slice holding the activation of v under k.
func ApplyCopy(v []float64, k Kind) ([]float64, error) {
	return activation.ApplyCopy(v, k)
}

// ParseKind returns the Kind with the given name ("identity", "relu",
// "sigmoid", "tanh", "leaky_relu"; "none" means Identity).
func ParseKind(name string) (Kind, error) {
	return activation.ParseKind(name)
}
