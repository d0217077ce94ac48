// Copyright 2025 ArcML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the ArcML fully connected (dense) layer.
//
// # Overview
//
// This package contains:
//   - Dense: fully connected layer y = f(W @ x + b) over one float64 vector
//   - Initialization: UniformSigned, XavierUniform, Zeros
//   - Module: interface for forward-only layers
//   - Errors: ErrUnsupportedOperation, ErrInvalidArgument
//
// # Basic Usage
//
//	import (
//	    "github.com/arcml/arcml/activation"
//	    "github.com/arcml/arcml/nn"
//	)
//
//	func main() {
//	    layer, err := nn.NewDense(3, 40)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := layer.Forward([]float64{0.5, -0.2, 0.1}, activation.ReLU)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out)
//	}
//
// # Initialization
//
// Parameters are filled exactly once, at construction, from a Mersenne
// Twister (MT19937) seeded with Seed. For each neuron the layer draws its
// row of weights and then its bias. The sequence matches std::mt19937 with
// std::uniform_real_distribution<double>, so layers are bit-for-bit
// reproducible across runs:
//
//	layer, _ := nn.NewDense(784, 128, nn.WithInitialization(nn.XavierUniform))
//
// # Pre-activation
//
// Every successful Forward stores W @ x + b. PreActivation returns a copy:
//
//	pre := layer.PreActivation() // nil before the first Forward
//
// # Errors
//
// Failures wrap ErrUnsupportedOperation (unknown activation or
// initialization) or ErrInvalidArgument (input length mismatch, non-positive
// dimensions) and can be matched with errors.Is.
package nn
