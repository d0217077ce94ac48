// Copyright 2025 ArcML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation_test

import (
	"errors"
	"testing"

	"github.com/arcml/arcml/activation"
	"github.com/arcml/arcml/nn"
)

func TestApplyCopyReLU(t *testing.T) {
	in := []float64{-1, 0, 2}
	out, err := activation.ApplyCopy(in, activation.ReLU)
	if err != nil {
		t.Fatalf("ApplyCopy failed: %v", err)
	}

	want := []float64{0, 0, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if in[0] != -1 {
		t.Errorf("ApplyCopy modified its input: %v", in)
	}
}

func TestUnsupportedKind(t *testing.T) {
	v := []float64{-1, 0, 2}
	if err := activation.ApplyInPlace(v, activation.Kind(99)); !errors.Is(err, nn.ErrUnsupportedOperation) {
		t.Errorf("ApplyInPlace error = %v, want ErrUnsupportedOperation", err)
	}
	if v[0] != -1 || v[2] != 2 {
		t.Errorf("ApplyInPlace mutated input on error: %v", v)
	}

	if _, err := activation.Apply(1, activation.Kind(99)); !errors.Is(err, nn.ErrUnsupportedOperation) {
		t.Errorf("Apply error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestParseKind(t *testing.T) {
	k, err := activation.ParseKind("leaky_relu")
	if err != nil || k != activation.LeakyReLU {
		t.Errorf("ParseKind(leaky_relu) = %v, %v", k, err)
	}
	got, _ := activation.Apply(-100, k)
	if got != -100*activation.LeakySlope {
		t.Errorf("LeakyReLU(-100) = %v", got)
	}
}
