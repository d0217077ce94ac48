// Package main provides the ArcML CLI.
//
// It builds one dense layer, prints its parameters and runs a single
// forward pass:
//
//	arcml -in 3 -neurons 4 -activation relu -input 0.5,-0.2,0.1
//	arcml version
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/arcml/arcml/activation"
	"github.com/arcml/arcml/nn"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("arcml: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "ArcML %s\n", version)
		return nil
	}

	fs := flag.NewFlagSet("arcml", flag.ContinueOnError)
	fs.SetOutput(stdout)
	inputSize := fs.Int("in", 3, "Number of input features")
	neurons := fs.Int("neurons", 40, "Number of neurons")
	initName := fs.String("init", nn.UniformSigned.String(), "Initialization: uniform_signed, xavier_uniform, zeros")
	actName := fs.String("activation", activation.ReLU.String(), "Activation: identity, relu, sigmoid, tanh, leaky_relu")
	inputStr := fs.String("input", "0.5,-0.2,0.1", "Comma-separated input vector")
	quiet := fs.Bool("quiet", false, "Print only the output vector")
	if err := fs.Parse(args); err != nil {
		return err
	}

	initKind, err := nn.ParseInitialization(*initName)
	if err != nil {
		return err
	}
	act, err := activation.ParseKind(*actName)
	if err != nil {
		return err
	}
	input, err := parseVector(*inputStr)
	if err != nil {
		return err
	}

	layer, err := nn.NewDense(*inputSize, *neurons, nn.WithInitialization(initKind), nn.WithActivation(act))
	if err != nil {
		return err
	}

	out, err := forward(layer, input, act)
	if err != nil {
		return err
	}

	if !*quiet {
		if _, err := layer.WriteTo(stdout); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nPre-activation:\n%s\n", formatVector(layer.PreActivation()))
		fmt.Fprintf(stdout, "\nOutput (%s):\n", act)
	}
	fmt.Fprintln(stdout, formatVector(out))
	return nil
}

func forward(m nn.Module, input []float64, act activation.Kind) ([]float64, error) {
	out, err := m.Forward(input, act)
	if err != nil {
		return nil, fmt.Errorf("forward %dx%d: %w", m.InputSize(), m.NeuronCount(), err)
	}
	return out, nil
}

func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	v := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", f, err)
		}
		v = append(v, x)
	}
	return v, nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return strings.Join(parts, " ")
}
