package nn

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteTo writes a human-readable rendering of the layer to w: the weight
// matrix one neuron per line, a blank line, then the biases on one line.
// Values are printed with six significant digits.
//
// The rendering is a debugging aid and is not meant to be parsed.
func (d *Dense) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString("Dense Layer:\n")
	for i := 0; i < d.neuronCount; i++ {
		writeRow(bw, d.weights.RawRowView(i))
	}
	bw.WriteString("\nBiases:\n")
	writeRow(bw, d.biases.RawVector().Data)

	err := bw.Flush()
	return cw.n, err
}

// String returns the same rendering as WriteTo.
func (d *Dense) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}

func writeRow(bw *bufio.Writer, row []float64) {
	var buf [32]byte
	for j, v := range row {
		if j > 0 {
			bw.WriteByte(' ')
		}
		bw.Write(strconv.AppendFloat(buf[:0], v, 'g', 6, 64))
	}
	bw.WriteByte('\n')
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

var _ io.WriterTo = (*Dense)(nil)
