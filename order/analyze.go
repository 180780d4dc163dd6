// SPDX-License-Identifier: MIT
// Package: tfim/order
//
// analyze.go: per-layer records of a solution batch.
//
// Contract:
//   • Records come in batch order, then layer order.
//   • A layer with ψ⁶ = 0 is skipped and counted, never an error.
//   • emitted + skipped == solutions × H, checked on every Analyze.
//   • Any parse or range error aborts the whole batch.

package order

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tfim/problem"
)

// Record is the analysis of one (solution, layer) pair. Energy is the
// annealer's energy of the whole solution, repeated on each of its layers.
type Record struct {
	C6     float64
	OrderP float64
	Config int // index of the solution in its batch
	Layer  int
	Energy float64
}

// String formats r as a tab-separated output line without newline:
// c6, order_p, config, layer, energy. Floats use their shortest decimal
// form without exponent.
func (r Record) String() string {
	return formatFloat(r.C6) + "\t" +
		formatFloat(r.OrderP) + "\t" +
		strconv.Itoa(r.Config) + "\t" +
		strconv.Itoa(r.Layer) + "\t" +
		formatFloat(r.Energy)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Report aggregates a batch. Solutions and Height are the inputs the
// accounting check is made against.
type Report struct {
	Records   []Record
	Skipped   int // layers with ψ⁶ = 0
	Solutions int
	Height    int
}

// Analyze computes a Record for every layer of every solution in batch,
// in batch order then layer order, on an L×L×H geometry.
//
// Errors: ErrBadGeometry, problem.ErrBadSiteIndex, ErrLayerOutOfRange,
// ErrAccounting. Any error aborts the whole batch.
// Complexity: O(Σ |configuration|).
func Analyze(batch []problem.Solution, side, height int, opts ...Option) (*Report, error) {
	cfg := analyzeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rep := &Report{Solutions: len(batch), Height: height}
	for i, sol := range batch {
		layers, err := Magnetizations(sol.Configuration, side, height)
		if err != nil {
			return nil, fmt.Errorf("Analyze: solution %d: %w", i, err)
		}
		for h, m := range layers {
			psi := Psi(m)
			c6, ok := C6(psi, cfg.zeroTol)
			if !ok {
				rep.Skipped++
				continue
			}
			rep.Records = append(rep.Records, Record{
				C6:     c6,
				OrderP: OrderP(psi),
				Config: i,
				Layer:  h,
				Energy: sol.Energy,
			})
		}
	}

	if err := rep.Check(); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	return rep, nil
}

// Check verifies emitted + skipped == solutions × height.
func (r *Report) Check() error {
	if got, want := len(r.Records)+r.Skipped, r.Solutions*r.Height; got != want {
		return fmt.Errorf("%d emitted + %d skipped != %d solutions × %d layers: %w",
			len(r.Records), r.Skipped, r.Solutions, r.Height, ErrAccounting)
	}

	return nil
}

// MeanOrderP is the mean |ψ|² over emitted records, 0 for none.
func (r *Report) MeanOrderP() float64 {
	if len(r.Records) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range r.Records {
		sum += rec.OrderP
	}

	return sum / float64(len(r.Records))
}

// Column returns one field of every record, for histograms.
func (r *Report) Column(field func(Record) float64) []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = field(rec)
	}

	return out
}

// WriteTo writes the records joined by newlines, with no trailing newline.
// It implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for i, rec := range r.Records {
		line := rec.String()
		if i > 0 {
			line = "\n" + line
		}
		n, err := bw.WriteString(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
