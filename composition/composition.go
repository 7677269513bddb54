// Package composition computes amino acid composition of a protein
// and plots it.
package composition

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmpty is returned when plotting a composition of an empty protein.
var ErrEmpty = errors.New("empty composition, nothing to plot")

// Composition stores the number of occurrences of every amino acid.
type Composition map[byte]int

// Count counts amino acids in the protein.
func Count(protein string) Composition {
	c := make(Composition, 20)
	for i := 0; i < len(protein); i++ {
		c[protein[i]]++
	}
	return c
}

// Total returns the protein length.
func (c Composition) Total() (n int) {
	for _, v := range c {
		n += v
	}
	return
}

// Symbols returns amino acids present in the protein in alphabetical
// order.
func (c Composition) Symbols() []byte {
	s := make([]byte, 0, len(c))
	for aa := range c {
		s = append(s, aa)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// Frequencies returns amino acid frequencies in the Symbols order.
// Frequencies sum to one unless the composition is empty.
func (c Composition) Frequencies() []float64 {
	symbols := c.Symbols()
	f := make([]float64, len(symbols))
	for i, aa := range symbols {
		f[i] = float64(c[aa])
	}
	if total := floats.Sum(f); total > 0 {
		floats.Scale(1/total, f)
	}
	return f
}

// Counts returns the composition keyed by one-letter strings, this is
// convenient for JSON output.
func (c Composition) Counts() map[string]int {
	m := make(map[string]int, len(c))
	for aa, n := range c {
		m[string(aa)] = n
	}
	return m
}

// String returns a human readable composition, e.g. "A:1 M:1".
func (c Composition) String() string {
	parts := make([]string, 0, len(c))
	for _, aa := range c.Symbols() {
		parts = append(parts, fmt.Sprintf("%c:%d", aa, c[aa]))
	}
	return strings.Join(parts, " ")
}

// Plot saves a bar chart of amino acid frequencies to a file. The
// image format is chosen from the file extension.
func Plot(c Composition, fn string) error {
	if c.Total() == 0 {
		return ErrEmpty
	}
	p := plot.New()
	p.Title.Text = "Amino acid composition"
	p.Y.Label.Text = "frequency"

	bars, err := plotter.NewBarChart(plotter.Values(c.Frequencies()), vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)

	symbols := c.Symbols()
	names := make([]string, len(symbols))
	for i, aa := range symbols {
		names[i] = string(aa)
	}
	p.NominalX(names...)

	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
