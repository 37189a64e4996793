// Package ascii renders levels as plain text, one character per cell.
package ascii

import (
	"bufio"
	"fmt"
	"io"

	"darkmaze/pkg/game/renderer"
)

// Renderer writes uncoloured text to an io.Writer.
type Renderer struct {
	out io.Writer

	// MapOnly skips the header and legend.
	MapOnly bool
}

// New creates an ASCII renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Name implements renderer.Renderer.
func (r *Renderer) Name() string {
	return "ascii"
}

// Render implements renderer.Renderer.
func (r *Renderer) Render(f renderer.Frame) error {
	if err := f.Check(); err != nil {
		return err
	}
	w := bufio.NewWriter(r.out)

	if !r.MapOnly {
		for _, line := range renderer.Header(f) {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, f.Gen.RenderASCII())

	if !r.MapOnly {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderer.Legend())
		for _, line := range renderer.Warnings(f) {
			fmt.Fprintln(w, line)
		}
	}
	return w.Flush()
}
