// Package render prints a generated tile grid as text.
// Renderers only read the grid; they never modify it.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/mattn/go-isatty"

	"github.com/talgya/worley-tiles/internal/world"
)

// Grid is the read-only view of a tile set that renderers consume.
// *world.TileSet satisfies it.
type Grid interface {
	Dims() world.Dims
	Len() int
	All() iter.Seq[world.Tile]
}

// Renderer writes a grid to w.
type Renderer interface {
	Render(w io.Writer, g Grid) error
}

// Mode names a renderer.
type Mode string

const (
	ModeAuto   Mode = "auto"   // Cursor on a terminal, plain otherwise
	ModePlain  Mode = "plain"  // Row-by-row text
	ModeCursor Mode = "cursor" // ANSI cursor addressing
)

// ErrUnknownMode is returned by Select for an unrecognized mode.
var ErrUnknownMode = errors.New("unknown render mode")

// Select returns the renderer for mode. In auto mode the choice depends on
// whether fd is a terminal.
func Select(mode Mode, fd uintptr) (Renderer, error) {
	switch mode {
	case ModePlain:
		return Plain{}, nil
	case ModeCursor:
		return Cursor{}, nil
	case ModeAuto, "":
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return Cursor{}, nil
		}
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func writeHeader(w *bufio.Writer, g Grid) {
	fmt.Fprintf(w, "Drawing grid of size %d\n\n", g.Len())
}

func writeFooter(w *bufio.Writer) {
	w.WriteString("\nDone.\n")
}

// Plain prints one line per grid row; each cell is its glyph or a space,
// followed by a space.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(w io.Writer, g Grid) error {
	d := g.Dims()
	cells := make([]byte, d.W*d.H)
	for i := range cells {
		cells[i] = ' '
	}
	for t := range g.All() {
		if d.Contains(t.Pos) {
			cells[t.Pos.Y*d.W+t.Pos.X] = t.Category.Glyph()
		}
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, g)
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			bw.WriteByte(cells[y*d.W+x])
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	writeFooter(bw)
	return bw.Flush()
}

// Cursor reserves one line per grid row, then places each tile with ANSI
// cursor movement at column 2x+1 of row y.
type Cursor struct{}

// Render implements Renderer.
func (Cursor) Render(w io.Writer, g Grid) error {
	d := g.Dims()

	bw := bufio.NewWriter(w)
	writeHeader(bw, g)
	for y := 0; y < d.H; y++ {
		bw.WriteByte('\n')
	}
	if d.H > 0 {
		fmt.Fprintf(bw, "\x1b[%dA", d.H)
	}
	for t := range g.All() {
		if !d.Contains(t.Pos) {
			continue
		}
		if t.Pos.Y > 0 {
			fmt.Fprintf(bw, "\x1b[%dB", t.Pos.Y)
		}
		fmt.Fprintf(bw, "\x1b[%dG", 2*t.Pos.X+1)
		bw.WriteByte(t.Category.Glyph())
		if t.Pos.Y > 0 {
			fmt.Fprintf(bw, "\x1b[%dA", t.Pos.Y)
		}
	}
	if d.H > 0 {
		fmt.Fprintf(bw, "\x1b[%dB", d.H)
	}
	bw.WriteByte('\r')
	writeFooter(bw)
	return bw.Flush()
}
