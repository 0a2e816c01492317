// Renders sampled gradients and discrete color swatches as truecolor
// terminal output. The gradient math itself is left to a collaborator
// satisfying the Gradient interface, see github.com/mazznoer/colorgrad .
package termdraw

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Gradient is the sampling surface needed by the renderer.
// It is satisfied by colorgrad.Gradient.
type Gradient interface {
	// At returns the color at position t. Out-of-domain positions are
	// resolved by the gradient's own extrapolation policy.
	At(t float64) csscolorparser.Color

	// Domain returns the position range covered by the gradient.
	Domain() (min, max float64)
}

// Background is the backdrop composited under transparent samples,
// either one solid color or an alternating two-color checkerboard.
// It is immutable for the duration of one rendering pass.
type Background struct {
	first, second csscolorparser.Color
	solid         bool
}

// Solid returns a single-color backdrop.
func Solid(col csscolorparser.Color) Background {
	return Background{first: col, solid: true}
}

// Checkerboard returns an alternating backdrop; the first color fills
// tile 0. The pattern is two character cells wide and one row tall.
func Checkerboard(first, second csscolorparser.Color) Background {
	return Background{first: first, second: second}
}

// DefaultCheckerboard is the grey transparency grid used when no
// background color is requested.
func DefaultCheckerboard() Background {
	return Checkerboard(
		csscolorparser.Color{R: 0.20, G: 0.20, B: 0.20, A: 1},
		csscolorparser.Color{R: 0.05, G: 0.05, B: 0.05, A: 1},
	)
}

// Solid reports whether the backdrop is one single color.
func (bg Background) Solid() (csscolorparser.Color, bool) {
	return bg.first, bg.solid
}

// at returns the backdrop under the logical sample at (x, y). Two
// horizontally adjacent samples land in the same character cell, hence
// the halved x.
func (bg Background) at(x, y int) csscolorparser.Color {
	if bg.solid {
		return bg.first
	}
	if ((x/2)&1)^(y&1) == 1 {
		return bg.second
	}
	return bg.first
}

// SampleLine returns count evenly spaced samples across the gradient's
// declared domain, both endpoints included.
func SampleLine(grad Gradient, count int) []csscolorparser.Color {
	dmin, dmax := grad.Domain()
	colors := make([]csscolorparser.Color, count)
	if count == 1 {
		colors[0] = grad.At(dmin)
		return colors
	}
	for i := range colors {
		colors[i] = grad.At(remap(float64(i), 0, float64(count-1), dmin, dmax))
	}
	return colors
}

// SampleAt returns the gradient colors at the given positions, in order.
func SampleAt(grad Gradient, positions []float64) []csscolorparser.Color {
	colors := make([]csscolorparser.Color, len(positions))
	for i, t := range positions {
		colors[i] = grad.At(t)
	}
	return colors
}

// Map t from range [a, b] to range [c, d]
func remap(t, a, b, c, d float64) float64 {
	return (t-a)*((d-c)/(b-a)) + c
}

const (
	// the glyph splitting one cell into a left (foreground colored)
	// and a right (background colored) half
	halfBlock = "▌"

	sgrReset = "\x1b[39;49m"
)

// Renderer formats colors for one output destination.
type Renderer struct {
	Out        *bufio.Writer
	IsTerminal bool // whether Out is backed by an interactive terminal
	TermWidth  int
	Background Background
	Format     Format
}

func sgrCell(fg, bg csscolorparser.Color, glyph string) string {
	fr, fgc, fb := rgb255(fg)
	br, bgc, bb := rgb255(bg)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm%s", fr, fgc, fb, br, bgc, bb, glyph)
}

// Block renders the gradient as a width per height rectangle of cells.
// Each cell packs two horizontally adjacent samples through a half-block
// glyph, so a row is sampled 2*width times. Purely visual: nothing is
// written when the destination is not a terminal.
func (rd *Renderer) Block(grad Gradient, width, height int) error {
	if !rd.IsTerminal {
		return nil
	}
	dmin, dmax := grad.Domain()
	n := 2 * width
	for y := 0; y < height; y++ {
		for x := 0; x < n; x += 2 {
			left := grad.At(remap(float64(x), 0, float64(n), dmin, dmax))
			right := grad.At(remap(float64(x+1), 0, float64(n), dmin, dmax))
			rd.Out.WriteString(sgrCell(
				Blend(left, rd.Background.at(x, y)),
				Blend(right, rd.Background.at(x+1, y)),
				halfBlock))
		}
		rd.Out.WriteString(sgrReset + "\n")
	}
	return rd.Out.Flush()
}

// Swatches prints each color as its formatted text over a cell of its
// own (composited) color, wrapping before the terminal width overflows.
// When the destination is not a terminal it degrades to one plain
// formatted color per line.
func (rd *Renderer) Swatches(colors []csscolorparser.Color) error {
	if !rd.IsTerminal {
		for _, col := range colors {
			fmt.Fprintln(rd.Out, rd.formatSwatch(col))
		}
		return rd.Out.Flush()
	}
	width := rd.TermWidth
	for _, col := range colors {
		s := rd.formatSwatch(col)
		if width < len(s) {
			rd.Out.WriteString("\n")
			width = rd.TermWidth
		}
		cell := Blend(col, rd.swatchBase())
		fg := csscolorparser.Color{A: 1} // black text over light cells
		if Luminance(cell) < 0.3 {
			fg = csscolorparser.Color{R: 1, G: 1, B: 1, A: 1}
		}
		rd.Out.WriteString(sgrCell(fg, cell, s) + sgrReset)
		width -= len(s)
		if width >= 1 {
			rd.Out.WriteString(" ")
			width--
		}
	}
	rd.Out.WriteString("\n")
	return rd.Out.Flush()
}

// Array prints the colors as one bracketed, quoted list, without any
// styling, whatever the destination is attached to. The colors are
// listed raw, never composited.
func (rd *Renderer) Array(colors []csscolorparser.Color) error {
	parts := make([]string, len(colors))
	for i, col := range colors {
		parts[i] = strconv.Quote(FormatColor(col, rd.Format))
	}
	fmt.Fprintln(rd.Out, "["+strings.Join(parts, ", ")+"]")
	return rd.Out.Flush()
}

// formatSwatch composites over a solid background before formatting;
// over a checkerboard the raw color is shown.
func (rd *Renderer) formatSwatch(col csscolorparser.Color) string {
	if base, ok := rd.Background.Solid(); ok {
		return FormatColor(Blend(col, base), rd.Format)
	}
	return FormatColor(col, rd.Format)
}

// swatchBase is the single color painted under swatch text: the solid
// background when one is configured, else black.
func (rd *Renderer) swatchBase() csscolorparser.Color {
	if base, ok := rd.Background.Solid(); ok {
		return base
	}
	return csscolorparser.Color{A: 1}
}
