package svggrad

import (
	"errors"

	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"
)

var (
	// ErrPoisoned rejects a record with at least one unparsable stop.
	ErrPoisoned = errors.New("gradient contains invalid stops")
	// ErrEmpty rejects a record without any stop.
	ErrEmpty = errors.New("gradient has no stops")
)

// Normalize turns the stops of a record into builder arguments covering
// the whole [0, 1] range: a boundary stop is duplicated when the source
// range does not already reach an edge. The record itself is left
// untouched, so normalizing twice is harmless.
func Normalize(rec Record) (colors []csscolorparser.Color, positions []float64, err error) {
	if rec.Poisoned() {
		return nil, nil, ErrPoisoned
	}
	if len(rec.Stops) == 0 {
		return nil, nil, ErrEmpty
	}
	colors = make([]csscolorparser.Color, 0, len(rec.Stops)+2)
	positions = make([]float64, 0, len(rec.Stops)+2)
	if rec.Stops[0].Position > 0 {
		colors = append(colors, rec.Stops[0].Color)
		positions = append(positions, 0)
	}
	for _, stop := range rec.Stops {
		colors = append(colors, stop.Color)
		positions = append(positions, stop.Position)
	}
	if last := rec.Stops[len(rec.Stops)-1]; last.Position < 1 {
		colors = append(colors, last.Color)
		positions = append(positions, 1)
	}
	return colors, positions, nil
}

// Build normalizes the record and hands it to the colorgrad builder,
// with the given blending and interpolation settings. Builder failures
// (such as fewer than two effective stops) are passed through.
func Build(rec Record, mode colorgrad.BlendMode, interpolation colorgrad.Interpolation) (colorgrad.Gradient, error) {
	colors, positions, err := Normalize(rec)
	if err != nil {
		return colorgrad.Gradient{}, err
	}
	return colorgrad.NewGradient().
		Colors(colors...).
		Domain(positions...).
		Mode(mode).
		Interpolation(interpolation).
		Build()
}
