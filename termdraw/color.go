package termdraw

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Format selects the textual representation of a color.
type Format uint8

const (
	FormatHex    Format = iota
	FormatRgb           // percentage channels
	FormatRgb255        // 0-255 channels
	FormatHsl
	FormatHsv
	FormatHwb
)

// ParseFormat maps the textual format names used on the command line.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "hex":
		return FormatHex, true
	case "rgb":
		return FormatRgb, true
	case "rgb255":
		return FormatRgb255, true
	case "hsl":
		return FormatHsl, true
	case "hsv":
		return FormatHsv, true
	case "hwb":
		return FormatHwb, true
	}
	return 0, false
}

// formatAlpha returns the alpha suffix of a formatted color,
// empty when the channel is opaque within rounding.
func formatAlpha(a float64) string {
	s := fmt.Sprintf(",%.2f%%", a*100)
	if strings.HasPrefix(s, ",100") {
		return ""
	}
	return s
}

// FormatColor renders col in the given format. The alpha suffix is
// only emitted for translucent colors.
func FormatColor(col csscolorparser.Color, format Format) string {
	switch format {
	case FormatRgb:
		return fmt.Sprintf("rgb(%.2f%%,%.2f%%,%.2f%%%s)",
			clamp01(col.R)*100, clamp01(col.G)*100, clamp01(col.B)*100, formatAlpha(col.A))
	case FormatRgb255:
		r, g, b := rgb255(col)
		return fmt.Sprintf("rgb(%d,%d,%d%s)", r, g, b, formatAlpha(col.A))
	case FormatHsl:
		h, s, l := rgbSpace(col).Hsl()
		return fmt.Sprintf("hsl(%.2f,%.2f%%,%.2f%%%s)", h, s*100, l*100, formatAlpha(col.A))
	case FormatHsv:
		h, s, v := rgbSpace(col).Hsv()
		return fmt.Sprintf("hsv(%.2f,%.2f%%,%.2f%%%s)", h, s*100, v*100, formatAlpha(col.A))
	case FormatHwb:
		// whiteness and blackness follow from the HSV cylinder
		h, s, v := rgbSpace(col).Hsv()
		return fmt.Sprintf("hwb(%.2f,%.2f%%,%.2f%%%s)", h, (1-s)*v*100, (1-v)*100, formatAlpha(col.A))
	}
	return col.HexString()
}

// Blend composites fg over bg (source-over). Terminal cells have no
// alpha channel, so the result is fully opaque.
func Blend(fg, bg csscolorparser.Color) csscolorparser.Color {
	return csscolorparser.Color{
		R: (1-fg.A)*bg.R + fg.A*fg.R,
		G: (1-fg.A)*bg.G + fg.A*fg.G,
		B: (1-fg.A)*bg.B + fg.A*fg.B,
		A: 1,
	}
}

// Luminance returns the relative luminance of col.
// Reference http://www.w3.org/TR/2008/REC-WCAG20-20081211/#relativeluminancedef
func Luminance(col csscolorparser.Color) float64 {
	lum := func(t float64) float64 {
		if t <= 0.03928 {
			return t / 12.92
		}
		return math.Pow((t+0.055)/1.055, 2.4)
	}
	return 0.2126*lum(col.R) + 0.7152*lum(col.G) + 0.0722*lum(col.B)
}

func rgbSpace(col csscolorparser.Color) colorful.Color {
	return colorful.Color{R: clamp01(col.R), G: clamp01(col.G), B: clamp01(col.B)}
}

// rgb255 clamps and rounds the color channels to bytes.
func rgb255(col csscolorparser.Color) (r, g, b uint8) {
	r = uint8(math.Round(clamp01(col.R) * 255))
	g = uint8(math.Round(clamp01(col.G) * 255))
	b = uint8(math.Round(clamp01(col.B) * 255))
	return r, g, b
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
