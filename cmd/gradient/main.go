// Command gradient displays color gradients in the terminal:
// preset gradients, custom gradients built from CSS colors, and
// gradients read from SVG or GIMP gradient (.ggr) files.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
	"golang.org/x/term"

	"github.com/benoitkugler/termgrad/svggrad"
	"github.com/benoitkugler/termgrad/termdraw"
)

func main() {
	os.Exit(run())
}

// app holds the settings shared by every gradient displayed during
// one invocation, plus the accumulated exit status of the batch.
type app struct {
	rd            *termdraw.Renderer
	width, height int
	take          int
	samples       []float64
	array         bool

	mode          colorgrad.BlendMode
	interpolation colorgrad.Interpolation
	svgID         *string
	ggrFg, ggrBg  csscolorparser.Color

	status int
}

// fail reports a recoverable error and degrades the exit status;
// the batch keeps going.
func (a *app) fail(msg string) {
	fmt.Fprintln(os.Stderr, "gradient:", msg)
	a.status = 1
}

// writeStatus converts an output-write failure into an exit status.
// A broken pipe means the consumer closed early and is a clean success.
func writeStatus(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, syscall.EPIPE) {
		return 0
	}
	fmt.Fprintln(os.Stderr, "gradient:", err)
	return 1
}

func run() int {
	var (
		listPresets bool
		namedColors bool
		presetName  string
		custom      colorList
		cssColors   string
		positions   floatList
		blendMode   string
		interp      string
		files       fileList
		svgID       idValue
		ggrBg       = colorValue{col: csscolorparser.Color{R: 1, G: 1, B: 1, A: 1}}
		ggrFg       = colorValue{col: csscolorparser.Color{A: 1}}
		widthFlag   int
		heightFlag  int
		background  colorValue
		cbColors    colorList
		take        int
		samples     floatList
		formatName  string
		array       bool
	)

	flag.BoolVar(&listPresets, "l", false, "list all preset gradient names")
	flag.BoolVar(&listPresets, "list-presets", false, "list all preset gradient names")
	flag.BoolVar(&namedColors, "named-colors", false, "list the CSS named colors")
	flag.StringVar(&presetName, "p", "", "use the preset gradient NAME")
	flag.StringVar(&presetName, "preset", "", "use the preset gradient NAME")
	flag.Var(&custom, "c", "custom gradient from COLORs (repeatable, or comma separated)")
	flag.Var(&custom, "custom", "custom gradient from COLORs (repeatable, or comma separated)")
	flag.StringVar(&cssColors, "css", "", "custom gradient from a CSS color LIST")
	flag.Var(&positions, "P", "custom gradient color positions")
	flag.Var(&positions, "position", "custom gradient color positions")
	flag.StringVar(&blendMode, "m", "oklab", "custom gradient blending mode (rgb, linear-rgb, oklab)")
	flag.StringVar(&blendMode, "blend-mode", "oklab", "custom gradient blending mode (rgb, linear-rgb, oklab)")
	flag.StringVar(&interp, "i", "catmull-rom", "custom gradient interpolation (linear, basis, catmull-rom)")
	flag.StringVar(&interp, "interpolation", "catmull-rom", "custom gradient interpolation (linear, basis, catmull-rom)")
	flag.Var(&files, "f", "read gradients from an SVG or GIMP gradient (.ggr) FILE (repeatable)")
	flag.Var(&files, "file", "read gradients from an SVG or GIMP gradient (.ggr) FILE (repeatable)")
	flag.Var(&svgID, "svg-id", "pick the SVG gradient with this ID")
	flag.Var(&ggrBg, "ggr-bg", "GGR background COLOR")
	flag.Var(&ggrFg, "ggr-fg", "GGR foreground COLOR")
	flag.IntVar(&widthFlag, "W", 0, "gradient display width (default terminal width)")
	flag.IntVar(&widthFlag, "width", 0, "gradient display width (default terminal width)")
	flag.IntVar(&heightFlag, "H", 0, "gradient display height (default 2)")
	flag.IntVar(&heightFlag, "height", 0, "gradient display height (default 2)")
	flag.Var(&background, "b", "background COLOR (default checkerboard)")
	flag.Var(&background, "background", "background COLOR (default checkerboard)")
	flag.Var(&cbColors, "cb-color", "the two checkerboard COLORs")
	flag.IntVar(&take, "t", 0, "get N colors evenly spaced across the gradient")
	flag.IntVar(&take, "take", 0, "get N colors evenly spaced across the gradient")
	flag.Var(&samples, "s", "get the color(s) at specific position(s)")
	flag.Var(&samples, "sample", "get the color(s) at specific position(s)")
	flag.StringVar(&formatName, "o", "hex", "output color format (hex, rgb, rgb255, hsl, hsv, hwb)")
	flag.StringVar(&formatName, "format", "hex", "output color format (hex, rgb, rgb255, hsl, hsv, hwb)")
	flag.BoolVar(&array, "a", false, "print the colors from -t or -s as an array")
	flag.BoolVar(&array, "array", false, "print the colors from -t or -s as an array")
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)

	if listPresets {
		for _, p := range presets {
			fmt.Fprintln(out, p.name)
		}
		return writeStatus(out.Flush())
	}
	if namedColors {
		for _, name := range colornames.Names {
			c := colornames.Map[name]
			fmt.Fprintf(out, "%-22s #%02x%02x%02x\n", name, c.R, c.G, c.B)
		}
		return writeStatus(out.Flush())
	}

	stdout := int(os.Stdout.Fd())
	isTerminal := term.IsTerminal(stdout)
	termWidth, _, errSize := term.GetSize(stdout)
	detected := errSize == nil && termWidth > 0
	if !detected {
		termWidth = 80
	}

	format, ok := termdraw.ParseFormat(formatName)
	if !ok {
		fmt.Fprintln(os.Stderr, "gradient: unknown output format", strconv.Quote(formatName))
		return 1
	}
	mode, err := parseBlendMode(blendMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gradient:", err)
		return 1
	}
	interpolation, err := parseInterpolation(interp)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gradient:", err)
		return 1
	}
	if err := takeSampleConflict(take, samples.vals); err != nil {
		fmt.Fprintln(os.Stderr, "gradient:", err)
		flag.Usage()
		return 1
	}

	backdrop := termdraw.DefaultCheckerboard()
	if background.set {
		backdrop = termdraw.Solid(background.col)
	} else if len(cbColors.cols) > 0 {
		if len(cbColors.cols) != 2 {
			fmt.Fprintln(os.Stderr, "gradient: -cb-color needs exactly two colors")
			return 1
		}
		backdrop = termdraw.Checkerboard(cbColors.cols[0], cbColors.cols[1])
	}

	a := &app{
		rd: &termdraw.Renderer{
			Out:        out,
			IsTerminal: isTerminal,
			TermWidth:  termWidth,
			Background: backdrop,
			Format:     format,
		},
		width:         clampWidth(widthFlag, termWidth, detected),
		height:        clampHeight(heightFlag),
		take:          take,
		samples:       samples.vals,
		array:         array,
		mode:          mode,
		interpolation: interpolation,
		ggrFg:         ggrFg.col,
		ggrBg:         ggrBg.col,
	}
	if svgID.set {
		a.svgID = &svgID.s
	}

	requested := false

	if presetName != "" {
		requested = true
		if build, ok := findPreset(presetName); ok {
			if err := a.display(build()); err != nil {
				return writeStatus(err)
			}
		} else {
			a.fail("unknown preset name " + strconv.Quote(presetName) + " (use -list-presets)")
		}
	}

	if len(custom.cols) > 0 {
		requested = true
		if grad, err := buildCustom(custom.cols, positions.vals, mode, interpolation); err != nil {
			a.fail("custom gradient: " + err.Error())
		} else if err := a.display(grad); err != nil {
			return writeStatus(err)
		}
	}

	if cssColors != "" {
		requested = true
		if grad, err := buildCSS(cssColors, mode, interpolation); err != nil {
			a.fail("css gradient: " + err.Error())
		} else if err := a.display(grad); err != nil {
			return writeStatus(err)
		}
	}

	for _, path := range files.vals {
		requested = true
		if err := a.processFile(path); err != nil {
			return writeStatus(err)
		}
	}

	if !requested {
		flag.Usage()
		return 1
	}
	return a.status
}

// takeSampleConflict rejects asking for evenly spaced and explicit
// samples at once.
func takeSampleConflict(take int, samples []float64) error {
	if take > 0 && len(samples) > 0 {
		return errors.New("-take and -sample cannot be combined")
	}
	return nil
}

// display renders one gradient according to the output flags. The
// returned error is always an output-write failure.
func (a *app) display(grad termdraw.Gradient) error {
	switch {
	case a.take > 0:
		return a.emit(termdraw.SampleLine(grad, a.take))
	case len(a.samples) > 0:
		return a.emit(termdraw.SampleAt(grad, a.samples))
	default:
		return a.rd.Block(grad, a.width, a.height)
	}
}

func (a *app) emit(colors []csscolorparser.Color) error {
	if a.array {
		return a.rd.Array(colors)
	}
	return a.rd.Swatches(colors)
}

// processFile routes one input file by extension. Per-file and
// per-gradient failures only degrade the exit status; the returned
// error is an output-write failure.
func (a *app) processFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return a.processSVG(path)
	case ".ggr":
		return a.processGgr(path)
	}
	a.fail("unsupported file type: " + path)
	return nil
}

func (a *app) processSVG(path string) error {
	records, err := svggrad.ReadFile(path, svggrad.Options{TargetID: a.svgID})
	if err != nil {
		a.fail(path + ": " + err.Error())
		return nil
	}
	matched := false
	for _, rec := range records {
		if len(rec.Stops) == 0 && a.svgID == nil {
			// empty gradients are legal and not worth reporting
			continue
		}
		matched = true
		grad, err := svggrad.Build(rec, a.mode, a.interpolation)
		if err != nil {
			a.fail(path + ": gradient " + recordName(rec) + ": " + err.Error())
			continue
		}
		if err := a.display(grad); err != nil {
			return err
		}
	}
	if !matched {
		if a.svgID != nil {
			a.fail(path + ": no gradient with id " + strconv.Quote(*a.svgID))
		} else {
			a.fail(path + ": no gradient found")
		}
	}
	return nil
}

func (a *app) processGgr(path string) error {
	fin, err := os.Open(path)
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	defer fin.Close()
	grad, _, err := colorgrad.ParseGgr(fin, a.ggrFg, a.ggrBg)
	if err != nil {
		a.fail(path + ": " + err.Error())
		return nil
	}
	return a.display(grad)
}

func recordName(rec svggrad.Record) string {
	if rec.HasID {
		return strconv.Quote(rec.ID)
	}
	return "(unnamed)"
}

func buildCustom(colors []csscolorparser.Color, positions []float64,
	mode colorgrad.BlendMode, interpolation colorgrad.Interpolation) (colorgrad.Gradient, error) {
	gb := colorgrad.NewGradient().
		Colors(colors...).
		Mode(mode).
		Interpolation(interpolation)
	if len(positions) > 0 {
		gb = gb.Domain(positions...)
	}
	return gb.Build()
}

func buildCSS(list string, mode colorgrad.BlendMode, interpolation colorgrad.Interpolation) (colorgrad.Gradient, error) {
	var colors colorList
	if err := colors.Set(list); err != nil {
		return colorgrad.Gradient{}, err
	}
	return buildCustom(colors.cols, nil, mode, interpolation)
}

func parseBlendMode(s string) (colorgrad.BlendMode, error) {
	switch strings.ToLower(s) {
	case "rgb":
		return colorgrad.BlendRgb, nil
	case "linear-rgb":
		return colorgrad.BlendLinearRgb, nil
	case "oklab":
		return colorgrad.BlendOklab, nil
	}
	return colorgrad.BlendRgb, errors.New("unknown blending mode " + strconv.Quote(s))
}

func parseInterpolation(s string) (colorgrad.Interpolation, error) {
	switch strings.ToLower(s) {
	case "linear":
		return colorgrad.InterpolationLinear, nil
	case "basis":
		return colorgrad.InterpolationBasis, nil
	case "catmull-rom":
		return colorgrad.InterpolationCatmullRom, nil
	}
	return colorgrad.InterpolationLinear, errors.New("unknown interpolation mode " + strconv.Quote(s))
}

// clampWidth resolves the display width: the requested value, defaulting
// to the terminal width, kept within [10, terminal width] (or [10, 1000]
// when the terminal width is undetectable).
func clampWidth(requested, termWidth int, detected bool) int {
	max := 1000
	if detected {
		max = termWidth
	}
	w := requested
	if w == 0 {
		w = termWidth
	}
	if w < 10 {
		w = 10
	}
	if w > max {
		w = max
	}
	return w
}

// clampHeight resolves the display height, defaulting to 2, within [1, 50].
func clampHeight(requested int) int {
	h := requested
	if h == 0 {
		h = 2
	}
	if h < 1 {
		h = 1
	}
	if h > 50 {
		h = 50
	}
	return h
}
