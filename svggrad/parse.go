package svggrad

import (
	"encoding/xml"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// RecordState tags whether all stops of a record parsed cleanly.
type RecordState uint8

const (
	// RecordValid is the initial state of every record.
	RecordValid RecordState = iota
	// RecordPoisoned marks a record in which at least one stop attribute
	// failed to parse. Such a record keeps accumulating the stops that do
	// parse, so that error reports stay accurate, but it is rejected by
	// Normalize.
	RecordPoisoned
)

// Stop is one (position, color) anchor point of a gradient.
type Stop struct {
	Position float64
	Color    csscolorparser.Color
}

// Record holds the stops collected from one linearGradient or
// radialGradient element. Positions are non-decreasing, enforced
// at insertion time.
type Record struct {
	ID    string
	HasID bool // false when the element has no "id" attribute
	Stops []Stop
	State RecordState
}

// Poisoned reports whether a stop of this record failed to parse.
func (r *Record) Poisoned() bool { return r.State == RecordPoisoned }

// gradCursor is used while walking the SVG tag events
type gradCursor struct {
	records []Record
	active  int  // index into records, -1 when outside a gradient element
	skip    bool // inside a gradient element filtered out by TargetID
	prevPos float64
	opts    Options
}

type gradFunc func(c *gradCursor, attrs []xml.Attr) error

var gradFuncs = map[string]gradFunc{
	"linearGradient": gradientF,
	"radialGradient": gradientF, // gradientF handles both containers
	"stop":           stopF,
}

func (c *gradCursor) readStartElement(se xml.StartElement) error {
	df, ok := gradFuncs[se.Name.Local]
	if !ok {
		// unrelated markup
		return nil
	}
	return df(c, se.Attr)
}

func (c *gradCursor) readEndElement(se xml.EndElement) {
	switch se.Name.Local {
	case "linearGradient", "radialGradient":
		c.active = -1
		c.skip = false
		c.prevPos = math.Inf(-1)
	}
}

func gradientF(c *gradCursor, attrs []xml.Attr) error {
	var id string
	var hasID bool
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			id = attr.Value
			hasID = true
		}
	}
	if c.opts.TargetID != nil && (!hasID || id != *c.opts.TargetID) {
		c.skip = true
		return nil
	}
	c.records = append(c.records, Record{ID: id, HasID: hasID})
	c.active = len(c.records) - 1
	return nil
}

func stopF(c *gradCursor, attrs []xml.Attr) error {
	if c.active == -1 || c.skip {
		// orphaned stop
		return nil
	}
	rec := &c.records[c.active]

	var colorAttr, opacityAttr, styleAttr, offsetAttr string
	var hasColor, hasOpacity, hasStyle, hasOffset bool
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "stop-color":
			colorAttr, hasColor = attr.Value, true
		case "stop-opacity":
			opacityAttr, hasOpacity = attr.Value, true
		case "style":
			styleAttr, hasStyle = attr.Value, true
		case "offset":
			offsetAttr, hasOffset = attr.Value, true
		}
	}

	var color *csscolorparser.Color
	var opacity *float64

	if hasColor {
		col, err := csscolorparser.Parse(colorAttr)
		if err != nil {
			return c.poison(rec, "stop-color", colorAttr)
		}
		color = &col
	}
	if hasOpacity {
		op, ok := readFraction(opacityAttr)
		if !ok {
			return c.poison(rec, "stop-opacity", opacityAttr)
		}
		opacity = &op
	}
	if hasStyle {
		// entries of the style list win over the direct attributes
		styleColor, styleOpacity, styleHasColor, styleHasOpacity := parseStyleList(styleAttr)
		if styleHasColor {
			col, err := csscolorparser.Parse(styleColor)
			if err != nil {
				return c.poison(rec, "style stop-color", styleColor)
			}
			color = &col
		}
		if styleHasOpacity {
			op, ok := readFraction(styleOpacity)
			if !ok {
				return c.poison(rec, "style stop-opacity", styleOpacity)
			}
			opacity = &op
		}
	}

	var offset *float64
	if hasOffset {
		of, ok := readFraction(offsetAttr)
		if !ok {
			return c.poison(rec, "offset", offsetAttr)
		}
		offset = &of
	}

	col := csscolorparser.Color{A: 1} // opaque black
	if color != nil {
		col = *color
	}
	if opacity != nil {
		col.A = clamp(*opacity, 0, 1)
	}

	// a stop without a usable offset reuses the running maximum,
	// producing a zero-width segment
	pos := c.prevPos
	if offset != nil {
		pos = *offset
	}
	if math.IsInf(pos, 0) || math.IsNaN(pos) {
		pos = 0
	}
	c.prevPos = math.Max(pos, c.prevPos)
	rec.Stops = append(rec.Stops, Stop{Position: c.prevPos, Color: col})
	return nil
}

// poison marks the active record, dropping the current stop. The scan
// keeps going unless the cursor runs in StrictErrorMode.
func (c *gradCursor) poison(rec *Record, attr, value string) error {
	rec.State = RecordPoisoned
	errStr := "cannot parse " + attr + " attribute " + strconv.Quote(strings.TrimSpace(value))
	if c.opts.ErrorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.opts.ErrorMode == WarnErrorMode {
		log.Println(errStr)
	}
	return nil
}

// parseStyleList extracts the stop-color and stop-opacity entries of a
// "key:value;..." style attribute. Keys are matched case-insensitively.
func parseStyleList(s string) (color, opacity string, hasColor, hasOpacity bool) {
	for _, pair := range strings.Split(s, ";") {
		kv := strings.Split(pair, ":")
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(kv[0])) {
		case "stop-color":
			color, hasColor = kv[1], true
		case "stop-opacity":
			opacity, hasOpacity = kv[1], true
		}
	}
	return
}

// readFraction parses a float with an optional percentage suffix.
func readFraction(v string) (float64, bool) {
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, false
		}
		return f / 100, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func clamp(t, min, max float64) float64 {
	if t < min {
		return min
	}
	if t > max {
		return max
	}
	return t
}
