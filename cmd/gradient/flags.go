package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// colorValue parses one CSS color given on the command line.
type colorValue struct {
	col csscolorparser.Color
	set bool
}

func (v *colorValue) String() string {
	if !v.set {
		return ""
	}
	return v.col.HexString()
}

func (v *colorValue) Set(s string) error {
	col, err := csscolorparser.Parse(s)
	if err != nil {
		return err
	}
	v.col, v.set = col, true
	return nil
}

// colorList accumulates CSS colors from repeated flags or from one
// comma separated list. Commas inside function notation such as
// rgb(50,200,70) do not split.
type colorList struct {
	cols []csscolorparser.Color
}

func (v *colorList) String() string {
	parts := make([]string, len(v.cols))
	for i, col := range v.cols {
		parts[i] = col.HexString()
	}
	return strings.Join(parts, ",")
}

func (v *colorList) Set(s string) error {
	for _, tok := range splitCSSList(s) {
		col, err := csscolorparser.Parse(tok)
		if err != nil {
			return err
		}
		v.cols = append(v.cols, col)
	}
	return nil
}

// floatList accumulates floats from repeated flags or comma/space
// separated values.
type floatList struct {
	vals []float64
}

func (v *floatList) String() string {
	parts := make([]string, len(v.vals))
	for i, f := range v.vals {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (v *floatList) Set(s string) error {
	toks := splitOnCommaOrSpace(s)
	if len(toks) == 0 {
		return errEmptyList
	}
	for _, tok := range toks {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return err
		}
		v.vals = append(v.vals, f)
	}
	return nil
}

// fileList accumulates paths from repeated flags, verbatim.
type fileList struct {
	vals []string
}

func (v *fileList) String() string { return strings.Join(v.vals, ",") }

func (v *fileList) Set(s string) error {
	v.vals = append(v.vals, s)
	return nil
}

// idValue records a string flag together with its presence, so that an
// explicitly empty id can be told apart from an absent one.
type idValue struct {
	s   string
	set bool
}

func (v *idValue) String() string { return v.s }

func (v *idValue) Set(s string) error {
	v.s, v.set = s, true
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// splitCSSList splits a CSS color list on top-level commas, keeping
// function notation like rgb(0, 255, 90) intact.
func splitCSSList(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// errEmptyList reports a list flag given without any usable value.
var errEmptyList = errors.New("empty list value")
