// Extracts color-gradient definitions embedded in SVG markup.
// Documents are scanned for linearGradient and radialGradient
// elements, whose stops are collected into normalized records
// ready to be handed to a gradient builder.
// Rendering is left to consumers, see for example termgrad/termdraw .
package svggrad

import (
	"encoding/xml"
	"errors"
	"io"
	"math"
	"os"

	"golang.org/x/net/html/charset"
)

// ErrorMode determines how the scan reacts to stop attributes
// it cannot parse.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently poisons the enclosing record.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode poisons the enclosing record and logs the offending attribute.
	WarnErrorMode
	// StrictErrorMode aborts the scan at the first offending attribute.
	StrictErrorMode
)

// Options controls one extraction pass.
type Options struct {
	// TargetID restricts extraction to gradients whose "id" attribute
	// matches exactly. Nil means no filtering.
	TargetID *string

	ErrorMode ErrorMode
}

// ReadStream extracts the gradient records of the given SVG document,
// in document order. Malformed stop attributes degrade to poisoned
// records (see ErrorMode); the only hard failure is a structurally
// unparsable document.
func ReadStream(stream io.Reader, opts Options) ([]Record, error) {
	cursor := &gradCursor{active: -1, prevPos: math.Inf(-1), opts: opts}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg document")
				}
				break
			}
			return cursor.records, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return cursor.records, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		}
	}
	return cursor.records, nil
}

// ReadFile extracts the gradient records of the named SVG file.
func ReadFile(path string, opts Options) ([]Record, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadStream(fin, opts)
}
