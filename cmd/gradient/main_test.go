package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"syscall"
	"testing"

	"github.com/mazznoer/colorgrad"
)

func TestSplitCSSList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"red", []string{"red"}},
		{"red,blue", []string{"red", "blue"}},
		{" red , blue ", []string{"red", "blue"}},
		{"rgb(50,200,70),gold", []string{"rgb(50,200,70)", "gold"}},
		{"hsl(120, 100%, 50%), #abc", []string{"hsl(120, 100%, 50%)", "#abc"}},
		{"rgba(0,0,0,0.5)", []string{"rgba(0,0,0,0.5)"}},
	}
	for _, test := range tests {
		if got := splitCSSList(test.input); !reflect.DeepEqual(got, test.want) {
			t.Errorf("splitCSSList(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSplitOnCommaOrSpace(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"0,0.5,1", []string{"0", "0.5", "1"}},
		{"0 0.5 1", []string{"0", "0.5", "1"}},
		{"0, 0.5, 1", []string{"0", "0.5", "1"}},
		{" , ", nil},
	}
	for _, test := range tests {
		got := splitOnCommaOrSpace(test.input)
		if len(got) == 0 && len(test.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("splitOnCommaOrSpace(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestColorListFlag(t *testing.T) {
	var v colorList
	if err := v.Set("red,rgb(0,0,255)"); err != nil {
		t.Fatal(err)
	}
	if err := v.Set("gold"); err != nil { // repeated flag accumulates
		t.Fatal(err)
	}
	if len(v.cols) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(v.cols))
	}
	if hex := v.cols[1].HexString(); hex != "#0000ff" {
		t.Errorf("expected #0000ff, got %s", hex)
	}
	if err := v.Set("no-such-color"); err == nil {
		t.Error("expected an error for an invalid color")
	}
}

func TestFloatListFlag(t *testing.T) {
	var v floatList
	if err := v.Set("0, 0.35"); err != nil {
		t.Fatal(err)
	}
	if err := v.Set("1"); err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 0.35, 1}; !reflect.DeepEqual(v.vals, want) {
		t.Errorf("got %v, want %v", v.vals, want)
	}
	if err := v.Set(" , "); err != errEmptyList {
		t.Errorf("expected errEmptyList, got %v", err)
	}
	if err := v.Set("abc"); err == nil {
		t.Error("expected an error for a non numeric value")
	}
}

func TestColorValueFlag(t *testing.T) {
	var v colorValue
	if v.set {
		t.Error("zero value should not report as set")
	}
	if err := v.Set("tomato"); err != nil {
		t.Fatal(err)
	}
	if !v.set || v.String() != "#ff6347" {
		t.Errorf("got set=%v value=%q", v.set, v.String())
	}
}

func TestIDValueFlag(t *testing.T) {
	var v idValue
	if v.set {
		t.Error("zero value should not report as set")
	}
	if err := v.Set(""); err != nil {
		t.Fatal(err)
	}
	// an explicitly empty id is still a filter
	if !v.set {
		t.Error("empty id should report as set")
	}
}

func TestFindPreset(t *testing.T) {
	for _, name := range []string{"rainbow", "Rainbow", "yl-gn", "Yl_Gn", "YL_GN"} {
		if _, ok := findPreset(name); !ok {
			t.Errorf("preset %q not found", name)
		}
	}
	if _, ok := findPreset("no-such"); ok {
		t.Error("unexpected match for an unknown preset")
	}
}

func TestPresetTable(t *testing.T) {
	if len(presets) != 38 {
		t.Fatalf("expected 38 presets, got %d", len(presets))
	}
	seen := map[string]bool{}
	for i, p := range presets {
		if p.grad == nil {
			t.Errorf("preset %q has no constructor", p.name)
		}
		if seen[p.name] {
			t.Errorf("duplicate preset name %q", p.name)
		}
		seen[p.name] = true
		if i > 0 && presets[i-1].name >= p.name {
			t.Errorf("presets not sorted at %q", p.name)
		}
	}
}

func TestParseBlendMode(t *testing.T) {
	for _, name := range []string{"rgb", "linear-rgb", "oklab", "OKLAB"} {
		if _, err := parseBlendMode(name); err != nil {
			t.Errorf("parseBlendMode(%q): %v", name, err)
		}
	}
	if _, err := parseBlendMode("lab"); err == nil {
		t.Error("expected an error for an unsupported blending mode")
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, name := range []string{"linear", "basis", "catmull-rom"} {
		if _, err := parseInterpolation(name); err != nil {
			t.Errorf("parseInterpolation(%q): %v", name, err)
		}
	}
	if _, err := parseInterpolation("cubic"); err == nil {
		t.Error("expected an error for an unknown interpolation")
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		requested, termWidth int
		detected             bool
		want                 int
	}{
		{0, 120, true, 120},   // default to the terminal width
		{60, 120, true, 60},   // explicit within range
		{500, 120, true, 120}, // capped at the terminal width
		{3, 120, true, 10},    // floor
		{500, 80, false, 500}, // undetectable: cap at 1000
		{2000, 80, false, 1000},
	}
	for _, test := range tests {
		got := clampWidth(test.requested, test.termWidth, test.detected)
		if got != test.want {
			t.Errorf("clampWidth(%d, %d, %v): got %d, want %d",
				test.requested, test.termWidth, test.detected, got, test.want)
		}
	}
}

func TestClampHeight(t *testing.T) {
	tests := []struct{ requested, want int }{
		{0, 2}, {1, 1}, {30, 30}, {80, 50}, {-2, 1},
	}
	for _, test := range tests {
		if got := clampHeight(test.requested); got != test.want {
			t.Errorf("clampHeight(%d): got %d, want %d", test.requested, got, test.want)
		}
	}
}

func TestWriteStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{syscall.EPIPE, 0},
		{fmt.Errorf("flush: %w", syscall.EPIPE), 0},
		{&os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}, 0},
		{errors.New("no space left on device"), 1},
	}
	for _, test := range tests {
		if got := writeStatus(test.err); got != test.want {
			t.Errorf("writeStatus(%v): got %d, want %d", test.err, got, test.want)
		}
	}
}

func TestTakeSampleConflict(t *testing.T) {
	if err := takeSampleConflict(5, []float64{0.5}); err == nil {
		t.Error("expected an error when both selections are given")
	}
	if err := takeSampleConflict(5, nil); err != nil {
		t.Errorf("take alone: %v", err)
	}
	if err := takeSampleConflict(0, []float64{0.5}); err != nil {
		t.Errorf("sample alone: %v", err)
	}
	if err := takeSampleConflict(0, nil); err != nil {
		t.Errorf("neither: %v", err)
	}
}

func TestBuildCSS(t *testing.T) {
	grad, err := buildCSS("red, rgb(0,0,255)", colorgrad.BlendRgb, colorgrad.InterpolationLinear)
	if err != nil {
		t.Fatal(err)
	}
	if min, max := grad.Domain(); min != 0 || max != 1 {
		t.Errorf("expected the default [0, 1] domain, got [%v, %v]", min, max)
	}
	if _, err := buildCSS("red, bogus", colorgrad.BlendRgb, colorgrad.InterpolationLinear); err == nil {
		t.Error("expected an error for an invalid color in the list")
	}
}
