package main

import (
	"strings"

	"github.com/mazznoer/colorgrad"
)

// preset binds a command line name to a colorgrad constructor.
type preset struct {
	name string
	grad func() colorgrad.Gradient
}

// presets is iterated both for --list-presets and for dispatch,
// in listing order.
var presets = []preset{
	{"blues", colorgrad.Blues},
	{"br-bg", colorgrad.BrBG},
	{"bu-gn", colorgrad.BuGn},
	{"bu-pu", colorgrad.BuPu},
	{"cividis", colorgrad.Cividis},
	{"cool", colorgrad.Cool},
	{"cubehelix", colorgrad.CubehelixDefault},
	{"gn-bu", colorgrad.GnBu},
	{"greens", colorgrad.Greens},
	{"greys", colorgrad.Greys},
	{"inferno", colorgrad.Inferno},
	{"magma", colorgrad.Magma},
	{"or-rd", colorgrad.OrRd},
	{"oranges", colorgrad.Oranges},
	{"pi-yg", colorgrad.PiYG},
	{"plasma", colorgrad.Plasma},
	{"pr-gn", colorgrad.PRGn},
	{"pu-bu", colorgrad.PuBu},
	{"pu-bu-gn", colorgrad.PuBuGn},
	{"pu-or", colorgrad.PuOr},
	{"pu-rd", colorgrad.PuRd},
	{"purples", colorgrad.Purples},
	{"rainbow", colorgrad.Rainbow},
	{"rd-bu", colorgrad.RdBu},
	{"rd-gy", colorgrad.RdGy},
	{"rd-pu", colorgrad.RdPu},
	{"rd-yl-bu", colorgrad.RdYlBu},
	{"rd-yl-gn", colorgrad.RdYlGn},
	{"reds", colorgrad.Reds},
	{"sinebow", colorgrad.Sinebow},
	{"spectral", colorgrad.Spectral},
	{"turbo", colorgrad.Turbo},
	{"viridis", colorgrad.Viridis},
	{"warm", colorgrad.Warm},
	{"yl-gn", colorgrad.YlGn},
	{"yl-gn-bu", colorgrad.YlGnBu},
	{"yl-or-br", colorgrad.YlOrBr},
	{"yl-or-rd", colorgrad.YlOrRd},
}

// findPreset resolves a preset name, tolerating case and underscore
// variants ("Yl_Gn" finds "yl-gn").
func findPreset(name string) (func() colorgrad.Gradient, bool) {
	name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
	for _, p := range presets {
		if p.name == name {
			return p.grad, true
		}
	}
	return nil, false
}
