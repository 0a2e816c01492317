package svggrad

import (
	"strings"
	"testing"

	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"
)

func stop(t *testing.T, color string, position float64) Stop {
	t.Helper()
	col, err := csscolorparser.Parse(color)
	if err != nil {
		t.Fatal(err)
	}
	return Stop{Position: position, Color: col}
}

func TestNormalizePadding(t *testing.T) {
	rec := Record{Stops: []Stop{
		stop(t, "red", 0.2),
		stop(t, "blue", 0.6),
	}}
	colors, positions, err := Normalize(rec)
	if err != nil {
		t.Fatal(err)
	}
	wantPos := []float64{0, 0.2, 0.6, 1}
	wantHex := []string{"#ff0000", "#ff0000", "#0000ff", "#0000ff"}
	if len(colors) != len(wantHex) || len(positions) != len(wantPos) {
		t.Fatalf("expected 4 padded stops, got %d colors, %d positions", len(colors), len(positions))
	}
	for i := range wantPos {
		if positions[i] != wantPos[i] {
			t.Errorf("position %d: expected %v, got %v", i, wantPos[i], positions[i])
		}
		if colors[i].HexString() != wantHex[i] {
			t.Errorf("color %d: expected %s, got %s", i, wantHex[i], colors[i].HexString())
		}
	}
	// the record itself is untouched
	if len(rec.Stops) != 2 {
		t.Errorf("normalizing mutated the record: %d stops", len(rec.Stops))
	}
}

func TestNormalizeAlreadyCovering(t *testing.T) {
	rec := Record{Stops: []Stop{
		stop(t, "#c41189", 0),
		stop(t, "#00bfff", 0.5),
		stop(t, "#ffd700", 1),
	}}
	colors, positions, err := Normalize(rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 || len(positions) != 3 {
		t.Fatalf("boundary stops were duplicated: %d colors, %d positions", len(colors), len(positions))
	}
	if positions[0] != 0 || positions[2] != 1 {
		t.Errorf("unexpected positions %v", positions)
	}
}

func TestNormalizeRejects(t *testing.T) {
	if _, _, err := Normalize(Record{State: RecordPoisoned, Stops: []Stop{stop(t, "red", 0)}}); err != ErrPoisoned {
		t.Errorf("expected ErrPoisoned, got %v", err)
	}
	if _, _, err := Normalize(Record{}); err != ErrEmpty {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

// an unparsable gradient does not taint its well-formed sibling
func TestPoisonedSiblingIsolation(t *testing.T) {
	records := parseString(t, `
	<svg>
	<linearGradient id="broken">
		<stop offset="0" stop-color="stone" />
		<stop offset="1" stop-color="gold" />
	</linearGradient>
	<linearGradient id="fine">
		<stop offset="0" stop-color="red" />
		<stop offset="1" stop-color="blue" />
	</linearGradient>
	</svg>
	`, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if _, _, err := Normalize(records[0]); err != ErrPoisoned {
		t.Errorf("expected ErrPoisoned for %q, got %v", records[0].ID, err)
	}
	if _, err := Build(records[1], colorgrad.BlendRgb, colorgrad.InterpolationLinear); err != nil {
		t.Errorf("sibling gradient should build, got %v", err)
	}
}

func TestBuildMidpoint(t *testing.T) {
	records, err := ReadStream(strings.NewReader(`
	<linearGradient id="half">
		<stop offset="0" stop-color="red" />
		<stop offset="1" stop-color="blue" />
	</linearGradient>
	`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	grad, err := Build(records[0], colorgrad.BlendRgb, colorgrad.InterpolationLinear)
	if err != nil {
		t.Fatal(err)
	}
	// plain channel-wise average: rgb(128,0,128)
	if got := grad.At(0.5).HexString(); got != "#800080" {
		t.Errorf("midpoint of red to blue: expected #800080, got %s", got)
	}
}

func TestBuildSingleStop(t *testing.T) {
	records := parseString(t, `
	<radialGradient id="guava">
		<stop offset="35%" stop-color="#abc123" />
	</radialGradient>
	`, nil)
	grad, err := Build(records[0], colorgrad.BlendRgb, colorgrad.InterpolationLinear)
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range []float64{0, 0.35, 1} {
		if got := grad.At(pos).HexString(); got != "#abc123" {
			t.Errorf("single-stop gradient at %v: expected #abc123, got %s", pos, got)
		}
	}
}

func TestBuildRejects(t *testing.T) {
	for _, rec := range []Record{
		{},
		{State: RecordPoisoned, Stops: []Stop{stop(t, "red", 0)}},
	} {
		if _, err := Build(rec, colorgrad.BlendRgb, colorgrad.InterpolationLinear); err == nil {
			t.Errorf("expected an error for record %+v", rec)
		}
	}
}
