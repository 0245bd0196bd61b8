package layout

import (
	"testing"

	"github.com/idilsaglam/calc/internal/calc"
)

func TestHitCenters(t *testing.T) {
	for r, row := range calc.Grid {
		for col, label := range row {
			c := calc.Cell{Row: r, Col: col}
			b := Button(c)
			mid := b.Min.Add(b.Size().Div(2))
			got, ok := Hit(mid.X, mid.Y)
			if label == "" {
				if ok {
					t.Errorf("gap at %v should not be hit", c)
				}
				continue
			}
			if !ok || got != c {
				t.Errorf("center of %q should hit %v, got %v %v", label, c, got, ok)
			}
		}
	}
}

func TestHitMisses(t *testing.T) {
	d := Display()
	if _, ok := Hit(d.Min.X+1, d.Min.Y+1); ok {
		t.Error("display row should not hit a button")
	}
	b := Button(calc.Cell{Row: 1, Col: 0})
	if _, ok := Hit(b.Max.X+Gap/2, b.Min.Y+1); ok {
		t.Error("gap between buttons should not hit")
	}
}

func TestButtonsFitScreen(t *testing.T) {
	w, h := Size()
	last := Button(calc.Cell{Row: len(calc.Grid) - 1, Col: len(calc.Grid[0]) - 1})
	if last.Max.X != w-Margin || last.Max.Y != h-Margin {
		t.Errorf("last button %v should end at the margin of %dx%d", last, w, h)
	}
}

func TestCaption(t *testing.T) {
	if Caption("√") != "sqrt" || Caption("7") != "7" {
		t.Error("captions should be ASCII")
	}
}
