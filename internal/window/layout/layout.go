// Package layout is the geometry of the calculator window: where the display
// and each button sit, and which button a click lands on.
package layout

import (
	"image"

	"github.com/idilsaglam/calc/internal/calc"
)

const (
	Margin    = 8
	ButtonW   = 64
	ButtonH   = 40
	Gap       = 6
	DisplayH  = 40
	CharWidth = 6 // ebitenutil debug font
)

// Size is the logical screen size.
func Size() (int, int) {
	cols := 0
	for _, row := range calc.Grid {
		cols = max(cols, len(row))
	}
	w := 2*Margin + cols*ButtonW + (cols-1)*Gap
	h := 2*Margin + DisplayH + Gap + len(calc.Grid)*(ButtonH+Gap) - Gap
	return w, h
}

// Display is the rectangle of the display row across the top.
func Display() image.Rectangle {
	w, _ := Size()
	return image.Rect(Margin, Margin, w-Margin, Margin+DisplayH)
}

// Button is the rectangle of the button at c.
func Button(c calc.Cell) image.Rectangle {
	x := Margin + c.Col*(ButtonW+Gap)
	y := Margin + DisplayH + Gap + c.Row*(ButtonH+Gap)
	return image.Rect(x, y, x+ButtonW, y+ButtonH)
}

// Hit returns the button under (x, y). Gaps between and around buttons miss.
func Hit(x, y int) (calc.Cell, bool) {
	p := image.Pt(x, y)
	for r, row := range calc.Grid {
		for col, label := range row {
			c := calc.Cell{Row: r, Col: col}
			if label != "" && p.In(Button(c)) {
				return c, true
			}
		}
	}
	return calc.Cell{}, false
}

// Caption is the text drawn on a button; the debug font is ASCII only.
func Caption(label string) string {
	if label == "√" {
		return "sqrt"
	}
	return label
}

// TextOrigin centers text of n characters in r for a font of the given cell height.
func TextOrigin(r image.Rectangle, n, cellH int) image.Point {
	return image.Pt(r.Min.X+(r.Dx()-n*CharWidth)/2, r.Min.Y+(r.Dy()-cellH)/2)
}

// RightAligned places text of n characters against the right edge of r.
func RightAligned(r image.Rectangle, n, cellH int) image.Point {
	return image.Pt(r.Max.X-Margin-n*CharWidth, r.Min.Y+(r.Dy()-cellH)/2)
}
