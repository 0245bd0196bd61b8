//go:build cgo

package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/idilsaglam/calc/internal/calc"
	"github.com/idilsaglam/calc/internal/model"
	"github.com/idilsaglam/calc/internal/window/layout"
)

const debugCellH = 16

var (
	bg        = color.RGBA{0x22, 0x22, 0x22, 0xff}
	buttonBG  = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	pressedBG = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	displayBG = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Run opens the calculator window and blocks until it closes. It returns
// the tape entries recorded while it was open.
func Run() ([]model.Entry, error) {
	g := &game{calc: calc.New()}
	w, h := layout.Size()
	ebiten.SetWindowTitle("Calculator")
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return g.calc.Tape(), err
}

type game struct {
	calc    *calc.Calculator
	pressed calc.Cell // last button pressed, drawn darker
	down    bool
	err     string
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c, ok := layout.Hit(ebiten.CursorPosition()); ok {
			if g.press(calc.LabelAt(c)) {
				return ebiten.Termination
			}
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if g.press(string(r)) {
			return ebiten.Termination
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.press("=")
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.press("Bck")
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.press("Cls")
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

// press runs the button with label and reports whether it was Close.
func (g *game) press(label string) bool {
	cmd, err := calc.ParseLabel(label)
	if err != nil {
		return false
	}
	if c, ok := calc.Find(cmd.Label()); ok {
		g.pressed, g.down = c, true
	}
	if cmd.IsClose() {
		return true
	}
	if err := g.calc.Do(cmd); err != nil {
		g.err = err.Error()
		return false
	}
	g.err = ""
	return false
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bg)

	d := layout.Display()
	fillRect(screen, d, displayBG)
	text := g.calc.Display()
	if g.err != "" {
		text = "Error"
	}
	at := layout.RightAligned(d, len(text), debugCellH)
	ebitenutil.DebugPrintAt(screen, text, at.X, at.Y)

	for r, row := range calc.Grid {
		for col, label := range row {
			if label == "" {
				continue
			}
			c := calc.Cell{Row: r, Col: col}
			rect := layout.Button(c)
			fill := buttonBG
			if g.down && c == g.pressed {
				fill = pressedBG
			}
			fillRect(screen, rect, fill)
			caption := layout.Caption(label)
			at := layout.TextOrigin(rect, len(caption), debugCellH)
			ebitenutil.DebugPrintAt(screen, caption, at.X, at.Y)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layout.Size()
}
