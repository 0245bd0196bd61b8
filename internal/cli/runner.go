package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/calc/internal/calc"
	"github.com/idilsaglam/calc/internal/model"
	"github.com/idilsaglam/calc/internal/store/jsonstore"
	"github.com/idilsaglam/calc/internal/tui"
	"github.com/idilsaglam/calc/internal/ui"
	"github.com/idilsaglam/calc/internal/window"
)

// Options tune behavior from root flags.
type Options struct {
	NoTape bool // do not read or write the tape file
}

// front ends, swapped out in tests
var (
	runTUI    = tui.Run
	runWindow = window.Run
	stdout    io.Writer = os.Stdout
)

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doTUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "tui":
		return doTUI(opt)

	case "window":
		return doWindow(opt)

	case "eval":
		if len(a) == 0 {
			ui.Fail("usage: calc eval <keys...>")
			return 2
		}
		return doEval(a, opt)

	case "tape":
		if len(a) == 0 {
			return doTape()
		}
		if len(a) == 1 && a[0] == "clear" {
			return doTapeClear()
		}
		ui.Fail("usage: calc tape [clear]")
		return 2
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(stdout, `calc - a tiny calculator

Usage:
  calc [subcommand] [args]

Subcommands:
  (none) | tui       Interactive calculator in the terminal
  window             Calculator in a desktop window
  eval <keys...>     Press buttons in order and print the display
  tape [clear]       Show (or clear) the tape of past calculations

Buttons:
  0-9 .  + - * /  =  Cls  Bck  sqrt  log

Examples:
  calc eval 7 + 8 =
  calc eval 3 + 4 '*' 2 =
  calc eval 100 log
  calc tape
`)
}

// ---------------------------------------------------
// Front ends
// ---------------------------------------------------

func doTUI(opt Options) int {
	history, code := loadTape(opt)
	if code != 0 {
		return code
	}
	session, err := runTUI(history, ui.Current())
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return saveAndReport(session, opt)
}

func doWindow(opt Options) int {
	session, err := runWindow()
	if err != nil {
		ui.Fail("window: " + err.Error())
		return 1
	}
	return saveAndReport(session, opt)
}

// doEval presses every key in a. Numeric arguments are typed digit by digit.
func doEval(a []string, opt Options) int {
	c := calc.New()
	for _, k := range a {
		if err := pressArg(c, k); err != nil {
			ui.Fail("eval: " + err.Error())
			if errors.Is(err, calc.ErrUnknownLabel) {
				ui.Hint("Hint: run `calc help` to see the buttons")
				return 2
			}
			return 1
		}
	}
	fmt.Fprintln(stdout, c.Display())
	return saveTape(c.Tape(), opt)
}

func pressArg(c *calc.Calculator, k string) error {
	if _, err := calc.ParseLabel(k); err == nil {
		return c.Press(k)
	}
	if !isNumber(k) {
		return fmt.Errorf("%w: %q", calc.ErrUnknownLabel, k)
	}
	for _, r := range k {
		if err := c.Do(calc.Digit(r)); err != nil {
			return err
		}
	}
	return nil
}

func isNumber(s string) bool {
	return s != "" && strings.Trim(s, "0123456789.") == ""
}

// ---------------------------------------------------
// Tape subcommands
// ---------------------------------------------------

func doTape() int {
	p, err := jsonstore.DataPath()
	if err != nil {
		ui.Fail("tape: " + err.Error())
		return 1
	}
	entries, err := jsonstore.Load(p)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if len(entries) == 0 {
		fmt.Fprintln(stdout, ui.C(ui.Current().Muted, "tape is empty"))
		return 0
	}
	width := 0
	for _, e := range entries {
		width = max(width, len([]rune(e.Expr))+len([]rune(e.Result))+3)
	}
	lines := make([]string, 0, len(entries)+2)
	t := ui.Current()
	header := fmt.Sprintf("%s   %s", ui.C(t.Title, "Tape"), ui.C(t.Accent, fmt.Sprintf("%d entries", len(entries))))
	lines = append(lines, header, "")
	for _, e := range entries {
		lines = append(lines, ui.TapeLine(e.Expr, e.Result, width))
	}
	ui.FPanel(stdout, lines)
	return 0
}

func doTapeClear() int {
	p, err := jsonstore.DataPath()
	if err != nil {
		ui.Fail("tape: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(p, nil); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("tape cleared")
	return 0
}

func loadTape(opt Options) ([]model.Entry, int) {
	if opt.NoTape {
		return nil, 0
	}
	p, err := jsonstore.DataPath()
	if err != nil {
		ui.Fail("tape: " + err.Error())
		return nil, 1
	}
	entries, err := jsonstore.Load(p)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, 1
	}
	return entries, 0
}

func saveAndReport(session []model.Entry, opt Options) int {
	code := saveTape(session, opt)
	if code == 0 && !opt.NoTape && len(session) > 0 {
		ui.OK(fmt.Sprintf("saved %d tape entries", len(session)))
	}
	return code
}

func saveTape(session []model.Entry, opt Options) int {
	if opt.NoTape || len(session) == 0 {
		return 0
	}
	p, err := jsonstore.DataPath()
	if err != nil {
		ui.Fail("tape: " + err.Error())
		return 1
	}
	if err := jsonstore.Append(p, session); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	return 0
}
