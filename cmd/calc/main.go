package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/calc/internal/cli"
	"github.com/idilsaglam/calc/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", os.Getenv("CALC_THEME"), "color theme: classic, neon or mono (env CALC_THEME)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	forceColor := flag.Bool("color", false, "force colored output even when not a terminal")
	noTape := flag.Bool("no-tape", false, "do not read or write the tape file (env CALC_TAPE sets its path)")
	flag.Parse()

	ui.SetColorForcing(*forceColor, *noColor)
	ui.SetTheme(*theme)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		NoTape: *noTape,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
