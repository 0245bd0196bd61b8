package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestFPanelMono(t *testing.T) {
	SetTheme("mono")
	defer func() { SetTheme(""); SetColorForcing(false, false) }()

	var buf bytes.Buffer
	FPanel(&buf, []string{"ab", "abcd"})
	want := "+------+\n| ab   |\n| abcd |\n+------+\n"
	if buf.String() != want {
		t.Errorf("panel should be\n%s\ngot\n%s", want, buf.String())
	}
}

func TestFPanelIgnoresEscapes(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)

	var buf bytes.Buffer
	FPanel(&buf, []string{C(fgRed, "xy"), "xyz"})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if w := visibleWidth(ln); w != 7 {
			t.Errorf("line %q has visible width %d, want 7", ln, w)
		}
	}
}

func TestTapeLine(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	SetTheme("classic")

	got := TapeLine("7.0 + 8", "15.0", 20)
	if got != "7.0 + 8 =       15.0" {
		t.Errorf("got %q", got)
	}
	if got := TapeLine("a very long expression", "1.0", 5); got != "a very long expression = 1.0" {
		t.Errorf("narrow width should keep one space, got %q", got)
	}
}

func TestStatusLines(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	defer func() { stdout, stderr = oldOut, oldErr }()

	OK("saved")
	Fail("boom")
	if out.String() != "✔ saved\n" {
		t.Errorf("OK wrote %q", out.String())
	}
	if errOut.String() != "✖ boom\n" {
		t.Errorf("Fail wrote %q", errOut.String())
	}
}
