package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/calc/internal/model"
	"github.com/idilsaglam/calc/internal/store/jsonstore"
	"github.com/idilsaglam/calc/internal/ui"
)

// capture redirects the runner's stdout and points the tape at a temp file.
func capture(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	ui.SetColorForcing(false, true)
	t.Cleanup(func() { ui.SetColorForcing(false, false) })

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	p := filepath.Join(t.TempDir(), "tape.json")
	t.Setenv("CALC_TAPE", p)
	return &buf, p
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"7", "+", "8", "="}, "15.0"},
		{[]string{"9", "sqrt"}, "3.0"},
		{[]string{"100", "log"}, "2.0"},
		{[]string{"5", "/", "0", "="}, "inf"},
		{[]string{"4", "Bck"}, ""},
		{[]string{"3", "+", "4", "*", "2", "="}, "14.0"},
		{[]string{"12.5", "*", "2", "="}, "25.0"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _ := capture(t)
			if code := Run(append([]string{"eval"}, tt.args...), Options{}); code != 0 {
				t.Fatalf("exit code %d", code)
			}
			if got := strings.TrimSuffix(out.String(), "\n"); got != tt.want {
				t.Errorf("eval %v should print %q, got %q", tt.args, tt.want, got)
			}
		})
	}
}

func TestEvalRecordsTape(t *testing.T) {
	_, p := capture(t)
	if code := Run([]string{"eval", "7", "+", "8", "="}, Options{}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	entries, err := jsonstore.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Expr != "7.0 + 8" || entries[0].Result != "15.0" {
		t.Errorf("unexpected tape %+v", entries)
	}
}

func TestEvalNoTape(t *testing.T) {
	_, p := capture(t)
	if code := Run([]string{"eval", "9", "√"}, Options{NoTape: true}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	entries, _ := jsonstore.Load(p)
	if len(entries) != 0 {
		t.Errorf("-no-tape should not write, got %+v", entries)
	}
}

func TestEvalErrors(t *testing.T) {
	capture(t)
	if code := Run([]string{"eval"}, Options{}); code != 2 {
		t.Errorf("missing keys should be a usage error, got %d", code)
	}
	if code := Run([]string{"eval", "7", "%", "2"}, Options{}); code != 2 {
		t.Errorf("unknown button should be a usage error, got %d", code)
	}
	if code := Run([]string{"eval", "+"}, Options{}); code != 1 {
		t.Errorf("operator on an empty display should fail, got %d", code)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	capture(t)
	if code := Run([]string{"frobnicate"}, Options{}); code != 2 {
		t.Errorf("unknown subcommand should return 2, got %d", code)
	}
}

func TestTapeShowAndClear(t *testing.T) {
	out, p := capture(t)
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	if err := jsonstore.Save(p, []model.Entry{{Expr: "7.0 + 8", Result: "15.0", At: at}}); err != nil {
		t.Fatal(err)
	}
	if code := Run([]string{"tape"}, Options{}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "7.0 + 8 = 15.0") {
		t.Errorf("tape should list the entry, got\n%s", out.String())
	}
	if code := Run([]string{"tape", "clear"}, Options{}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	entries, _ := jsonstore.Load(p)
	if len(entries) != 0 {
		t.Errorf("tape should be empty after clear, got %+v", entries)
	}
	if code := Run([]string{"tape", "bogus"}, Options{}); code != 2 {
		t.Errorf("bad tape args should be a usage error, got %d", code)
	}
}

func TestTUISavesSession(t *testing.T) {
	_, p := capture(t)
	if err := jsonstore.Save(p, []model.Entry{{Expr: "1.0 + 1", Result: "2.0"}}); err != nil {
		t.Fatal(err)
	}
	var gotHistory []model.Entry
	old := runTUI
	runTUI = func(history []model.Entry, _ ui.Theme) ([]model.Entry, error) {
		gotHistory = history
		return []model.Entry{{Expr: "√9", Result: "3.0"}}, nil
	}
	defer func() { runTUI = old }()

	if code := Run(nil, Options{}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if len(gotHistory) != 1 {
		t.Errorf("tui should receive the stored tape, got %+v", gotHistory)
	}
	entries, _ := jsonstore.Load(p)
	if len(entries) != 2 || entries[1].Expr != "√9" {
		t.Errorf("session should be appended, got %+v", entries)
	}
}

func TestWindowError(t *testing.T) {
	capture(t)
	old := runWindow
	runWindow = func() ([]model.Entry, error) { return nil, errors.New("no display") }
	defer func() { runWindow = old }()

	if code := Run([]string{"window"}, Options{}); code != 1 {
		t.Errorf("window failure should return 1, got %d", code)
	}
}
