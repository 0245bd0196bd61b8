package calc

import (
	"testing"
	"time"
)

func TestCalculatorTape(t *testing.T) {
	c := New()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return at }

	for _, k := range []string{"3", "+", "4", "*", "2", "=", "Cls", "9", "√", "=", "Cls", "1", "0", "0", "log"} {
		if err := c.Press(k); err != nil {
			t.Fatalf("press %q: %v", k, err)
		}
	}

	want := []struct{ expr, result string }{
		{"3.0 + 4", "7.0"},
		{"7.0 * 2", "14.0"},
		{"√9", "3.0"},
		{"log 100", "2.0"},
	}
	tape := c.Tape()
	if len(tape) != len(want) {
		t.Fatalf("tape should have %d entries, got %d: %+v", len(want), len(tape), tape)
	}
	for i, w := range want {
		if tape[i].Expr != w.expr || tape[i].Result != w.result {
			t.Errorf("entry %d should be %q = %q, got %q = %q", i, w.expr, w.result, tape[i].Expr, tape[i].Result)
		}
		if !tape[i].At.Equal(at) {
			t.Errorf("entry %d has time %v", i, tape[i].At)
		}
	}
}

func TestCalculatorErrorKeepsState(t *testing.T) {
	c := New()
	if err := c.Press("+"); err == nil {
		t.Fatal("operator on empty display should fail")
	}
	if err := c.Press("nope"); err == nil {
		t.Fatal("unknown label should fail")
	}
	if c.State() != (State{}) {
		t.Errorf("state should be untouched, got %+v", c.State())
	}
	if len(c.Tape()) != 0 {
		t.Error("failed commands should not be recorded")
	}
}
