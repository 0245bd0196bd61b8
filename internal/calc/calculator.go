package calc

import (
	"time"

	"github.com/idilsaglam/calc/internal/model"
)

// Calculator owns one State and keeps a tape of the calculations it resolved.
type Calculator struct {
	state State
	tape  []model.Entry
	now   func() time.Time
}

func New() *Calculator {
	return &Calculator{now: time.Now}
}

func (c *Calculator) State() State    { return c.state }
func (c *Calculator) Display() string { return c.state.display }

// Tape returns the entries recorded since the calculator was created.
func (c *Calculator) Tape() []model.Entry {
	out := make([]model.Entry, len(c.tape))
	copy(out, c.tape)
	return out
}

// Do applies cmd. On error the state is left as it was.
func (c *Calculator) Do(cmd Command) error {
	before := c.state
	next, err := Apply(before, cmd)
	if err != nil {
		return err
	}
	c.state = next
	if e, ok := record(before, next, cmd); ok {
		e.At = c.now()
		c.tape = append(c.tape, e)
	}
	return nil
}

// Press applies the command for a button label.
func (c *Calculator) Press(label string) error {
	cmd, err := ParseLabel(label)
	if err != nil {
		return err
	}
	return c.Do(cmd)
}

// record describes the calculation cmd performed, if it is one worth keeping:
// a resolved binary operation or a unary function.
func record(before, after State, cmd Command) (model.Entry, bool) {
	switch cmd.Kind {
	case KindSqrt:
		return model.Entry{Expr: "√" + before.display, Result: after.display}, true
	case KindLog10:
		return model.Entry{Expr: "log " + before.display, Result: after.display}, true
	case KindEquals, KindOperator:
		if before.op == NoOperator {
			return model.Entry{}, false
		}
	default:
		return model.Entry{}, false
	}
	result := after.display
	if cmd.Kind == KindOperator {
		// the intermediate result was moved into the stored operand
		result = truncate(FormatResult(after.operand))
	}
	expr := FormatResult(before.operand) + " " + before.op.String() + " " + before.display
	return model.Entry{Expr: expr, Result: result}, true
}
