package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxDisplay is the width of the display in characters.
const MaxDisplay = 15

// State is the whole calculator: the display text plus at most one pending
// operation. The zero value is a cleared calculator.
//
// Every operation returns a new State. When an operation fails the receiver
// is returned unchanged.
type State struct {
	display string
	op      Operator
	operand float64 // left-hand value, valid only while op != NoOperator
}

// NewState returns a state showing display with nothing pending.
func NewState(display string) State {
	return State{display: truncate(display)}
}

func (s State) Display() string { return s.display }

// Pending returns the pending operator and its stored left operand.
func (s State) Pending() (Operator, float64, bool) {
	if s.op == NoOperator {
		return NoOperator, 0, false
	}
	return s.op, s.operand, true
}

// AppendCharacter adds c unless the display is already full. The result is
// not checked for being a well-formed number.
func (s State) AppendCharacter(c rune) State {
	if utf8.RuneCountInString(s.display) >= MaxDisplay {
		return s
	}
	s.display += string(c)
	return s
}

func (s State) Clear() State { return State{} }

func (s State) Backspace() State {
	if s.display == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.display)
	s.display = s.display[:len(s.display)-size]
	return s
}

// SetOperator resolves any pending operation first, then stores the display
// as the left operand and empties the display.
func (s State) SetOperator(op Operator) (State, error) {
	next := s
	if next.op != NoOperator {
		var err error
		if next, err = next.Evaluate(); err != nil {
			return s, err
		}
	}
	v, err := next.value()
	if err != nil {
		return s, err
	}
	next.op, next.operand, next.display = op, v, ""
	return next, nil
}

// Evaluate applies the pending operation to the display. With nothing
// pending the display value is shown again as a result.
func (s State) Evaluate() (State, error) {
	v, err := s.value()
	if err != nil {
		return s, err
	}
	result := s.op.apply(s.operand, v)
	return State{display: truncate(FormatResult(result))}, nil
}

// ApplyUnary replaces the display with fn(display). The pending operation,
// if any, is kept.
func (s State) ApplyUnary(fn Unary) (State, error) {
	v, err := s.value()
	if err != nil {
		return s, err
	}
	var result float64
	switch fn {
	case Log10:
		result = math.Log10(v)
	default:
		result = math.Sqrt(v)
	}
	s.display = truncate(FormatResult(result))
	return s, nil
}

// Apply runs cmd against s. Close does not touch the accumulator.
func Apply(s State, cmd Command) (State, error) {
	switch cmd.Kind {
	case KindDigit:
		return s.AppendCharacter(cmd.Char), nil
	case KindClear:
		return s.Clear(), nil
	case KindBackspace:
		return s.Backspace(), nil
	case KindEquals:
		return s.Evaluate()
	case KindOperator:
		return s.SetOperator(cmd.Op)
	case KindSqrt:
		return s.ApplyUnary(SquareRoot)
	case KindLog10:
		return s.ApplyUnary(Log10)
	}
	return s, nil
}

func (s State) value() (float64, error) {
	v, err := strconv.ParseFloat(s.display, 64)
	if err != nil {
		return 0, &ParseError{Display: s.display, Err: err}
	}
	return v, nil
}

// FormatResult renders f the way the display shows results: integral values
// keep a trailing ".0", exponents are used below 1e-4 and from 1e16 up, and
// special values print as inf, -inf and nan.
func FormatResult(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(out, '.') {
		out += ".0"
	}
	return out
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxDisplay {
		return s
	}
	return string([]rune(s)[:MaxDisplay])
}
