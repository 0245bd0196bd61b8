package calc

import "fmt"

// Operator is the pending binary operation. The zero value means none.
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return ""
}

func (o Operator) apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	}
	return b
}

// Unary is a single-operand function applied to the display.
type Unary int

const (
	SquareRoot Unary = iota
	Log10
)

func (u Unary) String() string {
	if u == Log10 {
		return "log"
	}
	return "√"
}

// Kind tags a Command.
type Kind int

const (
	KindDigit Kind = iota
	KindClear
	KindBackspace
	KindEquals
	KindOperator
	KindSqrt
	KindLog10
	KindClose
)

// Command is one button press. Char is set for KindDigit, Op for KindOperator.
type Command struct {
	Kind Kind
	Char rune
	Op   Operator
}

func Digit(c rune) Command { return Command{Kind: KindDigit, Char: c} }

func SetOp(op Operator) Command { return Command{Kind: KindOperator, Op: op} }

func Simple(k Kind) Command { return Command{Kind: k} }

func (c Command) String() string { return c.Label() }

// IsClose reports whether c asks the front end to exit.
func (c Command) IsClose() bool { return c.Kind == KindClose }

// Label is the text of the button that produces c.
func (c Command) Label() string {
	switch c.Kind {
	case KindDigit:
		return string(c.Char)
	case KindClear:
		return "Cls"
	case KindBackspace:
		return "Bck"
	case KindEquals:
		return "="
	case KindOperator:
		return c.Op.String()
	case KindSqrt:
		return SquareRoot.String()
	case KindLog10:
		return Log10.String()
	case KindClose:
		return "Close"
	}
	return ""
}

// ParseLabel maps a button label to its command.
func ParseLabel(label string) (Command, error) {
	switch label {
	case "Cls":
		return Simple(KindClear), nil
	case "Bck":
		return Simple(KindBackspace), nil
	case "Close":
		return Simple(KindClose), nil
	case "=":
		return Simple(KindEquals), nil
	case "+":
		return SetOp(Add), nil
	case "-":
		return SetOp(Subtract), nil
	case "*":
		return SetOp(Multiply), nil
	case "/":
		return SetOp(Divide), nil
	case "√", "sqrt":
		return Simple(KindSqrt), nil
	case "log":
		return Simple(KindLog10), nil
	}
	if r := []rune(label); len(r) == 1 && (r[0] == '.' || (r[0] >= '0' && r[0] <= '9')) {
		return Digit(r[0]), nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}
