package watch

import (
	"errors"
	"strings"
)

// Op is one textual arithmetic step such as "+1:30", "-4343" or "0:23:03".
type Op struct {
	Negate bool
	Amount Duration
}

// ParseOp reads an operation: an optional '+' or '-' followed by either a
// whole number of seconds or a duration string containing ':'. A bare "3"
// is three seconds; write "3:00" for three hours.
func ParseOp(input string) (Op, error) {
	s := strings.TrimSpace(input)
	var op Op
	switch {
	case strings.HasPrefix(s, "+"):
		s = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "-"):
		op.Negate = true
		s = strings.TrimSpace(s[1:])
	}
	if s == "" {
		return Op{}, malformed(input, "", "", "empty operation")
	}

	if strings.Contains(s, ":") {
		if _, err := ParseDuration(s); err != nil {
			return Op{}, withInput(err, input)
		}
		op.Amount = DurationString(s)
		return op, nil
	}

	n, err := parseField(input, "seconds", s)
	if err != nil {
		return Op{}, err
	}
	op.Amount = Seconds(n)
	return op, nil
}

// MustParseOp is like ParseOp but panics on error.
func MustParseOp(input string) Op {
	op, err := ParseOp(input)
	if err != nil {
		panic(err)
	}
	return op
}

// Apply moves w by the operation.
func (o Op) Apply(w *Watch) error {
	if o.Amount == nil {
		return nil
	}
	if o.Negate {
		return w.Sub(o.Amount)
	}
	return w.Add(o.Amount)
}

func (o Op) String() string {
	if o.Amount == nil {
		return "+0"
	}
	sign := "+"
	if o.Negate {
		sign = "-"
	}
	return sign + o.Amount.String()
}

// ApplyAll applies ops in order and stops at the first failure, returning
// the index of the failing op with the error.
func ApplyAll(w *Watch, ops ...Op) (int, error) {
	for i, op := range ops {
		if err := op.Apply(w); err != nil {
			return i, err
		}
	}
	return len(ops), nil
}

// withInput reports a nested parse error against the caller's full input.
func withInput(err error, input string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		cp := *pe
		cp.Input = input
		return &cp
	}
	return err
}
