package watch

import (
	"errors"
	"fmt"
)

// Kind classifies why a time or duration string was rejected.
type Kind int

const (
	// MalformedInput means the string does not have a recognized shape:
	// wrong number of ':' separated fields or a non-numeric field.
	MalformedInput Kind = iota + 1
	// OutOfRange means a numeric field is outside the bounds of its unit.
	OutOfRange
	// UnrecognizedMeridiem means a trailing designator is not AM or PM.
	UnrecognizedMeridiem
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case OutOfRange:
		return "out of range"
	case UnrecognizedMeridiem:
		return "unrecognized meridiem"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching on a ParseError's kind.
var (
	ErrMalformedInput       = errors.New("malformed input")
	ErrOutOfRange           = errors.New("out of range")
	ErrUnrecognizedMeridiem = errors.New("unrecognized meridiem")
)

// ParseError is returned by every parsing entry point in this package.
type ParseError struct {
	Kind  Kind
	Input string // the full string given by the caller
	Field string // "hours", "minutes", "seconds", "meridiem" or "" for shape errors
	Value string // offending token
	Msg   string
}

func (e *ParseError) Error() string {
	var detail string
	switch {
	case e.Field != "" && e.Value != "":
		detail = fmt.Sprintf("%s %q", e.Field, e.Value)
	case e.Value != "":
		detail = fmt.Sprintf("%q", e.Value)
	}
	msg := fmt.Sprintf("parse %q: %s", e.Input, e.Kind)
	if detail != "" {
		msg += ": " + detail
	}
	if e.Msg != "" {
		msg += " (" + e.Msg + ")"
	}
	return msg
}

// Unwrap exposes the sentinel for the error kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case MalformedInput:
		return ErrMalformedInput
	case OutOfRange:
		return ErrOutOfRange
	case UnrecognizedMeridiem:
		return ErrUnrecognizedMeridiem
	default:
		return nil
	}
}

// KindOf reports the Kind of a ParseError anywhere in err's chain, or 0.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func malformed(input, field, value, msg string) *ParseError {
	return &ParseError{Kind: MalformedInput, Input: input, Field: field, Value: value, Msg: msg}
}

func outOfRange(input, field, value, msg string) *ParseError {
	return &ParseError{Kind: OutOfRange, Input: input, Field: field, Value: value, Msg: msg}
}
