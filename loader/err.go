package loader

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Image format errors
	ErrBinaryDigits = errors.New(f("not a binary number"))
	ErrBinaryWidth  = errors.New(f("not 8 binary digits"))
	ErrExtraFields  = errors.New(f("unexpected text after instruction"))
	ErrImageSize    = errors.New(f("image exceeds memory"))
	ErrFormat       = errors.New(f("unknown program format"))
)

// ErrLoad is a program load failure, with the offending line when known.
type ErrLoad struct {
	Name   string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLoad) Error() string {
	switch {
	case err.LineNo > 0 && len(err.Name) > 0:
		return f("%v: line %d '%v' %v", err.Name, err.LineNo, err.Line, err.Err)
	case err.LineNo > 0:
		return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
	case len(err.Name) > 0:
		return f("%v: %v", err.Name, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
