package emulator

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
// LineNo is zero when no listing covers the faulting address.
type ErrRuntime struct {
	LineNo int
	Pc     uint16
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc 0x%02x %v", err.Pc, err.Err)
	}
	return f("line %d pc 0x%02x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
