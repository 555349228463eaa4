package emulator

import (
	"errors"

	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("%v on line %d", err.Err, err.LineNo)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrOverride is a malformed register override argument.
type ErrOverride struct {
	Arg string
	Err error
}

func (err *ErrOverride) Error() string {
	if err.Err != nil {
		return f("Unable to parse arg: `%v`: %v", err.Arg, err.Err)
	}
	return f("Unable to parse arg: `%v`", err.Arg)
}

func (err *ErrOverride) Unwrap() error {
	return err.Err
}
