package cpu

import (
	"errors"

	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrTrap      = errors.New(f("debug trap"))
	ErrPcInvalid = errors.New(f("program counter invalid"))

	// Assembler errors
	ErrInstructionInvalid = errors.New(f("garbage instruction"))
	ErrOpcodeExtraArgs    = errors.New(f("garbage following instruction"))
	ErrOpcodeValueMissing = errors.New(f("operand missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("unknown label `%v`", string(el))
}

// ErrRegisterMissing is a register index outside of the register file.
type ErrRegisterMissing uint64

func (er ErrRegisterMissing) Error() string {
	return f("r%v does not exist", uint64(er))
}

func (er ErrRegisterMissing) Is(err error) bool {
	return err == ErrRegisterInvalid
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}
