package emulator

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regasm/cpu"
)

// ErrParseExpression is a $(...) override value that is not an integer expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// parenEval evaluates a $(...) expression to its 64-bit pattern.
func parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "override"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_uint64, ok := st_int.Uint64(); ok {
		value = st_uint64
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint64(st_int64)
	return
}

// parseValue parses an override value as unsigned, then signed, decimal.
// Signed values keep their two's complement bit pattern.
func parseValue(word string) (value uint64, err error) {
	if expr, ok := strings.CutPrefix(word, "$("); ok && strings.HasSuffix(expr, ")") {
		return parenEval(expr[:len(expr)-1])
	}

	value, err = strconv.ParseUint(word, 10, 64)
	if err == nil {
		return
	}

	v64, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = cpu.ErrParseNumber(word)
		return
	}

	value = uint64(v64)
	return
}

// ParseOverride parses a register override of the form 'r<N>=<value>'.
func ParseOverride(arg string) (reg cpu.Register, value uint64, err error) {
	defer func() {
		if err != nil {
			err = &ErrOverride{Arg: arg, Err: err}
		}
	}()

	name, word, ok := strings.Cut(arg, "=")
	if !ok {
		err = cpu.ErrOpcodeValueMissing
		return
	}

	value, err = parseValue(word)
	if err != nil {
		return
	}

	reg, err = cpu.ParseRegister(strings.ToLower(name))
	return
}

// Override sets registers from a list of 'r<N>=<value>' arguments.
// No register is changed unless every argument is valid.
func (emu *Emulator) Override(args ...string) (err error) {
	regs := make([]cpu.Register, len(args))
	values := make([]uint64, len(args))

	for n, arg := range args {
		regs[n], values[n], err = ParseOverride(arg)
		if err != nil {
			return
		}
	}

	for n, reg := range regs {
		err = emu.Cpu.SetRegister(reg, values[n])
		if err != nil {
			return
		}
	}

	return
}
