// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// commentMarkers are checked in order; each cuts the line at its first occurrence.
var commentMarkers = []string{"//", ";", "#"}

// opMap maps mnemonics to instruction kinds.
var opMap = map[string]Op{
	"zero":  OP_ZERO,
	"debug": OP_DEBUG,
	"mov":   OP_MOV,
	"add":   OP_ADD,
	"sub":   OP_SUB,
	"inc":   OP_INC,
	"dec":   OP_DEC,
	"and":   OP_AND,
	"or":    OP_OR,
	"xor":   OP_XOR,
	"not":   OP_NOT,
	"shl":   OP_SHL,
	"shr":   OP_SHR,
	"jz":    OP_JZ,
	"jnz":   OP_JNZ,
	"j":     OP_J,
}

// Assembler is a single pass assembler for the regasm instruction set.
type Assembler struct {
	Verbose      bool          // If set, verbosely logs the assembler actions.
	Instructions []Instruction // List of generated instructions.

	Label map[string]int // Map of jump labels to instruction indexes.
}

// ParseRegister parses a register name of the form 'r<N>'.
func ParseRegister(word string) (reg Register, err error) {
	digits, ok := strings.CutPrefix(word, "r")
	if !ok {
		err = ErrParseRegister(word)
		return
	}

	n, perr := strconv.ParseUint(digits, 10, 64)
	if perr != nil {
		err = ErrParseRegister(word)
		return
	}

	if n >= REGISTER_COUNT {
		err = ErrRegisterMissing(n)
		return
	}

	reg = Register(n)
	return
}

// stripComment removes any trailing comment from a line.
func stripComment(line string) string {
	for _, marker := range commentMarkers {
		line, _, _ = strings.Cut(line, marker)
	}

	return line
}

// operands is a cursor over the comma separated operands of a line.
type operands struct {
	words []string
}

// splitOperands joins the words following the mnemonic and splits them on commas.
func splitOperands(words []string) (ops *operands) {
	ops = &operands{}

	joined := strings.Join(words, "")
	if len(joined) != 0 {
		ops.words = strings.Split(joined, ",")
	}

	return
}

// next returns the next operand, if present and non-empty.
func (ops *operands) next() (word string, err error) {
	if len(ops.words) == 0 {
		err = ErrOpcodeValueMissing
		return
	}

	word = ops.words[0]
	ops.words = ops.words[1:]

	if len(word) == 0 {
		err = ErrOpcodeValueMissing
	}

	return
}

func (ops *operands) reg() (reg Register, err error) {
	word, err := ops.next()
	if err != nil {
		return
	}

	return ParseRegister(word)
}

func (ops *operands) imm() (value uint64, err error) {
	word, err := ops.next()
	if err != nil {
		return
	}

	value, perr := strconv.ParseUint(word, 10, 64)
	if perr != nil {
		err = ErrParseNumber(word)
	}

	return
}

func (ops *operands) label() (label string, err error) {
	return ops.next()
}

// done verifies all operands were consumed.
func (ops *operands) done() (err error) {
	if len(ops.words) != 0 {
		err = ErrOpcodeExtraArgs
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.ParseLines(lines)
}

// ParseLines parses source lines into a Program.
//
// Every line yields exactly one instruction, so an instruction index is
// always the 0-based index of its source line.
func (asm *Assembler) ParseLines(lines []string) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Instructions = make([]Instruction, 0, len(lines))

	for _, line = range lines {
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var inst Instruction
		inst, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		asm.Instructions = append(asm.Instructions, inst)
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instructions),
		Label:        maps.Clone(asm.Label),
	}

	return
}

// parseLine parses a single line as an instruction.
func (asm *Assembler) parseLine(line string, lineno int) (inst Instruction, err error) {
	inst = Instruction{Op: OP_NOOP, LineNo: lineno}

	code := stripComment(strings.ToLower(line))

	words := strings.Fields(code)
	if len(words) == 0 {
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = asm.parseLabel(words, lineno-1)
		return
	}

	inst.Op = op
	ops := splitOperands(words[1:])

	switch op.Shape() {
	case SHAPE_NONE:
	case SHAPE_REG:
		inst.Dst, err = ops.reg()
	case SHAPE_REG_REG:
		inst.Dst, err = ops.reg()
		if err == nil {
			inst.Src1, err = ops.reg()
		}
	case SHAPE_REG_3:
		inst.Dst, err = ops.reg()
		if err == nil {
			inst.Src1, err = ops.reg()
		}
		if err == nil {
			inst.Src2, err = ops.reg()
		}
	case SHAPE_REG_IMM:
		inst.Dst, err = ops.reg()
		if err == nil {
			inst.Amount, err = ops.imm()
		}
	case SHAPE_LABEL:
		inst.Label, err = ops.label()
	}
	if err != nil {
		return
	}

	err = ops.done()
	return
}

// parseLabel records a '<name>:' declaration at the given instruction index.
func (asm *Assembler) parseLabel(words []string, index int) (err error) {
	name, rest, ok := strings.Cut(words[0], ":")
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(name) == 0 || len(rest) != 0 || len(words) > 1 {
		err = ErrLabelSyntax
		return
	}

	if asm.Verbose {
		if prior, dup := asm.Label[name]; dup {
			log.Printf("label %v: redefined, was %v", name, prior)
		}
	}

	asm.Label[name] = index
	return
}
