package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Equal(0, len(prog.Label))
}

func instEqual(t *testing.T, expected, insts []Instruction) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(insts))
	if len(expected) == len(insts) {
		for n := range len(expected) {
			assert.Equal(expected[n], insts[n], "index %v", n)
		}
	}
}

func TestAssemblerShapes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"zero r0",
		"debug",
		"mov r1, r2",
		"add r3, r4, r5",
		"sub r6, r7, r0",
		"inc r1",
		"dec r2",
		"and r0, r1, r2",
		"or r3, r4, r5",
		"xor r5, r6, r7",
		"not r4",
		"shl r3, 4",
		"shr r2, 18446744073709551615",
		"jz top",
		"jnz top",
		"j top",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Instruction{
		{Op: OP_ZERO, LineNo: 1, Dst: 0},
		{Op: OP_DEBUG, LineNo: 2},
		{Op: OP_MOV, LineNo: 3, Dst: 1, Src1: 2},
		{Op: OP_ADD, LineNo: 4, Dst: 3, Src1: 4, Src2: 5},
		{Op: OP_SUB, LineNo: 5, Dst: 6, Src1: 7, Src2: 0},
		{Op: OP_INC, LineNo: 6, Dst: 1},
		{Op: OP_DEC, LineNo: 7, Dst: 2},
		{Op: OP_AND, LineNo: 8, Dst: 0, Src1: 1, Src2: 2},
		{Op: OP_OR, LineNo: 9, Dst: 3, Src1: 4, Src2: 5},
		{Op: OP_XOR, LineNo: 10, Dst: 5, Src1: 6, Src2: 7},
		{Op: OP_NOT, LineNo: 11, Dst: 4},
		{Op: OP_SHL, LineNo: 12, Dst: 3, Amount: 4},
		{Op: OP_SHR, LineNo: 13, Dst: 2, Amount: 0xffffffffffffffff},
		{Op: OP_JZ, LineNo: 14, Label: "top"},
		{Op: OP_JNZ, LineNo: 15, Label: "top"},
		{Op: OP_J, LineNo: 16, Label: "top"},
	}

	instEqual(t, expected, prog.Instructions)
}

func TestAssemblerWhitespace(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"ADD R0,R1,R2",
		"  add\tr0 , r1,  r2  ",
		"add r0 ,r1 ,r2",
		"Add r0, r 1, r2",
	}

	prog, err := asm.ParseLines(program)
	assert.NoError(err)

	expected := Instruction{Op: OP_ADD, Dst: 0, Src1: 1, Src2: 2}
	for n, inst := range prog.Instructions {
		expected.LineNo = n + 1
		assert.Equal(expected, inst, program[n])
	}
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		line string
		inst Instruction
	}){
		{"inc r1 // comment", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1 ; comment", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1 # comment", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1 # first // second", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1 ; first # second", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1 // first ; second # third", Instruction{Op: OP_INC, Dst: 1}},
		{"inc r1#inc r2", Instruction{Op: OP_INC, Dst: 1}},
		{"// inc r1", Instruction{Op: OP_NOOP}},
		{"; inc r1", Instruction{Op: OP_NOOP}},
		{"# inc r1", Instruction{Op: OP_NOOP}},
		{"", Instruction{Op: OP_NOOP}},
		{"   \t ", Instruction{Op: OP_NOOP}},
	}

	for _, entry := range table {
		prog, err := asm.ParseLines([]string{entry.line})
		assert.NoError(err, entry.line)
		if err != nil {
			continue
		}
		entry.inst.LineNo = 1
		instEqual(t, []Instruction{entry.inst}, prog.Instructions)
	}
}

func TestAssemblerNoop(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("; only a comment\n\n"))
	assert.NoError(err)

	expected := []Instruction{
		{Op: OP_NOOP, LineNo: 1},
		{Op: OP_NOOP, LineNo: 2},
	}

	instEqual(t, expected, prog.Instructions)
	assert.Equal(0, len(prog.Label))
}

func TestAssemblerCRLF(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("inc r0\r\nloop:\r\ndec r0\r\n"))
	assert.NoError(err)

	assert.Equal(3, prog.Len())
	assert.Equal(map[string]int{"loop": 1}, prog.Label)
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"j Forward",
		"top:",
		"inc r0",
		"",
		"FORWARD:   ; comment",
		"  again:",
		"jnz top",
		"Again:",
	}

	prog, err := asm.ParseLines(program)
	assert.NoError(err)

	assert.Equal(len(program), prog.Len())
	assert.Equal(map[string]int{
		"top":     1,
		"forward": 4,
		"again":   7,
	}, prog.Label)

	assert.Equal("forward", prog.Instructions[0].Label)
	assert.Equal(OP_NOOP, prog.Instructions[1].Op)
	assert.Equal(OP_NOOP, prog.Instructions[4].Op)
	assert.Equal(OP_NOOP, prog.Instructions[7].Op)
}

func TestAssemblerLabelUndeclared(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.ParseLines([]string{"j nowhere"})
	assert.NoError(err)
	assert.Equal(1, prog.Len())

	_, err = prog.Resolve("nowhere")
	assert.Equal(ErrLabelMissing("nowhere"), err)
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	first, err := asm.ParseLines([]string{"a:", "j a"})
	assert.NoError(err)

	second, err := asm.ParseLines([]string{"b:"})
	assert.NoError(err)

	assert.Equal(map[string]int{"a": 0}, first.Label)
	assert.Equal(map[string]int{"b": 0}, second.Label)
	assert.Equal(2, first.Len())
	assert.Equal(1, second.Len())
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range REGISTER_COUNT {
		reg, err := ParseRegister(Register(n).String())
		assert.NoError(err)
		assert.Equal(Register(n), reg)
	}

	table := [](struct {
		word string
		err  error
	}){
		{"r8", ErrRegisterMissing(8)},
		{"r99", ErrRegisterMissing(99)},
		{"r", ErrParseRegister("r")},
		{"x1", ErrParseRegister("x1")},
		{"r-1", ErrParseRegister("r-1")},
		{"r1a", ErrParseRegister("r1a")},
		{"", ErrParseRegister("")},
	}

	for _, entry := range table {
		_, err := ParseRegister(entry.word)
		assert.Equal(entry.err, err, entry.word)
		assert.ErrorIs(err, ErrRegisterInvalid, entry.word)
	}
}

func TestAssemblerRegisterRange(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Every register operand position rejects r8.
	table := []string{
		"zero r8",
		"mov r8, r0",
		"mov r0, r8",
		"add r8, r0, r0",
		"add r0, r8, r0",
		"add r0, r0, r8",
		"sub r0, r0, r8",
		"and r0, r9, r0",
		"or r0, r0, r10",
		"xor r8, r0, r0",
		"inc r8",
		"dec r8",
		"not r8",
		"shl r8, 1",
		"shr r8, 1",
	}

	for _, line := range table {
		_, err := asm.ParseLines([]string{"", line})
		var se *ErrSyntax
		assert.True(errors.As(err, &se), line)
		if se != nil {
			assert.Equal(2, se.LineNo, line)
		}
		assert.ErrorIs(err, ErrRegisterInvalid, line)
	}
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"nop", 1, ErrInstructionInvalid},
		{"inc r0\nbogus r0", 2, ErrInstructionInvalid},
		{"label", 1, ErrInstructionInvalid},
		{":", 1, ErrLabelSyntax},
		{"loop: inc r0", 1, ErrLabelSyntax},
		{"loop:x", 1, ErrLabelSyntax},
		{"zero", 1, ErrOpcodeValueMissing},
		{"zero r0, r1", 1, ErrOpcodeExtraArgs},
		{"zero r0,", 1, ErrOpcodeExtraArgs},
		{"debug r0", 1, ErrOpcodeExtraArgs},
		{"mov r0", 1, ErrOpcodeValueMissing},
		{"mov r0,", 1, ErrOpcodeValueMissing},
		{"mov ,r0", 1, ErrOpcodeValueMissing},
		{"mov r0, r1, r2", 1, ErrOpcodeExtraArgs},
		{"add r0, r1", 1, ErrOpcodeValueMissing},
		{"add r0, r1, r2, r3", 1, ErrOpcodeExtraArgs},
		{"add r0, r1, 2", 1, ErrParseRegister("2")},
		{"inc", 1, ErrOpcodeValueMissing},
		{"dec 1", 1, ErrParseRegister("1")},
		{"not rx", 1, ErrParseRegister("rx")},
		{"shl r0", 1, ErrOpcodeValueMissing},
		{"shl r0, r1", 1, ErrParseNumber("r1")},
		{"shl r0, -1", 1, ErrParseNumber("-1")},
		{"shr r0, 0x10", 1, ErrParseNumber("0x10")},
		{"shr r0, 18446744073709551616", 1, ErrParseNumber("18446744073709551616")},
		{"shr r0, 1, 2", 1, ErrOpcodeExtraArgs},
		{"j", 1, ErrOpcodeValueMissing},
		{"jz a, b", 1, ErrOpcodeExtraArgs},
		{"jnz ,", 1, ErrOpcodeValueMissing},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			assert.ErrorIs(err, entry.err, entry.prog)
		}
	}
}

func FuzzAssembler(f *testing.F) {
	f.Add("add r0, r1, r2")
	f.Add("loop: ; comment")
	f.Add("shl r7, 64 // shift")
	f.Add("jnz loop # back")
	f.Add("mov r8, r0")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.ParseLines([]string{line, line})
		if err != nil {
			var se *ErrSyntax
			assert.True(errors.As(err, &se))
			assert.Equal(1, se.LineNo)
			return
		}

		assert.Equal(2, prog.Len())
		for _, inst := range prog.Instructions {
			assert.True(inst.Dst.Valid())
			assert.True(inst.Src1.Valid())
			assert.True(inst.Src2.Valid())
		}
		for _, index := range prog.Label {
			assert.True(index >= 0 && index < 2)
		}
	})
}
