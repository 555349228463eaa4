package cpu

import (
	"fmt"
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 8

// Register is an index into the register file.
type Register int

// String returns the assembly name of the register.
func (reg Register) String() string {
	return fmt.Sprintf("r%d", int(reg))
}

// Valid returns true if the register exists in the register file.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REGISTER_COUNT
}

// Op is an instruction kind.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP  = Op(0)  // noop
	OP_DEBUG = Op(1)  // debug
	OP_ZERO  = Op(2)  // zero
	OP_MOV   = Op(3)  // mov
	OP_ADD   = Op(4)  // add
	OP_SUB   = Op(5)  // sub
	OP_INC   = Op(6)  // inc
	OP_DEC   = Op(7)  // dec
	OP_AND   = Op(8)  // and
	OP_OR    = Op(9)  // or
	OP_XOR   = Op(10) // xor
	OP_NOT   = Op(11) // not
	OP_SHL   = Op(12) // shl
	OP_SHR   = Op(13) // shr
	OP_JZ    = Op(14) // jz
	OP_JNZ   = Op(15) // jnz
	OP_J     = Op(16) // j
)

// Shape is the operand layout of an instruction kind.
type Shape int

const (
	SHAPE_NONE    = Shape(iota) // no operands
	SHAPE_REG                   // reg
	SHAPE_REG_REG               // to, from
	SHAPE_REG_3                 // to, op1, op2
	SHAPE_REG_IMM               // reg, amount
	SHAPE_LABEL                 // label
)

// Shape returns the operand layout of the instruction kind.
func (op Op) Shape() Shape {
	switch op {
	case OP_ZERO, OP_INC, OP_DEC, OP_NOT:
		return SHAPE_REG
	case OP_MOV:
		return SHAPE_REG_REG
	case OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR:
		return SHAPE_REG_3
	case OP_SHL, OP_SHR:
		return SHAPE_REG_IMM
	case OP_JZ, OP_JNZ, OP_J:
		return SHAPE_LABEL
	}

	return SHAPE_NONE
}

// Instruction is a single assembled source line.
//
// Which operand fields are meaningful depends on Op.Shape():
//   - SHAPE_REG: Dst
//   - SHAPE_REG_REG: Dst, Src1
//   - SHAPE_REG_3: Dst, Src1, Src2
//   - SHAPE_REG_IMM: Dst, Amount
//   - SHAPE_LABEL: Label
type Instruction struct {
	Op     Op
	LineNo int // 1-based source line.

	Dst    Register
	Src1   Register
	Src2   Register
	Amount uint64
	Label  string
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op.Shape() {
	case SHAPE_REG:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Dst)
	case SHAPE_REG_REG:
		out = fmt.Sprintf("%v %v, %v", inst.Op, inst.Dst, inst.Src1)
	case SHAPE_REG_3:
		out = fmt.Sprintf("%v %v, %v, %v", inst.Op, inst.Dst, inst.Src1, inst.Src2)
	case SHAPE_REG_IMM:
		out = fmt.Sprintf("%v %v, %d", inst.Op, inst.Dst, inst.Amount)
	case SHAPE_LABEL:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Label)
	default:
		out = inst.Op.String()
	}

	return
}
