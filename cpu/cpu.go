package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// SHIFT_MASK clamps shift amounts to the register width.
const SHIFT_MASK = 63

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int                    // Index of the next instruction.
	Register [REGISTER_COUNT]uint64 // Register bank.
	Zero     bool                   // Zero flag of the last arithmetic or logical write.
	Ticks    int                    // Executed instruction counter.
}

// NewCpu creates a new CPU with all registers cleared.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset the CPU state.
// - Clears the registers and the zero flag.
// - Sets the program counter to the first instruction.
// - Zeros statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Zero = false
	cpu.Pc = 0
	cpu.Ticks = 0
}

// SetRegister sets a register value.
func (cpu *Cpu) SetRegister(reg Register, value uint64) (err error) {
	if !reg.Valid() {
		err = ErrRegisterMissing(reg)
		return
	}

	cpu.Register[reg] = value
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "pc:%04d zero:%v", cpu.Pc, cpu.Zero)
	for n, val := range cpu.Register {
		fmt.Fprintf(&sb, " r%d:%016X", n, val)
	}

	return sb.String()
}

// setZero writes a register and recomputes the zero flag.
func (cpu *Cpu) setZero(reg Register, value uint64) {
	cpu.Register[reg] = value
	cpu.Zero = value == 0
}

// Tick executes the instruction at the program counter.
func (cpu *Cpu) Tick(prog *Program) (err error) {
	if cpu.Pc < 0 || cpu.Pc >= prog.Len() {
		err = ErrPcInvalid
		return
	}

	return cpu.Execute(prog.Instructions[cpu.Pc], prog.Label)
}

// Execute executes a single instruction, resolving jumps against labels.
//
// OP_DEBUG advances the program counter and returns ErrTrap, so the caller
// can inspect the machine before continuing.
func (cpu *Cpu) Execute(inst Instruction, labels map[string]int) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrTrap) && cpu.Verbose {
			log.Printf("%04d: %v: %v", cpu.Pc, inst, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.Pc, inst)
	}

	reg := &cpu.Register
	next_pc := cpu.Pc + 1

	jump := func(taken bool) {
		if !taken {
			return
		}
		target, ok := labels[inst.Label]
		if !ok {
			err = ErrLabelMissing(inst.Label)
			return
		}
		next_pc = target
	}

	switch inst.Op {
	case OP_NOOP:
		// pass
	case OP_DEBUG:
		err = ErrTrap
	case OP_ZERO:
		reg[inst.Dst] = 0
	case OP_MOV:
		reg[inst.Dst] = reg[inst.Src1]
	case OP_ADD:
		cpu.setZero(inst.Dst, reg[inst.Src1]+reg[inst.Src2])
	case OP_SUB:
		cpu.setZero(inst.Dst, reg[inst.Src1]-reg[inst.Src2])
	case OP_INC:
		cpu.setZero(inst.Dst, reg[inst.Dst]+1)
	case OP_DEC:
		cpu.setZero(inst.Dst, reg[inst.Dst]-1)
	case OP_AND:
		cpu.setZero(inst.Dst, reg[inst.Src1]&reg[inst.Src2])
	case OP_OR:
		cpu.setZero(inst.Dst, reg[inst.Src1]|reg[inst.Src2])
	case OP_XOR:
		cpu.setZero(inst.Dst, reg[inst.Src1]^reg[inst.Src2])
	case OP_NOT:
		cpu.setZero(inst.Dst, ^reg[inst.Dst])
	case OP_SHL:
		reg[inst.Dst] <<= inst.Amount & SHIFT_MASK
	case OP_SHR:
		reg[inst.Dst] >>= inst.Amount & SHIFT_MASK
	case OP_JZ:
		jump(cpu.Zero)
	case OP_JNZ:
		jump(!cpu.Zero)
	case OP_J:
		jump(true)
	default:
		panic(fmt.Sprintf("unknown op %v", inst.Op))
	}

	if err != nil && !errors.Is(err, ErrTrap) {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
