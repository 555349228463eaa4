// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the regasm CPU through an assembled program.
package emulator

import (
	"errors"
	"log"
	"os"

	"github.com/ezrec/regasm/cpu"
	"github.com/ezrec/regasm/display"
	"github.com/ezrec/regasm/io"
)

// Emulator state. CPU + program + operator console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Console io.Console       // Operator input for debug breakpoints.
	Display *display.Display // Operator output for debug breakpoints.
}

// NewEmulator creates a new emulator, attached to the process console.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Display: &display.Display{Output: os.Stdout, Error: os.Stderr},
	}

	emu.Console.Input = os.Stdin

	return
}

// Reset the emulator state.
// Register overrides must be applied after a reset.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// Done returns true once the program counter has run off the end of the program.
func (emu *Emulator) Done() bool {
	return emu.Cpu.Pc == emu.Program.Len()
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	pc := emu.Cpu.Pc
	if pc < 0 || pc >= emu.Program.Len() {
		return 0
	}

	return emu.Program.Instructions[pc].LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	if emu.Done() {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick(emu.Program)
	if errors.Is(err, cpu.ErrTrap) {
		err = emu.breakpoint(lineno)
	}
	if err != nil {
		return
	}

	done = emu.Done()
	return
}

// breakpoint shows the machine state, then waits for the operator.
func (emu *Emulator) breakpoint(lineno int) (err error) {
	if emu.Verbose {
		log.Printf("emulator: breakpoint at line %v", lineno)
	}

	if emu.Display != nil {
		err = emu.Display.Breakpoint(lineno, emu.Cpu)
		if err != nil {
			return
		}
	}

	_, err = emu.Console.Await()
	return
}

// Run ticks the emulator until the program ends or fails.
// There is no instruction budget; a program that never ends never returns.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
