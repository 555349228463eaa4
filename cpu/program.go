package cpu

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Program is an assembled instruction list and its jump labels.
type Program struct {
	Instructions []Instruction
	Label        map[string]int // Map of jump labels to instruction indexes.
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Resolve returns the instruction index of a label.
func (prog *Program) Resolve(label string) (index int, err error) {
	index, ok := prog.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
	}

	return
}

// Labels returns the labels declared at an instruction index, sorted.
func (prog *Program) Labels(index int) (labels []string) {
	for label, at := range prog.Label {
		if at == index {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)

	return
}

// All iterates over the instructions with their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.Instructions)
}

// String returns a listing of the program, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder

	for index, inst := range prog.All() {
		for _, label := range prog.Labels(index) {
			fmt.Fprintf(&sb, "%s:\n", label)
		}
		if inst.Op == OP_NOOP {
			continue
		}
		fmt.Fprintf(&sb, "%04d:\t%v\n", index, inst)
	}

	return sb.String()
}
