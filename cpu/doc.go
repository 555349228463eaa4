// Package cpu implements the register machine and assembler for regasm.
//
// The machine has eight 64-bit general-purpose registers (r0-r7), a zero
// flag, and a program counter indexing the assembled instruction list.
// Arithmetic wraps modulo 2^64. Execution ends when the program counter runs
// off the end of the instruction list.
//
// The assembler reads one instruction per source line. Mnemonics and labels
// are case-insensitive, comments start with '//', ';' or '#', and operands are
// separated by commas.
package cpu
