// Package cpu implements the RCA 1802 (COSMAC) microprocessor and its
// assembler.
//
// The CPU consists of sixteen 16-bit scratchpad registers R0-RF, an 8-bit
// accumulator D with carry flag DF, the 4-bit P and X registers that select
// which scratchpad register serves as the program counter and the data
// pointer, and 64KB of memory. Execution proceeds one instruction at a time
// until an IDL instruction halts the processor.
//
// The assembler provides a two pass assembly language for the 1802
// instruction set, supporting macros, labels, equates, and compile-time
// expression evaluation.
package cpu
