// Package cpu implements the competitors and the instruction set of the
// codefight core.
//
// A Competitor is one running instance of a Program: it owns an instruction
// pointer, a liveness flag and a step counter. Execute applies a single
// instruction to the core on behalf of a competitor. Every memory operand
// is an offset relative to the competitor's instruction pointer; MOV_I adds
// one level of indirection through the second operand of an intermediate
// cell.
//
// The assembler accepts either the compact "OP,a,b,OP,a,b" list form or a
// line oriented source with labels, equates, and compile-time $(...)
// expressions.
package cpu
