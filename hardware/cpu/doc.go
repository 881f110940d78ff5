// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements an instruction-stepped 6502 family processor.
// Instruction-stepped means the unit of emulation is the whole
// instruction; the package counts instructions, not clock cycles, and is
// not suitable for machines whose software depends on cycle-exact timing.
//
// The CPU is created with a memory implementation (the cpubus interfaces)
// and an instruction Set. The Set maps opcodes to handler functions and is
// pure data as far as the engine is concerned: the engine fetches,
// dispatches, keeps the program counter honest and polices the stack, and
// leaves the semantics of individual instructions to the set. The refset
// sub-package provides a small worked example; a full instruction set is
// built the same way, just longer.
//
// Strict mode is a safety net for developing instruction sets and the
// programs that run on them. Each Definition declares how many stack bytes
// the instruction will push or pull; in strict mode the engine checks that
// declaration against the space actually available before the instruction
// runs, turning silent stack corruption into a StackOverflow or
// StackUnderflow error at the instruction that would have caused it.
package cpu
