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

package cpu

import (
	"fmt"
)

// The three handler variants. An instruction handler receives its operand
// already fetched and widened to the shape implied by the instruction
// length: nothing for a one byte instruction, a uint8 for a two byte
// instruction and a uint16 (assembled little endian) for a three byte
// instruction.
//
// Handlers run after the program counter has moved past the instruction.
// A handler that loads the PC is therefore authoritative; handlers that
// leave it alone get the sequential behaviour for free.
type (
	Implied  func(mc *CPU)
	WithByte func(mc *CPU, value uint8)
	WithWord func(mc *CPU, value uint16)
)

// handler is satisfied by the three handler variants and by nothing else.
// Keeping the dispatch behind an interface, rather than a single function
// type that every handler is cast to, means a Definition can never call a
// handler with the wrong shape of operand.
type handler interface {
	operandBytes() int
}

func (h Implied) operandBytes() int  { return 0 }
func (h WithByte) operandBytes() int { return 1 }
func (h WithWord) operandBytes() int { return 2 }

// Definition describes one entry of an instruction set.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// the full instruction length, opcode included. 1, 2 or 3
	Bytes int

	// the net number of stack bytes the instruction will touch. positive
	// for instructions that push, negative for instructions that pull,
	// zero for the great majority that do neither. only consulted by the
	// strict mode pre-check
	Stack int

	// one of Implied, WithByte or WithWord, agreeing with the Bytes field.
	// a nil Handler marks the opcode as unimplemented
	Handler handler
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes [stack=%+d]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Stack)
}

// Set is an instruction set: one Definition per opcode value. Entries with
// no definition, or a definition with no handler, are unimplemented
// opcodes and halt execution when fetched.
//
// The CPU treats the set as data. Which opcodes exist and what they do is
// entirely the business of whoever built the set.
type Set [256]*Definition

// NewSet assembles an instruction set from a list of definitions. It is an
// error for two definitions to claim the same opcode, for the Bytes field
// to be outside 1 to 3, or for the handler variant to disagree with the
// declared instruction length.
func NewSet(defs []*Definition) (Set, error) {
	var set Set

	for _, defn := range defs {
		if defn == nil {
			return Set{}, fmt.Errorf("instruction set: nil definition")
		}
		if set[defn.OpCode] != nil {
			return Set{}, fmt.Errorf("instruction set: opcode %#02x defined twice (%s and %s)",
				defn.OpCode, set[defn.OpCode].Mnemonic, defn.Mnemonic)
		}
		if defn.Bytes < 1 || defn.Bytes > 3 {
			return Set{}, fmt.Errorf("instruction set: %s: instruction length %d is impossible", defn, defn.Bytes)
		}
		if defn.Handler != nil && defn.Handler.operandBytes() != defn.Bytes-1 {
			return Set{}, fmt.Errorf("instruction set: %s: handler wants %d operand bytes but instruction supplies %d",
				defn, defn.Handler.operandBytes(), defn.Bytes-1)
		}
		set[defn.OpCode] = defn
	}

	return set, nil
}
