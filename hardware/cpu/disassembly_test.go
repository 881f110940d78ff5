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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDisassemble(t *testing.T) {
	bus := testBus(t)

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	// one entry per addressing mode that the reference set can reach
	for _, entry := range []struct {
		bytes    []uint8
		expected string
	}{
		{[]uint8{0xea}, "NOP"},
		{[]uint8{0x48}, "PHA"},
		{[]uint8{0xa9, 0x42}, "LDA #$42"},
		{[]uint8{0x85, 0x80}, "STA $80"},
		{[]uint8{0x8d, 0x34, 0x12}, "STA $1234"},
		{[]uint8{0xad, 0xcd, 0xab}, "LDA $ABCD"},
		{[]uint8{0x4c, 0x00, 0x90}, "JMP $9000"},
		{[]uint8{0x20, 0x00, 0x90}, "JSR $9000"},
		{[]uint8{0xff}, "???"},
	} {
		putInstructions(t, bus, 0x8000, entry.bytes...)
		test.Equate(t, cpu.Disassemble(set, bus, 0x8000), entry.expected)
	}
}

func TestDisassembleBranchTarget(t *testing.T) {
	bus := testBus(t)

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	// branch operands are shown as the resolved target, not the raw
	// displacement

	// backwards to the branch's own address
	putInstructions(t, bus, 0x8000, 0xd0, 0xfe)
	test.Equate(t, cpu.Disassemble(set, bus, 0x8000), "BNE $8000")

	// forwards over a two byte gap
	putInstructions(t, bus, 0x8000, 0xf0, 0x02)
	test.Equate(t, cpu.Disassemble(set, bus, 0x8000), "BEQ $8004")
}
