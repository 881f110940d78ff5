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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func testProgram(t *testing.T) *memory.Bus {
	t.Helper()

	bus := memory.NewBus()
	if _, err := bus.AddRAM("ram", 0x0000, 0x10000); err != nil {
		t.Fatal(err)
	}

	// LDA #$42; STA $1234; a data byte; NOP
	for i, b := range []uint8{0xa9, 0x42, 0x8d, 0x34, 0x12, 0xff, 0xea} {
		if err := bus.Write(0x8000+uint16(i), b); err != nil {
			t.Fatal(err)
		}
	}

	return bus
}

func TestFromBus(t *testing.T) {
	bus := testProgram(t)

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	dsm, err := disassembly.FromBus(set, bus, 0x8000, 0x8006)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(dsm.Entries), 4)

	test.Equate(t, dsm.Entries[0].Operation, "LDA #$42")
	test.Equate(t, dsm.Entries[1].Operation, "STA $1234")
	test.Equate(t, dsm.Entries[1].Address, 0x8002)

	// the byte with no definition decodes as data and the decoder
	// realigns on the instruction after it
	test.Equate(t, dsm.Entries[2].Operation, ".byte $FF")
	test.Equate(t, dsm.Entries[2].IsInstruction, false)
	test.Equate(t, dsm.Entries[3].Operation, "NOP")

	// nothing to disassemble
	_, err = disassembly.FromBus(set, bus, 0x9000, 0x8000)
	test.ExpectedFailure(t, err)
}

func TestWrite(t *testing.T) {
	bus := testProgram(t)

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	dsm, err := disassembly.FromBus(set, bus, 0x8000, 0x8004)
	test.ExpectedSuccess(t, err)

	plain := &strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(plain, disassembly.WriteAttr{}))
	test.Equate(t, plain.String(), "8000  LDA #$42\n8002  STA $1234\n")

	bytecode := &strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(bytecode, disassembly.WriteAttr{ByteCode: true}))
	if !strings.Contains(bytecode.String(), "A9 42") {
		t.Errorf("bytecode listing is missing the raw bytes: %q", bytecode.String())
	}
}
