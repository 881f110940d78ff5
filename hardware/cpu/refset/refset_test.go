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

package refset_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

// testMachine builds a 64K RAM machine with the reference set and the
// reset vector pointing at origin.
func testMachine(t *testing.T, origin uint16) (*cpu.CPU, *memory.Bus) {
	t.Helper()

	bus := memory.NewBus()
	if _, err := bus.AddRAM("ram", 0x0000, 0x10000); err != nil {
		t.Fatal(err)
	}
	if err := bus.WriteWord(0xfffc, origin); err != nil {
		t.Fatal(err)
	}

	set, err := refset.Set()
	if err != nil {
		t.Fatal(err)
	}

	return cpu.NewCPU(bus, set), bus
}

func putProgram(t *testing.T, bus *memory.Bus, origin uint16, bytes ...uint8) {
	t.Helper()
	for i, b := range bytes {
		if err := bus.Write(origin+uint16(i), b); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadAndStore(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	// LDA #$a5; STA $80; STA $2000; halt
	putProgram(t, bus, 0x8000,
		0xa9, 0xa5,
		0x85, 0x80,
		0x8d, 0x00, 0x20,
		0xff,
	)

	count, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.UnimplementedInstruction)
	test.Equate(t, count, uint64(3))

	v, _ := bus.Read(0x0080)
	test.Equate(t, v, 0xa5)
	v, _ = bus.Read(0x2000)
	test.Equate(t, v, 0xa5)
}

func TestLoadFlags(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	putProgram(t, bus, 0x8000,
		0xa9, 0x00, // LDA #$00
		0xa2, 0x80, // LDX #$80
		0xff,
	)

	test.ExpectedSuccess(t, mc.Reset())

	test.ExpectedSuccess(t, mc.Step())
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Sign, false)

	test.ExpectedSuccess(t, mc.Step())
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, true)
}

func TestCountedLoop(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	// LDX #$03
	// loop: DEX
	//       BNE loop
	// halt
	putProgram(t, bus, 0x8000,
		0xa2, 0x03,
		0xca,
		0xd0, 0xfd,
		0xff,
	)

	count, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.UnimplementedInstruction)

	// LDX plus three times round the loop
	test.Equate(t, count, uint64(7))
	test.Equate(t, mc.X.Value(), 0)
}

func TestSubroutine(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	// JSR $9000; STA $2000; halt ... sub: LDA #$5a; RTS
	putProgram(t, bus, 0x8000,
		0x20, 0x00, 0x90,
		0x8d, 0x00, 0x20,
		0xff,
	)
	putProgram(t, bus, 0x9000,
		0xa9, 0x5a,
		0x60,
	)

	count, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.UnimplementedInstruction)
	test.Equate(t, count, uint64(4))

	// the subroutine ran and RTS came back to the instruction after the
	// JSR
	v, _ := bus.Read(0x2000)
	test.Equate(t, v, 0x5a)

	// the stack is balanced again
	test.Equate(t, mc.SP.Value(), 0xff)
}

func TestStackInstructions(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	// PHA round trip through X
	putProgram(t, bus, 0x8000,
		0xa9, 0x11, // LDA #$11
		0x48, //       PHA
		0xa9, 0x22, // LDA #$22
		0xaa, //       TAX
		0x68, //       PLA
		0xff,
	)

	count, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.UnimplementedInstruction)
	test.Equate(t, count, uint64(5))

	test.Equate(t, mc.A.Value(), 0x11)
	test.Equate(t, mc.X.Value(), 0x22)
}

func TestStatusRoundTripThroughStack(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)

	// SEC; PHP; CLC; PLP; halt. the PLP restores the carry the CLC
	// cleared
	putProgram(t, bus, 0x8000,
		0x38,
		0x08,
		0x18,
		0x28,
		0xff,
	)

	_, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.UnimplementedInstruction)
	test.Equate(t, mc.Status.Carry, true)
}

func TestStrictRun(t *testing.T) {
	mc, bus := testMachine(t, 0x8000)
	mc.SetStrict(true)

	// an RTS with nothing on the stack is exactly the kind of mistake
	// strict mode exists to catch
	putProgram(t, bus, 0x8000, 0x60)

	_, err := mc.Boot()
	test.ExpectedSentinel(t, err, cpu.StackUnderflow)
}
