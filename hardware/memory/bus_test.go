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

package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func TestBusUnmapped(t *testing.T) {
	bus := memory.NewBus()

	// reads of unmapped addresses return zero and an address error
	v, err := bus.Read(0x1000)
	test.Equate(t, v, 0)
	test.ExpectedSentinel(t, err, cpubus.AddressError)

	// writes to unmapped addresses are swallowed
	err = bus.Write(0x1000, 0xff)
	test.ExpectedSentinel(t, err, cpubus.AddressError)
}

func TestBusRAM(t *testing.T) {
	bus := memory.NewBus()

	_, err := bus.AddRAM("ram", 0x2000, 0x100)
	test.ExpectedSuccess(t, err)

	// fresh RAM is zero filled
	v, err := bus.Read(0x2080)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0)

	// what goes in comes back out
	test.ExpectedSuccess(t, bus.Write(0x2080, 0xa5))
	v, err = bus.Read(0x2080)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xa5)

	// addresses just outside the area are not serviced by it
	_, err = bus.Read(0x2100)
	test.ExpectedFailure(t, err)
	_, err = bus.Read(0x1fff)
	test.ExpectedFailure(t, err)
}

func TestBusROM(t *testing.T) {
	bus := memory.NewBus()

	_, err := bus.AddROM("rom", 0xff00, []uint8{0xde, 0xad, 0xbe, 0xef})
	test.ExpectedSuccess(t, err)

	v, err := bus.Read(0xff03)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xef)

	// ROM swallows writes, reporting an address error, and the contents do
	// not change
	err = bus.Write(0xff00, 0x00)
	test.ExpectedSentinel(t, err, cpubus.AddressError)
	v, _ = bus.Read(0xff00)
	test.Equate(t, v, 0xde)
}

func TestBusShadowing(t *testing.T) {
	bus := memory.NewBus()

	// ROM mapped first, RAM mapped over the top of it
	_, err := bus.AddROM("rom", 0x8000, []uint8{0x11, 0x22})
	test.ExpectedSuccess(t, err)
	_, err = bus.AddRAM("ram", 0x8000, 0x10)
	test.ExpectedSuccess(t, err)

	// the most recently added area wins
	v, err := bus.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0)

	test.ExpectedSuccess(t, bus.Write(0x8001, 0x33))
	v, _ = bus.Read(0x8001)
	test.Equate(t, v, 0x33)

	// beyond the shadow the older area shows through
	_, err = bus.AddROM("rom2", 0x8000, []uint8{0x44})
	test.ExpectedSuccess(t, err)
	v, _ = bus.Read(0x8000)
	test.Equate(t, v, 0x44)
	v, _ = bus.Read(0x8001)
	test.Equate(t, v, 0x33)
}

func TestBusWords(t *testing.T) {
	bus := memory.NewBus()

	_, err := bus.AddRAM("ram", 0x0000, 0x10000)
	test.ExpectedSuccess(t, err)

	// little endian. low byte at the lower address
	test.ExpectedSuccess(t, bus.WriteWord(0x1234, 0xbeef))
	v, err := bus.Read(0x1234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0xef)
	v, _ = bus.Read(0x1235)
	test.Equate(t, v, 0xbe)

	w, err := bus.ReadWord(0x1234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xbeef)

	// word access at the top of memory wraps to the bottom
	test.ExpectedSuccess(t, bus.WriteWord(0xffff, 0x8001))
	v, _ = bus.Read(0xffff)
	test.Equate(t, v, 0x01)
	v, _ = bus.Read(0x0000)
	test.Equate(t, v, 0x80)
}

func TestBusDirect(t *testing.T) {
	bus := memory.NewBus()

	// without a qualifying RAM area, direct access falls back to the area
	// list. an entirely empty bus reads zero
	test.Equate(t, bus.DirectRead(0x01ff), 0)
	bus.DirectWrite(0x01ff, 0xff)
	test.Equate(t, bus.DirectRead(0x01ff), 0)

	// a RAM area at zero spanning both low pages switches the direct path
	// on. direct and chained access now see the same memory
	_, err := bus.AddRAM("ram", 0x0000, 0x0200)
	test.ExpectedSuccess(t, err)

	bus.DirectWrite(0x01ff, 0x55)
	v, err := bus.Read(0x01ff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x55)

	test.ExpectedSuccess(t, bus.Write(0x0080, 0xaa))
	test.Equate(t, bus.DirectRead(0x0080), 0xaa)
}

func TestBusDirectTooSmall(t *testing.T) {
	bus := memory.NewBus()

	// a RAM area covering only zero page does not qualify for the direct
	// path but is still serviced by the fallback
	_, err := bus.AddRAM("ram", 0x0000, 0x0100)
	test.ExpectedSuccess(t, err)

	bus.DirectWrite(0x0010, 0x99)
	test.Equate(t, bus.DirectRead(0x0010), 0x99)

	// the stack page remains unmapped
	test.Equate(t, bus.DirectRead(0x0110), 0)
}

func TestBusAreaExtent(t *testing.T) {
	bus := memory.NewBus()

	// zero or negative sizes are rejected
	_, err := bus.AddRAM("ram", 0x0000, 0)
	test.ExpectedFailure(t, err)

	// areas cannot spill past the top of the address space
	_, err = bus.AddRAM("ram", 0xff00, 0x101)
	test.ExpectedFailure(t, err)

	// but can end exactly at the top
	_, err = bus.AddRAM("ram", 0xff00, 0x100)
	test.ExpectedSuccess(t, err)
}

func TestBusROMFromFile(t *testing.T) {
	bus := memory.NewBus()

	// a file that does not exist leaves the bus untouched
	_, err := bus.AddROMFromFile("rom", 0xf000, filepath.Join(t.TempDir(), "no-such-file"))
	test.ExpectedFailure(t, err)
	_, err = bus.Read(0xf000)
	test.ExpectedSentinel(t, err, cpubus.AddressError)

	// a real file is mapped in full
	filename := filepath.Join(t.TempDir(), "test.rom")
	if err := os.WriteFile(filename, []byte{0x01, 0x02, 0x03}, 0644); err != nil {
		t.Fatalf("preparing rom file: %v", err)
	}

	_, err = bus.AddROMFromFile("rom", 0xf000, filename)
	test.ExpectedSuccess(t, err)
	v, err := bus.Read(0xf002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x03)

	// a file too large for the origin is rejected before mapping
	_, err = bus.AddROMFromFile("rom", 0xffff, filename)
	test.ExpectedFailure(t, err)
}

func TestBusPorts(t *testing.T) {
	bus := memory.NewBus()

	var lastWrite uint8
	var lastAddress uint16

	_, err := bus.AddPorts("pia", 0xd010, 4,
		func(address uint16) uint8 {
			return uint8(address & 0xff)
		},
		func(address uint16, data uint8) {
			lastAddress = address
			lastWrite = data
		},
	)
	test.ExpectedSuccess(t, err)

	// reads are serviced by the device callback
	v, err := bus.Read(0xd011)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x11)

	// writes reach the device with the full address
	test.ExpectedSuccess(t, bus.Write(0xd012, 0x7f))
	test.Equate(t, lastAddress, 0xd012)
	test.Equate(t, lastWrite, 0x7f)

	// nil callbacks read zero and swallow writes without error
	_, err = bus.AddPorts("open", 0xd000, 4, nil, nil)
	test.ExpectedSuccess(t, err)
	v, err = bus.Read(0xd001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0)
	test.ExpectedSuccess(t, bus.Write(0xd001, 0xff))
}
