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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Area is a window onto some kind of memory. The Bus only ever calls Read()
// and Write() with addresses satisfying origin <= address <= memtop.
type Area interface {
	Label() string
	Origin() uint16
	Memtop() uint16
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Bus is the assembled address space of a machine. It implements
// cpubus.Memory and cpubus.DirectMemory.
type Bus struct {
	areas []Area

	// backing memory of a RAM area that covers all of zero page and the
	// stack page. remains nil until such an area is added, in which case
	// the direct access functions stop walking the area list.
	direct []uint8
}

// NewBus is the preferred method of initialisation for the Bus type. A new
// bus has nothing mapped at all.
func NewBus() *Bus {
	return &Bus{
		areas: make([]Area, 0, 8),
	}
}

func (b *Bus) String() string {
	if len(b.areas) == 0 {
		return "no areas mapped"
	}
	s := ""
	for _, a := range b.areas {
		s = fmt.Sprintf("%s%s: %#04x to %#04x\n", s, a.Label(), a.Origin(), a.Memtop())
	}
	return s
}

// AddArea maps an area into the address space. The newly added area is
// searched before any existing area, shadowing whatever it overlaps.
func (b *Bus) AddArea(area Area) {
	b.areas = append([]Area{area}, b.areas...)
}

// Areas returns the mapped areas in search order, most recently added
// first.
func (b *Bus) Areas() []Area {
	return b.areas
}

// AddRAM allocates a zero filled RAM area of the given size and maps it at
// origin.
//
// A RAM area that begins at address zero and covers the whole of the direct
// address range (zero page and the stack page) additionally becomes the
// target of the bus's direct access functions.
func (b *Bus) AddRAM(label string, origin uint16, size int) (*RAM, error) {
	ram, err := newRAM(label, origin, size)
	if err != nil {
		return nil, err
	}
	b.AddArea(ram)

	if origin == 0x0000 && size > int(addresses.DirectMemtop) {
		b.direct = ram.memory
	}

	return ram, nil
}

// AddROM maps a ROM area at origin, with contents taken from (not copied
// from) the data slice.
func (b *Bus) AddROM(label string, origin uint16, data []uint8) (*ROM, error) {
	rom, err := newROM(label, origin, data)
	if err != nil {
		return nil, err
	}
	b.AddArea(rom)
	return rom, nil
}

// AddROMFromFile maps a ROM area at origin with the contents of the named
// file. If the file cannot be opened, statted or read, or if it would spill
// past the top of the address space, the error is returned and the bus is
// left exactly as it was.
func (b *Bus) AddROMFromFile(label string, origin uint16, filename string) (*ROM, error) {
	data, err := romFile(origin, filename)
	if err != nil {
		return nil, fmt.Errorf("bus: %v", err)
	}
	return b.AddROM(label, origin, data)
}

// AddPorts maps an I/O port area at origin. See the Ports type for the
// callback contract.
func (b *Bus) AddPorts(label string, origin uint16, size int, read ReadPort, write WritePort) (*Ports, error) {
	ports, err := newPorts(label, origin, size, read, write)
	if err != nil {
		return nil, err
	}
	b.AddArea(ports)
	return ports, nil
}

// area returns the first area in the search order that services the
// address, or nil.
func (b *Bus) area(address uint16) Area {
	for _, a := range b.areas {
		if address >= a.Origin() && address <= a.Memtop() {
			return a
		}
	}
	return nil
}

// Read implements the cpubus.Memory interface. An address serviced by no
// area reads as zero alongside an error wrapping cpubus.AddressError.
func (b *Bus) Read(address uint16) (uint8, error) {
	if a := b.area(address); a != nil {
		return a.Read(address)
	}
	return 0, fmt.Errorf("%w: read of unmapped address %#04x", cpubus.AddressError, address)
}

// Write implements the cpubus.Memory interface. A write to an address
// serviced by no area changes nothing and returns an error wrapping
// cpubus.AddressError.
func (b *Bus) Write(address uint16, data uint8) error {
	if a := b.area(address); a != nil {
		return a.Write(address, data)
	}
	return fmt.Errorf("%w: write of %#02x to unmapped address %#04x", cpubus.AddressError, data, address)
}

// ReadWord reads a little endian 16bit value, low byte at address. The high
// byte address wraps at the top of the address space.
func (b *Bus) ReadWord(address uint16) (uint16, error) {
	lo, err := b.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// WriteWord writes a little endian 16bit value, low byte at address. The
// high byte address wraps at the top of the address space.
func (b *Bus) WriteWord(address uint16, data uint16) error {
	if err := b.Write(address, uint8(data)); err != nil {
		return err
	}
	return b.Write(address+1, uint8(data>>8))
}

// DirectRead implements the cpubus.DirectMemory interface. Without a
// qualifying RAM area the read falls back to the area list.
func (b *Bus) DirectRead(address uint16) uint8 {
	if b.direct != nil {
		return b.direct[address]
	}
	v, _ := b.Read(address)
	return v
}

// DirectWrite implements the cpubus.DirectMemory interface. Without a
// qualifying RAM area the write falls back to the area list.
func (b *Bus) DirectWrite(address uint16, data uint8) {
	if b.direct != nil {
		b.direct[address] = data
		return
	}
	_ = b.Write(address, data)
}

// areaExtent validates an origin/size pair and returns the memtop for the
// area. Shared by the area constructors.
func areaExtent(label string, origin uint16, size int) (uint16, error) {
	if size <= 0 {
		return 0, fmt.Errorf("bus: area %s: size must be positive (%d)", label, size)
	}
	if int(origin)+size > int(addresses.Memtop)+1 {
		return 0, fmt.Errorf("bus: area %s: %#04x + %d bytes spills past the top of the address space", label, origin, size)
	}
	return origin + uint16(size-1), nil
}
