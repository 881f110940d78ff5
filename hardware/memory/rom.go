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
	"io"
	"os"

	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// ROM is a read only memory area. Its contents are fixed at creation;
// writes change nothing and are reported through an AddressError.
type ROM struct {
	label  string
	origin uint16
	memtop uint16
	memory []uint8
}

// newROM is the preferred method of initialisation for the ROM memory area.
// The area takes ownership of the data slice.
func newROM(label string, origin uint16, data []uint8) (*ROM, error) {
	memtop, err := areaExtent(label, origin, len(data))
	if err != nil {
		return nil, err
	}

	return &ROM{
		label:  label,
		origin: origin,
		memtop: memtop,
		memory: data,
	}, nil
}

// romFile reads the contents of a file for use as a ROM area, checking that
// the file will fit in the address space at the requested origin before
// reading a byte of it.
func romFile(origin uint16, filename string) ([]uint8, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("rom file %s is empty", filename)
	}
	if int64(origin)+size > int64(addresses.Memtop)+1 {
		return nil, fmt.Errorf("rom file %s is too large to map at %#04x", filename, origin)
	}

	data := make([]uint8, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}

	return data, nil
}

func (r *ROM) String() string {
	return fmt.Sprintf("%s: ROM %#04x to %#04x", r.label, r.origin, r.memtop)
}

// Label implements the memory.Area interface.
func (r *ROM) Label() string {
	return r.label
}

// Origin implements the memory.Area interface.
func (r *ROM) Origin() uint16 {
	return r.origin
}

// Memtop implements the memory.Area interface.
func (r *ROM) Memtop() uint16 {
	return r.memtop
}

// Read implements the memory.Area interface.
func (r *ROM) Read(address uint16) (uint8, error) {
	return r.memory[address-r.origin], nil
}

// Write implements the memory.Area interface. ROM swallows writes.
func (r *ROM) Write(address uint16, data uint8) error {
	return fmt.Errorf("%w: write of %#02x to read only area %s (%#04x)", cpubus.AddressError, data, r.label, address)
}
