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
)

// RAM is a plain read/write memory area. The backing memory is allocated at
// creation and zero filled.
type RAM struct {
	label  string
	origin uint16
	memtop uint16
	memory []uint8
}

// newRAM is the preferred method of initialisation for the RAM memory area.
func newRAM(label string, origin uint16, size int) (*RAM, error) {
	memtop, err := areaExtent(label, origin, size)
	if err != nil {
		return nil, err
	}

	return &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
		memory: make([]uint8, size),
	}, nil
}

func (r *RAM) String() string {
	return fmt.Sprintf("%s: RAM %#04x to %#04x", r.label, r.origin, r.memtop)
}

// Label implements the memory.Area interface.
func (r *RAM) Label() string {
	return r.label
}

// Origin implements the memory.Area interface.
func (r *RAM) Origin() uint16 {
	return r.origin
}

// Memtop implements the memory.Area interface.
func (r *RAM) Memtop() uint16 {
	return r.memtop
}

// Read implements the memory.Area interface.
func (r *RAM) Read(address uint16) (uint8, error) {
	return r.memory[address-r.origin], nil
}

// Write implements the memory.Area interface.
func (r *RAM) Write(address uint16, data uint8) error {
	r.memory[address-r.origin] = data
	return nil
}
