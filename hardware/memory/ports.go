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

// ReadPort is called with the full address of every CPU read that lands in
// the Ports area it is attached to.
type ReadPort func(address uint16) uint8

// WritePort is called with the full address and data of every CPU write
// that lands in the Ports area it is attached to.
type WritePort func(address uint16, data uint8)

// Ports is a memory area serviced by a device rather than by storage. The
// device supplies a callback for each direction; device state is whatever
// the callbacks close over.
//
// Either callback can be nil. Reads of a port with no read callback return
// zero and writes to a port with no write callback disappear, both without
// error, which is as close as memory mapped hardware gets to an open line.
type Ports struct {
	label  string
	origin uint16
	memtop uint16
	read   ReadPort
	write  WritePort
}

// newPorts is the preferred method of initialisation for the Ports memory
// area.
func newPorts(label string, origin uint16, size int, read ReadPort, write WritePort) (*Ports, error) {
	memtop, err := areaExtent(label, origin, size)
	if err != nil {
		return nil, err
	}

	return &Ports{
		label:  label,
		origin: origin,
		memtop: memtop,
		read:   read,
		write:  write,
	}, nil
}

func (p *Ports) String() string {
	return fmt.Sprintf("%s: ports %#04x to %#04x", p.label, p.origin, p.memtop)
}

// Label implements the memory.Area interface.
func (p *Ports) Label() string {
	return p.label
}

// Origin implements the memory.Area interface.
func (p *Ports) Origin() uint16 {
	return p.origin
}

// Memtop implements the memory.Area interface.
func (p *Ports) Memtop() uint16 {
	return p.memtop
}

// Read implements the memory.Area interface.
func (p *Ports) Read(address uint16) (uint8, error) {
	if p.read == nil {
		return 0, nil
	}
	return p.read(address), nil
}

// Write implements the memory.Area interface.
func (p *Ports) Write(address uint16, data uint8) error {
	if p.write == nil {
		return nil
	}
	p.write(address, data)
	return nil
}
