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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Entry is one line of a disassembly listing: either a decoded instruction
// or, for a byte that decodes to nothing, a data directive.
type Entry struct {
	Address uint16

	// the raw bytes the entry covers
	Bytes []uint8

	// the rendered instruction or data directive
	Operation string

	// false when the byte at Address has no definition in the
	// instruction set and has been rendered as data
	IsInstruction bool
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x %s", e.Address, e.Operation)
}

// Disassembly is a straight-line decoding of a stretch of the address
// space.
//
// The decoding assumes the first byte of the stretch is the first byte of
// an instruction and that instructions follow each other nose to tail,
// which is true of assembler output and untrue of memory that mixes code
// with data. A listing through a data table will be nonsense until the
// decoder realigns itself; the listing is a diagnostic aid, not ground
// truth.
type Disassembly struct {
	Entries []*Entry
}

// FromBus disassembles addresses from and to inclusive, reading through
// mem. Reads the bus cannot honour decode as zero bytes, the same as the
// CPU would see.
func FromBus(set cpu.Set, mem cpubus.Memory, from uint16, to uint16) (*Disassembly, error) {
	if from > to {
		return nil, fmt.Errorf("disassembly: nothing between %#04x and %#04x", from, to)
	}

	read := func(address uint16) uint8 {
		v, _ := mem.Read(address)
		return v
	}

	dsm := &Disassembly{}

	address := uint32(from)
	for address <= uint32(to) {
		opcode := read(uint16(address))

		e := &Entry{Address: uint16(address)}

		length := 1
		if defn := set[opcode]; defn != nil {
			length = defn.Bytes
			e.Operation = cpu.Disassemble(set, mem, uint16(address))
			e.IsInstruction = true
		} else {
			e.Operation = fmt.Sprintf(".byte $%02X", opcode)
		}

		for i := 0; i < length; i++ {
			e.Bytes = append(e.Bytes, read(uint16(address)+uint16(i)))
		}

		dsm.Entries = append(dsm.Entries, e)

		// deliberately not wrapping at the top of the address space. an
		// instruction that hangs over the end of the stretch is decoded
		// in full but ends the listing
		address += uint32(length)
	}

	return dsm, nil
}
