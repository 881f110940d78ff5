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

package addresses

// The vector table sits at the very top of the address space. Each vector is
// a 16bit address stored little endian.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// The stack is fixed to page one. The stack pointer register stores only the
// low byte of the stack address.
const (
	StackOrigin = uint16(0x0100)
	StackMemtop = uint16(0x01ff)
)

// DirectMemtop is the highest address serviceable by the DirectMemory
// interface. Zero page and the stack page, nothing else.
const DirectMemtop = uint16(0x01ff)

// Memtop is the top of the 6502 address space.
const Memtop = uint16(0xffff)
