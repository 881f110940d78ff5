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

package registers

import "fmt"

// StackPointer is the 8bit stack pointer of the 6502. The register stores
// only the low byte of the stack address; the stack itself is fixed to page
// one of memory, so the full address is always 0x0100 plus the register
// value.
//
// The stack grows downwards. A push writes to the current address and then
// decrements the pointer; a pull increments the pointer and then reads. Both
// movements wrap at the page boundary without comment. Detecting and
// rejecting the wrap is the business of the CPU's strict mode, not of this
// type.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
// The pointer begins at the top of page one.
func NewStackPointer() StackPointer {
	return StackPointer{value: 0xff}
}

// Label returns an identifying string for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#04x", sp.Address())
}

// Value returns the low byte of the stack address.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full page one address the pointer currently refers to.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// PostDecrement returns the current page one address and then moves the
// pointer down. This is the push discipline.
func (sp *StackPointer) PostDecrement() uint16 {
	address := sp.Address()
	sp.value--
	return address
}

// PreIncrement moves the pointer up and then returns the new page one
// address. This is the pull discipline.
func (sp *StackPointer) PreIncrement() uint16 {
	sp.value++
	return sp.Address()
}
