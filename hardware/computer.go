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

package hardware

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
)

// RAMSize is the amount of RAM a new Computer starts with: 48K from the
// bottom of the address space, the traditional full complement for the
// class of machine this core is for. It comfortably covers the zero page
// and the stack, qualifying the RAM for the bus's direct access path.
const RAMSize = 0xc000

// Computer is a bring-up machine: one CPU and one bus, with RAM already
// mapped and room above it for whatever ROM and I/O areas the machine
// definition wants to add. Anything more ambitious can assemble the same
// pieces itself.
type Computer struct {
	CPU *cpu.CPU
	Bus *memory.Bus
	RAM *memory.RAM

	// the instruction set the CPU was built with. kept so that tools
	// sitting on top of the machine (the debugger in particular) can
	// disassemble without asking for the set separately
	Set cpu.Set
}

// NewComputer creates a Computer around the given instruction set. Mapping
// ROM (not least something at the reset vector) is left to the caller,
// through the Bus field.
func NewComputer(set cpu.Set) (*Computer, error) {
	comp := &Computer{
		Bus: memory.NewBus(),
		Set: set,
	}

	var err error
	comp.RAM, err = comp.Bus.AddRAM("main", 0x0000, RAMSize)
	if err != nil {
		return nil, err
	}

	comp.CPU = cpu.NewCPU(comp.Bus, set)

	return comp, nil
}

func (comp *Computer) String() string {
	return comp.CPU.String()
}

// Reset the machine. The stack contents survive, as they do on the
// hardware.
func (comp *Computer) Reset() error {
	return comp.CPU.Reset()
}

// Step executes exactly one instruction.
func (comp *Computer) Step() error {
	return comp.CPU.Step()
}

// Run executes instructions until one fails, returning the instruction
// count alongside the error.
func (comp *Computer) Run() (uint64, error) {
	return comp.CPU.Run()
}

// Boot resets the machine and runs it.
func (comp *Computer) Boot() (uint64, error) {
	return comp.CPU.Boot()
}

// IRQ delivers an interrupt request to the CPU.
func (comp *Computer) IRQ() error {
	return comp.CPU.IRQ()
}

// NMI delivers a non-maskable interrupt to the CPU.
func (comp *Computer) NMI() error {
	return comp.CPU.NMI()
}
