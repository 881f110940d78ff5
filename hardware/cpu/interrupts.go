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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
)

// Interrupt delivery. There is no interrupt pin and no pending-interrupt
// latch in this emulation: the host calls IRQ() or NMI() between steps,
// synchronously, at whatever granularity its machine calls for. For the
// same reason the core does not mask IRQ on the InterruptDisable flag and
// does not treat NMI specially. The two sequences are identical apart
// from the vector; masking policy belongs to the host.

// interrupt performs the common entry sequence: the program counter and
// the packed status register are saved to the stack, further interrupts
// are (nominally) disabled and control transfers through the vector.
func (mc *CPU) interrupt(vector uint16) error {
	// entry needs two bytes for the PC and one for the status register
	if mc.strict && mc.StackFree() < 3 {
		return fmt.Errorf("%w: interrupt entry needs 3 bytes, %d free", StackOverflow, mc.StackFree())
	}

	mc.PushWord(mc.PC.Address())
	mc.PushByte(mc.Status.Value())
	mc.Status.InterruptDisable = true
	return mc.LoadPCIndirect(vector)
}

// IRQ interrupts the CPU through the IRQ vector. In strict mode, with
// fewer than three bytes of stack free, the error wraps StackOverflow and
// the CPU is left untouched.
func (mc *CPU) IRQ() error {
	return mc.interrupt(addresses.IRQ)
}

// NMI interrupts the CPU through the NMI vector. The strict mode
// behaviour is the same as for IRQ.
func (mc *CPU) NMI() error {
	return mc.interrupt(addresses.NMI)
}
