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
	"strings"
)

// FormatState returns a one line summary of the registers and flags in the
// traditional machine monitor layout.
func (mc *CPU) FormatState() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X SP=%04X %s",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.S.Value(),
		mc.SP.Address(), mc.Status)
}

// FormatStack returns the occupied bytes of the stack as space separated
// hex values, most recently pushed first. An empty stack returns the empty
// string.
func (mc *CPU) FormatStack() string {
	s := strings.Builder{}
	for sp := uint16(mc.SP.Value()) + 1; sp <= 0xff; sp++ {
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		fmt.Fprintf(&s, "%02X", mc.direct.DirectRead(0x0100+sp))
	}
	return s.String()
}

// emitTrace writes the per-instruction trace line. Called at the end of a
// successful executeInstruction; pc is the address the instruction was
// fetched from and disasm the string prepared before execution.
//
// The line carries the instruction address, the disassembly, the raw
// instruction bytes, the post-execution register state and the stack
// contents. The exact layout is for humans and is not a contract.
func (mc *CPU) emitTrace(pc uint16, defn *Definition, disasm string) {
	raw := strings.Builder{}
	for i := 0; i < defn.Bytes; i++ {
		if i > 0 {
			raw.WriteRune(' ')
		}
		v, _ := mc.mem.Read(pc + uint16(i))
		fmt.Fprintf(&raw, "%02X", v)
	}

	fmt.Fprintf(mc.trace, "CPU: %04X %-12s | %-8s   %-33s  STACK: %s\n",
		pc, disasm, raw.String(), mc.FormatState(), mc.FormatStack())
}
