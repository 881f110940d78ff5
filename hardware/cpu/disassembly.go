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

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Disassemble returns the instruction at address as a mnemonic and operand
// string, without executing anything.
//
// The 6502 encodes its addressing mode in the opcode byte and the operand
// format is recovered from those bit patterns rather than from a table.
// The patterns don't cover every legal opcode: a combination outside the
// patterns renders with no operand, which is accepted as a limitation of a
// diagnostic aid. An opcode with no definition at all renders as "???".
//
// Reads go through the bus and any read error renders as a zero byte, so
// disassembling an address near an I/O area is safe but not necessarily
// meaningful.
func Disassemble(set Set, mem cpubus.Memory, address uint16) string {
	read := func(address uint16) uint8 {
		v, _ := mem.Read(address)
		return v
	}

	opcode := read(address)

	defn := set[opcode]
	if defn == nil {
		return "???"
	}

	if defn.Bytes == 1 {
		return defn.Mnemonic
	}

	operand := operandString(opcode, read(address+1), read(address+2), address)
	if operand == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, operand)
}

// operandString formats the operand for an opcode according to the
// addressing mode encoded in the opcode's bit patterns.
func operandString(opcode uint8, lo uint8, hi uint8, address uint16) string {
	// JSR doesn't follow the general pattern
	if opcode == 0x20 {
		return fmt.Sprintf("$%02X%02X", hi, lo)
	}

	// branch instructions all match xxx10000. the operand is a signed
	// displacement from the end of the instruction; the resolved target is
	// far more useful to the reader than the raw offset
	if opcode&0b00011111 == 0b00010000 {
		target := address + 2 + uint16(int8(lo))
		return fmt.Sprintf("$%04X", target)
	}

	// the remaining instructions fall into three families selected by the
	// low two bits, each with its own spread of addressing modes in bits
	// 4 to 2
	mode := (opcode & 0b00011100) >> 2

	switch opcode & 0b00000011 {
	case 0b01:
		switch mode {
		case 0b000:
			return fmt.Sprintf("($%02X,X)", lo)
		case 0b001:
			return fmt.Sprintf("$%02X", lo)
		case 0b010:
			return fmt.Sprintf("#$%02X", lo)
		case 0b011:
			return fmt.Sprintf("$%02X%02X", hi, lo)
		case 0b100:
			return fmt.Sprintf("($%02X),Y", lo)
		case 0b101:
			return fmt.Sprintf("$%02X,X", lo)
		case 0b110:
			return fmt.Sprintf("$%02X%02X,Y", hi, lo)
		case 0b111:
			return fmt.Sprintf("$%02X%02X,X", hi, lo)
		}

	case 0b10:
		switch mode {
		case 0b000:
			return fmt.Sprintf("#$%02X", lo)
		case 0b001:
			return fmt.Sprintf("$%02X", lo)
		case 0b010:
			// accumulator addressing, no operand
			return ""
		case 0b011:
			return fmt.Sprintf("$%02X%02X", hi, lo)
		case 0b101:
			return fmt.Sprintf("$%02X,X", lo)
		case 0b111:
			return fmt.Sprintf("$%02X%02X,X", hi, lo)
		}

	case 0b00:
		switch mode {
		case 0b000:
			return fmt.Sprintf("#$%02X", lo)
		case 0b001:
			return fmt.Sprintf("$%02X", lo)
		case 0b011:
			return fmt.Sprintf("$%02X%02X", hi, lo)
		case 0b101:
			return fmt.Sprintf("$%02X,X", lo)
		case 0b111:
			return fmt.Sprintf("$%02X%02X,X", hi, lo)
		}
	}

	return ""
}
