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

package refset

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// setNZ adjusts the sign and zero flags for a value that has just landed
// in a register, the way nearly every 6502 load and transfer does.
func setNZ(mc *cpu.CPU, value uint8) {
	mc.Status.Sign = value&0x80 == 0x80
	mc.Status.Zero = value == 0
}

func nop(mc *cpu.CPU) {}

// loads and stores

func ldaImmediate(mc *cpu.CPU, value uint8) {
	mc.A.Load(value)
	setNZ(mc, value)
}

func ldxImmediate(mc *cpu.CPU, value uint8) {
	mc.X.Load(value)
	setNZ(mc, value)
}

func ldyImmediate(mc *cpu.CPU, value uint8) {
	mc.Y.Load(value)
	setNZ(mc, value)
}

func ldaAbsolute(mc *cpu.CPU, address uint16) {
	v := mc.Read8Bit(address)
	mc.A.Load(v)
	setNZ(mc, v)
}

func staZeroPage(mc *cpu.CPU, address uint8) {
	mc.Write8Bit(uint16(address), mc.A.Value())
}

func staAbsolute(mc *cpu.CPU, address uint16) {
	mc.Write8Bit(address, mc.A.Value())
}

// register transfers

func tax(mc *cpu.CPU) {
	mc.X.Load(mc.A.Value())
	setNZ(mc, mc.X.Value())
}

func txa(mc *cpu.CPU) {
	mc.A.Load(mc.X.Value())
	setNZ(mc, mc.A.Value())
}

func txs(mc *cpu.CPU) {
	// no flags are adjusted on a transfer into the stack pointer
	mc.SP.Load(mc.X.Value())
}

func tsx(mc *cpu.CPU) {
	mc.X.Load(mc.SP.Value())
	setNZ(mc, mc.X.Value())
}

// increment and decrement

func inx(mc *cpu.CPU) {
	mc.X.Load(mc.X.Value() + 1)
	setNZ(mc, mc.X.Value())
}

func dex(mc *cpu.CPU) {
	mc.X.Load(mc.X.Value() - 1)
	setNZ(mc, mc.X.Value())
}

func iny(mc *cpu.CPU) {
	mc.Y.Load(mc.Y.Value() + 1)
	setNZ(mc, mc.Y.Value())
}

func dey(mc *cpu.CPU) {
	mc.Y.Load(mc.Y.Value() - 1)
	setNZ(mc, mc.Y.Value())
}

// comparison

func cmpImmediate(mc *cpu.CPU, value uint8) {
	r := mc.A.Value() - value
	mc.Status.Carry = mc.A.Value() >= value
	mc.Status.Zero = r == 0
	mc.Status.Sign = r&0x80 == 0x80
}

// flag instructions

func sec(mc *cpu.CPU) { mc.Status.Carry = true }
func clc(mc *cpu.CPU) { mc.Status.Carry = false }
func sei(mc *cpu.CPU) { mc.Status.InterruptDisable = true }
func cli(mc *cpu.CPU) { mc.Status.InterruptDisable = false }

// flow control. the engine has already moved the program counter past the
// instruction, so a branch displaces from there and a jump simply loads

func jmpAbsolute(mc *cpu.CPU, address uint16) {
	mc.PC.Load(address)
}

func bne(mc *cpu.CPU, displacement uint8) {
	if !mc.Status.Zero {
		mc.PC.Add(uint16(int8(displacement)))
	}
}

func beq(mc *cpu.CPU, displacement uint8) {
	if mc.Status.Zero {
		mc.PC.Add(uint16(int8(displacement)))
	}
}

// subroutines. following the real hardware, JSR saves the address of the
// last byte of the JSR instruction and RTS adds one on the way out

func jsr(mc *cpu.CPU, address uint16) {
	mc.PushWord(mc.PC.Address() - 1)
	mc.PC.Load(address)
}

func rts(mc *cpu.CPU) {
	mc.PC.Load(mc.PullWord() + 1)
}

// stack instructions

func pha(mc *cpu.CPU) {
	mc.PushByte(mc.A.Value())
}

func pla(mc *cpu.CPU) {
	mc.A.Load(mc.PullByte())
	setNZ(mc, mc.A.Value())
}

func php(mc *cpu.CPU) {
	mc.PushByte(mc.Status.Value())
}

func plp(mc *cpu.CPU) {
	mc.Status.FromValue(mc.PullByte())
}

// Set builds the reference instruction set. Each call returns a fresh
// value so a caller is free to amend its copy before giving it to a CPU.
func Set() (cpu.Set, error) {
	return cpu.NewSet([]*cpu.Definition{
		{OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Handler: cpu.Implied(nop)},

		{OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Handler: cpu.WithByte(ldaImmediate)},
		{OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Handler: cpu.WithByte(ldxImmediate)},
		{OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Handler: cpu.WithByte(ldyImmediate)},
		{OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Handler: cpu.WithWord(ldaAbsolute)},
		{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Handler: cpu.WithByte(staZeroPage)},
		{OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Handler: cpu.WithWord(staAbsolute)},

		{OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Handler: cpu.Implied(tax)},
		{OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Handler: cpu.Implied(txa)},
		{OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Handler: cpu.Implied(txs)},
		{OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Handler: cpu.Implied(tsx)},

		{OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Handler: cpu.Implied(inx)},
		{OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Handler: cpu.Implied(dex)},
		{OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Handler: cpu.Implied(iny)},
		{OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Handler: cpu.Implied(dey)},

		{OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Handler: cpu.WithByte(cmpImmediate)},

		{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Handler: cpu.Implied(sec)},
		{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Handler: cpu.Implied(clc)},
		{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Handler: cpu.Implied(sei)},
		{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Handler: cpu.Implied(cli)},

		{OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Handler: cpu.WithWord(jmpAbsolute)},
		{OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Handler: cpu.WithByte(bne)},
		{OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Handler: cpu.WithByte(beq)},
		{OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Stack: 2, Handler: cpu.WithWord(jsr)},
		{OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Stack: -2, Handler: cpu.Implied(rts)},

		{OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Stack: 1, Handler: cpu.Implied(pha)},
		{OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Stack: -1, Handler: cpu.Implied(pla)},
		{OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Stack: 1, Handler: cpu.Implied(php)},
		{OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Stack: -1, Handler: cpu.Implied(plp)},
	})
}
