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

// The stack engine. The stack lives in page one of memory and is reached
// through the bus's direct access path; the stack pointer register
// supplies the addresses and the push/pull disciplines.
//
// Nothing here checks for overflow or underflow. The pointer wraps at the
// page boundary exactly as the real register does; catching the wrap
// before it happens is strict mode's job, in the execution engine, using
// the StackFree and StackUsed queries below.

// PushByte writes a byte to the current stack address and moves the stack
// pointer down.
func (mc *CPU) PushByte(data uint8) {
	mc.direct.DirectWrite(mc.SP.PostDecrement(), data)
}

// PushWord pushes the high byte of a 16bit value and then the low byte,
// leaving the low byte at the lower address. The word is recovered in one
// PullWord.
func (mc *CPU) PushWord(data uint16) {
	mc.PushByte(uint8(data >> 8))
	mc.PushByte(uint8(data))
}

// PullByte moves the stack pointer up and reads the byte there.
func (mc *CPU) PullByte() uint8 {
	return mc.direct.DirectRead(mc.SP.PreIncrement())
}

// PullWord pulls the low byte and then the high byte of a 16bit value, the
// reverse of PushWord.
func (mc *CPU) PullWord() uint16 {
	lo := mc.PullByte()
	hi := mc.PullByte()
	return uint16(lo) | uint16(hi)<<8
}

// StackFree returns the number of bytes that can be pushed before the
// stack pointer wraps.
func (mc *CPU) StackFree() uint8 {
	return mc.SP.Value()
}

// StackUsed returns the number of bytes currently on the stack.
func (mc *CPU) StackUsed() uint8 {
	return 0xff - mc.SP.Value()
}
