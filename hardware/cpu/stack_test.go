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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/test"
)

func TestStackRoundTrip(t *testing.T) {
	bus := testBus(t)
	putResetVector(t, bus, 0x8000)

	mc := cpu.NewCPU(bus, cpu.Set{})
	test.ExpectedSuccess(t, mc.Reset())

	mc.PushByte(0xa5)
	test.Equate(t, mc.PullByte(), 0xa5)
	test.Equate(t, mc.SP.Value(), 0xff)

	mc.PushWord(0x1234)
	test.Equate(t, mc.PullWord(), 0x1234)
	test.Equate(t, mc.SP.Value(), 0xff)

	// last pushed is first pulled
	mc.PushByte(0x01)
	mc.PushByte(0x02)
	test.Equate(t, mc.PullByte(), 0x02)
	test.Equate(t, mc.PullByte(), 0x01)
}

func TestStackInMemory(t *testing.T) {
	bus := testBus(t)
	putResetVector(t, bus, 0x8000)

	mc := cpu.NewCPU(bus, cpu.Set{})
	test.ExpectedSuccess(t, mc.Reset())

	// a pushed word sits in page one little endian, below the starting
	// stack address
	mc.PushWord(0x1234)
	v, err := bus.ReadWord(0x01fe)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x1234)
}

func TestStackAccounting(t *testing.T) {
	bus := testBus(t)
	putResetVector(t, bus, 0x8000)

	mc := cpu.NewCPU(bus, cpu.Set{})
	test.ExpectedSuccess(t, mc.Reset())

	test.Equate(t, mc.StackFree(), 0xff)
	test.Equate(t, mc.StackUsed(), 0)

	for k := 1; k <= 16; k++ {
		mc.PushByte(uint8(k))
		test.Equate(t, mc.StackFree(), 0xff-k)
		test.Equate(t, mc.StackUsed(), k)
	}
}

func TestFormatStack(t *testing.T) {
	bus := testBus(t)
	putResetVector(t, bus, 0x8000)

	mc := cpu.NewCPU(bus, cpu.Set{})
	test.ExpectedSuccess(t, mc.Reset())

	test.Equate(t, mc.FormatStack(), "")

	mc.PushByte(0x11)
	mc.PushByte(0x22)
	test.Equate(t, mc.FormatStack(), "22 11")
}
