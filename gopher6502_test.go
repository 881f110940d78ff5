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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
)

func BenchmarkCPU(b *testing.B) {
	set, err := refset.Set()
	if err != nil {
		b.Fatalf("preparing instruction set: %v", err)
	}

	comp, err := hardware.NewComputer(set)
	if err != nil {
		b.Fatalf("preparing machine: %v", err)
	}

	// an endless counting loop
	//
	//	loop:	INX
	//		JMP loop
	rom := make([]uint8, 0x100)
	copy(rom, []uint8{0xe8, 0x4c, 0x00, 0xff})
	rom[0xfc] = 0x00
	rom[0xfd] = 0xff
	if _, err := comp.Bus.AddROM("bench", 0xff00, rom); err != nil {
		b.Fatalf("preparing machine: %v", err)
	}

	if err := comp.Reset(); err != nil {
		b.Fatalf("preparing machine: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := comp.Step(); err != nil {
			b.Fatalf("stepping machine: %v", err)
		}
	}
}
