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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/test"
)

// a machine that spins on a JMP so that Check() has something endless to
// measure.
func spinComputer(t *testing.T) *hardware.Computer {
	t.Helper()

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	comp, err := hardware.NewComputer(set)
	test.ExpectedSuccess(t, err)

	rom := make([]uint8, 0x100)
	copy(rom, []uint8{0xea, 0x4c, 0x00, 0xff})
	rom[0xfc] = 0x00
	rom[0xfd] = 0xff
	_, err = comp.Bus.AddROM("spin", 0xff00, rom)
	test.ExpectedSuccess(t, err)

	return comp
}

func TestCheck(t *testing.T) {
	comp := spinComputer(t)

	output := &strings.Builder{}
	err := performance.Check(output, false, comp, "50ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(output.String(), "instructions/sec") {
		t.Errorf("no performance summary in output: %q", output.String())
	}
}

func TestCheckBadDuration(t *testing.T) {
	comp := spinComputer(t)
	err := performance.Check(&strings.Builder{}, false, comp, "not a duration")
	test.ExpectedFailure(t, err)
}
