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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

func TestStackPointer(t *testing.T) {
	// the stack pointer begins at the top of page one
	sp := registers.NewStackPointer()
	test.Equate(t, sp.Value(), 0xff)
	test.Equate(t, sp.Address(), 0x01ff)

	// push discipline. address is returned before the pointer moves
	test.Equate(t, sp.PostDecrement(), 0x01ff)
	test.Equate(t, sp.Value(), 0xfe)

	// pull discipline. pointer moves before the address is returned
	test.Equate(t, sp.PreIncrement(), 0x01ff)
	test.Equate(t, sp.Value(), 0xff)

	// the pointer never leaves page one
	sp.Load(0x00)
	test.Equate(t, sp.Address(), 0x0100)
	test.Equate(t, sp.PostDecrement(), 0x0100)
	test.Equate(t, sp.Value(), 0xff)
	test.Equate(t, sp.Address(), 0x01ff)

	// and wraps the other way too
	test.Equate(t, sp.PreIncrement(), 0x0100)
	test.Equate(t, sp.Value(), 0x00)

	// string representation is the full page one address
	test.Equate(t, sp.String(), "0x0100")
}
