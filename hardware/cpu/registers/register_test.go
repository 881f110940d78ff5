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

func TestRegister(t *testing.T) {
	// initialisation
	r := registers.NewRegister(0, "A")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)
	test.Equate(t, r.Label(), "A")

	// loading
	r.Load(0x7f)
	test.Equate(t, r.Value(), 0x7f)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), false)

	// sign bit
	r.Load(0x80)
	test.Equate(t, r.IsNegative(), true)

	// widening to an address context
	r.Load(0xff)
	test.Equate(t, r.Address(), 0x00ff)

	// string representation
	test.Equate(t, r.String(), "A=0xff")
}
