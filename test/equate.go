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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. The test
// fails with a formatted error if the values differ.
//
// The first value is the value under test, the second is the expected value.
// Both values must be of the same type or, as a convenience, the expected
// value can be an untyped int constant when the value under test is one of
// the integer types used by the emulation.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch value := value.(type) {
	case bool:
		if v, ok := expectedValue.(bool); !ok || value != v {
			t.Errorf("equation of type bool failed (%v - wanted %v)", value, expectedValue)
		}

	case string:
		if v, ok := expectedValue.(string); !ok || value != v {
			t.Errorf("equation of type string failed (%q - wanted %q)", value, expectedValue)
		}

	case uint8:
		v, ok := expectedValue.(uint8)
		if !ok {
			i, ok := expectedValue.(int)
			if !ok {
				t.Fatalf("values for equation are not the same type (%T and %T)", value, expectedValue)
			}
			v = uint8(i)
		}
		if value != v {
			t.Errorf("equation of type uint8 failed (%#02x - wanted %#02x)", value, v)
		}

	case uint16:
		v, ok := expectedValue.(uint16)
		if !ok {
			i, ok := expectedValue.(int)
			if !ok {
				t.Fatalf("values for equation are not the same type (%T and %T)", value, expectedValue)
			}
			v = uint16(i)
		}
		if value != v {
			t.Errorf("equation of type uint16 failed (%#04x - wanted %#04x)", value, v)
		}

	case uint64:
		v, ok := expectedValue.(uint64)
		if !ok {
			i, ok := expectedValue.(int)
			if !ok {
				t.Fatalf("values for equation are not the same type (%T and %T)", value, expectedValue)
			}
			v = uint64(i)
		}
		if value != v {
			t.Errorf("equation of type uint64 failed (%d - wanted %d)", value, v)
		}

	case int:
		if v, ok := expectedValue.(int); !ok || value != v {
			t.Errorf("equation of type int failed (%d - wanted %v)", value, expectedValue)
		}

	default:
		t.Fatalf("unsupported type (%T) for equation", value)
	}
}
