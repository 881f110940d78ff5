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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include a column of raw instruction bytes
	ByteCode bool
}

// Write the entire disassembly to output.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to output.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if attr.ByteCode {
		raw := strings.Builder{}
		for i, b := range e.Bytes {
			if i > 0 {
				raw.WriteRune(' ')
			}
			fmt.Fprintf(&raw, "%02X", b)
		}
		_, err := fmt.Fprintf(output, "%04x  %-8s  %s\n", e.Address, raw.String(), e.Operation)
		return err
	}

	_, err := fmt.Fprintf(output, "%04x  %s\n", e.Address, e.Operation)
	return err
}
