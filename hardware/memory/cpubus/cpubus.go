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

package cpubus

import "errors"

// AddressError is a sentinel error returned by implementations of the Memory
// interface when an access cannot be honoured. Reads that fail in this way
// must also return a data value of zero, and writes that fail must leave
// memory unchanged.
//
// Use errors.Is() to check for AddressError. The CPU treats it as advisory
// rather than fatal. Reads read zero, writes are swallowed and the emulation
// carries on, which is what the hardware would do.
var AddressError = errors.New("address error")

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type in the memory package implements this interface and walks
// the list of memory areas on every access, meaning the CPU need not care
// which area it is addressing.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DirectMemory defines the supplementary operations for memory systems that
// can provide access to the lowest two pages of the address space without the
// cost of area lookup. The CPU uses it for all stack traffic.
//
// Implementations are only required to honour addresses below 0x0200 and can
// assume they will never see anything higher.
type DirectMemory interface {
	DirectRead(address uint16) uint8
	DirectWrite(address uint16, data uint8)
}
