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

// Package registers implements the registers of the 6502: the general
// purpose 8bit registers, the 16bit program counter, the stack pointer and
// the status register.
//
// The status register is kept as a collection of booleans and only packed
// into its 8bit form when an instruction or interrupt needs to push it onto
// the stack. See the commentary for the Value() function for the quirks of
// that packed form.
package registers
