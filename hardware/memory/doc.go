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

// Package memory implements the address space of a 6502 machine as a list
// of memory areas. An area is a half-open window onto RAM, ROM or a pair of
// I/O port callbacks. Machine definitions add areas to a Bus in whatever
// arrangement the machine calls for; the CPU then accesses the lot through
// the cpubus interfaces without knowing what is mapped where.
//
// Areas are searched most recently added first. Overlap is allowed and is
// the intended way of shadowing one area with another, in the same way a
// plug-in card can sit in front of the memory behind it. There is no
// unmapping.
//
// Addresses serviced by no area at all read as zero and swallow writes.
// Both cases, along with writes to ROM, return an error wrapping
// cpubus.AddressError so that callers who care can tell the difference.
package memory
