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

// Package refset defines a small reference instruction set for the cpu
// package: enough of the 6502 to write programs with loops, subroutine
// calls and stack traffic, and no more. It exists so the rest of the
// project has something concrete to execute and so that anyone defining a
// complete instruction set has a worked example of the shape of one.
//
// It is emphatically not a full 6502. Most opcodes are absent and
// fetching one of them halts the CPU with an unimplemented instruction
// error, which doubles as the conventional way for a refset program to
// end.
package refset
