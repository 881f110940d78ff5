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

// Package debugger is an interactive monitor for the emulated machine. It
// steps the CPU one instruction at a time, shows and changes registers and
// memory, delivers interrupts and produces disassemblies, all from a small
// command language read through the terminal abstraction in the terminal
// sub-package.
//
// The debugger owns the session: create one with NewDebugger() and call
// Start(). Commands arrive through an implementation of terminal.Terminal;
// two are provided, plainterm for dumb or scripted input and colorterm for
// an ANSI terminal with line editing and command history.
package debugger
