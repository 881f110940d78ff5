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

// Package terminal defines the operations required for command line
// interaction with the debugger: the Terminal interface, the Prompt and
// Style types that decorate its traffic, and the ReadEvents bundle
// through which operating system signals reach an in-progress read.
//
// Two implementations are provided. The plainterm sub-package leaves the
// terminal in whatever mode it found it and works over pipes; the
// colorterm sub-package takes the terminal into raw mode for line editing,
// command history and colour.
package terminal
