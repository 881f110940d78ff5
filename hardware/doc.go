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

// Package hardware and its sub-packages contain everything required for a
// headless 6502 machine emulation: the CPU, the memory bus and the types
// that give the bus something to talk to.
//
// The Computer type assembles a minimal machine from those pieces. It is
// the root of the emulation for the front-end modes and the debugger;
// programs embedding the core can just as easily wire a cpu.CPU to their
// own cpubus.Memory implementation and ignore this package's top level
// entirely.
package hardware
