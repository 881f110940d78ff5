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

package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Sentinel errors returned by the execution engine and the interrupt
// functions. All three end a Run; the host must Reset() or abandon the
// CPU. Check with errors.Is().
var (
	UnimplementedInstruction = errors.New("cpu: unimplemented instruction")
	StackOverflow            = errors.New("cpu: stack overflow")
	StackUnderflow           = errors.New("cpu: stack underflow")
)

// CPU implements an instruction-stepped 6502 family processor. Register
// logic is implemented by the types in the registers sub-package; what the
// opcodes actually do is implemented by whoever built the instruction Set
// the CPU was created with.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	S      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// stack traffic goes through the direct interface. resolved once at
	// construction; the fallback adapter is used when mem doesn't offer
	// the direct interface itself
	direct cpubus.DirectMemory

	set Set

	// strict mode checks an instruction's declared stack usage against
	// the space actually available, before the instruction runs
	strict bool

	// trace destination. nil means tracing is off
	trace io.Writer
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// CPU begins in a zeroed state; call Reset() before running anything.
func NewCPU(mem cpubus.Memory, set Set) *CPU {
	mc := &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		S:      registers.NewRegister(0, "S"),
		SP:     registers.NewStackPointer(),
		Status: registers.NewStatusRegister(),
		mem:    mem,
		set:    set,
	}

	if direct, ok := mem.(cpubus.DirectMemory); ok {
		mc.direct = direct
	} else {
		mc.direct = &directFallback{mem: mem}
	}

	return mc
}

// directFallback satisfies cpubus.DirectMemory for memory implementations
// that don't provide the direct interface themselves. Bus errors are
// swallowed, as the direct interface demands.
type directFallback struct {
	mem cpubus.Memory
}

func (d *directFallback) DirectRead(address uint16) uint8 {
	v, _ := d.mem.Read(address)
	return v
}

func (d *directFallback) DirectWrite(address uint16, data uint8) {
	_ = d.mem.Write(address, data)
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s=%s %s=%s %s=%s",
		mc.A, mc.X, mc.Y, mc.S,
		mc.SP.Label(), mc.SP,
		mc.PC.Label(), mc.PC,
		mc.Status.Label(), mc.Status)
}

// SetStrict turns strict mode on or off. In strict mode every instruction
// and interrupt that touches the stack is checked for headroom before it
// is allowed to run.
func (mc *CPU) SetStrict(strict bool) {
	mc.strict = strict
}

// SetTrace directs a one line summary of every executed instruction to w.
// A nil writer turns tracing off.
func (mc *CPU) SetTrace(w io.Writer) {
	mc.trace = w
}

// read8Bit reads a byte through the bus. An AddressError is not fatal to
// the CPU: the zero value the bus returns alongside it is what the
// processor sees, which is as close as an emulation gets to a floating
// data line.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil && !errors.Is(err, cpubus.AddressError) {
		return 0, err
	}
	return v, nil
}

// read16Bit reads a little endian word through the bus.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8Bit(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Read8Bit reads a byte through the bus on behalf of an instruction
// handler. Handlers have no way of returning an error so none is offered:
// a read the bus cannot honour reads as zero.
func (mc *CPU) Read8Bit(address uint16) uint8 {
	v, _ := mc.mem.Read(address)
	return v
}

// Read16Bit reads a little endian word through the bus on behalf of an
// instruction handler, with the same error policy as Read8Bit.
func (mc *CPU) Read16Bit(address uint16) uint16 {
	lo, _ := mc.mem.Read(address)
	hi, _ := mc.mem.Read(address + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Write8Bit writes a byte through the bus on behalf of an instruction
// handler. A write the bus cannot honour disappears.
func (mc *CPU) Write8Bit(address uint16, data uint8) {
	_ = mc.mem.Write(address, data)
}

// LoadPCIndirect loads the program counter with the address stored at
// indirectAddress. Used for the vector table but works anywhere.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}

// Reset reinitialises the CPU: registers cleared, every flag cleared
// except InterruptDisable, stack pointer back to the top of page one, and
// the program counter loaded from the reset vector. The stack contents
// are not touched.
func (mc *CPU) Reset() error {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.S.Load(0)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.SP.Load(0xff)
	return mc.LoadPCIndirect(addresses.Reset)
}

// executeInstruction runs the instruction at the current program counter.
// The order of business matters and is part of the engine's contract:
//
//  1. with tracing on, disassemble the instruction before anything moves
//  2. fetch the opcode and find its definition. no definition or no
//     handler means UnimplementedInstruction, with nothing changed
//  3. in strict mode, check the instruction's declared stack usage
//     against the space available. failure means StackOverflow or
//     StackUnderflow, with nothing changed
//  4. advance the program counter over the whole instruction
//  5. run the handler, with the operand fetched from the original
//     instruction address. handlers that change the PC therefore win
//  6. with tracing on, emit the trace line with post-execution state
func (mc *CPU) executeInstruction() error {
	pc := mc.PC.Address()

	var traceInstruction string
	if mc.trace != nil {
		traceInstruction = Disassemble(mc.set, mc.mem, pc)
	}

	opcode, err := mc.read8Bit(pc)
	if err != nil {
		return err
	}

	defn := mc.set[opcode]
	if defn == nil || defn.Handler == nil {
		return fmt.Errorf("%w: opcode %#02x at %#04x", UnimplementedInstruction, opcode, pc)
	}

	if mc.strict && defn.Stack != 0 {
		if defn.Stack > 0 {
			if int(mc.StackFree()) < defn.Stack {
				return fmt.Errorf("%w: %s at %#04x needs %d bytes, %d free", StackOverflow,
					defn.Mnemonic, pc, defn.Stack, mc.StackFree())
			}
		} else {
			if int(mc.StackUsed()) < -defn.Stack {
				return fmt.Errorf("%w: %s at %#04x needs %d bytes, %d used", StackUnderflow,
					defn.Mnemonic, pc, -defn.Stack, mc.StackUsed())
			}
		}
	}

	mc.PC.Add(uint16(defn.Bytes))

	switch h := defn.Handler.(type) {
	case Implied:
		h(mc)
	case WithByte:
		operand, err := mc.read8Bit(pc + 1)
		if err != nil {
			return err
		}
		h(mc, operand)
	case WithWord:
		operand, err := mc.read16Bit(pc + 1)
		if err != nil {
			return err
		}
		h(mc, operand)
	}

	if mc.trace != nil {
		mc.emitTrace(pc, defn, traceInstruction)
	}

	return nil
}

// Step executes exactly one instruction.
func (mc *CPU) Step() error {
	return mc.executeInstruction()
}

// Run executes instructions until one of them fails, returning the number
// of instructions that completed alongside the error. By design a run
// always ends in an error; a program "halts" by running into an opcode
// with no handler.
func (mc *CPU) Run() (uint64, error) {
	var count uint64
	for {
		if err := mc.executeInstruction(); err != nil {
			return count, err
		}
		count++
	}
}

// Boot resets the CPU and runs it.
func (mc *CPU) Boot() (uint64, error) {
	if err := mc.Reset(); err != nil {
		return 0, err
	}
	return mc.Run()
}
