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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/test"
)

// mockTerm feeds a scripted session to the debugger and records what
// comes back.
type mockTerm struct {
	input  []string
	output []string
}

func (m *mockTerm) Initialise() error {
	return nil
}

func (m *mockTerm) CleanUp() {
}

func (m *mockTerm) Silence(_ bool) {
}

func (m *mockTerm) IsInteractive() bool {
	return false
}

func (m *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(m.input) == 0 {
		return "", io.EOF
	}
	s := m.input[0]
	m.input = m.input[1:]
	return s, nil
}

func (m *mockTerm) TermPrintLine(_ terminal.Style, s string) {
	m.output = append(m.output, s)
}

// seen returns true if any recorded output line contains the string.
func (m *mockTerm) seen(s string) bool {
	for _, l := range m.output {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

// testComputer builds a machine with a small program in ROM at 0xff00 and
// the reset vector pointing at it.
//
//	LDA #$07
//	STA $10
//	NOP
func testComputer(t *testing.T) *hardware.Computer {
	t.Helper()

	set, err := refset.Set()
	test.ExpectedSuccess(t, err)

	comp, err := hardware.NewComputer(set)
	test.ExpectedSuccess(t, err)

	rom := make([]uint8, 0x100)
	copy(rom, []uint8{0xa9, 0x07, 0x85, 0x10, 0xea})
	rom[0xfc] = 0x00
	rom[0xfd] = 0xff
	_, err = comp.Bus.AddROM("prog", 0xff00, rom)
	test.ExpectedSuccess(t, err)

	return comp
}

func session(t *testing.T, comp *hardware.Computer, input ...string) *mockTerm {
	t.Helper()

	term := &mockTerm{input: input}

	dbg, err := debugger.NewDebugger(comp, term)
	test.ExpectedSuccess(t, err)

	err = dbg.Start("")
	test.ExpectedSuccess(t, err)

	return term
}

func TestDebugger_stepAndPeek(t *testing.T) {
	comp := testComputer(t)
	term := session(t, comp, "STEP", "STEP", "PEEK 10", "QUIT")

	test.Equate(t, comp.CPU.A.Value(), 0x07)

	if !term.seen("LDA #$07") {
		t.Errorf("no step report for LDA")
	}
	if !term.seen("0x0010: 07") {
		t.Errorf("no peek report for stored value")
	}
}

func TestDebugger_emptyLineRepeats(t *testing.T) {
	comp := testComputer(t)
	session(t, comp, "STEP", "", "QUIT")

	// two steps in total: LDA then STA
	test.Equate(t, comp.CPU.PC.Address(), 0xff04)
}

func TestDebugger_pokeAndCPU(t *testing.T) {
	comp := testComputer(t)
	term := session(t, comp, "POKE 20 ab cd", "PEEK 20 2", "CPU", "QUIT")

	test.Equate(t, comp.Bus.DirectRead(0x20), 0xab)
	test.Equate(t, comp.Bus.DirectRead(0x21), 0xcd)

	if !term.seen("0x0020: ab cd") {
		t.Errorf("no peek report for poked values")
	}
	if !term.seen("A=00") {
		t.Errorf("no register summary")
	}
}

func TestDebugger_unknownCommand(t *testing.T) {
	comp := testComputer(t)
	term := session(t, comp, "WOBBLE", "QUIT")

	if !term.seen("unknown command: WOBBLE") {
		t.Errorf("no report of unknown command")
	}
}

func TestDebugger_disasm(t *testing.T) {
	comp := testComputer(t)
	term := session(t, comp, "DISASM ff00 ff04", "QUIT")

	if !term.seen("LDA #$07") {
		t.Errorf("no disassembly of LDA")
	}
	if !term.seen("STA $10") {
		t.Errorf("no disassembly of STA")
	}
}
