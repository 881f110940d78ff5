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

package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// Debugger is the basic debugging frontend for the emulation. An
// instruction-at-a-time monitor: it steps the machine, inspects it and
// changes it, through whatever terminal implementation it has been given.
type Debugger struct {
	comp *hardware.Computer
	term terminal.Terminal

	// interrupt signals from the operating system. monitored while
	// reading input and while the machine is running
	intChan chan os.Signal
	events  *terminal.ReadEvents

	// whether the debugging loop should continue after the current
	// command has been processed
	running bool

	// an empty line of input repeats the last command
	lastCommand string

	// mirrors of CPU state that the CPU doesn't report back. the TRACE
	// and STRICT commands are toggles so we need to know where we are
	traceOn  bool
	strictOn bool
}

// NewDebugger creates a debugger around an assembled machine. The
// terminal is not initialised until Start().
func NewDebugger(comp *hardware.Computer, term terminal.Terminal) (*Debugger, error) {
	if comp == nil {
		return nil, errors.New("debugger: no machine to debug")
	}
	if term == nil {
		return nil, errors.New("debugger: no terminal")
	}

	dbg := &Debugger{
		comp: comp,
		term: term,
	}

	dbg.intChan = make(chan os.Signal, 1)
	dbg.events = &terminal.ReadEvents{
		Signal: dbg.intChan,
		SignalHandler: func(sig os.Signal) error {
			return terminal.UserInterrupt
		},
	}

	return dbg, nil
}

// Start the debugging session. The machine is reset first and the
// commands in initScript, if any, are run before the session goes
// interactive.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	// a reset failure is reported rather than being fatal. a machine
	// with no reset vector mapped yet is still worth debugging
	if err := dbg.comp.Reset(); err != nil {
		dbg.printError(err)
	}

	dbg.running = true

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printError(err)
		}
	}

	return dbg.inputLoop()
}

// runScript processes a file of debugger commands, echoing each one as
// though it had been typed.
func (dbg *Debugger) runScript(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for dbg.running && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dbg.term.TermPrintLine(terminal.StyleEcho, line)
		dbg.parseInput(line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	return nil
}

func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		prompt := terminal.Prompt{
			Content: fmt.Sprintf("0x%04x %s",
				dbg.comp.CPU.PC.Address(),
				cpu.Disassemble(dbg.comp.Set, dbg.comp.Bus, dbg.comp.CPU.PC.Address()),
			),
		}

		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if errors.Is(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		dbg.parseInput(input)
	}

	return nil
}

// parseInput splits a line of input into a command and its arguments and
// processes it. Errors from the command are printed, not returned; a bad
// command shouldn't end the session.
func (dbg *Debugger) parseInput(input string) {
	input = strings.TrimSpace(input)

	if input == "" {
		input = dbg.lastCommand
		if input == "" {
			return
		}
	} else {
		dbg.lastCommand = input
	}

	tokens := strings.Fields(input)

	if err := dbg.processCommand(strings.ToUpper(tokens[0]), tokens[1:]); err != nil {
		dbg.printError(err)
	}
}

func (dbg *Debugger) printError(err error) {
	dbg.term.TermPrintLine(terminal.StyleError, err.Error())
}

// styleWriter adapts the terminal's line-at-a-time output to io.Writer,
// for the parts of the system (tracing, the logger, listings) that want
// a plain writer.
type styleWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (w styleWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.term.TermPrintLine(w.style, l)
	}
	return len(p), nil
}
