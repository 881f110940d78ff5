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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
)

// the order in which commands appear in HELP output.
var commandList = []string{
	"HELP", "QUIT", "STEP", "RUN", "RESET", "IRQ", "NMI",
	"CPU", "STACK", "PEEK", "POKE", "DISASM",
	"TRACE", "STRICT", "VIZ", "LOG",
}

var helpText = map[string]string{
	"HELP":   "show this help",
	"QUIT":   "end the debugging session",
	"STEP":   "execute one instruction (an empty line repeats the last command)",
	"RUN":    "run until an error or until interrupted with ctrl-c",
	"RESET":  "reset the machine (stack contents survive)",
	"IRQ":    "deliver an interrupt request",
	"NMI":    "deliver a non-maskable interrupt",
	"CPU":    "show the CPU registers",
	"STACK":  "show the contents of the stack",
	"PEEK":   "PEEK address [count] - show memory contents",
	"POKE":   "POKE address value [value...] - write memory",
	"DISASM": "DISASM [from [to]] - disassemble memory (default: from PC)",
	"TRACE":  "toggle instruction tracing",
	"STRICT": "toggle strict stack checking",
	"VIZ":    "VIZ file - write machine structure to file in graphviz format",
	"LOG":    "show recent log entries",
}

// how many bytes DISASM covers when no end address is given.
const disasmDefaultLength = 0x20

func (dbg *Debugger) processCommand(command string, args []string) error {
	switch command {
	case "HELP":
		for _, c := range commandList {
			dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-8s %s", c, helpText[c]))
		}

	case "QUIT", "EXIT":
		dbg.running = false

	case "STEP":
		addr := dbg.comp.CPU.PC.Address()
		disasm := cpu.Disassemble(dbg.comp.Set, dbg.comp.Bus, addr)
		if err := dbg.comp.Step(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleCPUStep, fmt.Sprintf("0x%04x %s", addr, disasm))
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.comp.CPU.FormatState())

	case "RUN":
		var count uint64
		for {
			select {
			case <-dbg.intChan:
				dbg.term.TermPrintLine(terminal.StyleFeedback,
					fmt.Sprintf("interrupted after %d instructions", count))
				return nil
			default:
			}

			if err := dbg.comp.Step(); err != nil {
				dbg.term.TermPrintLine(terminal.StyleFeedback,
					fmt.Sprintf("stopped after %d instructions", count))
				return err
			}
			count++
		}

	case "RESET":
		if err := dbg.comp.Reset(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("machine reset: PC=0x%04x", dbg.comp.CPU.PC.Address()))

	case "IRQ":
		if err := dbg.comp.IRQ(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("irq: PC=0x%04x", dbg.comp.CPU.PC.Address()))

	case "NMI":
		if err := dbg.comp.NMI(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("nmi: PC=0x%04x", dbg.comp.CPU.PC.Address()))

	case "CPU":
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.comp.CPU.FormatState())

	case "STACK":
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("used %d, free %d", dbg.comp.CPU.StackUsed(), dbg.comp.CPU.StackFree()))
		s := dbg.comp.CPU.FormatStack()
		if s == "" {
			s = "(empty)"
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s)

	case "PEEK":
		if len(args) < 1 {
			return fmt.Errorf("peek: address required")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return fmt.Errorf("peek: %w", err)
		}

		count := 1
		if len(args) > 1 {
			count, err = strconv.Atoi(args[1])
			if err != nil || count < 1 {
				return fmt.Errorf("peek: bad count: %s", args[1])
			}
		}

		s := strings.Builder{}
		for i := 0; i < count; i++ {
			v, err := dbg.comp.Bus.Read(address + uint16(i))
			if err != nil {
				return fmt.Errorf("peek: %w", err)
			}
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("0x%04x:%s", address, s.String()))

	case "POKE":
		if len(args) < 2 {
			return fmt.Errorf("poke: address and at least one value required")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return fmt.Errorf("poke: %w", err)
		}

		for i, a := range args[1:] {
			v, err := parseValue(a)
			if err != nil {
				return fmt.Errorf("poke: %w", err)
			}
			if err := dbg.comp.Bus.Write(address+uint16(i), v); err != nil {
				return fmt.Errorf("poke: %w", err)
			}
		}

	case "DISASM":
		from := dbg.comp.CPU.PC.Address()
		var err error
		if len(args) > 0 {
			from, err = parseAddress(args[0])
			if err != nil {
				return fmt.Errorf("disasm: %w", err)
			}
		}

		to := from + disasmDefaultLength - 1
		if len(args) > 1 {
			to, err = parseAddress(args[1])
			if err != nil {
				return fmt.Errorf("disasm: %w", err)
			}
		}

		dsm, err := disassembly.FromBus(dbg.comp.Set, dbg.comp.Bus, from, to)
		if err != nil {
			return fmt.Errorf("disasm: %w", err)
		}
		err = dsm.Write(styleWriter{term: dbg.term, style: terminal.StyleFeedback},
			disassembly.WriteAttr{ByteCode: true})
		if err != nil {
			return fmt.Errorf("disasm: %w", err)
		}

	case "TRACE":
		dbg.traceOn = !dbg.traceOn
		if dbg.traceOn {
			dbg.comp.CPU.SetTrace(styleWriter{term: dbg.term, style: terminal.StyleCPUStep})
			dbg.term.TermPrintLine(terminal.StyleFeedback, "tracing on")
		} else {
			dbg.comp.CPU.SetTrace(nil)
			dbg.term.TermPrintLine(terminal.StyleFeedback, "tracing off")
		}

	case "STRICT":
		dbg.strictOn = !dbg.strictOn
		dbg.comp.CPU.SetStrict(dbg.strictOn)
		if dbg.strictOn {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "strict mode on")
		} else {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "strict mode off")
		}

	case "VIZ":
		if len(args) < 1 {
			return fmt.Errorf("viz: filename required")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("viz: %w", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.comp)
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("machine structure written to %s", args[0]))

	case "LOG":
		logger.Tail(styleWriter{term: dbg.term, style: terminal.StyleLog}, 20)

	default:
		return fmt.Errorf("unknown command: %s (HELP for a list)", command)
	}

	return nil
}

// parseAddress converts a string to a 16 bit address. Hexadecimal is the
// working base of the debugger; "0x" and "$" prefixes are tolerated.
func parseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address: %s", s)
	}
	return uint16(v), nil
}

// parseValue converts a string to a byte value, hexadecimal like
// parseAddress.
func parseValue(s string) (uint8, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(t, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad value: %s", s)
	}
	return uint8(v), nil
}
