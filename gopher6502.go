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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher6502/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/refset"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/performance"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to every mode that builds a machine.
type machineFlags struct {
	roms   *string
	reset  *string
	trace  *bool
	strict *bool
	log    *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	mf := &machineFlags{}
	mf.roms = md.AddString("rom", "", "ROMs to map: origin:file[,origin:file...] (origin in hex)")
	mf.reset = md.AddString("reset", "", "map a two byte ROM at the reset vector pointing at this address (hex)")
	mf.trace = md.AddBool("trace", false, "trace executed instructions to stdout")
	mf.strict = md.AddBool("strict", false, "strict stack checking")
	mf.log = md.AddBool("log", false, "echo debugging log to stdout")
	return mf
}

// build assembles a machine according to the flags. The machine has not
// been reset.
func (mf *machineFlags) build() (*hardware.Computer, error) {
	set, err := refset.Set()
	if err != nil {
		return nil, err
	}

	comp, err := hardware.NewComputer(set)
	if err != nil {
		return nil, err
	}

	if *mf.roms != "" {
		for i, romSpec := range strings.Split(*mf.roms, ",") {
			parts := strings.SplitN(romSpec, ":", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("bad ROM specification (origin:file): %s", romSpec)
			}

			origin, err := parseAddress(parts[0])
			if err != nil {
				return nil, err
			}

			if _, err := comp.Bus.AddROMFromFile(fmt.Sprintf("rom%d", i), origin, parts[1]); err != nil {
				return nil, err
			}
		}
	}

	// the reset flag maps a tiny ROM over the reset vector. useful for ROM
	// images that don't carry their own vectors
	if *mf.reset != "" {
		entry, err := parseAddress(*mf.reset)
		if err != nil {
			return nil, err
		}
		vector := []uint8{uint8(entry & 0xff), uint8(entry >> 8)}
		if _, err := comp.Bus.AddROM("reset", addresses.Reset, vector); err != nil {
			return nil, err
		}
	}

	if *mf.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *mf.trace {
		comp.CPU.SetTrace(os.Stdout)
	}
	comp.CPU.SetStrict(*mf.strict)

	return comp, nil
}

func parseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address: %s", s)
	}
	return uint16(v), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	comp, err := mf.build()
	if err != nil {
		return err
	}

	count, runErr := comp.Boot()

	fmt.Fprintf(md.Output, "%d instructions\n", count)
	fmt.Fprintln(md.Output, comp.CPU.FormatState())

	// the machine runs until an instruction fails so the error is how the
	// run ends, not a failure of the program
	if runErr != nil {
		fmt.Fprintf(md.Output, "stopped: %v\n", runErr)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)
	termType := md.AddString("term", "color", "terminal type to use in debug mode: color, plain")
	initScript := md.AddString("initscript", "", "script to run before going interactive")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	comp, err := mf.build()
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToLower(*termType) {
	case "color":
		term = &colorterm.ColorTerminal{}
	case "plain":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type: %s", *termType)
	}

	dbg, err := debugger.NewDebugger(comp, term)
	if err != nil {
		return err
	}

	if *profile {
		return performance.ProfileCPU("debugger.cpu.profile", func() error {
			return dbg.Start(*initScript)
		})
	}

	return dbg.Start(*initScript)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	bytecode := md.AddBool("bytecode", false, "include instruction bytes in the listing")
	origin := md.AddString("origin", "0x0000", "address the ROM file is mapped at (hex)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		org, err := parseAddress(*origin)
		if err != nil {
			return err
		}

		set, err := refset.Set()
		if err != nil {
			return err
		}

		bus := memory.NewBus()
		rom, err := bus.AddROMFromFile("disasm", org, md.GetArg(0))
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromBus(set, bus, rom.Origin(), rom.Memtop())
		if err != nil {
			return err
		}

		return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write CPU and memory profiles")
	stats := md.AddBool("statsview", false, "run a live stats server during the measurement")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	comp, err := mf.build()
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "statsview not available in this build")
		}
	}

	return performance.Check(md.Output, *profile, comp, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	fmt.Fprintln(md.Output, rev)

	return nil
}
