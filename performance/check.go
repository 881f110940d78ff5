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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/hardware"
)

// how many instructions to execute between checks of the duration timer.
// the batch keeps the select out of the inner loop
const batch = 10000

// Check is a rough and ready measurement of how quickly the emulation can
// execute instructions. The machine is reset and run for the specified
// duration; the result is written to output as instructions per second.
func Check(output io.Writer, profile bool, comp *hardware.Computer, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	if err := comp.Reset(); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var count uint64
	var elapsed time.Duration

	runner := func() error {
		timeout := time.After(dur)
		start := time.Now()

		for {
			select {
			case <-timeout:
				elapsed = time.Since(start)
				return nil
			default:
			}

			for i := 0; i < batch; i++ {
				if err := comp.Step(); err != nil {
					elapsed = time.Since(start)
					return err
				}
				count++
			}
		}
	}

	if profile {
		err = ProfileCPU("cpu.profile", runner)
		if err == nil {
			err = ProfileMemory("mem.profile")
		}
	} else {
		err = runner()
	}
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	secs := elapsed.Seconds()
	if secs <= 0 {
		return fmt.Errorf("performance: duration too short to measure anything")
	}

	fmt.Fprintf(output, "%d instructions in %.2fs; %.0f instructions/sec\n",
		count, secs, float64(count)/secs)

	return nil
}
