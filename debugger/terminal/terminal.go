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

package terminal

import (
	"errors"
	"os"
)

// UserInterrupt is returned by TermRead() when the user has interrupted
// the session (with ctrl-c for instance) rather than typed a line.
var UserInterrupt = errors.New("user interrupt")

// Prompt specifies the prompt text shown when the terminal asks for input.
type Prompt struct {
	// the content of the prompt. for this debugger, a summary of the next
	// instruction to be executed
	Content string
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	return "[ " + p.Content + " ] >> "
}

// Style is used to hint at the purpose of a line of output, for terminals
// that can differentiate.
type Style int

// List of styles.
const (
	// input the user has typed. terminals that echo automatically should
	// discard lines of this style
	StyleEcho Style = iota

	// information from the debugger: command output, status summaries
	StyleFeedback

	// the result of a STEP: the instruction just executed
	StyleCPUStep

	// help text
	StyleHelp

	// lines from the application log
	StyleLog

	// something went wrong. error lines are shown even when the terminal
	// has been silenced
	StyleError
)

// ReadEvents is the collection of channels that need to be monitored
// during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// callback function for when a signal has been received
	SignalHandler func(sig os.Signal) error
}

// Input defines the operations required by an interface that allows
// input.
type Input interface {
	// TermRead returns the next line of input, prompting if the terminal
	// is interactive. Implementations should check the ReadEvents
	// channels while waiting for input where their context allows it.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction. Instances reading from a script or a pipe should
	// return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows
// output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for
	// example, we could use this to make sure the terminal is returned to
	// canonical mode. not all terminal implementations will need to do
	// anything.
	CleanUp()

	// Silence all input and output except error messages.
	Silence(silenced bool)
}
