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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher6502/debugger/terminal"
	"github.com/jetsetilly/gopher6502/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher6502/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface. A small line editor:
// cursor keys move through the line and through command history, backspace
// and delete do what they say.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 255)

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput stores the latest input when we scroll through history -
	// we don't want to lose what we've typed in case the user wants to
	// resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	for each iteration in the loop
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial
	// position before the loop starts
	promptText := prompt.String()
	ct.TermPrint("\r")
	ct.TermPrint(ansi.CursorMove(len(promptText)))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint("\r")
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(promptText)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input[:n]))
		ct.TermPrint(ansi.CursorRestore)

		var rr readRune
		select {
		case rr = <-ct.reader:
		case sig := <-events.Signal:
			ct.TermPrint("\n")
			return "", events.SignalHandler(sig)
		}
		if rr.err != nil {
			return "", rr.err
		}

		switch rr.r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyCarriageReturn:
			if n > 0 {
				ct.appendHistory(input[:n])
			}
			ct.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyTab:
			// no tab completion in this debugger

		case easyterm.KeyEsc:
			rr = <-ct.reader
			if rr.err != nil {
				return "", rr.err
			}
			if rr.r != easyterm.EscCursor {
				continue
			}

			rr = <-ct.reader
			if rr.err != nil {
				return "", rr.err
			}

			switch rr.r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// store the current input for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						ct.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory)-1 {
					history++
					copy(input, ct.commandHistory[history].input)
					n = len(ct.commandHistory[history].input)
					ct.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					copy(input, buffInput)
					n = buffN
					ct.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				if cursor < n {
					copy(input[cursor:], input[cursor+1:])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) && n < len(input)-utf8.UTFMax {
				ct.TermPrint(string(rr.r))
				m := utf8.EncodeRune(er, rr.r)
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}

// appendHistory adds the line to the command history, unless it repeats
// the most recent entry.
func (ct *ColorTerminal) appendHistory(line []byte) {
	if len(ct.commandHistory) > 0 {
		last := ct.commandHistory[len(ct.commandHistory)-1].input
		if string(last) == string(line) {
			return
		}
	}

	h := make([]byte, len(line))
	copy(h, line)
	ct.commandHistory = append(ct.commandHistory, command{input: h})
}
