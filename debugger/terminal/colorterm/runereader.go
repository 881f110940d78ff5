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
	"bufio"
	"io"
)

type readRune struct {
	r   rune
	err error
}

// runeReader turns a blocking input stream into a channel of runes. The
// channel lets TermRead() wait for a keypress and an operating system
// signal at the same time, which a straight Read() cannot do.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	br := bufio.NewReader(input)
	ch := make(runeReader)

	go func() {
		for {
			r, _, err := br.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}
