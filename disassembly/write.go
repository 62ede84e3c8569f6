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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write a list of entries to io.Writer.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	for _, e := range entries {
		if err := WriteLine(output, e, attr); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, e Entry, attr WriteAttr) error {
	s := fmt.Sprintf("%04X ", e.Address)

	if attr.ByteCode {
		s = fmt.Sprintf("%s %-8s ", s, e.Bytecode)
	}

	s = fmt.Sprintf("%s %-12s", s, e.Instruction())

	if attr.Cycles && e.Defn.Implemented() {
		c := fmt.Sprintf("%d", e.Defn.Cycles)
		if e.Defn.PageSensitive {
			c = fmt.Sprintf("%s*", c)
		}
		s = fmt.Sprintf("%s %s", s, c)
	}

	_, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " ")))
	return err
}
