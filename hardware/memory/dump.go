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

package memory

import (
	"fmt"
	"strings"
)

// Dump returns a hex dump of length bytes starting at address. Memory is
// read with Peek() and so the dump has no side effects. Addresses that cannot
// be read are shown as two dashes.
func Dump(mem DebugBus, address uint16, length int) string {
	s := strings.Builder{}
	for i := 0; i < length; i += 16 {
		a := int(address) + i
		if a > 0xffff {
			break
		}
		s.WriteString(fmt.Sprintf("%04x |", a))
		for x := 0; x < 16 && i+x < length && a+x <= 0xffff; x++ {
			v, err := mem.Peek(uint16(a + x))
			if err != nil {
				s.WriteString(" --")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", v))
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
