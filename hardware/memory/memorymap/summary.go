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
package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing every range of the
// zones, in address order. Useful for reference.
func Summary(zones []Zone) string {
	s := strings.Builder{}
	for _, r := range SortedRanges(zones) {
		if r.Mirror {
			s.WriteString(fmt.Sprintf("%s\t%s (mirror)\n", r.Range, r.Name))
		} else {
			s.WriteString(fmt.Sprintf("%s\t%s\n", r.Range, r.Name))
		}
	}
	return s.String()
}
