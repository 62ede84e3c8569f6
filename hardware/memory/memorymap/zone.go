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
	"slices"

	"github.com/jetsetilly/gopher6502/curated"
)

// InvalidZone is the error pattern for a zone that cannot be used.
const InvalidZone = "memorymap: invalid zone (%s): %s"

// Range is a contiguous range of addresses. Arithmetic on ranges is done
// with int so that a range can end at the very top of the address space.
type Range struct {
	Start  uint16
	Length int
}

// End returns the first address beyond the range.
func (r Range) End() int {
	return int(r.Start) + r.Length
}

// Contains returns true if address is inside the range.
func (r Range) Contains(address uint16) bool {
	return int(address) >= int(r.Start) && int(address) < r.End()
}

// Overlaps returns true if any address is in both ranges.
func (r Range) Overlaps(o Range) bool {
	return int(r.Start) < o.End() && int(o.Start) < r.End()
}

func (r Range) String() string {
	return fmt.Sprintf("%04x -> %04x", r.Start, r.End()-1)
}

// Zone is a primary range of addresses and the start addresses of its
// mirrors. Every mirror has the same length as the primary range.
type Zone struct {
	Name    string
	Start   uint16
	Length  int
	Mirrors []uint16
}

func (z Zone) String() string {
	return fmt.Sprintf("%s %s (%d mirrors)", z.Name, z.Primary(), len(z.Mirrors))
}

// Primary returns the primary range of the zone.
func (z Zone) Primary() Range {
	return Range{Start: z.Start, Length: z.Length}
}

// Ranges returns the primary range followed by every mirror range.
func (z Zone) Ranges() []Range {
	r := make([]Range, 0, len(z.Mirrors)+1)
	r = append(r, z.Primary())
	for _, m := range z.Mirrors {
		r = append(r, Range{Start: m, Length: z.Length})
	}
	return r
}

// Resolve redirects an address in the zone to its primary address. Returns
// false if the address is not in the zone.
func (z Zone) Resolve(address uint16) (uint16, bool) {
	if z.Primary().Contains(address) {
		return address, true
	}
	for _, m := range z.Mirrors {
		r := Range{Start: m, Length: z.Length}
		if r.Contains(address) {
			return z.Start + (address - m), true
		}
	}
	return address, false
}

// Check returns an error if the zone is unusable. A zone is unusable if it is
// empty, if any range goes beyond the top of memory, or if any of its ranges
// overlap.
func (z Zone) Check() error {
	if z.Length <= 0 {
		return curated.Errorf(InvalidZone, z.Name, "zero length")
	}

	r := z.Ranges()
	for i := range r {
		if r[i].End() > AddressSpaceSize {
			return curated.Errorf(InvalidZone, z.Name, fmt.Sprintf("%s beyond top of memory", r[i]))
		}
		for j := i + 1; j < len(r); j++ {
			if r[i].Overlaps(r[j]) {
				return curated.Errorf(InvalidZone, z.Name, fmt.Sprintf("%s overlaps %s", r[i], r[j]))
			}
		}
	}

	return nil
}

// Resolve redirects the address to its primary address in whichever of the
// zones contains it. The index of the zone is also returned. If no zone
// contains the address then the address is returned unchanged and the index
// is -1.
func Resolve(zones []Zone, address uint16) (uint16, int) {
	for i, z := range zones {
		if a, ok := z.Resolve(address); ok {
			return a, i
		}
	}
	return address, -1
}

// SortedRanges returns every range of every zone, ordered by start address.
// The name of the zone owning the range is returned alongside each range.
func SortedRanges(zones []Zone) []NamedRange {
	var n []NamedRange
	for _, z := range zones {
		for i, r := range z.Ranges() {
			n = append(n, NamedRange{Range: r, Name: z.Name, Mirror: i > 0})
		}
	}
	slices.SortStableFunc(n, func(a, b NamedRange) int {
		return int(a.Start) - int(b.Start)
	})
	return n
}

// NamedRange is a Range along with the name of the zone it belongs to.
type NamedRange struct {
	Range
	Name   string
	Mirror bool
}
