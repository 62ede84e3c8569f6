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
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// Unconnected is a Mapper for an area of memory with nothing behind it. Reads
// return zero and writes are accepted and discarded.
//
// In the VCS layout it stands in for the video chip, which is not emulated, so
// that programs that write to the video registers can run.
type Unconnected struct {
	zones []memorymap.Zone
}

// NewUnconnected is the preferred method of initialisation for the
// Unconnected type.
func NewUnconnected(zones ...memorymap.Zone) *Unconnected {
	return &Unconnected{zones: zones}
}

// NewTIA returns an Unconnected device covering the TIA area of the VCS and
// its mirrors in the lower 1K of the address space.
func NewTIA() *Unconnected {
	return NewUnconnected(memorymap.Zone{
		Name:    "TIA",
		Start:   memorymap.OriginTIA,
		Length:  int(memorymap.MemtopTIA-memorymap.OriginTIA) + 1,
		Mirrors: []uint16{0x0100, 0x0200, 0x0300},
	})
}

// Label implements the Label interface.
func (u *Unconnected) Label() string {
	if len(u.zones) > 0 {
		return u.zones[0].Name
	}
	return "unconnected"
}

// Zones implements the Mapper interface.
func (u *Unconnected) Zones() []memorymap.Zone {
	return u.zones
}

// Read implements the Mapper interface.
func (u *Unconnected) Read(_ uint16) (uint8, error) {
	return 0, nil
}

// Read16 implements the Mapper interface.
func (u *Unconnected) Read16(_ uint16) (uint16, error) {
	return 0, nil
}

// Write implements the Mapper interface.
func (u *Unconnected) Write(_ uint16, _ uint8) error {
	return nil
}

// WriteArray implements the Mapper interface.
func (u *Unconnected) WriteArray(_ uint16, _ []uint8) error {
	return nil
}

// CheckWriteArray implements the WriteChecker interface.
func (u *Unconnected) CheckWriteArray(_ uint16, _ int) error {
	return nil
}
