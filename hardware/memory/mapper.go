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

// Mapper is implemented by everything that can be placed in the address
// space of the CPU.
//
// Addresses passed to a Mapper may be in any of the mapper's zones, including
// mirrors. The mapper is responsible for redirecting mirror addresses to its
// primary range.
type Mapper interface {
	Read(address uint16) (uint8, error)

	// Read16 returns (address << 8) | (address + 1). It is a raw peek and
	// has no side effects.
	Read16(address uint16) (uint16, error)

	Write(address uint16, data uint8) error

	// WriteArray is all-or-nothing. If any address in the block would fail
	// then nothing is written.
	WriteArray(address uint16, data []uint8) error

	// Zones returns the memory zones of the mapper. The result should not be
	// modified.
	Zones() []memorymap.Zone
}

// WriteChecker is implemented by mappers that can tell in advance whether a
// call to WriteArray() with a block of the given length would succeed. The
// check must have no side effects.
type WriteChecker interface {
	CheckWriteArray(address uint16, length int) error
}

// DebugBus defines the meta-operations for memory. Think of these functions as
// "debugging" functions, that is operations outside of the normal operation of
// the machine. Peek and Poke must have no side effects beyond the value
// written by Poke.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Label is implemented by mappers that have a name.
type Label interface {
	Label() string
}

func label(m Mapper) string {
	if l, ok := m.(Label); ok {
		return l.Label()
	}
	if z := m.Zones(); len(z) > 0 {
		return z[0].Name
	}
	return "unnamed"
}
