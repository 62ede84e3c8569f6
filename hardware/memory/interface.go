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

// Interface is the single point through which the CPU reaches memory. The
// Interface does not own the Mapper; the mapper must outlive the CPU or be
// replaced with Plumb().
//
// The Interface does not count cycles. That is the responsibility of the CPU.
type Interface struct {
	mem Mapper
}

// NewInterface is the preferred method of initialisation for the Interface
// type. The mapper may be nil if it is to be plumbed in later.
func NewInterface(mem Mapper) *Interface {
	return &Interface{mem: mem}
}

// Plumb binds a new Mapper to the interface.
func (mi *Interface) Plumb(mem Mapper) {
	mi.mem = mem
}

// Mapper returns the Mapper currently bound to the interface.
func (mi *Interface) Mapper() Mapper {
	return mi.mem
}

// Read implements the Mapper interface.
func (mi *Interface) Read(address uint16) (uint8, error) {
	return mi.mem.Read(address)
}

// Read16 implements the Mapper interface.
func (mi *Interface) Read16(address uint16) (uint16, error) {
	return mi.mem.Read16(address)
}

// Write implements the Mapper interface.
func (mi *Interface) Write(address uint16, data uint8) error {
	return mi.mem.Write(address, data)
}

// WriteArray implements the Mapper interface.
func (mi *Interface) WriteArray(address uint16, data []uint8) error {
	return mi.mem.WriteArray(address, data)
}

// Zones implements the Mapper interface.
func (mi *Interface) Zones() []memorymap.Zone {
	return mi.mem.Zones()
}

// Peek implements the DebugBus interface. If the bound Mapper does not
// implement DebugBus then Read() is used.
func (mi *Interface) Peek(address uint16) (uint8, error) {
	if d, ok := mi.mem.(DebugBus); ok {
		return d.Peek(address)
	}
	return mi.mem.Read(address)
}

// Poke implements the DebugBus interface. If the bound Mapper does not
// implement DebugBus then Write() is used.
func (mi *Interface) Poke(address uint16, value uint8) error {
	if d, ok := mi.mem.(DebugBus); ok {
		return d.Poke(address, value)
	}
	return mi.mem.Write(address, value)
}
