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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// RAM is a Mapper backed by an AddressSpace. Mirror zones are resolved to
// their primary range before the AddressSpace is accessed, meaning that a
// mirror is a view of the primary range and never a copy.
type RAM struct {
	space *AddressSpace
	zones []memorymap.Zone
}

// NewRAM is the preferred method of initialisation for the RAM type. The size
// argument is the capacity of the underlying AddressSpace (zero selects a
// full 64K address space).
//
// If no zones are given then the RAM has a single zone covering the entire
// address space with no mirrors. The primary range of every zone must fit
// inside the capacity. Mirrors may lie beyond the capacity.
func NewRAM(size int, zones ...memorymap.Zone) (*RAM, error) {
	ram := &RAM{
		space: NewAddressSpace(size),
	}

	if len(zones) == 0 {
		zones = []memorymap.Zone{{Name: "RAM", Start: 0, Length: ram.space.Capacity()}}
	}

	for i, z := range zones {
		if err := z.Check(); err != nil {
			return nil, curated.Errorf("ram: %v", err)
		}
		if z.Primary().End() > ram.space.Capacity() {
			return nil, curated.Errorf("ram: %v", curated.Errorf(memorymap.InvalidZone, z.Name, "primary range beyond capacity"))
		}
		for _, o := range zones[i+1:] {
			for _, a := range z.Ranges() {
				for _, b := range o.Ranges() {
					if a.Overlaps(b) {
						return nil, curated.Errorf("ram: %v", curated.Errorf(Overlap, a, b))
					}
				}
			}
		}
	}

	ram.zones = zones

	return ram, nil
}

// Label implements the Label interface.
func (ram *RAM) Label() string {
	return "RAM"
}

// Capacity returns the number of bytes of backing storage.
func (ram *RAM) Capacity() int {
	return ram.space.Capacity()
}

// Zones implements the Mapper interface.
func (ram *RAM) Zones() []memorymap.Zone {
	return ram.zones
}

// addresses not inside any zone are passed to the address space unchanged,
// where they are subject to the usual bounds check
func (ram *RAM) resolve(address uint16) uint16 {
	a, _ := memorymap.Resolve(ram.zones, address)
	return a
}

// Read implements the Mapper interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.space.Read(ram.resolve(address))
}

// Read16 implements the Mapper interface. Each of the two addresses is
// resolved separately so a word may straddle the end of a mirror.
func (ram *RAM) Read16(address uint16) (uint16, error) {
	hi, err := ram.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := ram.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write implements the Mapper interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	err := ram.space.Write(ram.resolve(address), data)
	if err != nil {
		logger.Log(logger.Allow, "ram", err)
	}
	return err
}

// CheckWriteArray implements the WriteChecker interface.
func (ram *RAM) CheckWriteArray(address uint16, length int) error {
	if int(address)+length > memorymap.AddressSpaceSize {
		return curated.Errorf(Overrun, length, address)
	}
	for i := range length {
		if int(ram.resolve(address+uint16(i))) >= ram.space.Capacity() {
			return curated.Errorf(Overrun, length, address)
		}
	}
	return nil
}

// WriteArray implements the Mapper interface.
func (ram *RAM) WriteArray(address uint16, data []uint8) error {
	// if no address in the block is in a mirror then the block can be copied
	// in one go
	if int(address)+len(data) <= memorymap.AddressSpaceSize && !ram.touchesMirror(address, len(data)) {
		return ram.space.WriteArray(address, data)
	}

	if err := ram.CheckWriteArray(address, len(data)); err != nil {
		return err
	}
	for i, d := range data {
		_ = ram.space.Write(ram.resolve(address+uint16(i)), d)
	}

	return nil
}

func (ram *RAM) touchesMirror(address uint16, length int) bool {
	blk := memorymap.Range{Start: address, Length: length}
	for _, z := range ram.zones {
		for _, r := range z.Ranges()[1:] {
			if r.Overlaps(blk) {
				return true
			}
		}
	}
	return false
}

// Peek implements the DebugBus interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.Read(address)
}

// Poke implements the DebugBus interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	return ram.space.Write(ram.resolve(address), value)
}

// Clear sets every byte of RAM to zero.
func (ram *RAM) Clear() {
	ram.space.Clear()
}

// Dump returns a hex dump of length bytes starting at address. See the Dump()
// function.
func (ram *RAM) Dump(address uint16, length int) string {
	return Dump(ram, address, length)
}
