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
	"slices"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// Bus composes several Mappers into one address space. Each device owns the
// ranges of its zones (primary and mirrors) and the Bus routes an access to
// the owner of the address. The address is passed to the device unchanged.
//
// The Bus is itself a Mapper and a DebugBus.
type Bus struct {
	devices []Mapper

	// owner of every address. the value is an index into the devices slice
	// plus one. zero means that the address is unmapped
	owner [memorymap.AddressSpaceSize]uint8
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{}
}

// Attach a device to the bus. The device's zones must not overlap the zones of
// any device already attached.
func (bus *Bus) Attach(dev Mapper) error {
	if slices.Contains(bus.devices, dev) {
		return curated.Errorf("bus: %v", curated.Errorf(Overlap, label(dev), "itself"))
	}

	for _, z := range dev.Zones() {
		if err := z.Check(); err != nil {
			return curated.Errorf("bus: %v", err)
		}
		for _, r := range z.Ranges() {
			for a := int(r.Start); a < r.End(); a++ {
				if o := bus.owner[a]; o != 0 {
					return curated.Errorf("bus: %v", curated.Errorf(Overlap, label(dev), label(bus.devices[o-1])))
				}
			}
		}
	}

	// a device can have overlapping zones of its own. we only detect that
	// when marking ownership
	bus.devices = append(bus.devices, dev)
	id := uint8(len(bus.devices))
	for _, z := range dev.Zones() {
		for _, r := range z.Ranges() {
			for a := int(r.Start); a < r.End(); a++ {
				if bus.owner[a] == id {
					bus.devices = bus.devices[:len(bus.devices)-1]
					bus.release(id)
					return curated.Errorf("bus: %v", curated.Errorf(memorymap.InvalidZone, z.Name, "overlaps another zone of the same device"))
				}
				bus.owner[a] = id
			}
		}
	}

	logger.Logf(logger.Allow, "bus", "attached %s", label(dev))

	return nil
}

func (bus *Bus) release(id uint8) {
	for a := range bus.owner {
		if bus.owner[a] == id {
			bus.owner[a] = 0
		}
	}
}

// Detach a device from the bus. The addresses owned by the device become
// unmapped.
func (bus *Bus) Detach(dev Mapper) error {
	i := slices.Index(bus.devices, dev)
	if i == -1 {
		return curated.Errorf(NotFound, label(dev))
	}

	bus.release(uint8(i + 1))

	// renumber the owners of the devices that come after the detached device
	for a := range bus.owner {
		if bus.owner[a] > uint8(i+1) {
			bus.owner[a]--
		}
	}
	bus.devices = slices.Delete(bus.devices, i, i+1)

	logger.Logf(logger.Allow, "bus", "detached %s", label(dev))

	return nil
}

// Devices returns the list of attached devices in order of attachment.
func (bus *Bus) Devices() []Mapper {
	return slices.Clone(bus.devices)
}

// Owner returns the device that owns the address. Returns nil if the address
// is unmapped.
func (bus *Bus) Owner(address uint16) Mapper {
	if o := bus.owner[address]; o != 0 {
		return bus.devices[o-1]
	}
	return nil
}

func (bus *Bus) route(address uint16) (Mapper, error) {
	dev := bus.Owner(address)
	if dev == nil {
		return nil, curated.Errorf(Unmapped, address)
	}
	return dev, nil
}

// Read implements the Mapper interface.
func (bus *Bus) Read(address uint16) (uint8, error) {
	dev, err := bus.route(address)
	if err != nil {
		return 0, err
	}
	return dev.Read(address)
}

// Read16 implements the Mapper interface. The two bytes are peeked so that
// the read has no side effects.
func (bus *Bus) Read16(address uint16) (uint16, error) {
	hi, err := bus.Peek(address)
	if err != nil {
		return 0, err
	}
	lo, err := bus.Peek(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write implements the Mapper interface.
func (bus *Bus) Write(address uint16, data uint8) error {
	dev, err := bus.route(address)
	if err != nil {
		logger.Log(logger.Allow, "bus", err)
		return err
	}
	return dev.Write(address, data)
}

// CheckWriteArray implements the WriteChecker interface. Every address in the
// block must be mapped. Each run of addresses owned by the same device is
// checked with the device's CheckWriteArray() if it has one.
func (bus *Bus) CheckWriteArray(address uint16, length int) error {
	if int(address)+length > memorymap.AddressSpaceSize {
		return curated.Errorf(Overrun, length, address)
	}

	for i := range length {
		if bus.owner[int(address)+i] == 0 {
			return curated.Errorf(Unmapped, address+uint16(i))
		}
	}

	return bus.runs(address, length, func(dev Mapper, start uint16, n int) error {
		if c, ok := dev.(WriteChecker); ok {
			return c.CheckWriteArray(start, n)
		}
		return nil
	})
}

// runs calls fn for each run of addresses in the block that is owned by the
// same device. every address must be mapped
func (bus *Bus) runs(address uint16, length int, fn func(dev Mapper, start uint16, n int) error) error {
	start := 0
	for i := 1; i <= length; i++ {
		if i < length && bus.owner[int(address)+i] == bus.owner[int(address)+start] {
			continue
		}
		dev := bus.devices[bus.owner[int(address)+start]-1]
		if err := fn(dev, address+uint16(start), i-start); err != nil {
			return err
		}
		start = i
	}
	return nil
}

// WriteArray implements the Mapper interface. The whole block is checked with
// CheckWriteArray() before anything is written. The block is then given to
// each owning device in runs.
//
// A device that does not implement WriteChecker can only reject its run
// when it is written, by which time earlier runs will have been written.
func (bus *Bus) WriteArray(address uint16, data []uint8) error {
	if err := bus.CheckWriteArray(address, len(data)); err != nil {
		return err
	}

	return bus.runs(address, len(data), func(dev Mapper, start uint16, n int) error {
		o := int(start - address)
		return dev.WriteArray(start, data[o:o+n])
	})
}

// Zones implements the Mapper interface. The zones of every attached device
// are returned.
func (bus *Bus) Zones() []memorymap.Zone {
	var z []memorymap.Zone
	for _, d := range bus.devices {
		z = append(z, d.Zones()...)
	}
	return z
}

// Peek implements the DebugBus interface. Devices that do not implement
// DebugBus are accessed with Read().
func (bus *Bus) Peek(address uint16) (uint8, error) {
	dev, err := bus.route(address)
	if err != nil {
		return 0, err
	}
	if d, ok := dev.(DebugBus); ok {
		return d.Peek(address)
	}
	return dev.Read(address)
}

// Poke implements the DebugBus interface. Devices that do not implement
// DebugBus are accessed with Write().
func (bus *Bus) Poke(address uint16, value uint8) error {
	dev, err := bus.route(address)
	if err != nil {
		return err
	}
	if d, ok := dev.(DebugBus); ok {
		return d.Poke(address, value)
	}
	return dev.Write(address, value)
}

// Summary returns a description of the address space. See memorymap.Summary().
func (bus *Bus) Summary() string {
	return memorymap.Summary(bus.Zones())
}
