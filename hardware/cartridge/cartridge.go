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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/cartridgeloader"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
)

// Sentinel error patterns.
const (
	Ejected            = "cartridge: no cartridge attached"
	WrongSize          = "cartridge: %s mapping requires %d bytes (image is %d bytes)"
	UnsupportedMapping = "cartridge: unsupported mapping (%s)"
)

const ejectedName = "ejected"

// the size of the cartridge area in the address space
const windowSize = int(memorymap.MemtopCart-memorymap.OriginCart) + 1

// Cartridge implements the memory.Mapper and memory.DebugBus interfaces.
type Cartridge struct {
	Filename string
	Hash     string

	mapping string
	zones   []memorymap.Zone

	// the ROM data. a 2K cartridge is mirrored in the cartridge window by
	// masking the offset with the size of the data
	rom []uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is ejected until Attach() is called.
func NewCartridge() *Cartridge {
	cart := &Cartridge{
		zones: []memorymap.Zone{{
			Name:    "Cartridge",
			Start:   memorymap.OriginCart,
			Length:  windowSize,
			Mirrors: memorymap.CartridgeMirrors(),
		}},
	}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the path to the cartridge and the second line is information about the
// mapping.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s [%d bytes]", cart.Filename, cart.mapping, len(cart.rom))
}

// Label implements the memory.Label interface.
func (cart *Cartridge) Label() string {
	return "Cartridge"
}

// Mapping returns the mapping ID of the attached cartridge.
func (cart *Cartridge) Mapping() string {
	return cart.mapping
}

// Eject removes the cartridge data. Reads from an ejected cartridge fail.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.mapping = "-"
	cart.rom = nil
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.rom == nil
}

// Attach the data in the loader to the cartridge. The data is loaded if it
// has not been loaded already.
func (cart *Cartridge) Attach(cl cartridgeloader.Loader) error {
	err := cl.Load()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	mapping := cl.Mapping
	if mapping == "" || mapping == cartridgeloader.MappingAuto {
		switch len(cl.Data) {
		case 2048:
			mapping = cartridgeloader.Mapping2K
		case 4096:
			mapping = cartridgeloader.Mapping4K
		default:
			return curated.Errorf(UnsupportedMapping, fmt.Sprintf("%d bytes", len(cl.Data)))
		}
	}

	var size int
	switch mapping {
	case cartridgeloader.Mapping2K:
		size = 2048
	case cartridgeloader.Mapping4K:
		size = 4096
	default:
		return curated.Errorf(UnsupportedMapping, mapping)
	}

	if len(cl.Data) != size {
		return curated.Errorf(WrongSize, mapping, size, len(cl.Data))
	}

	cart.rom = make([]uint8, size)
	copy(cart.rom, cl.Data)
	cart.Filename = cl.Filename
	cart.Hash = cl.Hash
	cart.mapping = mapping

	logger.Logf(logger.Allow, "cartridge", "attached %s (%s)", cl.ShortName(), mapping)

	return nil
}

// Zones implements the memory.Mapper interface.
func (cart *Cartridge) Zones() []memorymap.Zone {
	return cart.zones
}

// offset of the address into the ROM data. returns false if the address is
// not in the cartridge window or its mirrors
func (cart *Cartridge) offset(address uint16) (int, bool) {
	a, i := memorymap.Resolve(cart.zones, address)
	if i < 0 {
		return 0, false
	}
	return int(a-memorymap.OriginCart) % len(cart.rom), true
}

// Read implements the memory.Mapper interface.
func (cart *Cartridge) Read(address uint16) (uint8, error) {
	if cart.IsEjected() {
		return 0, curated.Errorf(Ejected)
	}
	o, ok := cart.offset(address)
	if !ok {
		return 0, curated.Errorf(memory.Unmapped, address)
	}
	return cart.rom[o], nil
}

// Read16 implements the memory.Mapper interface. The value is big-endian.
func (cart *Cartridge) Read16(address uint16) (uint16, error) {
	hi, err := cart.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := cart.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write implements the memory.Mapper interface. Cartridges are read-only and
// every write fails.
func (cart *Cartridge) Write(address uint16, _ uint8) error {
	err := curated.Errorf(memory.ReadOnly, address)
	logger.Log(logger.Allow, "cartridge", err)
	return err
}

// WriteArray implements the memory.Mapper interface. Nothing is ever written.
func (cart *Cartridge) WriteArray(address uint16, data []uint8) error {
	return cart.CheckWriteArray(address, len(data))
}

// CheckWriteArray implements the memory.WriteChecker interface. Only an empty
// block can be written.
func (cart *Cartridge) CheckWriteArray(address uint16, length int) error {
	if int(address)+length > memorymap.AddressSpaceSize {
		return curated.Errorf(memory.Overrun, length, address)
	}
	if length == 0 {
		return nil
	}
	return curated.Errorf(memory.ReadOnly, address)
}

// Peek implements the memory.DebugBus interface.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	return cart.Read(address)
}

// Poke implements the memory.DebugBus interface. Poking changes the ROM
// data. For a 2K cartridge the change is seen in both halves of the window.
func (cart *Cartridge) Poke(address uint16, value uint8) error {
	if cart.IsEjected() {
		return curated.Errorf(Ejected)
	}
	o, ok := cart.offset(address)
	if !ok {
		return curated.Errorf(memory.Unmapped, address)
	}
	cart.rom[o] = value
	return nil
}

// Patch writes to cartridge memory. Offset is measured from the start of
// the ROM data. It differs from Poke in that respect.
func (cart *Cartridge) Patch(offset int, value uint8) error {
	if cart.IsEjected() {
		return curated.Errorf(Ejected)
	}
	if offset < 0 || offset >= len(cart.rom) {
		return curated.Errorf("cartridge: patch offset out of range (%#04x)", offset)
	}
	cart.rom[offset] = value
	return nil
}
