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

// Memtop is the highest possible address.
const Memtop = 0xffff

// AddressSpaceSize is the number of addresses that can be decoded with 16
// address lines.
const AddressSpaceSize = Memtop + 1

// The origin and memory top for each area of memory in the VCS.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x007f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Cartridge memory is mirrored every 0x2000 bytes. The Fxxx mirror is the
// mirror the reset vector is read from.
//
// Be extra careful when looping with MemtopCartFxxxMirror because it is at the
// very edge of uint16.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// The 6502 reads the reset vector and the interrupt vector from the top of
// memory. Both are little-endian.
const (
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// The location of the stack. The stack pointer is an offset into this page.
const StackPage = uint16(0x0100)

// CartridgeMirrors returns the start address of every cartridge mirror. The
// primary cartridge area at OriginCart is not included.
func CartridgeMirrors() []uint16 {
	var m []uint16
	for a := int(OriginCart) + 0x2000; a <= Memtop; a += 0x2000 {
		m = append(m, uint16(a))
	}
	return m
}
