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
)

// DefaultCapacity is the size of a full 16-bit address space.
const DefaultCapacity = 0x10000

// AddressSpace is a fixed size store of bytes. Addresses are bounds checked:
// an address is valid if it is less than the capacity.
type AddressSpace struct {
	data []uint8
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type. A capacity of zero or less selects the DefaultCapacity.
// Capacity is limited to DefaultCapacity.
func NewAddressSpace(capacity int) *AddressSpace {
	if capacity <= 0 || capacity > DefaultCapacity {
		capacity = DefaultCapacity
	}
	return &AddressSpace{
		data: make([]uint8, capacity),
	}
}

// Capacity returns the number of bytes in the address space.
func (as *AddressSpace) Capacity() int {
	return len(as.data)
}

// Read the byte at address. An address beyond the capacity returns zero and
// an OutOfRange error.
func (as *AddressSpace) Read(address uint16) (uint8, error) {
	if int(address) >= len(as.data) {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return as.data[address], nil
}

// Read16 returns the word formed by the byte at address and the byte that
// follows it. The byte at address is the high byte.
func (as *AddressSpace) Read16(address uint16) (uint16, error) {
	hi, err := as.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := as.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Write the byte to address. An address beyond the capacity is rejected with
// an OutOfRange error and the address space is not modified.
func (as *AddressSpace) Write(address uint16, data uint8) error {
	if int(address) >= len(as.data) {
		return curated.Errorf(OutOfRange, address)
	}
	as.data[address] = data
	return nil
}

// WriteArray copies data into the address space starting at address. If the
// block would extend beyond the capacity then nothing is written and an
// Overrun error is returned.
func (as *AddressSpace) WriteArray(address uint16, data []uint8) error {
	if int(address)+len(data) > len(as.data) {
		return curated.Errorf(Overrun, len(data), address)
	}
	copy(as.data[address:], data)
	return nil
}

// Clear sets every byte to zero.
func (as *AddressSpace) Clear() {
	clear(as.data)
}
