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
package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestAddressSpaceCapacity(t *testing.T) {
	as := memory.NewAddressSpace(0)
	test.ExpectEquality(t, as.Capacity(), memory.DefaultCapacity)

	as = memory.NewAddressSpace(0x20000)
	test.ExpectEquality(t, as.Capacity(), memory.DefaultCapacity)

	as = memory.NewAddressSpace(256)
	test.ExpectEquality(t, as.Capacity(), 256)
}

func TestAddressSpaceBounds(t *testing.T) {
	as := memory.NewAddressSpace(256)

	test.ExpectSuccess(t, as.Write(0xff, 0x12))
	v, err := as.Read(0xff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x12)

	// an address equal to the capacity is out of range for both reads and writes
	err = as.Write(0x100, 0x34)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	v, err = as.Read(0x100)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	test.ExpectEquality(t, v, 0)
}

func TestAddressSpaceRead16(t *testing.T) {
	as := memory.NewAddressSpace(0)
	test.DemandSuccess(t, as.WriteArray(0x1000, []uint8{0x12, 0x34}))

	// the first byte is the high byte
	w, err := as.Read16(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x1234)

	small := memory.NewAddressSpace(16)
	_, err = small.Read16(0x0f)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
}

func TestAddressSpaceWriteArray(t *testing.T) {
	as := memory.NewAddressSpace(256)

	test.ExpectSuccess(t, as.WriteArray(0xfe, []uint8{0x01, 0x02}))

	// block would end beyond the capacity. nothing is written
	err := as.WriteArray(0xf0, []uint8{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa})
	test.ExpectSuccess(t, curated.Is(err, memory.Overrun))
	for a := uint16(0xf0); a <= 0xff; a++ {
		v, _ := as.Read(a)
		if a >= 0xfe {
			test.ExpectEquality(t, v, uint8(a-0xfd), a)
		} else {
			test.ExpectEquality(t, v, 0, a)
		}
	}

	as.Clear()
	v, _ := as.Read(0xfe)
	test.ExpectEquality(t, v, 0)
}
