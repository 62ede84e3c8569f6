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
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/test"
)

var mirroredZones = []memorymap.Zone{
	{Name: "zero", Start: 0x0000, Length: 0x0100, Mirrors: []uint16{0x0800, 0x1000}},
	{Name: "io", Start: 0x0200, Length: 0x0008, Mirrors: []uint16{0x0208, 0x0210, 0x0218}},
}

func TestRAMMirrorConsistency(t *testing.T) {
	ram, err := memory.NewRAM(0x400, mirroredZones...)
	test.DemandSuccess(t, err)

	for _, z := range ram.Zones() {
		for k := 0; k < z.Length; k++ {
			for _, m := range z.Mirrors {
				for _, v := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xff} {
					// primary to mirror
					test.DemandSuccess(t, ram.Write(z.Start+uint16(k), v))
					r, err := ram.Read(m + uint16(k))
					test.ExpectSuccess(t, err)
					test.ExpectEquality(t, r, v, z.Name, k)

					// mirror to primary
					test.DemandSuccess(t, ram.Write(m+uint16(k), ^v))
					r, err = ram.Read(z.Start + uint16(k))
					test.ExpectSuccess(t, err)
					test.ExpectEquality(t, r, ^v, z.Name, k)

					// mirror to mirror
					for _, n := range z.Mirrors {
						r, err = ram.Read(n + uint16(k))
						test.ExpectSuccess(t, err)
						test.ExpectEquality(t, r, ^v, z.Name, k)
					}
				}
			}
		}
	}
}

func TestRAMFlat(t *testing.T) {
	ram, err := memory.NewRAM(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram.Capacity(), 0x10000)
	test.DemandEquality(t, len(ram.Zones()), 1)

	test.ExpectSuccess(t, ram.Write(0xffff, 0x42))
	v, err := ram.Read(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)
}

func TestRAMOutOfRange(t *testing.T) {
	ram, err := memory.NewRAM(0x400, mirroredZones...)
	test.DemandSuccess(t, err)

	// in a mirror but the mirror resolves to a valid address
	test.ExpectSuccess(t, ram.Write(0x1005, 0x01))

	// not in any zone and beyond the capacity
	err = ram.Write(0x0400, 0x01)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	_, err = ram.Read(0x0400)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
}

func TestRAMWriteArray(t *testing.T) {
	ram, err := memory.NewRAM(0x400, mirroredZones...)
	test.DemandSuccess(t, err)

	// block that crosses the end of a mirror. the written bytes are visible in
	// the primary range
	test.ExpectSuccess(t, ram.WriteArray(0x10fe, []uint8{0x01, 0x02}))
	v, _ := ram.Read(0x00fe)
	test.ExpectEquality(t, v, 0x01)
	v, _ = ram.Read(0x00ff)
	test.ExpectEquality(t, v, 0x02)

	// block that starts in a mirror and ends beyond the capacity. nothing should
	// be written
	err = ram.WriteArray(0x10ff, []uint8{0xaa, 0xbb})
	test.ExpectSuccess(t, curated.Is(err, memory.Overrun))
	v, _ = ram.Read(0x00ff)
	test.ExpectEquality(t, v, 0x02)

	// block beyond the top of memory
	err = ram.WriteArray(0xffff, []uint8{0xaa, 0xbb})
	test.ExpectSuccess(t, curated.Is(err, memory.Overrun))
}

func TestRAMBoundaryRejection(t *testing.T) {
	ram, err := memory.NewRAM(0x100)
	test.DemandSuccess(t, err)

	img := make([]uint8, 0x20)
	for i := range img {
		img[i] = 0xee
	}

	err = ram.WriteArray(0xf0, img)
	test.ExpectSuccess(t, curated.Is(err, memory.Overrun))

	for a := 0; a < ram.Capacity(); a++ {
		v, err := ram.Read(uint16(a))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, 0, a)
	}
}

func TestRAMRead16(t *testing.T) {
	ram, err := memory.NewRAM(0x400, mirroredZones...)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, ram.WriteArray(0x0020, []uint8{0xab, 0xcd}))
	w, err := ram.Read16(0x0820)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0xabcd)
}

func TestRAMInvalidZones(t *testing.T) {
	_, err := memory.NewRAM(0x100, memorymap.Zone{Name: "big", Start: 0x0000, Length: 0x200})
	test.ExpectSuccess(t, curated.Has(err, memorymap.InvalidZone))

	_, err = memory.NewRAM(0x400,
		memorymap.Zone{Name: "a", Start: 0x0000, Length: 0x100, Mirrors: []uint16{0x0800}},
		memorymap.Zone{Name: "b", Start: 0x0200, Length: 0x100, Mirrors: []uint16{0x0880}},
	)
	test.ExpectSuccess(t, curated.Has(err, memory.Overlap))
}

func TestRAMDump(t *testing.T) {
	ram, err := memory.NewRAM(0x20)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.Poke(0x10, 0xff))

	test.ExpectEquality(t, ram.Dump(0x10, 0x12),
		"0010 | ff 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n0020 | -- --\n")
}
