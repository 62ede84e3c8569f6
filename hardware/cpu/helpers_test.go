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
package cpu_test

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

const (
	unreadable = "mock: unreadable address (%#04x)"
	unwritable = "mock: unwritable address (%#04x)"
)

type mockMem struct {
	internal []uint8
	reads    int
	writes   int
}

func newMockMem() *mockMem {
	mem := new(mockMem)

	// leave some room at the top of memory allocation to allow testing of
	// invalid memory accesses
	mem.internal = make([]uint8, 0x10000)

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[uint16(i)+origin] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address&0xff00 == 0xff00 {
		return 0, curated.Errorf(unreadable, address)
	}
	mem.reads++
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xff00 {
		return curated.Errorf(unwritable, address)
	}
	mem.writes++
	mem.internal[address] = data
	return nil
}

// dispatch table where every documented instruction is bound to an operation
// that records the program counter and parameters at the time of dispatch
type recorder struct {
	pc     uint16
	params execution.Params
	calls  int
}

func (r *recorder) operations() cpu.Operations {
	var ops cpu.Operations
	for _, defn := range instructions.Definitions() {
		if defn.Implemented() {
			ops[defn.OpCode] = func(mc *cpu.CPU, p execution.Params) error {
				r.pc = mc.PC()
				r.params = p
				r.calls++
				return nil
			}
		}
	}
	return ops
}
