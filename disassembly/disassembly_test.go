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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func newMemory(t *testing.T, address uint16, program []uint8) *memory.RAM {
	t.Helper()
	ram, err := memory.NewRAM(0)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.WriteArray(address, program))
	return ram
}

func TestDisassemble(t *testing.T) {
	program := []uint8{
		0xa9, 0x10, // 1000
		0x9d, 0x34, 0x12, // 1002
		0xb1, 0x20, // 1005
		0x0a,             // 1007
		0x6c, 0xfc, 0xff, // 1008
		0xa1, 0x20, // 100b
		0xb6, 0x20, // 100d
		0xd0, 0xfd, // 100f
		0x10, 0x10, // 1011
		0xea,             // 1013
		0x02,             // 1014
		0x4c, 0x00, 0x10, // 1015
	}
	mem := newMemory(t, 0x1000, program)

	expected := []string{
		"LDA #$10",
		"STA $1234,X",
		"LDA ($20),Y",
		"ASL A",
		"JMP ($FFFC)",
		"LDA ($20,X)",
		"LDX $20,Y",
		"BNE $100E",
		"BPL $1023",
		"NOP",
		"???",
		"JMP $1000",
	}

	entries, err := disassembly.Linear(mem, 0x1000, len(expected))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), len(expected))
	for i, e := range entries {
		test.ExpectEquality(t, e.Instruction(), expected[i])
	}

	test.ExpectEquality(t, entries[0].String(), "1000  a9 10     LDA #$10")
	test.ExpectEquality(t, entries[1].Bytecode, "9d 34 12")
	test.ExpectEquality(t, entries[1].Next(), 0x1005)
	test.ExpectEquality(t, entries[10].Bytecode, "02")
	test.ExpectEquality(t, entries[10].Next(), 0x1015)
}

func TestBranchAcrossPage(t *testing.T) {
	mem := newMemory(t, 0x0f85, []uint8{0xd0, 0x00})
	e, err := disassembly.Disassemble(mem, 0x0f85)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Instruction(), "BNE $0F87")

	mem = newMemory(t, 0x0000, []uint8{0xf0, 0x80})
	e, err = disassembly.Disassemble(mem, 0x0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Instruction(), "BEQ $FF82")
}

func TestTopOfMemory(t *testing.T) {
	mem := newMemory(t, 0xfffe, []uint8{0xea, 0xea})
	entries, err := disassembly.Linear(mem, 0xfffe, 10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)
}

func TestUnreadable(t *testing.T) {
	_, err := disassembly.Disassemble(memory.NewBus(), 0x1000)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	mem := newMemory(t, 0x1000, []uint8{0xa9, 0x10, 0xbd, 0x00, 0x20})
	entries, err := disassembly.Linear(mem, 0x1000, 2)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(w, entries, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "1000  LDA #$10\n1002  LDA $2000,X\n")

	w.Reset()
	test.ExpectSuccess(t, disassembly.Write(w, entries, disassembly.WriteAttr{Cycles: true}))
	test.ExpectEquality(t, w.String(), "1000  LDA #$10     2\n1002  LDA $2000,X  4*\n")
}
