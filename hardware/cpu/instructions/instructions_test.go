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
package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDocumentedOpcodes(t *testing.T) {
	var n int
	for _, defn := range instructions.Definitions() {
		if defn.Implemented() {
			n++
		}
	}
	test.ExpectEquality(t, n, 151)
}

func TestInstructionSize(t *testing.T) {
	for _, defn := range instructions.Definitions() {
		if !defn.Implemented() {
			test.ExpectEquality(t, defn.Bytes, 0, defn.OpCode)
			continue
		}

		var expected int
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			expected = 1
		case instructions.Immediate, instructions.Relative, instructions.ZeroPage,
			instructions.ZeroPageX, instructions.ZeroPageY,
			instructions.IndexedIndirect, instructions.IndirectIndexed:
			expected = 2
		case instructions.Absolute, instructions.AbsoluteX, instructions.AbsoluteY,
			instructions.Indirect:
			expected = 3
		}
		test.ExpectEquality(t, defn.Bytes, expected, defn.Mnemonic)
	}
}

func TestLookup(t *testing.T) {
	defn := instructions.Lookup(0xa9)
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Effect, instructions.Read)

	defn = instructions.Lookup(0x6c)
	test.ExpectEquality(t, defn.Mnemonic, "JMP")
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, defn.Effect, instructions.Flow)
	test.ExpectSuccess(t, !defn.IsBranch())

	defn = instructions.Lookup(0xd0)
	test.ExpectEquality(t, defn.Mnemonic, "BNE")
	test.ExpectSuccess(t, defn.IsBranch())

	// 0x02 is a KIL/JAM opcode on the NMOS 6502
	defn = instructions.Lookup(0x02)
	test.ExpectFailure(t, defn.Implemented())
	test.ExpectEquality(t, defn.String(), "02 unimplemented instruction")
}

// modifying the copy returned by Definitions() must not change the table
func TestDefinitionsImmutable(t *testing.T) {
	defs := instructions.Definitions()
	defs[0xa9].Mnemonic = "XXX"
	test.ExpectEquality(t, instructions.Lookup(0xa9).Mnemonic, "LDA")
}

func TestAddressingModeString(t *testing.T) {
	test.ExpectEquality(t, instructions.IndexedIndirect.String(), "IndexedIndirect")
	test.ExpectEquality(t, instructions.ZeroPageY.String(), "ZeroPageY")
	test.ExpectEquality(t, instructions.AddressingMode(99).String(), "unknown addressing mode")
}
