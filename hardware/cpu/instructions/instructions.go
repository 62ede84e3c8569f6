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
package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
//
// Undocumented opcodes have a Definition with only the OpCode field set. The
// empty Mnemonic is the sentinel for an unimplemented instruction. See the
// Implemented() function.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

func (defn Definition) String() string {
	if !defn.Implemented() {
		return fmt.Sprintf("%02x unimplemented instruction", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// Implemented returns false if the opcode has no defined semantics.
func (defn Definition) Implemented() bool {
	return defn.Mnemonic != ""
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the Definition for the opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

// Definitions returns a copy of the entire definitions table. The table is
// indexed by opcode.
func Definitions() [256]Definition {
	return definitions
}

func init() {
	// the table is generated but we check the sizes anyway. a mismatch is a
	// programming error in the generator
	for i, defn := range definitions {
		if int(defn.OpCode) != i {
			panic(fmt.Sprintf("instructions: table entry %#02x has opcode %#02x", i, defn.OpCode))
		}
		if defn.Implemented() && (defn.Bytes < 1 || defn.Bytes > 3) {
			panic(fmt.Sprintf("instructions: %s has an invalid size", defn))
		}
	}
}
