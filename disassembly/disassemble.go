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

package disassembly

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Peeker is the memory being disassembled.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Disassemble the instruction at the address. Undocumented opcodes are
// disassembled as a single byte with the operator "???".
func Disassemble(mem Peeker, address uint16) (Entry, error) {
	opcode, err := mem.Peek(address)
	if err != nil {
		return Entry{}, curated.Errorf("disassembly: %v", err)
	}

	e := Entry{
		Address: address,
		Defn:    instructions.Lookup(opcode),
		Bytes:   []uint8{opcode},
	}

	if !e.Defn.Implemented() {
		e.Bytecode = bytecode(e.Bytes)
		e.Operator = "???"
		return e, nil
	}

	for i := 1; i < e.Defn.Bytes; i++ {
		v, err := mem.Peek(address + uint16(i))
		if err != nil {
			return Entry{}, curated.Errorf("disassembly: %v", err)
		}
		e.Bytes = append(e.Bytes, v)
	}

	e.Bytecode = bytecode(e.Bytes)
	e.Operator = e.Defn.Mnemonic
	e.Operand = operand(address, e.Defn.AddressingMode, e.Bytes)

	return e, nil
}

// Linear disassembles count instructions starting at the address. Each
// instruction is assumed to follow the previous one in memory. Disassembly
// stops early if the top of memory is reached.
//
// Linear disassembly will treat data as instructions so it is no good for
// presenting an entire program unless the program contains no data.
func Linear(mem Peeker, address uint16, count int) ([]Entry, error) {
	var entries []Entry

	a := int(address)
	for range count {
		e, err := Disassemble(mem, uint16(a))
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)

		a += len(e.Bytes)
		if a > 0xffff {
			break
		}
	}

	return entries, nil
}
