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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the raw bytes of the instruction. the first byte is the opcode
	Bytes []uint8

	// string representations of the instruction
	Bytecode string
	Operator string
	Operand  string
}

// Instruction returns the operator and operand as a single string.
func (e Entry) Instruction() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

func (e Entry) String() string {
	return fmt.Sprintf("%04X  %-8s  %s", e.Address, e.Bytecode, e.Instruction())
}

// Next returns the address of the instruction that follows this one in
// memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

func bytecode(b []uint8) string {
	s := strings.Builder{}
	for i, v := range b {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	return s.String()
}

// branch operands are shown as the address of the branch destination. all
// 6502 branch instructions are 2 bytes in length
func branchDestination(address uint16, offset uint8) uint16 {
	if offset&0x80 == 0x80 {
		return address + 2 - uint16(0x100-uint16(offset))
	}
	return address + 2 + uint16(offset)
}

// operand formats the operand bytes according to the addressing mode
func operand(address uint16, mode instructions.AddressingMode, b []uint8) string {
	var v uint16
	switch len(b) {
	case 2:
		v = uint16(b[1])
	case 3:
		v = uint16(b[1]) | (uint16(b[2]) << 8)
	}

	switch mode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", v)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", branchDestination(address, uint8(v)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", v)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X", v)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", v)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", v)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X", v)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", v)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", v)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", v)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", v)
	}

	return "?"
}
