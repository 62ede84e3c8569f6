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
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Params are the resolved parameters of an instruction. A new Params value is
// created for every fetch.
//
// Which of Operand and Address is meaningful depends on the addressing mode:
//
//	Accumulator                     Operand is the accumulator value
//	Immediate                       Operand is the literal; Address is PC+1
//	ZeroPage, ZeroPageX, ZeroPageY  Operand is the value at Address
//	IndexedIndirect                 Operand is the value at Address
//	IndirectIndexed                 Operand is the value at Address
//	Absolute, AbsoluteX, AbsoluteY  Address only
//	Indirect                        Address only
//	Relative                        Address is the branch target
//	Implied                         neither (Address is the PC)
type Params struct {
	Operand         uint8
	Address         uint16
	Mode            instructions.AddressingMode
	InstructionSize int
}

func (p Params) String() string {
	return fmt.Sprintf("mode=%s operand=%#02x address=%#04x size=%d", p.Mode, p.Operand, p.Address, p.InstructionSize)
}

// HasOperand returns true if the Operand field is meaningful for the
// addressing mode.
func (p Params) HasOperand() bool {
	switch p.Mode {
	case instructions.Accumulator, instructions.Immediate,
		instructions.ZeroPage, instructions.ZeroPageX, instructions.ZeroPageY,
		instructions.IndexedIndirect, instructions.IndirectIndexed:
		return true
	case instructions.Absolute, instructions.AbsoluteX, instructions.AbsoluteY,
		instructions.Indirect, instructions.Relative, instructions.Implied:
		return false
	}
	return false
}
