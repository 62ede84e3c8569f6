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

// AddressingMode describes the method data for the instruction should be
// received. The set of modes is closed; switches on AddressingMode should be
// exhaustive.
type AddressingMode int

// List of supported addressing modes.
const (
	Absolute    AddressingMode = iota // abs
	AbsoluteX                         // abs,X
	AbsoluteY                         // abs,Y
	Accumulator                       // A
	Immediate                         // #
	Implied
	IndexedIndirect // (zpg,X)
	Indirect        // (abs)
	IndirectIndexed // (zpg),Y
	Relative        // relative addressing is used for branch instructions
	ZeroPage        // zpg
	ZeroPageX       // zpg,X
	ZeroPageY       // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Implied:
		return "Implied"
	case IndexedIndirect:
		return "IndexedIndirect"
	case Indirect:
		return "Indirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	}
	return "unknown addressing mode"
}
