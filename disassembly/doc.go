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

// Package disassembly formats 6502 instructions in memory using the canonical
// assembler syntax:
//
//	LDA #$10
//	STA $1234,X
//	LDA ($20),Y
//	BNE $0F87
//	ASL A
//	JMP ($FFFC)
//
// The operand of a branch instruction is shown as the address of the branch
// destination rather than as an offset.
//
// Memory is read with the Peek() function of the memory being disassembled.
// Disassembly therefore has no side effects and does not count CPU cycles.
package disassembly
