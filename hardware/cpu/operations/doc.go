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
// Package operations supplies the semantics of the documented instructions of
// the NMOS 6502 in the form of a cpu.Operations table:
//
//	mc := cpu.NewCPU(mem, operations.Table())
//
// Every opcode that is implemented in the instructions package has an
// operation in the table. Undocumented opcodes have none.
//
// Operations are called by the CPU after the program counter has been advanced
// past the instruction. Jumps, branches, subroutine calls and interrupts set
// the program counter explicitly.
//
// Decimal mode follows the NMOS 6502. The accumulator and the carry flag are
// correct for all values; for invalid BCD values the N, V and Z flags follow
// the NMOS behaviour as described by Bruce Clark and by Jorge Cwik.
package operations
