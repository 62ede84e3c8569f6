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
// Package registers names the 8-bit registers of the 6502 and the bits of the
// status register.
//
// Registers are addressed by name rather than by position:
//
//	var f registers.File
//	f.Set(registers.Accum, 0x10)
//	f.SetFlag(registers.Zero, f.Get(registers.Accum) == 0)
//
// Every register is exactly one byte wide. The program counter is not a
// member of the register file; it is held by the CPU separately.
package registers
