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
// Package memory implements the memory side of the CPU's world. Everything
// the CPU can address implements the Mapper interface:
//
//	CPU ---- Interface ---- Mapper
//
// A Mapper may be a flat block of RAM (see NewRAM()) or a Bus that composes
// several devices by the address ranges they own:
//
//	                                 ---- TIA (unconnected)
//	                                |
//	CPU ---- Interface ---- Bus ----*---- RIOT
//	                                |
//	                                 -<-- Cartridge
//
// The asterisk indicates that the Bus routes an address to the device owning
// the address. It does not redirect mirrors; each device is given the address
// as the CPU saw it and resolves mirrors itself with the help of the
// memorymap package. The arrow pointing away from the Cartridge indicates that
// the CPU can only read from the cartridge.
//
// Every device declares its memory zones. A zone is a primary range of
// addresses plus any number of mirror ranges which alias the primary range.
//
// Accesses made through Read() and Write() are the accesses of the running
// machine and may have side effects (reading a timer register may clear a
// flag for example). Peek() and Poke() of the DebugBus interface have no side
// effects and are used by the disassembler and by the command line tools.
//
// The Read16() function of a Mapper is a raw peek of a 16-bit value. It is
// big-endian and so is not suitable for decoding 6502 addresses, which are
// little-endian. The CPU decodes addresses itself with two reads.
package memory
