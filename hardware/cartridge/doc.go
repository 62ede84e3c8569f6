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

// Package cartridge implements the memory.Mapper interface for VCS ROM
// cartridges. Only the unbanked formats are supported:
//
// 2K: These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K: These images are not bankswitched.
//
// The cartridge occupies 0x1000 to 0x1fff and is mirrored every 0x2000
// bytes. The reset vector is therefore usually read from the mirror at
// 0xf000.
package cartridge
