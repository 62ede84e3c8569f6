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

// Package riot implements the PIA 6532 of the VCS. The chip is commonly known
// as the RIOT (RAM, I/O, Timer) and that is the name used here.
//
// The RIOT is a memory.Mapper and so is attached to the memory bus like any
// other device. It decodes 128 bytes of RAM, the registers of the two I/O
// ports and the registers of the interval timer. Every area has a mirror
// 0x100 bytes above the primary area.
//
// The timer does not need to be stepped. It schedules itself with the cycle
// listeners of the CPU, through the Scheduler interface, and so costs nothing
// while the CPU is executing instructions that do not touch it.
package riot
