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

// Package hardware is the base package for the emulated machine. The Machine
// type ties together the CPU and the memory devices that the CPU can see.
//
// There are two memory layouts. The Flat layout is a single 64K RAM device
// and is suitable for running 6502 test programs. The VCS layout is a memory
// bus with the RIOT and a ROM cartridge attached. The video chip of the VCS is
// not emulated and the area it would occupy is unconnected.
//
// In both layouts the CPU reaches memory through a memory.Interface. In the
// VCS layout the RIOT needs the CPU for its timer and the CPU needs the memory
// bus which contains the RIOT. The circle is broken by creating the CPU with
// an unbound Interface and plumbing the bus into the Interface once it has
// been built.
package hardware
