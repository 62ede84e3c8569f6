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
// Package memorymap describes how the 16-bit address space is divided into
// zones. A Zone is a primary range of addresses together with any number of
// mirrors. A mirror is another range of the same length that aliases the
// primary range; an access to a mirror must be redirected to the primary
// range before backing storage is touched. The Resolve() functions do that
// redirection by testing address ranges; mirrors never have storage of their
// own.
//
// The package also contains the address constants of the Atari VCS memory
// map. Cartridge memory for example is mirrored in a number of places in the
// address space and the Fxxx mirror is the one most programmers use.
package memorymap
