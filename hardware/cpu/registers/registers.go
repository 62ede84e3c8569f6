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
package registers

import "fmt"

// Register identifies one of the five 8-bit registers of the 6502.
type Register int

// List of registers. The order is fixed and is used to index the File type.
const (
	Status Register = iota
	Stack
	Accum
	IndX
	IndY

	// the number of registers in the register file
	NumRegisters
)

// Label returns the short canonical name for the register.
func (r Register) Label() string {
	switch r {
	case Status:
		return "SR"
	case Stack:
		return "SP"
	case Accum:
		return "A"
	case IndX:
		return "X"
	case IndY:
		return "Y"
	}
	return "??"
}

func (r Register) String() string {
	switch r {
	case Status:
		return "STATUS"
	case Stack:
		return "STACK"
	case Accum:
		return "ACCUM"
	case IndX:
		return "IND_X"
	case IndY:
		return "IND_Y"
	}
	return fmt.Sprintf("unknown register (%d)", int(r))
}

// File is the register file of the 6502. The zero value has every register
// cleared.
type File [NumRegisters]uint8

// Get the value of the named register.
func (f *File) Get(r Register) uint8 {
	return f[r]
}

// Set the value of the named register.
func (f *File) Set(r Register, v uint8) {
	f[r] = v
}

// Reset clears every register.
func (f *File) Reset() {
	*f = File{}
}

// Flag returns the state of the status register bit.
func (f *File) Flag(b Flag) bool {
	return f[Status]&b.mask() != 0
}

// SetFlag sets or clears the status register bit.
func (f *File) SetFlag(b Flag, v bool) {
	if v {
		f[Status] |= b.mask()
	} else {
		f[Status] &^= b.mask()
	}
}

func (f File) String() string {
	return fmt.Sprintf("A=%02x X=%02x Y=%02x SP=%02x SR=%s",
		f[Accum], f[IndX], f[IndY], f[Stack], StatusString(f[Status]))
}
