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

import "strings"

// Flag is a bit position in the status register.
type Flag uint

// Status register bits. Bit order is fixed by the hardware.
const (
	Carry Flag = iota
	Zero
	InterruptDisable
	DecimalMode
	Break
	Unused
	Overflow
	Negative
)

func (b Flag) mask() uint8 {
	return 0x01 << b
}

// Mask returns the flag as a value suitable for combining with a status
// register value.
func (b Flag) Mask() uint8 {
	return b.mask()
}

func (b Flag) String() string {
	switch b {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case DecimalMode:
		return "DecimalMode"
	case Break:
		return "Break"
	case Unused:
		return "Unused"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return "unknown flag"
}

// StatusString returns the status register value as a string of flags. A set
// flag is shown in upper case and a clear flag in lower case. The unused bit
// is always shown as a dash.
//
//	sv-bdizc
func StatusString(v uint8) string {
	s := strings.Builder{}

	flag := func(b Flag, r rune) {
		if v&b.mask() != 0 {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(Negative, 's')
	flag(Overflow, 'v')
	s.WriteRune('-')
	flag(Break, 'b')
	flag(DecimalMode, 'd')
	flag(InterruptDisable, 'i')
	flag(Zero, 'z')
	flag(Carry, 'c')

	return s.String()
}
