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
package operations

// the arithmetic functions return the new accumulator value and the state of
// the carry, zero, overflow and negative flags. in decimal mode the NMOS 6502
// computes the Z flag from the binary result and the N and V flags from the
// result before the high nibble is adjusted

func addBinary(a, v uint8, carry bool) (r uint8, c, z, o, n bool) {
	sum := uint16(a) + uint16(v)
	if carry {
		sum++
	}
	r = uint8(sum)
	c = sum > 0xff
	z = r == 0
	o = (a^r)&(v^r)&0x80 != 0
	n = r&0x80 != 0
	return r, c, z, o, n
}

func addDecimal(a, v uint8, carry bool) (r uint8, c, z, o, n bool) {
	// zero flag is the same as it would be for binary addition
	_, _, z, _, _ = addBinary(a, v, carry)

	lo := int(a&0x0f) + int(v&0x0f)
	if carry {
		lo++
	}
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := int(a&0xf0) + int(v&0xf0) + lo

	// sign and overflow are taken from the sum before the high nibble is
	// adjusted. the sum is treated as a signed value
	signed := int(int8(a&0xf0)) + int(int8(v&0xf0)) + lo
	n = sum&0x80 != 0
	o = signed < -128 || signed > 127

	if sum >= 0xa0 {
		sum += 0x60
	}

	r = uint8(sum)
	c = sum >= 0x100

	return r, c, z, o, n
}

// on the 6502 the carry flag is the inverse of a borrow when subtracting
func subtractBinary(a, v uint8, carry bool) (r uint8, c, z, o, n bool) {
	return addBinary(a, ^v, carry)
}

func subtractDecimal(a, v uint8, carry bool) (r uint8, c, z, o, n bool) {
	// all flags are the same as they would be for binary subtraction
	_, c, z, o, n = subtractBinary(a, v, carry)

	lo := int(a&0x0f) - int(v&0x0f)
	if !carry {
		lo--
	}
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	diff := int(a&0xf0) - int(v&0xf0) + lo
	if diff < 0 {
		diff -= 0x60
	}

	r = uint8(diff)

	return r, c, z, o, n
}
