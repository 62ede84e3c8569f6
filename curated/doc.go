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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as the Errorf()
// function in the fmt package. The pattern is the identity of the error:
//
//	const OutOfRange = "memory: address out of range (%#04x)"
//
//	e := curated.Errorf(OutOfRange, address)
//
//	if curated.Is(e, OutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. A chain is formed by passing an error as one
// of the values to Errorf():
//
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Has(f, OutOfRange) // true
//	curated.Is(f, OutOfRange)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of a curated error as an 'expected'
// error and an uncurated error as an 'unexpected' error.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": " so
// that the chain:
//
//	memory: memory: address out of range (0x1000)
//
// is printed as:
//
//	memory: address out of range (0x1000)
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions in the standard library see through to any wrapped
// error value.
package curated
