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
package memory

// Sentinel error patterns. Use curated.Is() to test for them.
const (
	OutOfRange = "memory: address out of range (%#04x)"
	Overrun    = "memory: block of %d bytes at (%#04x) overruns address space"
	Unmapped   = "memory: address not mapped to any device (%#04x)"
	ReadOnly   = "memory: address is read-only (%#04x)"
	Overlap    = "memory: %s overlaps %s"
	NotFound   = "memory: device is not attached (%s)"
)
