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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// Address is a flag value for a 16 bit memory address. The Specified field
// is true if the flag was given on the command line.
type Address struct {
	Value     uint16
	Specified bool
}

// ParseAddress parses a string as a 16 bit memory address. Addresses with a
// "0x" or "$" prefix are hexadecimal. Otherwise the address is decimal.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf("not a valid address (%s)", s)
	}
	return uint16(v), nil
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	a.Value = v
	a.Specified = true
	return nil
}

// AddAddress flag for next call to Parse().
func (md *Modes) AddAddress(name string, value uint16, usage string) *Address {
	a := &Address{Value: value}
	md.flags.Var(a, name, usage)
	return a
}
