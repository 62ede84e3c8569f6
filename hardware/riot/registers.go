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

package riot

import (
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// Register names a RIOT register by its primary address.
type Register uint16

// List of valid Register values.
const (
	SWCHA  Register = 0x0280
	SWACNT Register = 0x0281
	SWCHB  Register = 0x0282
	SWBCNT Register = 0x0283
	INTIM  Register = 0x0284
	INSTAT Register = 0x0285
	TIM1T  Register = 0x0294
	TIM8T  Register = 0x0295
	TIM64T Register = 0x0296
	T1024T Register = 0x0297
)

var registerList = []Register{SWCHA, SWACNT, SWCHB, SWBCNT, INTIM, INSTAT, TIM1T, TIM8T, TIM64T, T1024T}

func (r Register) String() string {
	switch r {
	case SWCHA:
		return "SWCHA"
	case SWACNT:
		return "SWACNT"
	case SWCHB:
		return "SWCHB"
	case SWBCNT:
		return "SWBCNT"
	case INTIM:
		return "INTIM"
	case INSTAT:
		return "INSTAT"
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown RIOT register"
}

// everything the RIOT decodes is mirrored this far above the primary address
const mirrorOffset = 0x0100

// ramZone is the zone for the 128 bytes of RIOT RAM.
var ramZone = memorymap.Zone{
	Name:    "RIOT RAM",
	Start:   memorymap.OriginRAM,
	Length:  int(memorymap.MemtopRAM-memorymap.OriginRAM) + 1,
	Mirrors: []uint16{memorymap.OriginRAM + mirrorOffset},
}

// Zones returns the zones decoded by the RIOT. The RAM zone is first and is
// followed by one single byte zone for each register.
func Zones() []memorymap.Zone {
	z := make([]memorymap.Zone, 0, len(registerList)+1)
	z = append(z, ramZone)
	for _, r := range registerList {
		z = append(z, memorymap.Zone{
			Name:    r.String(),
			Start:   uint16(r),
			Length:  1,
			Mirrors: []uint16{uint16(r) + mirrorOffset},
		})
	}
	return z
}
