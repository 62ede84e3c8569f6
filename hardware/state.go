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

package hardware

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/riot"
)

// State is a snapshot of the machine. It is a plain value and is suitable for
// passing to reflection based tools.
type State struct {
	Layout string
	CPU    cpu.State

	// nil in the Flat layout
	RIOT *riot.State

	Cartridge string
}

// State returns a snapshot of the machine.
func (m *Machine) State() State {
	s := State{
		Layout: m.Config.Layout.String(),
		CPU:    m.CPU.State(),
	}
	if m.RIOT != nil {
		r := m.RIOT.State()
		s.RIOT = &r
	}
	if m.Cart != nil {
		s.Cartridge = m.Cart.Summary()
	}
	return s
}
