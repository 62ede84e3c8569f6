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
package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// State is a copy of the CPU state that is safe to inspect while the CPU
// continues to run.
type State struct {
	PC        uint16
	Registers registers.File
	Status    string
	Cycles    uint64

	// target cycle of each pending cycle listener, in firing order
	Pending []uint64
}

// State returns a copy of the current CPU state.
func (mc *CPU) State() State {
	return State{
		PC:        mc.pc,
		Registers: mc.regs,
		Status:    registers.StatusString(mc.regs.Get(registers.Status)),
		Cycles:    mc.cycles,
		Pending:   mc.PendingListeners(),
	}
}
