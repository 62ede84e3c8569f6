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
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// Step the machine one CPU instruction.
func (m *Machine) Step() (execution.Result, error) {
	return m.CPU.Step()
}

// Run the machine until the cycle counter reaches maxCycles or until an error
// occurs. A maxCycles value of zero means there is no cycle limit.
//
// The continueCheck function is called after every instruction with the
// result of that instruction. It should return false if the machine should
// stop. It can be nil.
func (m *Machine) Run(maxCycles uint64, continueCheck func(r execution.Result) (bool, error)) error {
	for maxCycles == 0 || m.CPU.Cycles() < maxCycles {
		r, err := m.CPU.Step()
		if err != nil {
			return err
		}

		if continueCheck != nil {
			cont, err := continueCheck(r)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
	return nil
}
