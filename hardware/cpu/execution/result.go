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
package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the outcome of one CPU step.
type Result struct {
	// the address at which the instruction began
	Address uint16

	Opcode uint8
	Defn   instructions.Definition
	Params Params

	// the number of cycles (memory accesses) consumed by the step. this is the
	// counted value and may differ from Defn.Cycles
	Cycles int
}

func (r Result) String() string {
	return fmt.Sprintf("%04x %02x %-3s (%s) %d cycles", r.Address, r.Opcode, r.Defn.Mnemonic, r.Params.Mode, r.Cycles)
}
