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
// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The addressing mode of
// the instruction definition tells the CPU how to resolve the parameters of the
// instruction.
//
// The CPU does not know what any instruction does. The semantics of each
// opcode are supplied to NewCPU() as an Operations table. The operations
// package contains a table for the documented instructions of the NMOS 6502.
//
//	mc := cpu.NewCPU(mem, operations.Table())
//	mc.Reset(0x1000)
//
//	for {
//		res, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		fmt.Println(res)
//	}
//
// Every read and write made by the CPU counts as one cycle. After the cycle
// counter is incremented the CPU fires any cycle listener whose target cycle
// has been passed. Cycle listeners are the means by which peripherals keep
// time with the CPU. The RIOT timer for example is implemented by a chain of
// cycle listeners.
//
// Fetch() and Execute() are the two halves of Step() and can be called
// separately. Fetch() is a pure read of memory (apart from the counting of
// cycles) and Execute() advances the program counter by the size of the
// instruction before the operation is called, so that jump and branch
// operations overwrite rather than add to the advanced value.
package cpu
