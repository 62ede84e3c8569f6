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

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// NoValue is the error pattern for an operation that requires a value from
// an addressing mode that does not supply one.
const NoValue = "operations: %s mode does not supply a value"

// value returns the value the instruction operates on. the CPU has already
// read the value for modes that supply an operand; absolute modes must be read
// here
func value(mc *cpu.CPU, p execution.Params) (uint8, error) {
	switch p.Mode {
	case instructions.Accumulator, instructions.Immediate,
		instructions.ZeroPage, instructions.ZeroPageX, instructions.ZeroPageY,
		instructions.IndexedIndirect, instructions.IndirectIndexed:
		return p.Operand, nil
	case instructions.Absolute, instructions.AbsoluteX, instructions.AbsoluteY:
		return mc.Read(p.Address)
	case instructions.Implied, instructions.Indirect, instructions.Relative:
		return 0, curated.Errorf(NoValue, p.Mode)
	}
	return 0, curated.Errorf(NoValue, p.Mode)
}

// store the result of a read-modify-write instruction
func store(mc *cpu.CPU, p execution.Params, v uint8) error {
	if p.Mode == instructions.Accumulator {
		mc.SetReg(registers.Accum, v)
		return nil
	}
	return mc.Write(p.Address, v)
}

func setNZ(mc *cpu.CPU, v uint8) {
	mc.SetFlag(registers.Zero, v == 0)
	mc.SetFlag(registers.Negative, v&0x80 == 0x80)
}

func push(mc *cpu.CPU, v uint8) error {
	sp := mc.Reg(registers.Stack)
	if err := mc.Write(memorymap.StackPage|uint16(sp), v); err != nil {
		return err
	}
	mc.SetReg(registers.Stack, sp-1)
	return nil
}

func pull(mc *cpu.CPU) (uint8, error) {
	sp := mc.Reg(registers.Stack) + 1
	mc.SetReg(registers.Stack, sp)
	return mc.Read(memorymap.StackPage | uint16(sp))
}

func push16(mc *cpu.CPU, v uint16) error {
	if err := push(mc, uint8(v>>8)); err != nil {
		return err
	}
	return push(mc, uint8(v))
}

func pull16(mc *cpu.CPU) (uint16, error) {
	lo, err := pull(mc)
	if err != nil {
		return 0, err
	}
	hi, err := pull(mc)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// the value of the status register as it is pushed to the stack. the break
// and unused bits are always set
func pushableStatus(mc *cpu.CPU) uint8 {
	return mc.Reg(registers.Status) | registers.Break.Mask() | registers.Unused.Mask()
}

// the break and unused bits do not exist in the status register itself. they
// are discarded when the status is pulled from the stack
func pulledStatus(v uint8) uint8 {
	return v &^ (registers.Break.Mask() | registers.Unused.Mask())
}
