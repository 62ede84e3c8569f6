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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// the dispatch table is built once from the mnemonics table below
var table cpu.Operations

// Table returns a copy of the dispatch table.
func Table() cpu.Operations {
	return table
}

func init() {
	for _, defn := range instructions.Definitions() {
		if !defn.Implemented() {
			continue
		}
		op, ok := mnemonics[defn.Mnemonic]
		if !ok {
			panic(fmt.Sprintf("operations: no operation for %s", defn))
		}
		table[defn.OpCode] = op
	}
}

var mnemonics = map[string]cpu.Operation{
	// loads and stores
	"LDA": load(registers.Accum),
	"LDX": load(registers.IndX),
	"LDY": load(registers.IndY),
	"STA": save(registers.Accum),
	"STX": save(registers.IndX),
	"STY": save(registers.IndY),

	// transfers
	"TAX": transfer(registers.Accum, registers.IndX),
	"TAY": transfer(registers.Accum, registers.IndY),
	"TXA": transfer(registers.IndX, registers.Accum),
	"TYA": transfer(registers.IndY, registers.Accum),
	"TSX": transfer(registers.Stack, registers.IndX),
	"TXS": func(mc *cpu.CPU, _ execution.Params) error {
		// TXS is the only transfer that does not affect the flags
		mc.SetReg(registers.Stack, mc.Reg(registers.IndX))
		return nil
	},

	// stack
	"PHA": func(mc *cpu.CPU, _ execution.Params) error {
		return push(mc, mc.Reg(registers.Accum))
	},
	"PHP": func(mc *cpu.CPU, _ execution.Params) error {
		return push(mc, pushableStatus(mc))
	},
	"PLA": func(mc *cpu.CPU, _ execution.Params) error {
		v, err := pull(mc)
		if err != nil {
			return err
		}
		mc.SetReg(registers.Accum, v)
		setNZ(mc, v)
		return nil
	},
	"PLP": func(mc *cpu.CPU, _ execution.Params) error {
		v, err := pull(mc)
		if err != nil {
			return err
		}
		mc.SetReg(registers.Status, pulledStatus(v))
		return nil
	},

	// logic
	"AND": logic(func(a, v uint8) uint8 { return a & v }),
	"ORA": logic(func(a, v uint8) uint8 { return a | v }),
	"EOR": logic(func(a, v uint8) uint8 { return a ^ v }),
	"BIT": func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}
		mc.SetFlag(registers.Zero, mc.Reg(registers.Accum)&v == 0)
		mc.SetFlag(registers.Negative, v&0x80 == 0x80)
		mc.SetFlag(registers.Overflow, v&0x40 == 0x40)
		return nil
	},

	// arithmetic
	"ADC": arithmetic(addBinary, addDecimal),
	"SBC": arithmetic(subtractBinary, subtractDecimal),
	"CMP": compare(registers.Accum),
	"CPX": compare(registers.IndX),
	"CPY": compare(registers.IndY),

	// increments and decrements
	"INC": modify(func(_ *cpu.CPU, v uint8) uint8 { return v + 1 }),
	"DEC": modify(func(_ *cpu.CPU, v uint8) uint8 { return v - 1 }),
	"INX": step(registers.IndX, 1),
	"INY": step(registers.IndY, 1),
	"DEX": step(registers.IndX, 0xff),
	"DEY": step(registers.IndY, 0xff),

	// shifts and rotates
	"ASL": modify(func(mc *cpu.CPU, v uint8) uint8 {
		mc.SetFlag(registers.Carry, v&0x80 == 0x80)
		return v << 1
	}),
	"LSR": modify(func(mc *cpu.CPU, v uint8) uint8 {
		mc.SetFlag(registers.Carry, v&0x01 == 0x01)
		return v >> 1
	}),
	"ROL": modify(func(mc *cpu.CPU, v uint8) uint8 {
		r := v << 1
		if mc.Flag(registers.Carry) {
			r |= 0x01
		}
		mc.SetFlag(registers.Carry, v&0x80 == 0x80)
		return r
	}),
	"ROR": modify(func(mc *cpu.CPU, v uint8) uint8 {
		r := v >> 1
		if mc.Flag(registers.Carry) {
			r |= 0x80
		}
		mc.SetFlag(registers.Carry, v&0x01 == 0x01)
		return r
	}),

	// branches
	"BCC": branch(registers.Carry, false),
	"BCS": branch(registers.Carry, true),
	"BNE": branch(registers.Zero, false),
	"BEQ": branch(registers.Zero, true),
	"BPL": branch(registers.Negative, false),
	"BMI": branch(registers.Negative, true),
	"BVC": branch(registers.Overflow, false),
	"BVS": branch(registers.Overflow, true),

	// flow
	"JMP": func(mc *cpu.CPU, p execution.Params) error {
		mc.SetPC(p.Address)
		return nil
	},
	"JSR": func(mc *cpu.CPU, p execution.Params) error {
		// the address pushed is that of the last byte of the JSR instruction
		if err := push16(mc, mc.PC()-1); err != nil {
			return err
		}
		mc.SetPC(p.Address)
		return nil
	},
	"RTS": func(mc *cpu.CPU, _ execution.Params) error {
		a, err := pull16(mc)
		if err != nil {
			return err
		}
		mc.SetPC(a + 1)
		return nil
	},
	"BRK": func(mc *cpu.CPU, _ execution.Params) error {
		// BRK is a two byte instruction as far as the return address is
		// concerned. the second byte is a padding byte
		if err := push16(mc, mc.PC()+1); err != nil {
			return err
		}
		if err := push(mc, pushableStatus(mc)); err != nil {
			return err
		}
		mc.SetFlag(registers.InterruptDisable, true)
		return mc.LoadPCIndirect(memorymap.IRQVector)
	},
	"RTI": func(mc *cpu.CPU, _ execution.Params) error {
		v, err := pull(mc)
		if err != nil {
			return err
		}
		mc.SetReg(registers.Status, pulledStatus(v))
		a, err := pull16(mc)
		if err != nil {
			return err
		}
		mc.SetPC(a)
		return nil
	},

	// flags
	"CLC": flag(registers.Carry, false),
	"SEC": flag(registers.Carry, true),
	"CLI": flag(registers.InterruptDisable, false),
	"SEI": flag(registers.InterruptDisable, true),
	"CLD": flag(registers.DecimalMode, false),
	"SED": flag(registers.DecimalMode, true),
	"CLV": flag(registers.Overflow, false),

	"NOP": func(_ *cpu.CPU, _ execution.Params) error {
		return nil
	},
}

func load(r registers.Register) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}
		mc.SetReg(r, v)
		setNZ(mc, v)
		return nil
	}
}

func save(r registers.Register) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		return mc.Write(p.Address, mc.Reg(r))
	}
}

func transfer(from, to registers.Register) cpu.Operation {
	return func(mc *cpu.CPU, _ execution.Params) error {
		v := mc.Reg(from)
		mc.SetReg(to, v)
		setNZ(mc, v)
		return nil
	}
}

func logic(fn func(a, v uint8) uint8) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}
		r := fn(mc.Reg(registers.Accum), v)
		mc.SetReg(registers.Accum, r)
		setNZ(mc, r)
		return nil
	}
}

type arithmeticFn func(a, v uint8, carry bool) (uint8, bool, bool, bool, bool)

func arithmetic(binary, decimal arithmeticFn) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}

		fn := binary
		if mc.Flag(registers.DecimalMode) {
			fn = decimal
		}

		r, c, z, o, n := fn(mc.Reg(registers.Accum), v, mc.Flag(registers.Carry))
		mc.SetReg(registers.Accum, r)
		mc.SetFlag(registers.Carry, c)
		mc.SetFlag(registers.Zero, z)
		mc.SetFlag(registers.Overflow, o)
		mc.SetFlag(registers.Negative, n)
		return nil
	}
}

func compare(reg registers.Register) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}
		r := mc.Reg(reg)
		mc.SetFlag(registers.Carry, r >= v)
		setNZ(mc, r-v)
		return nil
	}
}

// read-modify-write instructions. the result is written back to the
// accumulator or to memory depending on the addressing mode
func modify(fn func(mc *cpu.CPU, v uint8) uint8) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		v, err := value(mc, p)
		if err != nil {
			return err
		}
		r := fn(mc, v)
		setNZ(mc, r)
		return store(mc, p, r)
	}
}

func step(r registers.Register, delta uint8) cpu.Operation {
	return func(mc *cpu.CPU, _ execution.Params) error {
		v := mc.Reg(r) + delta
		mc.SetReg(r, v)
		setNZ(mc, v)
		return nil
	}
}

func branch(f registers.Flag, state bool) cpu.Operation {
	return func(mc *cpu.CPU, p execution.Params) error {
		if mc.Flag(f) == state {
			mc.SetPC(p.Address)
		}
		return nil
	}
}

func flag(f registers.Flag, state bool) cpu.Operation {
	return func(mc *cpu.CPU, _ execution.Params) error {
		mc.SetFlag(f, state)
		return nil
	}
}
