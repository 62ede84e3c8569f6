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
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/logger"
)

// Memory defines the memory operations required by the CPU. The
// memory.Interface type is the usual implementation.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Operation performs the instruction bound to an opcode. It is called after the
// program counter has been advanced past the instruction. The operation is
// responsible for all register and flag changes, any memory writes and any
// further change to the program counter.
type Operation func(mc *CPU, p execution.Params) error

// Operations is the opcode dispatch table. Opcodes without an instruction are
// nil.
type Operations [256]Operation

// CPU implements the 6502. The CPU exclusively owns its registers and its
// timing state. Memory is reached through the Memory interface, which the CPU
// does not own.
type CPU struct {
	regs registers.File
	pc   uint16

	mem Memory
	ops Operations

	// the number of memory accesses since the last call to ResetTiming()
	cycles uint64

	listeners   listeners
	seq         uint64
	due         []listener
	dispatching bool
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// operations table is copied and cannot be changed after the CPU has been
// created.
func NewCPU(mem Memory, ops Operations) *CPU {
	return &CPU{
		mem: mem,
		ops: ops,
	}
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x %s", mc.pc, mc.regs)
}

// Reset reinitialises all registers to zero and sets the program counter to
// the start address. Memory is not touched. Neither is the cycle counter nor
// the pending cycle listeners; see ResetTiming().
func (mc *CPU) Reset(start uint16) {
	mc.regs.Reset()
	mc.pc = start
}

// ResetTiming sets the cycle counter to zero and discards every pending cycle
// listener.
func (mc *CPU) ResetTiming() {
	mc.cycles = 0
	mc.listeners = mc.listeners[:0]
	mc.seq = 0
}

// LoadPCIndirect loads the program counter with the little-endian word found at
// the vector address. The two reads are counted.
func (mc *CPU) LoadPCIndirect(vector uint16) error {
	lo, err := mc.Read(vector)
	if err != nil {
		return err
	}
	hi, err := mc.Read(vector + 1)
	if err != nil {
		return err
	}
	mc.pc = (uint16(hi) << 8) | uint16(lo)
	return nil
}

// Reg returns the value of the named register.
func (mc *CPU) Reg(r registers.Register) uint8 {
	return mc.regs.Get(r)
}

// SetReg sets the value of the named register.
func (mc *CPU) SetReg(r registers.Register, v uint8) {
	mc.regs.Set(r, v)
}

// Registers returns a copy of the register file.
func (mc *CPU) Registers() registers.File {
	return mc.regs
}

// Flag returns the state of the status register bit.
func (mc *CPU) Flag(f registers.Flag) bool {
	return mc.regs.Flag(f)
}

// SetFlag sets or clears the status register bit.
func (mc *CPU) SetFlag(f registers.Flag, v bool) {
	mc.regs.SetFlag(f, v)
}

// PC returns the program counter.
func (mc *CPU) PC() uint16 {
	return mc.pc
}

// SetPC sets the program counter.
func (mc *CPU) SetPC(pc uint16) {
	mc.pc = pc
}

// Cycles returns the number of memory accesses made since the last call to
// ResetTiming(). The value never decreases otherwise.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Read a byte from memory. The read counts as one cycle. Cycle listeners due
// at the new cycle count are fired before memory is accessed.
func (mc *CPU) Read(address uint16) (uint8, error) {
	mc.cycles++
	if err := mc.dispatch(); err != nil {
		return 0, err
	}
	return mc.mem.Read(address)
}

// Write a byte to memory. The write counts as one cycle. Cycle listeners due
// at the new cycle count are fired before memory is accessed.
func (mc *CPU) Write(address uint16, data uint8) error {
	mc.cycles++
	if err := mc.dispatch(); err != nil {
		return err
	}
	return mc.mem.Write(address, data)
}

// read a little-endian word. the addresses of the two bytes are
// calculated with 16-bit wraparound
func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read a little-endian word from the zero page. the high byte of a pointer at
// 0xff is read from 0x00
func (mc *CPU) read16ZeroPage(address uint8) (uint16, error) {
	lo, err := mc.Read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// Fetch reads the opcode at the program counter and resolves the parameters of
// the instruction according to its addressing mode. Nothing but the cycle
// counter is changed by Fetch.
//
// An opcode without a defined instruction results in an UnimplementedOpcode
// error. The opcode is returned with the error.
func (mc *CPU) Fetch() (uint8, execution.Params, error) {
	pc := mc.pc

	opcode, err := mc.Read(pc)
	if err != nil {
		return 0, execution.Params{}, err
	}

	defn := instructions.Lookup(opcode)
	if !defn.Implemented() {
		logger.Logf(logger.Allow, "cpu", "unimplemented opcode %#02x at %#04x", opcode, pc)
		return opcode, execution.Params{}, curated.Errorf(UnimplementedOpcode, opcode, pc)
	}

	p := execution.Params{
		Mode:            defn.AddressingMode,
		InstructionSize: defn.Bytes,
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		p.Address = pc

	case instructions.Accumulator:
		p.Operand = mc.regs.Get(registers.Accum)

	case instructions.Immediate:
		p.Address = pc + 1
		p.Operand, err = mc.Read(p.Address)

	case instructions.Relative:
		var offset uint8
		offset, err = mc.Read(pc + 1)

		// the offset is sign extended explicitly. a raw value of 0x80 or
		// more is a backwards branch
		if offset < 0x80 {
			p.Address = pc + 2 + uint16(offset)
		} else {
			p.Address = uint16(int(pc) + 2 + int(offset) - 0x100)
		}

	case instructions.Absolute:
		p.Address, err = mc.read16(pc + 1)

	case instructions.AbsoluteX:
		p.Address, err = mc.read16(pc + 1)
		p.Address += uint16(mc.regs.Get(registers.IndX))

	case instructions.AbsoluteY:
		p.Address, err = mc.read16(pc + 1)
		p.Address += uint16(mc.regs.Get(registers.IndY))

	case instructions.ZeroPage:
		p.Operand, p.Address, err = mc.zeroPage(pc, 0)

	case instructions.ZeroPageX:
		p.Operand, p.Address, err = mc.zeroPage(pc, mc.regs.Get(registers.IndX))

	case instructions.ZeroPageY:
		p.Operand, p.Address, err = mc.zeroPage(pc, mc.regs.Get(registers.IndY))

	case instructions.IndexedIndirect:
		var zp uint8
		zp, err = mc.Read(pc + 1)
		if err != nil {
			break // switch
		}
		zp += mc.regs.Get(registers.IndX)
		p.Address, err = mc.read16ZeroPage(zp)
		if err != nil {
			break // switch
		}
		p.Operand, err = mc.Read(p.Address)

	case instructions.IndirectIndexed:
		var zp uint8
		zp, err = mc.Read(pc + 1)
		if err != nil {
			break // switch
		}
		p.Address, err = mc.read16ZeroPage(zp)
		if err != nil {
			break // switch
		}
		p.Address += uint16(mc.regs.Get(registers.IndY))
		p.Operand, err = mc.Read(p.Address)

	case instructions.Indirect:
		var ptr uint16
		ptr, err = mc.read16(pc + 1)
		if err != nil {
			break // switch
		}

		// the pointer is followed with full 16-bit carry. JMP ($10ff) reads
		// the high byte from $1100
		p.Address, err = mc.read16(ptr)
	}

	if err != nil {
		return opcode, execution.Params{}, err
	}

	return opcode, p, nil
}

// zero page addressing. the index is added with wraparound so the effective
// address never leaves the zero page
func (mc *CPU) zeroPage(pc uint16, index uint8) (uint8, uint16, error) {
	zp, err := mc.Read(pc + 1)
	if err != nil {
		return 0, 0, err
	}
	address := uint16(zp + index)
	v, err := mc.Read(address)
	if err != nil {
		return 0, 0, err
	}
	return v, address, nil
}

// Execute the operation bound to the opcode. The program counter is advanced
// by the size of the instruction before the operation is called.
func (mc *CPU) Execute(opcode uint8, p execution.Params) error {
	op := mc.ops[opcode]
	if op == nil {
		return curated.Errorf(UnimplementedOpcode, opcode, mc.pc)
	}
	mc.pc += uint16(p.InstructionSize)
	return op(mc, p)
}

// Step fetches and executes one instruction. If the fetch fails the program
// counter is not changed.
func (mc *CPU) Step() (execution.Result, error) {
	res := execution.Result{
		Address: mc.pc,
	}
	start := mc.cycles

	opcode, p, err := mc.Fetch()
	res.Opcode = opcode
	res.Defn = instructions.Lookup(opcode)
	if err != nil {
		res.Cycles = int(mc.cycles - start)
		return res, err
	}
	res.Params = p

	err = mc.Execute(opcode, p)
	res.Cycles = int(mc.cycles - start)

	return res, err
}
