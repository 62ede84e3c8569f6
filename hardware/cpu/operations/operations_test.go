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
package operations_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/operations"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

type harness struct {
	t   *testing.T
	mc  *cpu.CPU
	ram *memory.RAM
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ram, err := memory.NewRAM(0)
	test.DemandSuccess(t, err)
	mc := cpu.NewCPU(memory.NewInterface(ram), operations.Table())
	mc.Reset(0x1000)
	mc.SetReg(registers.Stack, 0xff)
	return &harness{t: t, mc: mc, ram: ram}
}

func (h *harness) program(origin uint16, bytes ...uint8) {
	h.t.Helper()
	test.DemandSuccess(h.t, h.ram.WriteArray(origin, bytes))
}

func (h *harness) step(n int) execution.Result {
	h.t.Helper()
	var res execution.Result
	var err error
	for range n {
		res, err = h.mc.Step()
		test.DemandSuccess(h.t, err)
	}
	return res
}

func (h *harness) status() string {
	return registers.StatusString(h.mc.Reg(registers.Status))
}

func (h *harness) mem(address uint16) uint8 {
	v, _ := h.ram.Peek(address)
	return v
}

func TestTableCoverage(t *testing.T) {
	ops := operations.Table()
	for _, defn := range instructions.Definitions() {
		if defn.Implemented() {
			test.ExpectInequality(t, ops[defn.OpCode] == nil, true, defn.Mnemonic)
		} else {
			test.ExpectEquality(t, ops[defn.OpCode] == nil, true, defn.OpCode)
		}
	}
}

func TestStatusInstructions(t *testing.T) {
	h := newHarness(t)

	// SEC; CLC; SEI; CLI; SED; CLD
	h.program(0x1000, 0x38, 0x18, 0x78, 0x58, 0xf8, 0xd8)
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizC")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdIzc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bDizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizc")

	// LDA #$40; ADC #$40 (sets overflow); CLV
	h.program(0x1006, 0xa9, 0x40, 0x69, 0x40, 0xb8)
	h.step(2)
	test.ExpectEquality(t, h.status(), "SV-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
}

func TestLoadStore(t *testing.T) {
	h := newHarness(t)

	// LDA #$00; LDX #$80; LDY #$7f
	h.program(0x1000, 0xa9, 0x00, 0xa2, 0x80, 0xa0, 0x7f)
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdiZc")
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndX), 0x80)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndY), 0x7f)
	test.ExpectEquality(t, h.status(), "sv-bdizc")

	// STX $20; STA $2000,X; STA ($20),Y
	h.program(0x1006, 0x86, 0x20, 0x9d, 0x00, 0x20, 0x91, 0x20)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x0020), 0x80)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x2080), 0x00)

	// ($20) is $0080 plus Y ($7f)
	h.mc.SetReg(registers.Accum, 0xee)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x00ff), 0xee)

	// LDA $2080; LDX $20,Y ($20+$7f)
	h.program(0x100d, 0xad, 0x80, 0x20, 0xb6, 0x20)
	h.program(0x009f, 0x33)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x00)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndX), 0x33)
}

func TestTransfers(t *testing.T) {
	h := newHarness(t)

	// LDA #$81; TAX; TAY; LDA #$00; TXA; TSX; TXS
	h.program(0x1000, 0xa9, 0x81, 0xaa, 0xa8, 0xa9, 0x00, 0x8a, 0xba, 0x9a)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.IndX), 0x81)
	test.ExpectEquality(t, h.mc.Reg(registers.IndY), 0x81)
	h.step(2)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x81)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndX), 0xff)

	// TXS does not change flags
	h.mc.SetFlag(registers.Negative, false)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xff)
	test.ExpectEquality(t, h.status(), "sv-bdizc")
}

func TestStack(t *testing.T) {
	h := newHarness(t)

	// LDA #$12; PHA; LDA #$00; PLA
	h.program(0x1000, 0xa9, 0x12, 0x48, 0xa9, 0x00, 0x68)
	h.step(2)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xfe)
	test.ExpectEquality(t, h.mem(0x01ff), 0x12)
	h.step(2)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x12)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xff)

	// SEC; PHP; CLC; PLP
	h.program(0x1006, 0x38, 0x08, 0x18, 0x28)
	h.step(2)

	// break and unused bits are set in the pushed value
	test.ExpectEquality(t, h.mem(0x01ff), 0x31)
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizC")
}

func TestLogic(t *testing.T) {
	h := newHarness(t)

	// LDA #$f0; AND #$3c; ORA #$03; EOR #$ff
	h.program(0x1000, 0xa9, 0xf0, 0x29, 0x3c, 0x09, 0x03, 0x49, 0xff)
	h.step(2)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x30)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x33)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0xcc)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")

	// BIT $20
	h.program(0x0020, 0xc0)
	h.program(0x1008, 0x24, 0x20)
	h.mc.SetReg(registers.Accum, 0x01)
	h.step(1)
	test.ExpectEquality(t, h.status(), "SV-bdiZc")
}

func TestArithmetic(t *testing.T) {
	h := newHarness(t)

	// CLC; LDA #$ff; ADC #$01
	h.program(0x1000, 0x18, 0xa9, 0xff, 0x69, 0x01)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x00)
	test.ExpectEquality(t, h.status(), "sv-bdiZC")

	// ADC #$7f (with carry)
	h.program(0x1005, 0x69, 0x7f)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x80)
	test.ExpectEquality(t, h.status(), "SV-bdizc")

	// SEC; LDA #$01; SBC #$06
	h.program(0x1007, 0x38, 0xa9, 0x01, 0xe9, 0x06)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0xfb)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")

	// SEC; LDA #$80; SBC #$01
	h.program(0x100c, 0x38, 0xa9, 0x80, 0xe9, 0x01)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x7f)
	test.ExpectEquality(t, h.status(), "sV-bdizC")
}

func TestDecimalMode(t *testing.T) {
	h := newHarness(t)

	// SED; CLC; LDA #$58; ADC #$46
	h.program(0x1000, 0xf8, 0x18, 0xa9, 0x58, 0x69, 0x46)
	h.step(4)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x04)
	test.ExpectSuccess(t, h.mc.Flag(registers.Carry))

	// CLC; LDA #$12; ADC #$34
	h.program(0x1006, 0x18, 0xa9, 0x12, 0x69, 0x34)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x46)
	test.ExpectFailure(t, h.mc.Flag(registers.Carry))

	// SEC; LDA #$46; SBC #$12
	h.program(0x100b, 0x38, 0xa9, 0x46, 0xe9, 0x12)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x34)
	test.ExpectSuccess(t, h.mc.Flag(registers.Carry))

	// SEC; LDA #$12; SBC #$21
	h.program(0x1010, 0x38, 0xa9, 0x12, 0xe9, 0x21)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x91)
	test.ExpectFailure(t, h.mc.Flag(registers.Carry))

	// CLC; LDA #$99; ADC #$01. zero flag is from the binary result
	h.program(0x1015, 0x18, 0xa9, 0x99, 0x69, 0x01)
	h.step(3)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x00)
	test.ExpectSuccess(t, h.mc.Flag(registers.Carry))
	test.ExpectFailure(t, h.mc.Flag(registers.Zero))
}

func TestCompare(t *testing.T) {
	h := newHarness(t)

	// LDA #$10; CMP #$10; CMP #$20; CMP #$01
	h.program(0x1000, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20, 0xc9, 0x01)
	h.step(2)
	test.ExpectEquality(t, h.status(), "sv-bdiZC")
	h.step(1)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdizC")

	// LDX #$05; CPX #$05; LDY #$00; CPY #$01
	h.program(0x1008, 0xa2, 0x05, 0xe0, 0x05, 0xa0, 0x00, 0xc0, 0x01)
	h.step(2)
	test.ExpectEquality(t, h.status(), "sv-bdiZC")
	h.step(2)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
}

func TestIncrementDecrement(t *testing.T) {
	h := newHarness(t)

	// INX; DEY; INC $20; DEC $2000
	h.program(0x1000, 0xe8, 0x88, 0xe6, 0x20, 0xce, 0x00, 0x20)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndX), 0x01)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.IndY), 0xff)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.mem(0x0020), 0x01)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x2000), 0xff)

	// DEX; INY
	h.program(0x1007, 0xca, 0xc8)
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdiZc")
	h.step(1)
	test.ExpectEquality(t, h.status(), "sv-bdiZc")
}

func TestShiftsAndRotates(t *testing.T) {
	h := newHarness(t)

	// LDA #$81; ASL A; ROL A; LSR A; ROR A
	h.program(0x1000, 0xa9, 0x81, 0x0a, 0x2a, 0x4a, 0x6a)
	h.step(2)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x02)
	test.ExpectSuccess(t, h.mc.Flag(registers.Carry))
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x05)
	test.ExpectFailure(t, h.mc.Flag(registers.Carry))
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x02)
	test.ExpectSuccess(t, h.mc.Flag(registers.Carry))
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Accum), 0x81)
	test.ExpectFailure(t, h.mc.Flag(registers.Carry))

	// ASL $20; ROR $2000
	h.program(0x0020, 0x40)
	h.program(0x2000, 0x01)
	h.program(0x1006, 0x06, 0x20, 0x6e, 0x00, 0x20)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x0020), 0x80)
	test.ExpectEquality(t, h.status(), "Sv-bdizc")
	h.step(1)
	test.ExpectEquality(t, h.mem(0x2000), 0x00)
	test.ExpectEquality(t, h.status(), "sv-bdiZC")
}

func TestBranches(t *testing.T) {
	h := newHarness(t)

	// LDA #$00; BEQ +2; NOP; NOP; BNE -2 (not taken); BEQ -10 (taken)
	h.program(0x1000, 0xa9, 0x00, 0xf0, 0x02, 0xea, 0xea, 0xd0, 0xfe, 0xf0, 0xf6)
	h.step(2)
	test.ExpectEquality(t, h.mc.PC(), 0x1006)
	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x1008)
	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x1000)
}

func TestSubroutines(t *testing.T) {
	h := newHarness(t)

	// JSR $2000; NOP
	h.program(0x1000, 0x20, 0x00, 0x20, 0xea)

	// LDA #$01; RTS
	h.program(0x2000, 0xa9, 0x01, 0x60)

	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x2000)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xfd)

	// return address is the last byte of the JSR
	test.ExpectEquality(t, h.mem(0x01ff), 0x10)
	test.ExpectEquality(t, h.mem(0x01fe), 0x02)

	h.step(2)
	test.ExpectEquality(t, h.mc.PC(), 0x1003)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xff)
}

func TestJumps(t *testing.T) {
	h := newHarness(t)

	// JMP $2000
	h.program(0x1000, 0x4c, 0x00, 0x20)

	// JMP ($30ff) reads the pointer across the page boundary
	h.program(0x2000, 0x6c, 0xff, 0x30)
	h.program(0x30ff, 0x00)
	h.program(0x3000, 0x40)
	h.program(0x3100, 0x50)

	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x2000)
	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x5000)
}

func TestInterrupts(t *testing.T) {
	h := newHarness(t)

	// BRK; padding
	h.program(0x1000, 0x00, 0xff)

	// interrupt vector and handler: RTI
	h.program(0xfffe, 0x00, 0x30)
	h.program(0x3000, 0x40)

	h.mc.SetFlag(registers.Carry, true)
	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x3000)
	test.ExpectEquality(t, h.status(), "sv-bdIzC")
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xfc)
	test.ExpectEquality(t, h.mem(0x01ff), 0x10)
	test.ExpectEquality(t, h.mem(0x01fe), 0x02)
	test.ExpectEquality(t, h.mem(0x01fd), 0x31)

	h.step(1)
	test.ExpectEquality(t, h.mc.PC(), 0x1002)
	test.ExpectEquality(t, h.status(), "sv-bdizC")
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xff)
}

func TestStackWraparound(t *testing.T) {
	h := newHarness(t)
	h.mc.SetReg(registers.Stack, 0x00)

	// PHA; PLA
	h.program(0x1000, 0x48, 0x68)
	h.mc.SetReg(registers.Accum, 0x99)
	h.step(1)
	test.ExpectEquality(t, h.mem(0x0100), 0x99)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0xff)
	h.step(1)
	test.ExpectEquality(t, h.mc.Reg(registers.Stack), 0x00)
}
