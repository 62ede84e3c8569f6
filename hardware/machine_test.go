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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

// run the machine until an instruction jumps to itself
func runUntilTrap(t *testing.T, m *hardware.Machine) {
	t.Helper()
	err := m.Run(100000, func(r execution.Result) (bool, error) {
		return r.Address != m.CPU.PC(), nil
	})
	test.DemandSuccess(t, err)
}

func TestFlat(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.Flat,
		StartAddress: 0x0200,
	})
	test.DemandSuccess(t, err)

	program := []byte{
		0xa2, 0x05, // LDX #$05
		0xca,       // DEX
		0xd0, 0xfd, // BNE $0202
		0x4c, 0x05, 0x02, // JMP $0205
	}
	test.DemandSuccess(t, m.Load(program, 0x0200))
	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.CPU.PC(), 0x0200)
	test.ExpectEquality(t, m.CPU.Cycles(), 0)
	test.ExpectEquality(t, m.CPU.Reg(registers.Stack), 0xfd)

	runUntilTrap(t, m)
	test.ExpectEquality(t, m.CPU.PC(), 0x0205)
	test.ExpectEquality(t, m.CPU.Reg(registers.IndX), 0x00)
	test.ExpectEquality(t, m.CPU.Flag(registers.Zero), true)
	test.ExpectInequality(t, m.CPU.Cycles(), 0)

	s := m.State()
	test.ExpectEquality(t, s.Layout, "flat")
	test.ExpectEquality(t, s.CPU.PC, 0x0205)
	test.ExpectEquality(t, s.RIOT == nil, true)
}

func TestResetVector(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.Flat,
		StartAddress: hardware.UseResetVector,
	})
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, m.Load([]byte{0x00, 0x03}, 0xfffc))
	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.CPU.PC(), 0x0300)

	// reading the vector does not count towards the cycles of the program
	test.ExpectEquality(t, m.CPU.Cycles(), 0)
}

func TestRunCycleLimit(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.Flat,
		StartAddress: 0x1000,
	})
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, m.Load([]byte{0x4c, 0x00, 0x10}, 0x1000))
	test.DemandSuccess(t, m.Reset())
	test.DemandSuccess(t, m.Run(100, nil))

	// the limit is checked between instructions so the final instruction may
	// take the counter beyond the limit
	test.ExpectEquality(t, m.CPU.Cycles() >= 100, true)
	test.ExpectEquality(t, m.CPU.Cycles() < 110, true)
}

func TestRunError(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.Flat,
		StartAddress: 0x1000,
	})
	test.DemandSuccess(t, err)

	// 0x02 is not a documented opcode
	test.DemandSuccess(t, m.Load([]byte{0xea, 0x02}, 0x1000))
	test.DemandSuccess(t, m.Reset())
	test.ExpectFailure(t, m.Run(0, nil))
	test.ExpectEquality(t, m.CPU.PC(), 0x1001)
}

func TestLoadOverrun(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{Layout: hardware.Flat})
	test.DemandSuccess(t, err)

	err = m.Load([]byte{0x01, 0x02, 0x03}, 0xfffe)
	test.ExpectEquality(t, curated.Has(err, memory.Overrun), true)
}

// a 4K cartridge image with the program at the start and the reset vector
// pointing to it through the 0xf000 mirror
func vcsImage(program []byte) []byte {
	image := make([]byte, 4096)
	copy(image, program)
	image[0xffc] = 0x00
	image[0xffd] = 0xf0
	return image
}

func TestVCS(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.VCS,
		StartAddress: hardware.UseResetVector,
	})
	test.DemandSuccess(t, err)

	program := []byte{
		0xa9, 0x42, // LDA #$42
		0x85, 0x80, // STA $80
		0x85, 0x02, // STA $02 (unconnected TIA)
		0xae, 0x80, 0x01, // LDX $0180
		0xa9, 0x10, // LDA #$10
		0x8d, 0x96, 0x02, // STA TIM64T
		0x4c, 0x0e, 0xf0, // JMP $F00E
	}
	test.DemandSuccess(t, m.Load(vcsImage(program), 0xf000))
	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.CPU.PC(), 0xf000)

	runUntilTrap(t, m)
	test.ExpectEquality(t, m.CPU.PC(), 0xf00e)

	// RIOT RAM is mirrored at 0x0180
	test.ExpectEquality(t, m.CPU.Reg(registers.IndX), 0x42)

	// the timer decreases on the cycle after it has been set
	s := m.State()
	test.DemandEquality(t, s.RIOT != nil, true)
	test.ExpectEquality(t, s.RIOT.Divider, "TIM64T")
	test.ExpectEquality(t, s.RIOT.INTIM, 0x0f)
	test.ExpectEquality(t, s.Layout, "VCS")
}

func TestVCSReadOnly(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{
		Layout:       hardware.VCS,
		StartAddress: hardware.UseResetVector,
	})
	test.DemandSuccess(t, err)

	program := []byte{
		0x8d, 0x00, 0x10, // STA $1000
	}
	test.DemandSuccess(t, m.Load(vcsImage(program), 0x1000))
	test.DemandSuccess(t, m.Reset())

	err = m.Run(0, nil)
	test.ExpectEquality(t, curated.Has(err, memory.ReadOnly), true)
}

func TestVCSLoad(t *testing.T) {
	m, err := hardware.NewMachine(hardware.Config{Layout: hardware.VCS})
	test.DemandSuccess(t, err)

	// not in the cartridge area
	err = m.Load(vcsImage(nil), 0x0200)
	test.ExpectEquality(t, curated.Has(err, memory.Unmapped), true)

	// not a cartridge size
	test.ExpectFailure(t, m.Load([]byte{0x00}, 0x1000))

	test.ExpectSuccess(t, m.Load(make([]byte, 2048), 0x1000))
}

func TestConfig(t *testing.T) {
	_, err := hardware.NewMachine(hardware.Config{StartAddress: 0x10000})
	test.ExpectFailure(t, err)
	_, err = hardware.NewMachine(hardware.Config{StartAddress: -2})
	test.ExpectFailure(t, err)
	_, err = hardware.NewMachine(hardware.Config{Layout: hardware.Layout(99)})
	test.ExpectFailure(t, err)
	_, err = hardware.NewMachine(hardware.Config{RAMSize: 0x100})
	test.ExpectSuccess(t, err)
}
