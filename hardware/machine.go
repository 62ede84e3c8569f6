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
	"fmt"

	"github.com/jetsetilly/gopher6502/cartridgeloader"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cartridge"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/operations"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/hardware/riot"
	"github.com/jetsetilly/gopher6502/logger"
)

// Layout specifies which memory devices are attached to the CPU.
type Layout int

// List of valid Layout values.
const (
	Flat Layout = iota
	VCS
)

func (l Layout) String() string {
	switch l {
	case Flat:
		return "flat"
	case VCS:
		return "VCS"
	}
	return "unknown layout"
}

// UseResetVector is the value of Config.StartAddress that indicates the
// program counter should be loaded from the reset vector.
const UseResetVector = -1

// the value of the stack pointer after the reset sequence of a real 6502
const resetStackPointer = 0xfd

// Config for a new Machine.
type Config struct {
	Layout Layout

	// size of the RAM in the Flat layout. zero selects the full 64K. not used
	// by the VCS layout
	RAMSize int

	// address of the first instruction after a reset or UseResetVector
	StartAddress int
}

// Machine is the emulated machine.
type Machine struct {
	Config Config

	CPU *cpu.CPU
	Mem *memory.Interface

	// RAM is only present in the Flat layout
	RAM *memory.RAM

	// Bus, RIOT and Cart are only present in the VCS layout
	Bus  *memory.Bus
	RIOT *riot.RIOT
	Cart *cartridge.Cartridge
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The machine is not reset.
func NewMachine(cfg Config) (*Machine, error) {
	if cfg.StartAddress < UseResetVector || cfg.StartAddress > memorymap.Memtop {
		return nil, curated.Errorf("machine: %v", fmt.Sprintf("start address out of range (%#x)", cfg.StartAddress))
	}

	m := &Machine{
		Config: cfg,
		Mem:    memory.NewInterface(nil),
	}
	m.CPU = cpu.NewCPU(m.Mem, operations.Table())

	switch cfg.Layout {
	case Flat:
		ram, err := memory.NewRAM(cfg.RAMSize)
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
		m.RAM = ram
		m.Mem.Plumb(ram)

	case VCS:
		m.RIOT = riot.NewRIOT(m.CPU)
		m.Cart = cartridge.NewCartridge()
		m.Bus = memory.NewBus()
		for _, dev := range []memory.Mapper{memory.NewTIA(), m.RIOT, m.Cart} {
			if err := m.Bus.Attach(dev); err != nil {
				return nil, curated.Errorf("machine: %v", err)
			}
		}
		m.Mem.Plumb(m.Bus)

	default:
		return nil, curated.Errorf("machine: %v", fmt.Sprintf("unsupported layout (%d)", cfg.Layout))
	}

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Summary returns the memory map of the machine.
func (m *Machine) Summary() string {
	return memorymap.Summary(m.Mem.Zones())
}

// Load a program image into memory at the specified address. In the VCS
// layout the image is attached as a cartridge and the address must be in the
// cartridge area or one of its mirrors.
func (m *Machine) Load(image []byte, address uint16) error {
	return m.Attach(cartridgeloader.NewLoaderFromData("image", image, ""), address)
}

// Attach the data in the loader to the machine. See Load() for the meaning of
// the address argument.
func (m *Machine) Attach(cl cartridgeloader.Loader, address uint16) error {
	if m.Config.Layout == VCS {
		if _, i := memorymap.Resolve(m.Cart.Zones(), address); i < 0 {
			return curated.Errorf("machine: %v", curated.Errorf(memory.Unmapped, address))
		}
		if err := m.Cart.Attach(cl); err != nil {
			return curated.Errorf("machine: %v", err)
		}
		return nil
	}

	if err := cl.Load(); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	if err := m.Mem.WriteArray(address, cl.Data); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	logger.Logf(logger.Allow, "machine", "loaded %d bytes at %#04x", len(cl.Data), address)

	return nil
}

// Reset the machine. The cycle counter is set to zero and the pending cycle
// listeners are discarded. Memory is not touched.
//
// The program counter is set to the configured start address or, if the
// start address is UseResetVector, to the little-endian address in the reset
// vector.
func (m *Machine) Reset() error {
	m.CPU.Reset(0)

	if m.Config.StartAddress == UseResetVector {
		if err := m.CPU.LoadPCIndirect(memorymap.ResetVector); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	} else {
		m.CPU.SetPC(uint16(m.Config.StartAddress))
	}
	m.CPU.SetReg(registers.Stack, resetStackPointer)

	m.CPU.ResetTiming()

	// the RIOT timer is scheduled with the CPU and must be restarted after
	// the pending listeners have been discarded
	if m.RIOT != nil {
		m.RIOT.Reset()
	}

	logger.Logf(logger.Allow, "machine", "reset (%s layout) PC=%#04x", m.Config.Layout, m.CPU.PC())

	return nil
}
