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

package riot

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// the values of the input pins when nothing is plugged in and no console
// switch is pressed. the colour switch of the console panel is set
const (
	defaultSWCHA = uint8(0xff)
	defaultSWCHB = uint8(0x0b)
)

// RIOT implements the memory.Mapper and memory.DebugBus interfaces.
type RIOT struct {
	zones []memorymap.Zone
	ram   [128]uint8
	timer timer

	// port A is bidirectional. the data direction register (SWACNT) selects,
	// for each bit, whether the value comes from the output latch or from
	// the input pins
	swchaPins  uint8
	swchaLatch uint8
	swacnt     uint8

	// port B is the console panel and is input only
	swchb uint8
}

// NewRIOT is the preferred method of initialisation for the RIOT type. The
// timer is started immediately.
func NewRIOT(sched Scheduler) *RIOT {
	riot := &RIOT{
		zones: Zones(),
	}
	riot.timer.sched = sched
	riot.Reset()
	return riot
}

// Reset the RIOT to its power-on state. RAM is not cleared.
//
// The timer is rescheduled so Reset() must be called after the cycle
// listeners of the Scheduler have been reset.
func (riot *RIOT) Reset() {
	riot.swchaPins = defaultSWCHA
	riot.swchaLatch = 0
	riot.swacnt = 0
	riot.swchb = defaultSWCHB
	riot.timer.reset()
}

func (riot *RIOT) String() string {
	return fmt.Sprintf("SWCHA=%02x SWACNT=%02x SWCHB=%02x %s", riot.swcha(), riot.swacnt, riot.swchb, &riot.timer)
}

// Label implements the memory.Label interface.
func (riot *RIOT) Label() string {
	return "RIOT"
}

// Zones implements the memory.Mapper interface.
func (riot *RIOT) Zones() []memorymap.Zone {
	return riot.zones
}

// resolve an address to its primary address. returns false if the address
// is not decoded by the RIOT
func (riot *RIOT) resolve(address uint16) (uint16, bool) {
	a, i := memorymap.Resolve(riot.zones, address)
	return a, i >= 0
}

func isRAM(address uint16) bool {
	return address >= memorymap.OriginRAM && address <= memorymap.MemtopRAM
}

func (riot *RIOT) swcha() uint8 {
	return (riot.swchaPins &^ riot.swacnt) | (riot.swchaLatch & riot.swacnt)
}

// read is the common implementation of Read() and Peek(). reading INTIM
// only has side effects when sideEffects is true
func (riot *RIOT) read(address uint16, sideEffects bool) (uint8, error) {
	a, ok := riot.resolve(address)
	if !ok {
		return 0, curated.Errorf(memory.Unmapped, address)
	}

	if isRAM(a) {
		return riot.ram[a-memorymap.OriginRAM], nil
	}

	switch Register(a) {
	case SWCHA:
		return riot.swcha(), nil
	case SWACNT:
		return riot.swacnt, nil
	case SWCHB:
		return riot.swchb, nil
	case SWBCNT:
		return 0, nil
	case INTIM:
		if sideEffects {
			return riot.timer.readINTIM(), nil
		}
		return riot.timer.intim, nil
	case INSTAT:
		return riot.timer.instat, nil
	}

	// the timer registers are write only. address line 0 selects between the
	// timer value and the status register when they are read
	if a&0x01 == 0x01 {
		return riot.timer.instat, nil
	}
	return riot.timer.intim, nil
}

// Read implements the memory.Mapper interface.
func (riot *RIOT) Read(address uint16) (uint8, error) {
	return riot.read(address, true)
}

// Read16 implements the memory.Mapper interface. The value is big-endian and
// the read has no side effects.
func (riot *RIOT) Read16(address uint16) (uint16, error) {
	hi, err := riot.Peek(address)
	if err != nil {
		return 0, err
	}
	lo, err := riot.Peek(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// checkWrite returns the primary address for a CPU write or an error if the
// address cannot be written to.
func (riot *RIOT) checkWrite(address uint16) (uint16, error) {
	a, ok := riot.resolve(address)
	if !ok {
		return 0, curated.Errorf(memory.Unmapped, address)
	}
	switch Register(a) {
	case INTIM, INSTAT:
		return 0, curated.Errorf(memory.ReadOnly, address)
	}
	return a, nil
}

// Write implements the memory.Mapper interface.
func (riot *RIOT) Write(address uint16, data uint8) error {
	a, err := riot.checkWrite(address)
	if err != nil {
		return err
	}

	if isRAM(a) {
		riot.ram[a-memorymap.OriginRAM] = data
		return nil
	}

	switch Register(a) {
	case SWCHA:
		riot.swchaLatch = data
	case SWACNT:
		riot.swacnt = data
	case SWCHB, SWBCNT:
		// the console panel is input only and the direction of port B
		// cannot be changed
	default:
		if in, ok := intervalFromRegister(Register(a)); ok {
			riot.timer.program(in, data, true)
		}
	}

	return nil
}

// WriteArray implements the memory.Mapper interface. Every address is checked
// before anything is written.
func (riot *RIOT) WriteArray(address uint16, data []uint8) error {
	if err := riot.CheckWriteArray(address, len(data)); err != nil {
		return err
	}
	for i, d := range data {
		if err := riot.Write(address+uint16(i), d); err != nil {
			return err
		}
	}
	return nil
}

// CheckWriteArray implements the memory.WriteChecker interface.
func (riot *RIOT) CheckWriteArray(address uint16, length int) error {
	if int(address)+length > memorymap.AddressSpaceSize {
		return curated.Errorf(memory.Overrun, length, address)
	}
	for i := range length {
		if _, err := riot.checkWrite(address + uint16(i)); err != nil {
			return err
		}
	}
	return nil
}

// Peek implements the memory.DebugBus interface.
func (riot *RIOT) Peek(address uint16) (uint8, error) {
	return riot.read(address, false)
}

// Poke implements the memory.DebugBus interface. Poking a register sets it
// directly. Poking a timer register changes the timer value without
// changing the interval.
func (riot *RIOT) Poke(address uint16, value uint8) error {
	a, ok := riot.resolve(address)
	if !ok {
		return curated.Errorf(memory.Unmapped, address)
	}

	if isRAM(a) {
		riot.ram[a-memorymap.OriginRAM] = value
		return nil
	}

	switch Register(a) {
	case SWCHA:
		riot.swchaLatch = value
	case SWACNT:
		riot.swacnt = value
	case SWCHB:
		riot.swchb = value
	case SWBCNT:
	case INSTAT:
		riot.timer.instat = value
	default:
		riot.timer.intim = value
	}

	return nil
}

// PeriphWrite sets the input pins of one of the ports. It is the way the
// peripherals plugged into the VCS, including the console panel, present
// their state to the CPU.
func (riot *RIOT) PeriphWrite(reg Register, value uint8) error {
	switch reg {
	case SWCHA:
		riot.swchaPins = value
	case SWCHB:
		riot.swchb = value
	default:
		return curated.Errorf("riot: %s is not an input port", reg)
	}
	return nil
}

// State is a snapshot of the RIOT registers.
type State struct {
	SWCHA    uint8
	SWACNT   uint8
	SWCHB    uint8
	INTIM    uint8
	INSTAT   uint8
	Interval string
	Divider  string
}

// State returns a snapshot of the RIOT registers.
func (riot *RIOT) State() State {
	return State{
		SWCHA:    riot.swcha(),
		SWACNT:   riot.swacnt,
		SWCHB:    riot.swchb,
		INTIM:    riot.timer.intim,
		INSTAT:   riot.timer.instat,
		Interval: riot.timer.interval.String(),
		Divider:  riot.timer.divider.String(),
	}
}
