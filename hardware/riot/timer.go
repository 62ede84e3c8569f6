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

	"github.com/jetsetilly/gopher6502/logger"
)

// Scheduler is the source of time for the timer. The CPU satisfies the
// interface.
type Scheduler interface {
	Cycles() uint64
	AddCycleListener(target uint64, fn func() error)
}

// Interval indicates how often (in CPU cycles) the timer value decreases.
// the following rules apply
//   - set to 1, 8, 64 or 1024 depending on which address has been written to
//     by the CPU
//   - is changed to 1 once the value underflows
//   - is reset to its initial value of 1, 8, 64, or 1024 whenever INTIM is
//     read by the CPU
type Interval int

// List of valid Interval values.
const (
	Interval1    Interval = 1
	Interval8    Interval = 8
	Interval64   Interval = 64
	Interval1024 Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case Interval1:
		return "TIM1T"
	case Interval8:
		return "TIM8T"
	case Interval64:
		return "TIM64T"
	case Interval1024:
		return "T1024T"
	}
	return "unknown timer interval"
}

// the interval selected by each of the timer registers
func intervalFromRegister(r Register) (Interval, bool) {
	switch r {
	case TIM1T:
		return Interval1, true
	case TIM8T:
		return Interval8, true
	case TIM64T:
		return Interval64, true
	case T1024T:
		return Interval1024, true
	}
	return 0, false
}

// the bit in INSTAT that indicates the timer has underflowed
const timint = uint8(0x80)

// timer implements the interval timer of the RIOT.
type timer struct {
	sched Scheduler

	// the interval value most recently requested by the CPU
	divider Interval

	// the interval currently in use. this is the same as divider until the
	// timer underflows
	interval Interval

	// the current timer value and the value of the INSTAT register
	intim  uint8
	instat uint8

	// every time the timer is programmed the generation is increased. a
	// listener from an earlier generation does nothing when it fires
	generation int
}

func (tmr *timer) String() string {
	return fmt.Sprintf("INTIM=%02x INSTAT=%02x intv=%s", tmr.intim, tmr.instat, tmr.interval)
}

// reset the timer to its power-on state. the timer starts counting down
// immediately with the longest interval
func (tmr *timer) reset() {
	tmr.intim = 0
	tmr.instat = 0
	tmr.program(Interval1024, 0, false)
}

// program the timer with a new value and interval. the first decrease
// happens on the cycle after the timer is programmed and then once every
// interval after that
func (tmr *timer) program(in Interval, value uint8, log bool) {
	tmr.divider = in
	tmr.interval = in
	tmr.intim = value
	tmr.instat &^= timint
	tmr.generation++

	if log {
		logger.Logf(logger.Allow, "riot", "%s set to %d", in, value)
	}

	tmr.schedule(tmr.sched.Cycles())
}

func (tmr *timer) schedule(target uint64) {
	gen := tmr.generation
	tmr.sched.AddCycleListener(target, func() error {
		if gen != tmr.generation {
			return nil
		}
		tmr.tick()
		return nil
	})
}

// tick is called by the scheduler once per interval
func (tmr *timer) tick() {
	tmr.intim--
	if tmr.intim == 0xff {
		tmr.instat |= timint
		tmr.interval = Interval1
	}

	// the listener for this tick fired on the cycle after its target. the
	// next tick must happen one full interval after this one
	tmr.schedule(tmr.sched.Cycles() + uint64(tmr.interval) - 1)
}

// readINTIM has the side effects of a CPU read of the INTIM register
func (tmr *timer) readINTIM() uint8 {
	tmr.instat &^= timint
	tmr.interval = tmr.divider
	return tmr.intim
}
