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
	"container/heap"
)

// a cycle listener is a one-shot callback that fires on the first cycle
// dispatch where the cycle counter is greater than the target
type listener struct {
	target uint64

	// listeners with the same target fire in the order they were added
	seq uint64

	fn func() error
}

// listeners is a min-heap ordered by target and then by sequence. only the
// listeners that are due are ever touched when cycles are dispatched.
type listeners []listener

func (l listeners) Len() int {
	return len(l)
}

func (l listeners) Less(i, j int) bool {
	if l[i].target == l[j].target {
		return l[i].seq < l[j].seq
	}
	return l[i].target < l[j].target
}

func (l listeners) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

func (l *listeners) Push(x any) {
	*l = append(*l, x.(listener))
}

func (l *listeners) Pop() any {
	old := *l
	n := len(old)
	x := old[n-1]
	old[n-1] = listener{}
	*l = old[:n-1]
	return x
}

// AddCycleListener schedules fn to be called on the first cycle dispatch after
// the cycle counter has passed target. A listener fires exactly once.
//
// A listener added while listeners are being fired will not fire until the
// next cycle dispatch at the earliest.
func (mc *CPU) AddCycleListener(target uint64, fn func() error) {
	heap.Push(&mc.listeners, listener{target: target, seq: mc.seq, fn: fn})
	mc.seq++
}

// PendingListeners returns the target cycle of every listener that has not
// yet fired, in the order that they will fire.
func (mc *CPU) PendingListeners() []uint64 {
	c := make(listeners, len(mc.listeners))
	copy(c, mc.listeners)

	t := make([]uint64, 0, len(c))
	for c.Len() > 0 {
		t = append(t, heap.Pop(&c).(listener).target)
	}
	return t
}

// dispatch is called after every increment of the cycle counter. the due
// listeners are removed from the queue before any of them is called so that
// a listener can safely add new listeners. every due listener is called even
// if an earlier one fails; the first error is returned
func (mc *CPU) dispatch() error {
	if mc.dispatching {
		return nil
	}

	mc.due = mc.due[:0]
	for len(mc.listeners) > 0 && mc.listeners[0].target < mc.cycles {
		mc.due = append(mc.due, heap.Pop(&mc.listeners).(listener))
	}
	if len(mc.due) == 0 {
		return nil
	}

	mc.dispatching = true
	defer func() {
		mc.dispatching = false
	}()

	var err error
	for i := range mc.due {
		if e := mc.due[i].fn(); e != nil && err == nil {
			err = e
		}
		mc.due[i] = listener{}
	}

	return err
}
