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

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// tracer prints executed instructions and the state of the CPU.
type tracer struct {
	output io.Writer
	m      *hardware.Machine

	address *color.Color
	instr   *color.Color
	regs    *color.Color
	err     *color.Color
}

func newTracer(output io.Writer, m *hardware.Machine) *tracer {
	return &tracer{
		output:  output,
		m:       m,
		address: color.New(color.FgYellow),
		instr:   color.New(color.FgHiWhite, color.Bold),
		regs:    color.New(color.FgCyan),
		err:     color.New(color.FgRed),
	}
}

// trace prints the result of an instruction that has just been executed. the
// registers are the registers after execution
func (tr *tracer) trace(r execution.Result) {
	e, err := disassembly.Disassemble(tr.m.Mem, r.Address)
	if err != nil {
		fmt.Fprintf(tr.output, "%s %s\n", tr.address.Sprintf("%04X", r.Address), tr.err.Sprint(err))
		return
	}

	fmt.Fprintf(tr.output, "%s  %-8s  %s  %s  %d\n",
		tr.address.Sprintf("%04X", e.Address),
		e.Bytecode,
		tr.instr.Sprintf("%-12s", e.Instruction()),
		tr.regs.Sprint(tr.m.CPU.Registers()),
		r.Cycles,
	)
}

// next prints the instruction at the program counter, which is the next
// instruction to be executed
func (tr *tracer) next() {
	e, err := disassembly.Disassemble(tr.m.Mem, tr.m.CPU.PC())
	if err != nil {
		fmt.Fprintf(tr.output, "next: %s\n", tr.err.Sprint(err))
		return
	}
	fmt.Fprintf(tr.output, "next: %s  %s\n", tr.address.Sprintf("%04X", e.Address), tr.instr.Sprint(e.Instruction()))
}

// summary prints the state of the machine
func (tr *tracer) summary() {
	fmt.Fprintf(tr.output, "PC=%s %s\n", tr.address.Sprintf("%04X", tr.m.CPU.PC()), tr.regs.Sprint(tr.m.CPU.Registers()))
	fmt.Fprintf(tr.output, "cycles: %d\n", tr.m.CPU.Cycles())
	if tr.m.RIOT != nil {
		fmt.Fprintf(tr.output, "riot: %s\n", tr.m.RIOT)
	}
}
