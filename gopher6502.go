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
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/fatih/color"
	"github.com/jetsetilly/gopher6502/cartridgeloader"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/statsview"
	"golang.org/x/term"
)

func main() {
	// ctrl-c stops the emulation at the end of the current instruction
	var interrupted atomic.Bool
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interrupted.Store(true)
		signal.Reset(os.Interrupt)
	}()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "STEP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	// colour is only used if the output is a terminal
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	switch md.Mode() {
	case "RUN":
		err = run(md, &interrupted)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = step(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// the flags common to every mode that creates a machine
type machineFlags struct {
	start   *modalflag.Address
	load    *modalflag.Address
	vcs     *bool
	mapping *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		start:   md.AddAddress("start", 0, "start address (default: the reset vector)"),
		load:    md.AddAddress("load", 0, "load address (default: 0x0000 or 0x1000 for the VCS layout)"),
		vcs:     md.AddBool("vcs", false, "use the VCS memory layout"),
		mapping: md.AddString("mapping", cartridgeloader.MappingAuto, "force use of cartridge mapping"),
	}
}

func (mf machineFlags) loadAddress() uint16 {
	if !mf.load.Specified && *mf.vcs {
		return memorymap.OriginCart
	}
	return mf.load.Value
}

// create a machine with the file attached and reset
func (mf machineFlags) create(filename string) (*hardware.Machine, error) {
	cfg := hardware.Config{
		Layout:       hardware.Flat,
		StartAddress: hardware.UseResetVector,
	}
	if *mf.vcs {
		cfg.Layout = hardware.VCS
	}
	if mf.start.Specified {
		cfg.StartAddress = int(mf.start.Value)
	}

	m, err := hardware.NewMachine(cfg)
	if err != nil {
		return nil, err
	}

	err = m.Attach(cartridgeloader.NewLoader(filename, *mf.mapping), mf.loadAddress())
	if err != nil {
		return nil, err
	}

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func filenameArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("program file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, interrupted *atomic.Bool) error {
	md.NewMode()

	mf := addMachineFlags(md)
	cycles := md.AddUint64("cycles", 0, "maximum number of cycles to run for (0 is unlimited)")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the machine state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	echo := md.AddBool("log", false, "echo log to stderr")
	dump := md.AddAddress("dump", 0, "hex dump of 256 bytes of memory from address after the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := filenameArg(md)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(md.Output, "")
			defer stop()
		} else {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		}
	}

	m, err := mf.create(filename)
	if err != nil {
		return err
	}

	tr := newTracer(md.Output, m)

	trapped := false
	err = m.Run(*cycles, func(r execution.Result) (bool, error) {
		if *trace {
			tr.trace(r)
		}

		// an instruction that leaves the program counter unchanged is a trap
		// that the program will never leave
		if r.Address == m.CPU.PC() {
			trapped = true
			return false, nil
		}

		return !interrupted.Load(), nil
	})
	if err != nil {
		if !*echo {
			logger.Tail(os.Stderr, 5)
		}
		return err
	}

	switch {
	case trapped:
		fmt.Fprintf(md.Output, "* trapped at %#04x\n", m.CPU.PC())
	case interrupted.Load():
		fmt.Fprintf(md.Output, "* interrupted at %#04x\n", m.CPU.PC())
	}
	tr.summary()

	if dump.Specified {
		fmt.Fprint(md.Output, memory.Dump(m.Mem, dump.Value, 256))
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()

		s := m.State()
		memviz.Map(f, &s)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	from := md.AddAddress("from", 0, "disassemble from address (default: the start address)")
	count := md.AddInt("count", 32, "number of instructions to disassemble")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := filenameArg(md)
	if err != nil {
		return err
	}

	m, err := mf.create(filename)
	if err != nil {
		return err
	}

	address := m.CPU.PC()
	if from.Specified {
		address = from.Value
	}

	entries, err := disassembly.Linear(m.Mem, address, *count)

	// print what disassembly output we do have even if there was an error
	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	}
	if werr := disassembly.Write(md.Output, entries, attr); werr != nil {
		return werr
	}

	return err
}
