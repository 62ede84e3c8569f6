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

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/pkg/term"
)

func step(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	md.AdditionalHelp("keys: any key steps one instruction. r resets the machine. m prints the memory map. q quits")

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

	// keypresses are read one at a time without waiting for the return key
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return curated.Errorf("step: %v", err)
	}
	defer tty.Close()
	defer tty.Restore()

	tr := newTracer(md.Output, m)

	key := make([]byte, 1)
	for {
		tr.next()

		_, err := tty.Read(key)
		if err != nil {
			return curated.Errorf("step: %v", err)
		}

		switch key[0] {
		case 'q', 'Q':
			tr.summary()
			return nil

		case 'r', 'R':
			if err := m.Reset(); err != nil {
				return err
			}
			continue

		case 'm', 'M':
			fmt.Fprint(md.Output, m.Summary())
			continue
		}

		r, err := m.Step()
		if err != nil {
			return err
		}
		tr.trace(r)
	}
}
