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

package thomharte

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/operations"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// we have a custom unmarshaller for Tests only so that we can insert the
	// Name field to any error. the alias type avoids recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

// indirectPageBoundary returns true if the instruction at pc is an indirect
// JMP through a pointer that lies across a page boundary
func indirectPageBoundary(ram *memory.RAM, pc uint16) bool {
	opcode, _ := ram.Peek(pc)
	lo, _ := ram.Peek(pc + 1)
	return opcode == 0x6c && lo == 0xff
}

var testsPath = filepath.Join("6502", "v1")

// the break flag and the unused bit do not exist in the status register of
// the CPU and are not compared
const statusMask = 0xcf

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skipf("no test data in %s", testsPath)
		}
		t.Fatal(err)
	}

	for _, e := range d {
		switch e.Name() {
		case ".gitkeep":
			continue
		}
		if e.Type().IsRegular() {
			testThomHarte(t, filepath.Join(testsPath, e.Name()))
		}
	}
}

func testThomHarte(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	ram, err := memory.NewRAM(0)
	test.DemandSuccess(t, err)
	mc := cpu.NewCPU(memory.NewInterface(ram), operations.Table())

	for i, s := range tests {
		mc.Reset(uint16(s.Initial.PC))
		mc.SetReg(registers.Accum, uint8(s.Initial.A))
		mc.SetReg(registers.IndX, uint8(s.Initial.X))
		mc.SetReg(registers.IndY, uint8(s.Initial.Y))
		mc.SetReg(registers.Stack, uint8(s.Initial.S))
		mc.SetReg(registers.Status, uint8(s.Initial.P)&statusMask)
		for _, r := range s.Initial.RAM {
			test.DemandSuccess(t, ram.Poke(r.Address, r.Value))
		}

		// the NMOS chip does not carry into the high byte of an indirect
		// pointer. the CPU does so these cases cannot agree
		if indirectPageBoundary(ram, uint16(s.Initial.PC)) {
			continue
		}

		res, err := mc.Step()
		if err != nil {
			// undocumented opcodes are not emulated
			if curated.Is(err, cpu.UnimplementedOpcode) {
				t.Skipf("%s: %v", testFile, err)
			}
			t.Fatal(err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, mc.PC(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.Reg(registers.Accum), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.Reg(registers.IndX), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Reg(registers.IndY), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.Reg(registers.Stack), uint8(s.Final.S), testFile, i, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Reg(registers.Status)&statusMask, uint8(s.Final.P)&statusMask, testFile, i, "Status") || fail
		for _, r := range s.Final.RAM {
			v, _ := ram.Peek(r.Address)
			fail = !test.ExpectEquality(t, v, r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", res.String())
			t.Fatalf("%s: failed on line %d", testFile, i)
		}
	}
}
