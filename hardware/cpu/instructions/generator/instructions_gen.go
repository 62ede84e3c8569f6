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

//go:generate go run instructions_gen.go

// instructions_gen converts the instructions.csv file into the definitions
// table in the parent instructions package.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const licence = `// This file is part of Gopher6502.
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

`

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// the definitions table is indexed by opcode\n" +
	"var definitions = [256]Definition{\n"

const trailingBoilerPlate = "}\n"

// the number of bytes an instruction occupies is implied by the addressing
// mode. the CSV file does not need to specify it
func instructionSize(mode instructions.AddressingMode) int {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 1
	case instructions.Immediate, instructions.Relative,
		instructions.ZeroPage, instructions.ZeroPageX, instructions.ZeroPageY,
		instructions.IndexedIndirect, instructions.IndirectIndexed:
		return 2
	case instructions.Absolute, instructions.AbsoluteX, instructions.AbsoluteY,
		instructions.Indirect:
		return 3
	}
	panic(fmt.Sprintf("unhandled addressing mode (%v)", mode))
}

func parseMode(s string) (instructions.AddressingMode, error) {
	switch s {
	case "ABSOLUTE":
		return instructions.Absolute, nil
	case "ABSOLUTE_X":
		return instructions.AbsoluteX, nil
	case "ABSOLUTE_Y":
		return instructions.AbsoluteY, nil
	case "ACCUMULATOR":
		return instructions.Accumulator, nil
	case "IMMEDIATE":
		return instructions.Immediate, nil
	case "IMPLIED":
		return instructions.Implied, nil
	case "INDEXED_INDIRECT":
		return instructions.IndexedIndirect, nil
	case "INDIRECT":
		return instructions.Indirect, nil
	case "INDIRECT_INDEXED":
		return instructions.IndirectIndexed, nil
	case "RELATIVE":
		return instructions.Relative, nil
	case "ZERO_PAGE":
		return instructions.ZeroPage, nil
	case "ZERO_PAGE_X":
		return instructions.ZeroPageX, nil
	case "ZERO_PAGE_Y":
		return instructions.ZeroPageY, nil
	}
	return 0, fmt.Errorf("unknown addressing mode (%s)", s)
}

func parseEffect(s string) (instructions.Category, error) {
	switch s {
	case "READ":
		return instructions.Read, nil
	case "WRITE":
		return instructions.Write, nil
	case "RMW":
		return instructions.Modify, nil
	case "FLOW":
		return instructions.Flow, nil
	case "SUB-ROUTINE":
		return instructions.Subroutine, nil
	case "INTERRUPT":
		return instructions.Interrupt, nil
	}
	return 0, fmt.Errorf("unknown instruction effect (%s)", s)
}

func parseCSV() (map[uint8]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// the effect field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		opcode, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(opcode)

		if _, ok := deftable[defn.OpCode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		defn.Mnemonic = rec[1]

		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count (%s) [line %d]", rec[2], line)
		}

		defn.AddressingMode, err = parseMode(rec[3])
		if err != nil {
			return nil, fmt.Errorf("%w [line %d]", err, line)
		}
		defn.Bytes = instructionSize(defn.AddressingMode)

		defn.PageSensitive, err = strconv.ParseBool(rec[4])
		if err != nil {
			return nil, fmt.Errorf("invalid page sensitivity (%s) [line %d]", rec[4], line)
		}

		defn.Effect = instructions.Read
		if len(rec) == 6 {
			defn.Effect, err = parseEffect(rec[5])
			if err != nil {
				return nil, fmt.Errorf("%w [line %d]", err, line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	return deftable, nil
}

func generate(deftable map[uint8]instructions.Definition) ([]byte, error) {
	var s strings.Builder

	s.WriteString(licence)
	s.WriteString(leadingBoilerPlate)

	for i := 0; i < 256; i++ {
		defn, ok := deftable[uint8(i)]
		if !ok {
			s.WriteString(fmt.Sprintf("{OpCode: 0x%02x},\n", i))
			continue
		}
		s.WriteString(fmt.Sprintf("{OpCode: 0x%02x, Mnemonic: %q, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %v, Effect: %s},\n",
			defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect))
	}

	s.WriteString(trailingBoilerPlate)

	return format.Source([]byte(s.String()))
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output, err := generate(deftable)
	if err != nil {
		fmt.Printf("error formatting generated code: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0644)
	if err != nil {
		fmt.Printf("error writing generated code: %s\n", err)
		os.Exit(10)
	}
}
