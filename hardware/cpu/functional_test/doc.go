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

// Package functional_test runs short hand-assembled 6502 programs to
// completion on a CPU with the full operations table.
//
// Each program follows the convention of the well known 6502 functional test
// suites: a failing check branches to itself and the program ends by jumping
// to itself at a known success address. A loop on the program counter
// therefore ends the run, and the address of the loop says whether the
// program succeeded.
package functional_test
