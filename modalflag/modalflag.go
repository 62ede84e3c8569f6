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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

const modeSeparator = "/"

// Modes handles command line arguments that are arranged as a series of modes,
// each with its own set of flags. The Output field should be specified before
// calling Parse() or help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs() and the index of the first argument
	// that has not yet been consumed by a call to Parse()
	args []string
	idx  int

	// the modes that are valid for the next call to Parse(). the first entry
	// is the default mode
	modes []string

	// the modes selected by each call to Parse(). never reset
	path []string

	// extra text printed after the flag and mode information
	help string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts parsing of a new list of arguments. The list usually comes
// from os.Args.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode indicates that further arguments belong to a new mode. Flags and
// modes added before the call are forgotten.
func (md *Modes) NewMode() {
	md.modes = md.modes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.help = ""
}

// AdditionalHelp adds text to the help message of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the caller should carry on processing the command
	// line. If modes were added before the call to Parse() then the selected
	// mode is returned by Mode().
	ParseContinue ParseResult = iota

	// ParseHelp means that help was requested and has been printed.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned as the second return value.
	ParseError
)

// Parse the arguments for the current mode. Usage is as follows:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help has already been printed
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If modes were added then the first remaining argument selects the mode. An
// argument that names none of the modes selects the default mode and is left
// in place.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.modes, md.help)
			return ParseHelp, nil
		}

		// unrecognised flags are left for the default mode
		if len(md.modes) == 0 {
			return ParseError, curated.Errorf("modalflag: %v", err)
		}
		md.path = append(md.path, md.modes[0])
		return ParseContinue, nil
	}

	if len(md.modes) > 0 {
		md.path = append(md.path, md.selectMode())
	}

	return ParseContinue, nil
}

// selectMode returns the mode named by the first argument after the flags. the
// argument is consumed if it names a mode
func (md *Modes) selectMode() string {
	arg := strings.ToUpper(md.flags.Arg(0))
	if slices.Contains(md.modes, arg) {
		md.idx += len(md.args[md.idx:]) - len(md.flags.Args()) + 1
		return arg
	}
	return md.modes[0]
}

// RemainingArgs returns the arguments that are not flags or a mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or a mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the list of modes for the next call to Parse(). The
// first mode added is the default. Mode names are case insensitive.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// Visit calls fn for each flag that was set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
