// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/govita/govita/curated"
)

// Sentinel errors.
const (
	ParseFailed = "modalflag: %v"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. the selected mode, if any, is
	// returned by Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output field
	ParseHelp

	// the arguments could not be parsed. the error is returned as the second
	// return value of Parse()
	ParseError
)

// Modes is the state of command line parsing. The zero value is ready for
// NewArgs().
type Modes struct {
	// where help messages are written. help is not shown if Output is nil
	Output io.Writer

	flags *flag.FlagSet
	usage strings.Builder

	// arguments not yet consumed by a mode selection
	args []string

	// sub-modes for the next call to Parse(). the first is the default
	subModes []string

	// modes selected by previous calls to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the next layer of
// arguments.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.usage.Reset()
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.usage)
}

// AdditionalHelp is text shown after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds to the list of sub-modes for the next call to Parse().
// The first sub-mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	if md.flags == nil {
		md.NewMode()
	}

	err := md.flags.Parse(md.args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, curated.Errorf(ParseFailed, err)
	}

	md.args = md.flags.Args()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if len(md.args) > 0 {
		arg := strings.ToUpper(md.args[0])
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.args = md.args[1:]
				break
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// help writes the usage message produced by the flag package, amended with
// the mode path, the sub-modes and any additional help
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	header, defaults, _ := strings.Cut(md.usage.String(), "\n")
	banner := md.Path()

	if defaults == "" && len(md.subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(md.Output, "%s for %s mode\n", header, banner)
	} else {
		fmt.Fprintln(md.Output, header)
	}
	io.WriteString(md.Output, defaults)

	if len(md.subModes) > 0 {
		if defaults != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments that are not flags or a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	if i < 0 || i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
