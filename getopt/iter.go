// Copyright (c) 2023 Tim van der Molen <tim@kariliq.nl>
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package getopt

import "os"

var (
	scanner   Scanner
	opts      string
	longOpts  []LongOption
	args      []string
	opt       rune
	longIndex int
	err       error
)

func Parse(opts string) {
	ParseArgs(opts, os.Args[1:])
}

// ParseArgs prepares the default scanner for a scan of args, which must not
// include the program name.
func ParseArgs(newOpts string, newArgs []string) {
	ParseLongArgs(newOpts, nil, newArgs)
}

// ParseLongArgs is like ParseArgs, but long options are recognised as well.
func ParseLongArgs(newOpts string, newLongOpts []LongOption, newArgs []string) {
	opts = newOpts
	longOpts = newLongOpts
	args = append([]string{progName()}, newArgs...)
	opt = 0
	longIndex = -1
	err = nil
	scanner.Reset()
}

func progName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return ""
}

// Next scans the next option. It returns false when there are no more
// options or an error occurred.
func Next() bool {
	if err != nil {
		return false
	}

	longIndex = -1
	var c int
	if longOpts == nil {
		c = scanner.Getopt(args, opts)
	} else {
		c = scanner.GetoptLong(args, opts, longOpts, &longIndex)
	}

	if c == EOF {
		return false
	}
	if scanner.fault != nil {
		err = scanner.fault
		return false
	}

	opt = rune(c)
	return true
}

func Option() rune {
	if err != nil {
		return 0
	}
	return opt
}

// LongIndex returns the index of the long option returned by Option, or -1
// if it was a short option.
func LongIndex() int {
	if err != nil {
		return -1
	}
	return longIndex
}

func OptionArg() Arg {
	if err != nil {
		return Arg{}
	}
	return scanner.Optarg
}

// Args returns the operands. It should be called after Next returned false.
func Args() []string {
	if scanner.Optind > len(args) {
		return nil
	}
	return args[scanner.Optind:]
}

func Err() error {
	return err
}
