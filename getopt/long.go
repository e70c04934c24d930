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

import (
	"fmt"
	"strings"
)

type HasArg int

const (
	NoArgument HasArg = iota
	RequiredArgument
	OptionalArgument
)

// LongOption describes a long option. If Flag is nil, GetoptLong returns Val
// when the option is found. Otherwise it stores Val in *Flag and returns 0.
//
// A LongOption with an empty Name ends a table.
type LongOption struct {
	Name   string
	HasArg HasArg
	Flag   *int
	Val    int
}

// GetoptLong is like Getopt, but also recognises long options of the form
// --name, --name=value and --name value. A name may be abbreviated as long
// as the abbreviation is unambiguous or matches a name exactly. Arguments
// that do not start with "--" are scanned as by Getopt, and a leading '+'
// in optstring has the same meaning.
//
// If longindex is not nil, the index in longopts of a recognised long
// option is stored in *longindex.
//
// GetoptLong returns '?' for an unknown or ambiguous long option or for a
// value given to an option that takes none, and ':' if a required value is
// missing.
func (s *Scanner) GetoptLong(args []string, optstring string, longopts []LongOption, longindex *int) int {
	optstring, inorder := strings.CutPrefix(optstring, "+")
	s.begin()
	if !s.permute(args, inorder) {
		return s.done()
	}

	arg := args[s.Optind]
	if len(arg) < 3 || !strings.HasPrefix(arg, "--") {
		return s.getopt(args, optstring)
	}

	name, val, hasVal := strings.Cut(arg[2:], "=")
	match, n := lookup(longopts, name)

	ret := int('?')
	switch n {
	case 0:
		s.fault = fmt.Errorf("%s: %w", arg, ErrUnrecognizedOption)
		s.warnf("%s: unrecognized option -- '%s'", args[0], arg)
	case 1:
		ret = s.resolve(args, longopts[match], val, hasVal)
		if longindex != nil {
			*longindex = match
		}
	default:
		s.fault = fmt.Errorf("%s: %w", arg, ErrAmbiguousOption)
		s.warnf("%s: option '%s' is ambiguous", args[0], arg)
	}

	s.Optind++
	return ret
}

// lookup returns the index of the option matching name and the number of
// matches. An exact match ends the search. Otherwise every option that
// starts with name counts, and the index is that of the last one.
func lookup(longopts []LongOption, name string) (int, int) {
	match, n := -1, 0
	for i, o := range longopts {
		if o.Name == "" {
			break
		}
		if o.Name == name {
			return i, 1
		}
		if strings.HasPrefix(o.Name, name) {
			match = i
			n++
		}
	}
	return match, n
}

func (s *Scanner) resolve(args []string, o LongOption, val string, hasVal bool) int {
	ret := o.Val
	if o.Flag != nil {
		*o.Flag = o.Val
		ret = 0
	}

	switch o.HasArg {
	case NoArgument:
		if hasVal {
			s.fault = fmt.Errorf("--%s: %w", o.Name, ErrUnexpectedArgument)
			ret = '?'
		}
	case RequiredArgument:
		if hasVal {
			s.Optarg = value(val)
			break
		}
		// Take the next argument
		s.Optind++
		if s.Optind < len(args) {
			s.Optarg = value(args[s.Optind])
		} else {
			s.fault = fmt.Errorf("--%s: %w", o.Name, ErrMissingArgument)
			ret = ':'
		}
	case OptionalArgument:
		if hasVal {
			s.Optarg = value(val)
		}
	}

	return ret
}
