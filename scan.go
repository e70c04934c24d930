// Copyright (c) 2024 Tim van der Molen <tim@kariliq.nl>
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

package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tbvdm/optscan/getopt"
)

const defaultName = "optscan"

var errNoOptstring = errors.New("missing optstring")

// scanSpec describes the options of the command line being scanned.
type scanSpec struct {
	name      string
	optstring string
	longopts  []getopt.LongOption
}

// addLongOpts adds the options in a comma-separated list such as
// "all,file:,level::" to spec.
func (spec *scanSpec) addLongOpts(list string) error {
	for _, item := range strings.Split(list, ",") {
		name := strings.TrimRight(item, ":")
		var hasArg getopt.HasArg
		switch len(item) - len(name) {
		case 0:
			hasArg = getopt.NoArgument
		case 1:
			hasArg = getopt.RequiredArgument
		case 2:
			hasArg = getopt.OptionalArgument
		default:
			return fmt.Errorf("%s: too many colons", item)
		}
		if name == "" {
			return errors.New("empty long option name")
		}
		if strings.Contains(name, "=") {
			return fmt.Errorf("%s: invalid long option name", name)
		}
		spec.longopts = append(spec.longopts, getopt.LongOption{
			Name:   name,
			HasArg: hasArg,
		})
	}
	return nil
}

// shortHasArg returns whether the short option opt takes a value.
func (spec *scanSpec) shortHasArg(opt rune) getopt.HasArg {
	optstring := strings.TrimPrefix(spec.optstring, "+")
	optstring = strings.TrimPrefix(optstring, ":")
	i := strings.IndexRune(optstring, opt)
	if i == -1 {
		return getopt.NoArgument
	}
	decl := optstring[i+utf8.RuneLen(opt):]
	switch {
	case strings.HasPrefix(decl, "::"):
		return getopt.OptionalArgument
	case strings.HasPrefix(decl, ":"):
		return getopt.RequiredArgument
	default:
		return getopt.NoArgument
	}
}

// parseScanSpec parses the options shared by the parse and trace commands.
// The extra options in opts and longopts are handled by the extra function.
// It returns the parameters to scan.
func parseScanSpec(args []string, opts string, longopts []getopt.LongOption, extra func(rune, getopt.Arg)) (*scanSpec, []string, error) {
	longopts = append([]getopt.LongOption{
		{Name: "longoptions", HasArg: getopt.RequiredArgument, Val: 'l'},
		{Name: "name", HasArg: getopt.RequiredArgument, Val: 'n'},
		{Name: "options", HasArg: getopt.RequiredArgument, Val: 'o'},
	}, longopts...)

	spec := scanSpec{name: defaultName}
	oflag := false
	// Stop at the first operand, which may be the optstring
	getopt.ParseLongArgs("+l:n:o:"+opts, longopts, args)
	for getopt.Next() {
		switch opt := getopt.Option(); opt {
		case 'l':
			if err := spec.addLongOpts(getopt.OptionArg().String()); err != nil {
				return nil, nil, err
			}
		case 'n':
			spec.name = getopt.OptionArg().String()
		case 'o':
			spec.optstring = getopt.OptionArg().String()
			oflag = true
		default:
			extra(opt, getopt.OptionArg())
		}
	}

	if err := getopt.Err(); err != nil {
		return nil, nil, err
	}

	args = getopt.Args()
	if !oflag {
		// Traditional form: the optstring is the first operand
		if len(args) == 0 {
			return nil, nil, errNoOptstring
		}
		spec.optstring, args = args[0], args[1:]
	}

	return &spec, args, nil
}
