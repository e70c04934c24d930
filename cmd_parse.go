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
	"io"
	"log"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/tbvdm/optscan/errio"
	"github.com/tbvdm/optscan/getopt"
)

var cmdParseEntry = cmdEntry{
	name:  "parse",
	alias: "p",
	usage: "[-Qqu] [-l longopts] [-n name] [-o optstring] [--] parameter ...",
	exec:  cmdParse,
}

func cmdParse(args []string) cmdStatus {
	quiet := false
	quietOutput := false
	unquoted := false
	spec, params, err := parseScanSpec(args, "Qqu", []getopt.LongOption{
		{Name: "quiet", Val: 'q'},
		{Name: "quiet-output", Val: 'Q'},
		{Name: "unquoted", Val: 'u'},
	}, func(opt rune, _ getopt.Arg) {
		switch opt {
		case 'Q':
			quietOutput = true
		case 'q':
			quiet = true
		case 'u':
			unquoted = true
		}
	})
	if errors.Is(err, errNoOptstring) {
		return cmdUsage
	}
	if err != nil {
		log.Fatal(err)
	}

	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if quietOutput {
		stdout = io.Discard
	}
	if quiet {
		stderr = io.Discard
	}

	return parseParams(stdout, stderr, spec, params, !unquoted)
}

// parseParams writes the normalized form of params: the options, each
// followed by its value if it takes one, then "--" and the operands.
func parseParams(stdout, stderr io.Writer, spec *scanSpec, params []string, quote bool) cmdStatus {
	words, ok := normalize(stderr, spec, params)

	ew := errio.NewWriter(stdout)
	if quote {
		fmt.Fprintln(ew, shellquote.Join(words...))
	} else {
		fmt.Fprintln(ew, strings.Join(words, " "))
	}

	if err := ew.Err(); err != nil {
		log.Print(err)
		return cmdError
	}

	if !ok {
		return cmdError
	}

	return cmdOK
}

func normalize(stderr io.Writer, spec *scanSpec, params []string) ([]string, bool) {
	argv := append([]string{spec.name}, params...)
	sc := getopt.Scanner{Stderr: stderr}
	diag := errio.NewWriter(stderr)

	var words []string
	ok := true
	for {
		longindex := -1
		sc.Opterr = true
		c := sc.GetoptLong(argv, spec.optstring, spec.longopts, &longindex)
		if c == getopt.EOF {
			break
		}

		if longindex >= 0 {
			o := spec.longopts[longindex]
			switch c {
			case 0:
				words = append(words, "--"+o.Name)
				if o.HasArg != getopt.NoArgument {
					words = append(words, sc.Optarg.String())
				}
			case ':':
				diag.Printf("%s: option '--%s' requires an argument", spec.name, o.Name)
				ok = false
			default:
				diag.Printf("%s: option '--%s' doesn't allow an argument", spec.name, o.Name)
				ok = false
			}
			continue
		}

		if c == '?' || c == ':' {
			// The scanner has reported the error
			ok = false
			continue
		}

		opt := rune(c)
		words = append(words, "-"+string(opt))
		if spec.shortHasArg(opt) != getopt.NoArgument {
			words = append(words, sc.Optarg.String())
		}
	}

	words = append(words, "--")
	words = append(words, argv[min(sc.Optind, len(argv)):]...)

	if err := sc.Err(); err != nil {
		log.Print(err)
	}
	if err := diag.Err(); err != nil {
		log.Print(err)
	}

	return words, ok
}
