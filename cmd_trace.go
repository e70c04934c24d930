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

	"github.com/kballard/go-shellquote"
	"github.com/tbvdm/optscan/errio"
	"github.com/tbvdm/optscan/getopt"
)

var cmdTraceEntry = cmdEntry{
	name:  "trace",
	alias: "t",
	usage: "[-l longopts] [-n name] [-o optstring] [--] parameter ...",
	exec:  cmdTrace,
}

func cmdTrace(args []string) cmdStatus {
	spec, params, err := parseScanSpec(args, "", nil, func(rune, getopt.Arg) {})
	if errors.Is(err, errNoOptstring) {
		return cmdUsage
	}
	if err != nil {
		log.Fatal(err)
	}

	return traceParams(os.Stdout, os.Stderr, spec, params)
}

// traceParams writes a line for every scanner call on params, showing what
// the call returned and the scanner state and argument vector after it.
func traceParams(stdout, stderr io.Writer, spec *scanSpec, params []string) cmdStatus {
	argv := append([]string{spec.name}, params...)
	sc := getopt.Scanner{Stderr: stderr}

	ew := errio.NewWriter(stdout)
	ew.Printf("start optind=%d argv=%s", 1, shellquote.Join(argv...))
	for {
		longindex := -1
		sc.Opterr = true
		c := sc.GetoptLong(argv, spec.optstring, spec.longopts, &longindex)
		ew.Printf("%s optind=%d optopt=%s optarg=%s argv=%s",
			traceResult(spec, c, longindex),
			sc.Optind,
			traceOptopt(sc.Optopt),
			traceOptarg(sc.Optarg),
			shellquote.Join(argv...))
		if c == getopt.EOF {
			break
		}
	}

	if err := sc.Err(); err != nil {
		log.Print(err)
		return cmdError
	}

	if err := ew.Err(); err != nil {
		log.Print(err)
		return cmdError
	}

	return cmdOK
}

func traceResult(spec *scanSpec, c, longindex int) string {
	switch {
	case c == getopt.EOF:
		return "eof"
	case longindex >= 0 && c == 0:
		return "--" + spec.longopts[longindex].Name
	case c == '?' || c == ':':
		return string(rune(c))
	default:
		return "-" + string(rune(c))
	}
}

func traceOptopt(r rune) string {
	if r == 0 {
		return "none"
	}
	return fmt.Sprintf("%q", r)
}

func traceOptarg(arg getopt.Arg) string {
	if !arg.Set() {
		return "none"
	}
	return fmt.Sprintf("%q", arg.String())
}
