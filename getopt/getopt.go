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

// Package getopt implements a POSIX getopt scanner with the GNU and BSD
// extensions most programs expect: optional option values, long options
// with unambiguous abbreviations, and permutation of operands to the end of
// the argument vector.
//
// A Scanner is driven one call at a time. Each call examines the argument
// vector at Scanner.Optind, returns the option it found (or EOF) and leaves
// the vector and its own state ready for the next call. Operands met on the
// way are rotated to the end of the vector in place, so after the last call
// args[Optind:] holds the operands in their original order.
//
// A Scanner carries the state of one scan over one argument vector. It must
// not be used by more than one goroutine at a time, and it must not be
// reused for another vector without calling Reset first. The package-level
// functions share a single default scanner and have the same restriction.
package getopt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tbvdm/optscan/errio"
)

// EOF is returned when there are no more options to scan.
const EOF = -1

var (
	ErrInvalidOption      = errors.New("invalid option")
	ErrMissingArgument    = errors.New("option requires an argument")
	ErrUnrecognizedOption = errors.New("unrecognized option")
	ErrAmbiguousOption    = errors.New("ambiguous option")
	ErrUnexpectedArgument = errors.New("option does not take an argument")
)

// Arg is an option value. A value can be set and empty, as in --name=.
type Arg struct {
	arg string
	set bool
}

func (a Arg) Set() bool {
	return a.set
}

func (a Arg) String() string {
	return a.arg
}

func value(s string) Arg {
	return Arg{arg: s, set: true}
}

// Scanner holds the state of a scan over one argument vector. The zero
// value is ready for use.
type Scanner struct {
	// Optind is the index of the next element to examine. It starts at 1
	// and after the last option it indexes the first operand. Setting it
	// to 0 or less resets the scan.
	Optind int

	// Optarg is the value of the option returned by the last call.
	Optarg Arg

	// Optopt is the last option character examined, whether it was
	// recognised or not. It is 0 after a long option or EOF.
	Optopt rune

	// Opterr enables diagnostics for the next call only. Every call
	// clears it on entry, so callers that want diagnostics must set it
	// before each call.
	Opterr bool

	// Stderr receives diagnostics. If nil, os.Stderr is used. It is
	// picked up by the first diagnostic after a Reset.
	Stderr io.Writer

	cursor   int
	anchor   int
	anchored bool
	report   bool
	fault    error
	diag     *errio.Writer
}

// Reset prepares s for a new scan. A changed Stderr takes effect after
// Reset.
func (s *Scanner) Reset() {
	s.Optind = 1
	s.Optarg = Arg{}
	s.Optopt = 0
	s.cursor = 0
	s.anchored = false
	s.fault = nil
	s.diag = nil
}

// Err returns the first error that occurred while writing diagnostics since
// the last Reset.
func (s *Scanner) Err() error {
	if s.diag == nil {
		return nil
	}
	return s.diag.Err()
}

// Getopt returns the next option character in args, '?' for an unknown
// option or a missing value, ':' for a missing value if optstring starts
// with ':', or EOF if there are no more options.
//
// An option character followed by ':' in optstring takes a value, either
// the rest of its argument or the next argument. An option character
// followed by "::" takes an optional value, which must be in the same
// argument.
//
// If optstring starts with '+', the scan stops at the first operand instead
// of rotating operands to the end of args. A ':' may follow the '+'. A
// leading ':' silences every diagnostic, including the one for an unknown
// option, even if Opterr is set.
func (s *Scanner) Getopt(args []string, optstring string) int {
	optstring, inorder := strings.CutPrefix(optstring, "+")
	s.begin()
	if !s.permute(args, inorder) {
		return s.done()
	}
	return s.getopt(args, optstring)
}

func (s *Scanner) begin() {
	if s.Optind <= 0 {
		s.Reset()
	}
	s.Optarg = Arg{}
	s.Optopt = 0
	s.report = s.Opterr
	s.Opterr = false
	s.fault = nil
}

func (s *Scanner) done() int {
	s.cursor = 0
	s.anchored = false
	return EOF
}

// permute rotates operands at Optind to the end of args. It returns false
// if only operands are left, or if args[Optind] is an operand and inorder
// is set.
func (s *Scanner) permute(args []string, inorder bool) bool {
	if s.Optind >= len(args) {
		return false
	}

	if strings.HasPrefix(args[s.Optind], "-") {
		return true
	}

	if inorder || len(args)-s.Optind <= 1 {
		return false
	}

	// The anchor may have been taken as an option value
	if !s.anchored || s.anchor < s.Optind {
		s.anchor = s.Optind
		s.anchored = true
	}

	for {
		s.shift(args)
		if s.anchor == s.Optind {
			return false
		}
		if strings.HasPrefix(args[s.Optind], "-") {
			return true
		}
	}
}

// shift rotates args[Optind:] and keeps the anchor on its element.
func (s *Scanner) shift(args []string) {
	rotate(args[s.Optind:])
	if !s.anchored {
		return
	}
	switch {
	case s.anchor == s.Optind:
		s.anchor = len(args) - 1
	case s.anchor > s.Optind:
		s.anchor--
	}
}

// rotate moves args[0] to the end of args.
func rotate(args []string) {
	if len(args) <= 1 {
		return
	}
	first := args[0]
	copy(args, args[1:])
	args[len(args)-1] = first
}

func (s *Scanner) getopt(args []string, optstring string) int {
	switch args[s.Optind] {
	case "-":
		return s.done()
	case "--":
		s.Optind++
		// Put the operands that were rotated past "--" back after it
		if s.anchored {
			for s.anchor > s.Optind {
				s.shift(args)
			}
		}
		return s.done()
	}

	arg := args[s.Optind]
	if s.cursor == 0 || s.cursor >= len(arg) {
		s.cursor = 1
	}

	opt, optLen := utf8.DecodeRuneInString(arg[s.cursor:])
	s.Optopt = opt
	s.cursor += optLen

	quiet := strings.HasPrefix(optstring, ":")

	ind := -1
	if opt != ':' && (opt != utf8.RuneError || optLen > 1) {
		ind = strings.IndexRune(optstring, opt)
	}

	if ind == -1 {
		s.fault = fmt.Errorf("-%c: %w", opt, ErrInvalidOption)
		if !quiet {
			s.warnf("%s: invalid option -- '%c'", args[0], opt)
		}
		opt = '?'
	} else if decl := optstring[ind+optLen:]; strings.HasPrefix(decl, ":") {
		switch {
		case s.cursor < len(arg):
			s.Optarg = value(arg[s.cursor:])
		case strings.HasPrefix(decl, "::"):
			// Optional values must be attached
		default:
			s.Optind++
			if s.Optind < len(args) {
				s.Optarg = value(args[s.Optind])
			} else {
				s.fault = fmt.Errorf("-%c: %w", opt, ErrMissingArgument)
				if quiet {
					opt = ':'
				} else {
					s.warnf("%s: option requires an argument -- '%c'", args[0], opt)
					opt = '?'
				}
			}
		}
		s.cursor = 0
	}

	if s.cursor == 0 || s.cursor >= len(arg) {
		s.cursor = 0
		s.Optind++
	}

	return int(opt)
}

func (s *Scanner) warnf(format string, a ...any) {
	if !s.report {
		return
	}
	if s.diag == nil {
		w := s.Stderr
		if w == nil {
			w = os.Stderr
		}
		s.diag = errio.NewWriter(w)
	}
	s.diag.Printf(format, a...)
}
