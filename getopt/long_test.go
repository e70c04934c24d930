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
	"bytes"
	"testing"
)

func testLongOpts(flag *int) []LongOption {
	return []LongOption{
		{Name: "foo", HasArg: NoArgument, Val: 'f'},
		{Name: "foobar", HasArg: NoArgument, Val: 'b'},
		{Name: "name", HasArg: RequiredArgument, Val: 'n'},
		{Name: "opt", HasArg: OptionalArgument, Val: 'o'},
		{Name: "set", HasArg: NoArgument, Flag: flag, Val: 42},
	}
}

func TestLongOptions(t *testing.T) {
	cases := []struct {
		args      []string
		want      result
		longindex int
	}{
		{[]string{"prog", "--foo"}, result{'f', 2, nil}, 0},
		{[]string{"prog", "--foob"}, result{'b', 2, nil}, 1},
		{[]string{"prog", "--foobar"}, result{'b', 2, nil}, 1},
		{[]string{"prog", "--fo"}, result{'?', 2, nil}, -1},
		{[]string{"prog", "--nope"}, result{'?', 2, nil}, -1},
		{[]string{"prog", "--foo=x"}, result{'?', 2, nil}, 0},
		{[]string{"prog", "--name=value"}, result{'n', 2, str("value")}, 2},
		{[]string{"prog", "--na=value"}, result{'n', 2, str("value")}, 2},
		{[]string{"prog", "--name=a=b"}, result{'n', 2, str("a=b")}, 2},
		{[]string{"prog", "--name="}, result{'n', 2, str("")}, 2},
		{[]string{"prog", "--name", "value"}, result{'n', 3, str("value")}, 2},
		{[]string{"prog", "--name", "--foo"}, result{'n', 3, str("--foo")}, 2},
		{[]string{"prog", "--name"}, result{':', 3, nil}, 2},
		{[]string{"prog", "--opt"}, result{'o', 2, nil}, 3},
		{[]string{"prog", "--opt", "value"}, result{'o', 2, nil}, 3},
		{[]string{"prog", "--opt=value"}, result{'o', 2, str("value")}, 3},
		{[]string{"prog", "--opt="}, result{'o', 2, str("")}, 3},
	}
	for _, tc := range cases {
		var sc Scanner
		longindex := -1
		ret := sc.GetoptLong(tc.args, "", testLongOpts(nil), &longindex)
		testResult(t, &sc, 0, ret, tc.want)
		if longindex != tc.longindex {
			t.Errorf("%q: got longindex %d, want %d", tc.args, longindex, tc.longindex)
		}
		if sc.Optopt != 0 {
			t.Errorf("%q: got optopt %q, want 0", tc.args, sc.Optopt)
		}
	}
}

func TestLongOptionFlag(t *testing.T) {
	var sc Scanner
	flag := 0
	args := []string{"prog", "--set"}
	ret := sc.GetoptLong(args, "", testLongOpts(&flag), nil)
	testResult(t, &sc, 0, ret, result{0, 2, nil})
	if flag != 42 {
		t.Errorf("got flag %d, want 42", flag)
	}
}

func TestLongExactBeforeAbbreviation(t *testing.T) {
	longopts := []LongOption{
		{Name: "foobar", Val: 'b'},
		{Name: "foo", Val: 'f'},
	}
	var sc Scanner
	longindex := -1
	ret := sc.GetoptLong([]string{"prog", "--foo"}, "", longopts, &longindex)
	testResult(t, &sc, 0, ret, result{'f', 2, nil})
	if longindex != 1 {
		t.Errorf("got longindex %d, want 1", longindex)
	}
}

func TestLongTableSentinel(t *testing.T) {
	longopts := []LongOption{
		{Name: "foo", Val: 'f'},
		{},
		{Name: "fool", Val: 'l'},
	}
	var sc Scanner
	ret := sc.GetoptLong([]string{"prog", "--fool"}, "", longopts, nil)
	testResult(t, &sc, 0, ret, result{'?', 2, nil})
}

func TestLongDelegation(t *testing.T) {
	var sc Scanner
	args := []string{"prog", "-ab", "v", "-", "--foo"}
	for i, w := range []result{
		{'a', 1, nil},
		{'b', 3, str("v")},
		{EOF, 3, nil},
	} {
		ret := sc.GetoptLong(args, "ab:", testLongOpts(nil), nil)
		testResult(t, &sc, i, ret, w)
	}
}

func TestLongDoubleDash(t *testing.T) {
	var sc Scanner
	args := []string{"prog", "--", "--foo"}
	ret := sc.GetoptLong(args, "", testLongOpts(nil), nil)
	testResult(t, &sc, 0, ret, result{EOF, 2, nil})
}

func TestLongPermute(t *testing.T) {
	var sc Scanner
	args := []string{"prog", "x", "--name", "v", "y", "--foo"}
	for i, w := range []result{
		{'n', 3, str("v")},
		{'f', 4, nil},
		{EOF, 4, nil},
	} {
		ret := sc.GetoptLong(args, "", testLongOpts(nil), nil)
		testResult(t, &sc, i, ret, w)
	}
	testArgs(t, args, []string{"prog", "--name", "v", "--foo", "x", "y"})
}

func TestLongPermuteOperandAsValue(t *testing.T) {
	var sc Scanner
	args := []string{"prog", "x", "y", "z", "--name"}
	for i, w := range []result{
		{'n', 3, str("x")},
		{EOF, 3, nil},
	} {
		ret := sc.GetoptLong(args, "", testLongOpts(nil), nil)
		testResult(t, &sc, i, ret, w)
	}
	testArgs(t, args, []string{"prog", "--name", "x", "y", "z"})
}

func TestLongInorder(t *testing.T) {
	var sc Scanner
	args := []string{"prog", "--foo", "x", "--foo"}
	for i, w := range []result{
		{'f', 2, nil},
		{EOF, 2, nil},
	} {
		ret := sc.GetoptLong(args, "+", testLongOpts(nil), nil)
		testResult(t, &sc, i, ret, w)
	}
	testArgs(t, args, []string{"prog", "--foo", "x", "--foo"})
}

func TestLongDiagnostics(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"--nope", "prog: unrecognized option -- '--nope'\n"},
		{"--fo", "prog: option '--fo' is ambiguous\n"},
		{"--fo=x", "prog: option '--fo=x' is ambiguous\n"},
		{"--foo", ""},
		{"--foo=x", ""},
		{"--name", ""},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		sc := Scanner{Stderr: &buf, Opterr: true}
		sc.GetoptLong([]string{"prog", tc.arg}, "", testLongOpts(nil), nil)
		if buf.String() != tc.want {
			t.Errorf("%s: got diagnostic %q, want %q", tc.arg, buf.String(), tc.want)
		}
	}
}
