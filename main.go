// Copyright (c) 2021, 2023 Tim van der Molen <tim@kariliq.nl>
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
	"log"
	"os"

	"github.com/tbvdm/go-cli"
	"github.com/tbvdm/go-openbsd"
)

type cmdStatus int

const (
	cmdOK cmdStatus = iota
	cmdError
	cmdUsage
)

type cmdEntry struct {
	name  string
	alias string
	usage string
	exec  func([]string) cmdStatus
}

var cmdEntries = []cmdEntry{
	cmdParseEntry,
	cmdTraceEntry,
}

func main() {
	cli.SetLog()

	// Only standard I/O is needed
	if err := openbsd.Pledge("stdio"); err != nil {
		log.Fatal(err)
	}

	if len(os.Args) < 2 {
		cli.ExitUsage("command", "[argument ...]")
	}

	cmd := command(os.Args[1])
	if cmd == nil {
		log.Fatalln("invalid command:", os.Args[1])
	}

	switch cmd.exec(os.Args[2:]) {
	case cmdError:
		os.Exit(1)
	case cmdUsage:
		cli.ExitUsage(cmd.name, cmd.usage)
	}
}

func command(name string) *cmdEntry {
	for _, cmd := range cmdEntries {
		if name == cmd.name || name == cmd.alias {
			return &cmd
		}
	}
	return nil
}
