package main

//go:generate go build -o=../../bin/random

import (
	"flag"
	"fmt"
	"os"
)

var cmds = []cmd{
	workoutCmd,
	unknownCodeCmd,
}

type cmd struct {
	name      string
	shortHelp string
	do        func()
	flags     *flag.FlagSet
}

const Usage = `random is a tool to generate random workout packages for ftracker.

Usage: random <command> [flags]

Example:
	ftracker $(random workout -type SWM -n 3)

The commands are:
	help	show this help message
`

func help() {
	fmt.Print(Usage)

	for _, cmd := range cmds {
		fmt.Printf("\t%s\t%s\n", cmd.name, cmd.shortHelp)
	}

	os.Exit(2)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "random: "+format+"\n", args...)
	os.Exit(1)
}

func lookup(name string) (cmd, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return cmd{}, false
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" {
		help()
	}

	c, ok := lookup(os.Args[1])
	if !ok {
		help()
	}

	if c.flags != nil {
		if err := c.flags.Parse(os.Args[2:]); err != nil {
			fatalf("cannot parse arguments of %s: %s", c.name, err)
		}
	}

	c.do()
}
