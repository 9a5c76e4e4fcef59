// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bivgeo evaluates and samples the Basu–Dhar bivariate geometric
// distribution.
//
// Usage:
//
//	bivgeo <subcommand> [flags] [args]
//
// The subcommands are:
//
//	pmf [flags] x y    - joint probability mass at (x, y)
//	cdf [flags] x y    - joint cumulative distribution at (x, y)
//	sf [flags] x y     - joint survival function at (x, y)
//	sample [flags]     - print a random sample as a table
//	estimate [flags]   - method of moments estimate from a fresh sample
//	stats [flags]      - correlation, cross moment and marginal moments
//	check [flags]      - cross-check both samplers against the closed forms
//
// Every subcommand takes -theta θ1,θ2,θ3. The cdf and sf subcommands
// take -phi φ11,φ10,φ01,φ00 to evaluate the cure-fraction mixture,
// and pmf takes -phi11.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
)

type subcommand struct {
	name, desc string
	run        func(w io.Writer) error
	flags      *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, run func(w io.Writer) error, flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, run, flags}
}

// invocation is the command line, echoed in sample headers.
var invocation []string

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args]\n\nSubcommands:\n", os.Args[0])
	var names []string
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bivgeo: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		os.Exit(2)
	}
	invocation = append([]string{"bivgeo"}, flag.Args()...)
	sub.flags.Parse(flag.Args()[1:])
	if err := sub.run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
