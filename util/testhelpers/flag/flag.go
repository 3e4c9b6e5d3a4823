// Copyright 2024-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testflag

import (
	"flag"
	"log"
	"os"
)

var (
	fs           = flag.NewFlagSet("test", flag.ExitOnError)
	LogLevelFlag = fs.String("test_loglevel", "", "Log level for tests")
	SeedFlag     = fs.Int("seed", 0, "Salt for the pseudorandom input sweeps")
	RunsFlag     = fs.Int("runs", 0, "Number of pseudorandom inputs per width (0 uses the test default)")
)

// This is a workaround for the fact that we can only pass flags to the package in which they are defined.
// So to avoid doing that we pass the flags after adding a delimiter "--" to the command line.
// We then parse the arguments only after the delimiter to the flagset.
func init() {
	var args []string
	foundDelimiter := false
	for _, arg := range os.Args {
		if foundDelimiter {
			args = append(args, arg)
		}
		if arg == "--" {
			foundDelimiter = true
		}
	}
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
}

// Runs returns the -runs override, or def when it is not set.
func Runs(def int) int {
	if *RunsFlag > 0 {
		return *RunsFlag
	}
	return def
}
