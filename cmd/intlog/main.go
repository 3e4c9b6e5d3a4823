// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// intlog prints the base 2 and base 10 integer logarithms of its arguments.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/intlog/cmd/genericconf"
	"github.com/offchainlabs/intlog/cmd/util/confighelpers"
)

func printSampleUsage(name string) {
	fmt.Printf("Sample usage: %s --width i32 --base 10 -- 99 100 -5\n", name)
}

func main() {
	if err := mainImpl(os.Args[1:], os.Stdout); err != nil {
		confighelpers.PrintErrorAndExit(err, printSampleUsage)
	}
}

func mainImpl(args []string, stdout io.Writer) error {
	invocation, err := ParseIntlog(args)
	if err != nil {
		return err
	}
	config := invocation.Config
	if invocation.Dump != nil {
		_, err = fmt.Fprintln(stdout, string(invocation.Dump))
		return err
	}
	if config.Version {
		vcsRevision, vcsTime := confighelpers.GetVersion()
		_, err = fmt.Fprintf(stdout, "Version: %v, time: %v\n", vcsRevision, vcsTime)
		return err
	}

	err = genericconf.InitLog(config.LogType, config.LogLevel, &config.FileLogging, genericconf.DefaultPathResolver(""))
	if err != nil {
		return err
	}
	defer func() {
		if err := genericconf.CloseFileLogger(); err != nil {
			log.Error("failed to close log file", "err", err)
		}
	}()

	if len(invocation.Values) == 0 {
		log.Warn("no values given")
		return nil
	}
	log.Info("evaluating", "width", config.Width, "base", config.Base, "values", len(invocation.Values), "unchecked", config.Unchecked)
	return Evaluate(stdout, config, invocation.Values)
}
