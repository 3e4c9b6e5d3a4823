// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"fmt"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/intlog/cmd/genericconf"
	"github.com/offchainlabs/intlog/cmd/util/confighelpers"
)

type IntlogConfig struct {
	Width       string                        `koanf:"width"`
	Base        string                        `koanf:"base"`
	Unchecked   bool                          `koanf:"unchecked"`
	SkipInvalid bool                          `koanf:"skip-invalid"`
	Output      string                        `koanf:"output"`
	Version     bool                          `koanf:"version"`
	LogLevel    string                        `koanf:"log-level"`
	LogType     string                        `koanf:"log-type"`
	FileLogging genericconf.FileLoggingConfig `koanf:"file-logging"`
	Conf        genericconf.ConfConfig        `koanf:"conf"`
}

var IntlogConfigDefault = IntlogConfig{
	Width:       "u64",
	Base:        "both",
	Unchecked:   false,
	SkipInvalid: false,
	Output:      "plaintext",
	Version:     false,
	LogLevel:    "WARN",
	LogType:     "plaintext",
	FileLogging: genericconf.DefaultFileLoggingConfig,
	Conf:        genericconf.ConfConfigDefault,
}

func IntlogConfigAddOptions(f *flag.FlagSet) {
	f.String("width", IntlogConfigDefault.Width, "integer type of the values ("+strings.Join(widthNames(), ", ")+")")
	f.String("base", IntlogConfigDefault.Base, "logarithm base (2, 10 or both)")
	f.Bool("unchecked", IntlogConfigDefault.Unchecked, "evaluate zero and negative values instead of rejecting them")
	f.Bool("skip-invalid", IntlogConfigDefault.SkipInvalid, "warn about and skip values whose logarithm is undefined")
	f.String("output", IntlogConfigDefault.Output, "output format (plaintext or json)")
	f.Bool("version", IntlogConfigDefault.Version, "print version and exit")
	f.String("log-level", IntlogConfigDefault.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", IntlogConfigDefault.LogType, "log type (plaintext or json)")
	genericconf.FileLoggingConfigAddOptions("file-logging", f)
	genericconf.ConfConfigAddOptions("conf", f)
}

func (c *IntlogConfig) Validate() error {
	if _, ok := evaluators[c.Width]; !ok {
		return fmt.Errorf("invalid --width %q, expected one of %s", c.Width, strings.Join(widthNames(), ", "))
	}
	switch c.Base {
	case "2", "10", "both":
	default:
		return fmt.Errorf("invalid --base %q, expected 2, 10 or both", c.Base)
	}
	switch c.Output {
	case "plaintext", "json":
	default:
		return fmt.Errorf("invalid --output %q, expected plaintext or json", c.Output)
	}
	return nil
}

func widthNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invocation is a parsed command line. Dump holds the active configuration
// as JSON when --conf.dump was given.
type Invocation struct {
	Config *IntlogConfig
	Values []string
	Dump   []byte
}

func ParseIntlog(args []string) (*Invocation, error) {
	f := flag.NewFlagSet("intlog", flag.ContinueOnError)
	IntlogConfigAddOptions(f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}
	var config IntlogConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	invocation := &Invocation{Config: &config, Values: f.Args()}

	if config.Conf.Dump {
		invocation.Dump, err = confighelpers.DumpConfig(k, nil)
		if err != nil {
			return nil, err
		}
		return invocation, nil
	}
	if config.Version {
		return invocation, nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return invocation, nil
}
