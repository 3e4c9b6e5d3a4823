// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package confighelpers

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/intlog/util/colors"
)

// BeginCommonParse parses args into f and layers, lowest priority first:
// flag defaults, --conf.file, --conf.string, environment variables under
// --conf.env-prefix, and flags set on the command line. Positional
// arguments are left in f.Args().
func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	var k = koanf.New(".")
	// Initial application of command line parameters and defaults
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := ApplyOverrides(f, k); err != nil {
		return nil, err
	}
	return k, nil
}

func ApplyOverrides(f *flag.FlagSet, k *koanf.Koanf) error {
	// Apply config from file
	for _, configFile := range k.Strings("conf.file") {
		if len(configFile) > 0 {
			if err := k.Load(file.Provider(configFile), json.Parser()); err != nil {
				return fmt.Errorf("error loading local config file: %w", err)
			}
		}
	}

	if configString := k.String("conf.string"); len(configString) > 0 {
		if err := k.Load(rawbytes.Provider([]byte(configString)), json.Parser()); err != nil {
			return fmt.Errorf("error loading config string: %w", err)
		}
	}

	if err := loadEnvironmentVariables(k); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	// Command line parameters override everything else
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return fmt.Errorf("error loading command line config: %w", err)
	}
	return nil
}

func loadEnvironmentVariables(k *koanf.Koanf) error {
	envPrefix := k.String("conf.env-prefix")
	if len(envPrefix) == 0 {
		return nil
	}
	return k.Load(env.Provider(envPrefix+"_", ".", func(s string) string {
		// FOO__BAR -> foo-bar to handle dash in config names
		s = strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix+"_")), "__", "-")
		return strings.ReplaceAll(s, "_", ".")
	}), nil)
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused: true,

		// Default values
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(",")),
		Metadata:         nil,
		Result:           config,
		WeaklyTypedInput: true,
	}
	err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig})
	if err != nil {
		return err
	}
	return nil
}

// DumpConfig returns the active configuration as JSON, with the given keys
// overridden first.
func DumpConfig(k *koanf.Koanf, extraOverrideFields map[string]interface{}) ([]byte, error) {
	overrideFields := map[string]interface{}{"conf.dump": false}
	for key, value := range extraOverrideFields {
		overrideFields[key] = value
	}

	err := k.Load(confmap.Provider(overrideFields, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, "error removing extra parameters before dump")
	}

	c, err := k.Marshal(json.Parser())
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal config file to JSON")
	}
	return c, nil
}

func GetVersion() (string, string) {
	vcsRevision := "development"
	vcsTime := "development"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsRevision, vcsTime
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		vcsRevision = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}
	return vcsRevision, vcsTime
}

func PrintErrorAndExit(err error, usage func(progname string)) {
	if errors.Is(err, flag.ErrHelp) {
		usage(os.Args[0])
		os.Exit(0)
	}
	colors.PrintRed(err.Error())
	os.Exit(1)
}
