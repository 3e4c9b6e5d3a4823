// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package confighelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	flag "github.com/spf13/pflag"
)

type testConfig struct {
	Width  string     `koanf:"width"`
	Base   string     `koanf:"base"`
	Skip   bool       `koanf:"skip"`
	Conf   confConfig `koanf:"conf"`
	Output string     `koanf:"output"`
}

type confConfig struct {
	Dump      bool     `koanf:"dump"`
	EnvPrefix string   `koanf:"env-prefix"`
	File      []string `koanf:"file"`
	String    string   `koanf:"string"`
}

func testFlags() *flag.FlagSet {
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	f.String("width", "u64", "")
	f.String("base", "both", "")
	f.Bool("skip", false, "")
	f.String("output", "plaintext", "")
	f.Bool("conf.dump", false, "")
	f.String("conf.env-prefix", "", "")
	f.StringSlice("conf.file", nil, "")
	f.String("conf.string", "", "")
	return f
}

func parse(t *testing.T, args ...string) (*testConfig, *flag.FlagSet) {
	t.Helper()
	f := testFlags()
	k, err := BeginCommonParse(f, args)
	require.NoError(t, err)
	var config testConfig
	require.NoError(t, EndCommonParse(k, &config))
	return &config, f
}

func TestDefaultsAndPositionals(t *testing.T) {
	config, f := parse(t, "--width", "u8", "100", "255")
	require.Equal(t, "u8", config.Width)
	require.Equal(t, "both", config.Base)
	require.Equal(t, []string{"100", "255"}, f.Args())
}

func TestLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":"u16","base":"2","output":"json"}`), 0o600))

	config, _ := parse(t, "--conf.file", path)
	require.Equal(t, "u16", config.Width)
	require.Equal(t, "2", config.Base)
	require.Equal(t, "json", config.Output)

	config, _ = parse(t, "--conf.file", path, "--conf.string", `{"base":"10"}`, "--width", "i32")
	require.Equal(t, "i32", config.Width)
	require.Equal(t, "10", config.Base)
	require.Equal(t, "json", config.Output)
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("INTLOGTEST_WIDTH", "u128")
	t.Setenv("INTLOGTEST_SKIP", "true")
	f := testFlags()
	k, err := BeginCommonParse(f, []string{"--conf.env-prefix", "INTLOGTEST"})
	require.NoError(t, err)
	require.Equal(t, "u128", k.String("width"))
	require.True(t, k.Bool("skip"))
}

func TestUnknownKeysRejected(t *testing.T) {
	f := testFlags()
	k, err := BeginCommonParse(f, []string{"--conf.string", `{"widht":"u8"}`})
	require.NoError(t, err)
	var config testConfig
	require.Error(t, EndCommonParse(k, &config))
}

func TestBadConfigFile(t *testing.T) {
	f := testFlags()
	_, err := BeginCommonParse(f, []string{"--conf.file", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	f = testFlags()
	_, err = BeginCommonParse(f, []string{"--nope"})
	require.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	f := testFlags()
	k, err := BeginCommonParse(f, []string{"--conf.dump", "--width", "i8"})
	require.NoError(t, err)
	dump, err := DumpConfig(k, map[string]interface{}{"output": ""})
	require.NoError(t, err)
	require.Contains(t, string(dump), `"width":"i8"`)
	require.Contains(t, string(dump), `"dump":false`)
	require.Contains(t, string(dump), `"output":""`)
}

func TestGetVersion(t *testing.T) {
	revision, vcsTime := GetVersion()
	require.NotEmpty(t, revision)
	require.NotEmpty(t, vcsTime)
}
