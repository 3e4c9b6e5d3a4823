// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// thresholds generates the base 10 threshold tables and log10(2)
// approximation constants of util/intlog, after checking that the constants
// give exact results for every bit length of every width.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/intlog/cmd/genericconf"
	"github.com/offchainlabs/intlog/cmd/util/confighelpers"
)

type ThresholdsConfig struct {
	Output   string `koanf:"output"`
	Package  string `koanf:"package"`
	LogLevel string `koanf:"log-level"`
	LogType  string `koanf:"log-type"`
}

var ThresholdsConfigDefault = ThresholdsConfig{
	Output:   "",
	Package:  "intlog",
	LogLevel: "INFO",
	LogType:  "plaintext",
}

func ThresholdsConfigAddOptions(f *flag.FlagSet) {
	f.String("output", ThresholdsConfigDefault.Output, "file to write the generated source to (stdout if empty)")
	f.String("package", ThresholdsConfigDefault.Package, "package name of the generated source")
	f.String("log-level", ThresholdsConfigDefault.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", ThresholdsConfigDefault.LogType, "log type (plaintext or json)")
}

// Width describes one unsigned integer width. ApproxMul / 2^ApproxShr must
// approximate log10(2) closely enough for the correction step to be exact.
type Width struct {
	Name      string
	GoType    string
	Bits      uint
	ApproxMul uint64
	ApproxShr uint
}

var Widths = []Width{
	{Name: "U8", GoType: "uint8", Bits: 8, ApproxMul: 19, ApproxShr: 6},
	{Name: "U16", GoType: "uint16", Bits: 16, ApproxMul: 18, ApproxShr: 6},
	{Name: "U32", GoType: "uint32", Bits: 32, ApproxMul: 19, ApproxShr: 6},
	{Name: "U64", GoType: "uint64", Bits: 64, ApproxMul: 19, ApproxShr: 6},
	{Name: "U128", GoType: "uint128.Uint128", Bits: 128, ApproxMul: 77, ApproxShr: 8},
}

func (w Width) max() *uint256.Int {
	max := new(uint256.Int).Lsh(uint256.NewInt(1), w.Bits)
	return max.SubUint64(max, 1)
}

// Thresholds returns 10^i-1 for every 10^i not above the width's maximum,
// followed by the maximum itself.
func (w Width) Thresholds() []*uint256.Int {
	max := w.max()
	ten := uint256.NewInt(10)
	var table []*uint256.Int
	for power := uint256.NewInt(1); !power.Gt(max); power = new(uint256.Int).Mul(power, ten) {
		table = append(table, new(uint256.Int).SubUint64(power, 1))
	}
	return append(table, max)
}

// floorLog10 counts the thresholds strictly below v.
func floorLog10(v *uint256.Int, table []*uint256.Int) int {
	n := -1
	for _, threshold := range table[:len(table)-1] {
		if v.Gt(threshold) {
			n++
		}
	}
	return n
}

// corrected replays the wrapping subtraction of the generated code.
func (w Width) corrected(v *uint256.Int, y int, table []*uint256.Int) int {
	diff := new(uint256.Int).Sub(table[y+1], v)
	diff.And(diff, w.max())
	diff.Rsh(diff, w.Bits-1)
	return y + int(diff.Uint64())
}

// Verify checks every bit length. floor(log10) is monotonic and the
// correction only compares against one threshold, so the two ends of each
// bit length cover all values in between.
func (w Width) Verify(table []*uint256.Int) error {
	one := uint256.NewInt(1)
	for b2 := uint(0); b2 < w.Bits; b2++ {
		y := int((w.ApproxMul * uint64(b2)) >> w.ApproxShr)
		if y+1 >= len(table) {
			return fmt.Errorf("%s: bit length %d indexes past the table", w.Name, b2)
		}
		low := new(uint256.Int).Lsh(one, b2)
		high := new(uint256.Int).Lsh(one, b2+1)
		high.SubUint64(high, 1)
		for _, v := range []*uint256.Int{low, high} {
			want := floorLog10(v, table)
			if want < y || want > y+1 {
				return fmt.Errorf("%s: bit length %d: approximation %d is off for %s (log10 %d)", w.Name, b2, y, v.Dec(), want)
			}
			if got := w.corrected(v, y, table); got != want {
				return fmt.Errorf("%s: bit length %d: correction gives %d for %s, expected %d", w.Name, b2, got, v.Dec(), want)
			}
		}
	}
	return nil
}

func (w Width) literal(v *uint256.Int) string {
	if w.Bits > 64 {
		return fmt.Sprintf("uint128.New(%#x, %#x)", v[0], v[1])
	}
	return v.Dec()
}

// Generate renders the source of the tables file.
func Generate(pkg string, widths []Width) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/thresholds. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"lukechampine.com/uint128\"\n")
	for _, w := range widths {
		table := w.Thresholds()
		if err := w.Verify(table); err != nil {
			return nil, err
		}
		log.Debug("verified width", "width", w.Name, "entries", len(table), "max", table[len(table)-1].Dec())
		fmt.Fprintf(&buf, "\nconst (\n")
		fmt.Fprintf(&buf, "\tmsb%s = %d\n", w.Name, w.Bits-1)
		fmt.Fprintf(&buf, "\tapproxMul%s = %d\n", w.Name, w.ApproxMul)
		fmt.Fprintf(&buf, "\tapproxShr%s = %d\n", w.Name, w.ApproxShr)
		fmt.Fprintf(&buf, ")\n\n")
		fmt.Fprintf(&buf, "var thresholds%s = [...]%s{\n", w.Name, w.GoType)
		for _, threshold := range table {
			fmt.Fprintf(&buf, "\t%s,\n", w.literal(threshold))
		}
		fmt.Fprintf(&buf, "}\n")
	}
	return format.Source(buf.Bytes())
}

func parseThresholdsConfig(args []string) (*ThresholdsConfig, error) {
	f := flag.NewFlagSet("thresholds", flag.ContinueOnError)
	ThresholdsConfigAddOptions(f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}
	var config ThresholdsConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	if len(f.Args()) != 0 {
		return nil, fmt.Errorf("unexpected arguments %v", f.Args())
	}
	return &config, nil
}

func mainImpl(args []string) error {
	config, err := parseThresholdsConfig(args)
	if err != nil {
		return err
	}
	if err := genericconf.InitLog(config.LogType, config.LogLevel, &genericconf.FileLoggingConfig{}, nil); err != nil {
		return err
	}
	source, err := Generate(config.Package, Widths)
	if err != nil {
		return err
	}
	if config.Output == "" {
		_, err = os.Stdout.Write(source)
		return err
	}
	if err := os.WriteFile(config.Output, source, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", config.Output, err)
	}
	log.Info("wrote threshold tables", "file", config.Output, "widths", len(Widths))
	return nil
}

func main() {
	if err := mainImpl(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
