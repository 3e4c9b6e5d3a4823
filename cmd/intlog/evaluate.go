// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	jsoniter "github.com/json-iterator/go"
	"lukechampine.com/uint128"

	"github.com/offchainlabs/intlog/util/intlog"
)

var ErrNotPositive = errors.New("logarithm undefined for non-positive value")

// Result is one evaluated value. A nil logarithm was not requested.
type Result struct {
	Value string `json:"value"`
	Width string `json:"width"`
	Log2  *int   `json:"log2,omitempty"`
	Log10 *int   `json:"log10,omitempty"`
}

type evaluator interface {
	evaluate(text string, base string, unchecked bool) (Result, error)
}

type operand[T any] struct {
	width  string
	parse  func(string) (T, error)
	engine intlog.Logarithm[T]
}

func (o operand[T]) evaluate(text string, base string, unchecked bool) (Result, error) {
	v, err := o.parse(text)
	if err != nil {
		return Result{}, fmt.Errorf("parsing %q as %s: %w", text, o.width, err)
	}
	result := Result{Value: fmt.Sprint(v), Width: o.width}
	if base != "10" {
		log2, ok := o.engine.Log2(v), true
		if !unchecked {
			log2, ok = o.engine.CheckedLog2(v)
		}
		if !ok {
			return Result{}, fmt.Errorf("%w: log2(%s)", ErrNotPositive, result.Value)
		}
		result.Log2 = &log2
	}
	if base != "2" {
		log10, ok := o.engine.Log10(v), true
		if !unchecked {
			log10, ok = o.engine.CheckedLog10(v)
		}
		if !ok {
			return Result{}, fmt.Errorf("%w: log10(%s)", ErrNotPositive, result.Value)
		}
		result.Log10 = &log10
	}
	return result, nil
}

func parseUnsigned[T uint8 | uint16 | uint32 | uint64 | uint](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		return T(v), err
	}
}

func parseSigned[T int8 | int16 | int32 | int64 | int](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		return T(v), err
	}
}

var evaluators = map[string]evaluator{
	"u8":   operand[uint8]{"u8", parseUnsigned[uint8](8), intlog.U8{}},
	"u16":  operand[uint16]{"u16", parseUnsigned[uint16](16), intlog.U16{}},
	"u32":  operand[uint32]{"u32", parseUnsigned[uint32](32), intlog.U32{}},
	"u64":  operand[uint64]{"u64", parseUnsigned[uint64](64), intlog.U64{}},
	"u128": operand[uint128.Uint128]{"u128", uint128.FromString, intlog.U128{}},
	"uint": operand[uint]{"uint", parseUnsigned[uint](strconv.IntSize), intlog.Uint{}},
	"i8":   operand[int8]{"i8", parseSigned[int8](8), intlog.I8{}},
	"i16":  operand[int16]{"i16", parseSigned[int16](16), intlog.I16{}},
	"i32":  operand[int32]{"i32", parseSigned[int32](32), intlog.I32{}},
	"i64":  operand[int64]{"i64", parseSigned[int64](64), intlog.I64{}},
	"i128": operand[intlog.Int128]{"i128", intlog.ParseInt128, intlog.I128{}},
	"int":  operand[int]{"int", parseSigned[int](strconv.IntSize), intlog.Int{}},
}

// Evaluate computes the logarithms of values and writes one line per value
// to w. Parse errors always fail; non-positive values fail unless
// skipInvalid is set.
func Evaluate(w io.Writer, config *IntlogConfig, values []string) error {
	eval, ok := evaluators[config.Width]
	if !ok {
		return fmt.Errorf("unknown width %q", config.Width)
	}
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	for _, text := range values {
		result, err := eval.evaluate(text, config.Base, config.Unchecked)
		if errors.Is(err, ErrNotPositive) && config.SkipInvalid {
			log.Warn("skipping value", "value", text, "width", config.Width, "err", err)
			continue
		}
		if err != nil {
			return err
		}
		log.Debug("evaluated", "value", result.Value, "width", result.Width)
		if config.Output == "json" {
			err = encoder.Encode(result)
		} else {
			err = writePlaintext(w, result)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writePlaintext(w io.Writer, result Result) error {
	line := result.Value
	if result.Log2 != nil {
		line += fmt.Sprintf(" log2=%d", *result.Log2)
	}
	if result.Log10 != nil {
		line += fmt.Sprintf(" log10=%d", *result.Log10)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
