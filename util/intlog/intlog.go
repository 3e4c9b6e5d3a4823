// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package intlog computes floor logarithms in base 2 and base 10 of fixed-width
// integers.
//
// Every width has four operations. Log2 and Log10 are unchecked: they expect a
// strictly positive argument. CheckedLog2 and CheckedLog10 report false instead
// when the argument is zero or negative.
//
// The unchecked operations never panic. A zero argument yields -1 for both
// bases at every width. A negative signed argument yields the logarithm of its
// two's-complement bit pattern read as the unsigned type of the same width, so
// Log2I8(-1) is 7 and Log10I8(-1) is 2.
package intlog

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

//go:generate go run ../../cmd/thresholds --output tables.go

// Logarithm is implemented once per integer width and signedness.
type Logarithm[T any] interface {
	// Log2 returns floor(log2(v)) for v > 0.
	Log2(v T) int
	// Log10 returns floor(log10(v)) for v > 0.
	Log10(v T) int
	// CheckedLog2 returns floor(log2(v)), or false when v <= 0.
	CheckedLog2(v T) (int, bool)
	// CheckedLog10 returns floor(log10(v)), or false when v <= 0.
	CheckedLog10(v T) (int, bool)
}

// Log2 returns floor(log2(v)) for any builtin integer type.
// See the package documentation for non-positive arguments.
func Log2[T constraints.Integer](v T) int {
	switch unsafe.Sizeof(v) {
	case 1:
		return Log2U8(uint8(v))
	case 2:
		return Log2U16(uint16(v))
	case 4:
		return Log2U32(uint32(v))
	default:
		return Log2U64(uint64(v))
	}
}

// Log10 returns floor(log10(v)) for any builtin integer type.
// See the package documentation for non-positive arguments.
func Log10[T constraints.Integer](v T) int {
	switch unsafe.Sizeof(v) {
	case 1:
		return Log10U8(uint8(v))
	case 2:
		return Log10U16(uint16(v))
	case 4:
		return Log10U32(uint32(v))
	default:
		return Log10U64(uint64(v))
	}
}

// CheckedLog2 is Log2 guarded against non-positive arguments.
func CheckedLog2[T constraints.Integer](v T) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2(v), true
}

// CheckedLog10 is Log10 guarded against non-positive arguments.
func CheckedLog10[T constraints.Integer](v T) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10(v), true
}
