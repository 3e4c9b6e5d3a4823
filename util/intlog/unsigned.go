// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// log10 turns b2 = floor(log2(v)) into floor(log10(v)).
//
// approxMul / 2^approxShr approximates log10(2) from below, so y is either the
// answer or one short of it. thresholds[y+1] is the largest value whose
// logarithm is y. When v exceeds it the unsigned difference wraps around and
// its top bit supplies the missing 1.
func log10[T constraints.Unsigned](v T, b2, msb, approxMul int, approxShr uint, thresholds []T) int {
	y := (approxMul * b2) >> approxShr
	return y + int((thresholds[y+1]-v)>>uint(msb))
}

// Log2U8 returns floor(log2(v)), or -1 when v is zero.
func Log2U8(v uint8) int {
	return msbU8 - bits.LeadingZeros8(v)
}

// Log10U8 returns floor(log10(v)), or -1 when v is zero.
func Log10U8(v uint8) int {
	return log10(v, Log2U8(v), msbU8, approxMulU8, approxShrU8, thresholdsU8[:])
}

// CheckedLog2U8 is Log2U8 that reports false when v is zero.
func CheckedLog2U8(v uint8) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log2U8(v), true
}

// CheckedLog10U8 is Log10U8 that reports false when v is zero.
func CheckedLog10U8(v uint8) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log10U8(v), true
}

// Log2U16 returns floor(log2(v)), or -1 when v is zero.
func Log2U16(v uint16) int {
	return msbU16 - bits.LeadingZeros16(v)
}

// Log10U16 returns floor(log10(v)), or -1 when v is zero.
func Log10U16(v uint16) int {
	return log10(v, Log2U16(v), msbU16, approxMulU16, approxShrU16, thresholdsU16[:])
}

// CheckedLog2U16 is Log2U16 that reports false when v is zero.
func CheckedLog2U16(v uint16) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log2U16(v), true
}

// CheckedLog10U16 is Log10U16 that reports false when v is zero.
func CheckedLog10U16(v uint16) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log10U16(v), true
}

// Log2U32 returns floor(log2(v)), or -1 when v is zero.
func Log2U32(v uint32) int {
	return msbU32 - bits.LeadingZeros32(v)
}

// Log10U32 returns floor(log10(v)), or -1 when v is zero.
func Log10U32(v uint32) int {
	return log10(v, Log2U32(v), msbU32, approxMulU32, approxShrU32, thresholdsU32[:])
}

// CheckedLog2U32 is Log2U32 that reports false when v is zero.
func CheckedLog2U32(v uint32) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log2U32(v), true
}

// CheckedLog10U32 is Log10U32 that reports false when v is zero.
func CheckedLog10U32(v uint32) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log10U32(v), true
}

// Log2U64 returns floor(log2(v)), or -1 when v is zero.
func Log2U64(v uint64) int {
	return msbU64 - bits.LeadingZeros64(v)
}

// Log10U64 returns floor(log10(v)), or -1 when v is zero.
func Log10U64(v uint64) int {
	return log10(v, Log2U64(v), msbU64, approxMulU64, approxShrU64, thresholdsU64[:])
}

// CheckedLog2U64 is Log2U64 that reports false when v is zero.
func CheckedLog2U64(v uint64) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log2U64(v), true
}

// CheckedLog10U64 is Log10U64 that reports false when v is zero.
func CheckedLog10U64(v uint64) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log10U64(v), true
}
