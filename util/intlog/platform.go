// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

import "math/bits"

// uint and int resolve to the 32 or 64 bit implementation. bits.UintSize is a
// constant, so only one branch survives compilation.

// Log2Uint is Log2U32 or Log2U64, whichever matches bits.UintSize.
func Log2Uint(v uint) int {
	if bits.UintSize == 32 {
		return Log2U32(uint32(v))
	}
	return Log2U64(uint64(v))
}

// Log10Uint is Log10U32 or Log10U64, whichever matches bits.UintSize.
func Log10Uint(v uint) int {
	if bits.UintSize == 32 {
		return Log10U32(uint32(v))
	}
	return Log10U64(uint64(v))
}

// CheckedLog2Uint is Log2Uint that reports false when v is zero.
func CheckedLog2Uint(v uint) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log2Uint(v), true
}

// CheckedLog10Uint is Log10Uint that reports false when v is zero.
func CheckedLog10Uint(v uint) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return Log10Uint(v), true
}

// Log2Int returns floor(log2(v)) for v > 0; negative v is read as uint.
func Log2Int(v int) int {
	return Log2Uint(uint(v))
}

// Log10Int returns floor(log10(v)) for v > 0; negative v is read as uint.
func Log10Int(v int) int {
	return Log10Uint(uint(v))
}

// CheckedLog2Int is Log2Int that reports false when v <= 0.
func CheckedLog2Int(v int) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2Uint(uint(v)), true
}

// CheckedLog10Int is Log10Int that reports false when v <= 0.
func CheckedLog10Int(v int) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10Uint(uint(v)), true
}
