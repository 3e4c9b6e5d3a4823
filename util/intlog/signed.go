// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

// Signed operations reinterpret their argument as the unsigned type of the
// same width. Only the checked forms reject negative values.

// Log2I8 returns floor(log2(v)) for v > 0; negative v is read as uint8.
func Log2I8(v int8) int {
	return Log2U8(uint8(v))
}

// Log10I8 returns floor(log10(v)) for v > 0; negative v is read as uint8.
func Log10I8(v int8) int {
	return Log10U8(uint8(v))
}

// CheckedLog2I8 is Log2I8 that reports false when v <= 0.
func CheckedLog2I8(v int8) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2U8(uint8(v)), true
}

// CheckedLog10I8 is Log10I8 that reports false when v <= 0.
func CheckedLog10I8(v int8) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10U8(uint8(v)), true
}

// Log2I16 returns floor(log2(v)) for v > 0; negative v is read as uint16.
func Log2I16(v int16) int {
	return Log2U16(uint16(v))
}

// Log10I16 returns floor(log10(v)) for v > 0; negative v is read as uint16.
func Log10I16(v int16) int {
	return Log10U16(uint16(v))
}

// CheckedLog2I16 is Log2I16 that reports false when v <= 0.
func CheckedLog2I16(v int16) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2U16(uint16(v)), true
}

// CheckedLog10I16 is Log10I16 that reports false when v <= 0.
func CheckedLog10I16(v int16) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10U16(uint16(v)), true
}

// Log2I32 returns floor(log2(v)) for v > 0; negative v is read as uint32.
func Log2I32(v int32) int {
	return Log2U32(uint32(v))
}

// Log10I32 returns floor(log10(v)) for v > 0; negative v is read as uint32.
func Log10I32(v int32) int {
	return Log10U32(uint32(v))
}

// CheckedLog2I32 is Log2I32 that reports false when v <= 0.
func CheckedLog2I32(v int32) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2U32(uint32(v)), true
}

// CheckedLog10I32 is Log10I32 that reports false when v <= 0.
func CheckedLog10I32(v int32) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10U32(uint32(v)), true
}

// Log2I64 returns floor(log2(v)) for v > 0; negative v is read as uint64.
func Log2I64(v int64) int {
	return Log2U64(uint64(v))
}

// Log10I64 returns floor(log10(v)) for v > 0; negative v is read as uint64.
func Log10I64(v int64) int {
	return Log10U64(uint64(v))
}

// CheckedLog2I64 is Log2I64 that reports false when v <= 0.
func CheckedLog2I64(v int64) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log2U64(uint64(v)), true
}

// CheckedLog10I64 is Log10I64 that reports false when v <= 0.
func CheckedLog10I64(v int64) (int, bool) {
	if v <= 0 {
		return 0, false
	}
	return Log10U64(uint64(v)), true
}
