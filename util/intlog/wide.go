// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// Int128 is a signed 128-bit integer stored in two's complement.
// Converting it to uint128.Uint128 reinterprets the bit pattern.
type Int128 uint128.Uint128

var (
	MaxInt128 = Int128{Lo: math.MaxUint64, Hi: math.MaxInt64}
	MinInt128 = Int128{Lo: 0, Hi: 1 << 63}

	ErrInt128Range = errors.New("value out of int128 range")
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: uint64(v >> 63)}
}

// Int128FromBig converts i, failing with ErrInt128Range when it does not fit.
func Int128FromBig(i *big.Int) (Int128, error) {
	if i.Cmp(MinInt128.Big()) < 0 || i.Cmp(MaxInt128.Big()) > 0 {
		return Int128{}, ErrInt128Range
	}
	// uint128.FromBig consumes its argument
	u := new(big.Int).Set(i)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	return Int128(uint128.FromBig(u)), nil
}

// ParseInt128 parses a base 10 string.
func ParseInt128(s string) (Int128, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("invalid int128 %q", s)
	}
	x, err := Int128FromBig(i)
	if err != nil {
		return Int128{}, fmt.Errorf("%w: %s", err, s)
	}
	return x, nil
}

func (x Int128) Sign() int {
	if int64(x.Hi) < 0 {
		return -1
	}
	if x.Hi == 0 && x.Lo == 0 {
		return 0
	}
	return 1
}

func (x Int128) Big() *big.Int {
	b := uint128.Uint128(x).Big()
	if x.Sign() < 0 {
		b.Sub(b, two128)
	}
	return b
}

func (x Int128) String() string {
	return x.Big().String()
}

// Log2U128 returns floor(log2(v)), or -1 when v is zero.
func Log2U128(v uint128.Uint128) int {
	return msbU128 - v.LeadingZeros()
}

// Log10U128 returns floor(log10(v)), or -1 when v is zero.
func Log10U128(v uint128.Uint128) int {
	y := (approxMulU128 * Log2U128(v)) >> approxShrU128
	return y + int(thresholdsU128[y+1].SubWrap(v).Rsh(msbU128).Lo)
}

// CheckedLog2U128 is Log2U128 that reports false when v is zero.
func CheckedLog2U128(v uint128.Uint128) (int, bool) {
	if v.IsZero() {
		return 0, false
	}
	return Log2U128(v), true
}

// CheckedLog10U128 is Log10U128 that reports false when v is zero.
func CheckedLog10U128(v uint128.Uint128) (int, bool) {
	if v.IsZero() {
		return 0, false
	}
	return Log10U128(v), true
}

// Log2I128 returns floor(log2(v)) for v > 0; negative v is read as uint128.
func Log2I128(v Int128) int {
	return Log2U128(uint128.Uint128(v))
}

// Log10I128 returns floor(log10(v)) for v > 0; negative v is read as uint128.
func Log10I128(v Int128) int {
	return Log10U128(uint128.Uint128(v))
}

// CheckedLog2I128 is Log2I128 that reports false when v <= 0.
func CheckedLog2I128(v Int128) (int, bool) {
	if v.Sign() <= 0 {
		return 0, false
	}
	return Log2U128(uint128.Uint128(v)), true
}

// CheckedLog10I128 is Log10I128 that reports false when v <= 0.
func CheckedLog10I128(v Int128) (int, bool) {
	if v.Sign() <= 0 {
		return 0, false
	}
	return Log10U128(uint128.Uint128(v)), true
}
