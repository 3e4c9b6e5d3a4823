// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/offchainlabs/intlog/util/testhelpers"
	testflag "github.com/offchainlabs/intlog/util/testhelpers/flag"
)

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}

// refLog10 and refLog2 count digits the slow way.
func refLog10(v uint64) int {
	n := -1
	for v > 0 {
		v /= 10
		n++
	}
	return n
}

func refLog2(v uint64) int {
	n := -1
	for v > 0 {
		v >>= 1
		n++
	}
	return n
}

// front exposes the generic functions as a Logarithm.
type front[T constraints.Integer] struct{}

func (front[T]) Log2(v T) int                 { return Log2(v) }
func (front[T]) Log10(v T) int                { return Log10(v) }
func (front[T]) CheckedLog2(v T) (int, bool)  { return CheckedLog2(v) }
func (front[T]) CheckedLog10(v T) (int, bool) { return CheckedLog10(v) }

// testWidth checks the power boundaries and the maximum of one engine.
// topBit is the highest positive power of two, maxLog10 is floor(log10(max)).
func testWidth[T constraints.Integer](t *testing.T, engine Logarithm[T], topBit, maxLog10 int, max T) {
	t.Helper()
	expect := func(v T, log2, log10 int) {
		t.Helper()
		if got := engine.Log10(v); got != log10 {
			Fail(t, "log10 of", v, "expected", log10, "but got", got)
		}
		if got, ok := engine.CheckedLog10(v); !ok || got != log10 {
			Fail(t, "checked log10 of", v, "expected", log10, "but got", got, ok)
		}
		if log2 < 0 {
			return
		}
		if got := engine.Log2(v); got != log2 {
			Fail(t, "log2 of", v, "expected", log2, "but got", got)
		}
		if got, ok := engine.CheckedLog2(v); !ok || got != log2 {
			Fail(t, "checked log2 of", v, "expected", log2, "but got", got, ok)
		}
	}

	expect(1, 0, 0)
	power := T(1)
	for i := 1; i <= maxLog10; i++ {
		power *= 10
		expect(power-1, -1, i-1)
		expect(power, -1, i)
	}
	for i := 1; i <= topBit; i++ {
		power = T(1) << i
		expect(power-1, i-1, refLog10(uint64(power-1)))
		expect(power, i, refLog10(uint64(power)))
	}
	expect(max, topBit, maxLog10)

	if _, ok := engine.CheckedLog2(0); ok {
		Fail(t, "checked log2 of zero is defined")
	}
	if _, ok := engine.CheckedLog10(0); ok {
		Fail(t, "checked log10 of zero is defined")
	}
}

func testSignedWidth[T constraints.Signed](t *testing.T, engine Logarithm[T], topBit, maxLog10 int, max T) {
	t.Helper()
	testWidth(t, engine, topBit, maxLog10, max)
	for _, v := range []T{-1, -10, -max, -max - 1} {
		if _, ok := engine.CheckedLog2(v); ok {
			Fail(t, "checked log2 of", v, "is defined")
		}
		if _, ok := engine.CheckedLog10(v); ok {
			Fail(t, "checked log10 of", v, "is defined")
		}
	}
}

func TestUnsignedWidths(t *testing.T) {
	testWidth[uint8](t, U8{}, 7, 2, math.MaxUint8)
	testWidth[uint16](t, U16{}, 15, 4, math.MaxUint16)
	testWidth[uint32](t, U32{}, 31, 9, math.MaxUint32)
	testWidth[uint64](t, U64{}, 63, 19, math.MaxUint64)
	if math.MaxUint == math.MaxUint64 {
		testWidth[uint](t, Uint{}, 63, 19, math.MaxUint)
	} else {
		testWidth[uint](t, Uint{}, 31, 9, math.MaxUint)
	}
}

func TestSignedWidths(t *testing.T) {
	testSignedWidth[int8](t, I8{}, 6, 2, math.MaxInt8)
	testSignedWidth[int16](t, I16{}, 14, 4, math.MaxInt16)
	testSignedWidth[int32](t, I32{}, 30, 9, math.MaxInt32)
	testSignedWidth[int64](t, I64{}, 62, 18, math.MaxInt64)
	if math.MaxInt == math.MaxInt64 {
		testSignedWidth[int](t, Int{}, 62, 18, math.MaxInt)
	} else {
		testSignedWidth[int](t, Int{}, 30, 9, math.MaxInt)
	}
}

func TestGenericFront(t *testing.T) {
	testWidth[uint8](t, front[uint8]{}, 7, 2, math.MaxUint8)
	testWidth[uint16](t, front[uint16]{}, 15, 4, math.MaxUint16)
	testWidth[uint32](t, front[uint32]{}, 31, 9, math.MaxUint32)
	testWidth[uint64](t, front[uint64]{}, 63, 19, math.MaxUint64)
	testSignedWidth[int8](t, front[int8]{}, 6, 2, math.MaxInt8)
	testSignedWidth[int16](t, front[int16]{}, 14, 4, math.MaxInt16)
	testSignedWidth[int32](t, front[int32]{}, 30, 9, math.MaxInt32)
	testSignedWidth[int64](t, front[int64]{}, 62, 18, math.MaxInt64)

	type bigness uint32
	testWidth[bigness](t, front[bigness]{}, 31, 9, math.MaxUint32)
	require.Equal(t, Log10Uint(1000), Log10(uintptr(1000)))
	require.Equal(t, Log2Uint(math.MaxUint), Log2(uintptr(math.MaxUint)))
}

func TestScenarios(t *testing.T) {
	require.Equal(t, 2, Log10U32(100))
	require.Equal(t, 1, Log10I32(99))
	require.Equal(t, 6, Log2U64(64))
	require.Equal(t, 5, Log2I32(63))
	require.Equal(t, 19, Log10U64(math.MaxUint64))
	require.Equal(t, 8, Log10U32(999_999_999))
	require.Equal(t, 18, Log10U64(9_999_999_999_999_999_999))

	_, ok := CheckedLog10U32(0)
	require.False(t, ok)
	log2, ok := CheckedLog2U32(math.MaxUint32)
	require.True(t, ok)
	require.Equal(t, 31, log2)
	log10, ok := CheckedLog10U64(99)
	require.True(t, ok)
	require.Equal(t, 1, log10)
}

// 511 and 512 straddle a power of two but share a decimal exponent.
func TestPowerOfTwoNeighbours(t *testing.T) {
	below, at := uint16(511), uint16(512)
	require.Equal(t, 8, Log2U16(below))
	require.Equal(t, 2, Log10U16(below))
	require.Equal(t, 9, Log2U16(at))
	require.Equal(t, 2, Log10U16(at))

	require.Equal(t, 8, Log2U32(uint32(below)))
	require.Equal(t, 9, Log2U64(uint64(at)))
	require.Equal(t, 2, Log10I16(int16(below)))
	require.Equal(t, 2, Log10I64(int64(at)))
	require.Equal(t, 9, Log2Int(int(at)))
	require.Equal(t, 2, Log10Uint(uint(below)))
}

func TestNonPositiveArguments(t *testing.T) {
	require.Equal(t, -1, Log2U8(0))
	require.Equal(t, -1, Log10U8(0))
	require.Equal(t, -1, Log2U16(0))
	require.Equal(t, -1, Log10U16(0))
	require.Equal(t, -1, Log2U32(0))
	require.Equal(t, -1, Log10U32(0))
	require.Equal(t, -1, Log2U64(0))
	require.Equal(t, -1, Log10U64(0))
	require.Equal(t, -1, Log2Int(0))
	require.Equal(t, -1, Log10Int(0))
	require.Equal(t, -1, Log10(uint16(0)))

	// negative values are read as their unsigned bit pattern
	require.Equal(t, 7, Log2I8(-1))
	require.Equal(t, 2, Log10I8(-1))
	require.Equal(t, 7, Log2I8(math.MinInt8))
	require.Equal(t, 2, Log10I8(math.MinInt8))
	require.Equal(t, 15, Log2I16(-1))
	require.Equal(t, 4, Log10I16(-1))
	require.Equal(t, 31, Log2I32(-1))
	require.Equal(t, 9, Log10I32(-1))
	require.Equal(t, 63, Log2I64(math.MinInt64))
	require.Equal(t, 18, Log10I64(math.MinInt64))
	require.Equal(t, 19, Log10I64(-1))
	require.Equal(t, Log10U32(math.MaxUint32-9), Log10(int32(-10)))
}

func TestExhaustiveNarrow(t *testing.T) {
	for v := 1; v <= math.MaxUint8; v++ {
		if got, want := Log10U8(uint8(v)), refLog10(uint64(v)); got != want {
			Fail(t, "log10 of", v, "expected", want, "but got", got)
		}
		if got, want := Log2U8(uint8(v)), refLog2(uint64(v)); got != want {
			Fail(t, "log2 of", v, "expected", want, "but got", got)
		}
	}
	for v := 1; v <= math.MaxUint16; v++ {
		if got, want := Log10U16(uint16(v)), refLog10(uint64(v)); got != want {
			Fail(t, "log10 of", v, "expected", want, "but got", got)
		}
		if got, want := Log2U16(uint16(v)), refLog2(uint64(v)); got != want {
			Fail(t, "log2 of", v, "expected", want, "but got", got)
		}
	}
}

func TestPseudorandomSweep(t *testing.T) {
	source := testhelpers.NewPseudoRandomDataSource(t, *testflag.SeedFlag)
	runs := testflag.Runs(20000)
	for i := 0; i < runs; i++ {
		v32 := uint32(source.GetUint64Bits(32))
		if got, want := Log10U32(v32), refLog10(uint64(v32)); got != want {
			Fail(t, "log10 of", v32, "expected", want, "but got", got)
		}
		if got, want := Log2U32(v32), refLog2(uint64(v32)); got != want {
			Fail(t, "log2 of", v32, "expected", want, "but got", got)
		}
		v64 := source.GetUint64Bits(64)
		if got, want := Log10U64(v64), refLog10(v64); got != want {
			Fail(t, "log10 of", v64, "expected", want, "but got", got)
		}
		if got, want := Log2U64(v64), refLog2(v64); got != want {
			Fail(t, "log2 of", v64, "expected", want, "but got", got)
		}
		s64 := int64(v64 >> 1)
		if got, want := Log10I64(s64), refLog10(uint64(s64)); got != want {
			Fail(t, "log10 of", s64, "expected", want, "but got", got)
		}
	}
}

func TestThresholdTables(t *testing.T) {
	checkTable(t, thresholdsU8[:], math.MaxUint8, 4)
	checkTable(t, thresholdsU16[:], math.MaxUint16, 6)
	checkTable(t, thresholdsU32[:], math.MaxUint32, 11)
	checkTable(t, thresholdsU64[:], math.MaxUint64, 21)
}

func checkTable[T constraints.Unsigned](t *testing.T, table []T, max T, length int) {
	t.Helper()
	require.Len(t, table, length)
	require.Equal(t, T(0), table[0])
	require.Equal(t, max, table[len(table)-1])
	power := T(1)
	for i := 1; i < len(table)-1; i++ {
		power *= 10
		require.Equal(t, power-1, table[i])
	}
}
