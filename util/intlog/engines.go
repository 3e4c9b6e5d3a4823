// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package intlog

import "lukechampine.com/uint128"

// Zero-size Logarithm implementations, one per width. Calls on the concrete
// types are direct; they only go through an interface when stored as one.
type (
	U8   struct{}
	U16  struct{}
	U32  struct{}
	U64  struct{}
	U128 struct{}
	Uint struct{}
	I8   struct{}
	I16  struct{}
	I32  struct{}
	I64  struct{}
	I128 struct{}
	Int  struct{}
)

var (
	_ Logarithm[uint8]           = U8{}
	_ Logarithm[uint16]          = U16{}
	_ Logarithm[uint32]          = U32{}
	_ Logarithm[uint64]          = U64{}
	_ Logarithm[uint128.Uint128] = U128{}
	_ Logarithm[uint]            = Uint{}
	_ Logarithm[int8]            = I8{}
	_ Logarithm[int16]           = I16{}
	_ Logarithm[int32]           = I32{}
	_ Logarithm[int64]           = I64{}
	_ Logarithm[Int128]          = I128{}
	_ Logarithm[int]             = Int{}
)

func (U8) Log2(v uint8) int                 { return Log2U8(v) }
func (U8) Log10(v uint8) int                { return Log10U8(v) }
func (U8) CheckedLog2(v uint8) (int, bool)  { return CheckedLog2U8(v) }
func (U8) CheckedLog10(v uint8) (int, bool) { return CheckedLog10U8(v) }

func (U16) Log2(v uint16) int                 { return Log2U16(v) }
func (U16) Log10(v uint16) int                { return Log10U16(v) }
func (U16) CheckedLog2(v uint16) (int, bool)  { return CheckedLog2U16(v) }
func (U16) CheckedLog10(v uint16) (int, bool) { return CheckedLog10U16(v) }

func (U32) Log2(v uint32) int                 { return Log2U32(v) }
func (U32) Log10(v uint32) int                { return Log10U32(v) }
func (U32) CheckedLog2(v uint32) (int, bool)  { return CheckedLog2U32(v) }
func (U32) CheckedLog10(v uint32) (int, bool) { return CheckedLog10U32(v) }

func (U64) Log2(v uint64) int                 { return Log2U64(v) }
func (U64) Log10(v uint64) int                { return Log10U64(v) }
func (U64) CheckedLog2(v uint64) (int, bool)  { return CheckedLog2U64(v) }
func (U64) CheckedLog10(v uint64) (int, bool) { return CheckedLog10U64(v) }

func (U128) Log2(v uint128.Uint128) int                 { return Log2U128(v) }
func (U128) Log10(v uint128.Uint128) int                { return Log10U128(v) }
func (U128) CheckedLog2(v uint128.Uint128) (int, bool)  { return CheckedLog2U128(v) }
func (U128) CheckedLog10(v uint128.Uint128) (int, bool) { return CheckedLog10U128(v) }

func (Uint) Log2(v uint) int                 { return Log2Uint(v) }
func (Uint) Log10(v uint) int                { return Log10Uint(v) }
func (Uint) CheckedLog2(v uint) (int, bool)  { return CheckedLog2Uint(v) }
func (Uint) CheckedLog10(v uint) (int, bool) { return CheckedLog10Uint(v) }

func (I8) Log2(v int8) int                 { return Log2I8(v) }
func (I8) Log10(v int8) int                { return Log10I8(v) }
func (I8) CheckedLog2(v int8) (int, bool)  { return CheckedLog2I8(v) }
func (I8) CheckedLog10(v int8) (int, bool) { return CheckedLog10I8(v) }

func (I16) Log2(v int16) int                 { return Log2I16(v) }
func (I16) Log10(v int16) int                { return Log10I16(v) }
func (I16) CheckedLog2(v int16) (int, bool)  { return CheckedLog2I16(v) }
func (I16) CheckedLog10(v int16) (int, bool) { return CheckedLog10I16(v) }

func (I32) Log2(v int32) int                 { return Log2I32(v) }
func (I32) Log10(v int32) int                { return Log10I32(v) }
func (I32) CheckedLog2(v int32) (int, bool)  { return CheckedLog2I32(v) }
func (I32) CheckedLog10(v int32) (int, bool) { return CheckedLog10I32(v) }

func (I64) Log2(v int64) int                 { return Log2I64(v) }
func (I64) Log10(v int64) int                { return Log10I64(v) }
func (I64) CheckedLog2(v int64) (int, bool)  { return CheckedLog2I64(v) }
func (I64) CheckedLog10(v int64) (int, bool) { return CheckedLog10I64(v) }

func (I128) Log2(v Int128) int                 { return Log2I128(v) }
func (I128) Log10(v Int128) int                { return Log10I128(v) }
func (I128) CheckedLog2(v Int128) (int, bool)  { return CheckedLog2I128(v) }
func (I128) CheckedLog10(v Int128) (int, bool) { return CheckedLog10I128(v) }

func (Int) Log2(v int) int                 { return Log2Int(v) }
func (Int) Log10(v int) int                { return Log10Int(v) }
func (Int) CheckedLog2(v int) (int, bool)  { return CheckedLog2Int(v) }
func (Int) CheckedLog10(v int) (int, bool) { return CheckedLog10Int(v) }

// Ref applies a Logarithm through a pointer, so Ref[T, L] is a Logarithm[*T].
type Ref[T any, L Logarithm[T]] struct {
	Engine L
}

func (r Ref[T, L]) Log2(v *T) int                 { return r.Engine.Log2(*v) }
func (r Ref[T, L]) Log10(v *T) int                { return r.Engine.Log10(*v) }
func (r Ref[T, L]) CheckedLog2(v *T) (int, bool)  { return r.Engine.CheckedLog2(*v) }
func (r Ref[T, L]) CheckedLog10(v *T) (int, bool) { return r.Engine.CheckedLog10(*v) }
