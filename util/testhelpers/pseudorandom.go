// Copyright 2022-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testhelpers

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type PseudoRandomDataSource struct {
	salt  common.Hash
	index int64
}

// pseudorandom source that repeats on different executions
// T param is to make sure it's only used in testing
func NewPseudoRandomDataSource(_ *testing.T, saltParam int) *PseudoRandomDataSource {
	salt := crypto.Keccak256Hash([]byte{'s'}, common.BigToHash(big.NewInt(int64(saltParam))).Bytes())
	return &PseudoRandomDataSource{
		salt:  salt,
		index: 0,
	}
}

func (r *PseudoRandomDataSource) GetHash() common.Hash {
	r.index++
	return crypto.Keccak256Hash(r.salt[:], common.BigToHash(big.NewInt(r.index)).Bytes())
}

// GetUint64Bits returns a value whose bit length is drawn uniformly from
// [0, bits], so small magnitudes are sampled as often as large ones.
func (r *PseudoRandomDataSource) GetUint64Bits(bits uint) uint64 {
	hash := r.GetHash().Bytes()
	value := binary.BigEndian.Uint64(hash[:8])
	length := uint(binary.BigEndian.Uint64(hash[8:16]) % uint64(bits+1))
	if length == 0 {
		return 0
	}
	return (value >> (64 - length)) | (1 << (length - 1))
}

// GetUint128Bits is GetUint64Bits for 128-bit values, returned as (lo, hi).
func (r *PseudoRandomDataSource) GetUint128Bits() (uint64, uint64) {
	hash := r.GetHash().Bytes()
	length := uint(binary.BigEndian.Uint64(hash[16:24]) % 129)
	value := new(big.Int).SetBytes(hash[:16])
	if length == 0 {
		return 0, 0
	}
	value.Rsh(value, 128-length)
	value.SetBit(value, int(length-1), 1)
	words := common.BigToHash(value)
	return binary.BigEndian.Uint64(words[24:32]), binary.BigEndian.Uint64(words[16:24])
}
