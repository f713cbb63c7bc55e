// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"
)

// CompactToBig converts a compact, unsigned 32-bit representation of a
// whole number N to a big.Int. The representation is similar to IEEE754 floating
// point numbers: the high 8 bits are an exponent and the low 23 bits are a
// mantissa, except there is no sign bit and only the bottom 24 bits of the
// mantissa are used (the remaining byte is the exponent). This is the
// compact representation OxideCoin difficulty targets use on the wire
// (spec.md section 4.1, "difficulty target").
//
// There is no math/big dependency in the retrieved third-party stack for
// 256-bit integer arithmetic, so this package uses the standard library's
// math/big directly; see the design notes for why no ecosystem uint256
// library was substituted.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x00ffffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number, the inverse of CompactToBig.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint(len(n.Bytes()))

	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// HashToBig converts a 32-byte, little-endian hash digest into a big.Int
// that can be compared against a difficulty target.
func HashToBig(hash [32]byte) *big.Int {
	var buf [32]byte
	for i := 0; i < 32; i++ {
		buf[i] = hash[31-i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// CalcWork calculates a work value from difficulty bits. Work is defined as
// the number of tries needed to solve a block in the average case, i.e.
// 2**256 / (target + 1).
func CalcWork(bits uint32) *big.Int {
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}

	oneLsh256 := new(big.Int).Lsh(big.NewInt(1), 256)
	denominator := new(big.Int).Add(target, big.NewInt(1))
	return new(big.Int).Div(oneLsh256, denominator)
}

// DifficultyParams bundles the consensus quantities needed to retarget
// difficulty, decoupling this package from chaincfg.Params directly.
type DifficultyParams struct {
	MaxDiffTarget            *big.Int
	TargetTimespanSecs       int64 // TargetBlockTime * DifficultyAdjustInterval
	DifficultyAdjustInterval int64
}

// CalcNextRequiredDifficulty computes the retargeted difficulty bits for
// the block following a difficulty-adjustment window, per spec.md section
// 4.1: the ratio of actual to expected timespan scales the previous target,
// clamped to a factor of four in either direction and to the network's
// maximum target.
func CalcNextRequiredDifficulty(params *DifficultyParams, firstBlockTime, lastBlockTime int64, oldBits uint32) uint32 {
	actualTimespan := lastBlockTime - firstBlockTime
	expectedTimespan := params.TargetTimespanSecs

	minTimespan := expectedTimespan / 4
	maxTimespan := expectedTimespan * 4
	switch {
	case actualTimespan < minTimespan:
		actualTimespan = minTimespan
	case actualTimespan > maxTimespan:
		actualTimespan = maxTimespan
	}

	oldTarget := CompactToBig(oldBits)
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(expectedTimespan))

	if newTarget.Cmp(params.MaxDiffTarget) > 0 {
		newTarget.Set(params.MaxDiffTarget)
	}

	return BigToCompact(newTarget)
}

// VerifyProofOfWork reports whether hash satisfies the difficulty target
// encoded by bits: hash, interpreted as a 256-bit little-endian integer,
// must be less than or equal to the target.
func VerifyProofOfWork(hash [32]byte, bits uint32, maxDiffTarget *big.Int) bool {
	target := CompactToBig(bits)
	if target.Sign() <= 0 || target.Cmp(maxDiffTarget) > 0 {
		return false
	}
	hashNum := HashToBig(hash)
	return hashNum.Cmp(target) <= 0
}
