// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the opaque 32-byte hash type used throughout
// the consensus core. Unlike the Decred-family packages it is descended
// from, hashes here are produced with BLAKE3 rather than BLAKE256, per the
// data model in spec.md section 3.
package chainhash

import (
	"encoding/hex"
	"fmt"

	"lukechampine.com/blake3"
)

// HashSize is the size, in bytes, of a hash produced by this package.
const HashSize = 32

// Hash is an opaque 32-byte identifier, produced by BLAKE3, used for
// transaction IDs, block IDs, and Merkle/state roots.
type Hash [HashSize]byte

// ZeroHash is the all-zero Hash, used as the previous-output hash of a
// coinbase input and the previous-block hash of a genesis block.
var ZeroHash = Hash{}

// String returns the Hash as the hexadecimal string of its bytes in stored
// order, with no byte reversal.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsEqual returns whether h and target are the same hash. Two nil hashes
// are equal; a nil and a non-nil hash are not.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil || target == nil {
		return h == target
	}
	return *h == *target
}

// IsZero reports whether h is the all-zero hash.
func (h *Hash) IsZero() bool {
	return *h == ZeroHash
}

// CloneBytes returns a newly allocated copy of the bytes in h.
func (h Hash) CloneBytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// SetBytes sets the bytes of h to the passed slice, which must be exactly
// HashSize bytes.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, expected %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHash returns a new Hash from a byte slice, which must be exactly
// HashSize bytes.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// Hash256 returns the BLAKE3 hash of the concatenation of the given byte
// slices, computed without an intermediate allocation of the concatenated
// input.
func Hash256(parts ...[]byte) Hash {
	hasher := blake3.New(HashSize, nil)
	for _, p := range parts {
		hasher.Write(p)
	}
	var out Hash
	copy(out[:], hasher.Sum(nil))
	return out
}

// MerkleRoot computes the Merkle root of the provided leaf hashes using
// BLAKE3 as the combining hash, duplicating the final leaf at each level
// when the level has an odd number of nodes, per spec.md section 3's
// "odd leaves duplicated" rule. MerkleRoot of an empty slice is the zero
// hash; a single leaf's root is that leaf.
func MerkleRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return ZeroHash
	}
	level := make([]Hash, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]Hash, len(level)/2)
		for i := range next {
			left := level[2*i]
			right := level[2*i+1]
			next[i] = Hash256(left[:], right[:])
		}
		level = next
	}
	return level[0]
}
