// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/oxidecoin/oxided/chainhash"
)

// OutPoint uniquely identifies a transaction output (spec.md section 3).
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new OutPoint for the given txid and output index.
func NewOutPoint(hash *chainhash.Hash, index uint32) OutPoint {
	return OutPoint{Hash: *hash, Index: index}
}

// String returns the outpoint in "hash:index" form.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash.String(), o.Index)
}

// IsNull reports whether this is the null outpoint used by coinbase
// transactions: a zero hash and the maximum index.
func (o OutPoint) IsNull() bool {
	return o.Index == ^uint32(0) && o.Hash == chainhash.ZeroHash
}

// PublicKeySize is the size, in bytes, of an Ed25519 verifying key.
const PublicKeySize = 32

// SignatureSize is the size, in bytes, of an Ed25519 signature.
const SignatureSize = 64

// PublicKey is an Ed25519 verifying key (spec.md section 3).
type PublicKey [PublicKeySize]byte

// Signature is an Ed25519 signature (spec.md section 3).
type Signature [SignatureSize]byte

// MasternodeID identifies a masternode by the outpoint of its collateral
// output.
type MasternodeID = OutPoint

// TicketId identifies a ticket by the BLAKE3 commitment derived from its
// purchase output, per spec.md section 3.
type TicketId = chainhash.Hash
