// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"crypto/ed25519"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// Challenge is a Proof-of-Service-Existence probe issued to a masternode:
// prove liveness by signing Nonce with its operator key before the
// challenge expires (spec.md section 3, "PoSe", and section 5's audit
// event list, "PoSe challenge/response").
type Challenge struct {
	MasternodeID wire.MasternodeID
	Nonce        [32]byte
	IssuedHeight uint64
}

// Response answers a Challenge with a signature over its nonce.
type Response struct {
	ChallengeNonce [32]byte
	Signature      wire.Signature
}

// NewChallenge returns a Challenge for id using seed material (typically
// the parent block hash) to derive an unpredictable nonce.
func NewChallenge(id wire.MasternodeID, height uint64, seed chainhash.Hash) Challenge {
	return Challenge{
		MasternodeID: id,
		Nonce:        chainhash.Hash256(seed[:], id.Hash[:]),
		IssuedHeight: height,
	}
}

// VerifyResponse reports whether resp is a valid answer to challenge under
// operatorKey: the nonce must match and the signature must verify.
func VerifyResponse(challenge Challenge, resp Response, operatorKey wire.PublicKey) bool {
	if challenge.Nonce != resp.ChallengeNonce {
		return false
	}
	return ed25519.Verify(operatorKey[:], resp.ChallengeNonce[:], resp.Signature[:])
}
