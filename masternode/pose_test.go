// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"crypto/ed25519"
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
)

func TestVerifyResponseAcceptsValidSignature(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	var key [32]byte
	copy(key[:], pub)

	challenge := NewChallenge(testID(1), 100, chainhash.Hash{0xAB})
	resp := Response{ChallengeNonce: challenge.Nonce}
	copy(resp.Signature[:], ed25519.Sign(priv, challenge.Nonce[:]))

	if !VerifyResponse(challenge, resp, key) {
		t.Error("expected valid response to verify")
	}
}

func TestVerifyResponseRejectsWrongNonce(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	var key [32]byte
	copy(key[:], pub)

	challenge := NewChallenge(testID(1), 100, chainhash.Hash{0xAB})
	var wrongNonce [32]byte
	wrongNonce[0] = 0xFF
	resp := Response{ChallengeNonce: wrongNonce}
	copy(resp.Signature[:], ed25519.Sign(priv, wrongNonce[:]))

	if VerifyResponse(challenge, resp, key) {
		t.Error("expected response with mismatched nonce to be rejected")
	}
}

func TestNewChallengeIsDeterministic(t *testing.T) {
	seed := chainhash.Hash{0x01, 0x02}
	c1 := NewChallenge(testID(1), 50, seed)
	c2 := NewChallenge(testID(1), 50, seed)
	if c1.Nonce != c2.Nonce {
		t.Error("expected identical inputs to derive the same nonce")
	}
}
