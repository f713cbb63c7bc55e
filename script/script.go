// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script implements the minimal output-script language named in
// spec.md section 4.2: a pay-to-verifying-key script checked against an
// Ed25519 signature, and an unspendable data-carrier script used for
// OP_RETURN-style burns (stake-burn outputs, masternode slashing).
//
// There is no general-purpose script interpreter: every script is one of
// the two recognized forms below, matched by shape rather than executed as
// a byte-code program.
package script

import (
	"crypto/ed25519"

	"github.com/oxidecoin/oxided/wire"
)

// Opcodes used to tag the two recognized script forms. These are declared
// locally, as dcrd's standalone package declares the opcodes it needs,
// rather than depending on a full script-assembly package for two bytes.
const (
	OpPubKey  = 0x01 // pushes the 32-byte verifying key that follows
	OpCheckSig = 0xac
	OpReturn  = 0x6a
)

// PayToVerifyingKeyScript builds a standard output script paying to an
// Ed25519 verifying key: OpPubKey, the 32-byte key, OpCheckSig.
func PayToVerifyingKeyScript(pubKey wire.PublicKey) []byte {
	script := make([]byte, 0, 34)
	script = append(script, OpPubKey)
	script = append(script, pubKey[:]...)
	script = append(script, OpCheckSig)
	return script
}

// UnspendableDataScript builds an OP_RETURN-style script carrying data that
// can never be spent, used for proposal stake burns and masternode
// slashing burns (spec.md sections 4.7, 4.8).
func UnspendableDataScript(data []byte) []byte {
	script := make([]byte, 0, len(data)+1)
	script = append(script, OpReturn)
	script = append(script, data...)
	return script
}

// IsUnspendable reports whether pkScript is an OP_RETURN-style script: such
// outputs can never appear as a transaction input's previous output.
func IsUnspendable(pkScript []byte) bool {
	return len(pkScript) > 0 && pkScript[0] == OpReturn
}

// ExtractVerifyingKey returns the verifying key embedded in a standard
// pay-to-verifying-key script, or false if pkScript is not in that form.
func ExtractVerifyingKey(pkScript []byte) (wire.PublicKey, bool) {
	var key wire.PublicKey
	if len(pkScript) != 34 || pkScript[0] != OpPubKey || pkScript[33] != OpCheckSig {
		return key, false
	}
	copy(key[:], pkScript[1:33])
	return key, true
}

// CheckSignature verifies that sig is a valid Ed25519 signature by
// pkScript's embedded verifying key over sigHash. It is the entirety of
// script "execution": there is no generalized interpreter, only this one
// recognized spending condition.
func CheckSignature(pkScript []byte, sigHash []byte, sig wire.Signature) bool {
	key, ok := ExtractVerifyingKey(pkScript)
	if !ok {
		return false
	}
	return ed25519.Verify(key[:], sigHash, sig[:])
}
