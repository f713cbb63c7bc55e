// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"crypto/ed25519"
	"testing"

	"github.com/oxidecoin/oxided/wire"
)

func TestPayToVerifyingKeyRoundTrip(t *testing.T) {
	var pub wire.PublicKey
	copy(pub[:], []byte("0123456789012345678901234567890"))

	pkScript := PayToVerifyingKeyScript(pub)
	got, ok := ExtractVerifyingKey(pkScript)
	if !ok {
		t.Fatal("ExtractVerifyingKey failed to recognize a standard script")
	}
	if got != pub {
		t.Errorf("ExtractVerifyingKey = %x, want %x", got, pub)
	}
}

func TestCheckSignatureValid(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	var pubKey wire.PublicKey
	copy(pubKey[:], pub)

	pkScript := PayToVerifyingKeyScript(pubKey)
	sigHash := []byte("sighash-of-the-spending-transaction")
	rawSig := ed25519.Sign(priv, sigHash)
	var sig wire.Signature
	copy(sig[:], rawSig)

	if !CheckSignature(pkScript, sigHash, sig) {
		t.Error("expected a valid signature to verify")
	}
}

func TestCheckSignatureWrongHash(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	var pubKey wire.PublicKey
	copy(pubKey[:], pub)

	pkScript := PayToVerifyingKeyScript(pubKey)
	rawSig := ed25519.Sign(priv, []byte("original-message"))
	var sig wire.Signature
	copy(sig[:], rawSig)

	if CheckSignature(pkScript, []byte("tampered-message"), sig) {
		t.Error("expected signature over a different message to fail")
	}
}

func TestIsUnspendable(t *testing.T) {
	burn := UnspendableDataScript([]byte("slash"))
	if !IsUnspendable(burn) {
		t.Error("expected OP_RETURN script to be unspendable")
	}

	var pub wire.PublicKey
	standard := PayToVerifyingKeyScript(pub)
	if IsUnspendable(standard) {
		t.Error("expected a standard script to be spendable")
	}
}

func TestExtractVerifyingKeyRejectsMalformed(t *testing.T) {
	if _, ok := ExtractVerifyingKey([]byte{0x01, 0x02}); ok {
		t.Error("expected malformed script to be rejected")
	}
}
