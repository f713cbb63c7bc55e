// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oxidutil

import (
	"errors"

	"github.com/decred/base58"
	"lukechampine.com/blake3"
)

// addressVersion is the single-byte prefix identifying a standard
// verifying-key address; OxideCoin has no script-hash or multisig address
// class, unlike the dcrutil address hierarchy this package is modeled on.
const addressVersion = 0x2d

// checksumLen is the number of bytes of BLAKE3 digest appended as an
// address checksum, mirroring the Base58Check scheme's use of a truncated
// double-SHA256 checksum.
const checksumLen = 4

// EncodeAddress returns the base58check display form of an Ed25519
// verifying key: version byte, BLAKE3-160 key hash, and a 4-byte checksum.
func EncodeAddress(pubKey [32]byte) string {
	hash := blake3.Sum256(pubKey[:])
	payload := make([]byte, 0, 1+20+checksumLen)
	payload = append(payload, addressVersion)
	payload = append(payload, hash[:20]...)

	check := blake3.Sum256(payload)
	payload = append(payload, check[:checksumLen]...)

	return base58.Encode(payload)
}

// DecodeAddress parses a string produced by EncodeAddress and returns the
// embedded 20-byte key hash, or an error if the checksum does not verify.
func DecodeAddress(addr string) ([20]byte, error) {
	var keyHash [20]byte

	payload := base58.Decode(addr)
	if len(payload) != 1+20+checksumLen {
		return keyHash, errors.New("oxidutil: malformed address length")
	}
	if payload[0] != addressVersion {
		return keyHash, errors.New("oxidutil: unrecognized address version")
	}

	body := payload[:1+20]
	wantCheck := payload[1+20:]
	gotCheck := blake3.Sum256(body)
	for i := 0; i < checksumLen; i++ {
		if gotCheck[i] != wantCheck[i] {
			return keyHash, errors.New("oxidutil: address checksum mismatch")
		}
	}

	copy(keyHash[:], payload[1:1+20])
	return keyHash, nil
}
