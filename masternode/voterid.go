// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"encoding/binary"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// VoterID returns the governance voter identity a masternode casts votes
// under: the BLAKE3 commitment of its collateral outpoint. Unlike a
// ticket, whose TicketId already is a bare hash, a masternode's identity
// is an OutPoint (hash and index), so governance code (which keys votes
// by a plain Hash) needs this derived, collision-resistant identifier
// rather than the outpoint itself.
func VoterID(id wire.MasternodeID) chainhash.Hash {
	var idxBuf [4]byte
	binary.LittleEndian.PutUint32(idxBuf[:], id.Index)
	return chainhash.Hash256(id.Hash[:], idxBuf[:])
}
