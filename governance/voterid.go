// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/masternode"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/wire"
)

// DeriveVoterType resolves a cast vote's VoterID against the live ticket
// pool and the masternode list, reporting which pool the voter actually
// belongs to. The original implementation assigned voter type with
// rand::random::<bool>() as an unfinished placeholder; a vote's weight and
// eligibility must instead follow from real chain state, so a voter_id
// that matches neither a live ticket nor an active masternode is not a
// valid voter at all.
func DeriveVoterType(voterID chainhash.Hash, tickets *stake.Pool, masternodes *masternode.List) (VoterType, bool) {
	if t, ok := tickets.Get(wire.TicketId(voterID)); ok && t.IsLive() {
		return VoterPoS, true
	}
	for _, e := range masternodes.ActiveEntries() {
		if masternode.VoterID(e.ID) == voterID {
			return VoterMasternode, true
		}
	}
	return 0, false
}
