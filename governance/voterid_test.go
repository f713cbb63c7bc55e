// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/masternode"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/wire"
)

func TestDeriveVoterTypeResolvesLiveTicket(t *testing.T) {
	pool := stake.NewPool()
	var id chainhash.Hash
	id[0] = 0x01
	pool.Add(&stake.Ticket{ID: wire.TicketId(id), Status: stake.StatusLive})

	voterType, ok := DeriveVoterType(id, pool, masternode.NewList())
	if !ok || voterType != VoterPoS {
		t.Fatalf("DeriveVoterType() = (%v, %v), want (VoterPoS, true)", voterType, ok)
	}
}

func TestDeriveVoterTypeResolvesActiveMasternode(t *testing.T) {
	pool := stake.NewPool()
	list := masternode.NewList()
	mnID := wire.MasternodeID{Hash: chainhash.Hash{0x02}, Index: 0}
	var key wire.PublicKey
	list.Register(mnID, key, 1_000_000, 1_000_000)
	list.Activate(mnID)

	voterType, ok := DeriveVoterType(masternode.VoterID(mnID), pool, list)
	if !ok || voterType != VoterMasternode {
		t.Fatalf("DeriveVoterType() = (%v, %v), want (VoterMasternode, true)", voterType, ok)
	}
}

func TestDeriveVoterTypeRejectsUnknownVoter(t *testing.T) {
	var unknown chainhash.Hash
	unknown[0] = 0xFF

	_, ok := DeriveVoterType(unknown, stake.NewPool(), masternode.NewList())
	if ok {
		t.Fatal("expected unknown voter ID to not resolve to any voter type")
	}
}

func TestDeriveVoterTypeIgnoresNonLiveTicket(t *testing.T) {
	pool := stake.NewPool()
	var id chainhash.Hash
	id[0] = 0x03
	pool.Add(&stake.Ticket{ID: wire.TicketId(id), Status: stake.StatusExpired})

	_, ok := DeriveVoterType(id, pool, masternode.NewList())
	if ok {
		t.Fatal("expected an expired ticket to not resolve as a live voter")
	}
}
