// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"testing"

	"github.com/jrick/bitset"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// buildTestPool mirrors the exact scenario in spec.md section 8, "Ticket
// lottery determinism": a pool of 10 Live tickets with TicketId =
// [0x01;32] .. [0x0A;32].
func buildTestPool() *Pool {
	p := NewPool()
	for i := byte(1); i <= 10; i++ {
		p.Add(&Ticket{ID: ticketID(i), Status: StatusLive})
	}
	return p
}

func TestSelectVotersIsDeterministic(t *testing.T) {
	pool := buildTestPool()
	var prevHash chainhash.Hash // all-zero, per the spec scenario

	first := SelectVoters(prevHash, pool, 5)
	second := SelectVoters(prevHash, pool, 5)

	if len(first) != 5 {
		t.Fatalf("len(first) = %d, want 5", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("recomputation diverged at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSelectVotersPicksFromLivePoolNoDuplicates(t *testing.T) {
	pool := buildTestPool()
	var prevHash chainhash.Hash
	prevHash[0] = 0xAB

	selected := SelectVoters(prevHash, pool, 5)
	if len(selected) != 5 {
		t.Fatalf("len(selected) = %d, want 5", len(selected))
	}
	seen := make(map[wire.TicketId]bool)
	for _, id := range selected {
		if seen[id] {
			t.Errorf("ticket %v selected more than once", id)
		}
		seen[id] = true
		if !pool.tickets[id].IsLive() {
			t.Errorf("selected ticket %v is not Live", id)
		}
	}
}

func TestSelectVotersCapsAtLiveCount(t *testing.T) {
	p := NewPool()
	p.Add(&Ticket{ID: ticketID(1), Status: StatusLive})
	p.Add(&Ticket{ID: ticketID(2), Status: StatusLive})

	var prevHash chainhash.Hash
	selected := SelectVoters(prevHash, p, 5)
	if len(selected) != 2 {
		t.Fatalf("len(selected) = %d, want 2 (fewer live tickets than votersPerBlock)", len(selected))
	}
}

func TestMissedTicketsComplementsSelected(t *testing.T) {
	selected := []wire.TicketId{ticketID(1), ticketID(2), ticketID(3)}
	voted := bitset.NewBytes(len(selected))
	voted.Set(0) // ticketID(1) voted
	voted.Set(2) // ticketID(3) voted

	missed := MissedTickets(selected, voted)
	if len(missed) != 1 || missed[0] != ticketID(2) {
		t.Fatalf("missed = %v, want [ticketID(2)]", missed)
	}
}
