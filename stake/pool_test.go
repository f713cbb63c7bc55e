// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"testing"

	"github.com/oxidecoin/oxided/wire"
)

func ticketID(b byte) wire.TicketId {
	var id wire.TicketId
	for i := range id {
		id[i] = b
	}
	return id
}

func TestPromoteMaturedTransitionsPendingToLive(t *testing.T) {
	p := NewPool()
	p.Add(&Ticket{ID: ticketID(1), PurchaseHeight: 10, Status: StatusPending})

	if promoted := p.PromoteMatured(25, 16); len(promoted) != 0 {
		t.Fatalf("expected no promotions before finality depth, got %v", promoted)
	}
	promoted := p.PromoteMatured(26, 16)
	if len(promoted) != 1 || promoted[0] != ticketID(1) {
		t.Fatalf("expected ticket 1 promoted at height 26, got %v", promoted)
	}

	tk, _ := p.Get(ticketID(1))
	if tk.Status != StatusLive {
		t.Errorf("expected ticket to be Live, got %v", tk.Status)
	}
}

func TestExpireStaleTransitionsLiveToExpired(t *testing.T) {
	p := NewPool()
	p.Add(&Ticket{ID: ticketID(1), PurchaseHeight: 0, Status: StatusLive})

	if expired := p.ExpireStale(255, 256); len(expired) != 0 {
		t.Fatalf("expected no expiry one block before ticket_expiry, got %v", expired)
	}
	expired := p.ExpireStale(256, 256)
	if len(expired) != 1 || expired[0] != ticketID(1) {
		t.Fatalf("expected ticket 1 expired exactly at ticket_expiry height, got %v", expired)
	}
}

func TestLiveTicketIDsSortedOnlyIncludesLive(t *testing.T) {
	p := NewPool()
	p.Add(&Ticket{ID: ticketID(3), Status: StatusLive})
	p.Add(&Ticket{ID: ticketID(1), Status: StatusLive})
	p.Add(&Ticket{ID: ticketID(2), Status: StatusPending})

	ids := p.LiveTicketIDsSorted()
	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}
	if ids[0] != ticketID(1) || ids[1] != ticketID(3) {
		t.Errorf("expected ascending byte order [1,3], got %v", ids)
	}
}

func TestMarkVotedAndMissedOnlyAffectLiveTickets(t *testing.T) {
	p := NewPool()
	p.Add(&Ticket{ID: ticketID(1), Status: StatusLive})
	p.Add(&Ticket{ID: ticketID(2), Status: StatusPending})

	p.MarkVoted(ticketID(1))
	p.MarkMissed(ticketID(2))

	t1, _ := p.Get(ticketID(1))
	t2, _ := p.Get(ticketID(2))
	if t1.Status != StatusVoted {
		t.Errorf("expected ticket 1 Voted, got %v", t1.Status)
	}
	if t2.Status != StatusPending {
		t.Errorf("expected ticket 2 unaffected (not Live), got %v", t2.Status)
	}
}
