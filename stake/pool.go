// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"sort"
	"sync"

	"github.com/oxidecoin/oxided/wire"
)

// Pool tracks every ticket known to the chain at the current tip, keyed by
// TicketId, across its full lifecycle. rusty-core's LiveTicketsPool holds
// only Live tickets in its HashMap; this type widens that to the full
// Pending/Live/Voted/Missed/Expired lifecycle so the Chain Manager has a
// single place to query ticket state, while LiveTicketIDsSorted reproduces
// the Rust pool's get_ticket_ids_sorted for the lottery.
type Pool struct {
	mu      sync.RWMutex
	tickets map[wire.TicketId]*Ticket
}

// NewPool returns an empty ticket pool.
func NewPool() *Pool {
	return &Pool{tickets: make(map[wire.TicketId]*Ticket)}
}

// Add inserts t, keyed by its ID. It is the caller's responsibility to
// ensure t.ID is not already present; Add overwrites silently, matching
// the underlying map semantics, since duplicate TicketIds are a
// transaction-validation concern (a TicketId is derived from a purchase
// output and therefore already unique) rather than a pool concern.
func (p *Pool) Add(t *Ticket) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tickets[t.ID] = t
}

// Get returns the ticket with the given ID, if known.
func (p *Pool) Get(id wire.TicketId) (*Ticket, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.tickets[id]
	return t, ok
}

// Remove deletes the ticket with the given ID, if present.
func (p *Pool) Remove(id wire.TicketId) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.tickets, id)
}

// Count returns the number of tickets tracked in any status.
func (p *Pool) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.tickets)
}

// LiveCount returns the number of tickets in the Live status, the
// quantity the ticket price retarget averages over time (spec.md section
// 4.6, "Ticket price retarget").
func (p *Pool) LiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, t := range p.tickets {
		if t.Status == StatusLive {
			n++
		}
	}
	return n
}

// LiveTicketIDsSorted returns every Live ticket's ID, sorted ascending by
// byte order, mirroring rusty-core's LiveTicketsPool::get_ticket_ids_sorted.
func (p *Pool) LiveTicketIDsSorted() []wire.TicketId {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]wire.TicketId, 0, len(p.tickets))
	for id, t := range p.tickets {
		if t.Status == StatusLive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return compareTicketIDs(ids[i], ids[j]) < 0
	})
	return ids
}

func compareTicketIDs(a, b wire.TicketId) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// PromoteMatured transitions every Pending ticket purchased at or before
// height-finalityDepth to Live, returning the promoted IDs (spec.md
// section 4.6, "Promoted from Pending at height >= purchase_height +
// POS_FINALITY_DEPTH").
func (p *Pool) PromoteMatured(height, finalityDepth uint64) []wire.TicketId {
	p.mu.Lock()
	defer p.mu.Unlock()
	var promoted []wire.TicketId
	for id, t := range p.tickets {
		if t.Status == StatusPending && height >= t.PurchaseHeight+finalityDepth {
			t.Status = StatusLive
			promoted = append(promoted, id)
		}
	}
	return promoted
}

// ExpireStale transitions every Live ticket purchased at or before
// height-ticketExpiry to Expired, returning the expired IDs (spec.md
// section 4.6, "Expired at height >= purchase_height + ticket_expiry").
func (p *Pool) ExpireStale(height, ticketExpiry uint64) []wire.TicketId {
	p.mu.Lock()
	defer p.mu.Unlock()
	var expired []wire.TicketId
	for id, t := range p.tickets {
		if t.Status == StatusLive && height >= t.PurchaseHeight+ticketExpiry {
			t.Status = StatusExpired
			expired = append(expired, id)
		}
	}
	return expired
}

// MarkVoted transitions the given Live ticket to Voted. It is a no-op if
// id is unknown or not Live.
func (p *Pool) MarkVoted(id wire.TicketId) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tickets[id]; ok && t.Status == StatusLive {
		t.Status = StatusVoted
	}
}

// MarkMissed transitions the given Live ticket to Missed. It is a no-op if
// id is unknown or not Live.
func (p *Pool) MarkMissed(id wire.TicketId) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tickets[id]; ok && t.Status == StatusLive {
		t.Status = StatusMissed
	}
}

// SlashValue reduces a ticket's locked value by fraction, returning the
// amount burned. Called once a ticket has already been transitioned to
// Missed by MarkMissed (spec.md section 4.6, "Missed tickets ... are
// slashed 10% of locked value"); it is a no-op, returning 0, if id is
// unknown.
func (p *Pool) SlashValue(id wire.TicketId, fraction float64) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.tickets[id]
	if !ok {
		return 0
	}
	burned := int64(float64(t.Value) * fraction)
	t.Value -= burned
	return burned
}

// Clone returns a deep copy of the pool, letting the Chain Manager
// snapshot ticket state before applying a block so a later reorg can
// restore it exactly (mirrors statetrie.Trie.Clone's role in the same
// undo path).
func (p *Pool) Clone() *Pool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := NewPool()
	for id, t := range p.tickets {
		cp := *t
		cp.PayoutScript = append([]byte(nil), t.PayoutScript...)
		out.tickets[id] = &cp
	}
	return out
}
