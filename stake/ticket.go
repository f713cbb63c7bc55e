// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stake implements the ticket-based Proof-of-Stake engine: the
// live tickets pool, ticket price retargeting, the deterministic voter
// lottery, and vote/quorum validation (spec.md section 4.6). It is
// grounded on rusty-core's consensus/pos.rs, generalized from that file's
// free functions and HashMap-backed pool into a package with an explicit
// RuleError convention matching the rest of this module.
package stake

import (
	"github.com/oxidecoin/oxided/wire"
)

// Status is a ticket's position in its lifecycle (spec.md section 4.4):
// Pending at purchase, promoted to Live after PoSFinalityDepth blocks,
// consumed into Voted when selected and signed, Missed if selected and
// not signed, or Expired after TicketExpiry blocks.
type Status uint8

const (
	StatusPending Status = iota
	StatusLive
	StatusVoted
	StatusMissed
	StatusExpired
)

// String returns a human-readable ticket status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLive:
		return "live"
	case StatusVoted:
		return "voted"
	case StatusMissed:
		return "missed"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Ticket is a single PoS ticket (spec.md section 3, "Ticket").
type Ticket struct {
	ID             wire.TicketId
	PubKey         wire.PublicKey
	PurchaseHeight uint64
	Value          int64
	PayoutScript   []byte
	Status         Status
}

// IsLive reports whether t is eligible for the voter lottery: past its
// finality depth and before expiry.
func (t *Ticket) IsLive() bool {
	return t.Status == StatusLive
}
