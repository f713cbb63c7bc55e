// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"testing"

	"github.com/oxidecoin/oxided/script"
)

// TestBurnSchedulerIsIdempotent mirrors the scenario of a Rejected
// proposal being scheduled for its stake burn twice (once per block it
// remains visible before removal, say) and expects exactly one pending
// burn to result.
func TestBurnSchedulerIsIdempotent(t *testing.T) {
	s := NewBurnScheduler()
	p := &Proposal{ID: proposalID(1), StakedAmount: 5_000_000_000}

	first := s.Schedule(p)
	second := s.Schedule(p)

	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 after scheduling the same proposal twice", s.Count())
	}
	if first != second {
		t.Error("expected the second Schedule call to return the same transaction as the first")
	}
}

func TestBuildBurnTxBurnsTheEntireStake(t *testing.T) {
	p := &Proposal{ID: proposalID(1), StakedAmount: 5_000_000_000}
	tx := BuildBurnTx(p)

	if len(tx.Outputs) != 1 {
		t.Fatalf("len(Outputs) = %d, want 1", len(tx.Outputs))
	}
	if tx.Outputs[0].Value != p.StakedAmount {
		t.Errorf("burned = %d, want %d", tx.Outputs[0].Value, p.StakedAmount)
	}
	if !script.IsUnspendable(tx.Outputs[0].PkScript) {
		t.Error("expected the burn output to be unspendable")
	}
}

func TestBurnSchedulerRemove(t *testing.T) {
	s := NewBurnScheduler()
	p := &Proposal{ID: proposalID(1), StakedAmount: 1}
	s.Schedule(p)
	s.Remove(p.ID)
	if s.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after Remove", s.Count())
	}
}
