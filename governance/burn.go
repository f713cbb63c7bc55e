// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"sync"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/wire"
)

// burnMarker tags the unspendable output a rejected or under-quorum
// proposal's staked deposit is burned into.
var burnMarker = []byte("GOVR")

// BuildBurnTx spends a proposal's staked deposit entirely into an
// unspendable output, forfeiting it (spec.md section 4.8: a Rejected or
// InsufficientParticipation outcome burns the proposer's stake).
func BuildBurnTx(proposal *Proposal) *wire.MsgTx {
	return &wire.MsgTx{
		Type: wire.TxTypeStandard,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: proposal.ProposerPayout,
		}},
		Outputs: []*wire.TxOut{{
			Value:    proposal.StakedAmount,
			PkScript: script.UnspendableDataScript(burnMarker),
		}},
		Witness: [][]byte{{}},
	}
}

// BurnScheduler tracks which rejected proposals have a burn transaction
// pending, so that scheduling the same proposal's burn more than once
// (once per block it remains in view before being removed from
// ActiveProposals, for instance) never produces more than one pending
// burn.
type BurnScheduler struct {
	mu      sync.Mutex
	pending map[chainhash.Hash]*wire.MsgTx
}

// NewBurnScheduler returns an empty burn scheduler.
func NewBurnScheduler() *BurnScheduler {
	return &BurnScheduler{pending: make(map[chainhash.Hash]*wire.MsgTx)}
}

// Schedule records proposal's burn transaction as pending and returns it.
// Calling Schedule again for the same proposal ID is a no-op that returns
// the transaction built on the first call.
func (s *BurnScheduler) Schedule(proposal *Proposal) *wire.MsgTx {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx, ok := s.pending[proposal.ID]; ok {
		return tx
	}
	tx := BuildBurnTx(proposal)
	s.pending[proposal.ID] = tx
	return tx
}

// Pending returns every burn transaction still awaiting inclusion in a
// block.
func (s *BurnScheduler) Pending() []*wire.MsgTx {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*wire.MsgTx, 0, len(s.pending))
	for _, tx := range s.pending {
		out = append(out, tx)
	}
	return out
}

// Remove drops a proposal's pending burn once its transaction has been
// mined.
func (s *BurnScheduler) Remove(proposalID chainhash.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, proposalID)
}

// Count returns the number of burns currently pending.
func (s *BurnScheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
