// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/governance"
	"github.com/oxidecoin/oxided/masternode"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/statetrie"
	"github.com/oxidecoin/oxided/wire"
)

// maxReorgHistory bounds the number of applied blocks RevertTip can undo.
// A reorg deeper than this cannot be serviced from in-memory undo state
// alone and requires a full rescan from the block store, which lives
// outside the Chain Manager.
const maxReorgHistory = 288

// blockSnapshot captures every piece of chain state ApplyBlock mutates,
// taken immediately before it runs, so RevertTip can restore the chain to
// exactly how it stood before that block was applied (spec.md section 5).
type blockSnapshot struct {
	prevTip         *wire.BlockHeader
	prevHeight      uint64
	prevWindowStart int64
	trie            *statetrie.Trie
	tickets         *stake.Pool
	masternodes     *masternode.List
	governance      *governance.ActiveProposals
	block           *wire.Block
}

// recordSnapshot retains snap under hash, evicting the oldest recorded
// snapshot once more than maxReorgHistory are held. The caller must
// already hold m.mu for writing.
func (m *ChainManager) recordSnapshot(hash chainhash.Hash, snap *blockSnapshot) {
	m.history[hash] = snap
	m.historyOrder = append(m.historyOrder, hash)
	if len(m.historyOrder) > maxReorgHistory {
		oldest := m.historyOrder[0]
		m.historyOrder = m.historyOrder[1:]
		delete(m.history, oldest)
	}
}

// RevertTip undoes the most recently applied block, restoring the state
// trie, UTXO set, ticket pool, masternode list, governance registry,
// retarget window start, and tip pointer to exactly what they were before
// that block was applied. It returns the reverted block's hash, or an
// error if no undo snapshot is recorded for the current tip (either the
// chain is at genesis, or the block predates the bounded undo window).
func (m *ChainManager) RevertTip() (chainhash.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tipHash := m.tip.BlockHash()
	snap, ok := m.history[tipHash]
	if !ok {
		return chainhash.Hash{}, ruleError(ErrInternal, "no undo history recorded for the current tip")
	}

	isUnspendable := func(pkScript []byte) bool { return script.IsUnspendable(pkScript) }
	if err := m.UTXO.DisconnectBlock(tipHash, snap.block.Transactions, isUnspendable); err != nil {
		return chainhash.Hash{}, ruleError(ErrStorage, "disconnecting block from the UTXO set failed: "+err.Error())
	}

	m.Trie = snap.trie
	m.Tickets = snap.tickets
	m.Masternodes = snap.masternodes
	m.Governance = snap.governance
	m.windowStartTime = snap.prevWindowStart
	m.tip = snap.prevTip
	m.height = snap.prevHeight

	delete(m.history, tipHash)
	for i, h := range m.historyOrder {
		if h == tipHash {
			m.historyOrder = append(m.historyOrder[:i], m.historyOrder[i+1:]...)
			break
		}
	}

	log.Infof("reverted block %s, tip now %d", tipHash, m.height)
	return tipHash, nil
}

// ProcessBlock validates block against the current tip and, on success,
// applies it, extending the chain by one block. It is the entry point for
// ordinary, non-reorganizing block acceptance: block must build directly
// on the current tip. Call Reorganize instead when a competing branch
// overtakes the current tip.
func (m *ChainManager) ProcessBlock(block *wire.Block, medianTimePast, futureTimeNow int64) error {
	parent, _ := m.Tip()
	if err := m.ValidateBlock(block, &parent, medianTimePast, futureTimeNow); err != nil {
		return err
	}
	return m.ApplyBlock(block)
}

// Reorganize switches the active chain to a competing branch: it reverts
// blocks from the current tip down to forkHeight (exclusive) in reverse
// order, then validates and applies newBranch's blocks in order, exactly
// spec.md section 5's "revert to the common ancestor, then apply the
// competing branch" procedure. medianTimesPast supplies each newBranch
// block's median-time-past (the caller's block index retains the header
// history needed to compute it); futureTimeNow is the validator's single
// view of current wall-clock time, shared across every block in the
// branch. If a block in newBranch fails validation or application, the
// chain is left at the last successfully applied block, which is always
// at or past forkHeight, never below it.
func (m *ChainManager) Reorganize(forkHeight uint64, newBranch []*wire.Block, medianTimesPast []int64, futureTimeNow int64) error {
	if len(newBranch) != len(medianTimesPast) {
		return ruleError(ErrInternal, "reorganize: newBranch and medianTimesPast length mismatch")
	}

	for {
		_, height := m.Tip()
		if height <= forkHeight {
			break
		}
		if _, err := m.RevertTip(); err != nil {
			return err
		}
	}

	for i, block := range newBranch {
		parent, _ := m.Tip()
		if err := m.ValidateBlock(block, &parent, medianTimesPast[i], futureTimeNow); err != nil {
			return err
		}
		if err := m.ApplyBlock(block); err != nil {
			return err
		}
	}
	return nil
}
