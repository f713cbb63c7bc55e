// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"

	"github.com/oxidecoin/oxided/blockchain/standalone"
	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/oxidutil"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/utxoset"
	"github.com/oxidecoin/oxided/wire"
)

// ValidateBlock checks a candidate block against the chain tip in the
// order fixed by spec.md section 4.4: each step must pass before the next
// runs, and any failure rejects the block without mutating state.
// medianTimePast is the median of the most recent MedianTimeBlocks
// headers' timestamps and futureTimeNow is the validator's view of
// current wall-clock time, both supplied by the caller since the Chain
// Manager does not itself retain a header history beyond the tip.
func (m *ChainManager) ValidateBlock(block *wire.Block, parent *wire.BlockHeader, medianTimePast, futureTimeNow int64) error {
	header := &block.Header

	if err := checkHeaderTimestamp(header, medianTimePast, futureTimeNow, m.Params.MaxFutureBlockTime.Seconds()); err != nil {
		return err
	}
	if header.Height != parent.Height+1 {
		return ruleError(ErrBlockValidation, "block height does not follow its parent")
	}
	if header.PrevHash != parent.BlockHash() {
		return ruleError(ErrBlockValidation, "block does not build on the supplied parent")
	}

	if err := m.checkProofOfWork(header); err != nil {
		return err
	}

	diffParams := &standalone.DifficultyParams{
		MaxDiffTarget:            standalone.CompactToBig(m.Params.MaxDifficultyTarget),
		TargetTimespanSecs:       int64(m.Params.TargetBlockTime.Seconds()) * int64(m.Params.DifficultyAdjustInterval),
		DifficultyAdjustInterval: int64(m.Params.DifficultyAdjustInterval),
	}
	if err := checkDifficultyTarget(header, parent, diffParams, m.windowStartTime, m.Params.DifficultyAdjustInterval); err != nil {
		return err
	}

	if err := m.checkBlockSize(block); err != nil {
		return err
	}

	if err := m.checkCoinbase(block); err != nil {
		return err
	}

	if header.MerkleRoot != block.ComputeMerkleRoot() {
		return ruleError(ErrBlockValidation, "merkle root does not match the block's transactions")
	}

	if err := m.checkTransactions(block); err != nil {
		return err
	}

	selected, voted, err := stake.ValidateVotes(header, parent.BlockHash(), m.Tickets, block.TicketVotes, m.Params.NumVotersPerBlock, m.Params.MinValidVotes)
	if err != nil {
		return err
	}
	missed := stake.MissedTickets(selected, voted)

	if err := m.checkStateRoot(block, missed); err != nil {
		return err
	}

	return nil
}

// checkHeaderTimestamp enforces spec.md section 4.4 step 1's timestamp
// bounds: strictly after the median time of the last MedianTimeBlocks
// headers, and no more than maxFutureDriftSecs ahead of the validator's
// own clock.
func checkHeaderTimestamp(header *wire.BlockHeader, medianTimePast, now int64, maxFutureDriftSecs float64) error {
	if int64(header.Timestamp) <= medianTimePast {
		return ruleError(ErrBlockValidation, "block timestamp is not after the median time of recent blocks")
	}
	if int64(header.Timestamp) > now+int64(maxFutureDriftSecs) {
		return ruleError(ErrBlockValidation, "block timestamp is too far in the future")
	}
	return nil
}

// checkBlockSize enforces spec.md section 4.4 step 4: serialized size and
// sigop count against the adaptive limits the Calculator tracks.
func (m *ChainManager) checkBlockSize(block *wire.Block) error {
	size := uint64(block.SerializeSize())
	if size > m.BlockSize.CurrentMaxSize() {
		return ruleError(ErrBlockValidation, "serialized block size exceeds the adaptive maximum")
	}
	var sigOps uint64
	for _, tx := range block.Transactions {
		for _, out := range tx.Outputs {
			if !script.IsUnspendable(out.PkScript) {
				sigOps++
			}
		}
	}
	if sigOps > m.BlockSize.MaxSigOps() {
		return ruleError(ErrBlockValidation, "block sigop count exceeds its budget")
	}
	return nil
}

// checkCoinbase enforces spec.md section 4.4 step 5: exactly one
// Coinbase transaction, first in the list, whose reward does not exceed
// the subsidy plus collected fees plus the PoS-reward portion.
func (m *ChainManager) checkCoinbase(block *wire.Block) error {
	if len(block.Transactions) == 0 || !block.Transactions[0].IsCoinbase() {
		return ruleError(ErrBlockValidation, "block's first transaction is not a coinbase")
	}
	for _, tx := range block.Transactions[1:] {
		if tx.IsCoinbase() {
			return ruleError(ErrBlockValidation, "block contains more than one coinbase transaction")
		}
	}

	coinbase := block.Transactions[0]
	height := int64(block.Header.Height)
	workSubsidy := standalone.CalcWorkSubsidy(height, m.Params)
	stakeSubsidy := standalone.CalcStakeSubsidyTotal(height, m.Params)

	var fees int64
	for _, tx := range block.Transactions[1:] {
		fees += tx.Fee
	}

	maxReward := workSubsidy + stakeSubsidy + fees
	if coinbase.TotalOut() > maxReward {
		return ruleError(ErrBlockValidation, "coinbase reward exceeds subsidy plus fees plus PoS-reward portion")
	}
	log.Debugf("block %d coinbase reward %s within subsidy budget %s", height,
		oxidutil.Amount(coinbase.TotalOut()), oxidutil.Amount(maxReward))
	return nil
}

// checkTransactions enforces spec.md section 4.4 step 7: every
// non-coinbase transaction resolves its inputs, balances value, respects
// the dust limit, verifies its signatures, and respects coinbase
// maturity. Inputs may resolve against an earlier output created within
// this same block (no intra-block double-spend is permitted, but a later
// transaction may spend an earlier one's output).
func (m *ChainManager) checkTransactions(block *wire.Block) error {
	spentWithinBlock := make(map[wire.OutPoint]struct{})
	createdWithinBlock := make(map[wire.OutPoint]*wire.TxOut)

	for txIdx, tx := range block.Transactions {
		txHash := tx.TxHash()
		for i, out := range tx.Outputs {
			createdWithinBlock[wire.OutPoint{Hash: txHash, Index: uint32(i)}] = out
		}
		if txIdx == 0 {
			continue // coinbase already checked separately
		}

		var totalIn, totalOut int64
		for i, in := range tx.Inputs {
			if _, ok := spentWithinBlock[in.PreviousOutPoint]; ok {
				return ruleError(ErrTxValidation, "transaction double-spends an output already spent earlier in this block")
			}
			spentWithinBlock[in.PreviousOutPoint] = struct{}{}

			prevOut, isCoinbaseOutput, spendHeight, err := m.resolveOutput(in.PreviousOutPoint, createdWithinBlock)
			if err != nil {
				return err
			}
			if isCoinbaseOutput && block.Header.Height < spendHeight+m.Params.CoinbaseMaturity {
				return ruleError(ErrCoinbaseMaturity, "transaction spends a coinbase output before it has matured")
			}
			totalIn += prevOut.Value

			if !verifyInputSignature(tx, i, prevOut) {
				return ruleError(ErrInvalidSignature, "transaction input signature does not verify")
			}
		}
		for _, out := range tx.Outputs {
			if out.Value < m.Params.DustLimit && !script.IsUnspendable(out.PkScript) {
				return ruleError(ErrDustLimit, "transaction output is below the dust limit")
			}
			totalOut += out.Value
		}
		fee := totalIn - totalOut
		if fee < 0 {
			return ruleError(ErrTxValidation, "transaction outputs exceed its inputs")
		}
	}
	return nil
}

// resolveOutput finds a previous output either among this block's earlier
// transactions or in the committed UTXO set, returning its TxOut, whether
// it was a coinbase output, and the height it was created at.
func (m *ChainManager) resolveOutput(op wire.OutPoint, createdWithinBlock map[wire.OutPoint]*wire.TxOut) (*wire.TxOut, bool, uint64, error) {
	if out, ok := createdWithinBlock[op]; ok {
		return out, false, 0, nil
	}
	entry, err := m.UTXO.FetchEntry(op)
	if err == utxoset.ErrNotFound {
		return nil, false, 0, ruleError(ErrMissingPreviousOutput, "transaction spends an output not present in the UTXO set: "+op.String())
	}
	if err != nil {
		return nil, false, 0, ruleError(ErrStorage, "reading the UTXO set failed: "+err.Error())
	}
	return &wire.TxOut{Value: entry.Value, PkScript: entry.PkScript}, entry.IsCoinbase, entry.BlockHeight, nil
}

// txSigHash returns the message a transaction input's signature commits
// to: the transaction serialized with every input's SignatureScript
// cleared, so a signature never needs to commit to its own bytes.
func txSigHash(tx *wire.MsgTx) chainhash.Hash {
	clone := *tx
	clone.Inputs = make([]*wire.TxIn, len(tx.Inputs))
	for i, in := range tx.Inputs {
		cp := *in
		cp.SignatureScript = nil
		clone.Inputs[i] = &cp
	}
	var buf bytes.Buffer
	clone.Serialize(&buf)
	return chainhash.Hash256(buf.Bytes())
}

// verifyInputSignature checks that inputs[idx]'s SignatureScript is a
// valid Ed25519 signature, under prevOut's pay-to-verifying-key script,
// over tx's signature hash.
func verifyInputSignature(tx *wire.MsgTx, idx int, prevOut *wire.TxOut) bool {
	in := tx.Inputs[idx]
	if len(in.SignatureScript) != wire.SignatureSize {
		return false
	}
	var sig wire.Signature
	copy(sig[:], in.SignatureScript)
	hash := txSigHash(tx)
	return script.CheckSignature(prevOut.PkScript, hash[:], sig)
}

// checkStateRoot enforces spec.md section 4.4 step 9: tentatively applying
// the block's state changes to a clone of the trie must yield the
// header's declared state root. The clone is independent of m.Trie (see
// Trie.Clone), so a block that fails this check, or any step after it,
// leaves the live trie untouched. ApplyBlock performs the same derivation
// directly against the live trie, once every validation step has already
// passed.
func (m *ChainManager) checkStateRoot(block *wire.Block, missed []wire.TicketId) error {
	scratch := m.Trie.Clone()
	applyBlockToTrie(scratch, block, missed, m.Params.NonParticipationSlashPct)
	if scratch.RootHash() != block.Header.StateRoot {
		return ruleError(ErrBlockValidation, "recomputed state root does not match the header")
	}
	return nil
}
