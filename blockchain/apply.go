// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"

	"github.com/oxidecoin/oxided/governance"
	"github.com/oxidecoin/oxided/masternode"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/statetrie"
	"github.com/oxidecoin/oxided/wire"
)

// maxTicketPayoutScriptSize bounds decodeTicketValue's read of a ticket's
// payout script, guarding against a corrupt trie entry forcing an
// oversized allocation.
const maxTicketPayoutScriptSize = 10000

// decodeTicketValue reverses encodeTicketValue, recovering the fields a
// missed-ticket slash needs to rewrite a ticket's trie entry without
// touching its public key, purchase height, or payout script.
func decodeTicketValue(data []byte) (pubKey wire.PublicKey, purchaseHeight uint64, value int64, payoutScript []byte, ok bool) {
	const fixedSize = 32 + 8 + 8 + 1
	if len(data) < fixedSize {
		return pubKey, 0, 0, nil, false
	}
	copy(pubKey[:], data[:32])
	purchaseHeight = getUint64(data[32:40])
	value = int64(getUint64(data[40:48]))
	r := bytes.NewReader(data[fixedSize:])
	payoutScript, err := wire.ReadVarBytes(r, maxTicketPayoutScriptSize)
	if err != nil {
		return pubKey, 0, 0, nil, false
	}
	return pubKey, purchaseHeight, value, payoutScript, true
}

func getUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}

// encodeTicketValue serializes a ticket for storage under its namespaced
// trie key (spec.md section 4.5's "ticket:" namespace).
func encodeTicketValue(t *stake.Ticket) []byte {
	var buf bytes.Buffer
	buf.Write(t.PubKey[:])
	var tmp [8]byte
	putUint64(tmp[:], t.PurchaseHeight)
	buf.Write(tmp[:])
	putInt64(tmp[:], t.Value)
	buf.Write(tmp[:])
	buf.WriteByte(byte(t.Status))
	wire.WriteVarBytes(&buf, t.PayoutScript)
	return buf.Bytes()
}

// encodeMasternodeValue serializes a masternode entry for storage under
// its namespaced trie key.
func encodeMasternodeValue(e *masternode.Entry) []byte {
	var buf bytes.Buffer
	buf.Write(e.OperatorKey[:])
	var tmp [8]byte
	putInt64(tmp[:], e.CollateralAmount)
	buf.Write(tmp[:])
	buf.WriteByte(byte(e.Status))
	return buf.Bytes()
}

// encodeProposalValue serializes a proposal for storage under its
// namespaced trie key.
func encodeProposalValue(p *governance.Proposal) []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(p.Type))
	var tmp [8]byte
	putUint64(tmp[:], p.StartHeight)
	buf.Write(tmp[:])
	putUint64(tmp[:], p.EndHeight)
	buf.Write(tmp[:])
	return buf.Bytes()
}

func putUint64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * uint(i)))
	}
}

func putInt64(dst []byte, v int64) {
	putUint64(dst, uint64(v))
}

// applyBlockToTrie writes every state-trie change block's transactions
// produce into trie: UTXO creation/removal, new tickets, new or updated
// masternode entries, and new proposals (spec.md section 4.5's namespaced
// key layout). It never touches the ticket pool, masternode list, or
// governance registries directly — those are the in-memory projections
// ApplyBlock maintains separately once the recomputed root has been
// confirmed to match the header.
func applyBlockToTrie(trie *statetrie.Trie, block *wire.Block, missed []wire.TicketId, slashPct float64) {
	spent := make(map[wire.OutPoint]struct{})
	for _, tx := range block.Transactions {
		for _, in := range tx.Inputs {
			spent[in.PreviousOutPoint] = struct{}{}
		}
	}
	for _, tx := range block.Transactions {
		txHash := tx.TxHash()
		for i, out := range tx.Outputs {
			op := wire.OutPoint{Hash: txHash, Index: uint32(i)}
			if _, ok := spent[op]; ok {
				continue
			}
			if script.IsUnspendable(out.PkScript) {
				continue
			}
			var buf bytes.Buffer
			var tmp [8]byte
			putInt64(tmp[:], out.Value)
			buf.Write(tmp[:])
			wire.WriteVarBytes(&buf, out.PkScript)
			trie.Put(statetrie.EncodeUTXOKey(op), buf.Bytes())
		}
		for _, in := range tx.Inputs {
			trie.Delete(statetrie.EncodeUTXOKey(in.PreviousOutPoint))
		}

		switch tx.Type {
		case wire.TxTypeTicketPurchase:
			if tx.Ticket == nil {
				continue
			}
			pubKey, _ := script.ExtractVerifyingKey(payoutScriptOf(tx))
			t := &stake.Ticket{
				ID:             tx.Ticket.TicketID,
				PubKey:         pubKey,
				PurchaseHeight: block.Header.Height,
				Value:          ticketValueOf(tx),
				PayoutScript:   tx.Ticket.PayoutScript,
				Status:         stake.StatusPending,
			}
			trie.Put(statetrie.EncodeTicketKey(t.ID), encodeTicketValue(t))
		case wire.TxTypeMasternodeRegister:
			if len(tx.Outputs) == 0 {
				continue
			}
			id := wire.MasternodeID{Hash: txHash, Index: 0}
			operatorKey, _ := script.ExtractVerifyingKey(tx.Outputs[0].PkScript)
			e := &masternode.Entry{
				ID:               id,
				OperatorKey:      operatorKey,
				CollateralAmount: tx.Outputs[0].Value,
				Status:           masternode.StatusPending,
			}
			trie.Put(statetrie.EncodeMasternodeKey(id), encodeMasternodeValue(e))
		case wire.TxTypeMasternodeSlash:
			if tx.Slash == nil {
				continue
			}
			trie.Delete(statetrie.EncodeMasternodeKey(tx.Slash.MasternodeID))
		case wire.TxTypeGovernanceProposal:
			if tx.Proposal == nil {
				continue
			}
			p := governance.ProposalFromPayload(tx.Proposal)
			trie.Put(statetrie.EncodeProposalKey(p.ID), encodeProposalValue(p))
		}
	}

	for _, id := range missed {
		key := statetrie.EncodeTicketKey(id)
		raw, ok := trie.Get(key)
		if !ok {
			continue
		}
		pubKey, purchaseHeight, value, payoutScript, ok := decodeTicketValue(raw)
		if !ok {
			continue
		}
		burned := int64(float64(value) * slashPct)
		t := &stake.Ticket{
			ID:             id,
			PubKey:         pubKey,
			PurchaseHeight: purchaseHeight,
			Value:          value - burned,
			PayoutScript:   payoutScript,
			Status:         stake.StatusMissed,
		}
		trie.Put(key, encodeTicketValue(t))
	}
}

// payoutScriptOf returns the pay-to-verifying-key script a ticket
// purchase's stake commitment output carries, which is conventionally its
// first output.
func payoutScriptOf(tx *wire.MsgTx) []byte {
	if len(tx.Outputs) == 0 {
		return nil
	}
	return tx.Outputs[0].PkScript
}

// ticketValueOf returns the atoms a ticket purchase stakes, conventionally
// its first output's value.
func ticketValueOf(tx *wire.MsgTx) int64 {
	if len(tx.Outputs) == 0 {
		return 0
	}
	return tx.Outputs[0].Value
}

// ApplyBlock commits a block's effects to the live chain state: the state
// trie, the UTXO set, the ticket pool, the masternode list, the
// governance registries, the block-size calculator, and the tip pointer.
// Callers must have already run ValidateBlock successfully; ApplyBlock
// itself performs no further consensus checks. The state trie is written
// first; the UTXO set (the one piece of this state with its own on-disk
// store) is then committed in a single atomic batch before the ticket
// pool, masternode list, and governance registries are touched. If that
// commit fails, the trie is restored from the pre-block snapshot and the
// chain state is left as it was, so a failure here indicates a storage
// fault rather than a rejected block.
func (m *ChainManager) ApplyBlock(block *wire.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := &blockSnapshot{
		prevTip:         m.tip,
		prevHeight:      m.height,
		prevWindowStart: m.windowStartTime,
		trie:            m.Trie.Clone(),
		tickets:         m.Tickets.Clone(),
		masternodes:     m.Masternodes.Clone(),
		governance:      m.Governance.Clone(),
		block:           block,
	}

	// The voter lottery ran against the pool as it stood before this
	// block's tickets mature or expire, exactly the view ValidateBlock
	// saw; recomputing it here (rather than threading it through from the
	// caller's ValidateBlock call) follows checkStateRoot's existing
	// re-derive-rather-than-thread convention.
	prevHash := m.tip.BlockHash()
	selected, voted, _ := stake.ValidateVotes(&block.Header, prevHash, m.Tickets, block.TicketVotes, m.Params.NumVotersPerBlock, m.Params.MinValidVotes)
	missed := stake.MissedTickets(selected, voted)

	applyBlockToTrie(m.Trie, block, missed, m.Params.NonParticipationSlashPct)

	isUnspendable := func(pkScript []byte) bool { return script.IsUnspendable(pkScript) }
	if err := m.UTXO.ConnectBlock(block.Header.BlockHash(), block.Header.Height, block.Transactions, isUnspendable); err != nil {
		m.Trie = snap.trie
		return ruleError(ErrStorage, "committing block to the UTXO set failed: "+err.Error())
	}

	height := block.Header.Height
	m.Tickets.PromoteMatured(height, m.Params.PoSFinalityDepth)
	m.Tickets.ExpireStale(height, m.Params.TicketExpiry)

	for _, tx := range block.Transactions {
		switch tx.Type {
		case wire.TxTypeTicketPurchase:
			if tx.Ticket == nil {
				continue
			}
			pubKey, _ := script.ExtractVerifyingKey(payoutScriptOf(tx))
			m.Tickets.Add(&stake.Ticket{
				ID:             tx.Ticket.TicketID,
				PubKey:         pubKey,
				PurchaseHeight: height,
				Value:          ticketValueOf(tx),
				PayoutScript:   tx.Ticket.PayoutScript,
				Status:         stake.StatusPending,
			})
		case wire.TxTypeMasternodeRegister:
			if len(tx.Outputs) == 0 {
				continue
			}
			id := wire.MasternodeID{Hash: tx.TxHash(), Index: 0}
			operatorKey, _ := script.ExtractVerifyingKey(tx.Outputs[0].PkScript)
			_ = m.Masternodes.Register(id, operatorKey, tx.Outputs[0].Value, m.Params.MasternodeCollateral)
		case wire.TxTypeMasternodeSlash:
			if tx.Slash == nil {
				continue
			}
			_ = m.Masternodes.Deregister(tx.Slash.MasternodeID)
		case wire.TxTypeGovernanceProposal:
			if tx.Proposal == nil {
				continue
			}
			_ = m.Governance.AddProposal(governance.ProposalFromPayload(tx.Proposal))
		case wire.TxTypeGovernanceVote:
			if tx.Vote == nil {
				continue
			}
			voterType, known := governance.DeriveVoterType(tx.Vote.VoterID, m.Tickets, m.Masternodes)
			if !known {
				continue
			}
			_ = m.Governance.RecordVote(governance.VoteFromPayload(tx.Vote, voterType))
		case wire.TxTypeActivateProposal:
			if tx.Activation == nil {
				continue
			}
			if mutate, ok := activatableParameters[tx.Activation.Parameter]; ok {
				mutate(m.Params, tx.Activation.NewValue)
				log.Infof("activated governance parameter %q from proposal %s", tx.Activation.Parameter, tx.Activation.ProposalID)
			}
			_ = m.Governance.RemoveProposal(tx.Activation.ProposalID)
			m.Burns.Remove(tx.Activation.ProposalID)
		}
	}

	for _, voted := range block.TicketVotes {
		m.Tickets.MarkVoted(voted.TicketID)
	}
	for _, id := range missed {
		m.Tickets.MarkMissed(id)
		m.Tickets.SlashValue(id, m.Params.NonParticipationSlashPct)
	}

	m.processGovernance(height)

	m.BlockSize.AddBlockSize(uint64(block.SerializeSize()))
	m.BlockSize.RetargetAtHeight(height)

	if height%m.Params.DifficultyAdjustInterval == 0 {
		m.windowStartTime = int64(block.Header.Timestamp)
	}

	// m.mu is already held for writing; setTip would deadlock trying to
	// reacquire it, so the tip and height are updated directly here.
	m.tip = &block.Header
	m.height = height

	m.recordSnapshot(block.Header.BlockHash(), snap)
	return nil
}
