// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statetrie

import (
	"encoding/binary"
	"fmt"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// ProofType discriminates the kind of state a proof attests to, mirroring
// the namespaces the trie's keys are partitioned into (spec.md section
// 4.5).
type ProofType string

// These constants name every proof type ProofManager can produce.
const (
	ProofTypeUTXO        ProofType = "utxo"
	ProofTypeTicket      ProofType = "ticket"
	ProofTypeMasternode  ProofType = "masternode"
	ProofTypeGovernance  ProofType = "proposal"
	ProofTypeBatch       ProofType = "batch"
	ProofTypeRange       ProofType = "range"
)

// ProofConfig bounds the cost of proof generation and verification: batch
// proofs cover at most MaxBatchSize keys, range proofs at most
// MaxRangeSize entries (spec.md section 4.5).
type ProofConfig struct {
	MaxBatchSize int
	MaxRangeSize int
}

// DefaultProofConfig returns the production proof-size limits.
func DefaultProofConfig() ProofConfig {
	return ProofConfig{MaxBatchSize: 100, MaxRangeSize: 1000}
}

// ProofManager generates and verifies state proofs for light clients over
// a single trie, namespacing every key by the kind of record it commits
// (UTXO, ticket, masternode, or governance proposal).
type ProofManager struct {
	config ProofConfig
	trie   *Trie
}

// NewProofManager returns a ProofManager over trie.
func NewProofManager(config ProofConfig, trie *Trie) *ProofManager {
	return &ProofManager{config: config, trie: trie}
}

// EncodeUTXOKey returns the namespaced trie key for a transaction output.
func EncodeUTXOKey(op wire.OutPoint) []byte {
	key := make([]byte, 0, 5+chainhash.HashSize+4)
	key = append(key, "utxo:"...)
	key = append(key, op.Hash[:]...)
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], op.Index)
	key = append(key, idx[:]...)
	return key
}

// EncodeTicketKey returns the namespaced trie key for a ticket.
func EncodeTicketKey(ticketID wire.TicketId) []byte {
	key := make([]byte, 0, 7+chainhash.HashSize)
	key = append(key, "ticket:"...)
	key = append(key, ticketID[:]...)
	return key
}

// EncodeMasternodeKey returns the namespaced trie key for a masternode,
// identified by its collateral outpoint.
func EncodeMasternodeKey(id wire.MasternodeID) []byte {
	key := make([]byte, 0, 11+chainhash.HashSize+4)
	key = append(key, "masternode:"...)
	key = append(key, id.Hash[:]...)
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], id.Index)
	key = append(key, idx[:]...)
	return key
}

// EncodeProposalKey returns the namespaced trie key for a governance
// proposal.
func EncodeProposalKey(proposalID chainhash.Hash) []byte {
	key := make([]byte, 0, 9+chainhash.HashSize)
	key = append(key, "proposal:"...)
	key = append(key, proposalID[:]...)
	return key
}

// GenerateUTXOProof returns a proof of op's presence or absence.
func (m *ProofManager) GenerateUTXOProof(op wire.OutPoint) (Proof, bool, []byte) {
	return m.trie.GenerateProof(EncodeUTXOKey(op))
}

// GenerateUTXOBatchProof returns a batch proof for outpoints, erroring if
// it would exceed the configured maximum batch size.
func (m *ProofManager) GenerateUTXOBatchProof(outpoints []wire.OutPoint) (BatchProof, error) {
	if len(outpoints) > m.config.MaxBatchSize {
		return BatchProof{}, fmt.Errorf("statetrie: batch size %d exceeds maximum %d",
			len(outpoints), m.config.MaxBatchSize)
	}
	keys := make([][]byte, len(outpoints))
	for i, op := range outpoints {
		keys[i] = EncodeUTXOKey(op)
	}
	return m.trie.GenerateBatchProof(keys), nil
}

// GenerateTicketProof returns a proof of ticketID's presence or absence.
func (m *ProofManager) GenerateTicketProof(ticketID wire.TicketId) (Proof, bool, []byte) {
	return m.trie.GenerateProof(EncodeTicketKey(ticketID))
}

// GenerateMasternodeProof returns a proof of id's presence or absence.
func (m *ProofManager) GenerateMasternodeProof(id wire.MasternodeID) (Proof, bool, []byte) {
	return m.trie.GenerateProof(EncodeMasternodeKey(id))
}

// GenerateGovernanceProof returns a proof of proposalID's presence or
// absence.
func (m *ProofManager) GenerateGovernanceProof(proposalID chainhash.Hash) (Proof, bool, []byte) {
	return m.trie.GenerateProof(EncodeProposalKey(proposalID))
}

// GenerateUTXORangeProof returns a range proof over UTXO keys in
// [start, end), erroring if the result would exceed the configured maximum
// range size.
func (m *ProofManager) GenerateUTXORangeProof(start, end wire.OutPoint) (RangeProof, error) {
	rp := m.trie.GenerateRangeProof(EncodeUTXOKey(start), EncodeUTXOKey(end), m.config.MaxRangeSize+1)
	if len(rp.Entries) > m.config.MaxRangeSize {
		return RangeProof{}, fmt.Errorf("statetrie: range size %d exceeds maximum %d",
			len(rp.Entries), m.config.MaxRangeSize)
	}
	return rp, nil
}

// RootHash returns the manager's underlying trie's current state root.
func (m *ProofManager) RootHash() chainhash.Hash {
	return m.trie.RootHash()
}
