// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance tracks on-chain proposals, tallies votes, and
// schedules the stake burns and ParameterChange activations their
// outcomes trigger (spec.md section 4.8), grounded on
// rusty-core/src/consensus/governance_state.rs's ActiveProposals and
// evaluate_proposal_at_height.
package governance

import (
	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// ProposalType mirrors the wire encoding of GovernanceProposalPayload's
// ProposalType byte and determines which approval threshold a proposal
// must clear (spec.md section 4.8).
type ProposalType uint8

const (
	ProposalTypeProtocolUpgrade ProposalType = iota
	ProposalTypeTreasurySpend
	ProposalTypeParameterChange
	ProposalTypeOther
)

// String returns a human-readable proposal type name.
func (t ProposalType) String() string {
	switch t {
	case ProposalTypeProtocolUpgrade:
		return "protocol-upgrade"
	case ProposalTypeTreasurySpend:
		return "treasury-spend"
	case ProposalTypeParameterChange:
		return "parameter-change"
	default:
		return "other"
	}
}

// ApprovalThreshold returns the fraction of decisive (yes+no) votes a
// proposal of this type must receive as "yes" to pass (spec.md section
// 4.8).
func (t ProposalType) ApprovalThreshold() float64 {
	switch t {
	case ProposalTypeProtocolUpgrade:
		return 0.75
	case ProposalTypeTreasurySpend:
		return 0.66
	case ProposalTypeParameterChange:
		return 0.60
	default:
		return 0.60
	}
}

// Proposal is an on-chain governance proposal (spec.md section 3,
// "GovernanceProposal").
type Proposal struct {
	ID             chainhash.Hash
	Type           ProposalType
	StartHeight    uint64
	EndHeight      uint64
	ProposerPayout wire.OutPoint
	StakedAmount   int64
}

// ProposalFromPayload builds a Proposal from the consensus-serialized
// transaction payload that created it.
func ProposalFromPayload(p *wire.GovernanceProposalPayload) *Proposal {
	return &Proposal{
		ID:             p.ProposalID,
		Type:           ProposalType(p.ProposalType),
		StartHeight:    p.StartHeight,
		EndHeight:      p.EndHeight,
		ProposerPayout: p.ProposerPayout,
		StakedAmount:   p.StakedAmount,
	}
}
