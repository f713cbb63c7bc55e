// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// VoteChoice mirrors the wire encoding of GovernanceVotePayload's Choice
// byte.
type VoteChoice uint8

const (
	VoteYes VoteChoice = iota
	VoteNo
	VoteAbstain
)

// String returns a human-readable vote choice name.
func (c VoteChoice) String() string {
	switch c {
	case VoteYes:
		return "yes"
	case VoteNo:
		return "no"
	case VoteAbstain:
		return "abstain"
	default:
		return "unknown"
	}
}

// VoterType identifies which pool of eligible voters a vote was cast
// from. Determined by looking up the voter's ID in the live ticket pool
// or the active masternode list at the block height the vote was cast,
// never assigned arbitrarily (see DeriveVoterType).
type VoterType uint8

const (
	VoterPoS VoterType = iota
	VoterMasternode
)

// String returns a human-readable voter type name.
func (t VoterType) String() string {
	switch t {
	case VoterPoS:
		return "pos"
	case VoterMasternode:
		return "masternode"
	default:
		return "unknown"
	}
}

// Vote is a single cast ballot on a proposal (spec.md section 3,
// "GovernanceVote").
type Vote struct {
	ProposalID chainhash.Hash
	VoterID    chainhash.Hash
	Choice     VoteChoice
	Type       VoterType
}

// VoteFromPayload builds a Vote from its consensus-serialized transaction
// payload and the VoterType resolved for VoterID.
func VoteFromPayload(p *wire.GovernanceVotePayload, voterType VoterType) *Vote {
	return &Vote{
		ProposalID: p.ProposalID,
		VoterID:    p.VoterID,
		Choice:     VoteChoice(p.Choice),
		Type:       voterType,
	}
}
