// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import "github.com/oxidecoin/oxided/chainhash"

// Outcome is the result of tallying a proposal's votes (spec.md section
// 4.8), corresponding to rusty-core's ProposalOutcome enum with Passed
// renamed Approved and its string-carrying Rejected{reason} variant split
// into the two distinct rejection reasons spec.md names.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeApproved
	OutcomeRejected
	OutcomeInsufficientParticipation
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in-progress"
	case OutcomeApproved:
		return "approved"
	case OutcomeRejected:
		return "rejected"
	case OutcomeInsufficientParticipation:
		return "insufficient-participation"
	default:
		return "unknown"
	}
}

// TallyParams supplies the chain parameters Tally needs, satisfied by
// *chaincfg.Params via chaincfg/adapters.go.
type TallyParams interface {
	GovernanceGracePeriodBlocks() uint64
	GovernanceQuorumPctValue() float64
}

// Tally evaluates a proposal's votes at currentHeight against
// totalVotingPower, the sum of every live ticket's and active
// masternode's voting weight at the proposal's end height (spec.md
// section 4.8). It returns InProgress until the proposal's end height
// plus the governance grace period has elapsed, InsufficientParticipation
// if fewer than GovernanceQuorumPctValue of total voting power voted, and
// otherwise Approved or Rejected depending on whether the share of
// decisive (yes vs no) votes that were "yes" meets the proposal type's
// approval threshold.
func Tally(proposal *Proposal, votes map[chainhash.Hash]*Vote, currentHeight uint64, totalVotingPower int64, params TallyParams) Outcome {
	if currentHeight < proposal.EndHeight+params.GovernanceGracePeriodBlocks() {
		return OutcomeInProgress
	}

	var yes, no, abstain int64
	for _, v := range votes {
		switch v.Choice {
		case VoteYes:
			yes++
		case VoteNo:
			no++
		case VoteAbstain:
			abstain++
		}
	}

	if totalVotingPower <= 0 {
		return OutcomeInsufficientParticipation
	}
	participation := float64(yes+no+abstain) / float64(totalVotingPower)
	if participation < params.GovernanceQuorumPctValue() {
		return OutcomeInsufficientParticipation
	}

	decisive := yes + no
	if decisive == 0 {
		return OutcomeRejected
	}
	approval := float64(yes) / float64(decisive)
	if approval >= proposal.Type.ApprovalThreshold() {
		return OutcomeApproved
	}
	return OutcomeRejected
}
