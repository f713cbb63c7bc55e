// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
)

type mockTallyParams struct {
	gracePeriod uint64
	quorumPct   float64
}

func (p mockTallyParams) GovernanceGracePeriodBlocks() uint64 { return p.gracePeriod }
func (p mockTallyParams) GovernanceQuorumPctValue() float64   { return p.quorumPct }

func defaultMockTallyParams() mockTallyParams {
	return mockTallyParams{gracePeriod: 0, quorumPct: 0.33}
}

func votersCast(n int, choice VoteChoice) map[chainhash.Hash]*Vote {
	votes := make(map[chainhash.Hash]*Vote, n)
	for i := 0; i < n; i++ {
		var id chainhash.Hash
		id[0] = byte(i + 1)
		votes[id] = &Vote{VoterID: id, Choice: choice}
	}
	return votes
}

// TestTallyRejectsBelowThreshold mirrors the scenario of a
// ProtocolUpgrade proposal with total voting power 200 receiving 60 yes
// votes and 40 no votes: participation is 0.50 (above the 0.33 quorum)
// but approval is 0.60, short of the 0.75 threshold ProtocolUpgrade
// requires.
func TestTallyRejectsBelowThreshold(t *testing.T) {
	proposal := &Proposal{Type: ProposalTypeProtocolUpgrade, EndHeight: 1000}
	votes := votersCast(60, VoteYes)
	for id, v := range votersCast(40, VoteNo) {
		id[31] = 0xFF // keep voter IDs distinct from the yes-voters above
		votes[id] = v
	}

	outcome := Tally(proposal, votes, 1000, 200, defaultMockTallyParams())
	if outcome != OutcomeRejected {
		t.Fatalf("Tally() = %v, want Rejected", outcome)
	}
}

func TestTallyApprovesAboveThreshold(t *testing.T) {
	proposal := &Proposal{Type: ProposalTypeParameterChange, EndHeight: 1000}
	votes := votersCast(70, VoteYes)
	for id, v := range votersCast(30, VoteNo) {
		id[31] = 0xFF
		votes[id] = v
	}

	outcome := Tally(proposal, votes, 1000, 100, defaultMockTallyParams())
	if outcome != OutcomeApproved {
		t.Fatalf("Tally() = %v, want Approved", outcome)
	}
}

func TestTallyInsufficientParticipation(t *testing.T) {
	proposal := &Proposal{Type: ProposalTypeOther, EndHeight: 1000}
	votes := votersCast(10, VoteYes)

	outcome := Tally(proposal, votes, 1000, 1000, defaultMockTallyParams())
	if outcome != OutcomeInsufficientParticipation {
		t.Fatalf("Tally() = %v, want InsufficientParticipation", outcome)
	}
}

func TestTallyInProgressBeforeEndHeightPlusGracePeriod(t *testing.T) {
	proposal := &Proposal{Type: ProposalTypeOther, EndHeight: 1000}
	params := mockTallyParams{gracePeriod: 50, quorumPct: 0.33}

	outcome := Tally(proposal, nil, 1010, 100, params)
	if outcome != OutcomeInProgress {
		t.Fatalf("Tally() = %v, want InProgress", outcome)
	}
}

func TestTallyRejectsWithNoDecisiveVotes(t *testing.T) {
	proposal := &Proposal{Type: ProposalTypeOther, EndHeight: 1000}
	votes := votersCast(50, VoteAbstain)

	outcome := Tally(proposal, votes, 1000, 100, defaultMockTallyParams())
	if outcome != OutcomeRejected {
		t.Fatalf("Tally() = %v, want Rejected (no decisive votes)", outcome)
	}
}
