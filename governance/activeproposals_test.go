// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"errors"
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
)

func proposalID(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func TestAddProposalRejectsDuplicate(t *testing.T) {
	a := NewActiveProposals()
	p := &Proposal{ID: proposalID(1), Type: ProposalTypeOther, EndHeight: 100}
	if err := a.AddProposal(p); err != nil {
		t.Fatalf("AddProposal: %v", err)
	}
	if err := a.AddProposal(p); err == nil {
		t.Fatal("expected error adding a duplicate proposal ID")
	}
}

func TestRecordVoteRequiresKnownProposal(t *testing.T) {
	a := NewActiveProposals()
	v := &Vote{ProposalID: proposalID(1), VoterID: proposalID(2), Choice: VoteYes}
	if err := a.RecordVote(v); err == nil {
		t.Fatal("expected error recording a vote against an unknown proposal")
	}
}

func TestRecordVoteRejectsRevote(t *testing.T) {
	a := NewActiveProposals()
	p := &Proposal{ID: proposalID(1), Type: ProposalTypeOther, EndHeight: 100}
	a.AddProposal(p)
	voter := proposalID(9)

	if err := a.RecordVote(&Vote{ProposalID: p.ID, VoterID: voter, Choice: VoteNo}); err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if err := a.RecordVote(&Vote{ProposalID: p.ID, VoterID: voter, Choice: VoteYes}); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("second RecordVote error = %v, want ErrAlreadyVoted", err)
	}

	votes, err := a.GetVotesForProposal(p.ID)
	if err != nil {
		t.Fatalf("GetVotesForProposal: %v", err)
	}
	if len(votes) != 1 || votes[voter].Choice != VoteNo {
		t.Fatalf("votes = %+v, want the single original no vote", votes)
	}
}

func TestRemoveProposalDropsItsVotes(t *testing.T) {
	a := NewActiveProposals()
	p := &Proposal{ID: proposalID(1), Type: ProposalTypeOther, EndHeight: 100}
	a.AddProposal(p)
	a.RecordVote(&Vote{ProposalID: p.ID, VoterID: proposalID(2), Choice: VoteYes})

	if err := a.RemoveProposal(p.ID); err != nil {
		t.Fatalf("RemoveProposal: %v", err)
	}
	if _, ok := a.GetProposal(p.ID); ok {
		t.Error("expected proposal to be gone after RemoveProposal")
	}
	if _, err := a.GetVotesForProposal(p.ID); err == nil {
		t.Error("expected GetVotesForProposal to fail for a removed proposal")
	}
}

func TestRemoveVote(t *testing.T) {
	a := NewActiveProposals()
	p := &Proposal{ID: proposalID(1), Type: ProposalTypeOther, EndHeight: 100}
	a.AddProposal(p)
	voter := proposalID(2)
	a.RecordVote(&Vote{ProposalID: p.ID, VoterID: voter, Choice: VoteYes})

	if err := a.RemoveVote(p.ID, voter); err != nil {
		t.Fatalf("RemoveVote: %v", err)
	}
	if err := a.RemoveVote(p.ID, voter); err == nil {
		t.Fatal("expected error removing an already-removed vote")
	}
}
