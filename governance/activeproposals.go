// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"sync"

	"github.com/decred/slog"

	"github.com/oxidecoin/oxided/chainhash"
)

// log is the package-level logger, a no-op until UseLogger is called.
var log = slog.Disabled

// UseLogger sets the package-level logger used by this package.
func UseLogger(logger slog.Logger) {
	log = logger
}

type proposalRecord struct {
	proposal *Proposal
	votes    map[chainhash.Hash]*Vote // keyed by VoterID
}

// ActiveProposals tracks every proposal currently open for voting along
// with the votes cast on it, generalized from
// rusty-core/src/consensus/governance_state.rs's ActiveProposals, which
// kept the same HashMap<Hash, (GovernanceProposal, HashMap<Hash,
// GovernanceVote>)> shape.
type ActiveProposals struct {
	mu        sync.RWMutex
	proposals map[chainhash.Hash]*proposalRecord
}

// NewActiveProposals returns an empty proposal registry.
func NewActiveProposals() *ActiveProposals {
	return &ActiveProposals{proposals: make(map[chainhash.Hash]*proposalRecord)}
}

// AddProposal admits a new proposal, rejecting one whose ID already
// exists.
func (a *ActiveProposals) AddProposal(p *Proposal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.proposals[p.ID]; ok {
		return ruleError(ErrProposalAlreadyExists, "proposal "+p.ID.String()+" already exists")
	}
	a.proposals[p.ID] = &proposalRecord{proposal: p, votes: make(map[chainhash.Hash]*Vote)}
	log.Debugf("proposal %s admitted (type %s, end height %d)", p.ID, p.Type, p.EndHeight)
	return nil
}

// RecordVote records a vote against an open proposal. Votes are keyed by
// voter ID: a second vote from the same voter on the same proposal is
// rejected with ErrAlreadyVoted and the first ballot stands.
func (a *ActiveProposals) RecordVote(v *Vote) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.proposals[v.ProposalID]
	if !ok {
		return ruleError(ErrProposalNotFound, "proposal "+v.ProposalID.String()+" not found")
	}
	if _, dup := rec.votes[v.VoterID]; dup {
		return ruleError(ErrAlreadyVoted, "voter "+v.VoterID.String()+" already voted on proposal "+v.ProposalID.String())
	}
	rec.votes[v.VoterID] = v
	return nil
}

// GetProposal returns the proposal with the given ID, if tracked.
func (a *ActiveProposals) GetProposal(id chainhash.Hash) (*Proposal, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rec, ok := a.proposals[id]
	if !ok {
		return nil, false
	}
	return rec.proposal, true
}

// GetVotesForProposal returns every vote cast on a proposal, keyed by
// voter ID.
func (a *ActiveProposals) GetVotesForProposal(id chainhash.Hash) (map[chainhash.Hash]*Vote, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rec, ok := a.proposals[id]
	if !ok {
		return nil, ruleError(ErrProposalNotFound, "proposal "+id.String()+" not found")
	}
	out := make(map[chainhash.Hash]*Vote, len(rec.votes))
	for k, v := range rec.votes {
		out[k] = v
	}
	return out, nil
}

// RemoveProposal drops a proposal and all its votes once it has reached a
// terminal outcome and been fully processed.
func (a *ActiveProposals) RemoveProposal(id chainhash.Hash) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.proposals[id]; !ok {
		return ruleError(ErrProposalNotFound, "proposal "+id.String()+" not found")
	}
	delete(a.proposals, id)
	return nil
}

// RemoveVote withdraws a single vote from a still-open proposal.
func (a *ActiveProposals) RemoveVote(proposalID, voterID chainhash.Hash) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.proposals[proposalID]
	if !ok {
		return ruleError(ErrProposalNotFound, "proposal "+proposalID.String()+" not found")
	}
	if _, ok := rec.votes[voterID]; !ok {
		return ruleError(ErrVoteNotFound, "no vote from "+voterID.String()+" on proposal "+proposalID.String())
	}
	delete(rec.votes, voterID)
	return nil
}

// Count returns the number of proposals currently tracked.
func (a *ActiveProposals) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.proposals)
}

// ProposalIDs returns every proposal ID currently tracked, in no
// particular order, for callers that need to sweep every open proposal
// (the Chain Manager's per-block finalization pass).
func (a *ActiveProposals) ProposalIDs() []chainhash.Hash {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := make([]chainhash.Hash, 0, len(a.proposals))
	for id := range a.proposals {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns a deep copy of the registry, letting the Chain Manager
// snapshot governance state before applying a block so a later reorg can
// restore it exactly.
func (a *ActiveProposals) Clone() *ActiveProposals {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := NewActiveProposals()
	for id, rec := range a.proposals {
		p := *rec.proposal
		votes := make(map[chainhash.Hash]*Vote, len(rec.votes))
		for voterID, v := range rec.votes {
			cp := *v
			votes[voterID] = &cp
		}
		out.proposals[id] = &proposalRecord{proposal: &p, votes: votes}
	}
	return out
}
