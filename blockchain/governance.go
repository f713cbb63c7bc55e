// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"math"

	"github.com/oxidecoin/oxided/chaincfg"
	"github.com/oxidecoin/oxided/governance"
)

// activatableParameters maps an ActivateProposalPayload.Parameter name to
// the consensus parameter it mutates, the set of fields a ParameterChange
// proposal (spec.md section 4.8) may change once approved. NewValue is
// always an 8-byte little-endian encoding: an integer reinterpreted
// directly, or a float64 via its IEEE 754 bit pattern.
var activatableParameters = map[string]func(p *chaincfg.Params, newValue []byte){
	"dust_limit": func(p *chaincfg.Params, v []byte) {
		if len(v) == 8 {
			p.DustLimit = int64(binary.LittleEndian.Uint64(v))
		}
	},
	"governance_quorum_pct": func(p *chaincfg.Params, v []byte) {
		if len(v) == 8 {
			p.GovernanceQuorumPct = math.Float64frombits(binary.LittleEndian.Uint64(v))
		}
	},
	"num_voters_per_block": func(p *chaincfg.Params, v []byte) {
		if len(v) == 8 {
			p.NumVotersPerBlock = int(binary.LittleEndian.Uint64(v))
		}
	},
	"non_participation_slash_pct": func(p *chaincfg.Params, v []byte) {
		if len(v) == 8 {
			p.NonParticipationSlashPct = math.Float64frombits(binary.LittleEndian.Uint64(v))
		}
	},
}

// processGovernance tallies every open proposal at height (spec.md section
// 4.8) and drives the terminal outcomes: Rejected and
// InsufficientParticipation schedule the proposer's staked deposit for
// burning via m.Burns, while a ParameterChange proposal's Approved
// outcome is left tracked until its matching ActivateProposal transaction
// is mined (apply.go's TxTypeActivateProposal case), which is what
// actually mutates the parameter and removes the proposal. Approved
// proposals of any other type carry no further on-chain action and are
// removed immediately. m.mu is already held for writing by the caller.
func (m *ChainManager) processGovernance(height uint64) {
	totalVotingPower := int64(m.Tickets.LiveCount() + len(m.Masternodes.ActiveEntries()))

	for _, id := range m.Governance.ProposalIDs() {
		proposal, ok := m.Governance.GetProposal(id)
		if !ok {
			continue
		}
		votes, err := m.Governance.GetVotesForProposal(id)
		if err != nil {
			continue
		}

		switch outcome := governance.Tally(proposal, votes, height, totalVotingPower, m.Params); outcome {
		case governance.OutcomeInProgress:
			continue
		case governance.OutcomeRejected, governance.OutcomeInsufficientParticipation:
			m.Burns.Schedule(proposal)
			log.Infof("proposal %s finalized %s, staked deposit scheduled for burn", id, outcome)
			_ = m.Governance.RemoveProposal(id)
		case governance.OutcomeApproved:
			log.Infof("proposal %s approved", id)
			if proposal.Type != governance.ProposalTypeParameterChange {
				_ = m.Governance.RemoveProposal(id)
			}
		}
	}
}
