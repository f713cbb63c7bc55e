// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import "github.com/oxidecoin/oxided/wire"

// BuildActivateProposalTx constructs the ActivateProposal transaction
// admitted once a ParameterChange (or similar) proposal is Approved,
// carrying the parameter name and its new value into consensus state
// (spec.md section 4.8, "Approved proposals of type ParameterChange
// activate their change").
func BuildActivateProposalTx(proposal *Proposal, parameter string, newValue []byte) *wire.MsgTx {
	return &wire.MsgTx{
		Type: wire.TxTypeActivateProposal,
		Activation: &wire.ActivateProposalPayload{
			ProposalID: proposal.ID,
			Parameter:  parameter,
			NewValue:   newValue,
		},
	}
}
