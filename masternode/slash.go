// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/wire"
)

// SlashReason enumerates why a masternode's collateral is being burned,
// mirroring rusty-masternode/src/slashing.rs's SlashingReason, with
// PoSeFailure added since the Rust enum had no variant for the PoSe
// non-participation penalty spec.md section 6 names explicitly.
type SlashReason uint8

const (
	SlashReasonPoSeFailure SlashReason = iota
	SlashReasonDoubleSigning
	SlashReasonInvalidBlockProposal
	SlashReasonInvalidTransaction
	SlashReasonGovernanceViolation
	SlashReasonDoubleSpend
)

// String returns a human-readable slash reason name.
func (r SlashReason) String() string {
	switch r {
	case SlashReasonPoSeFailure:
		return "pose-failure"
	case SlashReasonDoubleSigning:
		return "double-signing"
	case SlashReasonInvalidBlockProposal:
		return "invalid-block-proposal"
	case SlashReasonInvalidTransaction:
		return "invalid-transaction"
	case SlashReasonGovernanceViolation:
		return "governance-violation"
	case SlashReasonDoubleSpend:
		return "double-spend"
	default:
		return "unknown"
	}
}

// burnMarker tags OxideCoin's slashing burn outputs, standing in for the
// original implementation's "rust" marker (spec.md section 4.7).
var burnMarker = []byte("OXID")

// SlashFraction returns the fraction of a masternode's collateral burned
// for the given reason (spec.md section 6): a PoSe failure burns 10%,
// every other malicious-behavior reason burns the entire collateral.
func SlashFraction(reason SlashReason, poSeFailurePct, maliciousPct float64) float64 {
	if reason == SlashReasonPoSeFailure {
		return poSeFailurePct
	}
	return maliciousPct
}

// BuildSlashTx constructs a MasternodeSlash transaction spending a
// masternode's collateral outpoint into an unspendable burn output,
// exactly as rusty-masternode/src/slashing.rs's
// create_slashing_transaction/create_burn_output do: one input (the
// collateral outpoint), one OP_RETURN-style output carrying the burn
// marker. Any portion of the collateral not burned (less than 100%) is
// returned to the masternode's operator key as a second, spendable output.
func BuildSlashTx(id wire.MasternodeID, collateralAmount int64, reason SlashReason, proofData []byte, slashFraction float64, operatorKey wire.PublicKey) *wire.MsgTx {
	burned := int64(float64(collateralAmount) * slashFraction)
	remainder := collateralAmount - burned

	outputs := []*wire.TxOut{{Value: burned, PkScript: script.UnspendableDataScript(burnMarker)}}
	if remainder > 0 {
		outputs = append(outputs, &wire.TxOut{Value: remainder, PkScript: script.PayToVerifyingKeyScript(operatorKey)})
	}

	return &wire.MsgTx{
		Type: wire.TxTypeMasternodeSlash,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: id,
		}},
		Outputs: outputs,
		Witness: [][]byte{{}},
		Slash: &wire.MasternodeSlashPayload{
			MasternodeID: id,
			Reason:       uint8(reason),
			ProofData:    proofData,
		},
	}
}

// Slash marks a masternode Deregistered (its collateral is spent by the
// returned transaction, so it can no longer participate) and returns the
// slashing transaction for the caller to add to the block being built or
// validated.
func (l *List) Slash(id wire.MasternodeID, reason SlashReason, proofData []byte, poSeFailurePct, maliciousPct float64) (*wire.MsgTx, error) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		l.mu.Unlock()
		return nil, ruleError(ErrMasternodeNotFound, "masternode "+id.String()+" not found")
	}
	fraction := SlashFraction(reason, poSeFailurePct, maliciousPct)
	collateral := e.CollateralAmount
	operatorKey := e.OperatorKey
	e.Status = StatusDeregistered
	l.mu.Unlock()

	log.Warnf("masternode %s slashed for %s, burning %.0f%% of collateral", id, reason, fraction*100)
	return BuildSlashTx(id, collateral, reason, proofData, fraction, operatorKey), nil
}
