// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oxidecore

import "github.com/oxidecoin/oxided/chainhash"

// AuditEventType discriminates the structured audit events emitted while
// processing blocks and transactions (spec.md section 5, "Observability").
type AuditEventType string

// These constants name every audit event a consensus package can emit.
const (
	AuditBlockAdded           AuditEventType = "block_added"
	AuditBlockValidationFailed AuditEventType = "block_validation_failed"
	AuditTxReceived           AuditEventType = "tx_received"
	AuditTxValidationFailed   AuditEventType = "tx_validation_failed"
	AuditMasternodeRegistered AuditEventType = "masternode_registered"
	AuditMasternodeSlashed    AuditEventType = "masternode_slashed"
	AuditGovernanceSubmitted  AuditEventType = "governance_submitted"
	AuditGovernanceVoted      AuditEventType = "governance_voted"
	AuditGovernanceOutcome    AuditEventType = "governance_outcome"
	AuditPoSeChallenge        AuditEventType = "pose_challenge"
	AuditPoSeResponse         AuditEventType = "pose_response"
)

// AuditEvent is a single structured observability record, delivered to a
// Sink. Only the types are defined here: no package in this module
// constructs or emits AuditEvents.
type AuditEvent struct {
	Type    AuditEventType
	Height  uint64
	Hash    chainhash.Hash
	Detail  string
	Err     error
}

// Sink receives audit events as they are emitted. No package in this
// module accepts a Sink, and calling Emit on a nil Sink panics; DiscardSink
// is the implementation that drops every event.
type Sink interface {
	Emit(AuditEvent)
}

// DiscardSink is a Sink that discards every event.
type DiscardSink struct{}

// Emit discards ev.
func (DiscardSink) Emit(AuditEvent) {}

// NopSink is the package-level instance of DiscardSink, mirroring the
// decred/slog convention of a shared `Disabled` logger.
var NopSink Sink = DiscardSink{}
