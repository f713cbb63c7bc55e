// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package masternode tracks the masternode list and its slashing/PoSe
// accounting (spec.md section 4.7). The mixing and privacy protocols a
// real masternode network would run (FerrousShield, OxideSend) and key
// generation (DKG) are explicitly out of scope per spec.md section 1;
// only their effect on consensus state — registration, PoSe-failure
// bookkeeping, slashing — is modeled here, grounded on
// rusty-masternode/src/mn_list.rs and slashing.rs.
package masternode

import (
	"github.com/oxidecoin/oxided/wire"
)

// Status is a masternode's position in its lifecycle (spec.md section 3,
// "MasternodeEntry").
type Status uint8

const (
	StatusPending Status = iota
	StatusActive
	StatusPoSeBanned
	StatusDeregistered
)

// String returns a human-readable masternode status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusPoSeBanned:
		return "pose-banned"
	case StatusDeregistered:
		return "deregistered"
	default:
		return "unknown"
	}
}

// Entry is a single masternode list record (spec.md section 3,
// "MasternodeEntry").
type Entry struct {
	ID                wire.MasternodeID
	OperatorKey       wire.PublicKey
	CollateralAmount  int64
	Status            Status
	PoSeFailureCount  int
	Reputation        float64
}
