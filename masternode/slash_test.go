// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/oxidecoin/oxided/script"
)

func TestBuildSlashTxPoSeFailureBurnsPartialAndRefundsRemainder(t *testing.T) {
	var key [32]byte
	tx := BuildSlashTx(testID(1), 1_000_000_000_000, SlashReasonPoSeFailure, []byte("offline"), 0.10, key)

	if len(tx.Outputs) != 2 {
		t.Fatalf("len(Outputs) = %d, want 2 (burn + refund)", len(tx.Outputs))
	}
	if !script.IsUnspendable(tx.Outputs[0].PkScript) {
		t.Error("expected first output to be the unspendable burn output")
	}
	wantBurn := int64(100_000_000_000)
	if tx.Outputs[0].Value != wantBurn {
		t.Errorf("burned = %d, want %d", tx.Outputs[0].Value, wantBurn)
	}
	wantRefund := int64(900_000_000_000)
	if tx.Outputs[1].Value != wantRefund {
		t.Errorf("refund = %d, want %d", tx.Outputs[1].Value, wantRefund)
	}
}

func TestBuildSlashTxMaliciousBurnsEverything(t *testing.T) {
	var key [32]byte
	tx := BuildSlashTx(testID(1), 1_000_000_000_000, SlashReasonDoubleSigning, nil, 1.0, key)

	if len(tx.Outputs) != 1 {
		t.Fatalf("len(Outputs) = %d, want 1 (burn only, no remainder)", len(tx.Outputs))
	}
	if tx.Outputs[0].Value != 1_000_000_000_000 {
		t.Errorf("burned = %d, want entire collateral", tx.Outputs[0].Value)
	}
}

func TestSlashFraction(t *testing.T) {
	if got := SlashFraction(SlashReasonPoSeFailure, 0.10, 1.0); got != 0.10 {
		t.Errorf("PoSe failure fraction = %v, want 0.10", got)
	}
	if got := SlashFraction(SlashReasonDoubleSpend, 0.10, 1.0); got != 1.0 {
		t.Errorf("malicious fraction = %v, want 1.0", got)
	}
}

func TestListSlashDeregistersAndReturnsTx(t *testing.T) {
	l := NewList()
	var key [32]byte
	l.Register(testID(1), key, 1_000_000_000_000, 1_000_000_000_000)
	l.Activate(testID(1))

	tx, err := l.Slash(testID(1), SlashReasonPoSeFailure, []byte("offline"), 0.10, 1.0)
	if err != nil {
		t.Fatalf("Slash: %v", err)
	}
	if tx.Slash.MasternodeID != testID(1) {
		t.Errorf("tx.Slash.MasternodeID = %v, want testID(1)", tx.Slash.MasternodeID)
	}

	e, _ := l.Get(testID(1))
	if e.Status != StatusDeregistered {
		t.Errorf("got status %v, want Deregistered after slashing", e.Status)
	}
}
