// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

func testID(b byte) wire.MasternodeID {
	return wire.MasternodeID{Hash: chainhash.Hash{b}, Index: 0}
}

func TestRegisterRejectsInsufficientCollateral(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	if err := l.Register(testID(1), key, 500, 1000); err == nil {
		t.Fatal("expected error for insufficient collateral")
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	if err := l.Register(testID(1), key, 1000, 1000); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := l.Register(testID(1), key, 1000, 1000); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestActivateTransitionsToActive(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	l.Register(testID(1), key, 1000, 1000)
	if err := l.Activate(testID(1)); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	e, _ := l.Get(testID(1))
	if e.Status != StatusActive {
		t.Errorf("got status %v, want Active", e.Status)
	}
}

func TestRecordPoSeFailureBansAtThreshold(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	l.Register(testID(1), key, 1000, 1000)
	l.Activate(testID(1))

	for i := 0; i < 2; i++ {
		banned, err := l.RecordPoSeFailure(testID(1), 3)
		if err != nil {
			t.Fatalf("RecordPoSeFailure: %v", err)
		}
		if banned {
			t.Fatalf("did not expect a ban before the threshold (iteration %d)", i)
		}
	}
	banned, err := l.RecordPoSeFailure(testID(1), 3)
	if err != nil {
		t.Fatalf("RecordPoSeFailure: %v", err)
	}
	if !banned {
		t.Fatal("expected ban at the third failure")
	}
	e, _ := l.Get(testID(1))
	if e.Status != StatusPoSeBanned {
		t.Errorf("got status %v, want PoSeBanned", e.Status)
	}
}

func TestDeregisterRemovesEntry(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	l.Register(testID(1), key, 1000, 1000)
	if err := l.Deregister(testID(1)); err != nil {
		t.Fatalf("Deregister: %v", err)
	}
	if _, ok := l.Get(testID(1)); ok {
		t.Error("expected entry to be removed after deregistration")
	}
}

func TestActiveEntriesOnlyReturnsActive(t *testing.T) {
	l := NewList()
	var key wire.PublicKey
	l.Register(testID(1), key, 1000, 1000)
	l.Register(testID(2), key, 1000, 1000)
	l.Activate(testID(1))

	active := l.ActiveEntries()
	if len(active) != 1 || active[0].ID != testID(1) {
		t.Errorf("ActiveEntries() = %v, want only testID(1)", active)
	}
}
