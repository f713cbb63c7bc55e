// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/oxidecoin/oxided/wire"
)

func txWithFee(seq uint32, fee int64, payloadSize int) *wire.MsgTx {
	return &wire.MsgTx{
		Type: wire.TxTypeStandard,
		Inputs: []*wire.TxIn{{
			SignatureScript: make([]byte, payloadSize),
			Sequence:        seq,
		}},
		Outputs: []*wire.TxOut{{Value: 1000}},
		Witness: [][]byte{{}},
		Fee:     fee,
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	p := New()
	tx := txWithFee(1, 100, 10)
	if err := p.Add(tx); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := p.Add(tx); err == nil {
		t.Fatal("expected error adding a duplicate transaction")
	}
}

func TestGetTransactionsForBlockTemplateOrdersByFeeRateDescending(t *testing.T) {
	p := New()
	low := txWithFee(1, 10, 100)  // 167 bytes serialized: ~0.06 atoms/byte
	high := txWithFee(2, 500, 100) // ~2.99 atoms/byte
	mid := txWithFee(3, 100, 100)  // ~0.60 atoms/byte
	p.Add(low)
	p.Add(high)
	p.Add(mid)

	got := p.GetTransactionsForBlockTemplate(1 << 20)
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	if got[0].TxHash() != high.TxHash() || got[1].TxHash() != mid.TxHash() || got[2].TxHash() != low.TxHash() {
		t.Error("expected transactions ordered by descending fee rate")
	}
}

func TestGetTransactionsForBlockTemplateRespectsMaxSize(t *testing.T) {
	p := New()
	a := txWithFee(1, 1000, 100)
	b := txWithFee(2, 900, 100)
	p.Add(a)
	p.Add(b)

	maxSize := uint64(a.SerializeSize())
	got := p.GetTransactionsForBlockTemplate(maxSize)
	if len(got) != 1 || got[0].TxHash() != a.TxHash() {
		t.Fatalf("GetTransactionsForBlockTemplate(%d) = %v, want only the higher-fee-rate tx", maxSize, got)
	}
}

func TestGetTransactionsForBlockTemplateDoesNotMutatePool(t *testing.T) {
	p := New()
	p.Add(txWithFee(1, 100, 10))
	p.Add(txWithFee(2, 200, 10))

	p.GetTransactionsForBlockTemplate(1 << 20)
	if p.Count() != 2 {
		t.Fatalf("Count() = %d after building a template, want 2 (unchanged)", p.Count())
	}
}

func TestRemove(t *testing.T) {
	p := New()
	tx := txWithFee(1, 100, 10)
	p.Add(tx)
	p.Remove(tx.TxHash())
	if p.Has(tx.TxHash()) {
		t.Error("expected transaction to be gone after Remove")
	}
	if p.Count() != 0 {
		t.Errorf("Count() = %d, want 0", p.Count())
	}
}

func TestTieBrokenByTxIDWhenFeeRatesMatch(t *testing.T) {
	p := New()
	a := txWithFee(1, 100, 10)
	b := txWithFee(2, 100, 10)
	p.Add(a)
	p.Add(b)

	got := p.GetTransactionsForBlockTemplate(1 << 20)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if compareTxIDs(got[0].TxHash(), got[1].TxHash()) >= 0 {
		t.Error("expected ties to be broken by ascending txid order")
	}
}
