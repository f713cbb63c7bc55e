// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

func makeCoinbase() *wire.MsgTx {
	return &wire.MsgTx{
		Type: wire.TxTypeCoinbase,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.ZeroHash, Index: 0xFFFFFFFF},
			SignatureScript:  []byte("height-commitment"),
			Sequence:         0xFFFFFFFF,
		}},
		Outputs: []*wire.TxOut{{Value: 30_000_000_000, PkScript: []byte{0x01}}},
		Witness: [][]byte{{}},
	}
}

func TestIsCoinBaseTx(t *testing.T) {
	if !IsCoinBaseTx(makeCoinbase()) {
		t.Error("expected coinbase shape to be recognized")
	}

	standard := makeCoinbase()
	standard.Type = wire.TxTypeStandard
	if IsCoinBaseTx(standard) {
		t.Error("expected non-coinbase type to be rejected despite coinbase-shaped input")
	}
}

func TestCheckTransactionSanityNoInputs(t *testing.T) {
	tx := &wire.MsgTx{Type: wire.TxTypeStandard, Outputs: []*wire.TxOut{{Value: 1}}}
	err := CheckTransactionSanity(tx, 1_000_000)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrNoTxInputs {
		t.Fatalf("got %v, want ErrNoTxInputs", err)
	}
}

func TestCheckTransactionSanityNegativeValue(t *testing.T) {
	tx := makeCoinbase()
	tx.Outputs[0].Value = -1
	err := CheckTransactionSanity(tx, 1_000_000)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrBadTxOutValue {
		t.Fatalf("got %v, want ErrBadTxOutValue", err)
	}
}

func TestCheckTransactionSanityExceedsMaxSupply(t *testing.T) {
	tx := makeCoinbase()
	tx.Outputs[0].Value = maxAtoms + 1
	err := CheckTransactionSanity(tx, 1_000_000)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrBadTxOutValue {
		t.Fatalf("got %v, want ErrBadTxOutValue", err)
	}
}

func TestCheckTransactionSanityDuplicateInputs(t *testing.T) {
	op := wire.OutPoint{Hash: chainhash.Hash{1}, Index: 0}
	tx := &wire.MsgTx{
		Type: wire.TxTypeStandard,
		Inputs: []*wire.TxIn{
			{PreviousOutPoint: op},
			{PreviousOutPoint: op},
		},
		Outputs: []*wire.TxOut{{Value: 1}},
		Witness: [][]byte{{}, {}},
	}
	err := CheckTransactionSanity(tx, 1_000_000)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrDuplicateTxInputs {
		t.Fatalf("got %v, want ErrDuplicateTxInputs", err)
	}
}

func TestCheckTransactionSanityWitnessCountMismatch(t *testing.T) {
	tx := makeCoinbase()
	tx.Witness = nil
	err := CheckTransactionSanity(tx, 1_000_000)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrUnexpectedWitnessCount {
		t.Fatalf("got %v, want ErrUnexpectedWitnessCount", err)
	}
}

func TestCheckTransactionSanityTooBig(t *testing.T) {
	tx := makeCoinbase()
	err := CheckTransactionSanity(tx, 4)
	if err, ok := err.(RuleError); !ok || err.ErrorCode != ErrTxTooBig {
		t.Fatalf("got %v, want ErrTxTooBig", err)
	}
}

func TestCheckTransactionSanityValid(t *testing.T) {
	if err := CheckTransactionSanity(makeCoinbase(), 1_000_000); err != nil {
		t.Fatalf("unexpected error for a sane transaction: %v", err)
	}
}
