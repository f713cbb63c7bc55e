// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxoset

import (
	"path/filepath"
	"testing"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/wire"
)

func openTestSet(t *testing.T) *Set {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "utxo"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func coinbaseTx(value int64) *wire.MsgTx {
	return &wire.MsgTx{
		Type: wire.TxTypeCoinbase,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.ZeroHash, Index: 0xFFFFFFFF},
		}},
		Outputs: []*wire.TxOut{{Value: value, PkScript: []byte{0x01}}},
		Witness: [][]byte{{}},
	}
}

func TestConnectBlockAddsOutputs(t *testing.T) {
	s := openTestSet(t)
	blockHash := chainhash.Hash{1}
	tx := coinbaseTx(1000)

	if err := s.ConnectBlock(blockHash, 1, []*wire.MsgTx{tx}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock: %v", err)
	}

	op := wire.OutPoint{Hash: tx.TxHash(), Index: 0}
	entry, err := s.FetchEntry(op)
	if err != nil {
		t.Fatalf("FetchEntry: %v", err)
	}
	if entry.Value != 1000 || !entry.IsCoinbase || entry.BlockHeight != 1 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestConnectBlockSpendsInputs(t *testing.T) {
	s := openTestSet(t)
	genesisHash := chainhash.Hash{1}
	cb := coinbaseTx(1000)
	if err := s.ConnectBlock(genesisHash, 1, []*wire.MsgTx{cb}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock genesis: %v", err)
	}

	spendOp := wire.OutPoint{Hash: cb.TxHash(), Index: 0}
	spend := &wire.MsgTx{
		Type:    wire.TxTypeStandard,
		Inputs:  []*wire.TxIn{{PreviousOutPoint: spendOp}},
		Outputs: []*wire.TxOut{{Value: 900, PkScript: []byte{0x01}}},
		Witness: [][]byte{{}},
	}

	blockHash2 := chainhash.Hash{2}
	if err := s.ConnectBlock(blockHash2, 2, []*wire.MsgTx{spend}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock spend: %v", err)
	}

	if _, err := s.FetchEntry(spendOp); err != ErrNotFound {
		t.Errorf("expected spent output to be removed, got err=%v", err)
	}

	newOp := wire.OutPoint{Hash: spend.TxHash(), Index: 0}
	if _, err := s.FetchEntry(newOp); err != nil {
		t.Errorf("expected new output to be present: %v", err)
	}
}

func TestDisconnectBlockReversesConnect(t *testing.T) {
	s := openTestSet(t)
	genesisHash := chainhash.Hash{1}
	cb := coinbaseTx(1000)
	if err := s.ConnectBlock(genesisHash, 1, []*wire.MsgTx{cb}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock genesis: %v", err)
	}

	spendOp := wire.OutPoint{Hash: cb.TxHash(), Index: 0}
	spend := &wire.MsgTx{
		Type:    wire.TxTypeStandard,
		Inputs:  []*wire.TxIn{{PreviousOutPoint: spendOp}},
		Outputs: []*wire.TxOut{{Value: 900, PkScript: []byte{0x01}}},
		Witness: [][]byte{{}},
	}
	blockHash2 := chainhash.Hash{2}
	if err := s.ConnectBlock(blockHash2, 2, []*wire.MsgTx{spend}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock spend: %v", err)
	}

	if err := s.DisconnectBlock(blockHash2, []*wire.MsgTx{spend}, script.IsUnspendable); err != nil {
		t.Fatalf("DisconnectBlock: %v", err)
	}

	if _, err := s.FetchEntry(spendOp); err != nil {
		t.Errorf("expected spent output restored after disconnect: %v", err)
	}
	newOp := wire.OutPoint{Hash: spend.TxHash(), Index: 0}
	if _, err := s.FetchEntry(newOp); err != ErrNotFound {
		t.Errorf("expected disconnected output to be removed, got err=%v", err)
	}
}

func TestConnectBlockSkipsUnspendableOutputs(t *testing.T) {
	s := openTestSet(t)
	tx := &wire.MsgTx{
		Type: wire.TxTypeMasternodeSlash,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.ZeroHash, Index: 0xFFFFFFFF},
		}},
		Outputs: []*wire.TxOut{{Value: 0, PkScript: script.UnspendableDataScript([]byte("burn"))}},
		Witness: [][]byte{{}},
	}
	blockHash := chainhash.Hash{9}
	if err := s.ConnectBlock(blockHash, 1, []*wire.MsgTx{tx}, script.IsUnspendable); err != nil {
		t.Fatalf("ConnectBlock: %v", err)
	}

	op := wire.OutPoint{Hash: tx.TxHash(), Index: 0}
	if _, err := s.FetchEntry(op); err != ErrNotFound {
		t.Errorf("expected unspendable output to never be added, got err=%v", err)
	}
}

func TestFetchEntryNotFound(t *testing.T) {
	s := openTestSet(t)
	op := wire.OutPoint{Hash: chainhash.Hash{7}, Index: 3}
	if _, err := s.FetchEntry(op); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
