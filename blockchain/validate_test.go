// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"crypto/ed25519"
	"errors"
	"path/filepath"
	"testing"

	"github.com/oxidecoin/oxided/chaincfg"
	"github.com/oxidecoin/oxided/oxidecore"
	"github.com/oxidecoin/oxided/script"
	"github.com/oxidecoin/oxided/utxoset"
	"github.com/oxidecoin/oxided/wire"
)

// newTestManager returns a ChainManager over a throwaway UTXO set for use
// in a single test.
func newTestManager(t *testing.T) *ChainManager {
	t.Helper()
	set, err := utxoset.Open(filepath.Join(t.TempDir(), "utxo"))
	if err != nil {
		t.Fatalf("opening test UTXO set: %v", err)
	}
	t.Cleanup(func() { set.Close() })
	return New(chaincfg.RegNetParams(), set, testHasher())
}

// TestCheckTransactionsRejectsImmatureCoinbaseSpend and
// TestCheckTransactionsAcceptsMatureCoinbaseSpend mirror the scenario named
// in spec.md section 8: a transaction spending a coinbase output before it
// has reached CoinbaseMaturity confirmations is rejected, and the
// identical spend is accepted once maturity is reached.
func TestCheckTransactionsRejectsImmatureCoinbaseSpend(t *testing.T) {
	m := newTestManager(t)
	pub, priv := ed25519mustKey(t)

	coinbaseHeight := uint64(1)
	coinbase := &wire.MsgTx{
		Type:    wire.TxTypeCoinbase,
		Outputs: []*wire.TxOut{{Value: 5_000_000, PkScript: script.PayToVerifyingKeyScript(pub)}},
	}
	coinbaseHeader := wire.BlockHeader{Height: coinbaseHeight}
	if err := m.UTXO.ConnectBlock(coinbaseHeader.BlockHash(), coinbaseHeight,
		[]*wire.MsgTx{coinbase}, script.IsUnspendable); err != nil {
		t.Fatalf("connecting coinbase block: %v", err)
	}

	spend := spendTx(t, coinbase, priv)

	immatureHeight := coinbaseHeight + m.Params.CoinbaseMaturity - 1
	block := &wire.Block{
		Header:       wire.BlockHeader{Height: immatureHeight},
		Transactions: []*wire.MsgTx{{Type: wire.TxTypeCoinbase}, spend},
	}
	err := m.checkTransactions(block)
	var oerr *oxidecore.Error
	if !errors.As(err, &oerr) || oerr.Kind != ErrCoinbaseMaturity {
		t.Fatalf("expected ErrCoinbaseMaturity at height %d, got %v", immatureHeight, err)
	}
}

func TestCheckTransactionsAcceptsMatureCoinbaseSpend(t *testing.T) {
	m := newTestManager(t)
	pub, priv := ed25519mustKey(t)

	coinbaseHeight := uint64(1)
	coinbase := &wire.MsgTx{
		Type:    wire.TxTypeCoinbase,
		Outputs: []*wire.TxOut{{Value: 5_000_000, PkScript: script.PayToVerifyingKeyScript(pub)}},
	}
	coinbaseHeader := wire.BlockHeader{Height: coinbaseHeight}
	if err := m.UTXO.ConnectBlock(coinbaseHeader.BlockHash(), coinbaseHeight,
		[]*wire.MsgTx{coinbase}, script.IsUnspendable); err != nil {
		t.Fatalf("connecting coinbase block: %v", err)
	}

	spend := spendTx(t, coinbase, priv)

	matureHeight := coinbaseHeight + m.Params.CoinbaseMaturity
	block := &wire.Block{
		Header:       wire.BlockHeader{Height: matureHeight},
		Transactions: []*wire.MsgTx{{Type: wire.TxTypeCoinbase}, spend},
	}
	if err := m.checkTransactions(block); err != nil {
		t.Fatalf("expected mature coinbase spend to validate, got %v", err)
	}
}

func ed25519mustKey(t *testing.T) (wire.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generating test key: %v", err)
	}
	var pk wire.PublicKey
	copy(pk[:], pub)
	return pk, priv
}

// spendTx builds a transaction spending coinbase's sole output, signed
// over the signature hash verifyInputSignature expects.
func spendTx(t *testing.T, coinbase *wire.MsgTx, priv ed25519.PrivateKey) *wire.MsgTx {
	t.Helper()
	tx := &wire.MsgTx{
		Type: wire.TxTypeStandard,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: coinbase.TxHash(), Index: 0},
		}},
		Outputs: []*wire.TxOut{{Value: 4_000_000, PkScript: coinbase.Outputs[0].PkScript}},
		Witness: [][]byte{{}},
	}
	hash := txSigHash(tx)
	sig := ed25519.Sign(priv, hash[:])
	tx.Inputs[0].SignatureScript = sig
	return tx
}
