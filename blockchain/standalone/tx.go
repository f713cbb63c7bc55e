// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"

	"github.com/oxidecoin/oxided/wire"
)

const (
	// maxAtoms is the maximum transaction output amount allowed, expressed
	// in atoms: 21 million coins at 1e8 atoms per coin, per spec.md
	// section 6.
	maxAtoms int64 = 21_000_000 * 1e8
)

// IsCoinBaseTx determines whether or not tx is a coinbase transaction by
// shape: exactly one input whose previous output is the null outpoint and
// whose declared type is TxTypeCoinbase.
func IsCoinBaseTx(tx *wire.MsgTx) bool {
	return tx.IsCoinbase()
}

// CheckTransactionSanity performs preliminary, context-free checks on a
// transaction: input/output presence, serialized size, output value range,
// duplicate inputs, and witness-count consistency (spec.md section 4.2,
// "transaction sanity").
func CheckTransactionSanity(tx *wire.MsgTx, maxTxSize uint64) error {
	if len(tx.Inputs) == 0 {
		return ruleError(ErrNoTxInputs, "transaction has no inputs")
	}

	if len(tx.Outputs) == 0 {
		return ruleError(ErrNoTxOutputs, "transaction has no outputs")
	}

	serializedTxSize := uint64(tx.SerializeSize())
	if serializedTxSize > maxTxSize {
		str := fmt.Sprintf("serialized transaction is too big - got %d, max %d",
			serializedTxSize, maxTxSize)
		return ruleError(ErrTxTooBig, str)
	}

	// Ensure output amounts are in range and their running total does not
	// overflow or exceed the maximum supply. All amounts are expressed in
	// atoms, the base unit defined by oxidutil.
	var totalAtoms int64
	for _, txOut := range tx.Outputs {
		atoms := txOut.Value
		if atoms < 0 {
			str := fmt.Sprintf("transaction output has negative value of %v", atoms)
			return ruleError(ErrBadTxOutValue, str)
		}
		if atoms > maxAtoms {
			str := fmt.Sprintf("transaction output value of %v is higher than "+
				"max allowed value of %v", atoms, maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}

		// Two's complement int64 overflow guarantees that any overflow is
		// detected and reported.
		totalAtoms += atoms
		if totalAtoms < 0 {
			str := fmt.Sprintf("total value of all transaction outputs "+
				"exceeds max allowed value of %v", maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}
		if totalAtoms > maxAtoms {
			str := fmt.Sprintf("total value of all transaction outputs is %v "+
				"which is higher than max allowed value of %v", totalAtoms, maxAtoms)
			return ruleError(ErrBadTxOutValue, str)
		}
	}

	// Check for duplicate transaction inputs.
	existingTxOut := make(map[wire.OutPoint]struct{}, len(tx.Inputs))
	for _, txIn := range tx.Inputs {
		if _, exists := existingTxOut[txIn.PreviousOutPoint]; exists {
			return ruleError(ErrDuplicateTxInputs, "transaction contains duplicate inputs")
		}
		existingTxOut[txIn.PreviousOutPoint] = struct{}{}
	}

	// A coinbase's sole input carries no witness, and every input must have
	// a corresponding witness entry even if no signature was required (the
	// coinbase itself uses a placeholder empty witness entry).
	if len(tx.Witness) != len(tx.Inputs) {
		str := fmt.Sprintf("transaction has %d inputs but %d witness entries",
			len(tx.Inputs), len(tx.Witness))
		return ruleError(ErrUnexpectedWitnessCount, str)
	}

	return nil
}
