// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oxidecore holds types shared by every consensus package that
// would otherwise create an import cycle if defined closer to their
// primary user: the cross-package validation error type and the audit
// event types emitted while applying a block.
package oxidecore

import (
	"fmt"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// ErrorKind identifies a kind of validation failure. The blockchain package
// re-exports these constants and builds its errors from them; stake,
// governance, masternode and mempool define ErrorKind and RuleError types
// of their own. Callers match either with errors.Is.
type ErrorKind string

// Error satisfies the error interface.
func (e ErrorKind) Error() string { return string(e) }

// These are the canonical validation-failure kinds a block or transaction
// can be rejected with (spec.md section 7). Only the blockchain package
// constructs Errors of these kinds; its validator returns the
// stake.RuleError from vote validation as it is, without translating it
// to one of these kinds.
const (
	ErrBlockValidation        ErrorKind = "BlockValidation"
	ErrTxValidation           ErrorKind = "TxValidation"
	ErrProofOfWork            ErrorKind = "ProofOfWork"
	ErrScript                 ErrorKind = "Script"
	ErrCoinbaseMaturity       ErrorKind = "CoinbaseMaturity"
	ErrDustLimit              ErrorKind = "DustLimit"
	ErrMissingPreviousOutput  ErrorKind = "MissingPreviousOutput"
	ErrDuplicateTicketVote    ErrorKind = "DuplicateTicketVote"
	ErrImmatureTicket         ErrorKind = "ImmatureTicket"
	ErrExpiredTicket          ErrorKind = "ExpiredTicket"
	ErrProposalAlreadyExists  ErrorKind = "ProposalAlreadyExists"
	ErrProposalNotFound       ErrorKind = "ProposalNotFound"
	ErrVoteNotFound           ErrorKind = "VoteNotFound"
	ErrInvalidSignature       ErrorKind = "InvalidSignature"
	ErrSerialization          ErrorKind = "Serialization"
	ErrStorage                ErrorKind = "Storage"
	ErrInternal               ErrorKind = "Internal"
)

// Error is the structured validation error returned by consensus packages.
// It carries enough context (the offending outpoint or hash, and a
// got/want pair where relevant) that callers never need to parse the
// message string to act on a failure, while still rendering a readable
// Description for logs.
type Error struct {
	Kind        ErrorKind
	Description string

	// OutPoint identifies the offending transaction output, if any.
	OutPoint *wire.OutPoint

	// Hash identifies the offending block, transaction, or ticket, if any.
	Hash *chainhash.Hash

	// Got and Want carry the conflicting values of a mismatch error, such
	// as a state root or difficulty target disagreement. Both are nil
	// unless the error represents such a mismatch.
	Got  fmt.Stringer
	Want fmt.Stringer
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying error kind, enabling errors.Is(err,
// someKind).
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError returns an Error with only a kind and description set.
func NewError(kind ErrorKind, desc string) *Error {
	return &Error{Kind: kind, Description: desc}
}

// hashStringer adapts chainhash.Hash to fmt.Stringer for use in Error.Got /
// Error.Want.
type hashStringer chainhash.Hash

func (h hashStringer) String() string { return chainhash.Hash(h).String() }

// HashStringer wraps h so it can be assigned to Error.Got or Error.Want.
func HashStringer(h chainhash.Hash) fmt.Stringer { return hashStringer(h) }

// NewMismatchError returns an Error reporting that got did not equal want,
// identified by hash.
func NewMismatchError(kind ErrorKind, desc string, hash chainhash.Hash, got, want fmt.Stringer) *Error {
	return &Error{
		Kind:        kind,
		Description: desc,
		Hash:        &hash,
		Got:         got,
		Want:        want,
	}
}
