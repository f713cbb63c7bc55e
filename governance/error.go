// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

// ErrorKind identifies a kind of error, following the same convention as
// blockchain/standalone, stake, and masternode.
type ErrorKind string

const (
	ErrProposalAlreadyExists ErrorKind = "ErrProposalAlreadyExists"
	ErrProposalNotFound      ErrorKind = "ErrProposalNotFound"
	ErrVoteNotFound          ErrorKind = "ErrVoteNotFound"
	ErrAlreadyVoted          ErrorKind = "ErrAlreadyVoted"
	ErrUnknownVoter          ErrorKind = "ErrUnknownVoter"
)

// Error satisfies the error interface.
func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError identifies a governance rule violation, carrying both the
// machine-checkable ErrorKind and a human-readable description.
type RuleError struct {
	ErrorCode   ErrorKind
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

// Unwrap returns the underlying ErrorKind so callers can use errors.Is.
func (e RuleError) Unwrap() error {
	return e.ErrorCode
}

func ruleError(kind ErrorKind, desc string) RuleError {
	return RuleError{ErrorCode: kind, Description: desc}
}
