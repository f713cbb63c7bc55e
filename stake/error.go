// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

// ErrorKind identifies a kind of error the functions in this package can
// return.
type ErrorKind string

const (
	// ErrTicketNotFound indicates an operation referenced a TicketId not
	// present in the live tickets pool.
	ErrTicketNotFound = ErrorKind("ErrTicketNotFound")

	// ErrImmatureTicket indicates a ticket was referenced before it
	// reached its finality depth.
	ErrImmatureTicket = ErrorKind("ErrImmatureTicket")

	// ErrExpiredTicket indicates a ticket was referenced at or past its
	// expiry height.
	ErrExpiredTicket = ErrorKind("ErrExpiredTicket")

	// ErrDuplicateTicketVote indicates the same TicketId appeared more
	// than once in a block's ticket_votes.
	ErrDuplicateTicketVote = ErrorKind("ErrDuplicateTicketVote")

	// ErrInsufficientQuorum indicates a block carried fewer valid votes
	// than MinValidVotes.
	ErrInsufficientQuorum = ErrorKind("ErrInsufficientQuorum")

	// ErrNotSelectedVoter indicates a vote named a TicketId the lottery
	// did not select for this block.
	ErrNotSelectedVoter = ErrorKind("ErrNotSelectedVoter")

	// ErrInvalidVoteSignature indicates a ticket vote's signature did not
	// verify over the proposed header.
	ErrInvalidVoteSignature = ErrorKind("ErrInvalidVoteSignature")
)

func (e ErrorKind) Error() string {
	return string(e)
}

// RuleError identifies a PoS rule violation. It has full support for
// errors.Is and errors.As via Unwrap.
type RuleError struct {
	ErrorCode   ErrorKind
	Description string
}

func (e RuleError) Error() string {
	return e.Description
}

func (e RuleError) Unwrap() error {
	return e.ErrorCode
}

func ruleError(kind ErrorKind, desc string) RuleError {
	return RuleError{ErrorCode: kind, Description: desc}
}
