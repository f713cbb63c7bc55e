// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/oxidecoin/oxided/oxidecore"

// The validator's errors are oxidecore.ErrorKind values (spec.md section
// 7's canonical error sum); these names are aliased locally so validator
// code reads as ruleError(ErrProofOfWork, ...) rather than spelling out
// the oxidecore qualifier at every call site.
const (
	ErrBlockValidation       = oxidecore.ErrBlockValidation
	ErrTxValidation          = oxidecore.ErrTxValidation
	ErrProofOfWork           = oxidecore.ErrProofOfWork
	ErrScript                = oxidecore.ErrScript
	ErrCoinbaseMaturity      = oxidecore.ErrCoinbaseMaturity
	ErrDustLimit             = oxidecore.ErrDustLimit
	ErrMissingPreviousOutput = oxidecore.ErrMissingPreviousOutput
	ErrDuplicateTicketVote   = oxidecore.ErrDuplicateTicketVote
	ErrImmatureTicket        = oxidecore.ErrImmatureTicket
	ErrExpiredTicket         = oxidecore.ErrExpiredTicket
	ErrInvalidSignature      = oxidecore.ErrInvalidSignature
	ErrSerialization         = oxidecore.ErrSerialization
	ErrStorage               = oxidecore.ErrStorage
	ErrInternal              = oxidecore.ErrInternal
)

func ruleError(kind oxidecore.ErrorKind, desc string) *oxidecore.Error {
	return oxidecore.NewError(kind, desc)
}
