// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"bytes"
	"crypto/ed25519"

	"github.com/jrick/bitset"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// sigHash returns the message a ticket vote's signature is computed over:
// the full serialized proposed header, including its nonce (spec.md
// section 4.6, "signatures cover the proposed block header").
func sigHash(header *wire.BlockHeader) []byte {
	var buf bytes.Buffer
	header.Serialize(&buf)
	return buf.Bytes()
}

// ValidateVotes checks a candidate block's ticket_votes against the live
// tickets pool as of the parent's state (spec.md section 4.6): every voted
// TicketId must be Live, must appear in this block's voter lottery
// selection, must vote at most once, and its signature must verify over
// the proposed header under the ticket's purchase-time public key.
//
// It returns the tickets the lottery selected and a bitset, indexed by
// position within that selection, recording which selected tickets voted;
// MissedTickets derives the selected-but-absent set from the same bitset
// rather than re-deriving voted status from votes a second time.
func ValidateVotes(header *wire.BlockHeader, prevHash chainhash.Hash, pool *Pool, votes []wire.TicketVote, votersPerBlock, minValidVotes int) ([]wire.TicketId, bitset.Bytes, error) {
	selected := SelectVoters(prevHash, pool, votersPerBlock)
	voted := bitset.NewBytes(len(selected))

	msg := sigHash(header)
	validVotes := 0

	for _, v := range votes {
		idx, ok := voteBitIndex(selected, v.TicketID)
		if !ok {
			return selected, voted, ruleError(ErrNotSelectedVoter,
				"ticket "+v.TicketID.String()+" was not selected by the voter lottery for this block")
		}
		if voted.Get(idx) {
			return selected, voted, ruleError(ErrDuplicateTicketVote,
				"ticket "+v.TicketID.String()+" voted more than once in the same block")
		}

		ticket, ok := pool.Get(v.TicketID)
		if !ok {
			return selected, voted, ruleError(ErrTicketNotFound,
				"voted ticket "+v.TicketID.String()+" is not present in the live tickets pool")
		}
		if ticket.Status != StatusLive {
			return selected, voted, ruleError(ErrTicketNotFound,
				"voted ticket "+v.TicketID.String()+" is not Live in the live tickets pool")
		}

		if !ed25519.Verify(ticket.PubKey[:], msg, v.Signature[:]) {
			return selected, voted, ruleError(ErrInvalidVoteSignature,
				"signature for ticket "+v.TicketID.String()+" does not verify over the proposed header")
		}
		voted.Set(idx)
		validVotes++
	}

	if validVotes < minValidVotes {
		return selected, voted, ruleError(ErrInsufficientQuorum,
			"block carries insufficient valid ticket votes for PoS quorum")
	}
	return selected, voted, nil
}
