// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/jrick/bitset"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// lotteryScore computes the per-ticket lottery score: the little-endian
// uint64 formed from the first 8 bytes of BLAKE3(prevHash ‖ ticketID)
// (spec.md section 4.6, "Voter lottery").
func lotteryScore(prevHash chainhash.Hash, ticketID wire.TicketId) uint64 {
	h := chainhash.Hash256(prevHash[:], ticketID[:])
	return binary.LittleEndian.Uint64(h[:8])
}

// SelectVoters runs the deterministic voter lottery over every Live ticket
// in pool, given the previous block's hash, returning up to votersPerBlock
// TicketIds ordered by descending lottery score. Ties are broken by
// descending raw byte order of the ticket ID, which selects the same set
// as rusty-core's select_voters (which sorts ascending by (score,
// ticket_id) and takes the tail): reversing both the primary score and the
// tiebreak key reproduces an equivalent top-N selection without needing a
// second pass to reverse the result.
func SelectVoters(prevHash chainhash.Hash, pool *Pool, votersPerBlock int) []wire.TicketId {
	liveIDs := pool.LiveTicketIDsSorted()

	type scored struct {
		id    wire.TicketId
		score uint64
	}
	scores := make([]scored, len(liveIDs))
	for i, id := range liveIDs {
		scores[i] = scored{id: id, score: lotteryScore(prevHash, id)}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return bytes.Compare(scores[i].id[:], scores[j].id[:]) > 0
	})

	if votersPerBlock > len(scores) {
		votersPerBlock = len(scores)
	}
	selected := make([]wire.TicketId, votersPerBlock)
	for i := 0; i < votersPerBlock; i++ {
		selected[i] = scores[i].id
	}
	return selected
}

// voteBitIndex returns the position of id within selected, the bit that
// position occupies in the voted bitset ValidateVotes and MissedTickets
// share.
func voteBitIndex(selected []wire.TicketId, id wire.TicketId) (int, bool) {
	for i, s := range selected {
		if s == id {
			return i, true
		}
	}
	return -1, false
}

// isSelected reports whether id appears in selected.
func isSelected(id wire.TicketId, selected []wire.TicketId) bool {
	_, ok := voteBitIndex(selected, id)
	return ok
}

// MissedTickets returns every TicketId in selected whose bit is unset in
// voted: selected-and-not-signed tickets transition to Missed (spec.md
// section 4.6, "Quorum").
func MissedTickets(selected []wire.TicketId, voted bitset.Bytes) []wire.TicketId {
	var missed []wire.TicketId
	for i, id := range selected {
		if !voted.Get(i) {
			missed = append(missed, id)
		}
	}
	return missed
}
