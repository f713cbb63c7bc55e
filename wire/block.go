// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/oxidecoin/oxided/chainhash"
)

// BlockHeader is the fixed-size, consensus-serialized block header
// (spec.md section 3).
type BlockHeader struct {
	Version           uint32
	PrevHash          chainhash.Hash
	MerkleRoot        chainhash.Hash
	StateRoot         chainhash.Hash
	Timestamp         uint64
	DifficultyTarget  uint32 // compact encoding, see blockchain/standalone
	Nonce             uint64
	Height            uint64
}

// TicketVote pairs a selected ticket with its signature over the proposed
// block header, per spec.md section 3.
type TicketVote struct {
	TicketID  TicketId
	Signature Signature
}

// Block is the full consensus-serialized block (spec.md section 3).
type Block struct {
	Header       BlockHeader
	Transactions []*MsgTx
	TicketVotes  []TicketVote
}

// SerializeHeaderNoNonce writes the header encoding used as OxideHash's
// input, omitting the nonce field so that mining can vary the nonce without
// re-serializing the rest of the header for every attempt.
func (h *BlockHeader) SerializeHeaderNoNonce(w *bytes.Buffer) {
	var tmp [4]byte
	putUint32(tmp[:], h.Version)
	w.Write(tmp[:])
	w.Write(h.PrevHash[:])
	w.Write(h.MerkleRoot[:])
	w.Write(h.StateRoot[:])
	var tmp8 [8]byte
	putUint64(tmp8[:], h.Timestamp)
	w.Write(tmp8[:])
	putUint32(tmp[:], h.DifficultyTarget)
	w.Write(tmp[:])
	putUint64(tmp8[:], h.Height)
	w.Write(tmp8[:])
}

// Serialize writes the full consensus encoding of the header, including the
// nonce.
func (h *BlockHeader) Serialize(w *bytes.Buffer) {
	h.SerializeHeaderNoNonce(w)
	var tmp8 [8]byte
	putUint64(tmp8[:], h.Nonce)
	w.Write(tmp8[:])
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// BlockHash returns the block's identifying hash: the BLAKE3 hash of its
// full serialized header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	var buf bytes.Buffer
	h.Serialize(&buf)
	return chainhash.Hash256(buf.Bytes())
}

// SerializeSize returns the serialized size, in bytes, of the full block:
// header plus every transaction plus the ticket-vote vector. This is the
// quantity the adaptive block size limit (spec.md section 4.3) is measured
// against.
func (b *Block) SerializeSize() int {
	var buf bytes.Buffer
	b.Header.Serialize(&buf)
	size := buf.Len()
	for _, tx := range b.Transactions {
		size += tx.SerializeSize()
	}
	size += len(b.TicketVotes) * (chainhash.HashSize + SignatureSize)
	return size
}

// ComputeMerkleRoot recomputes the Merkle root over the block's transaction
// IDs, per spec.md section 3.
func (b *Block) ComputeMerkleRoot() chainhash.Hash {
	leaves := make([]chainhash.Hash, len(b.Transactions))
	for i, tx := range b.Transactions {
		leaves[i] = tx.TxHash()
	}
	return chainhash.MerkleRoot(leaves)
}
