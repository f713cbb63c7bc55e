// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"

	"github.com/oxidecoin/oxided/chainhash"
)

// TxType discriminates the ten consensus-serialized transaction variants
// named in spec.md section 3. Transactions are modeled as a single struct
// tagged by Type rather than a Go sum type (Go has none): validator logic
// switches exhaustively on Type and reads the matching payload field, per
// the "dynamic dispatch over transaction variants" design note.
type TxType uint8

const (
	TxTypeStandard TxType = iota
	TxTypeCoinbase
	TxTypeTicketPurchase
	TxTypeTicketRedemption
	TxTypeMasternodeRegister
	TxTypeMasternodeCollateral
	TxTypeMasternodeSlash
	TxTypeGovernanceProposal
	TxTypeGovernanceVote
	TxTypeActivateProposal
)

// String returns a human-readable transaction type name, used in audit
// events and error messages.
func (t TxType) String() string {
	switch t {
	case TxTypeStandard:
		return "standard"
	case TxTypeCoinbase:
		return "coinbase"
	case TxTypeTicketPurchase:
		return "ticket-purchase"
	case TxTypeTicketRedemption:
		return "ticket-redemption"
	case TxTypeMasternodeRegister:
		return "masternode-register"
	case TxTypeMasternodeCollateral:
		return "masternode-collateral"
	case TxTypeMasternodeSlash:
		return "masternode-slash"
	case TxTypeGovernanceProposal:
		return "governance-proposal"
	case TxTypeGovernanceVote:
		return "governance-vote"
	case TxTypeActivateProposal:
		return "activate-proposal"
	default:
		return "unknown"
	}
}

// HasFee reports whether this variant is monetary and therefore carries a
// meaningful Fee field, per spec.md section 3 ("monetary variants have
// fee").
func (t TxType) HasFee() bool {
	switch t {
	case TxTypeCoinbase, TxTypeGovernanceProposal, TxTypeGovernanceVote, TxTypeActivateProposal:
		return false
	default:
		return true
	}
}

// TxIn is a single transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut is a single transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// GovernanceProposalPayload carries the fields specific to a
// GovernanceProposal transaction.
type GovernanceProposalPayload struct {
	ProposalID      chainhash.Hash
	ProposalType    uint8
	StartHeight     uint64
	EndHeight       uint64
	ProposerPayout  OutPoint
	StakedAmount    int64
}

// GovernanceVotePayload carries the fields specific to a GovernanceVote
// transaction.
type GovernanceVotePayload struct {
	ProposalID chainhash.Hash
	VoterID    chainhash.Hash
	Choice     uint8 // 0=yes 1=no 2=abstain
}

// ActivateProposalPayload carries the fields specific to an
// ActivateProposal transaction, admitted only after a proposal is Approved.
type ActivateProposalPayload struct {
	ProposalID chainhash.Hash
	Parameter  string
	NewValue   []byte
}

// MasternodeSlashPayload carries the fields specific to a
// MasternodeSlash transaction.
type MasternodeSlashPayload struct {
	MasternodeID MasternodeID
	Reason       uint8
	ProofData    []byte
}

// TicketPayload carries the fields specific to a TicketPurchase or
// TicketRedemption transaction.
type TicketPayload struct {
	TicketID      TicketId
	PayoutScript  []byte
}

// MsgTx is the consensus-serialized transaction, tagged by Type per
// spec.md section 3.
type MsgTx struct {
	Type     TxType
	Inputs   []*TxIn
	Outputs  []*TxOut
	LockTime uint32
	Witness  [][]byte // one entry per input, Ed25519 signature bytes or empty

	Fee int64 // meaningful only when Type.HasFee()

	Ticket      *TicketPayload
	Proposal    *GovernanceProposalPayload
	Vote        *GovernanceVotePayload
	Activation  *ActivateProposalPayload
	Slash       *MasternodeSlashPayload
}

// Serialize writes the deterministic consensus encoding of tx to w.
func (tx *MsgTx) Serialize(w *bytes.Buffer) error {
	w.WriteByte(byte(tx.Type))
	if err := WriteVarInt(w, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := writeElement(w, in.PreviousOutPoint.Hash); err != nil {
			return err
		}
		if err := writeElement(w, in.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarBytes(w, in.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, in.Sequence); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := writeElement(w, out.Value); err != nil {
			return err
		}
		if err := WriteVarBytes(w, out.PkScript); err != nil {
			return err
		}
	}
	if err := writeElement(w, tx.LockTime); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(tx.Witness))); err != nil {
		return err
	}
	for _, wit := range tx.Witness {
		if err := WriteVarBytes(w, wit); err != nil {
			return err
		}
	}
	if tx.Type.HasFee() {
		if err := writeElement(w, tx.Fee); err != nil {
			return err
		}
	}
	if err := tx.serializeVariantPayload(w); err != nil {
		return err
	}
	return nil
}

func (tx *MsgTx) serializeVariantPayload(w *bytes.Buffer) error {
	switch tx.Type {
	case TxTypeTicketPurchase, TxTypeTicketRedemption:
		if tx.Ticket == nil {
			return nil
		}
		if err := writeElement(w, tx.Ticket.TicketID); err != nil {
			return err
		}
		return WriteVarBytes(w, tx.Ticket.PayoutScript)
	case TxTypeMasternodeSlash:
		if tx.Slash == nil {
			return nil
		}
		if err := writeElement(w, tx.Slash.MasternodeID.Hash); err != nil {
			return err
		}
		if err := writeElement(w, tx.Slash.MasternodeID.Index); err != nil {
			return err
		}
		w.WriteByte(tx.Slash.Reason)
		return WriteVarBytes(w, tx.Slash.ProofData)
	case TxTypeGovernanceProposal:
		if tx.Proposal == nil {
			return nil
		}
		p := tx.Proposal
		if err := writeElement(w, p.ProposalID); err != nil {
			return err
		}
		w.WriteByte(p.ProposalType)
		if err := writeElement(w, p.StartHeight); err != nil {
			return err
		}
		if err := writeElement(w, p.EndHeight); err != nil {
			return err
		}
		if err := writeElement(w, p.ProposerPayout.Hash); err != nil {
			return err
		}
		if err := writeElement(w, p.ProposerPayout.Index); err != nil {
			return err
		}
		return writeElement(w, p.StakedAmount)
	case TxTypeGovernanceVote:
		if tx.Vote == nil {
			return nil
		}
		v := tx.Vote
		if err := writeElement(w, v.ProposalID); err != nil {
			return err
		}
		if err := writeElement(w, v.VoterID); err != nil {
			return err
		}
		w.WriteByte(v.Choice)
		return nil
	case TxTypeActivateProposal:
		if tx.Activation == nil {
			return nil
		}
		a := tx.Activation
		if err := writeElement(w, a.ProposalID); err != nil {
			return err
		}
		if err := WriteVarBytes(w, []byte(a.Parameter)); err != nil {
			return err
		}
		return WriteVarBytes(w, a.NewValue)
	default:
		return nil
	}
}

// Bytes returns the serialized encoding of tx.
func (tx *MsgTx) Bytes() []byte {
	var buf bytes.Buffer
	// Serialize never returns an error for a well-formed in-memory tx; a
	// bytes.Buffer write cannot fail.
	_ = tx.Serialize(&buf)
	return buf.Bytes()
}

// SerializeSize returns the number of bytes tx occupies once serialized.
func (tx *MsgTx) SerializeSize() int {
	return len(tx.Bytes())
}

// TxHash computes the txid: the BLAKE3 hash of the deterministic encoding.
func (tx *MsgTx) TxHash() chainhash.Hash {
	return chainhash.Hash256(tx.Bytes())
}

// IsCoinbase reports whether tx is a coinbase transaction: its Type is
// TxTypeCoinbase and it has exactly one input whose previous output is the
// null outpoint, per spec.md section 3.
func (tx *MsgTx) IsCoinbase() bool {
	if tx.Type != TxTypeCoinbase {
		return false
	}
	return len(tx.Inputs) == 1 && tx.Inputs[0].PreviousOutPoint.IsNull()
}

// TotalOut returns the sum of all output values.
func (tx *MsgTx) TotalOut() int64 {
	var total int64
	for _, out := range tx.Outputs {
		total += out.Value
	}
	return total
}
