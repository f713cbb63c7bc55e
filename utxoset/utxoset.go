// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utxoset implements the unspent transaction output set (spec.md
// section 4.2): a goleveldb-backed key/value store, namespaced by key
// prefix the way an embedded database emulates column families, with an
// undo log so a block can be disconnected during a reorg without a full
// rescan.
package utxoset

import (
	"encoding/binary"
	"errors"

	"github.com/decred/slog"
	"github.com/syndtr/goleveldb/leveldb"
	gldbutil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Key prefixes emulate column families within a single leveldb instance, in
// the style of the Merkle Patricia Trie's namespaced keys (spec.md section
// 4.5): one logical table per prefix.
var (
	prefixUTXO = []byte("utxo:")
	prefixUndo = []byte("undo:")
)

// Entry is a single unspent transaction output, as stored in the set.
type Entry struct {
	Value           int64
	PkScript        []byte
	IsCoinbase      bool
	BlockHeight     uint64
}

// ErrNotFound is returned when a previous output is not present in the set.
var ErrNotFound = errors.New("utxoset: output not found")

// Set is the UTXO set, backed by a leveldb database.
type Set struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) the UTXO set at dbPath.
func Open(dbPath string) (*Set, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, err
	}
	return &Set{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Set) Close() error {
	return s.db.Close()
}

func utxoKey(op wire.OutPoint) []byte {
	key := make([]byte, 0, len(prefixUTXO)+chainhash.HashSize+4)
	key = append(key, prefixUTXO...)
	key = append(key, op.Hash[:]...)
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], op.Index)
	key = append(key, idx[:]...)
	return key
}

func undoKey(blockHash chainhash.Hash) []byte {
	key := make([]byte, 0, len(prefixUndo)+chainhash.HashSize)
	key = append(key, prefixUndo...)
	key = append(key, blockHash[:]...)
	return key
}

func serializeEntry(e *Entry) []byte {
	buf := make([]byte, 0, 17+len(e.PkScript))
	var val [8]byte
	binary.LittleEndian.PutUint64(val[:], uint64(e.Value))
	buf = append(buf, val[:]...)
	var height [8]byte
	binary.LittleEndian.PutUint64(height[:], e.BlockHeight)
	buf = append(buf, height[:]...)
	if e.IsCoinbase {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, e.PkScript...)
	return buf
}

func deserializeEntry(data []byte) (*Entry, error) {
	if len(data) < 17 {
		return nil, errors.New("utxoset: corrupt entry")
	}
	e := &Entry{
		Value:       int64(binary.LittleEndian.Uint64(data[0:8])),
		BlockHeight: binary.LittleEndian.Uint64(data[8:16]),
		IsCoinbase:  data[16] == 1,
		PkScript:    append([]byte(nil), data[17:]...),
	}
	return e, nil
}

// FetchEntry returns the unspent output identified by op, or ErrNotFound.
func (s *Set) FetchEntry(op wire.OutPoint) (*Entry, error) {
	data, err := s.db.Get(utxoKey(op), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return deserializeEntry(data)
}

// HasEntry reports whether op is present and unspent.
func (s *Set) HasEntry(op wire.OutPoint) (bool, error) {
	return s.db.Has(utxoKey(op), nil)
}

// undoRecord captures a single spent output so ConnectBlock's effects can
// be reversed by DisconnectBlock.
type undoRecord struct {
	OutPoint wire.OutPoint
	Entry    Entry
}

// ConnectBlock atomically applies a block's transactions to the set:
// removing every spent input's entry (after first recording it for undo)
// and adding every new output, for transactions whose outputs are spendable
// (script.IsUnspendable outputs are never added, since they can never be
// referenced as a previous output).
func (s *Set) ConnectBlock(blockHash chainhash.Hash, height uint64, txs []*wire.MsgTx, isUnspendable func([]byte) bool) error {
	batch := new(leveldb.Batch)
	var undo []undoRecord

	for _, tx := range txs {
		if !tx.IsCoinbase() {
			for _, in := range tx.Inputs {
				entry, err := s.FetchEntry(in.PreviousOutPoint)
				if err != nil {
					return err
				}
				undo = append(undo, undoRecord{OutPoint: in.PreviousOutPoint, Entry: *entry})
				batch.Delete(utxoKey(in.PreviousOutPoint))
			}
		}

		txHash := tx.TxHash()
		for i, out := range tx.Outputs {
			if isUnspendable(out.PkScript) {
				continue
			}
			op := wire.OutPoint{Hash: txHash, Index: uint32(i)}
			entry := &Entry{
				Value:       out.Value,
				PkScript:    out.PkScript,
				IsCoinbase:  tx.IsCoinbase(),
				BlockHeight: height,
			}
			batch.Put(utxoKey(op), serializeEntry(entry))
		}
	}

	batch.Put(undoKey(blockHash), serializeUndo(undo))

	if err := s.db.Write(batch, nil); err != nil {
		return err
	}
	log.Debugf("connected block %s at height %d: %d txs", blockHash, height, len(txs))
	return nil
}

// DisconnectBlock reverses the effects of a prior ConnectBlock call for the
// same block hash: removing the outputs it added and restoring the entries
// it spent.
func (s *Set) DisconnectBlock(blockHash chainhash.Hash, txs []*wire.MsgTx, isUnspendable func([]byte) bool) error {
	data, err := s.db.Get(undoKey(blockHash), nil)
	if err != nil {
		return err
	}
	undo, err := deserializeUndo(data)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	for _, tx := range txs {
		txHash := tx.TxHash()
		for i, out := range tx.Outputs {
			if isUnspendable(out.PkScript) {
				continue
			}
			batch.Delete(utxoKey(wire.OutPoint{Hash: txHash, Index: uint32(i)}))
		}
	}
	for _, rec := range undo {
		batch.Put(utxoKey(rec.OutPoint), serializeEntry(&rec.Entry))
	}
	batch.Delete(undoKey(blockHash))

	if err := s.db.Write(batch, nil); err != nil {
		return err
	}
	log.Debugf("disconnected block %s: restored %d spent outputs", blockHash, len(undo))
	return nil
}

func serializeUndo(records []undoRecord) []byte {
	buf := make([]byte, 0, 64*len(records))
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(records)))
	buf = append(buf, count[:]...)
	for _, r := range records {
		buf = append(buf, r.OutPoint.Hash[:]...)
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], r.OutPoint.Index)
		buf = append(buf, idx[:]...)
		entryBytes := serializeEntry(&r.Entry)
		var elen [4]byte
		binary.LittleEndian.PutUint32(elen[:], uint32(len(entryBytes)))
		buf = append(buf, elen[:]...)
		buf = append(buf, entryBytes...)
	}
	return buf
}

func deserializeUndo(data []byte) ([]undoRecord, error) {
	if len(data) < 4 {
		return nil, errors.New("utxoset: corrupt undo record")
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	offset := 4
	records := make([]undoRecord, 0, count)
	for i := uint32(0); i < count; i++ {
		if offset+chainhash.HashSize+4+4 > len(data) {
			return nil, errors.New("utxoset: truncated undo record")
		}
		var hash chainhash.Hash
		copy(hash[:], data[offset:offset+chainhash.HashSize])
		offset += chainhash.HashSize
		idx := binary.LittleEndian.Uint32(data[offset : offset+4])
		offset += 4
		elen := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		offset += 4
		if offset+elen > len(data) {
			return nil, errors.New("utxoset: truncated undo entry")
		}
		entry, err := deserializeEntry(data[offset : offset+elen])
		if err != nil {
			return nil, err
		}
		offset += elen
		records = append(records, undoRecord{
			OutPoint: wire.OutPoint{Hash: hash, Index: idx},
			Entry:    *entry,
		})
	}
	return records, nil
}

// Size returns the number of entries currently in the UTXO namespace. It
// scans the full prefix range and is intended for diagnostics, not hot
// paths.
func (s *Set) Size() (int, error) {
	iter := s.db.NewIterator(gldbutil.BytesPrefix(prefixUTXO), nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}
