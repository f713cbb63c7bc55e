// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool holds unconfirmed transactions awaiting inclusion in a
// block, ordered by fee rate for template construction (spec.md section
// 4.9). Unlike every other ordering concern in this module, which is
// grounded on a library from the example pack, fee-priority ordering here
// is built directly on container/heap: none of the corpus's dependencies
// (github.com/decred/dcrd/container/lru, lukechampine.com/blake3,
// github.com/jrick/bitset) model a priority queue, and dcrd's own mempool
// (internal/mempool/mempool.go in the teacher tree) orders candidates with
// a hand-rolled sort.Slice call over a fee-rate key rather than a
// maintained heap, so there is no ecosystem library to reach for here
// either. See DESIGN.md for the full justification.
package mempool

import (
	"container/heap"
	"sync"

	"github.com/decred/slog"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// log is the package-level logger, a no-op until UseLogger is called.
var log = slog.Disabled

// UseLogger sets the package-level logger used by this package.
func UseLogger(logger slog.Logger) {
	log = logger
}

// entry wraps a pooled transaction with the fields its priority ordering
// needs precomputed, rather than recomputed on every comparison.
type entry struct {
	tx       *wire.MsgTx
	txid     chainhash.Hash
	feeRate  float64 // tx.Fee / SerializeSize, atoms per byte
	size     int
	index    int // heap.Interface bookkeeping
}

// feeHeap is a max-heap of pooled transactions ordered by descending fee
// rate, with ties broken by ascending txid byte order so that block
// template construction is deterministic across nodes holding the same
// mempool contents.
type feeHeap []*entry

func (h feeHeap) Len() int { return len(h) }

func (h feeHeap) Less(i, j int) bool {
	if h[i].feeRate != h[j].feeRate {
		return h[i].feeRate > h[j].feeRate
	}
	return compareTxIDs(h[i].txid, h[j].txid) < 0
}

func (h feeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *feeHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *feeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

func compareTxIDs(a, b chainhash.Hash) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Pool is the set of unconfirmed transactions known to this node, ordered
// for block template construction by descending fee rate.
type Pool struct {
	mu      sync.Mutex
	byTxID  map[chainhash.Hash]*entry
	byFee   feeHeap
}

// New returns an empty mempool.
func New() *Pool {
	return &Pool{byTxID: make(map[chainhash.Hash]*entry)}
}

// Add inserts tx into the pool, computing its fee rate from tx.Fee and its
// serialized size. It rejects a transaction already present by txid.
func (p *Pool) Add(tx *wire.MsgTx) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	txid := tx.TxHash()
	if _, ok := p.byTxID[txid]; ok {
		return ruleError(ErrDuplicateTransaction, "transaction "+txid.String()+" already in mempool")
	}
	size := tx.SerializeSize()
	e := &entry{
		tx:      tx,
		txid:    txid,
		size:    size,
		feeRate: float64(tx.Fee) / float64(size),
	}
	p.byTxID[txid] = e
	heap.Push(&p.byFee, e)
	log.Debugf("accepted %s into mempool (fee rate %.4f atoms/byte)", txid, e.feeRate)
	return nil
}

// Remove drops a transaction from the pool, typically once it has been
// mined or evicted for conflicting with a newly connected block.
func (p *Pool) Remove(txid chainhash.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.byTxID[txid]
	if !ok {
		return
	}
	delete(p.byTxID, txid)
	heap.Remove(&p.byFee, e.index)
}

// Has reports whether txid is currently pooled.
func (p *Pool) Has(txid chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byTxID[txid]
	return ok
}

// Count returns the number of transactions currently pooled.
func (p *Pool) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byTxID)
}

// GetTransactionsForBlockTemplate returns pooled transactions in
// descending fee-rate order (ties broken by txid) up to maxSize bytes of
// combined serialized size, without removing them from the pool. The
// returned slice is the candidate transaction list for a block under
// construction; the caller is responsible for any additional validation
// (conflicting inputs, consensus-rule rejection) before including them.
func (p *Pool) GetTransactionsForBlockTemplate(maxSize uint64) []*wire.MsgTx {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Heap operations mutate an entry's index in place; snapshot copies
	// so ranking a template never disturbs the live pool's heap
	// invariant (needed for future heap.Remove calls on the originals).
	ordered := make(feeHeap, len(p.byFee))
	for i, e := range p.byFee {
		snapshot := *e
		ordered[i] = &snapshot
	}
	heap.Init(&ordered)

	var out []*wire.MsgTx
	var total uint64
	for ordered.Len() > 0 {
		e := heap.Pop(&ordered).(*entry)
		if total+uint64(e.size) > maxSize {
			continue
		}
		total += uint64(e.size)
		out = append(out, e.tx)
	}
	return out
}
