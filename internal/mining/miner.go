// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining implements the cooperative nonce-search loop that solves
// a candidate block's proof of work (spec.md section 9, "nonce search
// (mining) is cooperatively cancellable on new-tip events"): a worker
// pool that searches disjoint nonce ranges in parallel and stops as soon
// as one worker finds a solution or the caller cancels the search,
// typically because a competing block has extended the tip.
package mining

import (
	"context"
	"math"
	"math/big"
	"runtime"
	"sync"

	"github.com/decred/slog"

	"github.com/oxidecoin/oxided/blockchain/standalone"
	"github.com/oxidecoin/oxided/crypto/oxidehash"
	"github.com/oxidecoin/oxided/wire"
)

// log is the package-level logger, a no-op until UseLogger is called.
var log = slog.Disabled

// UseLogger sets the package-level logger used by this package.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Miner searches for a header nonce whose OxideHash digest meets a target
// difficulty, spreading the search across a configurable number of worker
// goroutines and stopping promptly when the supplied context is
// canceled. Each worker owns its own Hasher (and therefore its own
// gigabyte-scale scratchpad), since a Hasher's scratchpad is overwritten
// by every call to Sum and so cannot be shared across goroutines.
type Miner struct {
	numWorkers int
	newHasher  func() *oxidehash.Hasher
}

// New returns a Miner using numWorkers goroutines; numWorkers <= 0
// defaults to runtime.NumCPU. newHasher lets tests substitute a small
// scratchpad; production callers should pass oxidehash.New.
func New(numWorkers int, newHasher func() *oxidehash.Hasher) *Miner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Miner{numWorkers: numWorkers, newHasher: newHasher}
}

// solveResult is a single worker's report: either a solving nonce, or
// nothing if its range was exhausted or the search was canceled.
type solveResult struct {
	nonce uint64
	found bool
}

// Solve searches for a nonce that makes header's OxideHash digest meet
// maxDiffTarget and header.DifficultyTarget, dividing the uint32 nonce
// space into m.numWorkers disjoint, interleaved ranges so workers never
// duplicate each other's work. It returns the solving nonce and true on
// success, or false if every range is exhausted or ctx is canceled first.
// header is passed by value and never mutated; the caller applies the
// returned nonce to its own copy.
func (m *Miner) Solve(ctx context.Context, header wire.BlockHeader, maxDiffTarget *big.Int) (uint64, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan solveResult, m.numWorkers)
	var wg sync.WaitGroup
	for worker := 0; worker < m.numWorkers; worker++ {
		wg.Add(1)
		go func(start uint32) {
			defer wg.Done()
			m.searchRange(ctx, header, maxDiffTarget, start, uint32(m.numWorkers), results)
		}(uint32(worker))
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.found {
			cancel()
			log.Debugf("solved block at height %d with nonce %d", header.Height, r.nonce)
			return r.nonce, true
		}
	}
	return 0, false
}

// searchRange tries every nonce congruent to start modulo stride against
// its own Hasher, reporting at most one result: a solution, or nothing if
// the range is exhausted or ctx is canceled. It checks for cancellation
// every cancelCheckInterval attempts rather than on every iteration,
// since OxideHash itself dominates the cost of each attempt.
func (m *Miner) searchRange(ctx context.Context, header wire.BlockHeader, maxDiffTarget *big.Int, start, stride uint32, results chan<- solveResult) {
	const cancelCheckInterval = 16
	hasher := m.newHasher()

	var attempts uint64
	for nonce := uint64(start); nonce <= math.MaxUint32; nonce += uint64(stride) {
		if attempts%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}
		attempts++

		header.Nonce = nonce
		digest := hasher.Sum(header.BlockHash())
		if standalone.VerifyProofOfWork(digest, header.DifficultyTarget, maxDiffTarget) {
			select {
			case results <- solveResult{nonce: header.Nonce, found: true}:
			case <-ctx.Done():
			}
			return
		}
	}
}
