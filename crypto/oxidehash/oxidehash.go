// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oxidehash implements OxideHash, the memory-hard proof-of-work
// function defined in spec.md section 4.1: a 1 GiB scratchpad filled and
// then repeatedly read/mutated/written by a BLAKE3-driven sequential walk,
// designed to resist both ASIC acceleration and trivial GPU parallelism.
package oxidehash

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

const (
	// DefaultScratchpadSize is the production scratchpad size: 1 GiB.
	DefaultScratchpadSize = 1 << 30

	// DefaultIterations is the production iteration count.
	DefaultIterations = 1 << 20
)

// Hasher computes OxideHash digests against a scratchpad of a configured
// size. Production code uses NewHasher(DefaultScratchpadSize,
// DefaultIterations); tests use a far smaller scratchpad so the algorithm's
// shape can be exercised without allocating a gigabyte per call.
type Hasher struct {
	scratchpadSize int
	iterations     int
	scratchpad     []byte
}

// NewHasher returns a Hasher with its own scratchpad buffer, reused across
// calls to Sum to avoid repeated gigabyte-scale allocation. scratchpadSize
// must be a multiple of 32.
func NewHasher(scratchpadSize, iterations int) *Hasher {
	return &Hasher{
		scratchpadSize: scratchpadSize,
		iterations:     iterations,
		scratchpad:     make([]byte, scratchpadSize),
	}
}

// New returns a Hasher configured with the production scratchpad size and
// iteration count named in spec.md section 4.1.
func New() *Hasher {
	return NewHasher(DefaultScratchpadSize, DefaultIterations)
}

// Sum computes the OxideHash digest of seed, the 32-byte initial seed
// derived from a block header's no-nonce encoding combined with its trial
// nonce. It is safe to call repeatedly on the same Hasher; the scratchpad
// is fully overwritten by each call's fill phase.
func (h *Hasher) Sum(seed [32]byte) [32]byte {
	h.fillScratchpad(seed)
	return h.mix(seed)
}

// fillScratchpad fills the scratchpad block by block: the 32 bytes at
// offset i are BLAKE3(seed||i), with i encoded as a little-endian uint64.
func (h *Hasher) fillScratchpad(seed [32]byte) {
	var counter [8]byte
	for i := 0; i < h.scratchpadSize; i += 32 {
		binary.LittleEndian.PutUint64(counter[:], uint64(i))
		hasher := blake3.New(32, nil)
		hasher.Write(seed[:])
		hasher.Write(counter[:])
		copy(h.scratchpad[i:i+32], hasher.Sum(nil))
	}
}

// mix performs the iterative read/compute/write walk over the filled
// scratchpad and returns the final digest.
func (h *Hasher) mix(seed [32]byte) [32]byte {
	state := seed
	addressSpace := uint64(h.scratchpadSize - 32)

	var iterCounter [8]byte
	var writeCounter [8]byte
	for i := 0; i < h.iterations; i++ {
		binary.LittleEndian.PutUint64(iterCounter[:], uint64(i))
		readHasher := blake3.New(32, nil)
		readHasher.Write(state[:])
		readHasher.Write(iterCounter[:])
		readSeed := readHasher.Sum(nil)
		readAddr := binary.LittleEndian.Uint64(readSeed[:8]) % addressSpace

		var xored [32]byte
		readData := h.scratchpad[readAddr : readAddr+32]
		for k := 0; k < 32; k++ {
			xored[k] = state[k] ^ readData[k]
		}
		newState := blake3.Sum256(xored[:])
		state = newState

		binary.LittleEndian.PutUint64(writeCounter[:], ^uint64(i))
		writeHasher := blake3.New(32, nil)
		writeHasher.Write(state[:])
		writeHasher.Write(writeCounter[:])
		writeSeed := writeHasher.Sum(nil)
		writeAddr := binary.LittleEndian.Uint64(writeSeed[:8]) % addressSpace

		copy(h.scratchpad[writeAddr:writeAddr+32], state[:])
	}

	final := blake3.New(32, nil)
	final.Write(h.scratchpad[0:32])
	final.Write(state[:])
	final.Write(h.scratchpad[h.scratchpadSize-32 : h.scratchpadSize])
	var out [32]byte
	copy(out[:], final.Sum(nil))
	return out
}
