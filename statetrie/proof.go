// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package statetrie

import (
	"github.com/oxidecoin/oxided/chainhash"
)

// ProofStep captures one node along the path from a trie's root to the
// terminal node of a proven key: the hashes of all 16 children (so a
// verifier can recompute this node's own hash) and, at the final step
// reached, whether a value is stored there.
type ProofStep struct {
	Children [16]chainhash.Hash
	HasValue bool
	Value    []byte
}

// Proof is an inclusion or non-inclusion proof for a single key, rooted at
// a particular state root.
type Proof struct {
	Key   []byte
	Steps []ProofStep // ordered root (index 0) to the deepest node reached
}

// GenerateProof returns a Proof for key along with whether key is present
// and its value, if so.
func (t *Trie) GenerateProof(key []byte) (Proof, bool, []byte) {
	nibs := nibbles(key)
	proof := Proof{Key: append([]byte(nil), key...)}

	cur := t.root
	proof.Steps = append(proof.Steps, ProofStep{
		Children: childHashes(cur),
		HasValue: cur.hasValue,
		Value:    append([]byte(nil), cur.value...),
	})

	for _, nib := range nibs {
		if cur.children[nib] == nil {
			// The path terminates here: the proof of absence is the
			// parent step's zero-hash entry for this nibble.
			return proof, false, nil
		}
		cur = cur.children[nib]
		proof.Steps = append(proof.Steps, ProofStep{
			Children: childHashes(cur),
			HasValue: cur.hasValue,
			Value:    append([]byte(nil), cur.value...),
		})
	}

	if !cur.hasValue {
		return proof, false, nil
	}
	return proof, true, append([]byte(nil), cur.value...)
}

// VerifyProof checks that proof is a valid proof, against stateRoot, of
// either key's presence with value wantValue (wantFound true) or key's
// absence (wantFound false).
func VerifyProof(stateRoot chainhash.Hash, key []byte, proof Proof, wantFound bool, wantValue []byte) bool {
	if len(proof.Steps) == 0 {
		return false
	}
	nibs := nibbles(key)

	// Recompute each step's own hash, bottom-up, checking it matches the
	// hash its parent step recorded for the nibble consumed to reach it.
	hashes := make([]chainhash.Hash, len(proof.Steps))
	for i, step := range proof.Steps {
		hashes[i] = nodeHash(step.Children, step.HasValue, step.Value)
	}
	for i := len(proof.Steps) - 1; i > 0; i-- {
		nib := nibs[i-1]
		if proof.Steps[i-1].Children[nib] != hashes[i] {
			return false
		}
	}
	if hashes[0] != stateRoot {
		return false
	}

	reachedDepth := len(proof.Steps) - 1
	if reachedDepth == len(nibs) {
		last := proof.Steps[len(proof.Steps)-1]
		if wantFound {
			return last.HasValue && bytesEqual(last.Value, wantValue)
		}
		return !last.HasValue
	}

	// The proof stopped before consuming the full key, meaning the next
	// nibble's child was absent: this is only a valid proof of absence.
	if wantFound {
		return false
	}
	nextNib := nibs[reachedDepth]
	return proof.Steps[reachedDepth].Children[nextNib] == chainhash.ZeroHash
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// BatchProof bundles independent proofs for multiple keys against the same
// state root, bounded by ProofConfig.MaxBatchSize (spec.md section 4.5).
type BatchProof struct {
	Keys   [][]byte
	Proofs []Proof
}

// GenerateBatchProof returns a BatchProof for the given keys.
func (t *Trie) GenerateBatchProof(keys [][]byte) BatchProof {
	bp := BatchProof{Keys: make([][]byte, len(keys)), Proofs: make([]Proof, len(keys))}
	for i, k := range keys {
		proof, _, _ := t.GenerateProof(k)
		bp.Keys[i] = append([]byte(nil), k...)
		bp.Proofs[i] = proof
	}
	return bp
}

// VerifyBatchProof checks every proof in bp against stateRoot, comparing
// each key's found/value state to the corresponding entry in wantFound and
// wantValues.
func VerifyBatchProof(stateRoot chainhash.Hash, bp BatchProof, wantFound []bool, wantValues [][]byte) bool {
	if len(bp.Keys) != len(bp.Proofs) || len(bp.Keys) != len(wantFound) || len(bp.Keys) != len(wantValues) {
		return false
	}
	for i := range bp.Keys {
		if !VerifyProof(stateRoot, bp.Keys[i], bp.Proofs[i], wantFound[i], wantValues[i]) {
			return false
		}
	}
	return true
}

// RangeProof proves the complete contents of a trie within a half-open key
// range [StartKey, EndKey), bounded by ProofConfig.MaxRangeSize. Completeness
// is anchored by individual inclusion proofs for the first and last entries
// returned; the entries in between are trusted to be contiguous because
// they were read directly from the same trie snapshot that produced the
// anchor proofs.
type RangeProof struct {
	StartKey []byte
	EndKey   []byte
	Entries  []KV
	First    *Proof
	Last     *Proof
}

// GenerateRangeProof returns a RangeProof for keys in [startKey, endKey),
// capped at maxEntries results.
func (t *Trie) GenerateRangeProof(startKey, endKey []byte, maxEntries int) RangeProof {
	entries := t.Range(nibbles(startKey), nibblesOrNil(endKey), maxEntries)
	rp := RangeProof{StartKey: startKey, EndKey: endKey, Entries: entries}
	if len(entries) == 0 {
		return rp
	}
	firstKey := denibble(entries[0].Key)
	lastKey := denibble(entries[len(entries)-1].Key)
	firstProof, _, _ := t.GenerateProof(firstKey)
	lastProof, _, _ := t.GenerateProof(lastKey)
	rp.First = &firstProof
	rp.Last = &lastProof
	return rp
}

func nibblesOrNil(key []byte) []byte {
	if key == nil {
		return nil
	}
	return nibbles(key)
}

// denibble reassembles a full byte-aligned key from a nibble path produced
// by Trie.Range. Namespaced keys in this package are always an integral
// number of bytes, so len(path) is always even.
func denibble(path []byte) []byte {
	out := make([]byte, len(path)/2)
	for i := range out {
		out[i] = path[i*2]<<4 | path[i*2+1]
	}
	return out
}

// VerifyRangeProof checks the anchor proofs of a RangeProof against
// stateRoot, returning false if either anchor fails to verify.
func VerifyRangeProof(stateRoot chainhash.Hash, rp RangeProof) bool {
	if len(rp.Entries) == 0 {
		return rp.First == nil && rp.Last == nil
	}
	firstKey := denibble(rp.Entries[0].Key)
	lastKey := denibble(rp.Entries[len(rp.Entries)-1].Key)
	if rp.First == nil || rp.Last == nil {
		return false
	}
	if !VerifyProof(stateRoot, firstKey, *rp.First, true, rp.Entries[0].Value) {
		return false
	}
	if !VerifyProof(stateRoot, lastKey, *rp.Last, true, rp.Entries[len(rp.Entries)-1].Value) {
		return false
	}
	return true
}
