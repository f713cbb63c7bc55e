// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package statetrie implements the Merkle Patricia Trie that commits the
// chain's entire non-UTXO-set state — tickets, masternodes, and governance
// proposals share one trie keyed by namespaced byte strings — to a single
// 32-byte state root carried in every block header (spec.md section 4.5).
//
// Keys are walked one hex nibble (4 bits) at a time, giving a radix-16
// branching factor; each node's hash commits to its 16 children and any
// value stored at that exact path, so a single state root authenticates
// the entire key space.
package statetrie

import (
	"encoding/binary"
	"sort"

	"github.com/oxidecoin/oxided/chainhash"
)

// node is a single trie node: a 16-way branch over hex nibbles, optionally
// terminating a key at this path with a stored value.
type node struct {
	children [16]*node
	hasValue bool
	value    []byte
}

// nodeHash computes the BLAKE3 commitment of a node's content: a flag byte,
// the value if present, and each of the 16 children's hashes (the zero
// hash standing in for an absent child).
func nodeHash(children [16]chainhash.Hash, hasValue bool, value []byte) chainhash.Hash {
	parts := make([][]byte, 0, 18)
	if hasValue {
		parts = append(parts, []byte{1})
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(value)))
		parts = append(parts, lenBuf[:])
		parts = append(parts, value)
	} else {
		parts = append(parts, []byte{0})
	}
	for _, c := range children {
		cCopy := c
		parts = append(parts, cCopy[:])
	}
	return chainhash.Hash256(parts...)
}

// childHashes returns the hash of each of n's 16 children, using the zero
// hash for any that are nil.
func childHashes(n *node) [16]chainhash.Hash {
	var hashes [16]chainhash.Hash
	for i, c := range n.children {
		if c != nil {
			hashes[i] = c.hash()
		}
	}
	return hashes
}

// hash returns n's own commitment.
func (n *node) hash() chainhash.Hash {
	if n == nil {
		return chainhash.ZeroHash
	}
	return nodeHash(childHashes(n), n.hasValue, n.value)
}

// nibbles expands key into its sequence of hex nibbles, two per byte, most
// significant nibble first.
func nibbles(key []byte) []byte {
	out := make([]byte, len(key)*2)
	for i, b := range key {
		out[i*2] = b >> 4
		out[i*2+1] = b & 0x0f
	}
	return out
}

// Trie is a Merkle Patricia Trie over arbitrary byte-string keys.
type Trie struct {
	root *node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// RootHash returns the trie's current state root.
func (t *Trie) RootHash() chainhash.Hash {
	return t.root.hash()
}

// Put inserts or updates the value stored at key.
func (t *Trie) Put(key, value []byte) {
	nibs := nibbles(key)
	cur := t.root
	for _, nib := range nibs {
		if cur.children[nib] == nil {
			cur.children[nib] = &node{}
		}
		cur = cur.children[nib]
	}
	cur.hasValue = true
	cur.value = append([]byte(nil), value...)
}

// cloneNode returns a deep copy of the subtree rooted at n, so mutating
// the copy (via Put/Delete) can never disturb the original tree's nodes.
func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	cp := &node{hasValue: n.hasValue}
	if n.value != nil {
		cp.value = append([]byte(nil), n.value...)
	}
	for i, c := range n.children {
		cp.children[i] = cloneNode(c)
	}
	return cp
}

// Clone returns a deep copy of t: an independent trie with the same
// content, whose mutation never affects t. Used to tentatively apply a
// candidate block's state changes and check the resulting root before
// committing them to the live trie.
func (t *Trie) Clone() *Trie {
	return &Trie{root: cloneNode(t.root)}
}

// Get returns the value stored at key, and whether it was present.
func (t *Trie) Get(key []byte) ([]byte, bool) {
	nibs := nibbles(key)
	cur := t.root
	for _, nib := range nibs {
		if cur.children[nib] == nil {
			return nil, false
		}
		cur = cur.children[nib]
	}
	if !cur.hasValue {
		return nil, false
	}
	return append([]byte(nil), cur.value...), true
}

// Delete removes the value stored at key, if any, and prunes any branch
// nodes left with no children and no value.
func (t *Trie) Delete(key []byte) {
	nibs := nibbles(key)
	path := make([]*node, 0, len(nibs)+1)
	path = append(path, t.root)
	cur := t.root
	for _, nib := range nibs {
		if cur.children[nib] == nil {
			return
		}
		cur = cur.children[nib]
		path = append(path, cur)
	}
	cur.hasValue = false
	cur.value = nil

	// Prune empty trailing branches, working back toward the root.
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.hasValue {
			break
		}
		empty := true
		for _, c := range n.children {
			if c != nil {
				empty = false
				break
			}
		}
		if !empty {
			break
		}
		path[i-1].children[nibs[i-1]] = nil
	}
}

// collect walks the subtree rooted at n (whose key path is prefix),
// appending every stored key/value pair in ascending key order to out,
// stopping once out holds limit entries.
func collect(n *node, prefix []byte, out *[]KV, limit int) {
	if n == nil || (limit >= 0 && len(*out) >= limit) {
		return
	}
	if n.hasValue {
		*out = append(*out, KV{Key: append([]byte(nil), prefix...), Value: append([]byte(nil), n.value...)})
	}
	for nib := 0; nib < 16; nib++ {
		if limit >= 0 && len(*out) >= limit {
			return
		}
		collect(n.children[nib], append(prefix, byte(nib)), out, limit)
	}
}

// KV is a nibble-path key and its stored value, as produced by range
// iteration. Key here is the nibble sequence, not the original byte
// string; callers that need the original key should track it themselves
// alongside a namespaced lookup (see ProofManager).
type KV struct {
	Key   []byte
	Value []byte
}

// Range returns every key/value pair whose nibble path lies in
// [startNibbles, endNibbles), in ascending order, bounded to at most limit
// entries.
func (t *Trie) Range(startNibbles, endNibbles []byte, limit int) []KV {
	var all []KV
	collect(t.root, nil, &all, -1)
	sort.Slice(all, func(i, j int) bool { return compareNibblePaths(all[i].Key, all[j].Key) < 0 })

	var out []KV
	for _, kv := range all {
		if compareNibblePaths(kv.Key, startNibbles) < 0 {
			continue
		}
		if endNibbles != nil && compareNibblePaths(kv.Key, endNibbles) >= 0 {
			continue
		}
		out = append(out, kv)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func compareNibblePaths(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
