// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/oxidecoin/oxided/blockchain/standalone"
	"github.com/oxidecoin/oxided/crypto/oxidehash"
	"github.com/oxidecoin/oxided/wire"
)

func testNewHasher() *oxidehash.Hasher {
	return oxidehash.NewHasher(1<<16, 1<<8)
}

func TestSolveFindsAValidNonce(t *testing.T) {
	m := New(2, testNewHasher)
	header := wire.BlockHeader{
		DifficultyTarget: standalone.BigToCompact(big.NewInt(0).Lsh(big.NewInt(1), 250)),
		Height:           1,
	}
	maxTarget := standalone.CompactToBig(header.DifficultyTarget)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nonce, found := m.Solve(ctx, header, maxTarget)
	if !found {
		t.Fatal("expected Solve to find a satisfying nonce against a loose target")
	}

	header.Nonce = nonce
	hasher := testNewHasher()
	digest := hasher.Sum(header.BlockHash())
	if !standalone.VerifyProofOfWork(digest, header.DifficultyTarget, maxTarget) {
		t.Fatal("nonce returned by Solve does not actually satisfy the target")
	}
}

func TestSolveStopsOnCancellation(t *testing.T) {
	m := New(1, testNewHasher)
	header := wire.BlockHeader{
		DifficultyTarget: standalone.BigToCompact(big.NewInt(1)),
		Height:           1,
	}
	maxTarget := big.NewInt(0).Lsh(big.NewInt(1), 255)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found := m.Solve(ctx, header, maxTarget)
	if found {
		t.Fatal("expected Solve to return promptly without a solution once canceled")
	}
}
