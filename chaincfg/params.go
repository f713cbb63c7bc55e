// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters and consensus constants
// shared by every component of the core, per spec.md section 6.
package chaincfg

import (
	"time"

	"github.com/oxidecoin/oxided/chainhash"
	"github.com/oxidecoin/oxided/wire"
)

// Network identifies one of the three networks the core can run against.
type Network uint8

const (
	MainNet Network = iota
	TestNet
	RegNet
)

// String returns the network's name.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	case RegNet:
		return "regnet"
	default:
		return "unknown"
	}
}

// Params collects the network-specific and consensus-wide constants named
// throughout spec.md sections 4 and 6.
type Params struct {
	Name Network

	// Magic is the four-byte network magic prefixing every wire message
	// (spec.md section 6); the core itself never parses wire messages, but
	// it is included here as part of the contract exposed to the
	// out-of-scope p2p transport layer.
	Magic [4]byte

	// DefaultPort is the default listen port for this network.
	DefaultPort string

	GenesisBlock *wire.Block
	GenesisHash  chainhash.Hash

	// Timing.
	TargetBlockTime        time.Duration
	DifficultyAdjustInterval uint64 // blocks, spec.md 2016
	MaxFutureBlockTime       time.Duration
	MedianTimeBlocks         int // 11, spec.md section 3

	// PoW.
	MaxDifficultyTarget uint32 // compact-encoded MAX_TARGET

	// Transaction / UTXO constants.
	CoinbaseMaturity uint64 // 100
	DustLimit        int64  // 500

	// Adaptive block size (spec.md section 4.3).
	InitialMaxBlockSize uint64
	MinMaxBlockSize     uint64
	MaxMaxBlockSize     uint64
	SigOpBudgetDivisor  uint64 // current_max / 20

	// Proof-of-Stake (spec.md sections 4.6, 6).
	InitialTicketPrice int64
	MinTicketPrice     int64
	MaxTicketPrice     int64
	TargetLiveTickets  uint64
	TicketPriceAdjustInterval uint64
	NumVotersPerBlock  int
	MinValidVotes      int
	PoSFinalityDepth   uint64
	TicketExpiry       uint64
	NonParticipationSlashPct float64

	// Masternodes.
	MasternodeCollateral   int64
	PoSeFailureSlashPct    float64
	MaliciousSlashPct      float64

	// Governance (spec.md section 4.8).
	GovernanceGracePeriod uint64
	GovernanceQuorumPct   float64

	// Subsidy.
	BaseSubsidy    int64
	PoSRewardSharePct float64 // fraction of subsidy paid to the block's voters
}

// MainNetParams returns the consensus parameters for the main network.
func MainNetParams() *Params {
	p := &Params{
		Name:                     MainNet,
		Magic:                    [4]byte{0xF9, 0xBE, 0xB4, 0xD9},
		DefaultPort:              "8333",
		TargetBlockTime:          150 * time.Second,
		DifficultyAdjustInterval: 2016,
		MaxFutureBlockTime:       2 * time.Hour,
		MedianTimeBlocks:         11,
		MaxDifficultyTarget:      0x1d00ffff,
		CoinbaseMaturity:         100,
		DustLimit:                500,
		InitialMaxBlockSize:      2_000_000,
		MinMaxBlockSize:          1_000_000,
		MaxMaxBlockSize:          64_000_000,
		SigOpBudgetDivisor:       20,
		InitialTicketPrice:       100_000_000,
		MinTicketPrice:           10_000_000,
		MaxTicketPrice:           1_000_000_000,
		TargetLiveTickets:        20_000,
		TicketPriceAdjustInterval: 2016,
		NumVotersPerBlock:        5,
		MinValidVotes:            3,
		PoSFinalityDepth:         16,
		TicketExpiry:             40960,
		NonParticipationSlashPct: 0.10,
		MasternodeCollateral:     1_000_000_000_000,
		PoSeFailureSlashPct:      0.10,
		MaliciousSlashPct:        1.0,
		GovernanceGracePeriod:    1024,
		GovernanceQuorumPct:      0.33,
		BaseSubsidy:              30_000_000_000,
		PoSRewardSharePct:        0.40,
	}
	p.GenesisBlock = buildGenesisBlock(p)
	p.GenesisHash = p.GenesisBlock.Header.BlockHash()
	return p
}

// TestNetParams returns the consensus parameters for the public test
// network: identical consensus rules to mainnet but distinct network magic
// and a mining-friendly genesis difficulty.
func TestNetParams() *Params {
	p := MainNetParams()
	p.Name = TestNet
	p.Magic = [4]byte{0x0B, 0x11, 0x09, 0x07}
	p.DefaultPort = "18333"
	p.MaxDifficultyTarget = 0x1e0fffff
	p.GenesisBlock = buildGenesisBlock(p)
	p.GenesisHash = p.GenesisBlock.Header.BlockHash()
	return p
}

// RegNetParams returns the consensus parameters for a local regression-test
// network: trivial difficulty and short PoS windows so scenarios in
// spec.md section 8 can be reproduced quickly.
func RegNetParams() *Params {
	p := MainNetParams()
	p.Name = RegNet
	p.Magic = [4]byte{0xFA, 0xBF, 0xB5, 0xDA}
	p.DefaultPort = "18444"
	p.MaxDifficultyTarget = 0x207fffff
	p.DifficultyAdjustInterval = 8
	p.PoSFinalityDepth = 2
	p.TicketExpiry = 256
	p.GenesisBlock = buildGenesisBlock(p)
	p.GenesisHash = p.GenesisBlock.Header.BlockHash()
	return p
}

// buildGenesisBlock constructs the network's genesis block: a coinbase-only
// block at height zero. Its proof of work is never checked (spec.md places
// no invariant on the genesis block itself, only on blocks built upon it).
func buildGenesisBlock(p *Params) *wire.Block {
	coinbase := &wire.MsgTx{
		Type: wire.TxTypeCoinbase,
		Inputs: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.ZeroHash, Index: 0xFFFFFFFF},
			SignatureScript:  []byte{0, 0, 0, 0, 0, 0, 0, 0, 'g', 'e', 'n', 'e', 's', 'i', 's'},
			Sequence:         0xFFFFFFFF,
		}},
		Outputs: []*wire.TxOut{{
			Value:    0,
			PkScript: []byte{0x6a, 4, 'O', 'X', 'I', 'D'},
		}},
		Witness: [][]byte{{}},
	}
	block := &wire.Block{
		Header: wire.BlockHeader{
			Version:          1,
			PrevHash:         chainhash.ZeroHash,
			Timestamp:        uint64(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix()),
			DifficultyTarget: p.MaxDifficultyTarget,
			Height:           0,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = block.ComputeMerkleRoot()
	return block
}
