// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command oxided is the composition root for the OxideCoin consensus
// core: it parses configuration, wires logging, opens the UTXO set, and
// constructs a blockchain.ChainManager over the selected network's
// parameters. It intentionally stops there — no peer-to-peer networking
// and no JSON-RPC server are wired, per spec.md section 1's explicit
// scope boundary; those are separate binaries layered on top of this
// core's exported types.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/oxidecoin/oxided/blockchain"
	"github.com/oxidecoin/oxided/chaincfg"
	"github.com/oxidecoin/oxided/crypto/oxidehash"
	"github.com/oxidecoin/oxided/internal/mining"
	"github.com/oxidecoin/oxided/utxoset"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "oxided:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg.LogDir, cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	params := paramsForNetwork(cfg.Network)

	utxo, err := utxoset.Open(filepath.Join(cfg.DataDir, "utxo"))
	if err != nil {
		return fmt.Errorf("opening UTXO set: %w", err)
	}
	defer utxo.Close()

	manager := blockchain.New(params, utxo, oxidehash.New())
	tip, height := manager.Tip()
	log.Infof("chain manager ready on %s at height %d, tip %s", params.Name, height, tip.BlockHash())

	miner := mining.New(cfg.MiningWorkers, oxidehash.New)
	_ = miner // constructed here so its worker count is validated at startup; driven by block-template assembly once that layer exists

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Infof("shutting down")
	return nil
}

func paramsForNetwork(network string) *chaincfg.Params {
	switch network {
	case "testnet":
		return chaincfg.TestNetParams()
	case "regnet":
		return chaincfg.RegNetParams()
	default:
		return chaincfg.MainNetParams()
	}
}
