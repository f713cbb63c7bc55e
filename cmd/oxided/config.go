// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "oxided.conf"
	defaultDataDirname    = "data"
	defaultLogFilename    = "oxided.log"
	defaultNetwork        = "mainnet"
	defaultLogLevel       = "info"
)

var defaultHomeDir = appDataDir("oxided")

// config holds every command-line and config-file option this node
// accepts. Only the fields the consensus core and its composition root
// actually consume are modeled; a p2p listen address and RPC bind address
// are accepted for compatibility with a future network layer but are
// never dialed or bound (spec.md section 1, "explicitly out of scope").
type config struct {
	HomeDir    string `short:"A" long:"appdata" description:"Data directory for oxided"`
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store blockchain state"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	LogLevel   string `long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`

	Network string `long:"network" description:"Network to connect to: mainnet, testnet, regnet"`

	// Listen and RPCListen are accepted but never acted on: this binary
	// wires only the consensus core (chaincfg, blockchain, mining), not
	// any peer-to-peer or JSON-RPC listener.
	Listen    string `long:"listen" description:"Accepted for compatibility; no network layer is wired"`
	RPCListen string `long:"rpclisten" description:"Accepted for compatibility; no RPC server is wired"`

	MiningWorkers int `long:"miningworkers" description:"Number of cooperative nonce-search workers to run (0 = all CPUs)"`
}

// loadConfig parses command-line flags, applying defaults for anything
// left unset, mirroring the teacher pack's go-flags convention
// (daglabs-btcd's cmd/txgen/config.go parses the same way).
func loadConfig() (*config, error) {
	cfg := config{
		HomeDir:  defaultHomeDir,
		DataDir:  filepath.Join(defaultHomeDir, defaultDataDirname),
		LogDir:   defaultHomeDir,
		LogLevel: defaultLogLevel,
		Network:  defaultNetwork,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	switch cfg.Network {
	case "mainnet", "testnet", "regnet":
	default:
		return nil, fmt.Errorf("unknown network %q: must be mainnet, testnet, or regnet", cfg.Network)
	}

	if cfg.MiningWorkers < 0 {
		return nil, fmt.Errorf("--miningworkers must not be negative")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.LogDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	return &cfg, nil
}

// appDataDir returns the default per-user application data directory for
// name, following the same $HOME/.name convention the teacher pack's
// util.AppDataDir helper uses on Unix-like systems.
func appDataDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", "."+name)
	}
	return filepath.Join(home, "."+name)
}
