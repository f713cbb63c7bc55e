// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"github.com/oxidecoin/oxided/blockchain"
	"github.com/oxidecoin/oxided/blocksize"
	"github.com/oxidecoin/oxided/governance"
	"github.com/oxidecoin/oxided/internal/mining"
	"github.com/oxidecoin/oxided/masternode"
	"github.com/oxidecoin/oxided/mempool"
	"github.com/oxidecoin/oxided/stake"
	"github.com/oxidecoin/oxided/utxoset"
)

// logRotator receives every subsystem's log output and handles rotation;
// it is closed once in main's shutdown path.
var logRotator *rotator.Rotator

// log is this binary's own subsystem logger, a no-op until initLogging
// runs.
var log = slog.Disabled

// logWriter fans log output out to both standard output and the rotator,
// matching the teacher pack's logger.go convention (daglabs-btcd's
// logWriter does the same, backed there by jrick/logrotate as well).
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogging opens the rotating log file under logDir and wires every
// consensus package's package-level logger to a single decred/slog
// backend, one subsystem tag per package, per spec.md's ambient logging
// convention.
func initLogging(logDir, level string) error {
	var err error
	logRotator, err = rotator.New(filepath.Join(logDir, defaultLogFilename), 10*1024, false, 3)
	if err != nil {
		return err
	}

	backend := slog.NewBackend(logWriter{})
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		lvl = slog.LevelInfo
	}

	wire := func(tag string, use func(slog.Logger)) {
		l := backend.Logger(tag)
		l.SetLevel(lvl)
		use(l)
	}

	wire("CHMG", blockchain.UseLogger)
	wire("BSIZ", blocksize.UseLogger)
	wire("STKE", stake.UseLogger)
	wire("MNOD", masternode.UseLogger)
	wire("GOVN", governance.UseLogger)
	wire("MPOL", mempool.UseLogger)
	wire("UTXO", utxoset.UseLogger)
	wire("MINR", mining.UseLogger)

	log = backend.Logger("OXID")
	log.SetLevel(lvl)

	return nil
}
