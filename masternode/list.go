// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package masternode

import (
	"sync"

	"github.com/decred/slog"

	"github.com/oxidecoin/oxided/wire"
)

// log is the package-level logger, a no-op until UseLogger is called, per
// the convention this module follows throughout (see
// internal/blockalloc/allocator.go in the teacher tree).
var log = slog.Disabled

// UseLogger sets the package-level logger used by this package. It should
// be called before the package is used, typically from the composition
// root.
func UseLogger(logger slog.Logger) {
	log = logger
}

// List tracks every masternode registered on the chain, keyed by the
// outpoint of its collateral output, mirroring
// rusty-masternode/src/mn_list.rs's MasternodeListManager generalized from
// a thin wrapper over shared mutable state into the list itself.
type List struct {
	mu      sync.RWMutex
	entries map[wire.MasternodeID]*Entry
}

// NewList returns an empty masternode list.
func NewList() *List {
	return &List{entries: make(map[wire.MasternodeID]*Entry)}
}

// Register admits a new masternode in the Pending status, rejecting a
// collateral outpoint already on the list or below the required
// collateral amount.
func (l *List) Register(id wire.MasternodeID, operatorKey wire.PublicKey, collateralAmount, requiredCollateral int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries[id]; ok {
		return ruleError(ErrAlreadyRegistered, "masternode "+id.String()+" is already registered")
	}
	if collateralAmount < requiredCollateral {
		return ruleError(ErrInsufficientCollateral, "masternode "+id.String()+" collateral is below the required amount")
	}
	l.entries[id] = &Entry{
		ID:               id,
		OperatorKey:      operatorKey,
		CollateralAmount: collateralAmount,
		Status:           StatusPending,
	}
	log.Debugf("masternode %s registered pending activation", id)
	return nil
}

// Activate transitions a Pending masternode to Active, typically once its
// collateral output has reached the chain's maturity depth.
func (l *List) Activate(id wire.MasternodeID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return ruleError(ErrMasternodeNotFound, "masternode "+id.String()+" not found")
	}
	e.Status = StatusActive
	return nil
}

// Get returns the masternode entry with the given ID, if known.
func (l *List) Get(id wire.MasternodeID) (*Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[id]
	return e, ok
}

// Deregister removes a masternode from the list entirely, used once its
// deregistration transaction spends the collateral output.
func (l *List) Deregister(id wire.MasternodeID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return ruleError(ErrMasternodeNotFound, "masternode "+id.String()+" not found")
	}
	e.Status = StatusDeregistered
	delete(l.entries, id)
	return nil
}

// RecordPoSeFailure increments a masternode's PoSe-failure count
// (spec.md section 4.7, "PoSe challenge/response"), banning it once the
// count reaches banThreshold.
func (l *List) RecordPoSeFailure(id wire.MasternodeID, banThreshold int) (banned bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[id]
	if !ok {
		return false, ruleError(ErrMasternodeNotFound, "masternode "+id.String()+" not found")
	}
	e.PoSeFailureCount++
	if e.PoSeFailureCount >= banThreshold {
		e.Status = StatusPoSeBanned
		log.Warnf("masternode %s PoSe-banned after %d failures", id, e.PoSeFailureCount)
		return true, nil
	}
	return false, nil
}

// ActiveEntries returns every masternode currently in the Active status.
func (l *List) ActiveEntries() []*Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*Entry
	for _, e := range l.entries {
		if e.Status == StatusActive {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of masternodes tracked in any status.
func (l *List) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clone returns a deep copy of the list, letting the Chain Manager
// snapshot masternode state before applying a block so a later reorg can
// restore it exactly.
func (l *List) Clone() *List {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := NewList()
	for id, e := range l.entries {
		cp := *e
		out.entries[id] = &cp
	}
	return out
}
