// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// The methods below adapt *Params to the small per-package parameter
// interfaces (blockchain/standalone.SubsidyParams, stake.PriceParams, and
// similarly shaped interfaces elsewhere) so that consensus packages never
// import chaincfg directly and can be exercised against synthetic
// parameters in tests.

// BaseSubsidyValue implements blockchain/standalone.SubsidyParams.
func (p *Params) BaseSubsidyValue() int64 { return p.BaseSubsidy }

// PoSRewardShare implements blockchain/standalone.SubsidyParams.
func (p *Params) PoSRewardShare() float64 { return p.PoSRewardSharePct }

// VotersPerBlock implements blockchain/standalone.SubsidyParams.
func (p *Params) VotersPerBlock() int { return p.NumVotersPerBlock }

// TicketPriceAdjustIntervalBlocks implements stake.PriceParams.
func (p *Params) TicketPriceAdjustIntervalBlocks() uint64 { return p.TicketPriceAdjustInterval }

// TargetLiveTicketsCount implements stake.PriceParams.
func (p *Params) TargetLiveTicketsCount() uint64 { return p.TargetLiveTickets }

// MinTicketPriceAtoms implements stake.PriceParams.
func (p *Params) MinTicketPriceAtoms() int64 { return p.MinTicketPrice }

// MaxTicketPriceAtoms implements stake.PriceParams.
func (p *Params) MaxTicketPriceAtoms() int64 { return p.MaxTicketPrice }

// GovernanceGracePeriodBlocks implements governance.TallyParams.
func (p *Params) GovernanceGracePeriodBlocks() uint64 { return p.GovernanceGracePeriod }

// GovernanceQuorumPctValue implements governance.TallyParams.
func (p *Params) GovernanceQuorumPctValue() float64 { return p.GovernanceQuorumPct }
