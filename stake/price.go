// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "math"

// priceAdjustmentFactor is K_P in rusty-core's calculate_new_ticket_price:
// the proportional gain applied to the live-ticket count's deviation from
// target when retargeting the ticket price.
const priceAdjustmentFactor = 0.05

// PriceParams collects the fields CalculateNewTicketPrice needs, decoupled
// from chaincfg.Params for the same testability reason as
// blockchain/standalone.SubsidyParams.
type PriceParams interface {
	TicketPriceAdjustIntervalBlocks() uint64
	TargetLiveTicketsCount() uint64
	MinTicketPriceAtoms() int64
	MaxTicketPriceAtoms() int64
}

// CalculateNewTicketPrice retargets the ticket price every
// TicketPriceAdjustInterval blocks: `p_new = clamp(p_old * (1 + K_P *
// (n_L - t_G) / t_G), MinTicketPrice, MaxTicketPrice)` (spec.md section
// 4.6, "Ticket price retarget"). Outside a retarget boundary, or at height
// zero, the previous price carries forward unchanged.
func CalculateNewTicketPrice(height uint64, lastPrice int64, avgLiveTickets uint64, params PriceParams) int64 {
	if height == 0 {
		return lastPrice
	}
	interval := params.TicketPriceAdjustIntervalBlocks()
	if interval == 0 || height%interval != 0 {
		return lastPrice
	}

	nL := float64(avgLiveTickets)
	tG := float64(params.TargetLiveTicketsCount())

	newPrice := float64(lastPrice) * (1.0 + priceAdjustmentFactor*(nL-tG)/tG)
	rounded := int64(math.Round(newPrice))

	if max := params.MaxTicketPriceAtoms(); rounded > max {
		rounded = max
	}
	if min := params.MinTicketPriceAtoms(); rounded < min {
		rounded = min
	}
	return rounded
}
