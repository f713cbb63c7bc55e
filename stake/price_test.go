// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import "testing"

type mockPriceParams struct {
	adjustInterval    uint64
	targetLiveTickets uint64
	minPrice          int64
	maxPrice          int64
}

func (m *mockPriceParams) TicketPriceAdjustIntervalBlocks() uint64 { return m.adjustInterval }
func (m *mockPriceParams) TargetLiveTicketsCount() uint64          { return m.targetLiveTickets }
func (m *mockPriceParams) MinTicketPriceAtoms() int64              { return m.minPrice }
func (m *mockPriceParams) MaxTicketPriceAtoms() int64              { return m.maxPrice }

func defaultMockPriceParams() *mockPriceParams {
	return &mockPriceParams{
		adjustInterval:    2016,
		targetLiveTickets: 20_000,
		minPrice:          10_000_000,
		maxPrice:          1_000_000_000,
	}
}

func TestCalculateNewTicketPriceUnchangedOffBoundary(t *testing.T) {
	params := defaultMockPriceParams()
	got := CalculateNewTicketPrice(2017, 100_000_000, 25_000, params)
	if got != 100_000_000 {
		t.Errorf("got %d, want unchanged price off a retarget boundary", got)
	}
}

func TestCalculateNewTicketPriceRisesWithExcessLiveTickets(t *testing.T) {
	params := defaultMockPriceParams()
	// n_L = 25000, t_G = 20000: p_new = 100_000_000 * (1 + 0.05*(25000-20000)/20000)
	//                                 = 100_000_000 * 1.0125 = 101_250_000
	got := CalculateNewTicketPrice(2016, 100_000_000, 25_000, params)
	if got != 101_250_000 {
		t.Errorf("got %d, want 101250000", got)
	}
}

func TestCalculateNewTicketPriceClampsToMax(t *testing.T) {
	params := defaultMockPriceParams()
	got := CalculateNewTicketPrice(2016, 900_000_000, 1_000_000, params)
	if got != params.maxPrice {
		t.Errorf("got %d, want clamped to max %d", got, params.maxPrice)
	}
}

func TestCalculateNewTicketPriceClampsToMin(t *testing.T) {
	params := defaultMockPriceParams()
	// n_L = 0: p_new = 10_000_000 * (1 - 0.05) = 9_500_000, below the floor.
	got := CalculateNewTicketPrice(2016, 10_000_000, 0, params)
	if got != params.minPrice {
		t.Errorf("got %d, want clamped to min %d", got, params.minPrice)
	}
}
