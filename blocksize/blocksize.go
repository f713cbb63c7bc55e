// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blocksize implements the adaptive maximum block size algorithm
// defined in spec.md section 4.3: the limit is retargeted once per
// median-calculation period based on the median size of the blocks in the
// preceding period: it becomes the median plus 10% when the median is above
// the current limit, or the median less 5% when it is below it, and is
// always clamped to a hard [1 MB, 64 MB] range.
package blocksize

import (
	"sort"

	"github.com/decred/slog"
)

var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Params collects the adaptive block size algorithm's tunable constants.
type Params struct {
	// InitialMaxBlockSize is the limit in effect at network genesis.
	InitialMaxBlockSize uint64

	// MedianCalculationPeriod is the number of past blocks the median is
	// computed over, and the interval, in blocks, between retargets.
	MedianCalculationPeriod uint64

	// GrowthFactor is the proportion added to the median when the median
	// is above the current limit, e.g. 0.10 for 10%.
	GrowthFactor float64

	// ShrinkFactor is the proportion taken off the median when the median
	// is below the current limit, e.g. 0.05 for 5%.
	ShrinkFactor float64

	// HardMaxBlockSize is the absolute ceiling the limit can never exceed.
	HardMaxBlockSize uint64

	// HardMinBlockSize is the absolute floor the limit can never fall
	// below.
	HardMinBlockSize uint64

	// SigOpByteCost is the number of bytes of block space one signature
	// operation is deemed to cost; the per-block sigop budget is
	// current limit / SigOpByteCost.
	SigOpByteCost uint64
}

// DefaultParams returns the production adaptive block size parameters named
// in spec.md section 4.3.
func DefaultParams() Params {
	return Params{
		InitialMaxBlockSize:     2_000_000,
		MedianCalculationPeriod: 2016,
		GrowthFactor:            0.10,
		ShrinkFactor:            0.05,
		HardMaxBlockSize:        64_000_000,
		HardMinBlockSize:        1_000_000,
		SigOpByteCost:           20,
	}
}

// Calculator tracks observed block sizes and derives the adaptive maximum
// block size in effect at any height.
type Calculator struct {
	params            Params
	blockSizes        []uint64
	currentMaxSize    uint64
}

// NewCalculator returns a Calculator starting at params.InitialMaxBlockSize.
func NewCalculator(params Params) *Calculator {
	return &Calculator{
		params:         params,
		currentMaxSize: params.InitialMaxBlockSize,
	}
}

// CurrentMaxSize returns the adaptive maximum block size currently in
// effect.
func (c *Calculator) CurrentMaxSize() uint64 {
	return c.currentMaxSize
}

// MaxSigOps returns the maximum number of signature operations a block may
// carry under the current adaptive limit.
func (c *Calculator) MaxSigOps() uint64 {
	return c.currentMaxSize / c.params.SigOpByteCost
}

// AddBlockSize records a connected block's serialized size for the purpose
// of the next retarget's median calculation, discarding sizes older than
// one median calculation period.
func (c *Calculator) AddBlockSize(size uint64) {
	c.blockSizes = append(c.blockSizes, size)
	if overflow := len(c.blockSizes) - int(c.params.MedianCalculationPeriod); overflow > 0 {
		c.blockSizes = c.blockSizes[overflow:]
	}
}

// RetargetAtHeight recomputes the adaptive maximum block size if height
// falls on a retarget boundary, otherwise it leaves the current limit
// unchanged. It returns the limit in effect after the call. The Chain
// Manager calls it once the block at height has been validated against
// the earlier limit, so the returned limit applies to the blocks after it.
func (c *Calculator) RetargetAtHeight(height uint64) uint64 {
	if height == 0 {
		c.currentMaxSize = c.params.InitialMaxBlockSize
		return c.currentMaxSize
	}
	if height%c.params.MedianCalculationPeriod != 0 {
		return c.currentMaxSize
	}

	median := c.medianBlockSize()
	potential := c.potentialLimit(median)
	newMax := c.applyHardLimits(potential)

	log.Debugf("retargeting adaptive block size at height %d: median=%d potential=%d new=%d",
		height, median, potential, newMax)

	c.currentMaxSize = newMax
	return c.currentMaxSize
}

// medianBlockSize returns the median of the collected block sizes, or the
// initial max block size if none have been collected yet.
func (c *Calculator) medianBlockSize() uint64 {
	if len(c.blockSizes) == 0 {
		return c.params.InitialMaxBlockSize
	}

	sorted := make([]uint64, len(c.blockSizes))
	copy(sorted, c.blockSizes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// potentialLimit computes the unclamped new limit implied by the median:
// the median scaled up by GrowthFactor when it is above the current limit,
// scaled down by ShrinkFactor when it is below it, and the current limit
// itself when the two are equal.
func (c *Calculator) potentialLimit(median uint64) uint64 {
	switch {
	case median > c.currentMaxSize:
		return uint64(float64(median) * (1.0 + c.params.GrowthFactor))
	case median < c.currentMaxSize:
		return uint64(float64(median) * (1.0 - c.params.ShrinkFactor))
	default:
		return c.currentMaxSize
	}
}

// applyHardLimits clamps a potential limit to [HardMinBlockSize,
// HardMaxBlockSize].
func (c *Calculator) applyHardLimits(potential uint64) uint64 {
	if potential < c.params.HardMinBlockSize {
		return c.params.HardMinBlockSize
	}
	if potential > c.params.HardMaxBlockSize {
		return c.params.HardMaxBlockSize
	}
	return potential
}

// Stats summarizes the calculator's current state for diagnostics.
type Stats struct {
	CurrentMaxSize  uint64
	MedianBlockSize uint64
	AverageBlockSize uint64
	BlocksCollected int
	MaxSigOps       uint64
}

// GetStatistics returns a snapshot of the calculator's current state.
func (c *Calculator) GetStatistics() Stats {
	var median, average uint64
	if len(c.blockSizes) > 0 {
		median = c.medianBlockSize()
		var sum uint64
		for _, s := range c.blockSizes {
			sum += s
		}
		average = sum / uint64(len(c.blockSizes))
	}
	return Stats{
		CurrentMaxSize:   c.currentMaxSize,
		MedianBlockSize:  median,
		AverageBlockSize: average,
		BlocksCollected:  len(c.blockSizes),
		MaxSigOps:        c.MaxSigOps(),
	}
}
