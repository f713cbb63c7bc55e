// Copyright (c) 2019-2021 The Decred developers
// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

// SubsidyParams defines an interface that provides the subsidy parameters
// for a given network. It is used so alternate implementations can be used
// in tests, decoupling this package from chaincfg.Params.
//
// spec.md leaves the emission schedule unspecified; the design notes
// resolve it to a flat per-block subsidy with no halving, split between
// the block producer and the block's ticket voters.
type SubsidyParams interface {
	// BaseSubsidyValue returns the total subsidy, in atoms, minted by a
	// single block.
	BaseSubsidyValue() int64

	// PoSRewardShare returns the fraction of the base subsidy paid out,
	// in aggregate, to the block's selected ticket voters. The remainder
	// goes to the block's PoW producer.
	PoSRewardShare() float64

	// VotersPerBlock returns the number of ticket voters a fully
	// PoS-validated block carries.
	VotersPerBlock() int
}

// CalcBlockSubsidy returns the total subsidy, in atoms, for the given
// height. OxideCoin has no subsidy-reduction schedule (spec.md does not
// define one): every block mints the same base subsidy for the life of the
// chain, split between its PoW producer and PoS voters by
// CalcWorkSubsidy/CalcStakeVoteSubsidy.
func CalcBlockSubsidy(height int64, params SubsidyParams) int64 {
	if height <= 0 {
		return 0
	}
	return params.BaseSubsidyValue()
}

// CalcWorkSubsidy returns the subsidy, in atoms, paid to a block's PoW
// producer: the base subsidy less the total reserved for PoS voters.
func CalcWorkSubsidy(height int64, params SubsidyParams) int64 {
	total := CalcBlockSubsidy(height, params)
	return total - CalcStakeSubsidyTotal(height, params)
}

// CalcStakeSubsidyTotal returns the aggregate subsidy, in atoms, reserved
// for the block's ticket voters, before dividing it among the voters that
// actually cast a valid vote.
func CalcStakeSubsidyTotal(height int64, params SubsidyParams) int64 {
	total := CalcBlockSubsidy(height, params)
	return int64(float64(total) * params.PoSRewardShare())
}

// CalcStakeVoteSubsidy returns the subsidy, in atoms, paid to a single
// ticket vote, given numVotes valid votes were cast on the block. The
// remainder of the integer division is not paid to any voter, and
// CalcWorkSubsidy does not add it to the PoW producer's share.
func CalcStakeVoteSubsidy(height int64, numVotes int, params SubsidyParams) int64 {
	if numVotes <= 0 {
		return 0
	}
	total := CalcStakeSubsidyTotal(height, params)
	return total / int64(numVotes)
}
