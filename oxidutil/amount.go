// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oxidutil provides convenience types used throughout the core that
// have no natural home in a single consensus package: monetary amounts and
// address display.
package oxidutil

import (
	"errors"
	"math"
	"strconv"
)

// AtomsPerCoin is the number of atoms, the base monetary unit, in one
// coin.
const AtomsPerCoin = 1e8

// MaxAtoms is the maximum number of atoms in existence, per spec.md
// section 6: a 21 million coin supply cap.
const MaxAtoms = 21_000_000 * AtomsPerCoin

// AmountUnit describes a method of converting an Amount to something other
// than the base unit of a coin. The value of the AmountUnit is the exponent
// component of the decadic multiple to convert from an amount in coins to
// an amount counted in atomic units.
type AmountUnit int

// These constants define various units used when describing a monetary
// amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountAtom      AmountUnit = -8
)

// String returns the unit as a string. For recognized units, the SI prefix
// is used, or "Atom" for the base unit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "MRUST"
	case AmountKiloCoin:
		return "kRUST"
	case AmountCoin:
		return "RUST"
	case AmountMilliCoin:
		return "mRUST"
	case AmountMicroCoin:
		return "µRUST"
	case AmountAtom:
		return "Atom"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " RUST"
	}
}

// Amount represents a monetary amount counted in atoms, the base unit of
// the currency. One Amount is 1e-8 of a coin.
type Amount int64

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to
// the nearest integer.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing an
// amount in coins. NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total supply, since f may not refer
// to an amount at a single moment in time.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}
	return round(f * AtomsPerCoin), nil
}

// ToUnit converts a monetary amount counted in atoms to a floating point
// value representing an amount in the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCoin is the equivalent of calling ToUnit with AmountCoin.
func (a Amount) ToCoin() float64 {
	return a.ToUnit(AmountCoin)
}

// Format formats a monetary amount counted in atoms as a string for a given
// unit, appending the unit's SI-notated label.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountCoin.
func (a Amount) String() string {
	return a.Format(AmountCoin)
}

// MulF64 multiplies an Amount by a floating point value. Used, for example,
// to calculate a fee or a proportional stake reward.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}

// AmountSorter implements sort.Interface to allow a slice of Amounts to be
// sorted.
type AmountSorter []Amount

func (s AmountSorter) Len() int           { return len(s) }
func (s AmountSorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s AmountSorter) Less(i, j int) bool { return s[i] < s[j] }
