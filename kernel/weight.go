// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"math/big"

	"github.com/stakemint/mintd/mint"
)

// CoinDay returns the coin-day weight of value held since txTime, evaluated
// at now. No weight accrues before StakeMinAge, and accrual saturates once
// the holding period reaches StakeMaxAge.
func CoinDay(value mint.Amount, txTime, now int64) uint64 {
	weightSec := now - txTime - mint.StakeMinAge
	if weightSec < 0 {
		return 0
	}
	if maxSpan := mint.StakeMaxAge - mint.StakeMinAge; weightSec > maxSpan {
		weightSec = maxSpan
	}
	return coinDayFromSeconds(value, weightSec)
}

// coinDayFromSeconds converts a value-seconds product into whole coin-days.
// The multiply goes through big.Int since value×seconds can exceed int64
// for large, old outputs.
func coinDayFromSeconds(value mint.Amount, seconds int64) uint64 {
	if seconds <= 0 || value <= 0 {
		return 0
	}
	cd := new(big.Int).Mul(big.NewInt(int64(value)), big.NewInt(seconds))
	cd.Div(cd, big.NewInt(mint.CoinUnit*mint.OneDay))
	return cd.Uint64()
}

// CoinDay is the candidate's coin-day weight at now.
func (c *Candidate) CoinDay(now int64) uint64 {
	return CoinDay(c.Value, c.Time, now)
}

// Age returns elapsed whole days since the candidate's timestamp.
// Display only; the weight math clamps independently.
func (c *Candidate) Age(now int64) int64 {
	return (now - c.Time) / mint.OneDay
}

// RewardEstimate projects the stake subsidy the candidate would collect if it
// minted in the given number of minutes. Unlike the weight used by the kernel
// test, the projection does not saturate at StakeMaxAge; it is display only.
func (c *Candidate) RewardEstimate(now int64, minutes int) mint.Amount {
	weightSec := now - c.Time + int64(minutes)*60
	if weightSec < mint.StakeMinAge {
		return 0
	}
	return mint.StakeReward(coinDayFromSeconds(c.Value, weightSec))
}
