// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mint

// Constants of the proof-of-stake protocol.
const (
	// CoinUnit is the number of smallest units per coin.
	CoinUnit int64 = 1_000_000
	// CentUnit is 1/100 of a coin.
	CentUnit int64 = CoinUnit / 100

	// OneDay in seconds.
	OneDay int64 = 24 * 60 * 60

	// StakeMinAge is the minimum holding period before any coin-day weight accrues.
	StakeMinAge int64 = 30 * OneDay
	// StakeMaxAge is the holding period beyond which coin-day weight stops growing.
	StakeMaxAge int64 = 90 * OneDay

	// MinStakeTxDepth is the confirmation depth a coinbase/coinstake originating
	// transaction must reach before its outputs are considered for staking.
	MinStakeTxDepth int32 = 2

	// MaxStakeSearchInterval bounds how far backward from the current adjusted
	// time a single search cycle probes block time values, in seconds.
	MaxStakeSearchInterval uint32 = 60
)

// stakeRewardDivisor yields an annual subsidy of about 1% per coin-day.
const stakeRewardDivisor = 365*33 + 8

// StakeReward returns the proof-of-stake subsidy for the given coin-day weight.
func StakeReward(coinDay uint64) Amount {
	return Amount(int64(coinDay) * 33 / stakeRewardDivisor * CentUnit)
}
