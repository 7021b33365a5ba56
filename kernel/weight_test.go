// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakemint/mintd/mint"
)

const testNow = int64(1_700_000_000)

func coins(n int64) mint.Amount {
	return mint.Amount(n * mint.CoinUnit)
}

func TestCoinDayBeforeMinAge(t *testing.T) {
	// five days held, well under the minimum age
	assert.Zero(t, CoinDay(coins(1000), testNow-5*mint.OneDay, testNow))

	// exactly at the minimum age nothing has accrued yet
	assert.Zero(t, CoinDay(coins(1000), testNow-mint.StakeMinAge, testNow))
}

func TestCoinDayAccrual(t *testing.T) {
	// 1000 coins held 40 days accrue 10 effective days past the minimum age
	assert.Equal(t, uint64(10_000), CoinDay(coins(1000), testNow-40*mint.OneDay, testNow))

	// weight scales linearly with value
	assert.Equal(t, uint64(20_000), CoinDay(coins(2000), testNow-40*mint.OneDay, testNow))
}

func TestCoinDayMonotonic(t *testing.T) {
	prev := uint64(0)
	for days := int64(0); days <= 120; days += 5 {
		w := CoinDay(coins(500), testNow-days*mint.OneDay, testNow)
		assert.GreaterOrEqual(t, w, prev, "weight must never decrease with age (%d days)", days)
		prev = w
	}
}

func TestCoinDaySaturation(t *testing.T) {
	// past the maximum age the effective span is capped at max-min
	atMax := CoinDay(coins(1000), testNow-90*mint.OneDay, testNow)
	wayPast := CoinDay(coins(1000), testNow-400*mint.OneDay, testNow)

	assert.Equal(t, uint64(60_000), atMax)
	assert.Equal(t, atMax, wayPast)
}

func TestCoinDayLargeValue(t *testing.T) {
	// value×seconds exceeds int64 here, the big.Int path must not truncate
	assert.Equal(t, uint64(600_000_000), CoinDay(coins(10_000_000), testNow-400*mint.OneDay, testNow))
}

func TestCoinDayFutureTx(t *testing.T) {
	assert.Zero(t, CoinDay(coins(1000), testNow+mint.OneDay, testNow))
}

func TestCandidateAge(t *testing.T) {
	c := Candidate{Time: testNow - 40*mint.OneDay, Value: coins(10)}
	assert.Equal(t, int64(40), c.Age(testNow))
}

func TestRewardEstimate(t *testing.T) {
	young := Candidate{Time: testNow - 5*mint.OneDay, Value: coins(1000)}
	assert.Zero(t, young.RewardEstimate(testNow, 30))

	aged := Candidate{Time: testNow - 40*mint.OneDay, Value: coins(1000)}
	assert.Greater(t, aged.RewardEstimate(testNow, 30), mint.Amount(0))

	// the projection keeps growing past the maximum age, unlike the
	// kernel weight
	old := Candidate{Time: testNow - 100*mint.OneDay, Value: coins(1000)}
	older := Candidate{Time: testNow - 200*mint.OneDay, Value: coins(1000)}
	assert.Greater(t, older.RewardEstimate(testNow, 30), old.RewardEstimate(testNow, 30))
}
