// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/kernel"
	"github.com/stakemint/mintd/mint"
)

const (
	testNow  = int64(1_700_000_000)
	easyBits = uint32(0x207fffff)
)

func coins(n int64) mint.Amount {
	return mint.Amount(n * mint.CoinUnit)
}

func agedCandidate(tag string, value mint.Amount, ageDays int64) kernel.Candidate {
	return kernel.Candidate{
		TxID:    mint.Hash256([]byte(tag)),
		Time:    testNow - ageDays*mint.OneDay,
		Address: "addr-" + tag,
		Value:   value,
	}
}

func TestEligibleCandidates(t *testing.T) {
	candidates := []kernel.Candidate{
		agedCandidate("a", coins(600), 40),
		agedCandidate("b", coins(300), 40),
		{TxID: mint.Hash256([]byte("c")), Value: coins(100), Spent: true},
	}

	// staking must not dip the balance below the reserve
	eligible := eligibleCandidates(candidates, coins(1000), coins(500))
	require.Len(t, eligible, 1)
	assert.Equal(t, coins(300), eligible[0].Value)

	// no reserve, everything unspent qualifies
	assert.Len(t, eligibleCandidates(candidates, coins(1000), 0), 2)
}

func TestBuildStakeBlockHit(t *testing.T) {
	best := chain.Head{
		ID:        mint.Hash256([]byte("best")),
		Number:    5,
		Timestamp: uint32(testNow - 100),
	}
	target := chain.StakeTarget{Bits: easyBits, Modifier: 1}
	candidates := []kernel.Candidate{agedCandidate("a", coins(1000), 40)}

	blk := buildStakeBlock(best, target, candidates, testNow, 60, "")
	require.NotNil(t, blk)

	h := blk.Header()
	assert.Equal(t, best.ID, h.ParentID)
	assert.Equal(t, uint32(6), h.Number)
	assert.Equal(t, easyBits, h.Bits)
	assert.Greater(t, h.Timestamp, best.Timestamp)
	assert.LessOrEqual(t, h.Timestamp, uint32(testNow))
	assert.False(t, h.KernelProof.IsZero())

	// without an explicit beneficiary the staking output collects
	assert.Equal(t, "addr-a", h.Beneficiary)
	assert.Equal(t, candidates[0].OutPoint(), h.Coinstake)
	assert.Equal(t,
		mint.StakeReward(kernel.CoinDay(coins(1000), candidates[0].Time, int64(h.Timestamp))),
		h.Reward)
}

func TestBuildStakeBlockBeneficiaryOverride(t *testing.T) {
	best := chain.Head{ID: mint.Hash256([]byte("best")), Timestamp: uint32(testNow - 100)}
	target := chain.StakeTarget{Bits: easyBits}

	blk := buildStakeBlock(best, target,
		[]kernel.Candidate{agedCandidate("a", coins(1000), 40)},
		testNow, 60, "treasury")
	require.NotNil(t, blk)
	assert.Equal(t, "treasury", blk.Header().Beneficiary)
}

func TestBuildStakeBlockImmature(t *testing.T) {
	best := chain.Head{ID: mint.Hash256([]byte("best")), Timestamp: uint32(testNow - 100)}
	target := chain.StakeTarget{Bits: easyBits}

	// ten days old, no weight, no block no matter the target
	blk := buildStakeBlock(best, target,
		[]kernel.Candidate{agedCandidate("a", coins(1000), 10)},
		testNow, 60, "")
	assert.Nil(t, blk)
}

func TestBuildStakeBlockImpossibleTarget(t *testing.T) {
	best := chain.Head{ID: mint.Hash256([]byte("best")), Timestamp: uint32(testNow - 100)}
	target := chain.StakeTarget{Bits: 0x03000001} // target of one

	blk := buildStakeBlock(best, target,
		[]kernel.Candidate{agedCandidate("a", coins(1000), 40)},
		testNow, 60, "")
	assert.Nil(t, blk)
}

func TestBuildStakeBlockParentTimeFloor(t *testing.T) {
	// parent is only two seconds behind: the probe window shrinks to
	// (parent, now] instead of reaching the full interval back
	best := chain.Head{ID: mint.Hash256([]byte("best")), Timestamp: uint32(testNow - 2)}
	target := chain.StakeTarget{Bits: easyBits}

	blk := buildStakeBlock(best, target,
		[]kernel.Candidate{agedCandidate("a", coins(1000), 40)},
		testNow, 60, "")
	require.NotNil(t, blk)
	assert.Greater(t, blk.Header().Timestamp, best.Timestamp)

	// and a parent at now leaves no probe window at all
	best.Timestamp = uint32(testNow)
	assert.Nil(t, buildStakeBlock(best, target,
		[]kernel.Candidate{agedCandidate("a", coins(1000), 40)},
		testNow, 60, ""))
}
