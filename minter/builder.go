// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"github.com/stakemint/mintd/block"
	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/kernel"
	"github.com/stakemint/mintd/mint"
)

// eligibleCandidates filters wallet candidates down to the ones a search pass
// may stake. Staking an output must not dip the spendable balance below the
// reserve, so any output larger than balance-reserve is excluded.
func eligibleCandidates(candidates []kernel.Candidate, balance, reserve mint.Amount) []kernel.Candidate {
	available := balance - reserve

	eligible := make([]kernel.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Spent || c.Value > available {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

func hasUnspent(candidates []kernel.Candidate) bool {
	for i := range candidates {
		if !candidates[i].Spent {
			return true
		}
	}
	return false
}

// buildStakeBlock runs the kernel test over the eligible candidates and
// assembles a block from the first hit. Block time values are probed from now
// back through the search interval, never at or before the parent timestamp.
// At most one block comes out of a pass; nil means no candidate hit.
func buildStakeBlock(
	best chain.Head,
	target chain.StakeTarget,
	candidates []kernel.Candidate,
	now int64,
	searchInterval uint32,
	beneficiary string,
) *block.Block {
	high := uint32(now)
	low := high - searchInterval
	if low < best.Timestamp {
		low = best.Timestamp
	}
	if high <= low {
		return nil
	}

	for i := range candidates {
		c := &candidates[i]
		// zero weight at the top of the interval cannot hit anywhere in it
		if c.CoinDay(now) == 0 {
			continue
		}

		tpl := kernel.StakeTemplate{
			StakeModifier: target.Modifier,
			TxID:          c.TxID,
			OutIndex:      c.Index,
			TxTime:        uint32(c.Time),
			Value:         c.Value,
			Bits:          target.Bits,
		}
		proof, blockTime, ok := kernel.ScanBackward(&tpl, high, low)
		if !ok {
			continue
		}

		addr := beneficiary
		if addr == "" {
			addr = c.Address
		}
		reward := mint.StakeReward(kernel.CoinDay(c.Value, c.Time, int64(blockTime)))
		return new(block.Builder).
			ParentID(best.ID).
			Number(best.Number + 1).
			Timestamp(blockTime).
			Bits(target.Bits).
			Beneficiary(addr).
			Coinstake(c.OutPoint(), proof).
			Reward(reward).
			Build()
	}
	return nil
}
