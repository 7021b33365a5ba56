// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"math"

	"github.com/stakemint/mintd/mint"
)

// probCache memoizes the last ProbToMintWithinMinutes computation. It is a
// single slot keyed by the (difficulty, minutes) pair: recomputation happens
// only when either input differs from the cached pair.
type probCache struct {
	difficulty  float64
	minutes     int
	probability float64
	valid       bool
	recomputes  uint64
}

// ProbToMintStake returns the instantaneous per-second chance that this
// candidate passes the kernel test at now+timeOffset, given the difficulty.
// It evaluates the coin-day weight the candidate would have at that future
// instant, with the same clamping rule the kernel weight uses.
func (c *Candidate) ProbToMintStake(now int64, difficulty float64, timeOffset int64) float64 {
	if difficulty <= 0 {
		return 0
	}

	weightSec := now - c.Time + timeOffset - mint.StakeMinAge
	if weightSec < 0 {
		return 0
	}
	if maxSpan := mint.StakeMaxAge - mint.StakeMinAge; weightSec > maxSpan {
		weightSec = maxSpan
	}

	coinDay := coinDayFromSeconds(c.Value, weightSec)
	p := float64(coinDay) / (math.Pow(2, 32) * difficulty)
	if p > 1 {
		p = 1
	}
	return p
}

// ProbToMintWithinMinutes estimates the chance the candidate mints a stake
// within the given horizon at the given difficulty.
//
// The horizon is split into whole days plus a remainder. Each slice
// contributes a survival factor (1-p)^seconds at the per-second chance for
// that slice's time offset; the result is one minus the product of all
// survival factors. The result of the last call is memoized per candidate,
// so repeated queries with identical parameters are free.
func (c *Candidate) ProbToMintWithinMinutes(now int64, difficulty float64, minutes int) float64 {
	if c.prob.valid && c.prob.difficulty == difficulty && c.prob.minutes == minutes {
		return c.prob.probability
	}

	fullDays := minutes / (60 * 24)
	remainder := minutes % (60 * 24)

	survival := 1.0
	for i := 0; i < fullDays; i++ {
		p := c.ProbToMintStake(now, difficulty, int64(i)*mint.OneDay)
		survival *= math.Pow(1-p, float64(mint.OneDay))
	}

	p := c.ProbToMintStake(now, difficulty, int64(fullDays)*mint.OneDay)
	survival *= math.Pow(1-p, float64(60*remainder))

	c.prob = probCache{
		difficulty:  difficulty,
		minutes:     minutes,
		probability: 1 - survival,
		valid:       true,
		recomputes:  c.prob.recomputes + 1,
	}
	return c.prob.probability
}

// ProbRecomputes reports how many times the memoized probability has been
// recomputed. Instrumentation hook, used by tests and nothing else.
func (c *Candidate) ProbRecomputes() uint64 {
	return c.prob.recomputes
}
