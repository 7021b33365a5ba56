// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"github.com/stakemint/mintd/metrics"
)

var (
	metricCycleCount     = metrics.LazyLoadCounterVec("minter_cycle_count", []string{"outcome"})
	metricStakeFound     = metrics.LazyLoadCounter("minter_stake_found_count")
	metricCandidateGauge = metrics.LazyLoadGauge("minter_candidate_gauge")
)
