// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/stakemint/mintd/mint"
)

// Status is the diagnostic snapshot of the minting engine.
type Status struct {
	State          string       `json:"state"`
	PauseReason    string       `json:"pauseReason,omitempty"`
	Candidates     int          `json:"candidates"`
	TotalCoinDay   uint64       `json:"totalCoinDay"`
	LastSearchTime int64        `json:"lastSearchTime"`
	MintedBlocks   uint64       `json:"mintedBlocks"`
	LastBlockID    mint.Bytes32 `json:"lastBlockID"`

	BestNumber uint32       `json:"bestNumber"`
	BestID     mint.Bytes32 `json:"bestID"`
	Difficulty float64      `json:"difficulty"`

	Locked         bool        `json:"locked"`
	MintOnly       bool        `json:"mintOnly"`
	ReserveBalance mint.Amount `json:"reserveBalance"`
	UnlockDeadline int64       `json:"unlockDeadline,omitempty"`
}

// CandidateView is the per-output row of the candidates listing.
type CandidateView struct {
	OutPoint        string      `json:"outPoint"`
	Address         string      `json:"address"`
	Value           mint.Amount `json:"value"`
	AgeDays         int64       `json:"ageDays"`
	CoinDay         uint64      `json:"coinDay"`
	MintProbability float64     `json:"mintProbability"`
	RewardEstimate  mint.Amount `json:"rewardEstimate"`
}

// ReserveRequest sets the reserve balance.
type ReserveRequest struct {
	Amount mint.Amount `json:"amount"`
}

// UnlockRequest unlocks the wallet for a while.
type UnlockRequest struct {
	Passphrase string `json:"passphrase"`
	// Duration of the unlock window in seconds, 0 for no auto-lock.
	Duration int64 `json:"duration"`
	MintOnly bool  `json:"mintOnly"`
}
