// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/stakemint/mintd/api/utils"
	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/mint"
	"github.com/stakemint/mintd/minter"
	"github.com/stakemint/mintd/wallet"
)

// default horizon of the candidates listing
const defaultMinutes = 30

// Staking exposes the diagnostic and control surface of the minting engine.
type Staking struct {
	chain  chain.Chain
	wallet wallet.Wallet
	unlock *wallet.UnlockManager
	minter *minter.Minter
	clock  minter.Clock
}

func New(c chain.Chain, w wallet.Wallet, unlock *wallet.UnlockManager, m *minter.Minter, clk minter.Clock) *Staking {
	return &Staking{
		chain:  c,
		wallet: w,
		unlock: unlock,
		minter: m,
		clock:  clk,
	}
}

func (s *Staking) handleGetStatus(w http.ResponseWriter, _ *http.Request) error {
	status := s.minter.Status()
	best := s.chain.Best()
	target := s.chain.StakeTarget()
	reserve := s.wallet.ReserveBalance()

	resp := Status{
		State:          status.State.String(),
		PauseReason:    string(status.PauseReason),
		Candidates:     status.Candidates,
		TotalCoinDay:   status.TotalCoinDay,
		LastSearchTime: status.LastSearchTime,
		MintedBlocks:   status.MintedBlocks,
		LastBlockID:    status.LastBlockID,
		BestNumber:     best.Number,
		BestID:         best.ID,
		Difficulty:     mint.CompactToDifficulty(target.Bits),
		Locked:         s.wallet.IsLocked(),
		MintOnly:       s.wallet.MintOnly(),
		ReserveBalance: reserve,
	}
	if deadline := s.unlock.CurrentDeadline(); !deadline.IsZero() {
		resp.UnlockDeadline = deadline.Unix()
	}
	return utils.WriteJSON(w, &resp)
}

func (s *Staking) handleGetCandidates(w http.ResponseWriter, req *http.Request) error {
	target := s.chain.StakeTarget()
	difficulty := mint.CompactToDifficulty(target.Bits)
	if raw := req.URL.Query().Get("difficulty"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d <= 0 {
			return utils.BadRequest(errors.New("difficulty: expected positive number"))
		}
		difficulty = d
	}

	minutes := defaultMinutes
	if raw := req.URL.Query().Get("minutes"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m <= 0 {
			return utils.BadRequest(errors.New("minutes: expected positive integer"))
		}
		minutes = m
	}

	candidates, err := s.wallet.SpendableOutputs()
	if err != nil {
		return err
	}

	now := s.clock.Unix()
	views := make([]CandidateView, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		views = append(views, CandidateView{
			OutPoint:        c.OutPoint().String(),
			Address:         c.Address,
			Value:           c.Value,
			AgeDays:         c.Age(now),
			CoinDay:         c.CoinDay(now),
			MintProbability: c.ProbToMintWithinMinutes(now, difficulty, minutes),
			RewardEstimate:  c.RewardEstimate(now, minutes),
		})
	}
	return utils.WriteJSON(w, views)
}

func (s *Staking) handleSetReserve(w http.ResponseWriter, req *http.Request) error {
	var r ReserveRequest
	if err := utils.ParseJSON(req.Body, &r); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if r.Amount < 0 {
		return utils.BadRequest(errors.New("amount: expected non-negative"))
	}
	s.wallet.SetReserveBalance(r.Amount)
	return utils.WriteJSON(w, &r)
}

func (s *Staking) handleUnlock(w http.ResponseWriter, req *http.Request) error {
	var r UnlockRequest
	if err := utils.ParseJSON(req.Body, &r); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if r.Duration < 0 {
		return utils.BadRequest(errors.New("duration: expected non-negative seconds"))
	}
	if err := s.unlock.Unlock(r.Passphrase, time.Duration(r.Duration)*time.Second, r.MintOnly); err != nil {
		if errors.Is(err, wallet.ErrBadPassphrase) {
			return utils.Forbidden(err)
		}
		return err
	}
	return s.handleGetStatus(w, req)
}

func (s *Staking) handleLock(w http.ResponseWriter, req *http.Request) error {
	s.unlock.LockNow()
	return s.handleGetStatus(w, req)
}

func (s *Staking) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/status").
		Methods(http.MethodGet).
		Name("staking_get_status").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetStatus))
	sub.Path("/candidates").
		Methods(http.MethodGet).
		Name("staking_get_candidates").
		HandlerFunc(utils.WrapHandlerFunc(s.handleGetCandidates))
	sub.Path("/reserve").
		Methods(http.MethodPost).
		Name("staking_set_reserve").
		HandlerFunc(utils.WrapHandlerFunc(s.handleSetReserve))
	sub.Path("/unlock").
		Methods(http.MethodPost).
		Name("staking_unlock").
		HandlerFunc(utils.WrapHandlerFunc(s.handleUnlock))
	sub.Path("/lock").
		Methods(http.MethodPost).
		Name("staking_lock").
		HandlerFunc(utils.WrapHandlerFunc(s.handleLock))
}
