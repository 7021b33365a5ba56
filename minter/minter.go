// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/stakemint/mintd/block"
	"github.com/stakemint/mintd/chain"
	"github.com/stakemint/mintd/co"
	"github.com/stakemint/mintd/log"
	"github.com/stakemint/mintd/mint"
	"github.com/stakemint/mintd/wallet"
)

var logger = log.WithContext("pkg", "minter")

// State of the minting loop, observable through Status.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateSubmitting
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateSubmitting:
		return "submitting"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// PauseReason explains a paused loop. Empty while not paused.
type PauseReason string

const (
	PauseNone            PauseReason = ""
	PauseWalletLocked    PauseReason = "wallet locked"
	PauseReserveExceeded PauseReason = "reserve balance exceeds spendable balance"
	PauseChainNotSynced  PauseReason = "chain not synced"
)

// Clock is the adjusted time source search passes are stamped with.
type Clock interface {
	Unix() int64
}

// Status is a point-in-time snapshot of the minting loop.
type Status struct {
	State          State
	PauseReason    PauseReason
	Candidates     int
	TotalCoinDay   uint64
	LastSearchTime int64
	MintedBlocks   uint64
	LastBlockID    mint.Bytes32
}

// Options tune the minting loop.
type Options struct {
	// PollInterval is the housekeeping period of the loop.
	PollInterval time.Duration
	// MaxSearchInterval bounds how far back one pass probes block time
	// values, no matter how long the loop was held up.
	MaxSearchInterval uint32
	// Beneficiary collects the stake reward. Empty means the staking
	// output's own address.
	Beneficiary string
}

// Minter runs the proof-of-stake minting loop: poll collaborators, search
// eligible wallet outputs for a kernel hit, submit the minted block. Created
// running; Close stops it.
type Minter struct {
	chain   chain.Chain
	wallet  wallet.Wallet
	clock   Clock
	options Options

	mu         sync.Mutex
	status     Status
	lastSearch int64

	done chan struct{}
	goes co.Goes
}

// New creates the minter and starts its loop.
func New(c chain.Chain, w wallet.Wallet, clk Clock, options Options) *Minter {
	if options.PollInterval <= 0 {
		options.PollInterval = time.Second
	}
	if options.MaxSearchInterval == 0 {
		options.MaxSearchInterval = mint.MaxStakeSearchInterval
	}
	m := &Minter{
		chain:   c,
		wallet:  w,
		clock:   clk,
		options: options,
		done:    make(chan struct{}),
	}
	// the first pass searches forward from startup, not into the past
	m.lastSearch = clk.Unix()
	m.goes.Go(m.loop)
	return m
}

// Close stops the loop and waits for it to quit.
func (m *Minter) Close() {
	close(m.done)
	m.goes.Wait()
	logger.Info("minter closed")
}

// Status returns a snapshot of the loop.
func (m *Minter) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Minter) loop() {
	logger.Info("minter started", "poll", m.options.PollInterval, "maxSearchInterval", m.options.MaxSearchInterval)

	ticker := time.NewTicker(m.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			outcome := m.cycle()
			metricCycleCount().AddWithLabel(1, map[string]string{"outcome": outcome})
		}
	}
}

// cycle runs one housekeeping pass and returns its outcome label.
func (m *Minter) cycle() string {
	if !m.chain.Synced() {
		m.pause(PauseChainNotSynced)
		return "paused"
	}
	if m.wallet.IsLocked() {
		m.pause(PauseWalletLocked)
		return "paused"
	}

	balance, err := m.wallet.SpendableBalance()
	if err != nil {
		logger.Error("failed to read spendable balance", "err", err)
		return "error"
	}
	reserve := m.wallet.ReserveBalance()
	if balance <= reserve {
		m.pause(PauseReserveExceeded)
		return "paused"
	}

	now := m.clock.Unix()
	m.mu.Lock()
	last := m.lastSearch
	m.mu.Unlock()
	if now <= last {
		// adjusted time has not advanced past the last pass yet
		return "waiting"
	}
	searchInterval := uint32(now - last)
	if searchInterval > m.options.MaxSearchInterval {
		searchInterval = m.options.MaxSearchInterval
	}

	outputs, err := m.wallet.SpendableOutputs()
	if err != nil {
		logger.Error("failed to list spendable outputs", "err", err)
		return "error"
	}
	candidates := eligibleCandidates(outputs, balance, reserve)
	metricCandidateGauge().Set(int64(len(candidates)))
	if len(candidates) == 0 && hasUnspent(outputs) {
		// everything left in the wallet would dip below the reserve
		m.pause(PauseReserveExceeded)
		return "paused"
	}

	var totalCoinDay uint64
	for i := range candidates {
		totalCoinDay += candidates[i].CoinDay(now)
	}
	m.setSearching(len(candidates), totalCoinDay)

	best := m.chain.Best()
	target := m.chain.StakeTarget()
	blk := buildStakeBlock(best, target, candidates, now, searchInterval, m.options.Beneficiary)

	m.mu.Lock()
	m.lastSearch = now
	m.status.LastSearchTime = now
	m.mu.Unlock()

	if blk == nil {
		m.setIdle()
		return "miss"
	}
	return m.submit(blk)
}

// submit hands the minted block to the chain, rechecking the parent first so
// an obviously stale block never leaves the minter. A rejection is final for
// this pass; the next one re-derives fresh state.
func (m *Minter) submit(blk *block.Block) string {
	m.setState(StateSubmitting, PauseNone)

	if best := m.chain.Best(); best.ID != blk.Header().ParentID {
		logger.Debug("discarding stale minted block",
			"id", blk.ID().AbbrevString(), "parent", blk.Header().ParentID.AbbrevString())
		m.setIdle()
		return "stale"
	}

	if err := m.chain.SubmitBlock(blk); err != nil {
		if errors.Is(err, chain.ErrStaleParent) {
			logger.Debug("minted block went stale during submit", "id", blk.ID().AbbrevString())
			m.setIdle()
			return "stale"
		}
		logger.Warn("minted block rejected", "id", blk.ID().AbbrevString(), "err", err)
		m.setIdle()
		return "rejected"
	}

	metricStakeFound().Add(1)
	logger.Info("stake found",
		"id", blk.ID().AbbrevString(),
		"number", blk.Header().Number,
		"reward", blk.Header().Reward,
	)

	m.mu.Lock()
	m.status.MintedBlocks++
	m.status.LastBlockID = blk.ID()
	m.status.State = StateIdle
	m.status.PauseReason = PauseNone
	m.mu.Unlock()
	return "minted"
}

func (m *Minter) pause(reason PauseReason) {
	m.mu.Lock()
	changed := m.status.State != StatePaused || m.status.PauseReason != reason
	m.status.State = StatePaused
	m.status.PauseReason = reason
	m.mu.Unlock()

	if changed {
		logger.Info("minting paused", "reason", reason)
	}
}

func (m *Minter) setIdle() {
	m.setState(StateIdle, PauseNone)
}

func (m *Minter) setState(state State, reason PauseReason) {
	m.mu.Lock()
	m.status.State = state
	m.status.PauseReason = reason
	m.mu.Unlock()
}

func (m *Minter) setSearching(candidates int, totalCoinDay uint64) {
	m.mu.Lock()
	m.status.State = StateSearching
	m.status.PauseReason = PauseNone
	m.status.Candidates = candidates
	m.status.TotalCoinDay = totalCoinDay
	m.mu.Unlock()
}
