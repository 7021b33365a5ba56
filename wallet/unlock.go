// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"sync"
	"time"

	"github.com/stakemint/mintd/co"
	"github.com/stakemint/mintd/log"
)

var logger = log.WithContext("pkg", "wallet")

// UnlockManager owns the shared auto-lock deadline of a wallet. All unlock
// windows flow through it: concurrent requests race by deadline and the later
// deadline wins, so the window only ever extends, unless LockNow cuts it.
//
// A single waiter goroutine sleeps toward the deadline and relocks the wallet
// when it passes. Deadline changes wake the waiter early through a signal
// instead of letting it poll out the stale deadline.
type UnlockManager struct {
	wallet Wallet

	mu       sync.Mutex
	sig      co.Signal
	deadline time.Time // zero means no scheduled relock
	closed   bool

	goes co.Goes
}

// NewUnlockManager creates the manager and starts its waiter.
func NewUnlockManager(w Wallet) *UnlockManager {
	m := &UnlockManager{wallet: w}
	m.goes.Go(m.waitLoop)
	return m
}

// Unlock unlocks the wallet and schedules the relock after the given
// duration. A zero duration leaves the wallet unlocked indefinitely.
func (m *UnlockManager) Unlock(passphrase string, duration time.Duration, mintOnly bool) error {
	if err := m.wallet.Unlock(passphrase, mintOnly); err != nil {
		return err
	}
	if duration > 0 {
		m.ExtendUnlock(time.Now().Add(duration))
	}
	return nil
}

// ExtendUnlock moves the relock deadline. An earlier deadline than the
// current one is ignored; the timer only extends.
func (m *UnlockManager) ExtendUnlock(deadline time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.deadline.IsZero() && deadline.Before(m.deadline) {
		return
	}
	m.deadline = deadline
	m.sig.Signal()
}

// LockNow relocks the wallet immediately and clears any scheduled relock.
func (m *UnlockManager) LockNow() {
	m.mu.Lock()
	m.deadline = time.Time{}
	m.sig.Signal()
	m.mu.Unlock()

	m.wallet.Lock()
}

// CurrentDeadline returns the scheduled relock time; the zero time means no
// relock is scheduled.
func (m *UnlockManager) CurrentDeadline() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deadline
}

// Close stops the waiter. The wallet's lock state is left as is.
func (m *UnlockManager) Close() {
	m.mu.Lock()
	m.closed = true
	m.sig.Signal()
	m.mu.Unlock()

	m.goes.Wait()
}

func (m *UnlockManager) waitLoop() {
	for {
		m.mu.Lock()
		deadline := m.deadline
		closed := m.closed
		waiter := m.sig.NewWaiter()
		m.mu.Unlock()

		if closed {
			return
		}

		if deadline.IsZero() {
			<-waiter.C()
			continue
		}

		d := time.Until(deadline)
		if d <= 0 {
			m.expire(deadline)
			continue
		}

		timer := time.NewTimer(d)
		select {
		case <-timer.C:
			m.expire(deadline)
		case <-waiter.C():
			// deadline changed or shutting down, recheck
			timer.Stop()
		}
	}
}

// expire relocks the wallet if the deadline it slept toward is still current.
func (m *UnlockManager) expire(deadline time.Time) {
	m.mu.Lock()
	current := m.deadline.Equal(deadline)
	if current {
		m.deadline = time.Time{}
	}
	m.mu.Unlock()

	if current {
		logger.Info("unlock window expired, locking wallet")
		m.wallet.Lock()
	}
}
