// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockManagerBadPassphrase(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	assert.ErrorIs(t, m.Unlock("wrong", time.Minute, false), ErrBadPassphrase)
	assert.True(t, w.IsLocked())
	assert.True(t, m.CurrentDeadline().IsZero())
}

func TestUnlockManagerAutoLock(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	require.NoError(t, m.Unlock("secret", 30*time.Millisecond, false))
	assert.False(t, w.IsLocked())
	assert.False(t, m.CurrentDeadline().IsZero())

	assert.Eventually(t, w.IsLocked, time.Second, 5*time.Millisecond)
	assert.True(t, m.CurrentDeadline().IsZero())
}

func TestUnlockManagerIndefinite(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	// zero duration means no scheduled relock
	require.NoError(t, m.Unlock("secret", 0, true))
	assert.True(t, m.CurrentDeadline().IsZero())

	time.Sleep(50 * time.Millisecond)
	assert.False(t, w.IsLocked())
	assert.True(t, w.MintOnly())
}

func TestUnlockManagerLaterDeadlineWins(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	require.NoError(t, m.Unlock("secret", time.Minute, false))
	first := m.CurrentDeadline()

	// an earlier deadline never shortens the window
	m.ExtendUnlock(time.Now().Add(time.Second))
	assert.Equal(t, first, m.CurrentDeadline())

	// a later one extends it
	later := time.Now().Add(time.Hour)
	m.ExtendUnlock(later)
	assert.Equal(t, later, m.CurrentDeadline())
	assert.False(t, w.IsLocked())
}

func TestUnlockManagerExtendWakesWaiter(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	// the waiter sleeps toward a distant deadline; replacing it with a
	// near one must relock promptly, not after the stale hour
	require.NoError(t, m.Unlock("secret", 0, false))
	m.ExtendUnlock(time.Now().Add(20 * time.Millisecond))

	assert.Eventually(t, w.IsLocked, time.Second, 5*time.Millisecond)
}

func TestUnlockManagerLockNow(t *testing.T) {
	w := NewMemWallet("secret")
	m := NewUnlockManager(w)
	defer m.Close()

	require.NoError(t, m.Unlock("secret", time.Hour, false))
	assert.False(t, w.IsLocked())

	m.LockNow()
	assert.True(t, w.IsLocked())
	assert.True(t, m.CurrentDeadline().IsZero())

	// the cancelled deadline must not fire later
	time.Sleep(50 * time.Millisecond)
	assert.True(t, w.IsLocked())
}
