// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"testing"
	"time"
)

func TestSignalWakesWaiter(t *testing.T) {
	var sig Signal
	w := sig.NewWaiter()

	sig.Signal()
	select {
	case <-w.C():
	case <-time.After(time.Second):
		t.Fatal("waiter not woken")
	}
}

func TestSignalBeforeWait(t *testing.T) {
	// a signal fired with nobody waiting is latched for the next waiter
	var sig Signal
	sig.Signal()

	select {
	case <-sig.NewWaiter().C():
	case <-time.After(time.Second):
		t.Fatal("latched signal lost")
	}
}

func TestGoesDone(t *testing.T) {
	var goes Goes
	goes.Go(func() { time.Sleep(10 * time.Millisecond) })

	select {
	case <-goes.Done():
	case <-time.After(time.Second):
		t.Fatal("Done never closed")
	}
}
