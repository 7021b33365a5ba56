// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"sync"
)

// Waiter exposes the channel a goroutine blocks on until the next signal.
type Waiter interface {
	C() <-chan struct{}
}

// Signal is a rendezvous point for a goroutine awaiting an event others
// announce. Unlike sync.Cond it is channel based, so the waiter can select
// on the event alongside a timer or a shutdown channel. A signal fired with
// nobody waiting is latched for the next waiter.
type Signal struct {
	l  sync.Mutex
	ch chan struct{}
}

func (s *Signal) init() {
	if s.ch == nil {
		s.ch = make(chan struct{}, 1)
	}
}

// Signal wakes the goroutine waiting on s, if any.
func (s *Signal) Signal() {
	s.l.Lock()
	s.init()
	select {
	case s.ch <- struct{}{}:
	default:
	}
	s.l.Unlock()
}

// NewWaiter returns a Waiter whose channel receives the next signal.
func (s *Signal) NewWaiter() Waiter {
	s.l.Lock()
	s.init()
	ch := s.ch
	s.l.Unlock()

	return waiter(ch)
}

type waiter <-chan struct{}

func (w waiter) C() <-chan struct{} {
	return w
}
