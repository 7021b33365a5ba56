// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockDefault(t *testing.T) {
	c := New()
	assert.Zero(t, c.Offset())
	assert.InDelta(t, time.Now().Unix(), c.Unix(), 1)
}

func TestClockPeerMedian(t *testing.T) {
	c := New()
	for _, d := range []time.Duration{
		time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second, time.Minute,
	} {
		c.AddPeerSample(d)
	}
	assert.Equal(t, 3*time.Second, c.Offset())
}

func TestClockFewSamples(t *testing.T) {
	c := New()
	c.AddPeerSample(time.Minute)
	c.AddPeerSample(time.Minute)
	c.AddPeerSample(time.Minute)

	// the median is not trusted until enough samples arrived
	assert.Zero(t, c.Offset())
}

func TestClockEvenCountKeepsCorrection(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.AddPeerSample(2 * time.Second)
	}
	assert.Equal(t, 2*time.Second, c.Offset())

	// an even sample count does not trigger a recompute
	c.AddPeerSample(time.Hour)
	assert.Equal(t, 2*time.Second, c.Offset())
}

func TestClockOutOfBoundsMedian(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.AddPeerSample(2 * time.Hour)
	}

	// an absurd median means hostile or broken peers, fall back to local
	assert.Zero(t, c.Offset())
}
