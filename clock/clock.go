// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/pkg/errors"

	"github.com/stakemint/mintd/log"
)

var logger = log.WithContext("pkg", "clock")

const (
	// peer offsets beyond this are assumed hostile or broken and ignored
	maxOffset = 70 * time.Minute

	// median is only meaningful once this many samples arrived
	minSamples = 5

	maxSamples = 200
)

// Clock supplies adjusted network time: the local clock corrected by the
// median offset observed against peers, with an NTP-sourced offset taking
// precedence when available. All kernel age math and block times must be
// taken from here, never from the raw local clock.
type Clock struct {
	mu         sync.Mutex
	samples    []time.Duration
	peerOffset time.Duration
	ntpOffset  time.Duration
	haveNTP    bool
}

// New creates a Clock with zero correction.
func New() *Clock {
	return &Clock{}
}

// Now returns the adjusted network time.
func (c *Clock) Now() time.Time {
	return time.Now().Add(c.Offset())
}

// Unix returns the adjusted network time in unix seconds.
func (c *Clock) Unix() int64 {
	return c.Now().Unix()
}

// Offset returns the correction currently applied to the local clock.
func (c *Clock) Offset() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.haveNTP {
		return c.ntpOffset
	}
	return c.peerOffset
}

// AddPeerSample records one peer's reported clock offset. The applied peer
// correction is the median of all samples, recomputed on odd sample counts
// once enough samples arrived.
func (c *Clock) AddPeerSample(offset time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.samples) >= maxSamples {
		return
	}
	c.samples = append(c.samples, offset)

	if n := len(c.samples); n >= minSamples && n%2 == 1 {
		sorted := make([]time.Duration, n)
		copy(sorted, c.samples)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		median := sorted[n/2]
		if median > maxOffset || median < -maxOffset {
			logger.Warn("peer time offset out of bounds, ignoring", "median", median)
			c.peerOffset = 0
			return
		}
		c.peerOffset = median
	}
}

// SyncNTP queries the given NTP server and installs its clock offset,
// overriding the peer-derived correction.
func (c *Clock) SyncNTP(server string) error {
	resp, err := ntp.Query(server)
	if err != nil {
		return errors.Wrap(err, "ntp query")
	}

	c.mu.Lock()
	c.ntpOffset = resp.ClockOffset
	c.haveNTP = true
	c.mu.Unlock()

	if resp.ClockOffset > time.Second*5 || resp.ClockOffset < -time.Second*5 {
		logger.Warn("large clock offset detected", "offset", resp.ClockOffset)
	} else {
		logger.Debug("clock synced", "offset", resp.ClockOffset)
	}
	return nil
}
