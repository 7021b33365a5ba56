// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mint

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestCompactToTarget(t *testing.T) {
	// 0x1d00ffff is the classic difficulty-1 target: 0xffff << 208
	want := new(uint256.Int).Lsh(uint256.NewInt(0xffff), 208)
	assert.Equal(t, want, CompactToTarget(0x1d00ffff))

	// exponent below 3 shifts right
	assert.Equal(t, uint256.NewInt(0x12), CompactToTarget(0x02001234))

	assert.True(t, CompactToTarget(0).IsZero())
}

func TestTargetToCompactRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0x1d00ffff, 0x207fffff, 0x1b0404cb} {
		assert.Equal(t, bits, TargetToCompact(CompactToTarget(bits)))
	}
}

func TestCompactToDifficulty(t *testing.T) {
	assert.InDelta(t, 1.0, CompactToDifficulty(0x1d00ffff), 1e-9)
	assert.InDelta(t, 256.0, CompactToDifficulty(0x1c00ffff), 1e-6)

	// an easier target means lower difficulty
	assert.Less(t, CompactToDifficulty(0x207fffff), CompactToDifficulty(0x1d00ffff))

	// a zero mantissa encodes no target at all, not an infinite difficulty
	assert.Zero(t, CompactToDifficulty(0x1d000000))
	assert.Zero(t, CompactToDifficulty(0))
}
