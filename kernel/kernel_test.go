// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakemint/mintd/mint"
)

func testTemplate(bits uint32) *StakeTemplate {
	return &StakeTemplate{
		StakeModifier: 0x0123456789abcdef,
		TxID:          mint.Hash256([]byte("stake-tx")),
		OutIndex:      1,
		TxTime:        uint32(testNow - 60*mint.OneDay),
		Value:         coins(1000),
		Bits:          bits,
	}
}

func TestCheckStakeKernelDeterministic(t *testing.T) {
	tpl := testTemplate(0x1d00ffff)
	blockTime := uint32(testNow)
	weight := CoinDay(tpl.Value, int64(tpl.TxTime), testNow)

	proof1, hit1 := CheckStakeKernel(tpl, weight, blockTime)
	proof2, hit2 := CheckStakeKernel(tpl, weight, blockTime)
	assert.Equal(t, proof1, proof2)
	assert.Equal(t, hit1, hit2)
	assert.False(t, proof1.IsZero())
}

func TestCheckStakeKernelZeroWeight(t *testing.T) {
	tpl := testTemplate(0x1d00ffff)

	// zero weight collapses the threshold to zero, nothing can pass
	proof, hit := CheckStakeKernel(tpl, 0, uint32(testNow))
	assert.False(t, hit)
	assert.False(t, proof.IsZero())
}

func TestCheckStakeKernelEasyTarget(t *testing.T) {
	// maximal target times any real weight overflows the digest domain
	tpl := testTemplate(0x207fffff)
	weight := CoinDay(tpl.Value, int64(tpl.TxTime), testNow)

	_, hit := CheckStakeKernel(tpl, weight, uint32(testNow))
	assert.True(t, hit)
}

func TestStakeHashInputSensitivity(t *testing.T) {
	tpl := testTemplate(0x1d00ffff)
	weight := uint64(10_000)

	base, _ := CheckStakeKernel(tpl, weight, uint32(testNow))

	other := *tpl
	other.StakeModifier++
	p, _ := CheckStakeKernel(&other, weight, uint32(testNow))
	assert.NotEqual(t, base, p)

	other = *tpl
	other.OutIndex++
	p, _ = CheckStakeKernel(&other, weight, uint32(testNow))
	assert.NotEqual(t, base, p)

	p, _ = CheckStakeKernel(tpl, weight, uint32(testNow)+1)
	assert.NotEqual(t, base, p)
}

func TestScanBackwardFindsHit(t *testing.T) {
	tpl := testTemplate(0x207fffff)
	high := uint32(testNow)
	low := high - 60

	proof, blockTime, ok := ScanBackward(tpl, high, low)
	assert.True(t, ok)
	assert.False(t, proof.IsZero())
	// the scan starts at the top of the interval; with a target this easy
	// the very first probe hits
	assert.Equal(t, high, blockTime)
	assert.Greater(t, blockTime, low)
}

func TestScanBackwardMiss(t *testing.T) {
	// target of 1: the digest would have to be 0 or 1 to pass
	tpl := testTemplate(0x03000001)
	high := uint32(testNow)

	_, _, ok := ScanBackward(tpl, high, high-60)
	assert.False(t, ok)
}

func TestScanBackwardEmptyInterval(t *testing.T) {
	tpl := testTemplate(0x207fffff)
	high := uint32(testNow)

	_, _, ok := ScanBackward(tpl, high, high)
	assert.False(t, ok)
}

func TestScanBackwardImmature(t *testing.T) {
	// the output is younger than the minimum age at every probed instant,
	// so its weight is zero throughout and nothing can hit
	tpl := testTemplate(0x207fffff)
	tpl.TxTime = uint32(testNow - 10*mint.OneDay)

	_, _, ok := ScanBackward(tpl, uint32(testNow), uint32(testNow)-60)
	assert.False(t, ok)
}
