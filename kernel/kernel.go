// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/stakemint/mintd/mint"
)

// StakeTemplate carries the per-candidate inputs of the kernel test that stay
// fixed while block time values are probed.
type StakeTemplate struct {
	StakeModifier uint64
	TxID          mint.Bytes32
	OutIndex      uint32
	TxTime        uint32
	Value         mint.Amount
	Bits          uint32
}

// stakeHash builds the kernel digest for one (template, blockTime) pair.
//
// The serialization is protocol: little-endian fixed widths, in the order
// stake modifier, originating txid, output index, tx timestamp, block time.
// Changing any of this forks the node off the network.
func stakeHash(modifier uint64, txID mint.Bytes32, outIndex, txTime, blockTime uint32) mint.Bytes32 {
	var buf [52]byte
	binary.LittleEndian.PutUint64(buf[0:8], modifier)
	copy(buf[8:40], txID[:])
	binary.LittleEndian.PutUint32(buf[40:44], outIndex)
	binary.LittleEndian.PutUint32(buf[44:48], txTime)
	binary.LittleEndian.PutUint32(buf[48:52], blockTime)
	return mint.Hash256(buf[:])
}

// CheckStakeKernel evaluates the hash threshold test for the template at the
// proposed block time, with the given coin-day weight. It returns the proof
// hash and whether it meets target×weight. Pure function; a miss is the
// expected common case, not an error.
func CheckStakeKernel(tpl *StakeTemplate, weight uint64, blockTime uint32) (proof mint.Bytes32, hit bool) {
	proof = stakeHash(tpl.StakeModifier, tpl.TxID, tpl.OutIndex, tpl.TxTime, blockTime)

	threshold, overflow := new(uint256.Int).MulOverflow(
		mint.CompactToTarget(tpl.Bits),
		uint256.NewInt(weight),
	)
	if overflow {
		// threshold exceeds the digest domain, every proof passes
		return proof, true
	}

	digest := new(uint256.Int).SetBytes(proof[:])
	return proof, digest.Cmp(threshold) <= 0
}

// ScanBackward probes block time values from high down to (but excluding)
// low, recomputing the weight at each probed instant, and returns the first
// hit. The caller bounds the interval per policy.
func ScanBackward(tpl *StakeTemplate, high, low uint32) (proof mint.Bytes32, blockTime uint32, ok bool) {
	for t := high; t > low; t-- {
		weight := CoinDay(tpl.Value, int64(tpl.TxTime), int64(t))
		if proof, hit := CheckStakeKernel(tpl, weight, t); hit {
			return proof, t, true
		}
	}
	return mint.Bytes32{}, 0, false
}
