// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mint

import (
	"github.com/holiman/uint256"
)

// CompactToTarget expands the compact "bits" representation into the full
// 256-bit proof-of-stake target.
//
// The representation packs a target as a big-endian base-256 float: the high
// byte is the exponent (number of significant bytes), the low 23 bits the
// mantissa. The sign bit is meaningless for targets and treated as zero.
func CompactToTarget(bits uint32) *uint256.Int {
	mantissa := bits & 0x007fffff
	exponent := bits >> 24

	target := uint256.NewInt(uint64(mantissa))
	if exponent <= 3 {
		return target.Rsh(target, uint(8*(3-exponent)))
	}
	return target.Lsh(target, uint(8*(exponent-3)))
}

// TargetToCompact packs a 256-bit target into its compact representation.
// The conversion is lossy: only the three most significant bytes survive.
func TargetToCompact(target *uint256.Int) uint32 {
	exponent := uint32((target.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(target.Uint64()) << (8 * (3 - exponent))
	} else {
		t := new(uint256.Int).Rsh(target, uint(8*(exponent-3)))
		mantissa = uint32(t.Uint64())
	}

	// avoid the sign bit by shifting the mantissa right one byte
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}
	return exponent<<24 | mantissa
}

// CompactToDifficulty converts compact bits into the conventional floating
// point difficulty ratio. Diagnostic only, never part of consensus math.
func CompactToDifficulty(bits uint32) float64 {
	mantissa := bits & 0x00ffffff
	if mantissa == 0 {
		return 0
	}
	shift := (bits >> 24) & 0xff
	diff := float64(0x0000ffff) / float64(mantissa)

	for shift < 29 {
		diff *= 256
		shift++
	}
	for shift > 29 {
		diff /= 256
		shift--
	}
	return diff
}
