// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mint

import "fmt"

// Amount is a coin value counted in the smallest unit.
type Amount int64

// Coins returns the amount expressed in whole coins.
func (a Amount) Coins() float64 {
	return float64(a) / float64(CoinUnit)
}

// String formats the amount with the full unit precision.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%06d", int64(a)/CoinUnit, abs64(int64(a))%CoinUnit)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// OutPoint identifies an output within a transaction.
type OutPoint struct {
	TxID  Bytes32
	Index uint32
}

// String returns the "txid-index" presentation used across logs and the API.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s-%03d", o.TxID, o.Index)
}
