// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"github.com/stakemint/mintd/mint"
)

// Candidate is an immutable snapshot of one spendable output eligible to
// stake. Candidates are rebuilt on every scan pass from wallet-owned outputs
// and are owned exclusively by the pass that created them.
type Candidate struct {
	TxID    mint.Bytes32
	Time    int64 // originating transaction timestamp, unix seconds
	Address string
	Value   mint.Amount
	Index   uint32
	Spent   bool

	prob probCache
}

// OutPoint returns the identity of the underlying output.
func (c *Candidate) OutPoint() mint.OutPoint {
	return mint.OutPoint{TxID: c.TxID, Index: c.Index}
}

// TxSummary is the wallet collaborator's view of one owned transaction,
// carrying just enough to decompose it into stake candidates.
type TxSummary struct {
	TxID        mint.Bytes32
	Time        int64
	IsCoinbase  bool
	IsCoinStake bool
	Depth       int32
	Trusted     bool
	Outputs     []TxOutput
}

// TxOutput is one output of a TxSummary.
type TxOutput struct {
	Address string
	Value   mint.Amount
	Mine    bool
	Spent   bool
}

// ShowTransaction reports whether the transaction's outputs are visible to
// the staking scan at all. Generated (coinbase/coinstake) transactions need
// a minimum depth; untrusted transactions are never shown.
func ShowTransaction(tx *TxSummary) bool {
	if tx.IsCoinbase || tx.IsCoinStake {
		if tx.Depth < mint.MinStakeTxDepth {
			return false
		}
	}
	return tx.Trusted
}

// Decompose breaks a wallet transaction into kernel candidates, one per
// owned output.
func Decompose(tx *TxSummary) []Candidate {
	if !ShowTransaction(tx) {
		return nil
	}

	parts := make([]Candidate, 0, len(tx.Outputs))
	for i, out := range tx.Outputs {
		if !out.Mine {
			continue
		}
		parts = append(parts, Candidate{
			TxID:    tx.TxID,
			Time:    tx.Time,
			Address: out.Address,
			Value:   out.Value,
			Index:   uint32(i),
			Spent:   out.Spent,
		})
	}
	return parts
}
