// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakemint/mintd/mint"
)

func TestShowTransaction(t *testing.T) {
	tests := []struct {
		name string
		tx   TxSummary
		want bool
	}{
		{"regular trusted", TxSummary{Trusted: true}, true},
		{"regular untrusted", TxSummary{Trusted: false}, false},
		{"coinbase shallow", TxSummary{IsCoinbase: true, Depth: 1, Trusted: true}, false},
		{"coinbase deep enough", TxSummary{IsCoinbase: true, Depth: 2, Trusted: true}, true},
		{"coinstake shallow", TxSummary{IsCoinStake: true, Depth: 1, Trusted: true}, false},
		{"coinstake deep but untrusted", TxSummary{IsCoinStake: true, Depth: 10, Trusted: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowTransaction(&tt.tx))
		})
	}
}

func TestDecompose(t *testing.T) {
	tx := &TxSummary{
		TxID:    mint.Hash256([]byte("tx")),
		Time:    testNow - 40*mint.OneDay,
		Trusted: true,
		Outputs: []TxOutput{
			{Address: "a0", Value: coins(10), Mine: true},
			{Address: "a1", Value: coins(20), Mine: false},
			{Address: "a2", Value: coins(30), Mine: true, Spent: true},
		},
	}

	parts := Decompose(tx)
	assert.Len(t, parts, 2)

	// indexes refer to the output position in the transaction, not the
	// position among owned outputs
	assert.Equal(t, uint32(0), parts[0].Index)
	assert.Equal(t, uint32(2), parts[1].Index)

	assert.Equal(t, tx.TxID, parts[0].TxID)
	assert.Equal(t, tx.Time, parts[0].Time)
	assert.Equal(t, "a2", parts[1].Address)
	assert.True(t, parts[1].Spent)
}

func TestDecomposeHidden(t *testing.T) {
	tx := &TxSummary{
		TxID:       mint.Hash256([]byte("coinbase")),
		IsCoinbase: true,
		Depth:      1,
		Trusted:    true,
		Outputs:    []TxOutput{{Address: "a", Value: coins(5), Mine: true}},
	}
	assert.Nil(t, Decompose(tx))
}

func TestCandidateOutPoint(t *testing.T) {
	c := Candidate{TxID: mint.Hash256([]byte("tx")), Index: 3}
	assert.Equal(t, mint.OutPoint{TxID: c.TxID, Index: 3}, c.OutPoint())
}
