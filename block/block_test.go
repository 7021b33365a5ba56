// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stakemint/mintd/mint"
)

func testBuilder() *Builder {
	return new(Builder).
		ParentID(mint.Hash256([]byte("parent"))).
		Number(7).
		Timestamp(1_700_000_000).
		Bits(0x1d00ffff).
		Beneficiary("addr").
		Coinstake(mint.OutPoint{TxID: mint.Hash256([]byte("tx")), Index: 2}, mint.Hash256([]byte("proof"))).
		Reward(mint.Amount(270_000))
}

func TestBuilder(t *testing.T) {
	b := testBuilder().Build()
	h := b.Header()

	assert.Equal(t, mint.Hash256([]byte("parent")), h.ParentID)
	assert.Equal(t, uint32(7), h.Number)
	assert.Equal(t, uint32(1_700_000_000), h.Timestamp)
	assert.Equal(t, uint32(0x1d00ffff), h.Bits)
	assert.Equal(t, "addr", h.Beneficiary)
	assert.Equal(t, uint32(2), h.Coinstake.Index)
	assert.Equal(t, mint.Hash256([]byte("proof")), h.KernelProof)
	assert.Equal(t, mint.Amount(270_000), h.Reward)
	assert.False(t, b.ID().IsZero())
}

func TestBlockIDDeterministic(t *testing.T) {
	assert.Equal(t, testBuilder().Build().ID(), testBuilder().Build().ID())

	// any header change moves the id
	assert.NotEqual(t,
		testBuilder().Build().ID(),
		testBuilder().Timestamp(1_700_000_001).Build().ID())
	assert.NotEqual(t,
		testBuilder().Build().ID(),
		testBuilder().Reward(1).Build().ID())
}
