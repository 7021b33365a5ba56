// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"github.com/stakemint/mintd/mint"
)

// Builder to make it easy to build a block object.
type Builder struct {
	header Header
}

// ParentID set parent id.
func (b *Builder) ParentID(id mint.Bytes32) *Builder {
	b.header.ParentID = id
	return b
}

// Number set block number.
func (b *Builder) Number(n uint32) *Builder {
	b.header.Number = n
	return b
}

// Timestamp set timestamp.
func (b *Builder) Timestamp(ts uint32) *Builder {
	b.header.Timestamp = ts
	return b
}

// Bits set the compact proof-of-stake target.
func (b *Builder) Bits(bits uint32) *Builder {
	b.header.Bits = bits
	return b
}

// Beneficiary set the address collecting the stake reward.
func (b *Builder) Beneficiary(addr string) *Builder {
	b.header.Beneficiary = addr
	return b
}

// Coinstake set the kernel input and its proof hash.
func (b *Builder) Coinstake(out mint.OutPoint, proof mint.Bytes32) *Builder {
	b.header.Coinstake = out
	b.header.KernelProof = proof
	return b
}

// Reward set the stake subsidy amount.
func (b *Builder) Reward(r mint.Amount) *Builder {
	b.header.Reward = r
	return b
}

// Build build a block object.
func (b *Builder) Build() *Block {
	header := b.header
	return &Block{
		header: header,
		id:     mint.Hash256(header.encode()),
	}
}
