// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"encoding/binary"
	"fmt"

	"github.com/stakemint/mintd/mint"
)

// Header contains the stake block fields this engine is responsible for.
// The coinstake transaction timestamp equals the block timestamp; the
// protocol keeps the two synchronized.
type Header struct {
	ParentID    mint.Bytes32
	Number      uint32
	Timestamp   uint32
	Bits        uint32
	Beneficiary string

	// the kernel input that proved eligibility
	Coinstake   mint.OutPoint
	KernelProof mint.Bytes32
	Reward      mint.Amount
}

// Block is an assembled proof-of-stake block.
type Block struct {
	header Header
	id     mint.Bytes32
}

// Header returns a copy of the block header.
func (b *Block) Header() Header {
	return b.header
}

// ID returns the block identity, the double SHA-256 of the encoded header.
func (b *Block) ID() mint.Bytes32 {
	return b.id
}

func (b *Block) String() string {
	return fmt.Sprintf("block #%d %s parent=%s stake=%s t=%d",
		b.header.Number, b.id.AbbrevString(), b.header.ParentID.AbbrevString(), b.header.Coinstake, b.header.Timestamp)
}

// encode serializes the header with fixed little-endian widths.
func (h *Header) encode() []byte {
	buf := make([]byte, 0, 32+4+4+4+32+4+32+8+len(h.Beneficiary))
	buf = append(buf, h.ParentID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Number)
	buf = binary.LittleEndian.AppendUint32(buf, h.Timestamp)
	buf = binary.LittleEndian.AppendUint32(buf, h.Bits)
	buf = append(buf, h.Coinstake.TxID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Coinstake.Index)
	buf = append(buf, h.KernelProof[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(h.Reward))
	buf = append(buf, h.Beneficiary...)
	return buf
}
