// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mint

import (
	"crypto/sha256"
	"hash"
	"sync"
)

// Hash256 computes the double SHA-256 checksum for given data.
// This is the digest the stake kernel protocol is defined over.
func Hash256(data ...[]byte) (h Bytes32) {
	s := sha256StatePool.Get().(*sha256State)

	for _, b := range data {
		s.Write(b)
	}
	s.Sum(s.b32[:0])
	s.Reset()

	s.Write(s.b32[:])
	s.Sum(s.b32[:0])
	h = s.b32

	s.Reset()
	sha256StatePool.Put(s)
	return
}

type sha256State struct {
	hash.Hash
	b32 Bytes32
}

var sha256StatePool = sync.Pool{
	New: func() any {
		return &sha256State{
			Hash: sha256.New(),
		}
	},
}
