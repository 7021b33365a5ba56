// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package chain

import (
	"github.com/pkg/errors"

	"github.com/stakemint/mintd/block"
	"github.com/stakemint/mintd/mint"
)

// ErrStaleParent returned by SubmitBlock when the submitted block no longer
// extends the best chain.
var ErrStaleParent = errors.New("stale parent")

// Head describes the best block known to the chain collaborator.
type Head struct {
	ID        mint.Bytes32
	Number    uint32
	Timestamp uint32
}

// StakeTarget bundles the proof-of-stake difficulty inputs of the kernel
// test: the compact target and the current stake modifier. Read-only for
// the minting engine.
type StakeTarget struct {
	Bits     uint32
	Modifier uint64
}

// Chain is the chain-state collaborator contract the minting engine
// consumes. Fork choice, peer sync and block validation live behind it.
type Chain interface {
	Best() Head
	StakeTarget() StakeTarget

	// Synced reports whether the node considers itself at the top of the
	// network chain. Minting is pointless before that.
	Synced() bool

	// SubmitBlock hands a freshly minted block to validation. Rejection is
	// returned as an error and is not retried by the caller; the next
	// search cycle re-derives fresh state.
	SubmitBlock(b *block.Block) error
}
