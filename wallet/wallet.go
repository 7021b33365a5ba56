// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"github.com/pkg/errors"

	"github.com/stakemint/mintd/kernel"
	"github.com/stakemint/mintd/mint"
)

// ErrBadPassphrase returned by Unlock when the passphrase does not match.
var ErrBadPassphrase = errors.New("incorrect passphrase")

// Wallet is the collaborator contract the minting engine consumes. Key
// management, signing and persistent storage live behind it.
type Wallet interface {
	// SpendableOutputs returns fresh stake candidates decomposed from the
	// wallet's owned transactions. Spent outputs are excluded.
	SpendableOutputs() ([]kernel.Candidate, error)

	// IsTrusted reports whether the wallet considers the transaction final
	// enough to stake from.
	IsTrusted(txID mint.Bytes32) bool

	IsLocked() bool
	// MintOnly reports whether the wallet is unlocked for minting only,
	// with ordinary spends still forbidden.
	MintOnly() bool

	Unlock(passphrase string, mintOnly bool) error
	Lock()

	SpendableBalance() (mint.Amount, error)

	// ReserveBalance is the user-configured amount kept liquid and
	// excluded from staking.
	ReserveBalance() mint.Amount
	SetReserveBalance(mint.Amount)
}
