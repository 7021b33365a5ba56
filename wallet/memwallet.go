// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wallet

import (
	"sync"

	"github.com/stakemint/mintd/kernel"
	"github.com/stakemint/mintd/mint"
)

// MemWallet is an in-memory Wallet used by solo mode and tests. It holds
// transaction summaries and serves candidates by decomposing them on demand,
// the way a real wallet scans its owned outputs.
type MemWallet struct {
	mu         sync.Mutex
	passphrase string
	locked     bool
	mintOnly   bool
	reserve    mint.Amount
	txs        map[mint.Bytes32]*kernel.TxSummary
	order      []mint.Bytes32
}

var _ Wallet = (*MemWallet)(nil)

// NewMemWallet creates a locked in-memory wallet guarded by the passphrase.
func NewMemWallet(passphrase string) *MemWallet {
	return &MemWallet{
		passphrase: passphrase,
		locked:     true,
		txs:        make(map[mint.Bytes32]*kernel.TxSummary),
	}
}

// AddTx registers an owned transaction. Later adds with the same id replace
// the earlier summary.
func (w *MemWallet) AddTx(tx *kernel.TxSummary) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.txs[tx.TxID]; !ok {
		w.order = append(w.order, tx.TxID)
	}
	w.txs[tx.TxID] = tx
}

// MarkSpent flags one output as spent.
func (w *MemWallet) MarkSpent(out mint.OutPoint) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if tx, ok := w.txs[out.TxID]; ok && int(out.Index) < len(tx.Outputs) {
		tx.Outputs[out.Index].Spent = true
	}
}

func (w *MemWallet) SpendableOutputs() ([]kernel.Candidate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var candidates []kernel.Candidate
	for _, id := range w.order {
		for _, c := range kernel.Decompose(w.txs[id]) {
			if c.Spent {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func (w *MemWallet) IsTrusted(txID mint.Bytes32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	tx, ok := w.txs[txID]
	return ok && tx.Trusted
}

func (w *MemWallet) IsLocked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.locked
}

func (w *MemWallet) MintOnly() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.locked && w.mintOnly
}

func (w *MemWallet) Unlock(passphrase string, mintOnly bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if passphrase != w.passphrase {
		return ErrBadPassphrase
	}
	w.locked = false
	w.mintOnly = mintOnly
	return nil
}

func (w *MemWallet) Lock() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.locked = true
	w.mintOnly = false
}

func (w *MemWallet) SpendableBalance() (mint.Amount, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var total mint.Amount
	for _, tx := range w.txs {
		if !kernel.ShowTransaction(tx) {
			continue
		}
		for _, out := range tx.Outputs {
			if out.Mine && !out.Spent {
				total += out.Value
			}
		}
	}
	return total, nil
}

func (w *MemWallet) ReserveBalance() mint.Amount {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reserve
}

func (w *MemWallet) SetReserveBalance(a mint.Amount) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reserve = a
}
