// Copyright (c) 2025 The StakeMint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package chain

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"

	"github.com/stakemint/mintd/block"
	"github.com/stakemint/mintd/cache"
	"github.com/stakemint/mintd/kv"
	"github.com/stakemint/mintd/log"
	"github.com/stakemint/mintd/mint"
)

var logger = log.WithContext("pkg", "chain")

var (
	bestKey   = []byte("best")
	modPrefix = []byte("mod-")
)

// Solo is a single-node Chain implementation used by solo mode and tests.
// It keeps the best head and per-block stake modifiers in a kv store, with
// a small LRU in front of modifier lookups. The modifier evolves by hashing
// the accepted block id into its parent's modifier, so eligibility cannot
// be precomputed far ahead even in solo mode.
type Solo struct {
	store kv.GetPutter
	bits  uint32

	mu   sync.Mutex
	best Head

	modCache *cache.LRU
}

var _ Chain = (*Solo)(nil)

// NewSolo opens (or bootstraps) a solo chain over the given store. bits is
// the fixed compact stake target; genesisTime stamps the genesis head when
// the store is empty.
func NewSolo(store kv.GetPutter, bits uint32, genesisTime uint32) (*Solo, error) {
	modCache, err := cache.NewLRU(512)
	if err != nil {
		return nil, err
	}
	s := &Solo{
		store:    store,
		bits:     bits,
		modCache: modCache,
	}

	data, err := store.Get(bestKey)
	if err != nil {
		if !store.IsNotFound(err) {
			return nil, errors.Wrap(err, "load best head")
		}
		return s, s.bootstrap(genesisTime)
	}

	s.best, err = decodeHead(data)
	return s, err
}

func (s *Solo) bootstrap(genesisTime uint32) error {
	genesis := Head{
		ID:        mint.Hash256([]byte("solo-genesis")),
		Number:    0,
		Timestamp: genesisTime,
	}
	// seed the modifier chain from the genesis id
	if err := s.putModifier(genesis.ID, binary.LittleEndian.Uint64(genesis.ID[:8])); err != nil {
		return err
	}
	if err := s.store.Put(bestKey, encodeHead(genesis)); err != nil {
		return errors.Wrap(err, "store genesis head")
	}
	s.best = genesis
	logger.Info("solo chain bootstrapped", "genesis", genesis.ID.AbbrevString())
	return nil
}

func (s *Solo) Best() Head {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

func (s *Solo) StakeTarget() StakeTarget {
	s.mu.Lock()
	best := s.best
	s.mu.Unlock()

	modifier, err := s.modifierOf(best.ID)
	if err != nil {
		logger.Error("missing stake modifier for best block", "id", best.ID, "err", err)
	}
	return StakeTarget{Bits: s.bits, Modifier: modifier}
}

// Synced is always true for a solo chain.
func (s *Solo) Synced() bool {
	return true
}

func (s *Solo) SubmitBlock(b *block.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header := b.Header()
	if header.ParentID != s.best.ID {
		return errors.Wrapf(ErrStaleParent, "parent %s, best %s",
			header.ParentID.AbbrevString(), s.best.ID.AbbrevString())
	}
	if header.Number != s.best.Number+1 {
		return errors.Errorf("bad block number %d, expected %d", header.Number, s.best.Number+1)
	}
	if header.Timestamp <= s.best.Timestamp {
		return errors.Errorf("block time %d not after parent time %d", header.Timestamp, s.best.Timestamp)
	}

	parentModifier, err := s.modifierOf(header.ParentID)
	if err != nil {
		return err
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], parentModifier)
	id := b.ID()
	next := binary.LittleEndian.Uint64(mint.Hash256(buf[:], id[:]).Bytes()[:8])
	if err := s.putModifier(id, next); err != nil {
		return err
	}

	head := Head{ID: id, Number: header.Number, Timestamp: header.Timestamp}
	if err := s.store.Put(bestKey, encodeHead(head)); err != nil {
		return errors.Wrap(err, "store best head")
	}
	s.best = head
	return nil
}

func (s *Solo) modifierOf(id mint.Bytes32) (uint64, error) {
	v, err := s.modCache.GetOrLoad(id, func(interface{}) (interface{}, error) {
		data, err := s.store.Get(append(modPrefix, id[:]...))
		if err != nil {
			return nil, errors.Wrap(err, "load stake modifier")
		}
		return binary.LittleEndian.Uint64(data), nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

func (s *Solo) putModifier(id mint.Bytes32, modifier uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], modifier)
	if err := s.store.Put(append(modPrefix, id[:]...), buf[:]); err != nil {
		return errors.Wrap(err, "store stake modifier")
	}
	s.modCache.Add(id, modifier)
	return nil
}

func encodeHead(h Head) []byte {
	buf := make([]byte, 0, 40)
	buf = append(buf, h.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Number)
	buf = binary.LittleEndian.AppendUint32(buf, h.Timestamp)
	return buf
}

func decodeHead(data []byte) (Head, error) {
	if len(data) != 40 {
		return Head{}, errors.New("corrupted head record")
	}
	var h Head
	copy(h.ID[:], data[:32])
	h.Number = binary.LittleEndian.Uint32(data[32:36])
	h.Timestamp = binary.LittleEndian.Uint32(data[36:40])
	return h, nil
}
