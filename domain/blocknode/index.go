// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocknode

import (
	"encoding/binary"
	"sync"

	"github.com/kaspanet/checkpointd/infrastructure/db/dbaccess"
	"github.com/kaspanet/checkpointd/util/daghash"
	"github.com/pkg/errors"
)

// Map is a plain hash to node map. It is not safe for concurrent writes and
// is meant for snapshots handed to read-only consumers.
type Map map[daghash.Hash]*Node

// LookupNode returns the block node identified by the provided hash.
func (m Map) LookupNode(hash *daghash.Hash) (*Node, bool) {
	node, ok := m[*hash]
	return node, ok && node != nil
}

// Index provides facilities for keeping track of an in-memory Index of the
// block chain.
type Index struct {
	sync.RWMutex
	index map[daghash.Hash]*Node
	dirty map[*Node]struct{}
	tip   *Node
}

// NewIndex returns a new empty instance of a block Index. The Index will
// be dynamically populated as block nodes are loaded from the database and
// manually added.
func NewIndex() *Index {
	return &Index{
		index: make(map[daghash.Hash]*Node),
		dirty: make(map[*Node]struct{}),
	}
}

// HaveBlock returns whether or not the block Index contains the provided hash.
//
// This function is safe for concurrent access.
func (bi *Index) HaveBlock(hash *daghash.Hash) bool {
	bi.RLock()
	defer bi.RUnlock()
	_, hasBlock := bi.index[*hash]
	return hasBlock
}

// LookupNode returns the block node identified by the provided hash. The
// second return value is false if there is no entry for the hash.
//
// This function is safe for concurrent access.
func (bi *Index) LookupNode(hash *daghash.Hash) (*Node, bool) {
	bi.RLock()
	defer bi.RUnlock()
	node, ok := bi.index[*hash]
	return node, ok
}

// AddNode adds the provided node to the block Index and marks it as dirty.
// Duplicate entries are not checked so it is up to caller to avoid adding them.
//
// This function is safe for concurrent access.
func (bi *Index) AddNode(node *Node) {
	bi.Lock()
	defer bi.Unlock()
	bi.addNodeNoLock(node)
	bi.dirty[node] = struct{}{}
}

// addNodeNoLock adds the provided node to the block Index, but does not mark
// it as dirty. This is used while loading the block Index.
func (bi *Index) addNodeNoLock(node *Node) {
	bi.index[*node.Hash] = node
	if bi.tip == nil || node.Height > bi.tip.Height {
		bi.tip = node
	}
}

// Tip returns the highest node in the Index, or nil if the Index is empty.
// When several nodes share the highest height, the first one added wins.
//
// This function is safe for concurrent access.
func (bi *Index) Tip() *Node {
	bi.RLock()
	defer bi.RUnlock()
	return bi.tip
}

// Len returns the number of nodes in the Index.
//
// This function is safe for concurrent access.
func (bi *Index) Len() int {
	bi.RLock()
	defer bi.RUnlock()
	return len(bi.index)
}

// Snapshot returns a copy of the hash to node mapping that can be read
// without holding the Index lock.
//
// This function is safe for concurrent access.
func (bi *Index) Snapshot() Map {
	bi.RLock()
	defer bi.RUnlock()
	snapshot := make(Map, len(bi.index))
	for hash, node := range bi.index {
		snapshot[hash] = node
	}
	return snapshot
}

// FlushToDB writes all dirty block nodes to the database.
func (bi *Index) FlushToDB(dbContext *dbaccess.TxContext) error {
	bi.Lock()
	defer bi.Unlock()
	if len(bi.dirty) == 0 {
		return nil
	}

	for node := range bi.dirty {
		serializedNode, err := SerializeNode(node)
		if err != nil {
			return err
		}
		key := BlockIndexKey(node.Hash, node.Height)
		err = dbaccess.StoreIndexBlock(dbContext, key, serializedNode)
		if err != nil {
			return err
		}
	}
	log.Debugf("Flushed %d block index entries", len(bi.dirty))
	return nil
}

// ClearDirtyEntries clears all existing dirty entries
func (bi *Index) ClearDirtyEntries() {
	bi.Lock()
	defer bi.Unlock()
	bi.dirty = make(map[*Node]struct{})
}

// LoadIndex reads every block index entry from the database and links the
// nodes to their parents. Entries are stored ordered by height, so parents
// are always loaded before their children.
func LoadIndex(dbContext dbaccess.Context) (*Index, error) {
	cursor, err := dbaccess.BlockIndexCursor(dbContext)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	bi := NewIndex()
	for ok := cursor.First(); ok; ok = cursor.Next() {
		serializedNode, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		node, err := DeserializeNode(serializedNode)
		if err != nil {
			return nil, err
		}
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		keyHash, err := BlockHashFromBlockIndexKey(key.Suffix())
		if err != nil {
			return nil, err
		}
		if !keyHash.IsEqual(node.Hash) {
			return nil, errors.Errorf("block index entry %s holds block %s",
				keyHash, node.Hash)
		}

		if !node.IsGenesis() {
			parent, ok := bi.index[*node.ParentHash]
			if !ok {
				return nil, errors.Errorf("block %s at height %d references "+
					"unknown parent %s", node.Hash, node.Height, node.ParentHash)
			}
			if parent.Height+1 != node.Height {
				return nil, errors.Errorf("block %s at height %d has parent %s "+
					"at height %d", node.Hash, node.Height, parent.Hash, parent.Height)
			}
			node.Parent = parent
		}
		bi.addNodeNoLock(node)
	}

	log.Debugf("Loaded %d block index entries", len(bi.index))
	return bi, nil
}

// BlockIndexKey generates the binary key for an entry in the block Index
// bucket. The key is composed of the block height encoded as a big-endian
// 64-bit unsigned int followed by the 32 byte block hash.
// The height component is important for iteration order.
func BlockIndexKey(blockHash *daghash.Hash, height uint64) []byte {
	indexKey := make([]byte, daghash.HashSize+8)
	binary.BigEndian.PutUint64(indexKey[0:8], height)
	copy(indexKey[8:daghash.HashSize+8], blockHash[:])
	return indexKey
}

// BlockHashFromBlockIndexKey generates the block hash for the given binary block index key.
func BlockHashFromBlockIndexKey(blockIndexKey []byte) (*daghash.Hash, error) {
	if len(blockIndexKey) != daghash.HashSize+8 {
		return nil, errors.Errorf("block index key has length %d, want %d",
			len(blockIndexKey), daghash.HashSize+8)
	}
	return daghash.NewHash(blockIndexKey[8:])
}
