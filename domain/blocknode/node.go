// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocknode

import (
	"time"

	"github.com/kaspanet/checkpointd/util/daghash"
)

// Node represents a block within the block chain index. Nodes are owned by
// whoever maintains the index; readers must treat every field as immutable
// once the node has been added to an Index.
type Node struct {
	// Parent is the parent block for this node. It is nil for the genesis
	// block.
	Parent *Node

	// Hash is the hash of the block.
	Hash *daghash.Hash

	// ParentHash is the hash of the parent block, or the zero hash for the
	// genesis block. It is kept alongside Parent so that a node can be
	// serialized without its parent being loaded.
	ParentHash *daghash.Hash

	// Height is the position of the block in the chain. The genesis block
	// is at height 0.
	Height uint64

	// ChainTxCount is the total number of transactions in the chain up to
	// and including this block.
	ChainTxCount uint64

	// Timestamp is the block time as a UNIX timestamp in seconds.
	Timestamp int64
}

// NewNode returns a new block node for the block with the given hash on top
// of parent. txCount is the number of transactions inside the block itself;
// the node's ChainTxCount accumulates it on top of the parent's.
// A nil parent creates a genesis node.
func NewNode(hash *daghash.Hash, parent *Node, txCount uint64, timestamp int64) *Node {
	node := &Node{
		Parent:       parent,
		Hash:         hash,
		ParentHash:   &daghash.ZeroHash,
		ChainTxCount: txCount,
		Timestamp:    timestamp,
	}
	if parent != nil {
		node.ParentHash = parent.Hash
		node.Height = parent.Height + 1
		node.ChainTxCount += parent.ChainTxCount
	}
	return node
}

// IsGenesis returns if the current block is the genesis block
func (node *Node) IsGenesis() bool {
	return node.Parent == nil && node.ParentHash.IsEqual(&daghash.ZeroHash)
}

// Ancestor returns the ancestor block node at the provided height by following
// the chain backwards from this node. The returned block will be nil when a
// height is requested that is after the height of the passed node.
//
// This function is safe for concurrent access.
func (node *Node) Ancestor(height uint64) *Node {
	if height > node.Height {
		return nil
	}

	n := node
	for n != nil && n.Height > height {
		n = n.Parent
	}

	return n
}

// Time returns the block timestamp as a time.Time.
func (node *Node) Time() time.Time {
	return time.Unix(node.Timestamp, 0)
}

// String returns a string that contains the block Hash.
func (node Node) String() string {
	return node.Hash.String()
}
