package checkpoints

import (
	"github.com/kaspanet/checkpointd/domain/blocknode"
	"github.com/kaspanet/checkpointd/util/daghash"
)

// NodeLookup resolves block hashes to the nodes of a block index.
// *blocknode.Index and blocknode.Map implement it.
type NodeLookup interface {
	LookupNode(hash *daghash.Hash) (*blocknode.Node, bool)
}

// TotalBlocksEstimate returns a conservative estimate of the total number of
// blocks in the chain: the height of the last checkpoint. It returns 0 when
// checkpoints are disabled.
func TotalBlocksEstimate(enabled bool, table *Table) uint64 {
	if !enabled {
		return 0
	}
	return table.Last().Height
}

// LastCheckpoint returns the node of the highest checkpoint that is present in
// index. The second return value is false when checkpoints are disabled or
// none of the checkpointed blocks is in index.
func LastCheckpoint(enabled bool, table *Table, index NodeLookup) (*blocknode.Node, bool) {
	if !enabled {
		return nil, false
	}

	for i := len(table.entries) - 1; i >= 0; i-- {
		node, ok := index.LookupNode(table.entries[i].Hash)
		if ok {
			return node, true
		}
	}
	return nil, false
}
