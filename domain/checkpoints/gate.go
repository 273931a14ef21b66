package checkpoints

import (
	"github.com/kaspanet/checkpointd/util/daghash"
)

// CheckBlock returns whether a block with the given hash at the given height
// agrees with the checkpoints in table. Heights without a checkpoint, as well
// as any block while checkpoints are disabled, are always accepted.
//
// A false result means the block conflicts with a checkpoint and the caller
// must reject it together with any chain built on top of it.
func CheckBlock(height uint64, hash *daghash.Hash, enabled bool, table *Table) bool {
	if !enabled {
		return true
	}

	expected, ok := table.Lookup(height)
	if !ok {
		return true
	}
	return hash != nil && expected == *hash
}
