package checkpoints

import (
	"time"

	"github.com/kaspanet/checkpointd/domain/blocknode"
	"github.com/kaspanet/checkpointd/domain/dagconfig"
	"github.com/kaspanet/checkpointd/util/daghash"
)

// Checker answers checkpoint queries for one network with the enforcement
// setting it was created with. It is immutable and safe for concurrent
// access.
type Checker struct {
	table   *Table
	enabled bool
}

// New returns a Checker over the checkpoints of the given network. When
// enabled is false every block passes CheckBlock and the horizon queries
// report no data.
func New(network dagconfig.Network, enabled bool) *Checker {
	return &Checker{
		table:   ActiveTable(network),
		enabled: enabled,
	}
}

// Table returns the checkpoint table used by the checker.
func (c *Checker) Table() *Table {
	return c.table
}

// Enabled returns whether checkpoints are enforced.
func (c *Checker) Enabled() bool {
	return c.enabled
}

// CheckBlock returns whether the block at height with the given hash agrees
// with the checkpoints. Conflicts are logged.
func (c *Checker) CheckBlock(height uint64, hash *daghash.Hash) bool {
	ok := CheckBlock(height, hash, c.enabled, c.table)
	if !ok {
		expected, _ := c.table.Lookup(height)
		log.Warnf("Block %s at height %d does not match checkpoint hash %s",
			hash, height, expected)
	}
	return ok
}

// GuessProgress returns the estimated verification progress at node. It is
// independent of whether checkpoints are enforced.
func (c *Checker) GuessProgress(node *blocknode.Node, now time.Time) float64 {
	return GuessProgress(node, now, c.table)
}

// TotalBlocksEstimate returns the height of the last checkpoint, or 0 when
// checkpoints are disabled.
func (c *Checker) TotalBlocksEstimate() uint64 {
	return TotalBlocksEstimate(c.enabled, c.table)
}

// LastCheckpoint returns the node of the highest checkpoint present in index.
func (c *Checker) LastCheckpoint(index NodeLookup) (*blocknode.Node, bool) {
	node, ok := LastCheckpoint(c.enabled, c.table, index)
	if ok {
		log.Debugf("Last checkpoint present in the index is %s at height %d",
			node.Hash, node.Height)
	}
	return node, ok
}
