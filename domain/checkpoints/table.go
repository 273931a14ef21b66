package checkpoints

import (
	"math"

	"github.com/kaspanet/checkpointd/domain/dagconfig"
	"github.com/kaspanet/checkpointd/util/daghash"
	"github.com/pkg/errors"
)

// Table is an immutable, height-ordered set of checkpoints for one network,
// together with the statistics recorded at its last checkpoint.
//
// A Table is safe for concurrent access since nothing mutates it after
// NewTable returns.
type Table struct {
	network  dagconfig.Network
	entries  []dagconfig.Checkpoint
	byHeight map[uint64]*daghash.Hash

	lastCheckpointTime           int64
	transactionsAtLastCheckpoint uint64
	transactionsPerDay           float64
}

// NewTable builds a Table out of the checkpoints and checkpoint data of the
// given network parameters. The parameters are copied, so later changes to
// params do not affect the returned table.
func NewTable(params *dagconfig.Params) (*Table, error) {
	if len(params.Checkpoints) == 0 {
		return nil, errors.Errorf("network %s has no checkpoints", params.Name)
	}
	data := params.CheckpointData
	if data.TransactionsPerDay < 0 || math.IsNaN(data.TransactionsPerDay) ||
		math.IsInf(data.TransactionsPerDay, 0) {

		return nil, errors.Errorf("network %s has an invalid transactions per day "+
			"estimate %f", params.Name, data.TransactionsPerDay)
	}

	entries := make([]dagconfig.Checkpoint, len(params.Checkpoints))
	byHeight := make(map[uint64]*daghash.Hash, len(params.Checkpoints))
	for i, checkpoint := range params.Checkpoints {
		if checkpoint.Hash == nil {
			return nil, errors.Errorf("network %s: checkpoint at height %d has no hash",
				params.Name, checkpoint.Height)
		}
		if i > 0 && checkpoint.Height <= entries[i-1].Height {
			return nil, errors.Errorf("network %s: checkpoints are not sorted by height: "+
				"%d follows %d", params.Name, checkpoint.Height, entries[i-1].Height)
		}
		hash := *checkpoint.Hash
		entries[i] = dagconfig.Checkpoint{Height: checkpoint.Height, Hash: &hash}
		byHeight[checkpoint.Height] = &hash
	}

	return &Table{
		network:                      params.Net,
		entries:                      entries,
		byHeight:                     byHeight,
		lastCheckpointTime:           data.LastCheckpointTime,
		transactionsAtLastCheckpoint: data.TransactionsAtLastCheckpoint,
		transactionsPerDay:           data.TransactionsPerDay,
	}, nil
}

// mustNewTable performs the same function as NewTable except it panics if
// there is an error. This should only be called with the tables baked into
// dagconfig.
func mustNewTable(params *dagconfig.Params) *Table {
	table, err := NewTable(params)
	if err != nil {
		panic("invalid checkpoint table: " + err.Error())
	}
	return table
}

// Network returns the network this table belongs to.
func (t *Table) Network() dagconfig.Network {
	return t.network
}

// Len returns the number of checkpoints in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the i-th checkpoint in ascending height order. The returned
// value holds a copy of the hash.
func (t *Table) Entry(i int) dagconfig.Checkpoint {
	entry := t.entries[i]
	hash := *entry.Hash
	return dagconfig.Checkpoint{Height: entry.Height, Hash: &hash}
}

// Last returns the checkpoint with the highest height.
func (t *Table) Last() dagconfig.Checkpoint {
	return t.Entry(len(t.entries) - 1)
}

// Lookup returns the expected hash at the given height, if that height is
// checkpointed.
func (t *Table) Lookup(height uint64) (daghash.Hash, bool) {
	hash, ok := t.byHeight[height]
	if !ok {
		return daghash.Hash{}, false
	}
	return *hash, true
}

// LastCheckpointTime returns the UNIX timestamp, in seconds, of the last
// checkpoint block.
func (t *Table) LastCheckpointTime() int64 {
	return t.lastCheckpointTime
}

// TransactionsAtLastCheckpoint returns the total number of transactions
// between genesis and the last checkpoint.
func (t *Table) TransactionsAtLastCheckpoint() uint64 {
	return t.transactionsAtLastCheckpoint
}

// TransactionsPerDay returns the estimated number of transactions per day
// after the last checkpoint.
func (t *Table) TransactionsPerDay() float64 {
	return t.transactionsPerDay
}
