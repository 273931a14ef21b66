package checkpoints

import (
	"math"
	"testing"

	"github.com/kaspanet/checkpointd/domain/blocknode"
	"github.com/kaspanet/checkpointd/domain/dagconfig"
	"github.com/kaspanet/checkpointd/util/daghash"
)

// testHash returns a deterministic hash built out of seed and n.
func testHash(seed byte, n uint64) *daghash.Hash {
	hash := &daghash.Hash{}
	hash[0] = seed
	hash[1] = byte(n)
	hash[2] = byte(n >> 8)
	hash[3] = byte(n >> 16)
	return hash
}

// newTestTable builds a single-checkpoint table at height 0 with the given
// checkpoint data.
func newTestTable(t *testing.T, data dagconfig.CheckpointData) *Table {
	params := &dagconfig.Params{
		Name:           "test",
		Net:            dagconfig.Mainnet,
		GenesisHash:    testHash(0xff, 0),
		Checkpoints:    []dagconfig.Checkpoint{{Height: 0, Hash: testHash(0xff, 0)}},
		CheckpointData: data,
	}
	table, err := NewTable(params)
	if err != nil {
		t.Fatalf("NewTable unexpectedly failed: %s", err)
	}
	return table
}

// buildChain builds a chain of length nodes. timestamps[i] is the timestamp
// of the node at height i; every block holds txPerBlock transactions.
func buildChain(seed byte, timestamps []int64, txPerBlock uint64) []*blocknode.Node {
	nodes := make([]*blocknode.Node, len(timestamps))
	var parent *blocknode.Node
	for i, timestamp := range timestamps {
		nodes[i] = blocknode.NewNode(testHash(seed, uint64(i)), parent, txPerBlock, timestamp)
		parent = nodes[i]
	}
	return nodes
}

// evenTimestamps returns length timestamps spaced one minute apart.
func evenTimestamps(length int, start int64) []int64 {
	timestamps := make([]int64, length)
	for i := range timestamps {
		timestamps[i] = start + int64(i)*60
	}
	return timestamps
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
