package checkpoints

import (
	"testing"

	"github.com/kaspanet/checkpointd/domain/dagconfig"
	"github.com/kaspanet/checkpointd/util/daghash"
)

func TestCheckBlockMainnet(t *testing.T) {
	table := ActiveTable(dagconfig.Mainnet)
	for _, checkpoint := range dagconfig.MainnetParams.Checkpoints {
		if !CheckBlock(checkpoint.Height, checkpoint.Hash, true, table) {
			t.Errorf("TestCheckBlockMainnet: checkpoint at height %d rejected", checkpoint.Height)
		}

		altered := *checkpoint.Hash
		altered[0] ^= 0x01
		if CheckBlock(checkpoint.Height, &altered, true, table) {
			t.Errorf("TestCheckBlockMainnet: altered hash at height %d accepted", checkpoint.Height)
		}
		if !CheckBlock(checkpoint.Height, &altered, false, table) {
			t.Errorf("TestCheckBlockMainnet: altered hash at height %d rejected "+
				"with checkpoints disabled", checkpoint.Height)
		}
	}

	if !CheckBlock(501, testHash(9, 501), true, table) {
		t.Errorf("TestCheckBlockMainnet: block at an unchecked height rejected")
	}
	if CheckBlock(500, nil, true, table) {
		t.Errorf("TestCheckBlockMainnet: nil hash at a checked height accepted")
	}
}

func TestCheckBlockTestnet(t *testing.T) {
	table := ActiveTable(dagconfig.Testnet)
	genesis := dagconfig.TestnetParams.GenesisHash
	other := &daghash.Hash{0x01}

	if !CheckBlock(0, genesis, true, table) {
		t.Errorf("TestCheckBlockTestnet: testnet genesis rejected")
	}
	if CheckBlock(0, other, true, table) {
		t.Errorf("TestCheckBlockTestnet: conflicting genesis accepted")
	}
	if !CheckBlock(7, other, true, table) {
		t.Errorf("TestCheckBlockTestnet: block at an unchecked height rejected")
	}
	if TotalBlocksEstimate(true, table) != 0 {
		t.Errorf("TestCheckBlockTestnet: unexpected total blocks estimate %d",
			TotalBlocksEstimate(true, table))
	}
}
