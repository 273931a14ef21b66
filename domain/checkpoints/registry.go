package checkpoints

import (
	"github.com/kaspanet/checkpointd/domain/dagconfig"
)

// The tables are built once while the package initializes and are shared
// read-only from then on.
var (
	mainnetTable = mustNewTable(&dagconfig.MainnetParams)
	testnetTable = mustNewTable(&dagconfig.TestnetParams)
)

// ActiveTable returns the checkpoint table of the given network. Repeated
// calls with the same network return the same table.
func ActiveTable(network dagconfig.Network) *Table {
	if network == dagconfig.Testnet {
		return testnetTable
	}
	return mainnetTable
}
