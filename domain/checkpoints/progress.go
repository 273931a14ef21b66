package checkpoints

import (
	"time"

	"github.com/kaspanet/checkpointd/domain/blocknode"
)

// sigcheckVerificationFactor is how many times we expect transactions after
// the last checkpoint to be slower to verify than the ones before it. This
// number is a compromise, as it can't be accurate for every system. When
// reindexing from a fast disk with a slow CPU, it can be up to 20, while when
// downloading from a slow network with a fast multicore CPU, it won't be much
// higher than 1.
const sigcheckVerificationFactor = 5.0

const secondsPerDay = 24 * 60 * 60

// GuessProgress guesses how far along the verification process is at the
// given block node, as a fraction between 0 and 1.
//
// Work is counted as 1 per transaction before the last checkpoint and
// sigcheckVerificationFactor per transaction after it. Transactions that the
// network produced since the node's block (or since the last checkpoint,
// whichever is later) are estimated from the table's transaction rate.
// A clock behind that reference time shrinks the remaining work. The result
// is clamped to [0, 1], and a total amount of work that is not positive
// yields 0.
func GuessProgress(node *blocknode.Node, now time.Time, table *Table) float64 {
	if node == nil {
		return 0.0
	}

	var workBefore, workAfter float64

	txAtCheckpoint := table.TransactionsAtLastCheckpoint()
	nowSeconds := now.Unix()

	if node.ChainTxCount <= txAtCheckpoint {
		cheapBefore := float64(node.ChainTxCount)
		cheapAfter := float64(txAtCheckpoint - node.ChainTxCount)
		expensiveAfter := expectedTransactionsSince(table.LastCheckpointTime(), nowSeconds, table)
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigcheckVerificationFactor
	} else {
		cheapBefore := float64(txAtCheckpoint)
		expensiveBefore := float64(node.ChainTxCount - txAtCheckpoint)
		expensiveAfter := expectedTransactionsSince(node.Timestamp, nowSeconds, table)
		workBefore = cheapBefore + expensiveBefore*sigcheckVerificationFactor
		workAfter = expensiveAfter * sigcheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0.0
	}
	progress := workBefore / total
	switch {
	case progress < 0:
		return 0.0
	case progress > 1:
		return 1.0
	}
	return progress
}

// expectedTransactionsSince estimates how many transactions the network
// produced between the UNIX timestamps from and to. The estimate is negative
// when to is before from.
func expectedTransactionsSince(from, to int64, table *Table) float64 {
	return float64(to-from) / secondsPerDay * table.TransactionsPerDay()
}
