// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kaspanet/checkpointd/domain/blocknode"
	"github.com/kaspanet/checkpointd/domain/checkpoints"
	"github.com/kaspanet/checkpointd/infrastructure/db/dbaccess"
	"github.com/kaspanet/checkpointd/infrastructure/logger"
	"github.com/kaspanet/checkpointd/infrastructure/os/signal"
	"github.com/kaspanet/checkpointd/util/panics"
	"github.com/kaspanet/checkpointd/version"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	defer panics.HandlePanic(log, nil)
	interrupt := signal.InterruptListener()

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		return 1
	}

	logger.InitLog(filepath.Join(cfg.LogDir, defaultLogFilename),
		filepath.Join(cfg.LogDir, defaultErrLogFilename))
	err = logger.BackendLog.AddLogWriter(logger.NopCloser(os.Stderr), logger.LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stderr to the logger: %s\n", err)
		return 1
	}
	err = logger.BackendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s\n", err)
		return 1
	}
	defer logger.BackendLog.Close()

	log.Infof("Version %s", version.Version())

	// The summary goes to stderr when stdout is redirected so that the
	// candidate list can be piped on its own.
	var summary io.Writer = os.Stdout
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		summary = os.Stderr
	}

	doneChan := make(chan error, 1)
	spawn(func() {
		doneChan <- findCheckpoint(cfg, summary, os.Stdout, time.Now())
	})
	select {
	case err = <-doneChan:
	case <-interrupt:
		return 1
	}
	if err != nil {
		log.Errorf("%+v", err)
		return 1
	}
	return 0
}

// findCheckpoint loads the block index stored in the configured data
// directory and adds the blocks of the configured block file to it. It then
// reports the checkpoint state of the index tip to summary and lists
// checkpoint candidates to out.
func findCheckpoint(cfg *configFlags, summary, out io.Writer, now time.Time) error {
	defer logger.LogAndMeasureExecutionTime(log, "findCheckpoint")()

	databaseContext, err := dbaccess.New(cfg.DataDir)
	if err != nil {
		return errors.Wrapf(err, "failed to open the block index at %s", cfg.DataDir)
	}
	defer databaseContext.Close()

	index, err := blocknode.LoadIndex(databaseContext.NoTx())
	if err != nil {
		return err
	}
	if cfg.AddBlocks != "" {
		err = addBlocksFromFile(databaseContext, index, cfg.AddBlocks)
		if err != nil {
			return err
		}
	}
	tip := index.Tip()
	if tip == nil {
		return errors.Errorf("the block index at %s is empty", cfg.DataDir)
	}

	checker := checkpoints.New(cfg.Network(), cfg.CheckpointsEnabled())
	err = verifyChain(checker, tip)
	if err != nil {
		return err
	}

	fmt.Fprintf(summary, "Network: %s\n", cfg.Network())
	fmt.Fprintf(summary, "Checkpoints enforced: %t\n", checker.Enabled())
	fmt.Fprintf(summary, "Total blocks estimate: %d\n", checker.TotalBlocksEstimate())
	if lastCheckpoint, ok := checker.LastCheckpoint(index.Snapshot()); ok {
		fmt.Fprintf(summary, "Last checkpoint in index: %d %s\n",
			lastCheckpoint.Height, lastCheckpoint.Hash)
	} else {
		fmt.Fprintln(summary, "Last checkpoint in index: none")
	}
	fmt.Fprintf(summary, "Tip: %d %s\n", tip.Height, tip.Hash)
	fmt.Fprintf(summary, "Verification progress: %.6f\n", checker.GuessProgress(tip, now))

	candidates := checkpoints.FindCandidates(tip, checker.Table(), cfg.Confirmations, cfg.NumCandidates)
	if len(candidates) == 0 {
		fmt.Fprintln(summary, "No candidates found.")
		return nil
	}
	for i, candidate := range candidates {
		showCandidate(out, cfg.UseGoOutput, i+1, candidate)
	}
	return nil
}

// addBlocksFromFile adds the block records stored in the file at path.
func addBlocksFromFile(databaseContext *dbaccess.DatabaseContext, index *blocknode.Index, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	_, err = addBlocks(databaseContext, index, file)
	return errors.Wrapf(err, "failed to add the blocks of %s", path)
}

// verifyChain makes sure every checkpointed height on the chain ending at tip
// carries the checkpointed hash.
func verifyChain(checker *checkpoints.Checker, tip *blocknode.Node) error {
	table := checker.Table()
	for i := 0; i < table.Len(); i++ {
		node := tip.Ancestor(table.Entry(i).Height)
		if node == nil {
			break
		}
		if !checker.CheckBlock(node.Height, node.Hash) {
			return errors.Errorf("block %s at height %d conflicts with a checkpoint",
				node.Hash, node.Height)
		}
	}
	return nil
}

// showCandidate displays a checkpoint candidate using an output format
// determined by the configuration parameters. The Go syntax output
// uses the format dagconfig expects for checkpoints added to the list.
func showCandidate(out io.Writer, useGoOutput bool, candidateNum int, candidate *blocknode.Node) {
	if useGoOutput {
		fmt.Fprintf(out, "Candidate %d -- {%d, newHashFromStr(\"%s\")},\n",
			candidateNum, candidate.Height, candidate.Hash)
		return
	}

	fmt.Fprintf(out, "Candidate %d -- Height: %d, Hash: %s, Time: %s\n", candidateNum,
		candidate.Height, candidate.Hash, candidate.Time().UTC().Format(time.RFC3339))
}
