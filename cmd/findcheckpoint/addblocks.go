package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/kaspanet/checkpointd/domain/blocknode"
	"github.com/kaspanet/checkpointd/infrastructure/db/dbaccess"
	"github.com/kaspanet/checkpointd/util/daghash"
	"github.com/pkg/errors"
)

// blockRecordFields is the number of whitespace separated fields in a block
// record: hash, parent hash, transaction count and timestamp.
const blockRecordFields = 4

// addBlocks reads block records from r and adds the blocks missing from
// index, then writes them to the database in a single transaction. Every
// record must follow its parent, either earlier in r or already in index.
// A genesis block has the zero hash as its parent. Blank lines and lines
// starting with '#' are skipped.
//
// It returns the number of blocks that were added.
func addBlocks(databaseContext *dbaccess.DatabaseContext, index *blocknode.Index, r io.Reader) (int, error) {
	added := 0
	scanner := bufio.NewScanner(r)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		node, err := parseBlockRecord(line, index)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", lineNumber)
		}
		if node == nil {
			continue
		}
		index.AddNode(node)
		added++
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	dbTx, err := databaseContext.NewTx()
	if err != nil {
		return 0, err
	}
	defer dbTx.RollbackUnlessClosed()

	err = index.FlushToDB(dbTx)
	if err != nil {
		return 0, err
	}
	err = dbTx.Commit()
	if err != nil {
		return 0, err
	}
	index.ClearDirtyEntries()

	log.Infof("Added %d blocks to the block index", added)
	return added, nil
}

// parseBlockRecord builds the node described by line on top of its parent
// in index. It returns nil if the block is already in index.
func parseBlockRecord(line string, index *blocknode.Index) (*blocknode.Node, error) {
	fields := strings.Fields(line)
	if len(fields) != blockRecordFields {
		return nil, errors.Errorf("expected %d fields, got %d", blockRecordFields, len(fields))
	}

	hash, err := daghash.NewHashFromStr(fields[0])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid block hash %s", fields[0])
	}
	if index.HaveBlock(hash) {
		log.Debugf("Block %s is already in the block index", hash)
		return nil, nil
	}

	parentHash, err := daghash.NewHashFromStr(fields[1])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid parent hash %s", fields[1])
	}
	txCount, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid transaction count %s", fields[2])
	}
	timestamp, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timestamp %s", fields[3])
	}

	var parent *blocknode.Node
	if !parentHash.IsEqual(&daghash.ZeroHash) {
		var ok bool
		parent, ok = index.LookupNode(parentHash)
		if !ok {
			return nil, errors.Errorf("block %s references unknown parent %s",
				hash, parentHash)
		}
	}
	return blocknode.NewNode(hash, parent, txCount, timestamp), nil
}
