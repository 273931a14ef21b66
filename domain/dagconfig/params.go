// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"github.com/kaspanet/checkpointd/util/daghash"
)

// Network identifies one of the networks that ship with a checkpoint table.
type Network uint8

const (
	// Mainnet is the main network.
	Mainnet Network = iota

	// Testnet is the test network.
	Testnet
)

var networkStrings = map[Network]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
}

func (net Network) String() string {
	if s, ok := networkStrings[net]; ok {
		return s
	}
	return "unknown"
}

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
//
// Each checkpoint is selected based upon several factors. See the
// documentation for checkpoints.IsCandidate for details on the selection
// criteria.
type Checkpoint struct {
	Height uint64
	Hash   *daghash.Hash
}

// CheckpointData holds the statistics recorded together with the last
// checkpoint of a network. They are used to estimate how much verification
// work is left while syncing.
type CheckpointData struct {
	// LastCheckpointTime is the UNIX timestamp, in seconds, of the last
	// checkpoint block.
	LastCheckpointTime int64

	// TransactionsAtLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsAtLastCheckpoint uint64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64
}

// Params defines a network by the parameters this package knows about.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net is the network these parameters belong to.
	Net Network

	// GenesisHash is the starting block hash.
	GenesisHash *daghash.Hash

	// Checkpoints are ordered from oldest to newest.
	Checkpoints []Checkpoint

	// CheckpointData summarizes the chain at the last checkpoint.
	CheckpointData CheckpointData
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:        "mainnet",
	Net:         Mainnet,
	GenesisHash: &genesisHash,

	// What makes a good checkpoint block?
	//  - Is surrounded by blocks with reasonable timestamps (no blocks
	//    before with a timestamp after, none after with timestamp before)
	//  - Contains no strange transactions
	Checkpoints: []Checkpoint{
		{0, &genesisHash},
		{500, newHashFromStr("7876e7e613a19bb670f6703ee0e03cb2caaa04a21de3d508fd03839e1f3a82ec")},
		{1000, newHashFromStr("9134c8f6b69fdfcb46ffab9d832afb23abc8781fec6b8244c62333cf06a58cbe")},
		{1500, newHashFromStr("1e07669c6c0bd09f2256448cf8fd916dbc3807cd3ddd69041805bc9b5bac2e1d")},
		{2000, newHashFromStr("95ea40ab2952c2e06bcd7e9c7fe05e7d70e7cd777af98a2a3613eb7d772ef743")},
		{2500, newHashFromStr("12fc08b76fa4d57afc3154196c9236d1f47d4b23b321770c3043f7b9f1053528")},
		{3000, newHashFromStr("f33fb205f78772d657e926a3c14f96144b9e14d80a486d12375e3216dc1d3be1")},
		{3500, newHashFromStr("32bff3fa5efb48d31d44385e03690076c37acd20fd027be69191203178481a04")},
		{4000, newHashFromStr("a5655eb531a0ace4fd5da522d85e690ce74940175ddfe837b62137f6fb056788")},
		{4500, newHashFromStr("ab28005bb361c8eb32eb477a09f35e638a41b8f0193ae6f034e979f52604d3e5")},
		{5000, newHashFromStr("40b8e8f8b091e8ea3bbc401deb23f1bc41256eb285f021130a1725982bdb7098")},
	},

	CheckpointData: CheckpointData{
		LastCheckpointTime:           1526880792,
		TransactionsAtLastCheckpoint: 0,
		TransactionsPerDay:           1.0,
	},
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:        "testnet",
	Net:         Testnet,
	GenesisHash: &testnetGenesisHash,

	Checkpoints: []Checkpoint{
		{0, &testnetGenesisHash},
	},

	CheckpointData: CheckpointData{
		LastCheckpointTime:           1526880772,
		TransactionsAtLastCheckpoint: 0,
		TransactionsPerDay:           1.0,
	},
}

// genesisHash is the hash of the first block in the chain for the main
// network.
var genesisHash = *newHashFromStr("758f3d45d6b5d2b08b3715c4fc1a75b6dc46ee5c08f059ccd2ea14e1c50f6349")

// testnetGenesisHash is the hash of the first block in the chain for the
// test network.
var testnetGenesisHash = *newHashFromStr("002a7836ad62cfc71666fc678674e07af906d4dfce9679865ca7a29dd0a16ecc")

// newHashFromStr converts the passed big-endian hex string into a
// daghash.Hash. It only differs from the one available in daghash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *daghash.Hash {
	hash, err := daghash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes. Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}
