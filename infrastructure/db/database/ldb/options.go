package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

var (
	// A block index holds one small record per block, so the caches are
	// kept well below what a full block store would use.
	defaultOptions = opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     32 * opt.MiB,
		WriteBuffer:            16 * opt.MiB,
		DisableSeeksCompaction: true,
	}

	// Options is a function that returns a leveldb
	// opt.Options struct for opening a database.
	// It's defined as a variable for the sake of testing.
	Options = func() *opt.Options {
		return &defaultOptions
	}
)
