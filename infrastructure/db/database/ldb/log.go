package ldb

import "github.com/kaspanet/checkpointd/infrastructure/logger"

var log, _ = logger.Get(logger.SubsystemTags.KSDB)
