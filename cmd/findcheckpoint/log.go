package main

import (
	"github.com/kaspanet/checkpointd/infrastructure/logger"
	"github.com/kaspanet/checkpointd/util/panics"
)

var (
	log, _ = logger.Get(logger.SubsystemTags.FNDC)
	spawn  = panics.GoroutineWrapperFunc(log)
)
