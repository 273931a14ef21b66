package checkpoints

import (
	"github.com/kaspanet/checkpointd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.CHKP)
