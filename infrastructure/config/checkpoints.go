package config

// CheckpointFlags holds the checkpoint enforcement configuration.
// Checkpoints are enforced unless --nocheckpoints is given.
type CheckpointFlags struct {
	NoCheckpoints bool `long:"nocheckpoints" description:"Disable built-in checkpoints.  Don't do this unless you know what you're doing."`
}

// CheckpointsEnabled returns whether checkpoints should be enforced.
func (checkpointFlags *CheckpointFlags) CheckpointsEnabled() bool {
	return !checkpointFlags.NoCheckpoints
}
