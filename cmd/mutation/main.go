// Command mutation times the naive and binomial forms of bit-flip mutation.
package main

import (
	"os"

	"gaops/experiment"
	"gaops/logging"

	"go.uber.org/zap"
)

func main() {
	log := logging.New("mutation", os.Getenv("GAOPS_LOG_LEVEL"))
	defer log.Sync()

	cfg := experiment.DefaultMutationConfig()
	clock, err := experiment.NewClock(cfg.AllowWallClock, log)
	if err != nil {
		fail(log, "no thread CPU clock", err)
	}
	env := experiment.Env{Out: os.Stdout, Log: log, Clock: clock}
	if err := experiment.RunMutation(env, cfg); err != nil {
		fail(log, "mutation experiment failed", err)
	}
}

func fail(log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
