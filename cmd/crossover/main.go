// Command crossover times the naive and binomial forms of uniform crossover.
package main

import (
	"os"

	"gaops/experiment"
	"gaops/logging"

	"go.uber.org/zap"
)

func main() {
	log := logging.New("crossover", os.Getenv("GAOPS_LOG_LEVEL"))
	defer log.Sync()

	cfg := experiment.DefaultCrossoverConfig()
	clock, err := experiment.NewClock(cfg.AllowWallClock, log)
	if err != nil {
		fail(log, "no thread CPU clock", err)
	}
	env := experiment.Env{Out: os.Stdout, Log: log, Clock: clock}
	if err := experiment.RunCrossover(env, cfg); err != nil {
		fail(log, "crossover experiment failed", err)
	}
}

func fail(log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
