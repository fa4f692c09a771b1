// Command genloop times the generation loop of a GA with per-pair coin flips
// against binomial pair selection. Every operator is replaced by a counter.
package main

import (
	"os"

	"gaops/experiment"
	"gaops/logging"

	"go.uber.org/zap"
)

func main() {
	log := logging.New("genloop", os.Getenv("GAOPS_LOG_LEVEL"))
	defer log.Sync()

	cfg := experiment.DefaultGenLoopConfig()
	clock, err := experiment.NewClock(cfg.AllowWallClock, log)
	if err != nil {
		fail(log, "no thread CPU clock", err)
	}
	env := experiment.Env{Out: os.Stdout, Log: log, Clock: clock}
	if err := experiment.RunGenLoop(env, cfg); err != nil {
		fail(log, "genloop experiment failed", err)
	}
}

func fail(log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
